// Package fixture builds WeatherAPI-shaped forecast payloads for tests and
// the genmock command.
package fixture

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// Payload mirrors the forecast.json response body.
type Payload struct {
	Location Location `json:"location"`
	Forecast Forecast `json:"forecast"`
	Alerts   Alerts   `json:"alerts"`
}

type Location struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	LocalTime string `json:"localtime"`
}

type Forecast struct {
	ForecastDay []Day `json:"forecastday"`
}

type Alerts struct {
	Alert []Alert `json:"alert"`
}

type Alert struct {
	Headline  string `json:"headline"`
	MsgType   string `json:"msgtype"`
	Severity  string `json:"severity"`
	Event     string `json:"event"`
	Urgency   string `json:"urgency"`
	Effective string `json:"effective"`
	Expires   string `json:"expires"`
}

type Day struct {
	Date  string `json:"date"`
	Astro Astro  `json:"astro"`
	Hour  []Hour `json:"hour"`
}

type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

type Hour struct {
	Time         string    `json:"time"`
	Condition    Condition `json:"condition"`
	WillItRain   int       `json:"will_it_rain"`
	ChanceOfRain int       `json:"chance_of_rain"`
	PrecipMM     float64   `json:"precip_mm"`
	WindKPH      float64   `json:"wind_kph"`
	GustKPH      float64   `json:"gust_kph"`
	FeelsLikeC   float64   `json:"feelslike_c"`
	UV           float64   `json:"uv"`
	Humidity     int       `json:"humidity"`
}

type Condition struct {
	Text string `json:"text"`
	Code int    `json:"code"`
}

// DefaultLocation is the location used by NewPayload.
var DefaultLocation = Location{
	Name:      "Brisbane",
	Region:    "Queensland",
	Country:   "Australia",
	LocalTime: "2024-06-01 07:55",
}

// NewDay returns 24 calm, dry, sunny hours for date (YYYY-MM-DD).
func NewDay(date string) Day {
	day := Day{
		Date:  date,
		Astro: Astro{Sunrise: "06:35 AM", Sunset: "05:01 PM"},
		Hour:  make([]Hour, 24),
	}
	for h := range day.Hour {
		day.Hour[h] = Hour{
			Time:       fmt.Sprintf("%s %02d:00", date, h),
			Condition:  Condition{Text: "Sunny", Code: 1000},
			WindKPH:    5,
			GustKPH:    8,
			FeelsLikeC: 20,
			UV:         1,
			Humidity:   40,
		}
	}
	return day
}

// NewPayload wraps days in a payload at DefaultLocation with no alerts.
func NewPayload(days ...Day) Payload {
	return Payload{
		Location: DefaultLocation,
		Forecast: Forecast{ForecastDay: days},
		Alerts:   Alerts{Alert: []Alert{}},
	}
}

// JSON encodes the payload.
func (p Payload) JSON() ([]byte, error) {
	return json.Marshal(p)
}

// MustJSON encodes the payload and panics on failure.
func (p Payload) MustJSON() []byte {
	data, err := p.JSON()
	if err != nil {
		panic(err)
	}
	return data
}

// Rain marks an hour of the day as a rain hour.
func (d Day) Rain(hour, chance int, precipMM float64) Day {
	d.Hour = cloneHours(d.Hour)
	d.Hour[hour].WillItRain = 1
	d.Hour[hour].ChanceOfRain = chance
	d.Hour[hour].PrecipMM = precipMM
	d.Hour[hour].Condition = Condition{Text: "Patchy rain nearby", Code: 1063}
	return d
}

// Set applies fn to one hour of the day.
func (d Day) Set(hour int, fn func(h *Hour)) Day {
	d.Hour = cloneHours(d.Hour)
	fn(&d.Hour[hour])
	return d
}

func cloneHours(hours []Hour) []Hour {
	out := make([]Hour, len(hours))
	copy(out, hours)
	return out
}

var conditions = []Condition{
	{Text: "Sunny", Code: 1000},
	{Text: "Partly cloudy", Code: 1003},
	{Text: "Overcast", Code: 1009},
	{Text: "Patchy rain nearby", Code: 1063},
	{Text: "Moderate rain", Code: 1189},
}

// Random generates a plausible payload of days starting at start. The same
// seed always yields the same payload.
func Random(start time.Time, days int, seed uint64) Payload {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]Day, 0, days)
	for d := range days {
		date := start.AddDate(0, 0, d).Format("2006-01-02")
		day := NewDay(date)
		base := 14 + rng.Float64()*14
		for h := range day.Hour {
			// Diurnal curve peaking mid-afternoon.
			diurnal := math.Sin(float64(h-9) / 24 * 2 * math.Pi)
			hr := &day.Hour[h]
			hr.FeelsLikeC = round1(base + 8*diurnal + rng.Float64()*2)
			hr.UV = round1(math.Max(0, 9*diurnal))
			hr.Humidity = 35 + rng.IntN(55)
			hr.WindKPH = round1(3 + rng.Float64()*30)
			hr.GustKPH = round1(hr.WindKPH * (1.2 + rng.Float64()*0.6))
			cond := conditions[rng.IntN(len(conditions))]
			hr.Condition = cond
			if cond.Code >= 1063 {
				hr.WillItRain = 1
				hr.ChanceOfRain = 40 + rng.IntN(60)
				hr.PrecipMM = round1(rng.Float64() * 3)
			} else {
				hr.ChanceOfRain = rng.IntN(30)
			}
		}
		out = append(out, day)
	}
	p := NewPayload(out...)
	p.Location.LocalTime = start.Format("2006-01-02") + " 07:00"
	return p
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
