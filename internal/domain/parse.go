package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// HourLayout is the provider's hour timestamp format.
const HourLayout = "2006-01-02 15:04"

// alertLayouts are the timestamp formats seen in provider alerts.
var alertLayouts = []string{time.RFC3339, "2006-01-02T15:04:05-0700", HourLayout}

type rawPayload struct {
	Location *rawLocation `json:"location"`
	Forecast *struct {
		ForecastDay []json.RawMessage `json:"forecastday"`
	} `json:"forecast"`
	Alerts *struct {
		Alert []rawAlert `json:"alert"`
	} `json:"alerts"`
}

type rawLocation struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	LocalTime string `json:"localtime"`
}

type rawDay struct {
	Date  string `json:"date"`
	Astro *struct {
		Sunrise string `json:"sunrise"`
		Sunset  string `json:"sunset"`
	} `json:"astro"`
	Hour []rawHour `json:"hour"`
}

type rawHour struct {
	Time      string `json:"time"`
	Condition *struct {
		Text string `json:"text"`
		Code int    `json:"code"`
	} `json:"condition"`
	WillItRain   *int     `json:"will_it_rain"`
	ChanceOfRain *int     `json:"chance_of_rain"`
	PrecipMM     *float64 `json:"precip_mm"`
	WindKPH      *float64 `json:"wind_kph"`
	GustKPH      *float64 `json:"gust_kph"`
	FeelsLikeC   *float64 `json:"feelslike_c"`
	UV           *float64 `json:"uv"`
	Humidity     *int     `json:"humidity"`
}

type rawAlert struct {
	Headline  string `json:"headline"`
	MsgType   string `json:"msgtype"`
	Severity  string `json:"severity"`
	Event     string `json:"event"`
	Urgency   string `json:"urgency"`
	Effective string `json:"effective"`
	Expires   string `json:"expires"`
}

// ParseForecast decodes a provider payload. Missing location or forecast
// days fail the whole payload with a *DataShapeError. A malformed day is
// kept with its Err set so the remaining days can still be reported.
func ParseForecast(data []byte) (Forecast, error) {
	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return Forecast{}, fmt.Errorf("decode forecast payload: %w", err)
	}
	if raw.Location == nil {
		return Forecast{}, &DataShapeError{Path: "location", Reason: "missing"}
	}
	if raw.Forecast == nil || len(raw.Forecast.ForecastDay) == 0 {
		return Forecast{}, &DataShapeError{Path: "forecast.forecastday", Reason: "missing or empty"}
	}

	f := Forecast{
		Location: Location{
			Name:      raw.Location.Name,
			Region:    raw.Location.Region,
			Country:   raw.Location.Country,
			LocalTime: raw.Location.LocalTime,
		},
		Days: make([]ForecastDay, 0, len(raw.Forecast.ForecastDay)),
	}
	for i, dayData := range raw.Forecast.ForecastDay {
		f.Days = append(f.Days, parseDay(i, dayData))
	}

	if raw.Alerts != nil {
		for i, a := range raw.Alerts.Alert {
			alert, err := parseAlert(i, a)
			if err != nil {
				return Forecast{}, err
			}
			f.Alerts = append(f.Alerts, alert)
		}
	}
	return f, nil
}

func parseDay(index int, data json.RawMessage) ForecastDay {
	path := fmt.Sprintf("forecast.forecastday[%d]", index)

	var raw rawDay
	if err := json.Unmarshal(data, &raw); err != nil {
		return ForecastDay{Err: &DataShapeError{Path: path, Reason: err.Error()}}
	}
	day := ForecastDay{Date: raw.Date}
	if raw.Astro == nil {
		day.Err = &DataShapeError{Path: path + ".astro", Reason: "missing"}
		return day
	}
	day.Astro = Astro{Sunrise: raw.Astro.Sunrise, Sunset: raw.Astro.Sunset}
	if len(raw.Hour) == 0 {
		day.Err = &DataShapeError{Path: path + ".hour", Reason: "missing or empty"}
		return day
	}

	day.Hours = make([]HourlyRecord, 0, len(raw.Hour))
	for i, h := range raw.Hour {
		rec, err := parseHour(fmt.Sprintf("%s.hour[%d]", path, i), h)
		if err != nil {
			day.Hours = nil
			day.Err = err
			return day
		}
		day.Hours = append(day.Hours, rec)
	}
	return day
}

func parseHour(path string, h rawHour) (HourlyRecord, error) {
	t, err := time.Parse(HourLayout, h.Time)
	if err != nil {
		return HourlyRecord{}, &DataShapeError{Path: path + ".time", Reason: fmt.Sprintf("expected %q layout, got %q", HourLayout, h.Time)}
	}

	missing := func(field string) error {
		return &DataShapeError{Path: path + "." + field, Reason: "missing"}
	}
	switch {
	case h.Condition == nil:
		return HourlyRecord{}, missing("condition")
	case h.WillItRain == nil:
		return HourlyRecord{}, missing("will_it_rain")
	case h.ChanceOfRain == nil:
		return HourlyRecord{}, missing("chance_of_rain")
	case h.PrecipMM == nil:
		return HourlyRecord{}, missing("precip_mm")
	case h.WindKPH == nil:
		return HourlyRecord{}, missing("wind_kph")
	case h.GustKPH == nil:
		return HourlyRecord{}, missing("gust_kph")
	case h.FeelsLikeC == nil:
		return HourlyRecord{}, missing("feelslike_c")
	case h.UV == nil:
		return HourlyRecord{}, missing("uv")
	case h.Humidity == nil:
		return HourlyRecord{}, missing("humidity")
	}

	return HourlyRecord{
		Time:         t,
		Condition:    Condition{Text: h.Condition.Text, Code: h.Condition.Code},
		WillItRain:   *h.WillItRain == 1,
		ChanceOfRain: *h.ChanceOfRain,
		PrecipMM:     *h.PrecipMM,
		WindKPH:      *h.WindKPH,
		GustKPH:      *h.GustKPH,
		FeelsLikeC:   *h.FeelsLikeC,
		UV:           *h.UV,
		Humidity:     *h.Humidity,
	}, nil
}

func parseAlert(index int, a rawAlert) (Alert, error) {
	path := fmt.Sprintf("alerts.alert[%d]", index)
	effective, err := parseAlertTime(a.Effective)
	if err != nil {
		return Alert{}, &DataShapeError{Path: path + ".effective", Reason: err.Error()}
	}
	expires, err := parseAlertTime(a.Expires)
	if err != nil {
		return Alert{}, &DataShapeError{Path: path + ".expires", Reason: err.Error()}
	}
	return Alert{
		Headline:  a.Headline,
		MsgType:   a.MsgType,
		Severity:  a.Severity,
		Event:     a.Event,
		Urgency:   a.Urgency,
		Effective: effective,
		Expires:   expires,
	}, nil
}

func parseAlertTime(s string) (time.Time, error) {
	for _, layout := range alertLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
