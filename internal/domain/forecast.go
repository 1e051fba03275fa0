package domain

import "time"

// Forecast is a parsed provider payload: one location, a run of forecast
// days and any active alerts.
type Forecast struct {
	Location Location
	Days     []ForecastDay
	Alerts   []Alert
}

// Location identifies where the forecast applies. LocalTime is the
// provider's wall-clock time at the location when the payload was produced.
type Location struct {
	Name      string
	Region    string
	Country   string
	LocalTime string
}

// ForecastDay holds one day of hourly records. Err is set when the day's
// part of the payload was malformed; the other days stay usable.
type ForecastDay struct {
	Date  string
	Astro Astro
	Hours []HourlyRecord
	Err   error
}

// Astro carries sunrise and sunset as the provider formats them, e.g. "05:42 AM".
type Astro struct {
	Sunrise string
	Sunset  string
}

// HourlyRecord is one hour of forecast data. Time is the local wall clock.
type HourlyRecord struct {
	Time         time.Time
	Condition    Condition
	WillItRain   bool
	ChanceOfRain int
	PrecipMM     float64
	WindKPH      float64
	GustKPH      float64
	FeelsLikeC   float64
	UV           float64
	Humidity     int
}

// Condition is the provider's sky condition for an hour.
type Condition struct {
	Text string
	Code int
}

// Alert is a weather alert issued for the location.
type Alert struct {
	Headline  string
	MsgType   string
	Severity  string
	Event     string
	Urgency   string
	Effective time.Time
	Expires   time.Time
}
