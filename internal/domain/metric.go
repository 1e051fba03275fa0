package domain

import (
	"strings"
	"time"
)

// Metric names a normalized value carried by an Entry.
type Metric int

const (
	RainChance Metric = iota
	Precipitation
	WindSpeed
	WindGust
	FeelsLike
	Humidity
	UVIndex
)

// String returns the metric key, e.g. "feels_like".
func (m Metric) String() string {
	switch m {
	case RainChance:
		return "rain_chance"
	case Precipitation:
		return "precipitation"
	case WindSpeed:
		return "speed"
	case WindGust:
		return "gust"
	case FeelsLike:
		return "feels_like"
	case Humidity:
		return "humidity"
	case UVIndex:
		return "uv_index"
	default:
		return "unknown"
	}
}

// DisplayName returns the key with spaces, e.g. "feels like".
func (m Metric) DisplayName() string {
	return strings.ReplaceAll(m.String(), "_", " ")
}

// Entry is one hour of normalized metric values.
type Entry struct {
	At     time.Time
	Values map[Metric]float64
}

// Value returns the entry's value for m, or 0 when absent.
func (e Entry) Value(m Metric) float64 {
	return e.Values[m]
}

// Clock renders the entry time as HH:MM.
func (e Entry) Clock() string {
	return e.At.Format("15:04")
}
