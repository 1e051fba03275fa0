// Package domain models hourly weather forecasts and the analysis that turns
// them into impact tiers for outdoor activity planning.
//
// # Data Source
//
// Forecasts follow the WeatherAPI.com forecast.json shape. The reporter
// either polls the provider directly or consumes the same JSON from the
// Kafka source topic, so both paths share [ParseForecast].
//
// # Forecast Conventions
//
// Hour timestamps:
//
//	"YYYY-MM-DD HH:MM" in the location's local wall clock, e.g. "2024-06-01 16:00".
//	Parsed without a zone; only the clock part is used for window membership.
//
// Rain flag:
//
//	will_it_rain is 0 or 1. Only hours flagged 1 count as rain hours; the
//	chance_of_rain and precip_mm of unflagged hours are ignored.
//
// Units:
//
//	Wind and gust in kph, feels-like in °C, precipitation in mm,
//	humidity as a 0-100 percentage, UV as the provider's index.
//
// # Windows
//
// The analysis window [start:00, end:00) is half-open, and end=24 covers the
// rest of the day. The rain look-back window [start-N:00, start:00] is
// inclusive on both ends, so an hour stamped exactly at the window start is
// counted as both "prior" and "during" rain.
//
// # Impact Tiers
//
// Every scalar is classified into LOW, MODERATE, HIGH, VERY HIGH or EXTREME
// by [Classifier]. Most scales use three tiers; UV and humidity use more.
// Higher values never classify to a lower tier, except for rain recency
// where more dry hours mean lower impact.
//
// # Rounding
//
// All rounding is half-to-even ([math.RoundToEven]), so 2.5 rounds to 2.
package domain
