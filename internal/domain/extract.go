package domain

import "math"

// ExtractRain returns the hours in span that are flagged as rain hours, with
// their rain chance and precipitation unchanged.
func ExtractRain(hours []HourlyRecord, span Span) []Entry {
	var entries []Entry
	for _, h := range hours {
		if !h.WillItRain || !span.Contains(h.Time) {
			continue
		}
		entries = append(entries, Entry{
			At: h.Time,
			Values: map[Metric]float64{
				RainChance:    float64(h.ChanceOfRain),
				Precipitation: h.PrecipMM,
			},
		})
	}
	return entries
}

// ExtractWind returns wind speed and gust for every hour in the window,
// rounded to whole kph.
func ExtractWind(hours []HourlyRecord, w TimeWindow) []Entry {
	var entries []Entry
	for _, h := range SliceHours(hours, w) {
		entries = append(entries, Entry{
			At: h.Time,
			Values: map[Metric]float64{
				WindSpeed: math.RoundToEven(h.WindKPH),
				WindGust:  math.RoundToEven(h.GustKPH),
			},
		})
	}
	return entries
}

// ExtractTemperature returns feels-like, humidity and UV index for every hour
// in the window. Feels-like and UV are rounded; humidity is already whole.
func ExtractTemperature(hours []HourlyRecord, w TimeWindow) []Entry {
	var entries []Entry
	for _, h := range SliceHours(hours, w) {
		entries = append(entries, Entry{
			At: h.Time,
			Values: map[Metric]float64{
				FeelsLike: math.RoundToEven(h.FeelsLikeC),
				Humidity:  float64(h.Humidity),
				UVIndex:   math.RoundToEven(h.UV),
			},
		})
	}
	return entries
}

// SliceHours returns the hours that fall inside the window.
func SliceHours(hours []HourlyRecord, w TimeWindow) []HourlyRecord {
	var in []HourlyRecord
	for _, h := range hours {
		if w.Contains(h.Time) {
			in = append(in, h)
		}
	}
	return in
}
