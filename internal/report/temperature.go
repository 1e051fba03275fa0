package report

import (
	"fmt"

	"github.com/couchcryptid/forecast-report/internal/domain"
)

// Temperature reports feels-like temperature, humidity and UV index.
type Temperature struct {
	metricReporter
}

// NewTemperature extracts the window's temperature entries from a day's hours.
func NewTemperature(hours []domain.HourlyRecord, s domain.Settings, c domain.Classifier) *Temperature {
	return &Temperature{metricReporter{
		settings:   s,
		classifier: c,
		entries:    domain.ExtractTemperature(hours, s.Window),
		sections: []metricSection{
			{
				metric: domain.FeelsLike,
				label:  titleCaser.String(domain.FeelsLike.DisplayName()),
				icon:   iconTemperature,
				stats: func(peak float64, avg int) string {
					return fmt.Sprintf("Max. %s °C | Avg. %d °C", formatNumber(peak), avg)
				},
				value: func(v float64) string { return formatNumber(v) + " °C" },
			},
			{
				metric: domain.Humidity,
				label:  titleCaser.String(domain.Humidity.DisplayName()),
				icon:   iconTemperature,
				stats: func(peak float64, avg int) string {
					return fmt.Sprintf("Max. %s %% | Avg. %d %%", formatNumber(peak), avg)
				},
				value: func(v float64) string { return formatNumber(v) + " %" },
			},
			{
				metric: domain.UVIndex,
				label:  titleCaser.String(domain.UVIndex.DisplayName()),
				icon:   iconTemperature,
				stats: func(peak float64, avg int) string {
					return fmt.Sprintf("Max. index %s | Avg. index %d", formatNumber(peak), avg)
				},
				value: func(v float64) string { return "Index " + formatNumber(v) },
			},
		},
	}}
}
