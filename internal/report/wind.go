package report

import (
	"fmt"

	"github.com/couchcryptid/forecast-report/internal/domain"
)

// Wind reports sustained wind speed and gusts in the window.
type Wind struct {
	metricReporter
}

// NewWind extracts the window's wind entries from a day's hours.
func NewWind(hours []domain.HourlyRecord, s domain.Settings, c domain.Classifier) *Wind {
	return &Wind{metricReporter{
		settings:   s,
		classifier: c,
		entries:    domain.ExtractWind(hours, s.Window),
		sections: []metricSection{
			windSection(domain.WindSpeed),
			windSection(domain.WindGust),
		},
	}}
}

func windSection(m domain.Metric) metricSection {
	return metricSection{
		metric: m,
		label:  "Wind " + titleCaser.String(m.DisplayName()),
		icon:   iconWind,
		stats: func(peak float64, avg int) string {
			return fmt.Sprintf("Max. %s kph | Avg. %d kph", formatNumber(peak), avg)
		},
		value: func(v float64) string {
			return formatNumber(v) + " kph"
		},
	}
}
