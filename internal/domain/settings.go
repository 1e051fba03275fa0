package domain

import "fmt"

const maxForecastDays = 14

// Settings is the validated set of user options a report is built from.
type Settings struct {
	Window        TimeWindow
	PreWindow     PreWindow
	TimelineCount int
}

// NewSettings validates the window, timeline count and rain look-back.
// Errors are *ConfigurationError.
func NewSettings(startHour, endHour, timelineCount, rainCheckHoursPrior int) (Settings, error) {
	window, err := NewTimeWindow(startHour, endHour)
	if err != nil {
		return Settings{}, err
	}
	if timelineCount < 1 {
		return Settings{}, &ConfigurationError{
			Field:   "timeline_count",
			Message: "TIMELINE COUNT MUST BE AT LEAST 1",
		}
	}
	if timelineCount > window.Duration() {
		return Settings{}, &ConfigurationError{
			Field:   "timeline_count",
			Message: fmt.Sprintf("TIMELINE COUNT TOO LONG (MAX %d HOURS)", window.Duration()),
		}
	}
	pre, err := window.PreWindow(rainCheckHoursPrior)
	if err != nil {
		return Settings{}, err
	}
	return Settings{Window: window, PreWindow: pre, TimelineCount: timelineCount}, nil
}

// ValidateDaysToShow checks the number of forecast days requested.
func ValidateDaysToShow(days int) error {
	if days < 1 || days > maxForecastDays {
		return &ConfigurationError{
			Field:   "days_to_show",
			Message: fmt.Sprintf("CAN ONLY FORECAST BETWEEN 1 AND %d DAYS", maxForecastDays),
		}
	}
	return nil
}
