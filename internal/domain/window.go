package domain

import (
	"fmt"
	"time"
)

// Validation messages shown to users for window settings.
const (
	msgInvalidHour      = "INVALID TIME. ENTER THE HOUR IN 24-HOUR FORMAT (0-24) AS A WHOLE NUMBER"
	msgEndBeforeStart   = "END TIME MUST BE AFTER START TIME"
	msgInvalidPreWindow = "RAIN CHECK PERIOD MUST BE SAME DAY AND BEFORE START TIME"
)

// Span is a set of clock times an hourly record can fall into.
type Span interface {
	Contains(t time.Time) bool
}

// TimeWindow is the half-open analysis window [Start:00, End:00) within a day.
type TimeWindow struct {
	start int
	end   int
}

// NewTimeWindow validates start and end hours. Start must be in [0,23], end
// in [1,24], and end must be after start.
func NewTimeWindow(start, end int) (TimeWindow, error) {
	if start < 0 || start > 23 {
		return TimeWindow{}, &ConfigurationError{Field: "start_hour", Message: msgInvalidHour}
	}
	if end < 1 || end > 24 {
		return TimeWindow{}, &ConfigurationError{Field: "end_hour", Message: msgInvalidHour}
	}
	if end <= start {
		return TimeWindow{}, &ConfigurationError{Field: "end_hour", Message: msgEndBeforeStart}
	}
	return TimeWindow{start: start, end: end}, nil
}

// Start returns the first hour of the window.
func (w TimeWindow) Start() int { return w.start }

// End returns the exclusive end hour of the window.
func (w TimeWindow) End() int { return w.end }

// Duration returns the window length in hours.
func (w TimeWindow) Duration() int { return w.end - w.start }

// Contains reports whether t's clock time lies in [start:00, end:00).
func (w TimeWindow) Contains(t time.Time) bool {
	m := minuteOfDay(t)
	return m >= w.start*60 && m < w.end*60
}

// PreWindow returns the look-back window of the given number of hours that
// ends at the window start.
func (w TimeWindow) PreWindow(hours int) (PreWindow, error) {
	if hours < 0 || hours > w.start {
		return PreWindow{}, &ConfigurationError{Field: "rain_check_hours_prior", Message: msgInvalidPreWindow}
	}
	return PreWindow{start: w.start - hours, end: w.start}, nil
}

func (w TimeWindow) String() string {
	return DisplayTime(w.start) + " - " + DisplayTime(w.end)
}

// PreWindow is the inclusive look-back window [Start:00, End:00].
type PreWindow struct {
	start int
	end   int
}

// Hours returns the look-back length in hours.
func (p PreWindow) Hours() int { return p.end - p.start }

// Start returns the first hour of the look-back window.
func (p PreWindow) Start() int { return p.start }

// End returns the last hour of the look-back window, which equals the
// analysis window start.
func (p PreWindow) End() int { return p.end }

// Contains reports whether t's clock time lies in [start:00, end:00].
func (p PreWindow) Contains(t time.Time) bool {
	m := minuteOfDay(t)
	return m >= p.start*60 && m <= p.end*60
}

// DisplayTime renders an hour as HH:00. Hour 24 renders as 23:59.
func DisplayTime(hour int) string {
	if hour == 24 {
		return "23:59"
	}
	return fmt.Sprintf("%02d:00", hour)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
