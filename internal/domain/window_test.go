package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.June, 1, hour, minute, 0, 0, time.UTC)
}

func TestNewTimeWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		end     int
		field   string
		message string
	}{
		{name: "valid", start: 16, end: 22},
		{name: "whole day", start: 0, end: 24},
		{name: "negative start", start: -1, end: 4, field: "start_hour", message: msgInvalidHour},
		{name: "start after last hour", start: 24, end: 24, field: "start_hour", message: msgInvalidHour},
		{name: "end past midnight", start: 2, end: 25, field: "end_hour", message: msgInvalidHour},
		{name: "end equals start", start: 10, end: 10, field: "end_hour", message: msgEndBeforeStart},
		{name: "end before start", start: 10, end: 9, field: "end_hour", message: msgEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewTimeWindow(tt.start, tt.end)
			if tt.field == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.end-tt.start, w.Duration())
				return
			}
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Equal(t, tt.message, cfgErr.Message)
		})
	}
}

func TestTimeWindow_Contains(t *testing.T) {
	w, err := NewTimeWindow(16, 22)
	require.NoError(t, err)

	assert.False(t, w.Contains(at(15, 59)))
	assert.True(t, w.Contains(at(16, 0)))
	assert.True(t, w.Contains(at(21, 59)))
	assert.False(t, w.Contains(at(22, 0)), "window end is exclusive")
}

func TestTimeWindow_ContainsEndOfDay(t *testing.T) {
	w, err := NewTimeWindow(20, 24)
	require.NoError(t, err)

	assert.True(t, w.Contains(at(23, 0)))
	assert.True(t, w.Contains(at(23, 59)))
	assert.False(t, w.Contains(at(19, 0)))
}

func TestTimeWindow_PreWindow(t *testing.T) {
	w, err := NewTimeWindow(16, 22)
	require.NoError(t, err)

	pre, err := w.PreWindow(3)
	require.NoError(t, err)
	assert.Equal(t, 13, pre.Start())
	assert.Equal(t, 16, pre.End())
	assert.Equal(t, 3, pre.Hours())

	assert.False(t, pre.Contains(at(12, 59)))
	assert.True(t, pre.Contains(at(13, 0)))
	assert.True(t, pre.Contains(at(16, 0)), "pre-window end is inclusive")
	assert.False(t, pre.Contains(at(16, 1)))

	_, err = w.PreWindow(17)
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, msgInvalidPreWindow, cfgErr.Message)

	_, err = w.PreWindow(-1)
	require.Error(t, err)
}

func TestTimeWindow_String(t *testing.T) {
	w, err := NewTimeWindow(16, 22)
	require.NoError(t, err)
	assert.Equal(t, "16:00 - 22:00", w.String())

	w, err = NewTimeWindow(6, 24)
	require.NoError(t, err)
	assert.Equal(t, "06:00 - 23:59", w.String())
}
