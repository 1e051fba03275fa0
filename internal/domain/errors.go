package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyWindow is returned by aggregations over an empty entry set.
var ErrEmptyWindow = errors.New("no forecast hours in window")

// ConfigurationError reports an invalid user setting. Message is the text
// shown to the user.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// DataShapeError reports a forecast payload that is missing a required field
// or holds a value of the wrong shape. Path uses the payload's JSON names,
// e.g. "forecast.forecastday[1].hour[3].time".
type DataShapeError struct {
	Path   string
	Reason string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("malformed forecast at %s: %s", e.Path, e.Reason)
}
