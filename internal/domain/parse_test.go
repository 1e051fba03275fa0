package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/couchcryptid/forecast-report/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForecast(t *testing.T) {
	day := fixture.NewDay("2024-06-01").Rain(16, 40, 1.2)
	p := fixture.NewPayload(day)
	p.Alerts.Alert = []fixture.Alert{{
		Headline:  "Severe thunderstorm warning",
		Severity:  "Moderate",
		Event:     "Thunderstorm",
		Effective: "2024-06-01T14:00:00+10:00",
		Expires:   "2024-06-01T20:00:00+10:00",
	}}

	f, err := ParseForecast(p.MustJSON())
	require.NoError(t, err)

	assert.Equal(t, "Brisbane", f.Location.Name)
	assert.Equal(t, "Queensland", f.Location.Region)
	require.Len(t, f.Days, 1)
	require.NoError(t, f.Days[0].Err)
	assert.Equal(t, "2024-06-01", f.Days[0].Date)
	assert.Equal(t, "06:35 AM", f.Days[0].Astro.Sunrise)
	require.Len(t, f.Days[0].Hours, 24)

	h := f.Days[0].Hours[16]
	assert.Equal(t, time.Date(2024, time.June, 1, 16, 0, 0, 0, time.UTC), h.Time)
	assert.True(t, h.WillItRain)
	assert.Equal(t, 40, h.ChanceOfRain)
	assert.InDelta(t, 1.2, h.PrecipMM, 1e-9)
	assert.Equal(t, "Patchy rain nearby", h.Condition.Text)
	assert.False(t, f.Days[0].Hours[15].WillItRain)

	require.Len(t, f.Alerts, 1)
	assert.Equal(t, "Moderate", f.Alerts[0].Severity)
	assert.Equal(t, 14, f.Alerts[0].Effective.Hour())
}

func TestParseForecast_InvalidJSON(t *testing.T) {
	_, err := ParseForecast([]byte(`{not json`))
	require.Error(t, err)
	var shapeErr *DataShapeError
	assert.False(t, errors.As(err, &shapeErr))
}

func TestParseForecast_MissingPayloadFields(t *testing.T) {
	tests := []struct {
		name string
		data string
		path string
	}{
		{name: "no location", data: `{"forecast":{"forecastday":[{}]}}`, path: "location"},
		{name: "no forecast", data: `{"location":{}}`, path: "forecast.forecastday"},
		{name: "empty forecast days", data: `{"location":{},"forecast":{"forecastday":[]}}`, path: "forecast.forecastday"},
		{name: "bad alert time", data: `{"location":{},"forecast":{"forecastday":[{}]},"alerts":{"alert":[{"effective":"soon"}]}}`, path: "alerts.alert[0].effective"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseForecast([]byte(tt.data))
			var shapeErr *DataShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, tt.path, shapeErr.Path)
		})
	}
}

func TestParseForecast_MalformedDayIsIsolated(t *testing.T) {
	good := fixture.NewDay("2024-06-01")
	bad := fixture.NewDay("2024-06-02").Set(5, func(h *fixture.Hour) {
		h.Time = "2024-06-02T05:00"
	})
	p := fixture.NewPayload(good, bad)

	f, err := ParseForecast(p.MustJSON())
	require.NoError(t, err)
	require.Len(t, f.Days, 2)

	assert.NoError(t, f.Days[0].Err)
	assert.Len(t, f.Days[0].Hours, 24)

	var shapeErr *DataShapeError
	require.True(t, errors.As(f.Days[1].Err, &shapeErr))
	assert.Equal(t, "forecast.forecastday[1].hour[5].time", shapeErr.Path)
	assert.Empty(t, f.Days[1].Hours)
}

func TestParseForecast_MissingHourField(t *testing.T) {
	data := []byte(`{"location":{},"forecast":{"forecastday":[{"date":"2024-06-01","astro":{},"hour":[{"time":"2024-06-01 00:00","condition":{"text":"Sunny"},"will_it_rain":0,"chance_of_rain":0,"precip_mm":0,"wind_kph":1,"gust_kph":2,"feelslike_c":20,"humidity":50}]}]}}`)

	f, err := ParseForecast(data)
	require.NoError(t, err)

	var shapeErr *DataShapeError
	require.True(t, errors.As(f.Days[0].Err, &shapeErr))
	assert.Equal(t, "forecast.forecastday[0].hour[0].uv", shapeErr.Path)
}

func TestParseForecast_MissingAstro(t *testing.T) {
	data := []byte(`{"location":{},"forecast":{"forecastday":[{"date":"2024-06-01","hour":[]}]}}`)

	f, err := ParseForecast(data)
	require.NoError(t, err)

	var shapeErr *DataShapeError
	require.True(t, errors.As(f.Days[0].Err, &shapeErr))
	assert.Equal(t, "forecast.forecastday[0].astro", shapeErr.Path)
}
