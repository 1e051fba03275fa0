package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(m Metric, values ...float64) []Entry {
	out := make([]Entry, len(values))
	for i, v := range values {
		out[i] = Entry{At: at(16+i, 0), Values: map[Metric]float64{m: v}}
	}
	return out
}

func TestMaxAndAverage(t *testing.T) {
	es := entries(WindSpeed, 10, 22, 15)

	peak, err := Max(es, WindSpeed)
	require.NoError(t, err)
	assert.Equal(t, 22.0, peak)

	avg, err := Average(es, WindSpeed)
	require.NoError(t, err)
	assert.Equal(t, 16, avg)
}

func TestAverage_RoundsHalfToEven(t *testing.T) {
	avg, err := Average(entries(FeelsLike, 2, 3), FeelsLike)
	require.NoError(t, err)
	assert.Equal(t, 2, avg)

	avg, err = Average(entries(FeelsLike, 3, 4), FeelsLike)
	require.NoError(t, err)
	assert.Equal(t, 4, avg)
}

func TestAverage_IdenticalValues(t *testing.T) {
	for _, v := range []float64{0, 7, 33, 100} {
		avg, err := Average(entries(Humidity, v, v, v, v), Humidity)
		require.NoError(t, err)
		assert.Equal(t, int(v), avg)
	}
}

func TestAggregates_EmptyWindow(t *testing.T) {
	_, err := Max(nil, WindGust)
	assert.ErrorIs(t, err, ErrEmptyWindow)

	_, err = Average(nil, WindGust)
	assert.ErrorIs(t, err, ErrEmptyWindow)

	_, err = Mode(nil)
	assert.ErrorIs(t, err, ErrEmptyWindow)

	assert.Equal(t, 0, Coverage(nil, 6))
	assert.Equal(t, 0, WeightedProbability(nil, 6))
	assert.Equal(t, 0.0, Total(nil, Precipitation))
}

func TestRainAggregates(t *testing.T) {
	rain := []Entry{
		{At: at(16, 0), Values: map[Metric]float64{RainChance: 40, Precipitation: 1.0}},
		{At: at(18, 0), Values: map[Metric]float64{RainChance: 60, Precipitation: 0.5}},
		{At: at(20, 0), Values: map[Metric]float64{RainChance: 80, Precipitation: 2.0}},
	}

	assert.Equal(t, 50, Coverage(rain, 6))
	assert.Equal(t, 30, WeightedProbability(rain, 6))
	assert.Equal(t, 3.5, Total(rain, Precipitation))
}

func TestTotal_RoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, 0.3, Total(entries(Precipitation, 0.1, 0.2), Precipitation))
	assert.Equal(t, 1.23, Total(entries(Precipitation, 1.234), Precipitation))
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "single", values: []string{"Sunny"}, want: "Sunny"},
		{name: "clear winner", values: []string{"Overcast", "Sunny", "Sunny"}, want: "Sunny"},
		{name: "tie goes to first seen", values: []string{"Mist", "Sunny", "Sunny", "Mist"}, want: "Mist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mode(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
