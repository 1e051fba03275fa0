package report

import (
	"strings"
	"testing"

	"github.com/couchcryptid/forecast-report/internal/domain"
	"github.com/couchcryptid/forecast-report/internal/fixture"
	"github.com/stretchr/testify/require"
)

var classifier = domain.NewClassifier(domain.DefaultThresholds())

func parseHours(t *testing.T, day fixture.Day) []domain.HourlyRecord {
	t.Helper()
	f, err := domain.ParseForecast(fixture.NewPayload(day).MustJSON())
	require.NoError(t, err)
	require.NoError(t, f.Days[0].Err)
	return f.Days[0].Hours
}

func newSettings(t *testing.T, start, end, timeline, prior int) domain.Settings {
	t.Helper()
	s, err := domain.NewSettings(start, end, timeline, prior)
	require.NoError(t, err)
	return s
}

// expand substitutes section icons into expected report text and turns a
// two-space line indent into the tab used by timeline lines.
func expand(text string) string {
	return strings.NewReplacer(
		"{rain}", iconRain,
		"{wind}", iconWind,
		"{sun}", iconTemperature,
		"{alert}", iconAlert,
		"\n  ", "\n\t",
	).Replace(text)
}
