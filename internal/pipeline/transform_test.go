package pipeline_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/forecast-report/internal/domain"
	"github.com/couchcryptid/forecast-report/internal/fixture"
	"github.com/couchcryptid/forecast-report/internal/observability"
	"github.com/couchcryptid/forecast-report/internal/pipeline"
	"github.com/couchcryptid/forecast-report/internal/report"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

func newTransformer(t *testing.T, opts pipeline.TransformOptions, metrics *observability.Metrics) *pipeline.ReportTransformer {
	t.Helper()
	settings, err := domain.NewSettings(16, 22, 3, 3)
	require.NoError(t, err)
	clock := clockwork.NewFakeClockAt(fixedNow)
	composer := report.NewComposer(settings, domain.NewClassifier(domain.DefaultThresholds()), clock)
	return pipeline.NewTransformer(composer, opts, clock, slog.Default(), metrics)
}

func TestReportTransformer_Transform(t *testing.T) {
	metrics := newTestMetrics()
	tfm := newTransformer(t, pipeline.TransformOptions{DaysToShow: 2, MaxMessageLength: 950}, metrics)
	payload := fixture.NewPayload(
		fixture.NewDay("2024-06-01").Rain(17, 60, 1.5),
		fixture.NewDay("2024-06-02"),
		fixture.NewDay("2024-06-03"),
	)

	out, err := tfm.Transform(context.Background(), domain.RawMessage{Value: payload.MustJSON()})
	require.NoError(t, err)

	byDate := map[string][]domain.ReportMessage{}
	for _, msg := range out {
		byDate[msg.Headers[pipeline.HeaderForecastDate]] = append(byDate[msg.Headers[pipeline.HeaderForecastDate]], msg)
	}
	require.Len(t, byDate, 2, "only DaysToShow days are reported")

	first := byDate["2024-06-01"]
	require.Greater(t, len(first), 1, "a full report exceeds one segment")
	var text strings.Builder
	for i, msg := range first {
		assert.Equal(t, "Brisbane,Queensland,Australia|2024-06-01", string(msg.Key))
		assert.Equal(t, first[0].Headers[pipeline.HeaderReportID], msg.Headers[pipeline.HeaderReportID])
		assert.Equal(t, "2024-06-01T08:00:00Z", msg.Headers[pipeline.HeaderGeneratedAt])
		assert.True(t, strings.HasPrefix(msg.Headers[pipeline.HeaderSegment], string(rune('1'+i))+"/"))
		assert.LessOrEqual(t, len([]rune(string(msg.Value))), 950)
		text.Write(msg.Value)
	}
	_, err = uuid.Parse(first[0].Headers[pipeline.HeaderReportID])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text.String(), "Forecast 2024-06-01\n"))
	assert.Contains(t, text.String(), "Rain Expected: 🟥 YES")

	assert.NotEqual(t, first[0].Headers[pipeline.HeaderReportID], byDate["2024-06-02"][0].Headers[pipeline.HeaderReportID])
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.ReportsComposed), 0)
}

func TestReportTransformer_SkipsBadDay(t *testing.T) {
	metrics := newTestMetrics()
	tfm := newTransformer(t, pipeline.TransformOptions{DaysToShow: 3, MaxMessageLength: 0}, metrics)
	bad := fixture.NewDay("2024-06-02").Set(1, func(h *fixture.Hour) { h.Time = "1am" })
	payload := fixture.NewPayload(fixture.NewDay("2024-06-01"), bad, fixture.NewDay("2024-06-03"))

	out, err := tfm.Transform(context.Background(), domain.RawMessage{Value: payload.MustJSON()})
	require.NoError(t, err)

	require.Len(t, out, 2, "unsplit reports are one segment each")
	assert.Equal(t, "2024-06-01", out[0].Headers[pipeline.HeaderForecastDate])
	assert.Equal(t, "2024-06-03", out[1].Headers[pipeline.HeaderForecastDate])
	assert.Equal(t, "1/1", out[0].Headers[pipeline.HeaderSegment])
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.DayErrors), 0)
}

func TestReportTransformer_Errors(t *testing.T) {
	tfm := newTransformer(t, pipeline.TransformOptions{DaysToShow: 1, MaxMessageLength: 950}, newTestMetrics())

	t.Run("invalid json", func(t *testing.T) {
		_, err := tfm.Transform(context.Background(), domain.RawMessage{Value: []byte("not json")})
		assert.Error(t, err)
	})

	t.Run("missing location", func(t *testing.T) {
		_, err := tfm.Transform(context.Background(), domain.RawMessage{Value: []byte(`{"forecast":{"forecastday":[{}]}}`)})
		var shapeErr *domain.DataShapeError
		assert.True(t, errors.As(err, &shapeErr))
	})

	t.Run("every day malformed", func(t *testing.T) {
		bad := fixture.NewDay("2024-06-01").Set(0, func(h *fixture.Hour) { h.Time = "" })
		_, err := tfm.Transform(context.Background(), domain.RawMessage{Value: fixture.NewPayload(bad).MustJSON()})
		assert.ErrorIs(t, err, pipeline.ErrNoReports)
	})
}

func TestReportTransformer_GeneratedPayloads(t *testing.T) {
	tfm := newTransformer(t, pipeline.TransformOptions{DaysToShow: 3, MaxMessageLength: 320}, newTestMetrics())

	for seed := uint64(1); seed <= 20; seed++ {
		payload := fixture.Random(fixedNow, 3, seed)
		out, err := tfm.Transform(context.Background(), domain.RawMessage{Value: payload.MustJSON()})
		require.NoError(t, err, "seed %d", seed)

		dates := map[string]bool{}
		for _, msg := range out {
			dates[msg.Headers[pipeline.HeaderForecastDate]] = true
			assert.LessOrEqual(t, len([]rune(string(msg.Value))), 320)
		}
		assert.Len(t, dates, 3, "seed %d", seed)
	}
}
