package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/couchcryptid/forecast-report/internal/domain"
	"github.com/couchcryptid/forecast-report/internal/observability"
	"github.com/couchcryptid/forecast-report/internal/report"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Headers set on every report segment.
const (
	HeaderReportID     = "report_id"
	HeaderForecastDate = "forecast_date"
	HeaderSegment      = "segment"
	HeaderGeneratedAt  = "generated_at"
)

// ErrNoReports is returned when no day of a payload produced a report.
var ErrNoReports = errors.New("no forecast day produced a report")

// TransformOptions controls how many days are reported and how reports are segmented.
type TransformOptions struct {
	DaysToShow       int
	MaxMessageLength int
}

// ReportTransformer implements Transformer by composing one report per
// forecast day and splitting each into channel-sized segments.
type ReportTransformer struct {
	composer *report.Composer
	opts     TransformOptions
	clock    clockwork.Clock
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewTransformer creates a ReportTransformer. A nil clock uses real time.
func NewTransformer(composer *report.Composer, opts TransformOptions, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *ReportTransformer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ReportTransformer{
		composer: composer,
		opts:     opts,
		clock:    clock,
		logger:   logger,
		metrics:  metrics,
	}
}

// Transform parses the payload and returns the segments of every day that
// could be reported. Days with malformed or empty data are logged and
// skipped; the payload fails only when no day succeeds.
func (t *ReportTransformer) Transform(ctx context.Context, raw domain.RawMessage) ([]domain.ReportMessage, error) {
	forecast, err := domain.ParseForecast(raw.Value)
	if err != nil {
		return nil, err
	}

	days, err := t.composer.ComposeAll(ctx, forecast, t.opts.DaysToShow)
	if err != nil {
		return nil, err
	}

	generatedAt := t.clock.Now().UTC().Format(time.RFC3339)
	var out []domain.ReportMessage
	for _, day := range days {
		if day.Err != nil {
			t.logger.Warn("skipping forecast day", "forecast_date", day.Date, "error", day.Err)
			t.metrics.DayErrors.Inc()
			continue
		}
		t.metrics.ReportsComposed.Inc()
		out = append(out, t.segments(forecast.Location, day, generatedAt)...)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("transform forecast for %s: %w", forecast.Location.Name, ErrNoReports)
	}
	return out, nil
}

func (t *ReportTransformer) segments(loc domain.Location, day report.DayReport, generatedAt string) []domain.ReportMessage {
	parts := report.Split(day.Text, t.opts.MaxMessageLength)
	reportID := uuid.NewString()
	key := []byte(reportKey(loc, day.Date))

	msgs := make([]domain.ReportMessage, 0, len(parts))
	for i, part := range parts {
		msgs = append(msgs, domain.ReportMessage{
			Key:   key,
			Value: []byte(part),
			Headers: map[string]string{
				HeaderReportID:     reportID,
				HeaderForecastDate: day.Date,
				HeaderSegment:      fmt.Sprintf("%d/%d", i+1, len(parts)),
				HeaderGeneratedAt:  generatedAt,
			},
		})
	}
	return msgs
}

// reportKey keys segments by location and date so all segments of a report
// land in the same partition in order.
func reportKey(loc domain.Location, date string) string {
	return strings.Join([]string{loc.Name, loc.Region, loc.Country}, ",") + "|" + date
}
