package weatherapi

import (
	"context"
	"log/slog"
	"time"

	"github.com/couchcryptid/forecast-report/internal/domain"
	"github.com/jonboulle/clockwork"
)

// SourceName keys and tags messages polled from the provider.
const SourceName = "weatherapi"

// Extractor implements pipeline.BatchExtractor by polling a Source. Each
// successful poll yields one payload; the next poll waits for the interval.
type Extractor struct {
	source   Source
	days     int
	interval time.Duration
	clock    clockwork.Clock
	logger   *slog.Logger
	next     time.Time
}

// NewExtractor creates a poller fetching days of forecast every interval.
// The first poll happens immediately.
func NewExtractor(source Source, days int, interval time.Duration, clock clockwork.Clock, logger *slog.Logger) *Extractor {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Extractor{
		source:   source,
		days:     days,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

// ExtractBatch blocks until the next poll is due, then fetches one payload.
// A failed fetch does not move the schedule, so the pipeline's backoff
// decides when to retry.
func (e *Extractor) ExtractBatch(ctx context.Context, _ int) ([]domain.RawMessage, error) {
	if wait := e.next.Sub(e.clock.Now()); wait > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-e.clock.After(wait):
		}
	}

	body, err := e.source.FetchForecast(ctx, e.days)
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	e.next = now.Add(e.interval)
	e.logger.Info("polled forecast", "days", e.days, "bytes", len(body), "next_poll", e.next)
	return []domain.RawMessage{{
		Key:       []byte(SourceName),
		Value:     body,
		Headers:   map[string]string{"source": SourceName},
		Topic:     SourceName,
		Timestamp: now,
	}}, nil
}
