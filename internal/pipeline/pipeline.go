package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/forecast-report/internal/domain"
	"github.com/couchcryptid/forecast-report/internal/observability"
)

// BatchExtractor reads up to batchSize raw forecast payloads from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawMessage, error)
}

// Transformer turns one raw forecast payload into report segments.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawMessage) ([]domain.ReportMessage, error)
}

// BatchLoader writes report segments to the notification channel.
type BatchLoader interface {
	LoadBatch(ctx context.Context, messages []domain.ReportMessage) error
}

// Status summarizes what the pipeline has delivered so far.
type Status struct {
	SegmentsLoaded   int64     `json:"segments_loaded"`
	LastLoadedAt     time.Time `json:"last_loaded_at"`
	LastForecastDate string    `json:"last_forecast_date,omitempty"`
}

// Pipeline orchestrates the extract-transform-load loop.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
	batchSize   int

	mu     sync.Mutex
	status Status
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// CheckReadiness returns nil once the pipeline has loaded at least one report,
// or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not loaded any reports yet")
	}
	return nil
}

// Status returns a snapshot of delivery progress.
func (p *Pipeline) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

func (p *Pipeline) recordLoaded(messages []domain.ReportMessage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status.SegmentsLoaded += int64(len(messages))
	p.status.LastLoadedAt = time.Now()
	if date := messages[len(messages)-1].Headers[HeaderForecastDate]; date != "" {
		p.status.LastForecastDate = date
	}
}

// Retry delays for extract and load failures.
const (
	minRetryDelay = 200 * time.Millisecond
	maxRetryDelay = 5 * time.Second
)

// Run polls, composes and publishes reports until ctx is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	delay := retryDelay{current: minRetryDelay}
	for ctx.Err() == nil {
		if !p.cycle(ctx, &delay) {
			break
		}
	}
	p.logger.Info("pipeline stopping", "reason", context.Cause(ctx))
	return nil
}

// cycle extracts one batch and delivers its reports. It returns false once
// the pipeline should stop.
func (p *Pipeline) cycle(ctx context.Context, delay *retryDelay) bool {
	started := time.Now()

	payloads, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	switch {
	case ctx.Err() != nil:
		return false
	case err != nil:
		p.logger.Error("extract batch failed", "error", err)
		return delay.wait(ctx)
	case len(payloads) == 0:
		return true
	}

	p.metrics.MessagesConsumed.Add(float64(len(payloads)))
	p.metrics.BatchSize.Observe(float64(len(payloads)))
	delay.reset()

	loaded, ok := p.deliver(ctx, payloads, delay)
	if loaded > 0 {
		p.metrics.BatchProcessingDuration.Observe(time.Since(started).Seconds())
		p.ready.Store(true)
	}
	return ok
}

// deliver transforms every payload, publishes the segments in one load and
// then commits the payloads behind them. A payload that yields no report is
// committed and skipped; its input is deterministic so a retry would fail
// again. Offsets are not committed when the load fails.
func (p *Pipeline) deliver(ctx context.Context, payloads []domain.RawMessage, delay *retryDelay) (int, bool) {
	var segments []domain.ReportMessage
	pending := make([]domain.RawMessage, 0, len(payloads))

	for _, raw := range payloads {
		out, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			if ctx.Err() != nil {
				return 0, false
			}
			p.logger.Warn("skipping forecast payload", "error", err,
				"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
			p.metrics.TransformErrors.Inc()
			p.commit(ctx, raw)
			continue
		}
		segments = append(segments, out...)
		pending = append(pending, raw)
	}
	if len(segments) == 0 {
		return 0, true
	}

	if err := p.loader.LoadBatch(ctx, segments); err != nil {
		p.logger.Error("load batch failed", "error", err, "segments", len(segments))
		return 0, delay.wait(ctx)
	}
	p.metrics.SegmentsProduced.Add(float64(len(segments)))
	p.recordLoaded(segments)

	for _, raw := range pending {
		p.commit(ctx, raw)
	}
	return len(segments), true
}

// commit acknowledges a payload when its source supports it.
func (p *Pipeline) commit(ctx context.Context, raw domain.RawMessage) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}

// retryDelay doubles after every failed attempt up to maxRetryDelay.
type retryDelay struct {
	current time.Duration
}

func (d *retryDelay) reset() { d.current = minRetryDelay }

// wait sleeps for the current delay and doubles it. It returns false if ctx
// ends first.
func (d *retryDelay) wait(ctx context.Context) bool {
	timer := time.NewTimer(d.current)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
	}
	d.current = min(d.current*2, maxRetryDelay)
	return true
}
