package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/forecast-report/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/forecast-report/internal/adapter/kafka"
	"github.com/couchcryptid/forecast-report/internal/adapter/weatherapi"
	"github.com/couchcryptid/forecast-report/internal/config"
	"github.com/couchcryptid/forecast-report/internal/domain"
	"github.com/couchcryptid/forecast-report/internal/observability"
	"github.com/couchcryptid/forecast-report/internal/pipeline"
	"github.com/couchcryptid/forecast-report/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	extractor, sourceCloser := newExtractor(cfg, logger, metrics)
	writer := kafkaadapter.NewWriter(cfg, logger)

	composer := report.NewComposer(cfg.Settings, domain.NewClassifier(domain.DefaultThresholds()), nil)
	transformer := pipeline.NewTransformer(composer, pipeline.TransformOptions{
		DaysToShow:       cfg.Report.DaysToShow,
		MaxMessageLength: cfg.Report.MaxMessageLength,
	}, nil, logger, metrics)

	p := pipeline.New(extractor, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start report pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := sourceCloser.Close(); err != nil {
		logger.Error("source close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newExtractor selects the payload source from REPORT_SOURCE.
func newExtractor(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) (pipeline.BatchExtractor, io.Closer) {
	if cfg.Report.Source != config.SourceWeatherAPI {
		reader := kafkaadapter.NewReader(cfg, logger)
		logger.Info("consuming forecasts from kafka", "topic", cfg.KafkaSourceTopic, "group_id", cfg.KafkaGroupID)
		return reader, reader
	}

	prov := cfg.Provider
	client := weatherapi.NewClient(prov, metrics, logger)
	source := weatherapi.NewCachedSource(
		weatherapi.NewRateLimitedSource(client, prov.RequestsPerSecond, prov.Burst),
		prov.CacheSize, prov.CacheTTL, nil, metrics,
	)
	metrics.ProviderPolling.Set(1)
	logger.Info("polling weatherapi",
		"interval", prov.PollInterval,
		"days", cfg.Report.DaysToShow,
		"rps", prov.RequestsPerSecond,
		"cache_ttl", prov.CacheTTL,
	)
	return weatherapi.NewExtractor(source, cfg.Report.DaysToShow, prov.PollInterval, nil, logger), nopCloser{}
}
