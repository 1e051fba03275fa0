package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "forecast_report"

// Metrics holds the Prometheus counters, histograms, and gauges for the report pipeline.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	SegmentsProduced prometheus.Counter
	ReportsComposed  prometheus.Counter
	TransformErrors  prometheus.Counter
	DayErrors        prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Forecast provider metrics.
	ProviderRequests    *prometheus.CounterVec // labels: outcome={success,error,rejected}
	ProviderCache       *prometheus.CounterVec // labels: result={hit,miss}
	ProviderAPIDuration prometheus.Histogram
	ProviderPolling     prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total raw forecast payloads read from the source.",
		}),
		SegmentsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_produced_total",
			Help:      "Total report segments written to the sink topic.",
		}),
		ReportsComposed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_composed_total",
			Help:      "Total day reports composed.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Total payloads that produced no report.",
		}),
		DayErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "day_errors_total",
			Help:      "Total forecast days skipped because their data was malformed or empty.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of payloads per extracted batch.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Forecast provider requests by outcome.",
		}, []string{"outcome"}),
		ProviderCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_cache_total",
			Help:      "Forecast cache lookups by result.",
		}, []string{"result"}),
		ProviderAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_api_duration_seconds",
			Help:      "Forecast provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ProviderPolling: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "provider_polling",
			Help:      "1 when forecasts are polled from the provider instead of Kafka.",
		}),
	}

	prometheus.MustRegister(
		m.MessagesConsumed,
		m.SegmentsProduced,
		m.ReportsComposed,
		m.TransformErrors,
		m.DayErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.ProviderRequests,
		m.ProviderCache,
		m.ProviderAPIDuration,
		m.ProviderPolling,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		MessagesConsumed:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "messages_consumed_total"}),
		SegmentsProduced:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "segments_produced_total"}),
		ReportsComposed:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "reports_composed_total"}),
		TransformErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "transform_errors_total"}),
		DayErrors:               prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "day_errors_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "pipeline_running"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "batch_processing_duration_seconds"}),
		ProviderRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "provider_requests_total"}, []string{"outcome"}),
		ProviderCache:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "provider_cache_total"}, []string{"result"}),
		ProviderAPIDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "provider_api_duration_seconds"}),
		ProviderPolling:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "provider_polling"}),
	}
}
