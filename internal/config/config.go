package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/couchcryptid/forecast-report/internal/domain"
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Report sources.
const (
	SourceKafka      = "kafka"
	SourceWeatherAPI = "weatherapi"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	Report   ReportConfig
	Provider ProviderConfig

	// Settings is the validated window, timeline and look-back bundle
	// built from Report.
	Settings domain.Settings
}

// ReportConfig holds the user-facing report options.
type ReportConfig struct {
	Source              string `envconfig:"REPORT_SOURCE" default:"kafka" validate:"oneof=kafka weatherapi"`
	StartHour           int    `envconfig:"REPORT_START_HOUR" default:"16"`
	EndHour             int    `envconfig:"REPORT_END_HOUR" default:"22"`
	TimelineCount       int    `envconfig:"REPORT_TIMELINE_COUNT" default:"3"`
	RainCheckHoursPrior int    `envconfig:"REPORT_RAIN_CHECK_HOURS_PRIOR" default:"3"`
	DaysToShow          int    `envconfig:"REPORT_DAYS_TO_SHOW" default:"3"`
	MaxMessageLength    int    `envconfig:"REPORT_MAX_MESSAGE_LENGTH" default:"950" validate:"gte=1"`
}

// ProviderConfig configures the WeatherAPI.com forecast client.
type ProviderConfig struct {
	URL               string        `envconfig:"WEATHERAPI_URL" default:"https://api.weatherapi.com/v1/forecast.json" validate:"required,url"`
	APIKey            string        `envconfig:"WEATHERAPI_KEY"`
	Latitude          string        `envconfig:"WEATHERAPI_LAT" validate:"omitempty,latitude"`
	Longitude         string        `envconfig:"WEATHERAPI_LON" validate:"omitempty,longitude"`
	Timeout           time.Duration `envconfig:"WEATHERAPI_TIMEOUT" default:"10s" validate:"gt=0"`
	RequestsPerSecond float64       `envconfig:"WEATHERAPI_RPS" default:"0.4" validate:"gt=0"`
	Burst             int           `envconfig:"WEATHERAPI_BURST" default:"3" validate:"gte=1"`
	CacheTTL          time.Duration `envconfig:"WEATHERAPI_CACHE_TTL" default:"10m"`
	CacheSize         int           `envconfig:"WEATHERAPI_CACHE_SIZE" default:"16" validate:"gte=1"`
	PollInterval      time.Duration `envconfig:"WEATHERAPI_POLL_INTERVAL" default:"1h" validate:"gt=0"`
}

// Query returns the provider's "lat,lon" location query.
func (p ProviderConfig) Query() string {
	return p.Latitude + "," + p.Longitude
}

// Configured reports whether the provider has credentials and a location.
func (p ProviderConfig) Configured() bool {
	return p.APIKey != "" && p.Latitude != "" && p.Longitude != ""
}

// Load reads configuration from the environment and an optional .env file,
// applying defaults where unset. Invalid report settings are returned as
// *domain.ConfigurationError.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	var report ReportConfig
	if err := envconfig.Process("", &report); err != nil {
		return nil, fmt.Errorf("parse report config: %w", err)
	}
	var provider ProviderConfig
	if err := envconfig.Process("", &provider); err != nil {
		return nil, fmt.Errorf("parse provider config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(report); err != nil {
		return nil, fmt.Errorf("validate report config: %w", err)
	}
	if err := validate.Struct(provider); err != nil {
		return nil, fmt.Errorf("validate provider config: %w", err)
	}

	if err := domain.ValidateDaysToShow(report.DaysToShow); err != nil {
		return nil, err
	}
	settings, err := domain.NewSettings(report.StartHour, report.EndHour, report.TimelineCount, report.RainCheckHoursPrior)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "raw-forecasts"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "forecast-reports"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "forecast-report"),
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		Report:   report,
		Provider: provider,
		Settings: settings,
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" && report.Source == SourceKafka {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}
	if report.Source == SourceWeatherAPI && !provider.Configured() {
		return nil, errors.New("REPORT_SOURCE is weatherapi but WEATHERAPI_KEY, WEATHERAPI_LAT or WEATHERAPI_LON is not set")
	}

	return cfg, nil
}
