// Package weatherapi fetches forecast payloads from the WeatherAPI.com
// forecast endpoint. The Client is wrapped by rate limiting and caching
// decorators, and Extractor adapts any Source to the pipeline.
package weatherapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/forecast-report/internal/config"
	"github.com/couchcryptid/forecast-report/internal/observability"
	"github.com/sony/gobreaker/v2"
)

// Source returns a raw forecast payload covering the given number of days.
type Source interface {
	FetchForecast(ctx context.Context, days int) ([]byte, error)
}

// Client implements Source against the WeatherAPI.com forecast endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	query      string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a forecast client for the configured location.
func NewClient(cfg config.ProviderConfig, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
		query:      cfg.Query(),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    newBreaker(),
		metrics:    metrics,
		logger:     logger,
	}
}

func newBreaker() *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})
}

// FetchForecast requests days of forecast including alerts. The response
// body is returned verbatim; shape validation happens in domain.ParseForecast.
func (c *Client) FetchForecast(ctx context.Context, days int) ([]byte, error) {
	start := time.Now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.doRequest(ctx, days)
	})
	c.metrics.ProviderAPIDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.metrics.ProviderRequests.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("weatherapi unavailable: %w", err)
	case err != nil:
		c.metrics.ProviderRequests.WithLabelValues("error").Inc()
		c.logger.Warn("forecast request failed", "error", err)
		return nil, err
	}
	c.metrics.ProviderRequests.WithLabelValues("success").Inc()
	return body, nil
}

func (c *Client) doRequest(ctx context.Context, days int) ([]byte, error) {
	params := url.Values{
		"q":      {c.query},
		"key":    {c.apiKey},
		"days":   {strconv.Itoa(days)},
		"alerts": {"yes"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("weatherapi error: status %d: %s", resp.StatusCode, body)
	}
	return body, nil
}
