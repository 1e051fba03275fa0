// Command forecast-report prints impact reports to the terminal.
//
// Usage:
//
//	forecast-report -file data/mock/forecast.json
//	cat forecast.json | forecast-report -file - -day 0
//	forecast-report            # fetches from WeatherAPI.com
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/forecast-report/internal/adapter/console"
	"github.com/couchcryptid/forecast-report/internal/adapter/weatherapi"
	"github.com/couchcryptid/forecast-report/internal/config"
	"github.com/couchcryptid/forecast-report/internal/domain"
	"github.com/couchcryptid/forecast-report/internal/observability"
	"github.com/couchcryptid/forecast-report/internal/report"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	file := flag.String("file", "", "forecast payload path, - for stdin (default: fetch from the provider)")
	noColor := flag.Bool("no-color", false, "disable color output")
	day := flag.Int("day", -1, "report a single day by index (default: all days up to REPORT_DAYS_TO_SHOW)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := observability.NewLoggerTo(os.Stderr, "warn", "text")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	data, err := loadPayload(ctx, *file, cfg, logger)
	if err != nil {
		return err
	}
	forecast, err := domain.ParseForecast(data)
	if err != nil {
		return err
	}

	composer := report.NewComposer(cfg.Settings, domain.NewClassifier(domain.DefaultThresholds()), nil)
	printer := console.NewPrinter(os.Stdout, *noColor)

	if *day >= 0 {
		text, err := composer.Compose(forecast, *day)
		if err != nil {
			return err
		}
		return printer.Print(text)
	}

	reports, err := composer.ComposeAll(ctx, forecast, cfg.Report.DaysToShow)
	if err != nil {
		return err
	}
	var failed int
	for _, r := range reports {
		if r.Err != nil {
			failed++
			if err := printer.PrintError(r.Date, r.Err); err != nil {
				return err
			}
			continue
		}
		if err := printer.Print(r.Text); err != nil {
			return err
		}
	}
	if failed == len(reports) {
		return errors.New("no forecast day could be reported")
	}
	return nil
}

func loadPayload(ctx context.Context, file string, cfg *config.Config, logger *slog.Logger) ([]byte, error) {
	switch file {
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	case "":
		if !cfg.Provider.Configured() {
			return nil, errors.New("no -file given and WEATHERAPI_KEY, WEATHERAPI_LAT or WEATHERAPI_LON is not set")
		}
		client := weatherapi.NewClient(cfg.Provider, observability.NewMetrics(), logger)
		return client.FetchForecast(ctx, cfg.Report.DaysToShow)
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read forecast file: %w", err)
		}
		return data, nil
	}
}
