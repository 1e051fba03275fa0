// Command genmock writes a deterministic WeatherAPI-shaped forecast payload
// for tests, demos and the integration suite.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/forecast.json -date 2024-06-01 -days 3 -seed 7
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/forecast-report/internal/domain"
	"github.com/couchcryptid/forecast-report/internal/fixture"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the payload (default: stdout)")
	date := flag.String("date", "2024-06-01", "first forecast date (YYYY-MM-DD)")
	days := flag.Int("days", 3, "number of forecast days")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	if err := domain.ValidateDaysToShow(*days); err != nil {
		return err
	}
	start, err := time.Parse("2006-01-02", *date)
	if err != nil {
		return fmt.Errorf("parse -date: %w", err)
	}

	data, err := fixture.Random(start, *days, *seed).JSON()
	if err != nil {
		return err
	}
	// Round-trip through the parser so a broken generator never ships a fixture.
	if _, err := domain.ParseForecast(data); err != nil {
		return fmt.Errorf("generated payload does not parse: %w", err)
	}

	if *out == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o600); err != nil {
		return err
	}
	fmt.Printf("wrote %d days to %s\n", *days, *out)
	return nil
}
