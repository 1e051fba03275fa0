package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/couchcryptid/forecast-report/internal/domain"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// Composer assembles the full report for a forecast day. It holds no mutable
// state and is safe for concurrent use.
type Composer struct {
	settings   domain.Settings
	classifier domain.Classifier
	clock      clockwork.Clock
}

// NewComposer creates a composer. A nil clock uses real time.
func NewComposer(s domain.Settings, c domain.Classifier, clock clockwork.Clock) *Composer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Composer{settings: s, classifier: c, clock: clock}
}

// DayReport is the outcome of composing one forecast day.
type DayReport struct {
	Date string
	Text string
	Err  error
}

// Compose renders the report for f.Days[day]. Apart from the generation
// timestamp, the output depends only on the forecast and the settings.
func (c *Composer) Compose(f domain.Forecast, day int) (string, error) {
	if day < 0 || day >= len(f.Days) {
		return "", &domain.DataShapeError{
			Path:   fmt.Sprintf("forecast.forecastday[%d]", day),
			Reason: fmt.Sprintf("payload has %d days", len(f.Days)),
		}
	}
	d := f.Days[day]
	if d.Err != nil {
		return "", d.Err
	}

	condition, err := NewCondition(d.Hours, c.settings.Window).Summary()
	if err != nil {
		return "", fmt.Errorf("compose %s: %w", d.Date, err)
	}
	alert := NewAlert(f.Alerts)
	rain := NewRain(d.Hours, c.settings, c.classifier)
	wind := NewWind(d.Hours, c.settings, c.classifier)
	temperature := NewTemperature(d.Hours, c.settings, c.classifier)

	var b strings.Builder
	b.WriteString(dateHeader(d.Date, c.clock.Now()))
	b.WriteString(locationHeader(f.Location))
	b.WriteString(daylightHeader(d.Astro))
	b.WriteString(hoursHeader(c.settings.Window))

	b.WriteString("\n- - - SUMMARY - - -\n")
	b.WriteString(condition)
	b.WriteString(alert.Summary())
	b.WriteString(rain.Summary())
	b.WriteString(wind.Summary())
	b.WriteString(temperature.Summary())

	b.WriteString(alert.Detail())
	b.WriteString(rain.Detail())
	b.WriteString(wind.Detail())
	b.WriteString(temperature.Detail())
	return b.String(), nil
}

// ComposeAll composes the first days of the forecast concurrently. A failed
// day is reported in its DayReport and does not affect the others; the
// returned error is only set when ctx is canceled.
func (c *Composer) ComposeAll(ctx context.Context, f domain.Forecast, days int) ([]DayReport, error) {
	n := min(days, len(f.Days))
	if n <= 0 {
		return nil, nil
	}
	reports := make([]DayReport, n)

	g, ctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := c.Compose(f, i)
			reports[i] = DayReport{Date: f.Days[i].Date, Text: text, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compose forecast days: %w", err)
	}
	return reports, nil
}
