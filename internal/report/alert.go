package report

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/forecast-report/internal/domain"
)

const alertTimeLayout = "2006-01-02 (15:04)"

// Alert reports the most recent weather alert of the payload.
type Alert struct {
	latest *domain.Alert
}

// NewAlert keeps the last alert, which the provider lists newest last.
func NewAlert(alerts []domain.Alert) *Alert {
	if len(alerts) == 0 {
		return &Alert{}
	}
	latest := alerts[len(alerts)-1]
	return &Alert{latest: &latest}
}

func (a *Alert) status() string {
	if a.latest == nil {
		return "🟩 NOT ACTIVE"
	}
	return fmt.Sprintf("🟥 ACTIVE (%s)", strings.ToUpper(a.latest.Severity))
}

// Summary renders the alert status line.
func (a *Alert) Summary() string {
	return fmt.Sprintf("Alert: %s\n", a.status())
}

// Detail renders the alert period, hazard and headline.
func (a *Alert) Detail() string {
	var b strings.Builder
	b.WriteString(sectionHeader("ALERT", iconAlert))
	if a.latest == nil {
		fmt.Fprintf(&b, "%s %s\n", a.status(), omitted)
		return b.String()
	}
	fmt.Fprintf(&b, "%s - %s\n", a.latest.Effective.Format(alertTimeLayout), a.latest.Expires.Format(alertTimeLayout))
	fmt.Fprintf(&b, "%s\n", a.status())
	fmt.Fprintf(&b, "Hazard: %s\n", strings.ToUpper(a.latest.Event))
	fmt.Fprintf(&b, "Note: %s\n", strings.ToUpper(a.latest.Headline))
	return b.String()
}
