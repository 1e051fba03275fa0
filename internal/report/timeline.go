package report

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/forecast-report/internal/domain"
)

// renderTimeline lists the top entries by m under a "TOP N PEAK" heading,
// one "\tHH:MM: value" line each.
func renderTimeline(title string, entries []domain.Entry, m domain.Metric, n int, value func(domain.Entry) string) string {
	top := domain.Top(entries, m, n)
	if len(top) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "- - - TOP %d PEAK %s HOURS - - -\n", len(top), strings.ToUpper(title))
	for _, e := range top {
		fmt.Fprintf(&b, "\t%s: %s\n", e.Clock(), value(e))
	}
	return b.String()
}
