package report

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/forecast-report/internal/domain"
)

// metricSection describes how one metric of a reporter is rendered.
type metricSection struct {
	metric domain.Metric
	label  string // summary label and header title, e.g. "Wind Speed"
	icon   string
	stats  func(peak float64, avg int) string
	value  func(v float64) string
}

// metricReporter renders the shared max/avg/impact/timeline layout used by
// the wind and temperature reports.
type metricReporter struct {
	settings   domain.Settings
	classifier domain.Classifier
	entries    []domain.Entry
	sections   []metricSection
}

func (r metricReporter) impact(sec metricSection) (domain.Impact, bool) {
	peak, err := domain.Max(r.entries, sec.metric)
	if err != nil {
		return domain.Impact{}, false
	}
	return r.classifier.Classify(domain.ScaleFor(sec.metric), peak), true
}

func (r metricReporter) Summary() string {
	var b strings.Builder
	for _, sec := range r.sections {
		impact, ok := r.impact(sec)
		if !ok {
			fmt.Fprintf(&b, "%s: %s\n", sec.label, omitted)
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", sec.label, impact)
	}
	return b.String()
}

func (r metricReporter) Detail() string {
	var b strings.Builder
	for _, sec := range r.sections {
		b.WriteString(r.section(sec))
	}
	return b.String()
}

func (r metricReporter) section(sec metricSection) string {
	var b strings.Builder
	b.WriteString(sectionHeader(strings.ToUpper(sec.label), sec.icon))

	peak, err := domain.Max(r.entries, sec.metric)
	if err != nil {
		fmt.Fprintf(&b, "%s\n", omitted)
		return b.String()
	}
	avg, err := domain.Average(r.entries, sec.metric)
	if err != nil {
		fmt.Fprintf(&b, "%s\n", omitted)
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n", sec.stats(peak, avg))
	fmt.Fprintf(&b, "%s\n", r.classifier.Classify(domain.ScaleFor(sec.metric), peak))
	b.WriteString(renderTimeline(sec.metric.DisplayName(), r.entries, sec.metric, r.settings.TimelineCount, func(e domain.Entry) string {
		return sec.value(e.Value(sec.metric))
	}))
	return b.String()
}
