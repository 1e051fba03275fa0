package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/couchcryptid/forecast-report/internal/domain"
)

// Rain reports rain in the look-back window and during the analysis window.
type Rain struct {
	settings   domain.Settings
	classifier domain.Classifier
	prior      []domain.Entry
	during     []domain.Entry
}

// NewRain extracts the rain hours of both windows from a day's hours.
func NewRain(hours []domain.HourlyRecord, s domain.Settings, c domain.Classifier) *Rain {
	return &Rain{
		settings:   s,
		classifier: c,
		prior:      domain.ExtractRain(hours, s.PreWindow),
		during:     domain.ExtractRain(hours, s.Window),
	}
}

// Summary states whether rain fell before and is expected during the window.
func (r *Rain) Summary() string {
	return fmt.Sprintf("Rain Earlier: %s\nRain Expected: %s\n", rainStatus(r.prior), rainStatus(r.during))
}

// Detail renders the look-back report followed by the in-window report.
func (r *Rain) Detail() string {
	return r.PriorDetail() + r.DuringDetail()
}

// PriorDetail reports how much rain fell in the look-back window and how
// recently, which decides whether the ground is playable at the start.
func (r *Rain) PriorDetail() string {
	var b strings.Builder
	b.WriteString(sectionHeader("PRIOR RAINFALL", iconRain))
	if len(r.prior) == 0 {
		fmt.Fprintf(&b, "%s RAIN %s\n", rainStatus(r.prior), omitted)
		return b.String()
	}

	last := r.prior[len(r.prior)-1]
	fmt.Fprintf(&b, "Rained %d/%d last hours (Last %s) | %s mm\n",
		len(r.prior), r.settings.PreWindow.Hours(), last.Clock(),
		formatMM(domain.Total(r.prior, domain.Precipitation)))
	fmt.Fprintf(&b, "%s\n", r.classifier.Classify(domain.ScaleRainRecency, r.hoursSince(last)))
	b.WriteString(r.timeline(r.prior))
	return b.String()
}

// DuringDetail reports rain probability, coverage and volume in the window.
func (r *Rain) DuringDetail() string {
	var b strings.Builder
	b.WriteString(sectionHeader("RAIN", iconRain))
	if len(r.during) == 0 {
		fmt.Fprintf(&b, "%s RAIN %s\n", rainStatus(r.during), omitted)
		return b.String()
	}

	duration := r.settings.Window.Duration()
	probability := domain.WeightedProbability(r.during, duration)
	coverage := domain.Coverage(r.during, duration)
	total := domain.Total(r.during, domain.Precipitation)

	fmt.Fprintf(&b, "Rain %d/%d hours | Avg. Chance: %d%% | %s mm\n", len(r.during), duration, probability, formatMM(total))
	fmt.Fprintf(&b, "Probability: %s\n", r.classifier.Classify(domain.ScaleRainProbability, float64(probability)))
	fmt.Fprintf(&b, "Coverage: %s\n", r.classifier.Classify(domain.ScaleRainCoverage, float64(coverage)))
	fmt.Fprintf(&b, "Precipitation: %s\n", r.classifier.Classify(domain.ScalePrecipitation, total))
	b.WriteString(r.timeline(r.during))
	return b.String()
}

// hoursSince returns the fractional hours between the last rain hour and the
// window start.
func (r *Rain) hoursSince(last domain.Entry) float64 {
	start := time.Duration(r.settings.Window.Start()) * time.Hour
	rained := time.Duration(last.At.Hour())*time.Hour + time.Duration(last.At.Minute())*time.Minute
	return (start - rained).Hours()
}

func (r *Rain) timeline(entries []domain.Entry) string {
	return renderTimeline("rain", entries, domain.RainChance, r.settings.TimelineCount, func(e domain.Entry) string {
		return fmt.Sprintf("%s%% (%s mm)", formatNumber(e.Value(domain.RainChance)), formatMM(e.Value(domain.Precipitation)))
	})
}

func rainStatus(entries []domain.Entry) string {
	if len(entries) == 0 {
		return markerNo
	}
	return markerYes
}
