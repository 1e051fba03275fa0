package report

import (
	"fmt"

	"github.com/couchcryptid/forecast-report/internal/domain"
)

// Condition reports the prevailing sky condition in the window.
type Condition struct {
	hours []domain.HourlyRecord
}

// NewCondition keeps the day's hours that fall in the window.
func NewCondition(hours []domain.HourlyRecord, w domain.TimeWindow) *Condition {
	return &Condition{hours: domain.SliceHours(hours, w)}
}

// Mode returns the most frequent condition text.
func (c *Condition) Mode() (string, error) {
	texts := make([]string, len(c.hours))
	for i, h := range c.hours {
		texts[i] = h.Condition.Text
	}
	return domain.Mode(texts)
}

// Summary renders the condition line. An empty window is an error because
// the report has nothing to describe.
func (c *Condition) Summary() (string, error) {
	mode, err := c.Mode()
	if err != nil {
		return "", fmt.Errorf("condition mode: %w", err)
	}
	return fmt.Sprintf("Condition: %s\n", mode), nil
}
