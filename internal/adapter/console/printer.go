// Package console renders composed reports to a terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Tier markers that start a coloured span.
const (
	markerLow  = "🟩"
	markerMid  = "🟨"
	markerHigh = "🟥"
)

// Printer writes report text, colouring section headers and tier markers.
type Printer struct {
	w io.Writer

	section *color.Color
	rule    *color.Color
	low     *color.Color
	mid     *color.Color
	high    *color.Color
	failure *color.Color
}

// NewPrinter creates a printer writing to w. With noColor the text is
// written unchanged.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:       w,
		section: color.New(color.FgBlue, color.Bold),
		rule:    color.New(color.FgCyan),
		low:     color.New(color.FgGreen),
		mid:     color.New(color.FgYellow),
		high:    color.New(color.FgRed),
		failure: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.section, p.rule, p.low, p.mid, p.high, p.failure} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}

// Print writes one report followed by a blank line.
func (p *Printer) Print(text string) error {
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		b.WriteString(p.colorLine(line))
	}
	b.WriteString("\n")
	_, err := io.WriteString(p.w, b.String())
	return err
}

// PrintError writes a day that could not be reported.
func (p *Printer) PrintError(date string, err error) error {
	_, werr := fmt.Fprintln(p.w, p.failure.Sprintf("%s: %v", date, err))
	return werr
}

func (p *Printer) colorLine(line string) string {
	body, nl := strings.CutSuffix(line, "\n")
	suffix := ""
	if nl {
		suffix = "\n"
	}

	switch {
	case body == "":
		return line
	case strings.HasPrefix(body, "= = ="):
		return p.section.Sprint(body) + suffix
	case strings.HasPrefix(body, "- - -"):
		return p.rule.Sprint(body) + suffix
	}

	for _, m := range []struct {
		marker string
		c      *color.Color
	}{{markerHigh, p.high}, {markerMid, p.mid}, {markerLow, p.low}} {
		if i := strings.Index(body, m.marker); i >= 0 {
			return body[:i] + m.c.Sprint(body[i:]) + suffix
		}
	}
	return line
}
