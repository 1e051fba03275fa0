// Package report renders domain analysis into the text report sent to users.
package report

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	omitted = "(REPORT OMITTED)"

	iconRain        = "🌦️"
	iconWind        = "🍃"
	iconTemperature = "☀️"
	iconAlert       = "⚠️"

	markerYes = "🟥 YES"
	markerNo  = "🟩 NO"
)

var titleCaser = cases.Title(language.English)

func sectionHeader(title, icon string) string {
	return fmt.Sprintf("\n= = = %s %s %s = = =\n", icon, title, icon)
}

// formatNumber renders whole numbers without a decimal point.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
