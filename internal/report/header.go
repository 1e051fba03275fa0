package report

import (
	"fmt"
	"time"

	"github.com/couchcryptid/forecast-report/internal/domain"
)

const generatedLayout = "2006-01-02 | 15:04"

func dateHeader(date string, generated time.Time) string {
	return fmt.Sprintf("Forecast %s\nGenerated %s\n", date, generated.Format(generatedLayout))
}

func locationHeader(loc domain.Location) string {
	return fmt.Sprintf("%s, %s, %s\n%s\n", loc.Name, loc.Region, loc.Country, loc.LocalTime)
}

func daylightHeader(astro domain.Astro) string {
	return fmt.Sprintf("Sunrise: %s\nSunset: %s\n", astro.Sunrise, astro.Sunset)
}

func hoursHeader(w domain.TimeWindow) string {
	return fmt.Sprintf("Hours: %s\n", w)
}
