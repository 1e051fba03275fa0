package domain

import "math"

// Max returns the largest value of m across entries.
func Max(entries []Entry, m Metric) (float64, error) {
	if len(entries) == 0 {
		return 0, ErrEmptyWindow
	}
	peak := entries[0].Value(m)
	for _, e := range entries[1:] {
		peak = math.Max(peak, e.Value(m))
	}
	return peak, nil
}

// Average returns the mean of m across entries, rounded to a whole number.
func Average(entries []Entry, m Metric) (int, error) {
	if len(entries) == 0 {
		return 0, ErrEmptyWindow
	}
	return int(math.RoundToEven(sum(entries, m) / float64(len(entries)))), nil
}

// WeightedProbability spreads the summed rain chance of the rain hours over
// the whole window: round(sum / duration). Dry hours count as zero.
func WeightedProbability(entries []Entry, duration int) int {
	if duration <= 0 {
		return 0
	}
	return int(math.RoundToEven(sum(entries, RainChance) / float64(duration)))
}

// Coverage is the percentage of window hours that are rain hours.
func Coverage(entries []Entry, duration int) int {
	if duration <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(len(entries)) / float64(duration) * 100))
}

// Total sums m across entries, rounded to two decimals.
func Total(entries []Entry, m Metric) float64 {
	return math.RoundToEven(sum(entries, m)*100) / 100
}

// Mode returns the most frequent value. Ties go to the value seen first.
func Mode(values []string) (string, error) {
	if len(values) == 0 {
		return "", ErrEmptyWindow
	}
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	best, bestCount := "", 0
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, nil
}

func sum(entries []Entry, m Metric) float64 {
	var total float64
	for _, e := range entries {
		total += e.Value(m)
	}
	return total
}
