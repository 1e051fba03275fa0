package domain

import (
	"cmp"
	"slices"
)

// Top returns the n entries with the highest value of m, in chronological
// order. Equal values keep their original order when ranking, so the earlier
// hour wins a tie at the cut-off. n is clamped to the number of entries.
func Top(entries []Entry, m Metric, n int) []Entry {
	if n <= 0 || len(entries) == 0 {
		return nil
	}
	ranked := slices.Clone(entries)
	slices.SortStableFunc(ranked, func(a, b Entry) int {
		return cmp.Compare(b.Value(m), a.Value(m))
	})
	top := ranked[:min(n, len(ranked))]
	slices.SortStableFunc(top, func(a, b Entry) int {
		return a.At.Compare(b.At)
	})
	return top
}
