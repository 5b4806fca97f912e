// Package streak finds the longest run of consecutive qualifying seasons.
package streak

import (
	"sort"

	"github.com/okian/warboard/internal/domain/model"
)

// run is a half-open range [start, end) of ordinal season positions.
type run struct {
	start, end int
	value      float64
}

func (r run) length() int { return r.end - r.start }

// Longest returns the longest run of consecutive seasons whose value exceeds
// minValue, in chronological order. Consecutive means adjacent among the
// seasons present, so a missing year and a sub-threshold year both break a
// run. Among runs of equal length the one with the greatest summed value
// wins; an equal sum keeps the earlier run. No qualifying season yields nil.
func Longest(seasons []model.Season, minValue float64) []model.Season {
	ordered := append([]model.Season(nil), seasons...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Year < ordered[j].Year })

	var (
		best    run
		found   bool
		current *run
	)
	closeRun := func() {
		if current == nil {
			return
		}
		if !found || current.length() > best.length() ||
			(current.length() == best.length() && current.value > best.value) {
			best = *current
			found = true
		}
		current = nil
	}

	for pos, s := range ordered {
		if s.Value <= minValue {
			closeRun()
			continue
		}
		if current == nil {
			current = &run{start: pos, end: pos}
		}
		current.end = pos + 1
		current.value += s.Value
	}
	closeRun()

	if !found {
		return nil
	}
	return ordered[best.start:best.end]
}

// Value sums the season values of a streak.
func Value(seasons []model.Season) float64 {
	var total float64
	for _, s := range seasons {
		total += s.Value
	}
	return total
}
