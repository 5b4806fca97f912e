// Package season derives per-year Season aggregates from a single career's
// records.
package season

import (
	"math"
	"sort"

	"github.com/okian/warboard/internal/domain/model"
)

// Derive groups records by year and aggregates each group into a Season.
// Records are expected to belong to one player; the result is ordered by
// ascending year with exactly one Season per distinct year.
func Derive(records []model.Record) []model.Season {
	if len(records) == 0 {
		return nil
	}

	byYear := make(map[int][]model.Record)
	var years []int
	for _, r := range records {
		if _, ok := byYear[r.Year]; !ok {
			years = append(years, r.Year)
		}
		byYear[r.Year] = append(byYear[r.Year], r)
	}
	sort.Ints(years)

	seasons := make([]model.Season, 0, len(years))
	for _, year := range years {
		seasons = append(seasons, aggregate(year, byYear[year]))
	}
	return seasons
}

// aggregate merges one year's stints. Salary is the mean over all stints,
// with missing salaries counted as zero, rounded half up.
func aggregate(year int, stints []model.Record) model.Season {
	s := model.Season{
		PlayerID:   stints[0].PlayerID,
		PlayerName: stints[0].PlayerName,
		Year:       year,
		Teams:      distinct(stints, func(r model.Record) string { return r.Team }),
		Leagues:    distinct(stints, func(r model.Record) string { return r.League }),
	}

	var salaryTotal float64
	for _, r := range stints {
		s.Value += r.Value
		switch r.Discipline {
		case model.Batting:
			s.BattingValue += r.Value
		case model.Pitching:
			s.PitchingValue += r.Value
		}
		salaryTotal += float64(r.Salary)
	}
	s.Salary = int64(math.Floor(salaryTotal/float64(len(stints)) + 0.5))
	return s
}

func distinct(stints []model.Record, key func(model.Record) string) []string {
	seen := make(map[string]struct{}, len(stints))
	out := make([]string, 0, len(stints))
	for _, r := range stints {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
