// Package career groups performance records into careers and ranks career
// values.
package career

import (
	"sort"

	"github.com/okian/warboard/internal/domain/model"
	"github.com/okian/warboard/internal/domain/season"
)

// Index holds every career built from one record snapshot. It is immutable.
type Index struct {
	careers []*model.Career
	byID    map[string]*model.Career
	values  []float64
}

// Build groups records by player id, derives each career's seasons and
// assigns value percentiles. Careers keep the order in which their player
// first appears in records, so building twice from the same input yields
// identical output.
func Build(records []model.Record) (*Index, error) {
	groups := make(map[string][]model.Record)
	var order []string
	for _, r := range records {
		if _, ok := groups[r.PlayerID]; !ok {
			order = append(order, r.PlayerID)
		}
		groups[r.PlayerID] = append(groups[r.PlayerID], r)
	}

	totals := make(map[string]float64, len(order))
	values := make([]float64, 0, len(order))
	for _, id := range order {
		var total float64
		for _, r := range groups[id] {
			total += r.Value
		}
		totals[id] = total
		values = append(values, total)
	}
	sort.Float64s(values)

	ix := &Index{
		careers: make([]*model.Career, 0, len(order)),
		byID:    make(map[string]*model.Career, len(order)),
		values:  values,
	}
	for _, id := range order {
		group := groups[id]
		c, err := model.NewCareer(
			id,
			group[0].PlayerName,
			totals[id],
			Percentile(values, totals[id]),
			group,
			season.Derive(group),
		)
		if err != nil {
			return nil, err
		}
		ix.careers = append(ix.careers, c)
		ix.byID[id] = c
	}
	return ix, nil
}

// Percentile returns the rank of v within ascending sorted as
// firstIndex(v) / len(sorted) * 100. Tied values share the index of their
// first occurrence, so a tie never counts the other tied careers as below it.
func Percentile(sorted []float64, v float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := sort.SearchFloat64s(sorted, v)
	return float64(idx) / float64(len(sorted)) * 100
}

// Careers returns all careers in first-appearance order.
func (ix *Index) Careers() []*model.Career {
	return append([]*model.Career(nil), ix.careers...)
}

// Career returns the career for playerID or a LookupError.
func (ix *Index) Career(playerID string) (*model.Career, error) {
	c, ok := ix.byID[playerID]
	if !ok {
		return nil, &model.LookupError{Kind: "career", ID: playerID}
	}
	return c, nil
}

// Len returns the number of careers.
func (ix *Index) Len() int { return len(ix.careers) }

// SortedValues returns every career value in ascending order.
func (ix *Index) SortedValues() []float64 {
	return append([]float64(nil), ix.values...)
}
