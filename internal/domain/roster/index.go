// Package roster inverts careers into per-year, per-team rosters.
package roster

import (
	"sort"

	"github.com/okian/warboard/internal/domain/model"
)

// Index holds every roster derived from one set of careers.
type Index struct {
	rosters []*model.Roster
	byID    map[model.RosterID]*model.Roster
}

// Build associates each career with the roster of every (year, team) pair in
// its seasons. A career joins a roster at most once. Rosters are ordered by
// year, then team.
func Build(careers []*model.Career) *Index {
	members := make(map[model.RosterID][]*model.Career)
	seen := make(map[model.RosterID]map[string]struct{})
	for _, c := range careers {
		for _, s := range c.Seasons() {
			for _, team := range s.Teams {
				id := model.NewRosterID(s.Year, team)
				ids, ok := seen[id]
				if !ok {
					ids = make(map[string]struct{})
					seen[id] = ids
				}
				if _, dup := ids[c.PlayerID()]; dup {
					continue
				}
				ids[c.PlayerID()] = struct{}{}
				members[id] = append(members[id], c)
			}
		}
	}

	keys := make([]model.RosterID, 0, len(members))
	for id := range members {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Team < keys[j].Team
	})

	ix := &Index{
		rosters: make([]*model.Roster, 0, len(keys)),
		byID:    make(map[model.RosterID]*model.Roster, len(keys)),
	}
	for _, id := range keys {
		r := model.NewRoster(id, members[id])
		ix.rosters = append(ix.rosters, r)
		ix.byID[id] = r
	}
	return ix
}

// Rosters returns every roster ordered by year and team.
func (ix *Index) Rosters() []*model.Roster {
	return append([]*model.Roster(nil), ix.rosters...)
}

// Roster returns the roster for year and team. Team matching ignores case.
func (ix *Index) Roster(year int, team string) (*model.Roster, error) {
	id := model.NewRosterID(year, team)
	r, ok := ix.byID[id]
	if !ok {
		return nil, &model.LookupError{Kind: "roster", ID: id.String()}
	}
	return r, nil
}

// Len returns the number of rosters.
func (ix *Index) Len() int { return len(ix.rosters) }

// ByFranchise returns, for each team code, its roster with the highest value.
// Ties keep the earliest year.
func (ix *Index) ByFranchise() []*model.Roster {
	best := make(map[string]*model.Roster)
	var order []string
	for _, r := range ix.rosters {
		cur, ok := best[r.ID().Team]
		if !ok {
			order = append(order, r.ID().Team)
			best[r.ID().Team] = r
			continue
		}
		if r.Value() > cur.Value() {
			best[r.ID().Team] = r
		}
	}
	sort.Strings(order)
	out := make([]*model.Roster, 0, len(order))
	for _, team := range order {
		out = append(out, best[team])
	}
	return out
}
