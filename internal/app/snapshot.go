package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/okian/warboard/internal/domain/career"
	"github.com/okian/warboard/internal/domain/ingest"
	"github.com/okian/warboard/internal/domain/model"
	"github.com/okian/warboard/internal/domain/roster"
	"github.com/okian/warboard/internal/domain/streak"
)

// Snapshot is one immutable build of every derived view. All reads are pure.
type Snapshot struct {
	id      string
	builtAt time.Time
	took    time.Duration

	load    ingest.LoadStats
	records int
	careers *career.Index
	seasons []model.Season
	rosters *roster.Index
}

// Stats describes a snapshot.
type Stats struct {
	SnapshotID     string         `json:"snapshot_id"`
	BuiltAt        time.Time      `json:"built_at"`
	BuildDuration  string         `json:"build_duration"`
	Rows           int            `json:"rows"`
	Records        int            `json:"records"`
	Dropped        map[string]int `json:"dropped"`
	Careers        int            `json:"careers"`
	Seasons        int            `json:"seasons"`
	Rosters        int            `json:"rosters"`
	FirstYear      int            `json:"first_year"`
	LastYear       int            `json:"last_year"`
	MaxCareerValue float64        `json:"max_career_value"`
}

// NewSnapshot derives every view from records in dependency order: careers,
// then their seasons, then rosters.
func NewSnapshot(records *ingest.Records) (*Snapshot, error) {
	start := time.Now()
	careers, err := career.Build(records.All())
	if err != nil {
		return nil, err
	}

	all := careers.Careers()
	var seasons []model.Season
	for _, c := range all {
		seasons = append(seasons, c.Seasons()...)
	}

	return &Snapshot{
		id:      uuid.NewString(),
		builtAt: time.Now().UTC(),
		took:    time.Since(start),
		load:    records.Stats(),
		records: records.Len(),
		careers: careers,
		seasons: seasons,
		rosters: roster.Build(all),
	}, nil
}

// ID returns the snapshot's unique id.
func (s *Snapshot) ID() string { return s.id }

// Careers returns every career in first-appearance order.
func (s *Snapshot) Careers() []*model.Career { return s.careers.Careers() }

// Seasons returns every season of every career, flattened.
func (s *Snapshot) Seasons() []model.Season { return append([]model.Season(nil), s.seasons...) }

// Rosters returns every roster ordered by year and team.
func (s *Snapshot) Rosters() []*model.Roster { return s.rosters.Rosters() }

// RostersByFranchise returns each team's most valuable roster.
func (s *Snapshot) RostersByFranchise() []*model.Roster { return s.rosters.ByFranchise() }

// Career returns one career or a LookupError.
func (s *Snapshot) Career(playerID string) (*model.Career, error) { return s.careers.Career(playerID) }

// Roster returns one roster or a LookupError.
func (s *Snapshot) Roster(year int, team string) (*model.Roster, error) {
	return s.rosters.Roster(year, team)
}

// Streak returns the longest run of the player's seasons above minValue.
func (s *Snapshot) Streak(playerID string, minValue float64) ([]model.Season, error) {
	c, err := s.careers.Career(playerID)
	if err != nil {
		return nil, err
	}
	return streak.Longest(c.Seasons(), minValue), nil
}

// TopCareers returns the n most valuable careers. n <= 0 returns all.
// Equal values order by player id.
func (s *Snapshot) TopCareers(n int) []*model.Career {
	out := s.careers.Careers()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value() != out[j].Value() {
			return out[i].Value() > out[j].Value()
		}
		return out[i].PlayerID() < out[j].PlayerID()
	})
	return head(out, n)
}

// TopRosters returns the n most valuable rosters. n <= 0 returns all.
func (s *Snapshot) TopRosters(n int) []*model.Roster {
	out := s.rosters.Rosters()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value() > out[j].Value() })
	return head(out, n)
}

// Stats summarizes the snapshot.
func (s *Snapshot) Stats() Stats {
	st := Stats{
		SnapshotID:    s.id,
		BuiltAt:       s.builtAt,
		BuildDuration: s.took.String(),
		Rows:          s.load.Rows,
		Records:       s.records,
		Dropped:       make(map[string]int, len(s.load.Dropped)),
		Careers:       s.careers.Len(),
		Seasons:       len(s.seasons),
		Rosters:       s.rosters.Len(),
	}
	for reason, n := range s.load.Dropped {
		st.Dropped[reason] = n
	}
	for i, c := range s.careers.Careers() {
		if i == 0 || c.FirstYear() < st.FirstYear {
			st.FirstYear = c.FirstYear()
		}
		if c.LastYear() > st.LastYear {
			st.LastYear = c.LastYear()
		}
	}
	if values := s.careers.SortedValues(); len(values) > 0 {
		st.MaxCareerValue = model.Round(values[len(values)-1], 2)
	}
	return st
}

func head[T any](in []T, n int) []T {
	if n <= 0 || n >= len(in) {
		return in
	}
	return in[:n]
}
