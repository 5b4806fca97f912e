// Package types contains the read shapes shared by the HTTP API and reports.
// Values are rounded to two decimal places.
package types

import "github.com/okian/warboard/internal/domain/model"

const places = 2

// CareerEntry is one row of a career listing.
type CareerEntry struct {
	Rank           int      `json:"rank,omitempty"`
	PlayerID       string   `json:"player_id"`
	Name           string   `json:"name"`
	Value          float64  `json:"war"`
	BattingValue   float64  `json:"batting_war"`
	PitchingValue  float64  `json:"pitching_war"`
	ValuePerSeason float64  `json:"war_per_season"`
	Percentile     float64  `json:"percentile"`
	Seasons        int      `json:"seasons"`
	Span           string   `json:"seasons_range"`
	PeakValue      float64  `json:"peak_war"`
	Salary         int64    `json:"salary"`
	Teams          []string `json:"teams"`
}

// SeasonEntry is one player's season.
type SeasonEntry struct {
	PlayerID      string   `json:"player_id"`
	Name          string   `json:"name"`
	Year          int      `json:"year"`
	Teams         []string `json:"teams"`
	Leagues       []string `json:"leagues"`
	Value         float64  `json:"war"`
	BattingValue  float64  `json:"batting_war"`
	PitchingValue float64  `json:"pitching_war"`
	Salary        int64    `json:"salary"`
}

// CareerDetail is a career with its seasons.
type CareerDetail struct {
	CareerEntry
	SeasonList []SeasonEntry `json:"season_list"`
}

// RosterEntry is one row of a roster listing.
type RosterEntry struct {
	Rank  int     `json:"rank,omitempty"`
	Year  int     `json:"year"`
	Team  string  `json:"team"`
	Size  int     `json:"size"`
	Value float64 `json:"war"`
}

// RosterDetail is a roster with its member careers, most valuable first.
type RosterDetail struct {
	RosterEntry
	Players []CareerEntry `json:"players"`
}

// Streak is a player's longest qualifying run.
type Streak struct {
	PlayerID string        `json:"player_id"`
	MinValue float64       `json:"min_war"`
	Length   int           `json:"length"`
	Value    float64       `json:"war"`
	Range    string        `json:"range,omitempty"`
	Seasons  []SeasonEntry `json:"seasons"`
}

// NewCareerEntry converts a career. rank 0 is omitted from JSON.
func NewCareerEntry(rank int, c *model.Career) CareerEntry {
	return CareerEntry{
		Rank:           rank,
		PlayerID:       c.PlayerID(),
		Name:           c.PlayerName(),
		Value:          model.Round(c.Value(), places),
		BattingValue:   model.Round(c.BattingValue(), places),
		PitchingValue:  model.Round(c.PitchingValue(), places),
		ValuePerSeason: model.Round(c.ValuePerSeason(), places),
		Percentile:     model.Round(c.Percentile(), places),
		Seasons:        c.SeasonCount(),
		Span:           c.Span(),
		PeakValue:      model.Round(c.PeakSeason().Value, places),
		Salary:         c.Salary(),
		Teams:          c.Teams(),
	}
}

// NewSeasonEntry converts a season.
func NewSeasonEntry(s model.Season) SeasonEntry {
	return SeasonEntry{
		PlayerID:      s.PlayerID,
		Name:          s.PlayerName,
		Year:          s.Year,
		Teams:         append([]string(nil), s.Teams...),
		Leagues:       append([]string(nil), s.Leagues...),
		Value:         model.Round(s.Value, places),
		BattingValue:  model.Round(s.BattingValue, places),
		PitchingValue: model.Round(s.PitchingValue, places),
		Salary:        s.Salary,
	}
}

// NewCareerDetail converts a career with its seasons in year order.
func NewCareerDetail(c *model.Career) CareerDetail {
	seasons := c.Seasons()
	d := CareerDetail{CareerEntry: NewCareerEntry(0, c), SeasonList: make([]SeasonEntry, 0, len(seasons))}
	for _, s := range seasons {
		d.SeasonList = append(d.SeasonList, NewSeasonEntry(s))
	}
	return d
}

// NewRosterEntry converts a roster.
func NewRosterEntry(rank int, r *model.Roster) RosterEntry {
	return RosterEntry{
		Rank:  rank,
		Year:  r.ID().Year,
		Team:  r.ID().Team,
		Size:  r.Size(),
		Value: model.Round(r.Value(), places),
	}
}

// NewRosterDetail converts a roster and ranks its players by career value.
func NewRosterDetail(r *model.Roster) RosterDetail {
	players := r.Players()
	sortCareers(players)
	d := RosterDetail{RosterEntry: NewRosterEntry(0, r), Players: make([]CareerEntry, 0, len(players))}
	for i, c := range players {
		d.Players = append(d.Players, NewCareerEntry(i+1, c))
	}
	return d
}

// NewStreak converts a streak result. An empty run has length zero.
func NewStreak(playerID string, minValue float64, seasons []model.Season) Streak {
	st := Streak{PlayerID: playerID, MinValue: minValue, Length: len(seasons), Seasons: make([]SeasonEntry, 0, len(seasons))}
	var total float64
	for _, s := range seasons {
		total += s.Value
		st.Seasons = append(st.Seasons, NewSeasonEntry(s))
	}
	st.Value = model.Round(total, places)
	if len(seasons) > 0 {
		st.Range = yearRange(seasons[0].Year, seasons[len(seasons)-1].Year)
	}
	return st
}
