package model

import (
	"errors"
	"fmt"
)

// Construction errors for NewCareer.
var (
	ErrEmptyCareer  = errors.New("career has no records")
	ErrEmptySeasons = errors.New("career has no seasons")
)

// Career is every record of one player across all years and disciplines.
// It is immutable once built; accessors return copies.
type Career struct {
	playerID   string
	playerName string
	value      float64
	percentile float64
	records    []Record
	seasons    []Season
	firstYear  int
	lastYear   int
}

// NewCareer assembles a Career. All records must share playerID and seasons
// must be the year aggregates of those records in ascending year order.
func NewCareer(playerID, playerName string, value, percentile float64, records []Record, seasons []Season) (*Career, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCareer, playerID)
	}
	if len(seasons) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySeasons, playerID)
	}
	first, last := records[0].Year, records[0].Year
	for _, r := range records {
		if r.PlayerID != playerID {
			return nil, fmt.Errorf("record for player %s cannot join career %s", r.PlayerID, playerID)
		}
		first = min(first, r.Year)
		last = max(last, r.Year)
	}
	return &Career{
		playerID:   playerID,
		playerName: playerName,
		value:      value,
		percentile: percentile,
		records:    append([]Record(nil), records...),
		seasons:    append([]Season(nil), seasons...),
		firstYear:  first,
		lastYear:   last,
	}, nil
}

// PlayerID returns the stable player key.
func (c *Career) PlayerID() string { return c.playerID }

// PlayerName returns the display name taken from the first record.
func (c *Career) PlayerName() string { return c.playerName }

// Value returns the sum of every record's value.
func (c *Career) Value() float64 { return c.value }

// Percentile returns the rank-based value percentile among all careers.
func (c *Career) Percentile() float64 { return c.percentile }

// Records returns the career's records in load order.
func (c *Career) Records() []Record { return append([]Record(nil), c.records...) }

// Seasons returns one Season per distinct year, ascending.
func (c *Career) Seasons() []Season { return append([]Season(nil), c.seasons...) }

// SeasonCount returns the number of distinct years played.
func (c *Career) SeasonCount() int { return len(c.seasons) }

// FirstYear returns the earliest record year.
func (c *Career) FirstYear() int { return c.firstYear }

// LastYear returns the latest record year.
func (c *Career) LastYear() int { return c.lastYear }

// Span renders the career's year range as "first-last".
func (c *Career) Span() string { return fmt.Sprintf("%d-%d", c.firstYear, c.lastYear) }

// Teams returns every team code played for, in first-seen order.
func (c *Career) Teams() []string {
	seen := make(map[string]struct{})
	var teams []string
	for _, s := range c.seasons {
		for _, t := range s.Teams {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			teams = append(teams, t)
		}
	}
	return teams
}

// Salary returns the sum of season salaries.
func (c *Career) Salary() int64 {
	var total int64
	for _, s := range c.seasons {
		total += s.Salary
	}
	return total
}

// BattingValue returns the sum of season batting values.
func (c *Career) BattingValue() float64 {
	var total float64
	for _, s := range c.seasons {
		total += s.BattingValue
	}
	return total
}

// PitchingValue returns the sum of season pitching values.
func (c *Career) PitchingValue() float64 {
	var total float64
	for _, s := range c.seasons {
		total += s.PitchingValue
	}
	return total
}

// PeakSeason returns the season with the highest value; the earliest wins ties.
func (c *Career) PeakSeason() Season {
	peak := c.seasons[0]
	for _, s := range c.seasons[1:] {
		if s.Value > peak.Value {
			peak = s
		}
	}
	return peak
}

// ValuePerSeason returns Value divided by SeasonCount.
func (c *Career) ValuePerSeason() float64 {
	return c.value / float64(len(c.seasons))
}
