package model

import "strings"

// Season is one player's aggregate for one calendar year, merging every
// stint, team and discipline of that year.
type Season struct {
	PlayerID   string
	PlayerName string
	Year       int
	// Teams and Leagues are distinct codes in first-seen record order.
	Teams         []string
	Leagues       []string
	Value         float64
	BattingValue  float64
	PitchingValue float64
	// Salary is the mean of the year's stint salaries, absent salaries
	// counting as zero.
	Salary int64
}

// HasTeam reports whether the season includes team, ignoring case.
func (s Season) HasTeam(team string) bool {
	for _, t := range s.Teams {
		if strings.EqualFold(t, team) {
			return true
		}
	}
	return false
}

// TwoWay reports whether the season has non-zero batting and pitching value.
func (s Season) TwoWay() bool {
	return s.BattingValue != 0 && s.PitchingValue != 0
}
