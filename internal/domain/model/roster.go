package model

import (
	"fmt"
	"strings"
)

// RosterID identifies a team's roster for one year. Team is lower-cased.
type RosterID struct {
	Year int
	Team string
}

// NewRosterID normalizes team to the lower-case key used by rosters.
func NewRosterID(year int, team string) RosterID {
	return RosterID{Year: year, Team: strings.ToLower(strings.TrimSpace(team))}
}

// String renders the id as "year-team".
func (id RosterID) String() string {
	return fmt.Sprintf("%d-%s", id.Year, id.Team)
}

// Roster is the set of full careers of everyone who appeared for a team in a
// year. Careers are shared read-only with the career index.
type Roster struct {
	id      RosterID
	players []*Career
	value   float64
}

// NewRoster builds a roster from distinct careers.
func NewRoster(id RosterID, players []*Career) *Roster {
	r := &Roster{id: id, players: append([]*Career(nil), players...)}
	for _, c := range r.players {
		r.value += c.Value()
	}
	return r
}

// ID returns the roster key.
func (r *Roster) ID() RosterID { return r.id }

// Players returns the member careers in first-appearance order.
func (r *Roster) Players() []*Career { return append([]*Career(nil), r.players...) }

// Size returns the number of distinct players.
func (r *Roster) Size() int { return len(r.players) }

// Value is the sum of members' full-career values, not their value that year.
func (r *Roster) Value() float64 { return r.value }

// Contains reports whether playerID is on the roster.
func (r *Roster) Contains(playerID string) bool {
	for _, c := range r.players {
		if c.PlayerID() == playerID {
			return true
		}
	}
	return false
}
