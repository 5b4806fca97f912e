// Package model contains the domain types shared by ingestion, aggregation
// and the read APIs.
package model

import (
	"fmt"
	"strings"
)

// Discipline classifies a performance record.
type Discipline int

// Disciplines. The zero value is invalid so an untagged record is detectable.
const (
	DisciplineUnknown Discipline = iota
	Batting
	Pitching
)

// String returns the lower-case discipline tag used in source metadata.
func (d Discipline) String() string {
	switch d {
	case Batting:
		return "batting"
	case Pitching:
		return "pitching"
	default:
		return "unknown"
	}
}

// ParseDiscipline maps a tag such as "batting" or "PITCHING" to a Discipline.
func ParseDiscipline(s string) (Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "batting":
		return Batting, nil
	case "pitching":
		return Pitching, nil
	default:
		return DisciplineUnknown, fmt.Errorf("unknown discipline %q", s)
	}
}

// Record is one performance line: one player, one year, one team stint,
// one discipline.
type Record struct {
	PlayerID   string
	PlayerName string
	Year       int
	Team       string
	League     string
	Discipline Discipline
	// Value is the additive contribution metric (WAR).
	Value float64
	// Salary is zero when the source had no salary for the stint.
	Salary int64
}
