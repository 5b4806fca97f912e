// Package testutils provides record fixtures shared by package tests.
package testutils

import "github.com/okian/warboard/internal/domain/model"

// Bat builds a batting record in the AL.
func Bat(playerID, name string, year int, team string, value float64, salary int64) model.Record {
	return model.Record{
		PlayerID:   playerID,
		PlayerName: name,
		Year:       year,
		Team:       team,
		League:     "AL",
		Discipline: model.Batting,
		Value:      value,
		Salary:     salary,
	}
}

// Pitch builds a pitching record in the NL.
func Pitch(playerID, name string, year int, team string, value float64, salary int64) model.Record {
	return model.Record{
		PlayerID:   playerID,
		PlayerName: name,
		Year:       year,
		Team:       team,
		League:     "NL",
		Discipline: model.Pitching,
		Value:      value,
		Salary:     salary,
	}
}

// TwoWayYears are twelve seasons between 1879 and 1892 with a two-year gap.
var TwoWayYears = []int{1879, 1880, 1881, 1882, 1883, 1884, 1885, 1886, 1887, 1888, 1891, 1892}

// TwoWayCareer returns records for a two-way player whose batting value sums
// to -9.46 and pitching value to 79.63 over TwoWayYears.
func TwoWayCareer() []model.Record {
	var records []model.Record
	for i, year := range TwoWayYears {
		bat, pitch := -0.8, 6.6
		if i == len(TwoWayYears)-1 {
			bat, pitch = -0.66, 7.03
		}
		records = append(records,
			Bat("galvipu01", "Pud Galvin", year, "BFN", bat, 0),
			Pitch("galvipu01", "Pud Galvin", year, "BFN", pitch, 0),
		)
	}
	return records
}

// League returns a small multi-player record set covering trades, two
// teams per year and shared rosters.
func League() []model.Record {
	return []model.Record{
		Bat("ruthba01", "Babe Ruth", 1927, "NYY", 12.4, 70000),
		Bat("ruthba01", "Babe Ruth", 1928, "NYY", 10.1, 70000),
		Pitch("ruthba01", "Babe Ruth", 1928, "NYY", 0.2, 0),
		Bat("gehrilo01", "Lou Gehrig", 1927, "NYY", 11.8, 8000),
		Bat("gehrilo01", "Lou Gehrig", 1928, "NYY", 9.9, 25000),
		Bat("cobbty01", "Ty Cobb", 1927, "PHA", 3.1, 60000),
		Bat("cobbty01", "Ty Cobb", 1928, "PHA", 1.4, 35000),
		Bat("lazzeto01", "Tony Lazzeri", 1927, "NYY", 6.2, 8000),
		Bat("lazzeto01", "Tony Lazzeri", 1928, "NYY", 4.0, 0),
		Bat("lazzeto01", "Tony Lazzeri", 1928, "PHA", 0.5, 12000),
	}
}
