package reports

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/warboard/internal/domain/model"
	"github.com/okian/warboard/internal/domain/streak"
)

// Reader is the read side of a snapshot that reports are built from.
type Reader interface {
	Careers() []*model.Career
	Seasons() []model.Season
	Rosters() []*model.Roster
	RostersByFranchise() []*model.Roster
	Career(playerID string) (*model.Career, error)
	Roster(year int, team string) (*model.Roster, error)
}

// Report is a named query producing one table.
type Report struct {
	Name     string
	Filename string
	columns  []Column
	rows     func(Reader) ([][]any, error)
}

// Build runs the report against src.
func (r Report) Build(src Reader) (Table, error) {
	rows, err := r.rows(src)
	if err != nil {
		return Table{}, fmt.Errorf("report %s: %w", r.Filename, err)
	}
	return Table{Name: r.Name, Filename: r.Filename, Columns: r.columns, Rows: rows}, nil
}

func newReport(columns []Column, rows func(Reader) ([][]any, error), key string, args ...any) Report {
	name, filename := title(key, args...)
	return Report{Name: name, Filename: filename, columns: columns, rows: rows}
}

// Catalog returns the standard set of reports. streakMin is the threshold
// of the longest streaks report.
func Catalog(streakMin float64) []Report {
	return []Report{
		TopCareers(50),
		TopSeasons(10),
		BottomSeasons(10),
		TeamCareers("bos", 30, true),
		TeamCareers("bos", 30, false),
		TeamCareers("nyy", 30, true),
		TeamCareers("nyy", 30, false),
		BestRosters(1000),
		BestRostersByFranchise(),
		RosterPlayers(1928, "pha"),
		RosterPlayers(2005, "nyy"),
		CareerSeasons("ruthba01"),
		HighestPaidSeasons(20),
		ValuePerDollarSeasons(20),
		NameContains("war"),
		LongestStreaks(50, streakMin),
	}
}

// Column sets.

var (
	rankColumn   = Column{Header: "#", Width: 5, Right: true, Text: rankText}
	nameColumn   = Column{Header: "name", Width: 20}
	salaryColumn = Column{Header: "salary", Width: 10, Right: true}
	teamsColumn  = Column{Header: "teams"}
)

func careerColumns(withSalary, withPeak bool) []Column {
	cols := []Column{rankColumn, nameColumn, {Header: "war", Width: 10, Right: true}}
	if withSalary {
		cols = append(cols, salaryColumn)
	}
	if withPeak {
		cols = append(cols, Column{Header: "peakwar", Width: 12, Right: true})
	}
	return append(cols,
		Column{Header: "seasons", Width: 7, Right: true},
		Column{Header: "", Width: 11, Text: rangeText},
		teamsColumn)
}

func careerRow(rank int, c *model.Career, withSalary, withPeak bool) []any {
	row := []any{rank, c.PlayerName(), c.Value()}
	if withSalary {
		row = append(row, c.Salary())
	}
	if withPeak {
		peak := c.PeakSeason()
		row = append(row, fmt.Sprintf("%s (%d)", model.FormatFixed(peak.Value, places), peak.Year))
	}
	return append(row, c.SeasonCount(), c.Span(), c.Teams())
}

func seasonColumns(withSalary bool) []Column {
	cols := []Column{rankColumn, nameColumn, {Header: "war", Width: 20, Right: true}}
	if withSalary {
		cols = append(cols, salaryColumn)
	}
	return append(cols, Column{Header: "year", Width: 4, Right: true}, teamsColumn)
}

func seasonRow(rank int, s model.Season, withSalary bool) []any {
	row := []any{rank, s.PlayerName, s.Value}
	if withSalary {
		row = append(row, s.Salary)
	}
	return append(row, s.Year, append([]string(nil), s.Teams...))
}

var rosterColumns = []Column{
	rankColumn,
	{Header: "year", Width: 4, Right: true},
	{Header: "team", Width: 4},
	{Header: "war", Width: 10, Right: true},
	{Header: "players", Width: 7, Right: true},
}

func rosterRow(rank int, r *model.Roster) []any {
	return []any{rank, r.ID().Year, r.ID().Team, r.Value(), r.Size()}
}

var streakColumns = []Column{
	rankColumn,
	nameColumn,
	{Header: "war", Width: 10, Right: true},
	{Header: "seasons", Width: 7, Right: true},
	{Header: "", Width: 11, Text: rangeText},
}

// Career reports.

// TopCareers lists the n most valuable careers.
func TopCareers(n int) Report {
	return newReport(careerColumns(false, false), func(src Reader) ([][]any, error) {
		return careerRows(head(byValue(src.Careers()), n), false, false), nil
	}, "top_careers", n)
}

// TeamCareers lists the n best or worst careers of players who ever
// appeared for team.
func TeamCareers(team string, n int, best bool) Report {
	order := "worst"
	if best {
		order = "best"
	}
	return newReport(careerColumns(false, false), func(src Reader) ([][]any, error) {
		var out []*model.Career
		for _, c := range src.Careers() {
			if hasTeam(c.Teams(), team) {
				out = append(out, c)
			}
		}
		out = byValue(out)
		if !best {
			reverse(out)
		}
		return careerRows(head(out, n), false, false), nil
	}, "team_careers", strings.ToLower(team), n, order)
}

// NameContains lists careers whose player name contains s, ignoring case.
func NameContains(s string) Report {
	return newReport(careerColumns(false, false), func(src Reader) ([][]any, error) {
		needle := strings.ToLower(s)
		var out []*model.Career
		for _, c := range src.Careers() {
			if strings.Contains(strings.ToLower(c.PlayerName()), needle) {
				out = append(out, c)
			}
		}
		return careerRows(byValue(out), false, false), nil
	}, "players_whose_name_contains", s)
}

// RosterPlayers lists every career on one roster, most valuable first.
func RosterPlayers(year int, team string) Report {
	return newReport(careerColumns(false, true), func(src Reader) ([][]any, error) {
		r, err := src.Roster(year, team)
		if err != nil {
			return nil, err
		}
		return careerRows(byValue(r.Players()), false, true), nil
	}, "roster", year, strings.ToLower(team))
}

func careerRows(cs []*model.Career, withSalary, withPeak bool) [][]any {
	rows := make([][]any, 0, len(cs))
	for i, c := range cs {
		rows = append(rows, careerRow(i+1, c, withSalary, withPeak))
	}
	return rows
}

// Season reports.

// TopSeasons lists the n most valuable seasons.
func TopSeasons(n int) Report {
	return newReport(seasonColumns(false), func(src Reader) ([][]any, error) {
		return seasonRows(head(seasonsBy(src.Seasons(), seasonValueDesc), n), false), nil
	}, "top_seasons", n)
}

// BottomSeasons lists the n least valuable seasons.
func BottomSeasons(n int) Report {
	return newReport(seasonColumns(false), func(src Reader) ([][]any, error) {
		asc := func(a, b model.Season) bool { return a.Value < b.Value }
		return seasonRows(head(seasonsBy(src.Seasons(), asc), n), false), nil
	}, "bottom_seasons", n)
}

// CareerSeasons lists one player's seasons in year order.
func CareerSeasons(playerID string) Report {
	return newReport(seasonColumns(false), func(src Reader) ([][]any, error) {
		c, err := src.Career(playerID)
		if err != nil {
			return nil, err
		}
		return seasonRows(c.Seasons(), false), nil
	}, "career", playerID)
}

// HighestPaidSeasons lists the n seasons with the highest salary.
func HighestPaidSeasons(n int) Report {
	return newReport(seasonColumns(true), func(src Reader) ([][]any, error) {
		desc := func(a, b model.Season) bool { return a.Salary > b.Salary }
		return seasonRows(head(seasonsBy(src.Seasons(), desc), n), true), nil
	}, "highest_paid_seasons", n)
}

// ValuePerDollarSeasons lists the n paid seasons with the most value per
// salary dollar. Seasons without a salary are excluded.
func ValuePerDollarSeasons(n int) Report {
	return newReport(seasonColumns(true), func(src Reader) ([][]any, error) {
		var paid []model.Season
		for _, s := range src.Seasons() {
			if s.Salary > 0 {
				paid = append(paid, s)
			}
		}
		desc := func(a, b model.Season) bool {
			return a.Value/float64(a.Salary) > b.Value/float64(b.Salary)
		}
		return seasonRows(head(seasonsBy(paid, desc), n), true), nil
	}, "value_per_dollar_seasons", n)
}

func seasonRows(ss []model.Season, withSalary bool) [][]any {
	rows := make([][]any, 0, len(ss))
	for i, s := range ss {
		rows = append(rows, seasonRow(i+1, s, withSalary))
	}
	return rows
}

func seasonValueDesc(a, b model.Season) bool { return a.Value > b.Value }

// seasonsBy sorts a copy of ss stably by less.
func seasonsBy(ss []model.Season, less func(a, b model.Season) bool) []model.Season {
	out := append([]model.Season(nil), ss...)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Roster reports.

// BestRosters lists the n rosters with the highest summed career value.
func BestRosters(n int) Report {
	return newReport(rosterColumns, func(src Reader) ([][]any, error) {
		return rosterRows(head(rostersByValue(src.Rosters()), n)), nil
	}, "best_rosters", n)
}

// BestRostersByFranchise lists each team's most valuable roster.
func BestRostersByFranchise() Report {
	return newReport(rosterColumns, func(src Reader) ([][]any, error) {
		return rosterRows(rostersByValue(src.RostersByFranchise())), nil
	}, "best_rosters_by_franchise")
}

func rosterRows(rs []*model.Roster) [][]any {
	rows := make([][]any, 0, len(rs))
	for i, r := range rs {
		rows = append(rows, rosterRow(i+1, r))
	}
	return rows
}

func rostersByValue(rs []*model.Roster) []*model.Roster {
	out := append([]*model.Roster(nil), rs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value() > out[j].Value() })
	return out
}

// Streak reports.

type playerStreak struct {
	career  *model.Career
	seasons []model.Season
	value   float64
}

// LongestStreaks lists the n longest runs of consecutive seasons above
// minValue across all careers. Equal lengths order by summed value.
func LongestStreaks(n int, minValue float64) Report {
	return newReport(streakColumns, func(src Reader) ([][]any, error) {
		var all []playerStreak
		for _, c := range src.Careers() {
			run := streak.Longest(c.Seasons(), minValue)
			if len(run) == 0 {
				continue
			}
			all = append(all, playerStreak{career: c, seasons: run, value: streak.Value(run)})
		}
		sort.SliceStable(all, func(i, j int) bool {
			if len(all[i].seasons) != len(all[j].seasons) {
				return len(all[i].seasons) > len(all[j].seasons)
			}
			return all[i].value > all[j].value
		})
		all = head(all, n)

		rows := make([][]any, 0, len(all))
		for i, ps := range all {
			first, last := ps.seasons[0].Year, ps.seasons[len(ps.seasons)-1].Year
			rows = append(rows, []any{i + 1, ps.career.PlayerName(), ps.value, len(ps.seasons), fmt.Sprintf("%d-%d", first, last)})
		}
		return rows, nil
	}, "longest_streaks_above", model.FormatFixed(minValue, places))
}

// byValue sorts a copy of cs by value descending, then player id.
func byValue(cs []*model.Career) []*model.Career {
	out := append([]*model.Career(nil), cs...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value() != out[j].Value() {
			return out[i].Value() > out[j].Value()
		}
		return out[i].PlayerID() < out[j].PlayerID()
	})
	return out
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func head[T any](in []T, n int) []T {
	if n <= 0 || n >= len(in) {
		return in
	}
	return in[:n]
}

func hasTeam(teams []string, team string) bool {
	for _, t := range teams {
		if strings.EqualFold(t, team) {
			return true
		}
	}
	return false
}
