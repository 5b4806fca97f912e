package types_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/warboard/internal/domain/career"
	"github.com/okian/warboard/internal/domain/model"
	"github.com/okian/warboard/internal/domain/roster"
	types "github.com/okian/warboard/internal/domain/types"
	"github.com/okian/warboard/internal/testutils"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCareerEntry(t *testing.T) {
	Convey("Given a two-way career", t, func() {
		ix, err := career.Build(testutils.TwoWayCareer())
		So(err, ShouldBeNil)
		c, _ := ix.Career("galvipu01")

		Convey("When converted to an entry", func() {
			entry := types.NewCareerEntry(1, c)

			Convey("Then values are rounded to two places", func() {
				So(entry.Rank, ShouldEqual, 1)
				So(entry.Value, ShouldEqual, 70.17)
				So(entry.BattingValue, ShouldEqual, -9.46)
				So(entry.PitchingValue, ShouldEqual, 79.63)
				So(entry.Seasons, ShouldEqual, 12)
				So(entry.Span, ShouldEqual, "1879-1892")
				So(entry.Teams, ShouldResemble, []string{"BFN"})
			})
		})

		Convey("When converted to a detail", func() {
			d := types.NewCareerDetail(c)

			Convey("Then it carries every season and omits the rank", func() {
				So(len(d.SeasonList), ShouldEqual, 12)
				So(d.SeasonList[0].Year, ShouldEqual, 1879)
				raw, err := json.Marshal(d)
				So(err, ShouldBeNil)
				So(string(raw), ShouldNotContainSubstring, `"rank"`)
				So(string(raw), ShouldContainSubstring, `"seasons_range":"1879-1892"`)
			})
		})
	})
}

func TestRosterDetail(t *testing.T) {
	Convey("Given a roster from the league fixture", t, func() {
		ix, err := career.Build(testutils.League())
		So(err, ShouldBeNil)
		r, err := roster.Build(ix.Careers()).Roster(1927, "NYY")
		So(err, ShouldBeNil)

		Convey("When converted to a detail", func() {
			d := types.NewRosterDetail(r)

			Convey("Then players are ranked by career value", func() {
				So(d.Team, ShouldEqual, "nyy")
				So(d.Size, ShouldEqual, 3)
				So(d.Value, ShouldEqual, 55.1)
				So(d.Players[0].PlayerID, ShouldEqual, "ruthba01")
				So(d.Players[0].Rank, ShouldEqual, 1)
				So(d.Players[2].PlayerID, ShouldEqual, "lazzeto01")
			})
		})
	})
}

func TestStreak(t *testing.T) {
	Convey("Given a streak result", t, func() {
		seasons := []model.Season{{Year: 1990, Value: 3.333}, {Year: 1991, Value: 4.444}}

		Convey("Then it reports length, value and range", func() {
			st := types.NewStreak("x", 3, seasons)
			So(st.Length, ShouldEqual, 2)
			So(st.Value, ShouldEqual, 7.78)
			So(st.Range, ShouldEqual, "1990-1991")
		})

		Convey("Then an empty run has no range", func() {
			st := types.NewStreak("x", 3, nil)
			So(st.Length, ShouldEqual, 0)
			So(st.Range, ShouldBeBlank)
			So(st.Seasons, ShouldBeEmpty)
		})
	})
}
