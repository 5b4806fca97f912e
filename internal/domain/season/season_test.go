package season_test

import (
	"testing"

	"github.com/okian/warboard/internal/domain/model"
	"github.com/okian/warboard/internal/domain/season"
	"github.com/okian/warboard/internal/testutils"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDerive(t *testing.T) {
	Convey("Given a two-way player's records", t, func() {
		records := testutils.TwoWayCareer()

		Convey("When seasons are derived", func() {
			seasons := season.Derive(records)

			Convey("Then there is one season per distinct year, ascending", func() {
				So(len(seasons), ShouldEqual, 12)
				for i, s := range seasons {
					So(s.Year, ShouldEqual, testutils.TwoWayYears[i])
				}
			})

			Convey("And value splits by discipline", func() {
				var total, bat, pitch float64
				for _, s := range seasons {
					So(s.Value, ShouldAlmostEqual, s.BattingValue+s.PitchingValue, 1e-9)
					So(s.TwoWay(), ShouldBeTrue)
					total += s.Value
					bat += s.BattingValue
					pitch += s.PitchingValue
				}
				So(model.Round(total, 2), ShouldEqual, 70.17)
				So(model.Round(bat, 2), ShouldEqual, -9.46)
				So(model.Round(pitch, 2), ShouldEqual, 79.63)
			})
		})
	})

	Convey("Given a player traded mid-year", t, func() {
		records := []model.Record{
			testutils.Bat("sadledo01", "Donnie Sadler", 2001, "CIN", 0.2, 300001),
			testutils.Bat("sadledo01", "Donnie Sadler", 2001, "KCR", -0.4, 0),
			testutils.Bat("sadledo01", "Donnie Sadler", 2002, "KCR", 0.1, 400000),
		}

		Convey("When seasons are derived", func() {
			seasons := season.Derive(records)

			Convey("Then the split year averages the stint salaries", func() {
				So(len(seasons), ShouldEqual, 2)
				So(seasons[0].Salary, ShouldEqual, int64(150001))
				So(seasons[1].Salary, ShouldEqual, int64(400000))
			})

			Convey("And the split year lists both teams", func() {
				So(seasons[0].Teams, ShouldResemble, []string{"CIN", "KCR"})
				So(seasons[0].HasTeam("CIN"), ShouldBeTrue)
				So(seasons[0].HasTeam("KCR"), ShouldBeTrue)
				So(seasons[0].Leagues, ShouldResemble, []string{"AL"})
				So(seasons[0].Value, ShouldAlmostEqual, -0.2, 1e-9)
				So(seasons[0].PitchingValue, ShouldEqual, 0)
			})
		})
	})

	Convey("Given an even salary split", t, func() {
		seasons := season.Derive([]model.Record{
			testutils.Bat("x", "X", 2010, "BOS", 1, 500000),
			testutils.Bat("x", "X", 2010, "NYY", 1, 0),
		})

		Convey("Then the season salary is half the single salary", func() {
			So(seasons[0].Salary, ShouldEqual, int64(250000))
		})
	})

	Convey("Given no records", t, func() {
		Convey("Then no seasons are derived", func() {
			So(season.Derive(nil), ShouldBeEmpty)
		})
	})
}
