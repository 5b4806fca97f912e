package streak_test

import (
	"testing"

	"github.com/okian/warboard/internal/domain/model"
	"github.com/okian/warboard/internal/domain/streak"
	. "github.com/smartystreets/goconvey/convey"
)

func seasons(pairs ...float64) []model.Season {
	out := make([]model.Season, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, model.Season{Year: int(pairs[i]), Value: pairs[i+1]})
	}
	return out
}

func years(ss []model.Season) []int {
	out := make([]int, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.Year)
	}
	return out
}

func TestLongest(t *testing.T) {
	Convey("Given two equal-length runs above the threshold", t, func() {
		ss := seasons(
			2000, 3, 2001, 4,
			2002, 1,
			2003, 5, 2004, 6,
		)

		Convey("Then the run with the higher summed value wins", func() {
			got := streak.Longest(ss, 2)
			So(years(got), ShouldResemble, []int{2003, 2004})
			So(streak.Value(got), ShouldEqual, 11)
		})
	})

	Convey("Given equal-length runs with equal sums", t, func() {
		ss := seasons(2000, 5, 2001, 1, 2002, 5)

		Convey("Then the earlier run is kept", func() {
			So(years(streak.Longest(ss, 2)), ShouldResemble, []int{2000})
		})
	})

	Convey("Given a longer run with a lower sum", t, func() {
		ss := seasons(2000, 9, 2001, 0, 2002, 2.5, 2003, 2.5, 2004, 2.5)

		Convey("Then length beats value", func() {
			So(years(streak.Longest(ss, 2)), ShouldResemble, []int{2002, 2003, 2004})
		})
	})

	Convey("Given seasons with a gap in the years", t, func() {
		ss := seasons(1990, 4, 1991, 4, 1995, 4)

		Convey("Then the gap does not break the run", func() {
			So(years(streak.Longest(ss, 3)), ShouldResemble, []int{1990, 1991, 1995})
		})
	})

	Convey("Given unordered seasons", t, func() {
		ss := seasons(2002, 4, 2000, 4, 2001, 4)

		Convey("Then the result is chronological", func() {
			So(years(streak.Longest(ss, 0)), ShouldResemble, []int{2000, 2001, 2002})
		})
	})

	Convey("Given a value equal to the threshold", t, func() {
		ss := seasons(2000, 2, 2001, 3)

		Convey("Then it does not qualify", func() {
			So(years(streak.Longest(ss, 2)), ShouldResemble, []int{2001})
		})
	})

	Convey("Given no qualifying season", t, func() {
		Convey("Then the result is empty", func() {
			So(streak.Longest(seasons(2000, 1, 2001, 1), 5), ShouldBeEmpty)
			So(streak.Longest(nil, 0), ShouldBeEmpty)
		})
	})
}
