package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	service "github.com/okian/warboard/internal/app"
	"github.com/okian/warboard/internal/domain/ingest"
	"github.com/okian/warboard/internal/domain/model"
	"github.com/okian/warboard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

var header = []string{"name_common", "player_ID", "year_ID", "team_ID", "lg_ID", "WAR", "salary"}

func fixtureSources() []ingest.Source {
	return []ingest.Source{
		{
			Name:       "bat",
			Discipline: model.Batting,
			Header:     header,
			Rows: [][]string{
				{"Babe Ruth", "ruthba01", "1927", "NYY", "AL", "12.4", "70000"},
				{"Babe Ruth", "ruthba01", "1928", "NYY", "AL", "10.1", "70000"},
				{"Lou Gehrig", "gehrilo01", "1927", "NYY", "AL", "11.8", "8000"},
				{"Ty Cobb", "cobbty01", "1927", "PHA", "AL", "3.1", "60000"},
				{"Tony Lazzeri", "lazzeto01", "1928", "NYY", "AL", "4.0", "NULL"},
				{"Tony Lazzeri", "lazzeto01", "1928", "PHA", "AL", "0.5", "12000"},
				{"Minor Guy", "minorgu01", "1927", "BAL", "IL", "2.0", "NULL"},
			},
		},
		{
			Name:       "pitch",
			Discipline: model.Pitching,
			Header:     header,
			Rows: [][]string{
				{"Babe Ruth", "ruthba01", "1928", "NYY", "AL", "0.2", "NULL"},
				{"Waite Hoyt", "hoytwa01", "1927", "NYY", "AL", "5.0", "NULL"},
			},
		},
	}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service without sources", t, func() {
		svc := service.New()

		Convey("Then reads fail with ErrNoSources", func() {
			So(svc, ShouldNotBeNil)
			So(svc.Ready(), ShouldBeFalse)
			_, err := svc.Careers(context.Background())
			So(errors.Is(err, service.ErrNoSources), ShouldBeTrue)
		})
	})
}

func TestService_Reads(t *testing.T) {
	Convey("Given a started service with fixture sources", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithSources(fixtureSources()...))
		So(svc.Start(ctx), ShouldBeNil)
		So(svc.Ready(), ShouldBeTrue)

		Convey("Then careers exclude minor-league records", func() {
			careers, err := svc.Careers(ctx)
			So(err, ShouldBeNil)
			So(len(careers), ShouldEqual, 5)
			_, err = svc.Career(ctx, "minorgu01")
			So(errors.Is(err, model.ErrNotFound), ShouldBeTrue)
		})

		Convey("Then seasons are flattened across careers", func() {
			seasons, err := svc.Seasons(ctx)
			So(err, ShouldBeNil)
			So(len(seasons), ShouldEqual, 6)
		})

		Convey("Then a two-discipline season merges", func() {
			ruth, err := svc.Career(ctx, "ruthba01")
			So(err, ShouldBeNil)
			So(ruth.SeasonCount(), ShouldEqual, 2)
			So(model.Round(ruth.Value(), 2), ShouldEqual, 22.7)
			So(ruth.Seasons()[1].TwoWay(), ShouldBeTrue)
		})

		Convey("Then top careers are ordered by value", func() {
			top, err := svc.TopCareers(ctx, 2)
			So(err, ShouldBeNil)
			So(len(top), ShouldEqual, 2)
			So(top[0].PlayerID(), ShouldEqual, "ruthba01")
			So(top[1].PlayerID(), ShouldEqual, "gehrilo01")
		})

		Convey("Then rosters hold full-career values", func() {
			r, err := svc.Roster(ctx, 1927, "nyy")
			So(err, ShouldBeNil)
			So(r.Size(), ShouldEqual, 3)
			So(model.Round(r.Value(), 2), ShouldEqual, 39.5)

			top, err := svc.TopRosters(ctx, 1)
			So(err, ShouldBeNil)
			So(top[0].ID().String(), ShouldEqual, "1927-nyy")

			all, err := svc.Rosters(ctx)
			So(err, ShouldBeNil)
			So(len(all), ShouldEqual, 4)
		})

		Convey("Then streaks are computed per career", func() {
			run, err := svc.Streak(ctx, "ruthba01", 10)
			So(err, ShouldBeNil)
			So(len(run), ShouldEqual, 2)

			run, err = svc.Streak(ctx, "ruthba01", 50)
			So(err, ShouldBeNil)
			So(run, ShouldBeEmpty)

			_, err = svc.Streak(ctx, "nobody01", 0)
			So(errors.Is(err, model.ErrNotFound), ShouldBeTrue)
		})

		Convey("Then stats describe the snapshot", func() {
			st, err := svc.Stats(ctx)
			So(err, ShouldBeNil)
			So(st.SnapshotID, ShouldNotBeBlank)
			So(st.Rows, ShouldEqual, 9)
			So(st.Records, ShouldEqual, 8)
			So(st.Dropped[ingest.ReasonMinorLeague], ShouldEqual, 1)
			So(st.FirstYear, ShouldEqual, 1927)
			So(st.LastYear, ShouldEqual, 1928)
			So(st.MaxCareerValue, ShouldEqual, 22.7)
		})
	})
}

func TestService_BuildOnce(t *testing.T) {
	Convey("Given a service read concurrently before its first build", t, func() {
		var calls atomic.Int32
		svc := service.New(service.WithSourceLoader(func(context.Context) ([]ingest.Source, error) {
			calls.Add(1)
			return fixtureSources(), nil
		}))

		var wg sync.WaitGroup
		ids := make([]string, 16)
		for i := range ids {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				snap, err := svc.Snapshot(context.Background())
				if err == nil {
					ids[i] = snap.ID()
				}
			}(i)
		}
		wg.Wait()

		Convey("Then every reader sees the same snapshot", func() {
			for _, id := range ids {
				So(id, ShouldEqual, ids[0])
			}
			So(ids[0], ShouldNotBeBlank)
		})

		Convey("Then later reads do not rebuild", func() {
			before := calls.Load()
			_, err := svc.Careers(context.Background())
			So(err, ShouldBeNil)
			So(calls.Load(), ShouldEqual, before)
		})
	})

	Convey("Given a loader that fails once", t, func() {
		var calls atomic.Int32
		svc := service.New(service.WithSourceLoader(func(context.Context) ([]ingest.Source, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("upstream down")
			}
			return fixtureSources(), nil
		}))

		Convey("Then the failure is not cached", func() {
			So(svc.Start(context.Background()), ShouldNotBeNil)
			So(svc.Ready(), ShouldBeFalse)
			So(svc.Start(context.Background()), ShouldBeNil)
			So(svc.Ready(), ShouldBeTrue)
		})
	})

	Convey("Given a build triggered by a caller that gives up", t, func() {
		release := make(chan struct{})
		loaderErr := make(chan error, 1)
		var calls atomic.Int32
		svc := service.New(service.WithSourceLoader(func(ctx context.Context) ([]ingest.Source, error) {
			calls.Add(1)
			<-release
			loaderErr <- ctx.Err()
			return fixtureSources(), nil
		}))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			_, err := svc.Snapshot(ctx)
			done <- err
		}()
		for calls.Load() == 0 {
			time.Sleep(time.Millisecond)
		}
		cancel()

		Convey("Then the caller returns early and the build still completes", func() {
			So(<-done, ShouldEqual, context.Canceled)
			close(release)
			So(<-loaderErr, ShouldBeNil)

			snap, err := svc.Snapshot(context.Background())
			So(err, ShouldBeNil)
			So(snap, ShouldNotBeNil)
			So(calls.Load(), ShouldEqual, 1)
		})
	})

	Convey("Given malformed source data", t, func() {
		sources := fixtureSources()
		sources[0].Rows = append(sources[0].Rows, []string{"Bad", "bad01", "19x7", "NYY", "AL", "1.0", "0"})
		svc := service.New(service.WithSources(sources...))

		Convey("Then the build aborts with a NumericFormatError", func() {
			err := svc.Start(context.Background())
			So(errors.Is(err, model.ErrNumericFormat), ShouldBeTrue)
		})
	})

	Convey("Given store options", t, func() {
		svc := service.New(
			service.WithSources(fixtureSources()...),
			service.WithStoreOptions(ingest.WithMajorLeagues("AL", "NL", "IL")),
		)

		Convey("Then they apply to the build", func() {
			careers, err := svc.Careers(context.Background())
			So(err, ShouldBeNil)
			So(len(careers), ShouldEqual, 6)
		})
	})
}
