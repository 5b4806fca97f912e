package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then its collectors are registered there", func() {
				So(manager, ShouldNotBeNil)
				manager.careersTotal.Set(3)
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				names := map[string]bool{}
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["warboard_core_careers"], ShouldBeTrue)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then metric names use the namespace and subsystem", func() {
				manager.snapshotBuilds.Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				found := false
				for _, f := range families {
					if f.GetName() == "test_unit_snapshot_builds_total" {
						found = true
						So(f.GetMetric()[0].GetLabel()[0].GetValue(), ShouldEqual, "test")
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording ingest counts", func() {
			before := testutil.ToFloat64(globalManager.recordsKept.WithLabelValues("batting"))
			RecordRecordsKept("batting", 5)
			RecordRecordsDropped("batting", "minor_league", 2)

			Convey("Then the counters advance", func() {
				So(testutil.ToFloat64(globalManager.recordsKept.WithLabelValues("batting")), ShouldEqual, before+5)
				So(testutil.ToFloat64(globalManager.recordsDropped.WithLabelValues("batting", "minor_league")), ShouldBeGreaterThanOrEqualTo, 2)
			})
		})

		Convey("When recording a snapshot build", func() {
			builds := testutil.ToFloat64(globalManager.snapshotBuilds)
			UpdateSnapshotSize(10, 40, 7)
			RecordSnapshotBuild(150 * time.Millisecond)

			Convey("Then size gauges and build counters are set", func() {
				So(testutil.ToFloat64(globalManager.careersTotal), ShouldEqual, 10)
				So(testutil.ToFloat64(globalManager.seasonsTotal), ShouldEqual, 40)
				So(testutil.ToFloat64(globalManager.rostersTotal), ShouldEqual, 7)
				So(testutil.ToFloat64(globalManager.snapshotBuilds), ShouldEqual, builds+1)
				So(testutil.ToFloat64(globalManager.snapshotLastUnix), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When recording cache, HTTP, report and error metrics", func() {
			Convey("Then none of them panic", func() {
				So(func() {
					RecordCacheHit("war_daily_bat.txt")
					RecordCacheMiss("war_daily_bat.txt", "expired")
					RecordFetchError("war_daily_pitch.txt")
					RecordFetchDuration(2 * time.Second)
					RecordHTTPRequest("careers", "GET", "200")
					RecordHTTPRequestDuration("careers", "GET", "200", 4.0)
					RecordReportWritten("xlsx")
					RecordErrorByComponent("ingest", "missing_field")
				}, ShouldNotPanic)
			})
		})

		Convey("When fetching the registry", func() {
			Convey("Then it is the custom registry", func() {
				So(GetRegistry(), ShouldEqual, customRegistry)
			})
		})
	})
}
