package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	service "github.com/okian/warboard/internal/app"
	"github.com/okian/warboard/internal/config"
	"github.com/okian/warboard/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		ctx := context.Background()

		convey.Convey("When loading configuration from the environment", func() {
			_ = os.Setenv("WARBOARD_ADDR", ":8080")
			_ = os.Setenv("WARBOARD_MAX_LIST_LIMIT", "25")
			defer func() {
				_ = os.Unsetenv("WARBOARD_ADDR")
				_ = os.Unsetenv("WARBOARD_MAX_LIST_LIMIT")
			}()

			convey.Convey("Then the overrides are applied", func() {
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MaxListLimit, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When wiring the service and routes", func() {
			cfg := config.New(ctx)
			cfg.CacheDir = t.TempDir()

			svc, err := service.NewCached(cfg)
			convey.So(err, convey.ShouldBeNil)
			convey.So(svc, convey.ShouldNotBeNil)
			mux := newMux(ctx, svc, cfg)

			convey.Convey("Then health reports building before the first build", func() {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))
				convey.So(rec.Code, convey.ShouldEqual, http.StatusServiceUnavailable)
			})

			convey.Convey("And the landing page is served", func() {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
				convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
			})

			convey.Convey("And the API docs are served", func() {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", http.NoBody))
				convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
			})
		})
	})
}
