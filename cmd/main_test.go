package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/okian/quantumtech/internal/config"
	"github.com/okian/quantumtech/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("QUANTUM_ADDR", ":8080")
			_ = os.Setenv("QUANTUM_CHART_WIDTH", "800")
			defer func() {
				_ = os.Unsetenv("QUANTUM_ADDR")
				_ = os.Unsetenv("QUANTUM_CHART_WIDTH")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 800)
			})
		})

		convey.Convey("When an invalid log level is configured", func() {
			cfg := config.New(context.Background())
			cfg.LogLevel = "chatty"
			cfg.LogFormat = "xml"

			convey.Convey("Then applying it falls back without panicking", func() {
				convey.So(func() { applyLogConfig(context.Background(), cfg) }, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given a service built from the default config", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cfg := config.New(ctx)
		svc := newService(cfg, logger.Get())
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		handler := newHandler(ctx, svc, logger.Get())

		convey.Convey("When each surface is requested", func() {
			paths := map[string]int{
				"/":                        http.StatusFound,
				"/dashboard":               http.StatusOK,
				"/api/views":               http.StatusOK,
				"/api/views/timeline":      http.StatusOK,
				"/api/charts/timeline":     http.StatusOK,
				"/api/dataset?format=yaml": http.StatusOK,
				"/api/integrity":           http.StatusOK,
				"/static/style.css":        http.StatusOK,
				"/openapi.yaml":            http.StatusOK,
				"/api-docs":                http.StatusOK,
				"/stats":                   http.StatusOK,
				"/healthz":                 http.StatusOK,
				"/api/views/heatmap":       http.StatusBadRequest,
			}

			convey.Convey("Then every route answers with its expected status and a request id", func() {
				for path, status := range paths {
					req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
					w := httptest.NewRecorder()
					handler.ServeHTTP(w, req)

					convey.So(w.Code, convey.ShouldEqual, status)
					convey.So(w.Header().Get("X-Request-ID"), convey.ShouldNotBeEmpty)
				}
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should stop with its context", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})
	})
}
