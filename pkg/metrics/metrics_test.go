package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then defaults apply", func() {
				So(manager, ShouldNotBeNil)
				So(manager.RefreshInterval(), ShouldEqual, defaultRefreshInterval)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithLatencyBuckets([]float64{0.1, 0.5, 1.0}),
				WithImageSizeBuckets(512, 4, 6),
				WithImageSizeBuckets(0, 2, 3),
				WithRefreshInterval(5*time.Second),
				WithRefreshInterval(-1),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.renders.WithLabelValues("timeline", OutcomeOK).Inc()

			Convey("Then names and labels use them", func() {
				So(manager.RefreshInterval(), ShouldEqual, 5*time.Second)
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				var found bool
				for _, f := range families {
					if f.GetName() == "test_namespace_test_subsystem_renders_total" {
						found = true
						labels := f.GetMetric()[0].GetLabel()
						var hasEnv bool
						for _, l := range labels {
							if l.GetName() == "env" && l.GetValue() == "test" {
								hasEnv = true
							}
						}
						So(hasEnv, ShouldBeTrue)
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When two managers share one registry", func() {
			registry := prometheus.NewRegistry()
			NewManager(WithPrometheusRegistry(registry))

			Convey("Then the second registration panics", func() {
				So(func() { NewManager(WithPrometheusRegistry(registry)) }, ShouldPanic)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics", t, func() {
		Convey("When renders are recorded", func() {
			before := value(globalManager.renders.WithLabelValues("development-lag", OutcomeOK))
			RecordRender("development-lag", OutcomeOK)
			RecordRenderLatency("development-lag", 1.5)

			Convey("Then the counter moves by one", func() {
				after := value(globalManager.renders.WithLabelValues("development-lag", OutcomeOK))
				So(after-before, ShouldEqual, 1)
			})
		})

		Convey("When dataset gauges are updated", func() {
			UpdateDatasetRows("technologies", 10)
			UpdateUnresolvedReferences(8)
			UpdateAverageLag(45.4)

			Convey("Then they hold the latest values", func() {
				So(value(globalManager.datasetRows.WithLabelValues("technologies")), ShouldEqual, 10)
				So(value(globalManager.unresolvedRefs), ShouldEqual, 8)
				So(value(globalManager.averageLagYears), ShouldEqual, 45.4)
			})
		})

		Convey("When an unfiltered export is recorded", func() {
			before := value(globalManager.exports.WithLabelValues("json", "all"))
			RecordExport("json", "")

			Convey("Then it is labelled as all tables", func() {
				So(value(globalManager.exports.WithLabelValues("json", "all"))-before, ShouldEqual, 1)
			})
		})

		Convey("When the remaining recorders are called", func() {
			Convey("Then none of them panic", func() {
				So(func() {
					RecordChartImage("timeline", "png", 20480)
					RecordChartCache("svg", true)
					RecordChartCache("svg", false)
					RecordSelectionNotFound("economic-impact")
					RecordHTTPRequest("/api/views", "GET", "200")
					RecordHTTPRequestDuration("/api/views", "GET", "200", 3)
					RecordErrorByComponent("render", "selection_not_found")
					RecordErrorByEndpoint("/api/views", "GET", "not_found")
					UpdateSystemMemoryUsage(1 << 20)
					UpdateSystemGoroutineCount(12)
				}, ShouldNotPanic)
			})
		})

		Convey("Then the custom registry exposes the namespace", func() {
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(families, ShouldNotBeEmpty)
			for _, f := range families {
				So(strings.HasPrefix(f.GetName(), "quantumtech_dashboard_"), ShouldBeTrue)
			}
			So(RefreshInterval(), ShouldEqual, defaultRefreshInterval)
		})
	})
}

// value reads the current value of a single counter or gauge.
func value(m prometheus.Metric) float64 {
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		panic(err)
	}
	if out.Counter != nil {
		return out.GetCounter().GetValue()
	}
	return out.GetGauge().GetValue()
}
