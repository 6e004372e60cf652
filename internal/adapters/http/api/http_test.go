package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/quantumtech/internal/adapters/chart"
	"github.com/okian/quantumtech/internal/adapters/codec"
	"github.com/okian/quantumtech/internal/adapters/http/api"
	"github.com/okian/quantumtech/internal/adapters/repository"
	service "github.com/okian/quantumtech/internal/app"
	"github.com/okian/quantumtech/internal/domain/dataset"
	"github.com/okian/quantumtech/internal/domain/model"
	"github.com/okian/quantumtech/internal/domain/render"
	"github.com/okian/quantumtech/internal/domain/types"
	"github.com/okian/quantumtech/internal/domain/view"
	"github.com/okian/quantumtech/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// mockDependencies records the last call and answers from fixed values.
type mockDependencies struct {
	views     []types.ViewSummary
	view      render.View
	payload   types.Payload
	tech      model.Technology
	integrity types.IntegrityReport
	err       error

	lastMode, lastSelection, lastFormat, lastTable, lastName string
}

func (m *mockDependencies) Views(context.Context) ([]types.ViewSummary, error) {
	return m.views, m.err
}

func (m *mockDependencies) Render(_ context.Context, mode, selection string) (render.View, error) {
	m.lastMode, m.lastSelection = mode, selection
	return m.view, m.err
}

func (m *mockDependencies) Chart(_ context.Context, mode, selection, format string) (types.Payload, error) {
	m.lastMode, m.lastSelection, m.lastFormat = mode, selection, format
	return m.payload, m.err
}

func (m *mockDependencies) Export(_ context.Context, format, table string) (types.Payload, error) {
	m.lastFormat, m.lastTable = format, table
	return m.payload, m.err
}

func (m *mockDependencies) Technology(_ context.Context, name string) (model.Technology, error) {
	m.lastName = name
	return m.tech, m.err
}

func (m *mockDependencies) Integrity(context.Context) (types.IntegrityReport, error) {
	return m.integrity, m.err
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newMux(deps api.Dependencies) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, &mockStatsProvider{stats: map[string]interface{}{"started": true}}).Register(context.Background(), mux)
	return mux
}

func do(mux http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
	return body
}

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		deps := &mockDependencies{views: []types.ViewSummary{{Mode: "timeline", Label: "Timeline Storica"}}}
		mux := newMux(deps)

		Convey("When the health endpoint is requested", func() {
			w := do(mux, http.MethodGet, "/healthz")

			Convey("Then Prometheus text is served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "quantumtech_dashboard_")
			})
		})

		Convey("When the stats endpoint is requested", func() {
			w := do(mux, http.MethodGet, "/stats")

			Convey("Then the provider's stats are encoded", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"started":true`)
				So(w.Body.String(), ShouldContainSubstring, `"uptimeSeconds":`)
				So(w.Header().Get("Cache-Control"), ShouldEqual, "no-store")
			})
		})

		Convey("When the root is requested", func() {
			w := do(mux, http.MethodGet, "/")

			Convey("Then it redirects to the dashboard", func() {
				So(w.Code, ShouldEqual, http.StatusFound)
				So(w.Header().Get("Location"), ShouldEqual, "/dashboard")
			})
		})

		Convey("When an unknown path is requested", func() {
			w := do(mux, http.MethodGet, "/patents")

			Convey("Then it is not found", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When a registered route gets a POST", func() {
			w := do(mux, http.MethodPost, "/api/views")

			Convey("Then it is not found", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When registering on a nil mux", func() {
			Convey("Then it panics", func() {
				So(func() { api.NewServer(deps, &mockStatsProvider{}).Register(context.Background(), nil) }, ShouldPanic)
			})
		})
	})
}

func TestViewsHandler(t *testing.T) {
	Convey("Given a views handler", t, func() {
		deps := &mockDependencies{
			views: []types.ViewSummary{{Mode: "timeline", Label: "Timeline Storica"}},
			view:  render.View{Mode: view.EconomicImpact, Title: "Impatto Economico", Selected: "Sicurezza"},
		}
		mux := newMux(deps)

		Convey("When listing views", func() {
			w := do(mux, http.MethodGet, "/api/views")

			Convey("Then the summaries are returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var got []types.ViewSummary
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(got, ShouldResemble, deps.views)
			})
		})

		Convey("When rendering a view with a sector filter", func() {
			w := do(mux, http.MethodGet, "/api/views/economic-impact?sector=Sicurezza")

			Convey("Then the mode and selection are forwarded", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastMode, ShouldEqual, "economic-impact")
				So(deps.lastSelection, ShouldEqual, "Sicurezza")
				So(w.Body.String(), ShouldContainSubstring, `"mode":"economic-impact"`)
			})
		})

		Convey("When the technology filter is used", func() {
			do(mux, http.MethodGet, "/api/views/technology-details?technology=Laser")

			Convey("Then it is forwarded as the selection", func() {
				So(deps.lastSelection, ShouldEqual, "Laser")
			})
		})

		Convey("When the path has extra segments", func() {
			w := do(mux, http.MethodGet, "/api/views/timeline/extra")

			Convey("Then it is a bad request", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeError(w)["code"], ShouldEqual, "bad_request")
			})
		})
	})
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: heatmap", view.ErrInvalidViewMode), http.StatusBadRequest, "invalid_mode"},
		{fmt.Errorf("%w: sector", render.ErrSelectionNotFound), http.StatusNotFound, "selection_not_found"},
		{repository.ErrNotFound, http.StatusNotFound, "not_found"},
		{chart.ErrUnsupportedFormat, http.StatusBadRequest, "bad_request"},
		{codec.ErrUnknownTable, http.StatusBadRequest, "bad_request"},
		{fmt.Errorf("%w: technology-details", service.ErrNoChart), http.StatusNotFound, "no_chart"},
		{service.ErrNotStarted, http.StatusServiceUnavailable, "unavailable"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "internal_error"},
	}

	Convey("Given upstream errors", t, func() {
		for _, tc := range cases {
			deps := &mockDependencies{err: tc.err}
			mux := newMux(deps)

			Convey("When "+tc.err.Error()+" is returned", func() {
				w := do(mux, http.MethodGet, "/api/views/timeline")

				Convey("Then it maps to "+tc.code, func() {
					So(w.Code, ShouldEqual, tc.status)
					body := decodeError(w)
					So(body["code"], ShouldEqual, tc.code)
					So(body["message"], ShouldEqual, tc.err.Error())
				})
			})
		}
	})
}

func TestChartsHandler(t *testing.T) {
	Convey("Given a charts handler", t, func() {
		deps := &mockDependencies{payload: types.Payload{ContentType: "image/svg+xml", Body: []byte("<svg></svg>")}}
		mux := newMux(deps)

		Convey("When a chart is requested", func() {
			w := do(mux, http.MethodGet, "/api/charts/development-lag?format=svg")

			Convey("Then the image is written with its content type", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "image/svg+xml")
				So(w.Body.String(), ShouldEqual, "<svg></svg>")
				So(deps.lastFormat, ShouldEqual, "svg")
				So(deps.lastMode, ShouldEqual, "development-lag")
			})
		})

		Convey("When no mode is given", func() {
			w := do(mux, http.MethodGet, "/api/charts/")

			Convey("Then it is a bad request", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestDatasetHandler(t *testing.T) {
	Convey("Given a dataset handler", t, func() {
		deps := &mockDependencies{
			payload:   types.Payload{ContentType: "text/csv; charset=utf-8", Body: []byte("a,b\n")},
			tech:      model.Technology{Name: "Laser", Year: 1960, Sector: "Vari"},
			integrity: types.NewIntegrityReport([]dataset.UnresolvedReference{{Table: "technologies", Row: "Laser"}}),
		}
		mux := newMux(deps)

		Convey("When exporting a table for download", func() {
			w := do(mux, http.MethodGet, "/api/dataset?format=csv&table=technologies&download=1")

			Convey("Then the body and attachment name are set", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldEqual, "a,b\n")
				So(w.Header().Get("Content-Disposition"), ShouldEqual, `attachment; filename="technologies.csv"`)
				So(deps.lastTable, ShouldEqual, "technologies")
			})
		})

		Convey("When looking up a technology with a space in its name", func() {
			w := do(mux, http.MethodGet, "/api/technologies/Risonanza%20Magnetica")

			Convey("Then the decoded name is forwarded", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastName, ShouldEqual, "Risonanza Magnetica")
			})
		})

		Convey("When reading integrity", func() {
			w := do(mux, http.MethodGet, "/api/integrity")

			Convey("Then the report is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"count":1`)
			})
		})
	})
}

func TestDashboard(t *testing.T) {
	Convey("Given the dashboard over a started service", t, func() {
		svc := service.New()
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()
		mux := newMux(svc)

		Convey("When the default page is requested", func() {
			w := do(mux, http.MethodGet, "/dashboard")

			Convey("Then the timeline is rendered in Italian", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "text/html; charset=utf-8")
				body := w.Body.String()
				So(body, ShouldContainSubstring, "Timeline delle Scoperte Quantistiche e Tecnologie Derivate")
				So(body, ShouldContainSubstring, "/api/charts/timeline?format=svg")
				So(body, ShouldContainSubstring, "Dashboard creata per scopi didattici")
				So(body, ShouldContainSubstring, `<li class="active"><a href="/dashboard?view=timeline">`)
			})

			Convey("And every chart point's hover text is listed under the image", func() {
				body := w.Body.String()
				So(body, ShouldContainSubstring, "Dati del grafico")
				So(body, ShouldContainSubstring, "Settore: Elettronica")
				So(body, ShouldContainSubstring, "Descrizione: ")
				So(strings.Count(body, "<li title="), ShouldEqual, 20)
			})
		})

		Convey("When the view is chosen by its label", func() {
			w := do(mux, http.MethodGet, "/dashboard?view=Tempo+di+Sviluppo")

			Convey("Then that mode becomes current", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `<li class="active"><a href="/dashboard?view=development-lag">`)
				So(w.Body.String(), ShouldContainSubstring, "45,4 anni")
			})
		})

		Convey("When a sector is selected", func() {
			w := do(mux, http.MethodGet, "/dashboard?view=economic-impact&selection=Sicurezza")

			Convey("Then the sector section and selector are shown", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := w.Body.String()
				So(body, ShouldContainSubstring, "Tecnologie nel settore Sicurezza")
				So(body, ShouldContainSubstring, `<option value="Sicurezza" selected>`)
			})
		})

		Convey("When the lag view is requested", func() {
			w := do(mux, http.MethodGet, "/dashboard?view=development-lag")

			Convey("Then the average lag callout is shown", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "45,4 anni")
			})
		})

		Convey("When the view is unknown", func() {
			w := do(mux, http.MethodGet, "/dashboard?view=heatmap")

			Convey("Then the page reports the error with 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(w.Body.String(), ShouldContainSubstring, `class="error"`)
				So(w.Body.String(), ShouldContainSubstring, `<li class="active"><a href="/dashboard?view=timeline">`)
			})
		})

		Convey("When the chart of a view without one is requested", func() {
			w := do(mux, http.MethodGet, "/api/charts/technology-details?selection=Laser&format=svg")

			Convey("Then it is not found with no_chart", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(decodeError(w)["code"], ShouldEqual, "no_chart")
			})
		})

		Convey("When a technology is shown", func() {
			w := do(mux, http.MethodGet, "/dashboard?view=technology-details&selection=Laser")

			Convey("Then the page has no chart image", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldNotContainSubstring, "/api/charts/")
				So(w.Body.String(), ShouldContainSubstring, "1960")
			})
		})

		Convey("When the technology is unknown", func() {
			w := do(mux, http.MethodGet, "/dashboard?view=technology-details&selection=Teletrasporto")

			Convey("Then the page reports it with 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(strings.Contains(w.Body.String(), "Teletrasporto"), ShouldBeTrue)
			})
		})
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	Convey("Given a handler behind the request id middleware", t, func() {
		var seen string
		h := api.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = api.RequestID(r.Context())
		}))

		Convey("When no id is sent", func() {
			w := do(h, http.MethodGet, "/")

			Convey("Then a new id is assigned and echoed", func() {
				So(seen, ShouldNotBeEmpty)
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, seen)
			})
		})

		Convey("When a valid id is sent", func() {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set(api.RequestIDHeader, "6f1c1a0e-3d1b-4c55-9c7e-0b8f7d1f2a11")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			Convey("Then it is reused", func() {
				So(seen, ShouldEqual, "6f1c1a0e-3d1b-4c55-9c7e-0b8f7d1f2a11")
			})
		})

		Convey("When a malformed id is sent", func() {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set(api.RequestIDHeader, "<script>")
			h.ServeHTTP(httptest.NewRecorder(), req)

			Convey("Then it is replaced", func() {
				So(seen, ShouldNotEqual, "<script>")
			})
		})
	})
}
