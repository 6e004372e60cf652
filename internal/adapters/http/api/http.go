// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/quantumtech/internal/adapters/chart"
	"github.com/okian/quantumtech/internal/adapters/codec"
	"github.com/okian/quantumtech/internal/adapters/repository"
	service "github.com/okian/quantumtech/internal/app"
	"github.com/okian/quantumtech/internal/domain/model"
	"github.com/okian/quantumtech/internal/domain/render"
	"github.com/okian/quantumtech/internal/domain/types"
	"github.com/okian/quantumtech/internal/domain/view"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Views lists the dashboard modes and their secondary options.
	Views(ctx context.Context) ([]types.ViewSummary, error)

	// Render builds one view. mode accepts a slug or a menu label.
	Render(ctx context.Context, mode, selection string) (render.View, error)

	// Chart rasterizes the chart of one view as png or svg.
	Chart(ctx context.Context, mode, selection, format string) (types.Payload, error)

	// Export encodes the dataset or one of its tables.
	Export(ctx context.Context, format, table string) (types.Payload, error)

	Technology(ctx context.Context, name string) (model.Technology, error)
	Integrity(ctx context.Context) (types.IntegrityReport, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	viewsHandler     *ViewsHandler
	chartsHandler    *ChartsHandler
	datasetHandler   *DatasetHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		viewsHandler:     NewViewsHandler(deps),
		chartsHandler:    NewChartsHandler(deps),
		datasetHandler:   NewDatasetHandler(deps),
		dashboardHandler: newDashboardHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/dashboard", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/api/views", MetricsMiddleware(s.viewsHandler.HandleListViews, "views"))
	mux.HandleFunc("/api/views/", MetricsMiddleware(s.viewsHandler.HandleGetView, "view"))
	mux.HandleFunc("/api/charts/", MetricsMiddleware(s.chartsHandler.HandleGetChart, "chart"))
	mux.HandleFunc("/api/dataset", MetricsMiddleware(s.datasetHandler.HandleExport, "dataset"))
	mux.HandleFunc("/api/technologies/", MetricsMiddleware(s.datasetHandler.HandleGetTechnology, "technology"))
	mux.HandleFunc("/api/integrity", MetricsMiddleware(s.datasetHandler.HandleIntegrity, "integrity"))
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writePayload(w http.ResponseWriter, p types.Payload) {
	w.Header().Set("Content-Type", p.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(p.Body)
}

// classify maps an upstream error to a status code and an error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, view.ErrInvalidViewMode):
		return http.StatusBadRequest, "invalid_mode"
	case errors.Is(err, render.ErrSelectionNotFound):
		return http.StatusNotFound, "selection_not_found"
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrNoChart):
		return http.StatusNotFound, "no_chart"
	case errors.Is(err, chart.ErrUnsupportedFormat),
		errors.Is(err, codec.ErrUnknownFormat),
		errors.Is(err, codec.ErrUnknownTable),
		errors.Is(err, codec.ErrSingleTable):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "timeout"
	}
	return http.StatusInternalServerError, "internal_error"
}

func writeUpstreamError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeError(w, status, code, err)
}

// selection reads the secondary filter from the query string.
// selection, sector and technology are accepted, in that order.
func selection(r *http.Request) string {
	q := r.URL.Query()
	for _, key := range []string{"selection", "sector", "technology"} {
		if v := q.Get(key); v != "" {
			return v
		}
	}
	return ""
}
