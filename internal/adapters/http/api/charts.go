package api

import (
	"context"
	"net/http"

	"github.com/okian/quantumtech/internal/domain/types"
)

// ChartsDependencies defines the interface for chart image operations.
type ChartsDependencies interface {
	Chart(ctx context.Context, mode, selection, format string) (types.Payload, error)
}

// ChartsHandler handles chart image requests.
type ChartsHandler struct {
	deps ChartsDependencies
}

// NewChartsHandler creates a new charts handler.
func NewChartsHandler(deps ChartsDependencies) *ChartsHandler {
	return &ChartsHandler{deps: deps}
}

// HandleGetChart handles GET /api/charts/{mode}?format=png|svg requests.
func (h *ChartsHandler) HandleGetChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	mode, ok := pathParam(r, "/api/charts/")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	p, err := h.deps.Chart(r.Context(), mode, selection(r), r.URL.Query().Get("format"))
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=300")
	writePayload(w, p)
}
