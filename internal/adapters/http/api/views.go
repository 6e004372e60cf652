package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/quantumtech/internal/domain/render"
	"github.com/okian/quantumtech/internal/domain/types"
)

// ViewsDependencies defines the interface for view operations.
type ViewsDependencies interface {
	Views(ctx context.Context) ([]types.ViewSummary, error)
	Render(ctx context.Context, mode, selection string) (render.View, error)
}

// ViewsHandler handles view listing and rendering requests.
type ViewsHandler struct {
	deps ViewsDependencies
}

// NewViewsHandler creates a new views handler.
func NewViewsHandler(deps ViewsDependencies) *ViewsHandler {
	return &ViewsHandler{deps: deps}
}

// HandleListViews handles GET /api/views requests.
func (h *ViewsHandler) HandleListViews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	views, err := h.deps.Views(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// HandleGetView handles GET /api/views/{mode} requests.
func (h *ViewsHandler) HandleGetView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	mode, ok := pathParam(r, "/api/views/")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	v, err := h.deps.Render(r.Context(), mode, selection(r))
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// pathParam extracts the single path segment after prefix.
func pathParam(r *http.Request, prefix string) (string, bool) {
	p := strings.TrimPrefix(r.URL.Path, prefix)
	if p == "" || strings.Contains(p, "/") {
		return "", false
	}
	return p, true
}
