package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/okian/quantumtech/internal/domain/render"
	"github.com/okian/quantumtech/internal/domain/types"
	"github.com/okian/quantumtech/internal/domain/view"
)

// DashboardDependencies defines the interface for the HTML dashboard.
type DashboardDependencies interface {
	Views(ctx context.Context) ([]types.ViewSummary, error)
	Render(ctx context.Context, mode, selection string) (render.View, error)
}

// dashboardHandler serves the server-rendered dashboard page.
type dashboardHandler struct {
	deps DashboardDependencies
}

func newDashboardHandler(deps DashboardDependencies) *dashboardHandler {
	return &dashboardHandler{deps: deps}
}

// dashboardPage is the template data of one page.
type dashboardPage struct {
	Views    []types.ViewSummary
	Current  string
	View     render.View
	Options  []string
	ChartURL string
	Error    string
}

// HandleDashboard handles GET /dashboard?view=&selection= requests.
func (h *dashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()

	views, err := h.deps.Views(ctx)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	page := dashboardPage{Views: views}
	status := http.StatusOK

	// Timeline unless ?view= names another mode.
	sel := view.NewSelector()
	if raw := r.URL.Query().Get("view"); raw != "" {
		err = sel.SelectString(raw)
	}
	page.Current = sel.Current().Slug()

	var v render.View
	if err == nil {
		v, err = h.deps.Render(ctx, page.Current, selection(r))
	}
	if err != nil {
		status, _ = classify(err)
		page.Error = err.Error()
	} else {
		page.View = v
		page.Current = v.Mode.Slug()
		page.Options = v.Options
		if v.Chart != nil {
			page.ChartURL = chartURL(v)
		}
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", fmt.Errorf("%w: %w", ErrTemplate, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func chartURL(v render.View) string {
	q := url.Values{}
	q.Set("format", "svg")
	if v.Selected != "" {
		q.Set("selection", v.Selected)
	}
	return "/api/charts/" + url.PathEscape(v.Mode.Slug()) + "?" + q.Encode()
}
