package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/okian/quantumtech/internal/domain/model"
	"github.com/okian/quantumtech/internal/domain/types"
)

// DatasetDependencies defines the interface for dataset reads.
type DatasetDependencies interface {
	Export(ctx context.Context, format, table string) (types.Payload, error)
	Technology(ctx context.Context, name string) (model.Technology, error)
	Integrity(ctx context.Context) (types.IntegrityReport, error)
}

// DatasetHandler handles dataset export, lookup and integrity requests.
type DatasetHandler struct {
	deps DatasetDependencies
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(deps DatasetDependencies) *DatasetHandler {
	return &DatasetHandler{deps: deps}
}

// HandleExport handles GET /api/dataset?format=&table= requests.
func (h *DatasetHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	format, table := q.Get("format"), q.Get("table")
	p, err := h.deps.Export(r.Context(), format, table)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	if q.Get("download") != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(format, table)))
	}
	writePayload(w, p)
}

func exportFilename(format, table string) string {
	if format == "" {
		format = "json"
	}
	if table == "" {
		table = "quantumtech"
	}
	if format == "sqlite" {
		format = "db"
	}
	return table + "." + format
}

// HandleGetTechnology handles GET /api/technologies/{name} requests.
func (h *DatasetHandler) HandleGetTechnology(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name, ok := pathParam(r, "/api/technologies/")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	tech, err := h.deps.Technology(r.Context(), name)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tech)
}

// HandleIntegrity handles GET /api/integrity requests.
func (h *DatasetHandler) HandleIntegrity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	report, err := h.deps.Integrity(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
