// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/quantumtech/internal/adapters/cache"
	"github.com/okian/quantumtech/internal/adapters/chart"
	"github.com/okian/quantumtech/internal/adapters/codec"
	"github.com/okian/quantumtech/internal/adapters/repository"
	"github.com/okian/quantumtech/internal/domain/dataset"
	"github.com/okian/quantumtech/internal/domain/derive"
	"github.com/okian/quantumtech/internal/domain/model"
	"github.com/okian/quantumtech/internal/domain/render"
	"github.com/okian/quantumtech/internal/domain/types"
	"github.com/okian/quantumtech/internal/domain/view"
	"github.com/okian/quantumtech/pkg/logger"
	"github.com/okian/quantumtech/pkg/metrics"
)

// modeLabelUnknown labels metrics for mode strings that do not parse.
const modeLabelUnknown = "unknown"

// Service implements the API dependencies for the dashboard.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog    *dataset.Catalog
	renderer   *render.Renderer
	rasterizer *chart.Rasterizer
	images     *cache.ImageCache
	codecs     *codec.Registry
	store      repository.Store

	// Configuration
	tables            *dataset.Tables
	storeKind         string
	sqlitePath        string
	importanceDivisor float64
	impactDivisor     float64
	chartWidth        int
	chartHeight       int
	cacheSize         int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		storeKind:         repository.KindMemory,
		importanceDivisor: render.DefaultImportanceDivisor,
		impactDivisor:     render.DefaultImpactDivisor,
		chartWidth:        1024,
		chartHeight:       500,
		cacheSize:         64,
		logger:            nil, // replaced when the service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads and validates the dataset, opens the store and prepares the
// renderers. A data integrity failure is returned and the service stays stopped.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	tables := dataset.Builtin()
	if s.tables != nil {
		tables = *s.tables
	}
	catalog, err := dataset.New(tables)
	if err != nil {
		metrics.RecordErrorByComponent("dataset", "integrity")
		return fmt.Errorf("load dataset: %w", err)
	}

	renderer, err := render.New(catalog, render.WithMarkerDivisors(s.importanceDivisor, s.impactDivisor))
	if err != nil {
		return fmt.Errorf("build renderer: %w", err)
	}

	store, err := s.openStore(ctx, derive.Snapshot(catalog))
	if err != nil {
		metrics.RecordErrorByComponent("store", "open")
		return fmt.Errorf("open %s store: %w", s.storeKind, err)
	}

	s.catalog = catalog
	s.renderer = renderer
	s.store = store
	s.rasterizer = chart.New(chart.WithSize(s.chartWidth, s.chartHeight))
	s.images = cache.New(cache.WithMaxEntries(s.cacheSize))
	s.codecs = codec.Default()

	s.reportDataset(ctx)

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.String("store", store.Kind()),
		logger.Float64("averageLag", renderer.Metrics().AverageLag),
		logger.Float64("totalImpact", renderer.Metrics().TotalImpact),
	)

	return nil
}

func (s *Service) openStore(ctx context.Context, snap model.Snapshot) (repository.Store, error) {
	switch s.storeKind {
	case repository.KindMemory:
		return repository.NewMemoryStore(snap), nil
	case repository.KindSQLite:
		st, err := repository.NewSQLiteStore(ctx, s.sqlitePath)
		if err != nil {
			return nil, err
		}
		if err := st.Load(ctx, snap); err != nil {
			_ = st.Close()
			return nil, err
		}
		s.logger.Info(ctx, "dataset mirrored into sqlite", logger.String("path", st.Path()))
		return st, nil
	}
	return nil, fmt.Errorf("%w: %q", repository.ErrUnknownStore, s.storeKind)
}

// reportDataset logs table sizes and flagged references and publishes them as gauges.
func (s *Service) reportDataset(ctx context.Context) {
	counts, err := s.store.Count(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to count dataset rows", logger.Error(err))
	}
	for _, table := range dataset.TableNames {
		metrics.UpdateDatasetRows(table, counts[table])
		s.logger.Info(ctx, "dataset table loaded",
			logger.String("table", table),
			logger.Int("rows", counts[table]),
		)
	}

	unresolved := s.catalog.Unresolved()
	metrics.UpdateUnresolvedReferences(len(unresolved))
	for _, ref := range unresolved {
		s.logger.Warn(ctx, "unresolved soft reference",
			logger.String("table", ref.Table),
			logger.String("row", ref.Row),
			logger.String("field", ref.Field),
			logger.String("value", ref.Value),
		)
	}

	metrics.UpdateAverageLag(s.renderer.Metrics().AverageLag)
}

// Stop releases the store.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping dashboard service...")

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn(context.Background(), "failed to close store", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// ready returns the renderer when the service is running.
func (s *Service) ready() (*render.Renderer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.renderer, nil
}

// Views lists every mode in menu order with its secondary options.
func (s *Service) Views(ctx context.Context) ([]types.ViewSummary, error) {
	r, err := s.ready()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]types.ViewSummary, len(view.Modes))
	for i, m := range view.Modes {
		out[i] = types.ViewSummary{
			Mode:      m.Slug(),
			Label:     m.Label(),
			Secondary: string(m.Secondary()),
			Options:   r.Options(m),
		}
	}
	return out, nil
}

// Render parses mode and renders it with the given secondary selection.
func (s *Service) Render(ctx context.Context, mode, selection string) (render.View, error) {
	r, err := s.ready()
	if err != nil {
		return render.View{}, err
	}
	if err := ctx.Err(); err != nil {
		return render.View{}, err
	}

	m, err := view.ParseMode(mode)
	if err != nil {
		metrics.RecordRender(modeLabelUnknown, metrics.OutcomeInvalidMode)
		return render.View{}, err
	}

	start := time.Now()
	v, err := r.Render(m, selection)
	metrics.RecordRenderLatency(m.Slug(), float64(time.Since(start).Microseconds())/1000)

	switch {
	case err == nil:
		metrics.RecordRender(m.Slug(), metrics.OutcomeOK)
	case errors.Is(err, render.ErrSelectionNotFound):
		metrics.RecordRender(m.Slug(), metrics.OutcomeSelectionNotFound)
		metrics.RecordSelectionNotFound(m.Slug())
		s.logger.Debug(ctx, "selection not found",
			logger.String("view", m.Slug()),
			logger.String("selection", selection),
		)
	default:
		metrics.RecordRender(m.Slug(), metrics.OutcomeError)
		metrics.RecordErrorByComponent("render", "render_failed")
		s.logger.Error(ctx, "render failed", logger.String("view", m.Slug()), logger.Error(err))
	}
	return v, err
}

// Chart renders mode and rasterizes its chart as png or svg.
// Images are cached by view, resolved selection and format.
func (s *Service) Chart(ctx context.Context, mode, selection, format string) (types.Payload, error) {
	f, err := chart.ParseFormat(format)
	if err != nil {
		return types.Payload{}, err
	}
	v, err := s.Render(ctx, mode, selection)
	if err != nil {
		return types.Payload{}, err
	}
	if v.Chart == nil {
		return types.Payload{}, fmt.Errorf("%w: %s", ErrNoChart, v.Mode)
	}

	key := cache.Key(v.Mode.Slug(), v.Selected, string(f))
	if p, ok := s.images.Get(ctx, key); ok {
		metrics.RecordChartCache(string(f), true)
		return p, nil
	}
	metrics.RecordChartCache(string(f), false)

	var buf bytes.Buffer
	if err := s.rasterizer.Render(&buf, v.Chart, f); err != nil {
		metrics.RecordErrorByComponent("chart", "rasterize")
		return types.Payload{}, fmt.Errorf("rasterize %s: %w", v.Mode, err)
	}
	metrics.RecordChartImage(v.Mode.Slug(), string(f), buf.Len())
	p := types.Payload{ContentType: f.ContentType(), Body: buf.Bytes()}
	s.images.Put(ctx, key, p)
	return p, nil
}

// Export encodes the dataset, or a single table of it, in format.
func (s *Service) Export(ctx context.Context, format, table string) (types.Payload, error) {
	if _, err := s.ready(); err != nil {
		return types.Payload{}, err
	}
	exp, err := s.codecs.Exporter(format)
	if err != nil {
		return types.Payload{}, err
	}
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		metrics.RecordErrorByComponent("store", "snapshot")
		return types.Payload{}, fmt.Errorf("read dataset: %w", err)
	}
	sel, err := codec.Select(snap, table)
	if err != nil {
		return types.Payload{}, err
	}

	var buf bytes.Buffer
	if err := exp.Export(sel, &buf); err != nil {
		return types.Payload{}, fmt.Errorf("export %s: %w", exp.Format(), err)
	}
	metrics.RecordExport(exp.Format(), table)
	return types.Payload{ContentType: exp.ContentType(), Body: buf.Bytes()}, nil
}

// ExportFormats lists the accepted export formats.
func (s *Service) ExportFormats() []string {
	return codec.Default().Formats()
}

// Technology returns one technology row from the store.
func (s *Service) Technology(ctx context.Context, name string) (model.Technology, error) {
	if _, err := s.ready(); err != nil {
		return model.Technology{}, err
	}
	return s.store.Technology(ctx, name)
}

// Integrity reports the soft references that did not resolve at load.
func (s *Service) Integrity(ctx context.Context) (types.IntegrityReport, error) {
	if _, err := s.ready(); err != nil {
		return types.IntegrityReport{}, err
	}
	if err := ctx.Err(); err != nil {
		return types.IntegrityReport{}, err
	}
	return types.NewIntegrityReport(s.catalog.Unresolved()), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"storeKind":   s.storeKind,
		"chartWidth":  s.chartWidth,
		"chartHeight": s.chartHeight,
	}

	if s.started {
		m := s.renderer.Metrics()
		stats["averageLag"] = m.AverageLag
		stats["totalImpact"] = m.TotalImpact
		stats["unresolvedReferences"] = len(s.catalog.Unresolved())
		hits, misses, _ := s.images.Stats()
		stats["chartCache"] = map[string]interface{}{
			"entries": s.images.Len(),
			"hits":    hits,
			"misses":  misses,
		}
		if counts, err := s.store.Count(context.Background()); err == nil {
			stats["tables"] = counts
		}
	}

	return stats
}
