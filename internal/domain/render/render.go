// Package render turns the catalog and its derived metrics into
// render-ready views, one per dashboard mode.
//
// Renderers are pure reads over immutable data; a Renderer is safe for
// concurrent use.
package render

import (
	"fmt"
	"slices"

	"github.com/okian/quantumtech/internal/domain/dataset"
	"github.com/okian/quantumtech/internal/domain/derive"
	"github.com/okian/quantumtech/internal/domain/view"
)

// Renderer builds views over a catalog.
type Renderer struct {
	catalog *dataset.Catalog
	metrics derive.Metrics

	importanceDivisor float64
	impactDivisor     float64
}

// New creates a renderer over c. Metrics are derived once here.
func New(c *dataset.Catalog, opts ...Option) (*Renderer, error) {
	if c == nil {
		return nil, ErrNilCatalog
	}
	r := &Renderer{
		catalog:           c,
		metrics:           derive.Compute(c),
		importanceDivisor: DefaultImportanceDivisor,
		impactDivisor:     DefaultImpactDivisor,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Metrics returns the derived metrics the renderer works from.
func (r *Renderer) Metrics() derive.Metrics { return r.metrics }

// Options returns the secondary selection domain of mode, in display
// order. Modes without a secondary selection return nil.
func (r *Renderer) Options(mode view.Mode) []string {
	switch mode.Secondary() {
	case view.SecondarySector:
		out := make([]string, len(r.metrics.SectorImpacts))
		for i, s := range r.metrics.SectorImpacts {
			out[i] = s.Sector
		}
		return out
	case view.SecondaryTechnology:
		return r.catalog.TechnologyNames()
	case view.SecondaryNone:
		return nil
	}
	return nil
}

// Render builds the view for mode. selection is the secondary value for
// modes that take one; empty means the first option. Modes without a
// secondary selection ignore it.
func (r *Renderer) Render(mode view.Mode, selection string) (View, error) {
	var (
		v   View
		err error
	)
	switch mode {
	case view.Timeline:
		v = r.timeline()
	case view.EconomicImpact:
		v, err = r.economicImpact(selection)
	case view.EverydayApplications:
		v = r.everydayApplications()
	case view.DevelopmentLag:
		v = r.developmentLag()
	case view.TechnologyDetails:
		v, err = r.technologyDetails(selection)
	default:
		return View{}, fmt.Errorf("%w: %d", view.ErrInvalidViewMode, int(mode))
	}
	if err != nil {
		return View{}, err
	}

	v.Mode = mode
	v.Label = mode.Label()
	v.Secondary = mode.Secondary()
	return v, nil
}

// resolve picks the selected value from options.
func (r *Renderer) resolve(mode view.Mode, selection string) (string, []string, error) {
	options := r.Options(mode)
	if selection == "" {
		if len(options) == 0 {
			return "", nil, fmt.Errorf("%w: %s has no options", ErrSelectionNotFound, mode)
		}
		return options[0], options, nil
	}
	if !slices.Contains(options, selection) {
		return "", nil, fmt.Errorf("%w: %s %q", ErrSelectionNotFound, mode.Secondary(), selection)
	}
	return selection, options, nil
}
