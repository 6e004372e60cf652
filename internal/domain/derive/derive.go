// Package derive computes the metrics that are derived from the static
// tables: correspondence lag, economic impact per sector and average lag.
package derive

import (
	"sort"

	"github.com/okian/quantumtech/internal/domain/dataset"
	"github.com/okian/quantumtech/internal/domain/model"
)

// Metrics bundles everything derived from a catalog. It is computed once
// at startup and shared read-only.
type Metrics struct {
	Correspondences []model.Correspondence
	SectorImpacts   []model.SectorImpact
	AverageLag      float64
	TotalImpact     float64
}

// Compute derives all metrics from c.
func Compute(c *dataset.Catalog) Metrics {
	lagged := ComputeLag(c.Correspondences())
	techs := c.Technologies()

	var total float64
	for _, t := range techs {
		total += t.ImpactBillions
	}

	return Metrics{
		Correspondences: lagged,
		SectorImpacts:   SumImpactBySector(techs),
		AverageLag:      AverageLag(lagged),
		TotalImpact:     total,
	}
}

// ComputeLag returns a copy of rows with LagYears filled in. Order and
// length are preserved.
func ComputeLag(rows []model.Correspondence) []model.Correspondence {
	out := make([]model.Correspondence, len(rows))
	for i, r := range rows {
		r.LagYears = r.Lag()
		out[i] = r
	}
	return out
}

// SumImpactBySector groups technologies by sector and sums their economic
// impact. The result is sorted by total descending; equal totals keep the
// order in which their sector was first seen.
func SumImpactBySector(techs []model.Technology) []model.SectorImpact {
	if len(techs) == 0 {
		return nil
	}

	index := make(map[string]int)
	groups := make([]model.SectorImpact, 0)
	for _, t := range techs {
		i, ok := index[t.Sector]
		if !ok {
			i = len(groups)
			index[t.Sector] = i
			groups = append(groups, model.SectorImpact{Sector: t.Sector})
		}
		groups[i].ImpactBillions += t.ImpactBillions
		groups[i].Technologies++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].ImpactBillions > groups[j].ImpactBillions
	})
	return groups
}

// AverageLag is the arithmetic mean of LagYears, or 0 for no rows.
func AverageLag(rows []model.Correspondence) float64 {
	if len(rows) == 0 {
		return 0
	}
	sum := 0
	for _, r := range rows {
		sum += r.LagYears
	}
	return float64(sum) / float64(len(rows))
}

// Snapshot copies every table of c, with correspondence lag filled in.
func Snapshot(c *dataset.Catalog) model.Snapshot {
	return model.Snapshot{
		Discoveries:     c.Discoveries(),
		Technologies:    c.Technologies(),
		CategoryUsages:  c.CategoryUsages(),
		Correspondences: ComputeLag(c.Correspondences()),
	}
}
