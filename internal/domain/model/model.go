// Package model contains the record types shared by the dataset, the
// derived metrics and the renderers.
package model

// Discovery is a theoretical quantum-physics milestone.
type Discovery struct {
	Year        int    `json:"year" yaml:"year"`
	Name        string `json:"name" yaml:"name"`
	Importance  int    `json:"importance" yaml:"importance"` // 0-100
	Description string `json:"description" yaml:"description"`
}

// Technology is a real-world product derived from quantum physics.
type Technology struct {
	Year             int     `json:"year" yaml:"year"`
	Name             string  `json:"name" yaml:"name"`
	ImpactBillions   float64 `json:"economic_impact_billions" yaml:"economic_impact_billions"`
	Sector           string  `json:"sector" yaml:"sector"`
	RelatedDiscovery string  `json:"related_discovery" yaml:"related_discovery"` // soft reference by name
	EverydayDevices  string  `json:"everyday_devices" yaml:"everyday_devices"`
}

// CategoryUsage describes how widespread quantum technologies are in a
// product category. It has no relation to the other tables.
type CategoryUsage struct {
	Category          string `json:"category" yaml:"category"`
	TechnologiesUsed  string `json:"technologies_used" yaml:"technologies_used"`
	ProductPercentage int    `json:"product_percentage" yaml:"product_percentage"` // 0-100
	ExampleDevice     string `json:"example_device" yaml:"example_device"`
}

// Correspondence pairs one discovery with one technology. LagYears is
// derived, never authored.
type Correspondence struct {
	DiscoveryName  string `json:"discovery_name" yaml:"discovery_name"`
	DiscoveryYear  int    `json:"discovery_year" yaml:"discovery_year"`
	TechnologyName string `json:"technology_name" yaml:"technology_name"`
	TechnologyYear int    `json:"technology_year" yaml:"technology_year"`
	LagYears       int    `json:"lag_years" yaml:"lag_years"`

	// Unlisted marks a technology that is intentionally absent from the
	// technology table; such rows skip the technology foreign-key check.
	Unlisted bool `json:"unlisted,omitempty" yaml:"unlisted,omitempty"`
}

// SectorImpact is one row of the economic impact aggregation.
type SectorImpact struct {
	Sector         string  `json:"sector" yaml:"sector"`
	ImpactBillions float64 `json:"total_impact_billions" yaml:"total_impact_billions"`
	Technologies   int     `json:"technologies" yaml:"technologies"`
}

// Lag returns the years elapsed between discovery and technology.
func (c Correspondence) Lag() int {
	return c.TechnologyYear - c.DiscoveryYear
}

// Snapshot is a full copy of the four tables, with derived lag filled in.
// It is what stores serve and what exports encode.
type Snapshot struct {
	Discoveries     []Discovery      `json:"discoveries,omitempty" yaml:"discoveries,omitempty"`
	Technologies    []Technology     `json:"technologies,omitempty" yaml:"technologies,omitempty"`
	CategoryUsages  []CategoryUsage  `json:"category_usages,omitempty" yaml:"category_usages,omitempty"`
	Correspondences []Correspondence `json:"correspondences,omitempty" yaml:"correspondences,omitempty"`
}

// Rows returns the total number of rows across all tables.
func (s Snapshot) Rows() int {
	return len(s.Discoveries) + len(s.Technologies) + len(s.CategoryUsages) + len(s.Correspondences)
}
