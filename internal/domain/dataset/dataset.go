// Package dataset holds the fixed, authored tables of the dashboard and the
// name indexes that resolve references between them.
//
// Conventions:
//   - The catalog is built once and never mutated afterwards.
//   - Every accessor returns a copy; callers cannot write back into the tables.
//   - Correspondence references are validated foreign keys. A technology's
//     related discovery is a soft reference: unresolved names are flagged, not fatal.
package dataset

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/okian/quantumtech/internal/domain/model"
)

// Plausible calendar year bounds for authored rows.
const (
	minYear       = 1800
	maxYear       = 2100
	maxPercentage = 100
)

// Table names, used in errors, metrics labels and exports.
const (
	TableDiscoveries     = "discoveries"
	TableTechnologies    = "technologies"
	TableCategoryUsages  = "category_usages"
	TableCorrespondences = "correspondences"
)

// TableNames lists the four tables in a stable order.
var TableNames = []string{TableDiscoveries, TableTechnologies, TableCategoryUsages, TableCorrespondences}

// Tables is the raw authored content of a catalog.
type Tables struct {
	Discoveries     []model.Discovery
	Technologies    []model.Technology
	CategoryUsages  []model.CategoryUsage
	Correspondences []model.Correspondence
	Facts           map[string]string
	Examples        []EverydayExample
}

// UnresolvedReference flags a soft reference whose target name is not
// present in the referenced table.
type UnresolvedReference struct {
	Table string `json:"table"`
	Row   string `json:"row"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// Catalog is the validated, indexed, read-only dataset.
type Catalog struct {
	tables Tables

	discoveryByName  map[string]int
	technologyByName map[string]int
	sectors          []string // first-encounter order
	unresolved       []UnresolvedReference
}

// Builtin returns a copy of the authored tables.
func Builtin() Tables {
	return Tables{
		Discoveries:     slices.Clone(discoveries),
		Technologies:    slices.Clone(technologies),
		CategoryUsages:  slices.Clone(categoryUsages),
		Correspondences: slices.Clone(correspondences),
		Facts:           maps.Clone(facts),
		Examples:        cloneExamples(everydayExamples),
	}
}

// Load validates and indexes the authored tables.
func Load() (*Catalog, error) {
	return New(Builtin())
}

// New validates t and builds a catalog over it. Any integrity problem is
// reported as an error wrapping ErrDataIntegrity.
func New(t Tables) (*Catalog, error) {
	c := &Catalog{
		tables:           t,
		discoveryByName:  make(map[string]int, len(t.Discoveries)),
		technologyByName: make(map[string]int, len(t.Technologies)),
	}

	var problems []error
	problems = append(problems, c.indexDiscoveries()...)
	problems = append(problems, c.indexTechnologies()...)
	problems = append(problems, c.checkCategoryUsages()...)
	problems = append(problems, c.checkCorrespondences()...)
	problems = append(problems, c.checkFacts()...)
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrDataIntegrity, errors.Join(problems...))
	}

	c.resolveSoftReferences()
	return c, nil
}

func (c *Catalog) indexDiscoveries() []error {
	var problems []error
	for i, d := range c.tables.Discoveries {
		if d.Name == "" {
			problems = append(problems, fmt.Errorf("%s[%d]: empty name", TableDiscoveries, i))
			continue
		}
		if d.Year < minYear || d.Year > maxYear {
			problems = append(problems, fmt.Errorf("%s %q: implausible year %d", TableDiscoveries, d.Name, d.Year))
		}
		if d.Importance < 0 || d.Importance > maxPercentage {
			problems = append(problems, fmt.Errorf("%s %q: importance %d outside [0,100]", TableDiscoveries, d.Name, d.Importance))
		}
		if _, dup := c.discoveryByName[d.Name]; dup {
			problems = append(problems, fmt.Errorf("%s %q: duplicate name", TableDiscoveries, d.Name))
			continue
		}
		c.discoveryByName[d.Name] = i
	}
	return problems
}

func (c *Catalog) indexTechnologies() []error {
	var problems []error
	for i, t := range c.tables.Technologies {
		if t.Name == "" {
			problems = append(problems, fmt.Errorf("%s[%d]: empty name", TableTechnologies, i))
			continue
		}
		if t.Year < minYear || t.Year > maxYear {
			problems = append(problems, fmt.Errorf("%s %q: implausible year %d", TableTechnologies, t.Name, t.Year))
		}
		if t.ImpactBillions < 0 {
			problems = append(problems, fmt.Errorf("%s %q: negative economic impact", TableTechnologies, t.Name))
		}
		if t.Sector == "" {
			problems = append(problems, fmt.Errorf("%s %q: empty sector", TableTechnologies, t.Name))
		}
		if _, dup := c.technologyByName[t.Name]; dup {
			problems = append(problems, fmt.Errorf("%s %q: duplicate name", TableTechnologies, t.Name))
			continue
		}
		c.technologyByName[t.Name] = i
		if t.Sector != "" && !slices.Contains(c.sectors, t.Sector) {
			c.sectors = append(c.sectors, t.Sector)
		}
	}
	return problems
}

func (c *Catalog) checkCategoryUsages() []error {
	var problems []error
	for _, u := range c.tables.CategoryUsages {
		if u.ProductPercentage < 0 || u.ProductPercentage > maxPercentage {
			problems = append(problems, fmt.Errorf("%s %q: percentage %d outside [0,100]",
				TableCategoryUsages, u.Category, u.ProductPercentage))
		}
	}
	return problems
}

func (c *Catalog) checkCorrespondences() []error {
	var problems []error
	for _, r := range c.tables.Correspondences {
		label := r.DiscoveryName + " -> " + r.TechnologyName

		if i, ok := c.discoveryByName[r.DiscoveryName]; !ok {
			problems = append(problems, fmt.Errorf("%s %q: unknown discovery %q", TableCorrespondences, label, r.DiscoveryName))
		} else if y := c.tables.Discoveries[i].Year; y != r.DiscoveryYear {
			problems = append(problems, fmt.Errorf("%s %q: discovery year %d, table says %d", TableCorrespondences, label, r.DiscoveryYear, y))
		}

		if i, ok := c.technologyByName[r.TechnologyName]; ok {
			if y := c.tables.Technologies[i].Year; y != r.TechnologyYear {
				problems = append(problems, fmt.Errorf("%s %q: technology year %d, table says %d", TableCorrespondences, label, r.TechnologyYear, y))
			}
		} else if !r.Unlisted {
			problems = append(problems, fmt.Errorf("%s %q: unknown technology %q", TableCorrespondences, label, r.TechnologyName))
		} else if r.TechnologyYear < minYear || r.TechnologyYear > maxYear {
			problems = append(problems, fmt.Errorf("%s %q: implausible technology year %d", TableCorrespondences, label, r.TechnologyYear))
		}

		if r.Lag() < 0 {
			problems = append(problems, fmt.Errorf("%s %q: technology predates discovery by %d years", TableCorrespondences, label, -r.Lag()))
		}
	}
	return problems
}

func (c *Catalog) checkFacts() []error {
	var problems []error
	for _, name := range slices.Sorted(maps.Keys(c.tables.Facts)) {
		if _, ok := c.technologyByName[name]; !ok {
			problems = append(problems, fmt.Errorf("fact for unknown technology %q", name))
		}
	}
	return problems
}

func (c *Catalog) resolveSoftReferences() {
	for _, t := range c.tables.Technologies {
		if _, ok := c.discoveryByName[t.RelatedDiscovery]; ok {
			continue
		}
		c.unresolved = append(c.unresolved, UnresolvedReference{
			Table: TableTechnologies,
			Row:   t.Name,
			Field: "related_discovery",
			Value: t.RelatedDiscovery,
		})
	}
}

// Discoveries returns the discovery table in authored order.
func (c *Catalog) Discoveries() []model.Discovery { return slices.Clone(c.tables.Discoveries) }

// Technologies returns the technology table in authored order.
func (c *Catalog) Technologies() []model.Technology { return slices.Clone(c.tables.Technologies) }

// CategoryUsages returns the category usage table in authored order.
func (c *Catalog) CategoryUsages() []model.CategoryUsage {
	return slices.Clone(c.tables.CategoryUsages)
}

// Correspondences returns the authored correspondence rows. LagYears is not
// filled in; see derive.ComputeLag.
func (c *Catalog) Correspondences() []model.Correspondence {
	return slices.Clone(c.tables.Correspondences)
}

// Examples returns the everyday-life example panels.
func (c *Catalog) Examples() []EverydayExample { return cloneExamples(c.tables.Examples) }

// Discovery looks up a discovery by exact name.
func (c *Catalog) Discovery(name string) (model.Discovery, bool) {
	i, ok := c.discoveryByName[name]
	if !ok {
		return model.Discovery{}, false
	}
	return c.tables.Discoveries[i], true
}

// Technology looks up a technology by exact name.
func (c *Catalog) Technology(name string) (model.Technology, bool) {
	i, ok := c.technologyByName[name]
	if !ok {
		return model.Technology{}, false
	}
	return c.tables.Technologies[i], true
}

// Fact returns the interesting fact for a technology, or "" when none is authored.
func (c *Catalog) Fact(technology string) string {
	return c.tables.Facts[technology]
}

// Sectors returns the distinct sectors in first-encounter order.
func (c *Catalog) Sectors() []string { return slices.Clone(c.sectors) }

// TechnologyNames returns technology names in table order.
func (c *Catalog) TechnologyNames() []string {
	names := make([]string, len(c.tables.Technologies))
	for i, t := range c.tables.Technologies {
		names[i] = t.Name
	}
	return names
}

// TechnologiesInSector returns the technologies of sector in table order.
func (c *Catalog) TechnologiesInSector(sector string) []model.Technology {
	var out []model.Technology
	for _, t := range c.tables.Technologies {
		if t.Sector == sector {
			out = append(out, t)
		}
	}
	return out
}

// Unresolved returns the flagged soft references.
func (c *Catalog) Unresolved() []UnresolvedReference { return slices.Clone(c.unresolved) }

// Counts returns the number of rows per table.
func (c *Catalog) Counts() map[string]int {
	return map[string]int{
		TableDiscoveries:     len(c.tables.Discoveries),
		TableTechnologies:    len(c.tables.Technologies),
		TableCategoryUsages:  len(c.tables.CategoryUsages),
		TableCorrespondences: len(c.tables.Correspondences),
	}
}

func cloneExamples(in []EverydayExample) []EverydayExample {
	out := make([]EverydayExample, len(in))
	for i, e := range in {
		out[i] = EverydayExample{Title: e.Title, Items: slices.Clone(e.Items)}
	}
	return out
}
