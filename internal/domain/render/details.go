package render

import (
	"fmt"

	"github.com/okian/quantumtech/internal/domain/view"
)

func (r *Renderer) technologyDetails(selection string) (View, error) {
	name, options, err := r.resolve(view.TechnologyDetails, selection)
	if err != nil {
		return View{}, err
	}
	t, ok := r.catalog.Technology(name)
	if !ok {
		return View{}, fmt.Errorf("%w: technology %q", ErrSelectionNotFound, name)
	}

	return View{
		Title: "Dettagli delle Tecnologie Quantistiche",
		Description: "Questa sezione permette di esplorare in dettaglio ciascuna tecnologia quantistica, " +
			"la sua origine, impatto economico e applicazioni quotidiane.",
		Sections: []Section{
			{
				Heading: t.Name,
				Fields: []Field{
					{Label: "Anno di sviluppo", Value: year(t.Year)},
					{Label: "Settore principale", Value: t.Sector},
					{Label: "Impatto economico stimato", Value: billions(t.ImpactBillions)},
					{Label: "Scoperta quantistica correlata", Value: t.RelatedDiscovery},
				},
			},
			{
				Heading: "Applicazioni nella vita quotidiana",
				Fields:  []Field{{Label: "Dispositivi", Value: t.EverydayDevices}},
			},
		},
		Callouts: []Callout{{Title: "Lo sapevi?", Text: r.catalog.Fact(t.Name)}},
		Options:  options,
		Selected: name,
	}, nil
}
