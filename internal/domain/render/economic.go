package render

import (
	"strconv"

	"github.com/okian/quantumtech/internal/domain/view"
)

func (r *Renderer) economicImpact(selection string) (View, error) {
	sector, options, err := r.resolve(view.EconomicImpact, selection)
	if err != nil {
		return View{}, err
	}

	bars := Series{Name: "Impatto Economico", Points: make([]Point, len(r.metrics.SectorImpacts))}
	for i, s := range r.metrics.SectorImpacts {
		bars.Points[i] = Point{
			X:     float64(i),
			Y:     s.ImpactBillions,
			Label: s.Sector,
			Hover: hover(s.Sector, "Impatto: "+billions(s.ImpactBillions),
				"Tecnologie: "+strconv.Itoa(s.Technologies)),
		}
	}

	techs := r.catalog.TechnologiesInSector(sector)
	sections := make([]Section, 0, len(techs)+1)
	sections = append(sections, Section{Heading: "Tecnologie nel settore " + sector})
	for _, t := range techs {
		sections = append(sections, Section{
			Heading: t.Name + " (" + year(t.Year) + ")",
			Fields: []Field{
				{Label: "Impatto economico", Value: billions(t.ImpactBillions)},
				{Label: "Dispositivi", Value: t.EverydayDevices},
			},
		})
	}

	return View{
		Title: "Impatto Economico delle Tecnologie Quantistiche",
		Description: "Questa visualizzazione mostra l'impatto economico stimato delle tecnologie " +
			"derivate dalla fisica quantistica, suddiviso per settore.",
		Chart: &Chart{
			Kind:       ChartBar,
			XAxis:      "Settore",
			YAxis:      "Impatto Economico (Miliardi $)",
			ColorScale: ScaleViridis,
			Series:     []Series{bars},
		},
		Sections: sections,
		Options:  options,
		Selected: sector,
	}, nil
}
