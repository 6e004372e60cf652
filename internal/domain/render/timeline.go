package render

import "strings"

// Series colors of the timeline.
const (
	colorDiscovery  = "#1f3fbf"
	colorTechnology = "#d62728"
)

func (r *Renderer) timeline() View {
	discoveries := r.catalog.Discoveries()
	technologies := r.catalog.Technologies()

	disc := Series{Name: "Scoperte Quantistiche", Color: colorDiscovery, Points: make([]Point, len(discoveries))}
	sections := make([]Section, len(discoveries))
	for i, d := range discoveries {
		disc.Points[i] = Point{
			X:     float64(d.Year),
			Y:     1,
			Label: d.Name,
			Size:  float64(d.Importance) / r.importanceDivisor,
			Hover: hover(d.Name, "Anno: "+year(d.Year), "Descrizione: "+d.Description),
		}
		sections[i] = Section{Heading: d.Name + " (" + year(d.Year) + ")", Body: d.Description}
	}

	tech := Series{Name: "Tecnologie Derivate", Color: colorTechnology, Points: make([]Point, len(technologies))}
	for i, t := range technologies {
		tech.Points[i] = Point{
			X:     float64(t.Year),
			Y:     0,
			Label: t.Name,
			Size:  t.ImpactBillions / r.impactDivisor,
			Hover: hover(t.Name, "Anno: "+year(t.Year), "Settore: "+t.Sector, "Dispositivi: "+t.EverydayDevices),
		}
	}

	return View{
		Title: "Timeline delle Scoperte Quantistiche e Tecnologie Derivate",
		Description: "Questa visualizzazione mostra quando sono avvenute le principali scoperte quantistiche (in blu) " +
			"e quando sono state sviluppate le tecnologie correlate (in rosso). La dimensione dei punti " +
			"rappresenta l'importanza della scoperta o l'impatto economico della tecnologia.",
		Chart: &Chart{
			Kind:   ChartScatter,
			XAxis:  "Anno",
			YTicks: []Tick{{Value: 0, Label: "Tecnologie"}, {Value: 1, Label: "Scoperte"}},
			YRange: &Range{Min: -0.5, Max: 1.5},
			Series: []Series{disc, tech},
		},
		Sections: append([]Section{{Heading: "Dettagli delle Scoperte Scientifiche"}}, sections...),
	}
}

func hover(lines ...string) string {
	return strings.Join(lines, "\n")
}
