package render

import "strconv"

func (r *Renderer) developmentLag() View {
	rows := r.metrics.Correspondences

	bars := Series{Name: "Anni di Ritardo", Points: make([]Point, len(rows))}
	table := &Table{
		Title:   "Dettagli Scoperta-Applicazione",
		Columns: []string{"Scoperta → Tecnologia", "Periodo", "Anni Trascorsi"},
		Rows:    make([][]string, len(rows)),
	}
	for i, c := range rows {
		bars.Points[i] = Point{
			X:     float64(i),
			Y:     float64(c.LagYears),
			Label: c.DiscoveryName,
			Hover: hover(c.DiscoveryName,
				"Tecnologia: "+c.TechnologyName,
				"Periodo: "+year(c.DiscoveryYear)+" → "+year(c.TechnologyYear),
				"Anni di Ritardo: "+strconv.Itoa(c.LagYears)),
		}
		table.Rows[i] = []string{
			c.DiscoveryName + " → " + c.TechnologyName,
			year(c.DiscoveryYear) + " → " + year(c.TechnologyYear),
			strconv.Itoa(c.LagYears),
		}
	}

	return View{
		Title: "Tempo tra Scoperta Quantistica e Applicazione Tecnologica",
		Description: "Questa visualizzazione mostra quanto tempo è passato tra una scoperta teorica " +
			"e la sua prima applicazione tecnologica significativa.",
		Chart: &Chart{
			Kind:       ChartBar,
			XAxis:      "Scoperta Quantistica",
			YAxis:      "Anni di Ritardo",
			ColorScale: ScaleViridis,
			Series:     []Series{bars},
		},
		Table: table,
		Callouts: []Callout{{
			Title: "Dato rilevante",
			Text: "In media, ci vogliono " + oneDecimal(r.metrics.AverageLag) +
				" anni per trasformare una scoperta quantistica in tecnologia applicata.",
		}},
	}
}
