package render

func (r *Renderer) everydayApplications() View {
	usages := r.catalog.CategoryUsages()

	bars := Series{Name: "Percentuale Prodotti", Points: make([]Point, len(usages))}
	for i, u := range usages {
		bars.Points[i] = Point{
			X:     float64(i),
			Y:     float64(u.ProductPercentage),
			Label: u.Category,
			Hover: hover(u.Category,
				"Percentuale Prodotti: "+percent(u.ProductPercentage),
				"Tecnologie Quantistiche Utilizzate: "+u.TechnologiesUsed,
				"Esempio Dispositivo: "+u.ExampleDevice),
		}
	}

	examples := r.catalog.Examples()
	sections := make([]Section, 0, len(examples)+1)
	sections = append(sections, Section{Heading: "Esempi nella vita quotidiana"})
	for _, e := range examples {
		sections = append(sections, Section{Heading: e.Title, Items: e.Items})
	}

	return View{
		Title: "Tecnologie Quantistiche nella Vita Quotidiana",
		Description: "Questa visualizzazione mostra come le tecnologie quantistiche " +
			"sono presenti nei dispositivi che usiamo ogni giorno.",
		Chart: &Chart{
			Kind:       ChartBar,
			Title:      "Percentuale di Prodotti che Utilizzano Tecnologie Quantistiche per Categoria",
			XAxis:      "Categoria",
			YAxis:      "Percentuale Prodotti",
			ColorScale: ScaleBlueRed,
			Series:     []Series{bars},
		},
		Sections: sections,
	}
}
