package api

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// dashboardTemplate is parsed once; a parse failure is a build defect.
var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))
