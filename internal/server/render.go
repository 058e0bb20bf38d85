package server

import (
	"embed"
	"html/template"
	"net/http"

	"discograph/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// render writes one named page template. Render failures after headers are
// written cannot be recovered, so data errors are resolved before this point.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("render template",
			logging.String("template", name),
			logging.Error(err))
	}
}

// renderNotFound serves the catalog-styled 404 page.
func (s *Server) renderNotFound(w http.ResponseWriter, entity string) {
	s.render(w, http.StatusNotFound, "not_found", map[string]any{
		"Entity": entity,
	})
}
