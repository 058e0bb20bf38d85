package server

import (
	"net/http"
	"strings"

	"discograph/internal/outcome"
)

// confirmView renders the shared delete confirmation page.
type confirmView struct {
	Title   string
	Action  string
	Back    string
	Warning string
	Lines   []string
}

// handleResults decodes the outcome token from the path and renders its
// message. Unknown tokens still render: the page shows the generic code
// error text instead of a 404.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	o := outcome.Parse(r.PathValue("code"))

	back := r.URL.Query().Get("back")
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		back = "/"
	}

	s.render(w, http.StatusOK, "results", map[string]any{
		"Message": o.Message(),
		"Back":    back,
	})
}
