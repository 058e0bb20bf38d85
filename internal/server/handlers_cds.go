package server

import (
	"fmt"
	"net/http"
	"strconv"

	"discograph/internal/catalog"
	"discograph/internal/forms"
	"discograph/internal/outcome"
)

// pathID parses a numeric path segment. False means the URL names no
// possible row and the caller serves the 404 page.
func pathID(r *http.Request, segment string) (int64, bool) {
	n, err := strconv.ParseInt(r.PathValue(segment), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

type cdFormView struct {
	Mode          string
	Action        string
	ID            string
	Title         string
	SeriesName    string
	OrderInSeries string
	IssuedDate    string
}

func (s *Server) handleCDList(w http.ResponseWriter, r *http.Request) {
	filter := r.FormValue("title")
	if err := forms.CheckText("title", filter); err != nil {
		s.redirectOutcome(w, r, outcome.ControlCharacter(), "/cds")
		return
	}

	cds, err := s.store.ListCDs(r.Context(), filter)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/cds")
		return
	}
	s.render(w, http.StatusOK, "cd_list", map[string]any{
		"CDs":    cds,
		"Filter": filter,
	})
}

func (s *Server) handleCDDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "cd")
		return
	}
	detail, err := s.store.CDDetail(r.Context(), id)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/cds")
		return
	}
	if detail == nil {
		s.renderNotFound(w, "cd")
		return
	}
	s.render(w, http.StatusOK, "cd_detail", detail)
}

func (s *Server) handleCDAddForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "cd_form", cdFormView{Mode: "add", Action: "/cd/add"})
}

// parseCDForm validates the shared CD fields in the documented order:
// control characters first across every text field, then numeric coercion.
func parseCDForm(r *http.Request) (catalog.CD, error) {
	var cd catalog.CD
	for field, value := range map[string]string{
		"title":       r.FormValue("title"),
		"series_name": r.FormValue("series_name"),
		"issued_date": r.FormValue("issued_date"),
	} {
		if err := forms.CheckText(field, value); err != nil {
			return cd, err
		}
	}
	order, err := forms.ParseOptionalNumber("order_in_series", r.FormValue("order_in_series"))
	if err != nil {
		return cd, err
	}
	cd.Title = r.FormValue("title")
	cd.SeriesName = r.FormValue("series_name")
	cd.OrderInSeries = order
	cd.IssuedDate = r.FormValue("issued_date")
	return cd, nil
}

func (s *Server) handleCDAdd(w http.ResponseWriter, r *http.Request) {
	back := "/cd/add"
	cd, err := parseCDForm(r)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	id, err := forms.ParseNumber("id", r.FormValue("id"))
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	cd.ID = id

	if err := s.store.AddCD(r.Context(), cd); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	s.redirectOutcome(w, r, outcome.Added("cd"), "/cds")
}

func (s *Server) handleCDEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "cd")
		return
	}
	cd, err := s.store.GetCD(r.Context(), id)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/cds")
		return
	}
	if cd == nil {
		s.renderNotFound(w, "cd")
		return
	}

	view := cdFormView{
		Mode:       "edit",
		Action:     fmt.Sprintf("/cd/%d/edit", cd.ID),
		ID:         strconv.FormatInt(cd.ID, 10),
		Title:      cd.Title,
		SeriesName: cd.SeriesName,
		IssuedDate: cd.IssuedDate,
	}
	if cd.OrderInSeries.Valid {
		view.OrderInSeries = strconv.FormatInt(cd.OrderInSeries.Int64, 10)
	}
	s.render(w, http.StatusOK, "cd_form", view)
}

func (s *Server) handleCDEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "cd")
		return
	}
	back := fmt.Sprintf("/cd/%d/edit", id)

	cd, err := parseCDForm(r)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	cd.ID = id

	if err := s.store.UpdateCD(r.Context(), cd); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	s.redirectOutcome(w, r, outcome.Updated(), fmt.Sprintf("/cd/%d", id))
}

func (s *Server) handleCDDeleteForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "cd")
		return
	}
	cd, err := s.store.GetCD(r.Context(), id)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/cds")
		return
	}
	if cd == nil {
		s.renderNotFound(w, "cd")
		return
	}
	s.render(w, http.StatusOK, "confirm", confirmView{
		Title:   "Delete CD",
		Action:  fmt.Sprintf("/cd/%d/delete", id),
		Back:    fmt.Sprintf("/cd/%d", id),
		Warning: "Deleting this CD also deletes its tracks and their artist credits.",
		Lines:   []string{fmt.Sprintf("CD %d: %s", cd.ID, cd.Title)},
	})
}

func (s *Server) handleCDDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "cd")
		return
	}
	if err := s.store.DeleteCD(r.Context(), id); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/cds")
		return
	}
	s.redirectOutcome(w, r, outcome.Deleted(), "/cds")
}
