package server

import (
	"fmt"
	"net/http"
	"strconv"

	"discograph/internal/catalog"
	"discograph/internal/forms"
	"discograph/internal/outcome"
)

type concertFormView struct {
	Mode     string
	Action   string
	ID       string
	Title    string
	HeldDate string
}

func (s *Server) handleConcertList(w http.ResponseWriter, r *http.Request) {
	filter := r.FormValue("title")
	if err := forms.CheckText("title", filter); err != nil {
		s.redirectOutcome(w, r, outcome.ControlCharacter(), "/concerts")
		return
	}

	concerts, err := s.store.ListConcerts(r.Context(), filter)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/concerts")
		return
	}
	s.render(w, http.StatusOK, "concert_list", map[string]any{
		"Concerts": concerts,
		"Filter":   filter,
	})
}

func (s *Server) handleConcertDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "concert")
		return
	}
	detail, err := s.store.ConcertDetail(r.Context(), id)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/concerts")
		return
	}
	if detail == nil {
		s.renderNotFound(w, "concert")
		return
	}
	s.render(w, http.StatusOK, "concert_detail", detail)
}

func (s *Server) handleConcertAddForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "concert_form", concertFormView{Mode: "add", Action: "/concert/add"})
}

func parseConcertForm(r *http.Request) (catalog.Concert, error) {
	var concert catalog.Concert
	for field, value := range map[string]string{
		"title":     r.FormValue("title"),
		"held_date": r.FormValue("held_date"),
	} {
		if err := forms.CheckText(field, value); err != nil {
			return concert, err
		}
	}
	concert.Title = r.FormValue("title")
	concert.HeldDate = r.FormValue("held_date")
	return concert, nil
}

func (s *Server) handleConcertAdd(w http.ResponseWriter, r *http.Request) {
	back := "/concert/add"
	concert, err := parseConcertForm(r)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	id, err := forms.ParseNumber("id", r.FormValue("id"))
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	concert.ID = id

	if err := s.store.AddConcert(r.Context(), concert); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	s.redirectOutcome(w, r, outcome.Added("concert"), "/concerts")
}

func (s *Server) handleConcertEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "concert")
		return
	}
	concert, err := s.store.GetConcert(r.Context(), id)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/concerts")
		return
	}
	if concert == nil {
		s.renderNotFound(w, "concert")
		return
	}
	s.render(w, http.StatusOK, "concert_form", concertFormView{
		Mode:     "edit",
		Action:   fmt.Sprintf("/concert/%d/edit", concert.ID),
		ID:       strconv.FormatInt(concert.ID, 10),
		Title:    concert.Title,
		HeldDate: concert.HeldDate,
	})
}

func (s *Server) handleConcertEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "concert")
		return
	}
	back := fmt.Sprintf("/concert/%d/edit", id)

	concert, err := parseConcertForm(r)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	concert.ID = id

	if err := s.store.UpdateConcert(r.Context(), concert); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	s.redirectOutcome(w, r, outcome.Updated(), fmt.Sprintf("/concert/%d", id))
}

func (s *Server) handleConcertDeleteForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "concert")
		return
	}
	concert, err := s.store.GetConcert(r.Context(), id)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/concerts")
		return
	}
	if concert == nil {
		s.renderNotFound(w, "concert")
		return
	}
	s.render(w, http.StatusOK, "confirm", confirmView{
		Title:   "Delete concert",
		Action:  fmt.Sprintf("/concert/%d/delete", id),
		Back:    fmt.Sprintf("/concert/%d", id),
		Warning: "Deleting this concert also deletes its setlist and the artist credits on it.",
		Lines:   []string{fmt.Sprintf("Concert %d: %s", concert.ID, concert.Title)},
	})
}

func (s *Server) handleConcertDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "concert")
		return
	}
	if err := s.store.DeleteConcert(r.Context(), id); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/concerts")
		return
	}
	s.redirectOutcome(w, r, outcome.Deleted(), "/concerts")
}
