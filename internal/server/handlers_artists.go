package server

import (
	"fmt"
	"net/http"
	"strconv"

	"discograph/internal/catalog"
	"discograph/internal/forms"
	"discograph/internal/outcome"
)

type artistFormView struct {
	Mode      string
	Action    string
	ID        string
	Name      string
	GroupName string
}

func (s *Server) handleArtistList(w http.ResponseWriter, r *http.Request) {
	filter := r.FormValue("name")
	if err := forms.CheckText("name", filter); err != nil {
		s.redirectOutcome(w, r, outcome.ControlCharacter(), "/artists")
		return
	}

	artists, err := s.store.ListArtists(r.Context(), filter)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/artists")
		return
	}
	s.render(w, http.StatusOK, "artist_list", map[string]any{
		"Artists": artists,
		"Filter":  filter,
	})
}

func (s *Server) handleArtistDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "artist")
		return
	}
	detail, err := s.store.ArtistDetail(r.Context(), id)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/artists")
		return
	}
	if detail == nil {
		s.renderNotFound(w, "artist")
		return
	}
	s.render(w, http.StatusOK, "artist_detail", detail)
}

func (s *Server) handleArtistAddForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "artist_form", artistFormView{Mode: "add", Action: "/artist/add"})
}

func parseArtistForm(r *http.Request) (catalog.Artist, error) {
	var artist catalog.Artist
	for field, value := range map[string]string{
		"name":       r.FormValue("name"),
		"group_name": r.FormValue("group_name"),
	} {
		if err := forms.CheckText(field, value); err != nil {
			return artist, err
		}
	}
	artist.Name = r.FormValue("name")
	artist.GroupName = r.FormValue("group_name")
	return artist, nil
}

func (s *Server) handleArtistAdd(w http.ResponseWriter, r *http.Request) {
	back := "/artist/add"
	artist, err := parseArtistForm(r)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	// The artist id is optional; a blank field leaves the assignment to
	// the database.
	id, err := forms.ParseOptionalNumber("id", r.FormValue("id"))
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	artist.ID = id.Int64

	if err := s.store.AddArtist(r.Context(), artist); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	s.redirectOutcome(w, r, outcome.Added("artist"), "/artists")
}

func (s *Server) handleArtistEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "artist")
		return
	}
	artist, err := s.store.GetArtist(r.Context(), id)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/artists")
		return
	}
	if artist == nil {
		s.renderNotFound(w, "artist")
		return
	}
	s.render(w, http.StatusOK, "artist_form", artistFormView{
		Mode:      "edit",
		Action:    fmt.Sprintf("/artist/%d/edit", artist.ID),
		ID:        strconv.FormatInt(artist.ID, 10),
		Name:      artist.Name,
		GroupName: artist.GroupName,
	})
}

func (s *Server) handleArtistEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "artist")
		return
	}
	back := fmt.Sprintf("/artist/%d/edit", id)

	artist, err := parseArtistForm(r)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	artist.ID = id

	if err := s.store.UpdateArtist(r.Context(), artist); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	s.redirectOutcome(w, r, outcome.Updated(), fmt.Sprintf("/artist/%d", id))
}

func (s *Server) handleArtistDeleteForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "artist")
		return
	}
	artist, err := s.store.GetArtist(r.Context(), id)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/artists")
		return
	}
	if artist == nil {
		s.renderNotFound(w, "artist")
		return
	}
	s.render(w, http.StatusOK, "confirm", confirmView{
		Title:   "Delete artist",
		Action:  fmt.Sprintf("/artist/%d/delete", id),
		Back:    fmt.Sprintf("/artist/%d", id),
		Warning: "An artist still credited on a track or performance cannot be deleted.",
		Lines:   []string{fmt.Sprintf("Artist %d: %s", artist.ID, artist.Name)},
	})
}

func (s *Server) handleArtistDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "artist")
		return
	}
	if err := s.store.DeleteArtist(r.Context(), id); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/artists")
		return
	}
	s.redirectOutcome(w, r, outcome.Deleted(), "/artists")
}
