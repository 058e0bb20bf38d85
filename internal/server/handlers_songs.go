package server

import (
	"fmt"
	"net/http"
	"strconv"

	"discograph/internal/catalog"
	"discograph/internal/forms"
	"discograph/internal/outcome"
)

type songFormView struct {
	Mode   string
	Action string
	ID     string
	Title  string
}

func (s *Server) handleSongList(w http.ResponseWriter, r *http.Request) {
	filter := r.FormValue("title")
	if err := forms.CheckText("title", filter); err != nil {
		s.redirectOutcome(w, r, outcome.ControlCharacter(), "/songs")
		return
	}

	songs, err := s.store.ListSongs(r.Context(), filter)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/songs")
		return
	}
	s.render(w, http.StatusOK, "song_list", map[string]any{
		"Songs":  songs,
		"Filter": filter,
	})
}

func (s *Server) handleSongDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "song")
		return
	}
	detail, err := s.store.SongDetail(r.Context(), id)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/songs")
		return
	}
	if detail == nil {
		s.renderNotFound(w, "song")
		return
	}
	s.render(w, http.StatusOK, "song_detail", detail)
}

func (s *Server) handleSongAddForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "song_form", songFormView{Mode: "add", Action: "/song/add"})
}

func (s *Server) handleSongAdd(w http.ResponseWriter, r *http.Request) {
	back := "/song/add"
	title := r.FormValue("title")
	if err := forms.CheckText("title", title); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	id, err := forms.ParseNumber("id", r.FormValue("id"))
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}

	if err := s.store.AddSong(r.Context(), catalog.Song{ID: id, Title: title}); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	s.redirectOutcome(w, r, outcome.Added("song"), "/songs")
}

func (s *Server) handleSongEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "song")
		return
	}
	song, err := s.store.GetSong(r.Context(), id)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/songs")
		return
	}
	if song == nil {
		s.renderNotFound(w, "song")
		return
	}
	s.render(w, http.StatusOK, "song_form", songFormView{
		Mode:   "edit",
		Action: fmt.Sprintf("/song/%d/edit", song.ID),
		ID:     strconv.FormatInt(song.ID, 10),
		Title:  song.Title,
	})
}

func (s *Server) handleSongEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "song")
		return
	}
	back := fmt.Sprintf("/song/%d/edit", id)

	title := r.FormValue("title")
	if err := forms.CheckText("title", title); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}

	if err := s.store.UpdateSong(r.Context(), catalog.Song{ID: id, Title: title}); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	s.redirectOutcome(w, r, outcome.Updated(), fmt.Sprintf("/song/%d", id))
}

func (s *Server) handleSongDeleteForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "song")
		return
	}
	song, err := s.store.GetSong(r.Context(), id)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/songs")
		return
	}
	if song == nil {
		s.renderNotFound(w, "song")
		return
	}
	s.render(w, http.StatusOK, "confirm", confirmView{
		Title:   "Delete song",
		Action:  fmt.Sprintf("/song/%d/delete", id),
		Back:    fmt.Sprintf("/song/%d", id),
		Warning: "A song still referenced by a track or performance cannot be deleted.",
		Lines:   []string{fmt.Sprintf("Song %d: %s", song.ID, song.Title)},
	})
}

func (s *Server) handleSongDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.renderNotFound(w, "song")
		return
	}
	if err := s.store.DeleteSong(r.Context(), id); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), "/songs")
		return
	}
	s.redirectOutcome(w, r, outcome.Deleted(), "/songs")
}
