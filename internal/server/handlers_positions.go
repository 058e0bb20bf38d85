package server

import (
	"context"
	"fmt"
	"net/http"

	"discograph/internal/catalog"
	"discograph/internal/forms"
	"discograph/internal/outcome"
)

// positionPages parameterizes the browser flows shared by tracks and
// performances: both are (parent id, order number, song) rows with artist
// credits, differing only in names, paths, and store calls.
type positionPages struct {
	entity      string
	parentField string
	orderField  string
	parentSeg   string
	orderSeg    string
	base        string
	addPath     string
	parentPath  string
	parentLabel string
	orderLabel  string

	currentSong func(ctx context.Context, parentID, order int64) (int64, bool, error)
	artists     func(ctx context.Context, parentID, order int64) ([]catalog.Artist, error)
	add         func(ctx context.Context, parentID, order, songID, artistID int64) error
	addArtist   func(ctx context.Context, parentID, order, artistID int64) error
	reassign    func(ctx context.Context, parentID, order, songID, oldArtistID, newArtistID int64) error
	remove      func(ctx context.Context, parentID, order int64) error
}

func (s *Server) trackPages() positionPages {
	return positionPages{
		entity:      "track",
		parentField: "cd_id",
		orderField:  "track_number",
		parentSeg:   "cd",
		orderSeg:    "number",
		base:        "/track",
		addPath:     "/tracks/add",
		parentPath:  "/cd",
		parentLabel: "CD id",
		orderLabel:  "Track number",
		currentSong: func(ctx context.Context, parentID, order int64) (int64, bool, error) {
			track, err := s.store.GetTrack(ctx, parentID, order)
			if err != nil || track == nil {
				return 0, false, err
			}
			return track.SongID, true, nil
		},
		artists: s.store.TrackArtists,
		add: func(ctx context.Context, parentID, order, songID, artistID int64) error {
			return s.store.AddTrack(ctx, catalog.Track{CDID: parentID, TrackNumber: order, SongID: songID}, artistID)
		},
		addArtist: s.store.AddTrackArtist,
		reassign:  s.store.ReassignTrack,
		remove:    s.store.DeleteTrack,
	}
}

func (s *Server) performancePages() positionPages {
	return positionPages{
		entity:      "performance",
		parentField: "concert_id",
		orderField:  "number_of_order",
		parentSeg:   "concert",
		orderSeg:    "order",
		base:        "/performance",
		addPath:     "/performances/add",
		parentPath:  "/concert",
		parentLabel: "Concert id",
		orderLabel:  "Setlist position",
		currentSong: func(ctx context.Context, parentID, order int64) (int64, bool, error) {
			perf, err := s.store.GetPerformance(ctx, parentID, order)
			if err != nil || perf == nil {
				return 0, false, err
			}
			return perf.SongID, true, nil
		},
		artists: s.store.PerformanceArtists,
		add: func(ctx context.Context, parentID, order, songID, artistID int64) error {
			return s.store.AddPerformance(ctx, catalog.Performance{ConcertID: parentID, NumberOfOrder: order, SongID: songID}, artistID)
		},
		addArtist: s.store.AddPerformanceArtist,
		reassign:  s.store.ReassignPerformance,
		remove:    s.store.DeletePerformance,
	}
}

func (p positionPages) editPath(parentID, order int64) string {
	return fmt.Sprintf("%s/%d/%d/edit", p.base, parentID, order)
}

func (p positionPages) artistAddPath(parentID, order int64) string {
	return fmt.Sprintf("%s/%d/%d/artist/add", p.base, parentID, order)
}

func (p positionPages) deletePath(parentID, order int64) string {
	return fmt.Sprintf("%s/%d/%d/delete", p.base, parentID, order)
}

func (p positionPages) parentDetailPath(parentID int64) string {
	return fmt.Sprintf("%s/%d", p.parentPath, parentID)
}

// pathPosition parses the composite key segments of a position URL.
func (p positionPages) pathPosition(r *http.Request) (int64, int64, bool) {
	parentID, ok := pathID(r, p.parentSeg)
	if !ok {
		return 0, 0, false
	}
	order, ok := pathID(r, p.orderSeg)
	if !ok {
		return 0, 0, false
	}
	return parentID, order, true
}

type positionFormView struct {
	Entity      string
	Action      string
	ParentField string
	OrderField  string
	ParentLabel string
	OrderLabel  string
}

type positionEditView struct {
	Entity      string
	Action      string
	ParentLabel string
	OrderLabel  string
	ParentID    int64
	Order       int64
	SongID      int64
	Artists     []catalog.Artist
	ArtistAdd   string
	Delete      string
	Back        string
}

func (s *Server) handlePositionAddForm(w http.ResponseWriter, r *http.Request, p positionPages) {
	s.render(w, http.StatusOK, "position_form", positionFormView{
		Entity:      p.entity,
		Action:      p.addPath,
		ParentField: p.parentField,
		OrderField:  p.orderField,
		ParentLabel: p.parentLabel,
		OrderLabel:  p.orderLabel,
	})
}

func (s *Server) handlePositionAdd(w http.ResponseWriter, r *http.Request, p positionPages) {
	back := p.addPath

	parentID, err := forms.ParseNumber(p.parentField, r.FormValue(p.parentField))
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	order, err := forms.ParseNumber(p.orderField, r.FormValue(p.orderField))
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	songID, err := forms.ParseNumber("song_id", r.FormValue("song_id"))
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	var artistID int64
	if value := r.FormValue("artist_id"); value != "" {
		artistID, err = forms.ParseNumber("artist_id", value)
		if err != nil {
			s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
			return
		}
	}

	if err := p.add(r.Context(), parentID, order, songID, artistID); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	s.redirectOutcome(w, r, outcome.Added(p.entity), p.parentDetailPath(parentID))
}

func (s *Server) handlePositionEditForm(w http.ResponseWriter, r *http.Request, p positionPages) {
	parentID, order, ok := p.pathPosition(r)
	if !ok {
		s.renderNotFound(w, p.entity)
		return
	}
	songID, found, err := p.currentSong(r.Context(), parentID, order)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), p.parentDetailPath(parentID))
		return
	}
	if !found {
		s.renderNotFound(w, p.entity)
		return
	}
	artists, err := p.artists(r.Context(), parentID, order)
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), p.parentDetailPath(parentID))
		return
	}

	s.render(w, http.StatusOK, "position_edit", positionEditView{
		Entity:      p.entity,
		Action:      p.editPath(parentID, order),
		ParentLabel: p.parentLabel,
		OrderLabel:  p.orderLabel,
		ParentID:    parentID,
		Order:       order,
		SongID:      songID,
		Artists:     artists,
		ArtistAdd:   p.artistAddPath(parentID, order),
		Delete:      p.deletePath(parentID, order),
		Back:        p.parentDetailPath(parentID),
	})
}

func (s *Server) handlePositionEdit(w http.ResponseWriter, r *http.Request, p positionPages) {
	parentID, order, ok := p.pathPosition(r)
	if !ok {
		s.renderNotFound(w, p.entity)
		return
	}
	back := p.editPath(parentID, order)

	songID, err := forms.ParseNumber("song_id", r.FormValue("song_id"))
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	var oldArtistID int64
	if value := r.FormValue("old_artist_id"); value != "" {
		oldArtistID, err = forms.ParseNumber("old_artist_id", value)
		if err != nil {
			s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
			return
		}
	}
	// Zero keeps the removal sentinel: submitting 0 as the new artist
	// drops the old credit instead of replacing it.
	newArtistID := oldArtistID
	if value := r.FormValue("new_artist_id"); value != "" {
		newArtistID, err = forms.ParseSentinelNumber("new_artist_id", value)
		if err != nil {
			s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
			return
		}
	}

	if err := p.reassign(r.Context(), parentID, order, songID, oldArtistID, newArtistID); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	s.redirectOutcome(w, r, outcome.Updated(), p.parentDetailPath(parentID))
}

func (s *Server) handlePositionArtistForm(w http.ResponseWriter, r *http.Request, p positionPages) {
	parentID, order, ok := p.pathPosition(r)
	if !ok {
		s.renderNotFound(w, p.entity)
		return
	}
	if _, found, err := p.currentSong(r.Context(), parentID, order); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), p.parentDetailPath(parentID))
		return
	} else if !found {
		s.renderNotFound(w, p.entity)
		return
	}

	s.render(w, http.StatusOK, "position_artist_form", map[string]any{
		"Entity":      p.entity,
		"Action":      p.artistAddPath(parentID, order),
		"ParentLabel": p.parentLabel,
		"OrderLabel":  p.orderLabel,
		"ParentID":    parentID,
		"Order":       order,
		"Back":        p.editPath(parentID, order),
	})
}

func (s *Server) handlePositionArtistAdd(w http.ResponseWriter, r *http.Request, p positionPages) {
	parentID, order, ok := p.pathPosition(r)
	if !ok {
		s.renderNotFound(w, p.entity)
		return
	}
	back := p.artistAddPath(parentID, order)

	artistID, err := forms.ParseNumber("artist_id", r.FormValue("artist_id"))
	if err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	if err := p.addArtist(r.Context(), parentID, order, artistID); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), back)
		return
	}
	s.redirectOutcome(w, r, outcome.Updated(), p.parentDetailPath(parentID))
}

func (s *Server) handlePositionDeleteForm(w http.ResponseWriter, r *http.Request, p positionPages) {
	parentID, order, ok := p.pathPosition(r)
	if !ok {
		s.renderNotFound(w, p.entity)
		return
	}
	if _, found, err := p.currentSong(r.Context(), parentID, order); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), p.parentDetailPath(parentID))
		return
	} else if !found {
		s.renderNotFound(w, p.entity)
		return
	}

	s.render(w, http.StatusOK, "confirm", confirmView{
		Title:   "Delete " + p.entity,
		Action:  p.deletePath(parentID, order),
		Back:    p.parentDetailPath(parentID),
		Warning: "The artist credits on this " + p.entity + " are deleted with it.",
		Lines: []string{
			fmt.Sprintf("%s %d, %s %d", p.parentLabel, parentID, p.orderLabel, order),
		},
	})
}

func (s *Server) handlePositionDelete(w http.ResponseWriter, r *http.Request, p positionPages) {
	parentID, order, ok := p.pathPosition(r)
	if !ok {
		s.renderNotFound(w, p.entity)
		return
	}
	if err := p.remove(r.Context(), parentID, order); err != nil {
		s.redirectOutcome(w, r, s.failureOutcome(r, err), p.parentDetailPath(parentID))
		return
	}
	s.redirectOutcome(w, r, outcome.Deleted(), p.parentDetailPath(parentID))
}

func (s *Server) handleTrackAddForm(w http.ResponseWriter, r *http.Request) {
	s.handlePositionAddForm(w, r, s.trackPages())
}

func (s *Server) handleTrackAdd(w http.ResponseWriter, r *http.Request) {
	s.handlePositionAdd(w, r, s.trackPages())
}

func (s *Server) handleTrackEditForm(w http.ResponseWriter, r *http.Request) {
	s.handlePositionEditForm(w, r, s.trackPages())
}

func (s *Server) handleTrackEdit(w http.ResponseWriter, r *http.Request) {
	s.handlePositionEdit(w, r, s.trackPages())
}

func (s *Server) handleTrackArtistForm(w http.ResponseWriter, r *http.Request) {
	s.handlePositionArtistForm(w, r, s.trackPages())
}

func (s *Server) handleTrackArtistAdd(w http.ResponseWriter, r *http.Request) {
	s.handlePositionArtistAdd(w, r, s.trackPages())
}

func (s *Server) handleTrackDeleteForm(w http.ResponseWriter, r *http.Request) {
	s.handlePositionDeleteForm(w, r, s.trackPages())
}

func (s *Server) handleTrackDelete(w http.ResponseWriter, r *http.Request) {
	s.handlePositionDelete(w, r, s.trackPages())
}

func (s *Server) handlePerformanceAddForm(w http.ResponseWriter, r *http.Request) {
	s.handlePositionAddForm(w, r, s.performancePages())
}

func (s *Server) handlePerformanceAdd(w http.ResponseWriter, r *http.Request) {
	s.handlePositionAdd(w, r, s.performancePages())
}

func (s *Server) handlePerformanceEditForm(w http.ResponseWriter, r *http.Request) {
	s.handlePositionEditForm(w, r, s.performancePages())
}

func (s *Server) handlePerformanceEdit(w http.ResponseWriter, r *http.Request) {
	s.handlePositionEdit(w, r, s.performancePages())
}

func (s *Server) handlePerformanceArtistForm(w http.ResponseWriter, r *http.Request) {
	s.handlePositionArtistForm(w, r, s.performancePages())
}

func (s *Server) handlePerformanceArtistAdd(w http.ResponseWriter, r *http.Request) {
	s.handlePositionArtistAdd(w, r, s.performancePages())
}

func (s *Server) handlePerformanceDeleteForm(w http.ResponseWriter, r *http.Request) {
	s.handlePositionDeleteForm(w, r, s.performancePages())
}

func (s *Server) handlePerformanceDelete(w http.ResponseWriter, r *http.Request) {
	s.handlePositionDelete(w, r, s.performancePages())
}
