package server

import "net/http"

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)

	mux.HandleFunc("GET /cds", s.handleCDList)
	mux.HandleFunc("POST /cds", s.handleCDList)
	mux.HandleFunc("GET /cd/add", s.handleCDAddForm)
	mux.HandleFunc("POST /cd/add", s.handleCDAdd)
	mux.HandleFunc("GET /cd/{id}", s.handleCDDetail)
	mux.HandleFunc("GET /cd/{id}/edit", s.handleCDEditForm)
	mux.HandleFunc("POST /cd/{id}/edit", s.handleCDEdit)
	mux.HandleFunc("GET /cd/{id}/delete", s.handleCDDeleteForm)
	mux.HandleFunc("POST /cd/{id}/delete", s.handleCDDelete)

	mux.HandleFunc("GET /songs", s.handleSongList)
	mux.HandleFunc("POST /songs", s.handleSongList)
	mux.HandleFunc("GET /song/add", s.handleSongAddForm)
	mux.HandleFunc("POST /song/add", s.handleSongAdd)
	mux.HandleFunc("GET /song/{id}", s.handleSongDetail)
	mux.HandleFunc("GET /song/{id}/edit", s.handleSongEditForm)
	mux.HandleFunc("POST /song/{id}/edit", s.handleSongEdit)
	mux.HandleFunc("GET /song/{id}/delete", s.handleSongDeleteForm)
	mux.HandleFunc("POST /song/{id}/delete", s.handleSongDelete)

	mux.HandleFunc("GET /artists", s.handleArtistList)
	mux.HandleFunc("POST /artists", s.handleArtistList)
	mux.HandleFunc("GET /artist/add", s.handleArtistAddForm)
	mux.HandleFunc("POST /artist/add", s.handleArtistAdd)
	mux.HandleFunc("GET /artist/{id}", s.handleArtistDetail)
	mux.HandleFunc("GET /artist/{id}/edit", s.handleArtistEditForm)
	mux.HandleFunc("POST /artist/{id}/edit", s.handleArtistEdit)
	mux.HandleFunc("GET /artist/{id}/delete", s.handleArtistDeleteForm)
	mux.HandleFunc("POST /artist/{id}/delete", s.handleArtistDelete)

	mux.HandleFunc("GET /concerts", s.handleConcertList)
	mux.HandleFunc("POST /concerts", s.handleConcertList)
	mux.HandleFunc("GET /concert/add", s.handleConcertAddForm)
	mux.HandleFunc("POST /concert/add", s.handleConcertAdd)
	mux.HandleFunc("GET /concert/{id}", s.handleConcertDetail)
	mux.HandleFunc("GET /concert/{id}/edit", s.handleConcertEditForm)
	mux.HandleFunc("POST /concert/{id}/edit", s.handleConcertEdit)
	mux.HandleFunc("GET /concert/{id}/delete", s.handleConcertDeleteForm)
	mux.HandleFunc("POST /concert/{id}/delete", s.handleConcertDelete)

	mux.HandleFunc("GET /tracks/add", s.handleTrackAddForm)
	mux.HandleFunc("POST /tracks/add", s.handleTrackAdd)
	mux.HandleFunc("GET /track/{cd}/{number}/edit", s.handleTrackEditForm)
	mux.HandleFunc("POST /track/{cd}/{number}/edit", s.handleTrackEdit)
	mux.HandleFunc("GET /track/{cd}/{number}/artist/add", s.handleTrackArtistForm)
	mux.HandleFunc("POST /track/{cd}/{number}/artist/add", s.handleTrackArtistAdd)
	mux.HandleFunc("GET /track/{cd}/{number}/delete", s.handleTrackDeleteForm)
	mux.HandleFunc("POST /track/{cd}/{number}/delete", s.handleTrackDelete)

	mux.HandleFunc("GET /performances/add", s.handlePerformanceAddForm)
	mux.HandleFunc("POST /performances/add", s.handlePerformanceAdd)
	mux.HandleFunc("GET /performance/{concert}/{order}/edit", s.handlePerformanceEditForm)
	mux.HandleFunc("POST /performance/{concert}/{order}/edit", s.handlePerformanceEdit)
	mux.HandleFunc("GET /performance/{concert}/{order}/artist/add", s.handlePerformanceArtistForm)
	mux.HandleFunc("POST /performance/{concert}/{order}/artist/add", s.handlePerformanceArtistAdd)
	mux.HandleFunc("GET /performance/{concert}/{order}/delete", s.handlePerformanceDeleteForm)
	mux.HandleFunc("POST /performance/{concert}/{order}/delete", s.handlePerformanceDelete)

	mux.HandleFunc("GET /results/{code}", s.handleResults)

	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "index", nil)
}
