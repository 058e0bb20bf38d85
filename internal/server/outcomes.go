package server

import (
	"errors"
	"net/http"
	"net/url"

	"discograph/internal/catalog"
	"discograph/internal/forms"
	"discograph/internal/logging"
	"discograph/internal/outcome"
)

// redirectOutcome completes a write attempt: the browser is sent to the
// results route carrying the outcome token, plus a back link to return to.
func (s *Server) redirectOutcome(w http.ResponseWriter, r *http.Request, o outcome.Outcome, back string) {
	target := "/results/" + url.PathEscape(o.Token())
	if back != "" {
		target += "?back=" + url.QueryEscape(back)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// failureOutcome maps validation and store errors onto the outcome catalog.
// Anything unclassified is a database error; those are additionally logged
// since the browser only sees the generic message.
func (s *Server) failureOutcome(r *http.Request, err error) outcome.Outcome {
	var fieldErr *forms.FieldError
	if errors.As(err, &fieldErr) {
		if fieldErr.Reason == forms.ReasonControlCharacter {
			return outcome.ControlCharacter()
		}
		return outcome.InvalidNumber(fieldErr.Field)
	}

	if errors.Is(err, catalog.ErrIDExists) {
		return outcome.IDExists()
	}
	if errors.Is(err, catalog.ErrUnchanged) {
		return outcome.Unchanged()
	}

	var notFound *catalog.NotFoundError
	if errors.As(err, &notFound) {
		return outcome.NotFound(notFound.Entity)
	}
	var conflict *catalog.ConflictError
	if errors.As(err, &conflict) {
		switch conflict.Entity {
		case "track", "performance":
			return outcome.PositionExists(conflict.Entity)
		default:
			return outcome.AssociationExists()
		}
	}

	s.logger.Error("write failed",
		logging.String("path", r.URL.Path),
		logging.Error(err))
	return outcome.DatabaseError()
}
