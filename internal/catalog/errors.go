package catalog

import (
	"errors"
	"fmt"
)

// ErrIDExists signals an add with an id that is already present.
var ErrIDExists = errors.New("id already exists")

// ErrUnchanged signals an association edit whose submitted values match the
// stored ones; no write was performed.
var ErrUnchanged = errors.New("no changes")

// NotFoundError reports a missing referenced entity. Entity is the catalog
// name of what was looked up ("cd", "song", "artist", "concert", "track",
// "performance").
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Entity)
}

// ConflictError reports an insert that would duplicate an existing row.
// Entity is "track" or "performance" for duplicate positions and
// "track-artist" or "performance-artist" for duplicate associations.
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Entity)
}
