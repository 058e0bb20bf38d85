// Package outcome defines the closed set of write-operation results and their
// user-facing messages. Write handlers redirect to a results route carrying an
// outcome token; the results page parses the token back and renders the
// message. Unknown tokens are caller-supplied strings and render a generic
// "code error" message instead of failing.
package outcome

import "strings"

// Kind enumerates the outcome variants.
type Kind int

const (
	KindUnknown Kind = iota
	KindAdded
	KindUpdated
	KindDeleted
	KindUnchanged
	KindDatabaseError
	KindControlCharacter
	KindInvalidNumber
	KindIDExists
	KindNotFound
	KindPositionExists
	KindAssociationExists
)

// Outcome is one result of a write attempt. Entity qualifies KindAdded,
// KindNotFound, and KindPositionExists; Field qualifies KindInvalidNumber.
type Outcome struct {
	Kind   Kind
	Entity string
	Field  string
}

func Added(entity string) Outcome    { return Outcome{Kind: KindAdded, Entity: entity} }
func Updated() Outcome               { return Outcome{Kind: KindUpdated} }
func Deleted() Outcome               { return Outcome{Kind: KindDeleted} }
func Unchanged() Outcome             { return Outcome{Kind: KindUnchanged} }
func DatabaseError() Outcome         { return Outcome{Kind: KindDatabaseError} }
func ControlCharacter() Outcome      { return Outcome{Kind: KindControlCharacter} }
func InvalidNumber(field string) Outcome {
	return Outcome{Kind: KindInvalidNumber, Field: field}
}
func IDExists() Outcome { return Outcome{Kind: KindIDExists} }
func NotFound(entity string) Outcome {
	return Outcome{Kind: KindNotFound, Entity: entity}
}
func PositionExists(entity string) Outcome {
	return Outcome{Kind: KindPositionExists, Entity: entity}
}
func AssociationExists() Outcome { return Outcome{Kind: KindAssociationExists} }

// Token encodes the outcome as a URL path segment. The historical token
// spellings (including "charactor") are kept so existing bookmarks and the
// documented codes stay valid.
func (o Outcome) Token() string {
	switch o.Kind {
	case KindAdded:
		return o.Entity + "-added"
	case KindUpdated:
		return "updated"
	case KindDeleted:
		return "deleted"
	case KindUnchanged:
		return "unchanged"
	case KindDatabaseError:
		return "database-error"
	case KindControlCharacter:
		return "include-control-charactor"
	case KindInvalidNumber:
		return fieldToken(o.Field) + "-has-invalid-charactor"
	case KindIDExists:
		return "id-already-exists"
	case KindNotFound:
		return o.Entity + "-does-not-exist"
	case KindPositionExists:
		return o.Entity + "-already-exists"
	case KindAssociationExists:
		return "artist-already-assigned"
	default:
		return "unknown"
	}
}

// Parse decodes a token back into an Outcome. Tokens it does not recognize
// yield KindUnknown.
func Parse(token string) Outcome {
	switch token {
	case "updated":
		return Updated()
	case "deleted":
		return Deleted()
	case "unchanged":
		return Unchanged()
	case "database-error":
		return DatabaseError()
	case "include-control-charactor":
		return ControlCharacter()
	case "id-already-exists":
		return IDExists()
	case "artist-already-assigned":
		return AssociationExists()
	}
	if field, ok := strings.CutSuffix(token, "-has-invalid-charactor"); ok && field != "" {
		return InvalidNumber(strings.ReplaceAll(field, "-", "_"))
	}
	if entity, ok := strings.CutSuffix(token, "-does-not-exist"); ok && knownEntity(entity) {
		return NotFound(entity)
	}
	if entity, ok := strings.CutSuffix(token, "-already-exists"); ok && knownPosition(entity) {
		return PositionExists(entity)
	}
	if entity, ok := strings.CutSuffix(token, "-added"); ok && knownEntity(entity) {
		return Added(entity)
	}
	return Outcome{Kind: KindUnknown}
}

// Message renders the user-facing text for the outcome.
func (o Outcome) Message() string {
	switch o.Kind {
	case KindAdded:
		return "Added a new " + entityLabel(o.Entity) + "."
	case KindUpdated:
		return "Updated."
	case KindDeleted:
		return "Deleted."
	case KindUnchanged:
		return "Nothing to update - the submitted values match the current ones."
	case KindDatabaseError:
		return "Database error."
	case KindControlCharacter:
		return "Control characters are not allowed."
	case KindInvalidNumber:
		return "The " + fieldLabel(o.Field) + " must be specified with digits only."
	case KindIDExists:
		return "The specified id already exists - specify an id that is not in use."
	case KindNotFound:
		switch o.Entity {
		case "track":
			return "The specified track does not exist - use the track add page to register a new track."
		case "performance":
			return "The specified performance does not exist - use the performance add page to register a new setlist entry."
		case "id":
			return "The specified id does not exist."
		default:
			return "The specified " + entityLabel(o.Entity) + " does not exist."
		}
	case KindPositionExists:
		return "The specified " + entityLabel(o.Entity) + " already exists - edit it instead."
	case KindAssociationExists:
		return "The artist is already assigned there - edit the existing assignment instead."
	default:
		return "code error"
	}
}

func entityLabel(entity string) string {
	switch entity {
	case "cd":
		return "CD"
	case "":
		return "record"
	default:
		return entity
	}
}

func fieldToken(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

func fieldLabel(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func knownEntity(entity string) bool {
	switch entity {
	case "id", "cd", "song", "artist", "concert", "track", "performance":
		return true
	}
	return false
}

func knownPosition(entity string) bool {
	return entity == "track" || entity == "performance"
}
