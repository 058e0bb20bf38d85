// Package forms validates browser form input before it reaches the store.
package forms

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Reason classifies why a form field was rejected.
type Reason int

const (
	// ReasonControlCharacter marks a field containing a Unicode Cc character.
	ReasonControlCharacter Reason = iota
	// ReasonNotNumeric marks an id or order field that did not parse as a
	// positive base-10 integer.
	ReasonNotNumeric
)

// FieldError reports a rejected form field.
type FieldError struct {
	Field  string
	Reason Reason
}

func (e *FieldError) Error() string {
	switch e.Reason {
	case ReasonControlCharacter:
		return fmt.Sprintf("field %s contains a control character", e.Field)
	case ReasonNotNumeric:
		return fmt.Sprintf("field %s is not numeric", e.Field)
	default:
		return fmt.Sprintf("field %s is invalid", e.Field)
	}
}

// HasControlCharacter reports whether any rune of s belongs to the Unicode
// control character (Cc) category.
func HasControlCharacter(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.Is(unicode.Cc, r)
	})
}

// CheckText rejects a free-text field containing control characters.
// Empty values pass: optional fields bypass the check.
func CheckText(field, value string) error {
	if HasControlCharacter(value) {
		return &FieldError{Field: field, Reason: ReasonControlCharacter}
	}
	return nil
}

// ParseNumber coerces a required numeric field to a positive integer.
// Ids and order numbers share this rule; zero is reserved (see the
// association edit sentinel) and rejected here.
func ParseNumber(field, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return 0, &FieldError{Field: field, Reason: ReasonNotNumeric}
	}
	return n, nil
}

// ParseOptionalNumber coerces an optional numeric field. A blank value
// becomes an invalid NullInt64, which the store writes as SQL NULL.
func ParseOptionalNumber(field, value string) (sql.NullInt64, error) {
	if value == "" {
		return sql.NullInt64{}, nil
	}
	n, err := ParseNumber(field, value)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: n, Valid: true}, nil
}

// ParseSentinelNumber coerces a numeric field that additionally accepts the
// literal "0" sentinel (association removal in the track and performance
// edit flows).
func ParseSentinelNumber(field, value string) (int64, error) {
	if value == "0" {
		return 0, nil
	}
	return ParseNumber(field, value)
}
