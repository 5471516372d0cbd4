package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NormalizeName prepares a name for storage and comparison:
// surrounding whitespace is trimmed and the result is lower-cased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// idTokenLen is the length of the canonical hyphenated UUID form.
const idTokenLen = 36

// IsIDToken reports whether s is syntactically a record identity, i.e. a
// canonical 36-character UUID. Braced, URN and unhyphenated forms are rejected.
func IsIDToken(s string) bool {
	if len(s) != idTokenLen {
		return false
	}
	return uuid.Validate(s) == nil
}

// ParseIDToken parses s as a record identity. Returns a validation error
// for anything IsIDToken rejects.
func ParseIDToken(field, s string) (uuid.UUID, error) {
	if !IsIDToken(s) {
		return uuid.Nil, NewValidationError(field, "must be a valid id")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, NewValidationError(field, "must be a valid id")
	}
	return id, nil
}
