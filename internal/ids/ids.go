// Package ids generates the opaque identifiers assigned to every entity.
package ids

import "github.com/google/uuid"

// Generator produces a fresh unique identifier on every call. Stores take a
// Generator so tests can substitute predictable ids.
type Generator func() string

// NewUUID returns a random 128-bit identifier in its canonical string form.
func NewUUID() string {
	return uuid.NewString()
}

// IsValid reports whether s is a well-formed identifier.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
