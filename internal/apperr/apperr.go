// Package apperr defines the error taxonomy shared by the service layer.
// Stores never return errors; services tag every failure with a Kind and the
// HTTP boundary maps kinds to status codes.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport boundary.
type Kind int

const (
	// KindNotFound means a referenced entity does not exist.
	KindNotFound Kind = iota + 1
	// KindConflict means an invariant-violating transition was attempted.
	KindConflict
	// KindInvalidState means the operation is invalid for the entity's
	// current lifecycle state.
	KindInvalidState
	// KindInternal means a defensive check failed unexpectedly. Its message
	// must not be exposed to callers.
	KindInternal
)

// Error is a tagged service error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound reports a missing entity.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports an attempted invariant violation.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidState reports an operation invalid for the current lifecycle state.
func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Internal reports an unexpected failure of a defensive check.
func Internal(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind carried by err. Untagged errors are treated as
// internal so they are never surfaced verbatim.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
