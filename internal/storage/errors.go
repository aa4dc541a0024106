package storage

import "errors"

// Error taxonomy shared by every lifecycle operation. NotFound covers both
// a missing entity and a precondition miss on state or ownership, so the
// outward signal never leaks whether the entity exists.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)
