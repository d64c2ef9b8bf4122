package domain

import "errors"

// Sentinel errors for the error taxonomy. Handlers map these to HTTP status
// codes; services wrap them with context via fmt.Errorf and %w.
var (
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a missing or malformed required field,
	// detected before any write.
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a state transition or uniqueness violation.
	ErrConflict = errors.New("conflict")

	// ErrUnavailable indicates an external collaborator could not serve
	// the request and no fallback exists.
	ErrUnavailable = errors.New("service unavailable")
)
