package models

import "errors"

// Sentinel errors for the service layer. Handlers map these to response
// codes; AccessDenied stays distinct from NotFound so the boundary layer can
// decide whether to leak existence.
var (
	// ErrValidation covers rejected input: unrecognized status tokens,
	// missing or oversized fields, no eligible recipient. Nothing is mutated.
	ErrValidation = errors.New("validation failed")

	// ErrAccessDenied is returned when a read or mutation fails the access
	// policy for an existing complaint.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound is returned when a referenced record does not exist. It is
	// checked before any authorization runs.
	ErrNotFound = errors.New("not found")
)
