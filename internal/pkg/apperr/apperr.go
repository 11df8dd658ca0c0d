package apperr

import "errors"

// Base error categories. Domain packages wrap these so the HTTP layer
// can classify failures with errors.Is without importing every domain.
var (
	// ErrValidation marks a field or cross-field business rule violated
	// before anything was written.
	ErrValidation = errors.New("validation error")

	// ErrUniqueness marks a write that would violate a uniqueness
	// invariant, whether caught by a pre-check or translated from a
	// database constraint violation.
	ErrUniqueness = errors.New("uniqueness violation")

	// ErrReference marks a reference to a record that must exist but
	// does not.
	ErrReference = errors.New("referenced record not found")
)
