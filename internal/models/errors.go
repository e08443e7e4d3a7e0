package models

import "errors"

var (
	// ErrNotFound: the requested entity id does not exist. Lifecycle update
	// operations report it instead of partially creating anything.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition: the requested status change is not legal for the
	// entity's current state. The operation has no side effects.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrValidation: malformed or incomplete input, rejected at intake before
	// anything is written.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden: the acting user may not see or touch the entity.
	ErrForbidden = errors.New("forbidden")
)
