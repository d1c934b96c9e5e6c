package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a business rule rejects the input
	// (e.g. event date in the past, capacity below 1).
	ErrInvalidInput = errors.New("invalid input")
)
