package store

import "errors"

// Sentinel errors shared by every collection and service. Call sites wrap
// these with %w so callers can match with errors.Is while still seeing the
// entity kind and id in the message.
var (
	// ErrNotFound is returned when an id does not resolve to an active
	// record. Soft-deleted records report the same error even though the
	// record still physically exists.
	ErrNotFound = errors.New("record not found")

	// ErrCapacityExceeded is returned when a collection has reached its
	// configured ceiling. Deliberately distinct from ErrNotFound.
	ErrCapacityExceeded = errors.New("collection capacity exceeded")

	// ErrReferentialViolation is returned when a foreign key does not
	// reference an active record in its target collection.
	ErrReferentialViolation = errors.New("foreign key does not reference an active record")

	// ErrInvalidInput is returned for field-level validation failures
	// (non-positive amounts, out-of-range grades, malformed dates).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition is returned when a status change is not present
	// in the domain's transition table. The record is left unchanged.
	ErrInvalidTransition = errors.New("status transition not allowed")
)
