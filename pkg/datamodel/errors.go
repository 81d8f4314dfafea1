package datamodel

import "errors"

// Error taxonomy of the computation core. All of these are recoverable by the
// caller and map onto specific HTTP statuses in the API layer.
var (
	// ErrNotFound is returned when a taxonomy id, machine, order or alert
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidParent is returned when a downtime reason id exists but does
	// not chain to the given parent.
	ErrInvalidParent = errors.New("invalid parent reference")

	// ErrInvalidMetric is returned when an OEE component lies outside [0,100].
	ErrInvalidMetric = errors.New("metric outside [0,100]")

	// ErrIndeterminate is returned when a projection cannot be computed,
	// e.g. remaining time at zero production rate.
	ErrIndeterminate = errors.New("indeterminate projection")

	// ErrAlreadyAcknowledged is returned on any transition attempted on a
	// terminal (acknowledged) alert.
	ErrAlreadyAcknowledged = errors.New("alert already acknowledged")

	// ErrConcurrentModification is returned when an alert transition loses a
	// compare-and-swap race against a concurrent caller.
	ErrConcurrentModification = errors.New("concurrent modification")
)
