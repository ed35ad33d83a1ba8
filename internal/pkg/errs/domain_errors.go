package errs

import "errors"

// Sentinel errors surfaced by the availability queries
var (
	// Lookup errors
	ErrResourceNotFound = errors.New("resource not found")

	// Input errors
	ErrInvalidDate = errors.New("invalid date")

	// Collaborator errors (store unreachable, cache broken, ...)
	ErrDependencyFailure = errors.New("dependency failure")
)
