package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates the operation would violate a store invariant,
	// e.g. deleting a category that is still referenced or reusing a slug.
	ErrConflict = errors.New("conflict")
	// ErrRemoteOperation indicates a consumed external endpoint reported failure
	// (success=false envelope or non-2xx status).
	ErrRemoteOperation = errors.New("remote operation failed")
)
