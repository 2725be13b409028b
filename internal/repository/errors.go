package repository

import "errors"

// Common repository errors
var (
	// ErrNotFound is returned when a row does not exist under the given parent chain
	ErrNotFound = errors.New("record not found")

	// ErrParentNotFound is returned when a child is created under a missing parent
	ErrParentNotFound = errors.New("parent not found")

	// ErrDuplicateEmail is returned when the users.email unique index rejects a write
	ErrDuplicateEmail = errors.New("email already exists")
)
