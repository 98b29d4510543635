package catalog

import "errors"

var (
	// ErrDuplicateTitle is returned when inserting a title that already exists.
	ErrDuplicateTitle = errors.New("duplicate title")
	// ErrNotFound is returned when a title is not in the catalog.
	ErrNotFound = errors.New("content not found")
	// ErrInvalidEntry is returned for entries that cannot be stored.
	ErrInvalidEntry = errors.New("invalid content entry")
)
