package store

import "errors"

var (
	// ErrItemNotFound is returned when no item exists for an id
	ErrItemNotFound = errors.New("item not found")

	// ErrItemExists is returned when creating an id that is already taken
	ErrItemExists = errors.New("item already exists")
)
