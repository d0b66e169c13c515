package classstore

import "errors"

var (
	// ErrNotFound indicates no saved class with the requested name or id.
	ErrNotFound = errors.New("classstore: class not found")

	// ErrEmptyName indicates a save without a class name.
	ErrEmptyName = errors.New("classstore: class name is empty")
)
