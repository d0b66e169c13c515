package roster

import "errors"

var (
	// ErrEmptyName indicates a student without a usable name.
	ErrEmptyName = errors.New("roster: student name is empty")

	// ErrNotFound indicates no student with the requested id.
	ErrNotFound = errors.New("roster: student not found")

	// ErrEmptyRoster indicates an operation that needs at least one student.
	ErrEmptyRoster = errors.New("roster: no students")

	// ErrNoSheet indicates a workbook without any sheet to import from.
	ErrNoSheet = errors.New("roster: workbook has no sheets")
)
