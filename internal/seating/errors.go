package seating

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLayout indicates a grid with no rows or no columns.
	ErrInvalidLayout = errors.New("seating: grid needs at least one row and one column")

	// ErrCapacityExceeded indicates more students than free seats.
	ErrCapacityExceeded = errors.New("seating: more students than available seats")

	// ErrAdjacencyUnsatisfiable indicates that not every disruptive student
	// could be kept apart. Allocation still completes.
	ErrAdjacencyUnsatisfiable = errors.New("seating: disruptive students could not all be separated")

	// ErrBadCoord indicates a coordinate that cannot be parsed.
	ErrBadCoord = errors.New("seating: invalid coordinate")
)

// CapacityError reports the numbers behind ErrCapacityExceeded.
type CapacityError struct {
	Seats    int
	Students int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("seating: %d students but only %d available seats", e.Students, e.Seats)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// AdjacencyError is the warning attached to a Result when disruptive
// students had to be seated without the separation rule.
type AdjacencyError struct {
	Unplaced int
	Attempts int
}

func (e *AdjacencyError) Error() string {
	return fmt.Sprintf("seating: %d disruptive students could not be separated after %d attempts", e.Unplaced, e.Attempts)
}

func (e *AdjacencyError) Unwrap() error {
	return ErrAdjacencyUnsatisfiable
}
