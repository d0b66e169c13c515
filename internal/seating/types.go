package seating

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/classkit/internal/roster"
)

// Coord addresses a cell. Row 0 is the back of the room; the front row is
// Rows-1.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the "row-col" key used in saved classes.
func (c Coord) String() string {
	return fmt.Sprintf("%d-%d", c.Row, c.Col)
}

// ParseCoord parses a "row-col" key.
func ParseCoord(s string) (Coord, error) {
	rs, cs, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	c, err := strconv.Atoi(cs)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	return Coord{Row: r, Col: c}, nil
}

// Layout describes the room before anyone sits down.
type Layout struct {
	Rows    int
	Cols    int
	Blocked []Coord
}

func (l Layout) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < l.Rows && c.Col >= 0 && c.Col < l.Cols
}

// IsBlocked reports whether c is one of the blocked cells.
func (l Layout) IsBlocked(c Coord) bool {
	for _, b := range l.Blocked {
		if b == c {
			return true
		}
	}
	return false
}

// blockedSet returns the distinct in-bounds blocked cells.
func (l Layout) blockedSet() map[Coord]bool {
	set := make(map[Coord]bool, len(l.Blocked))
	for _, b := range l.Blocked {
		if l.InBounds(b) {
			set[b] = true
		}
	}
	return set
}

// Capacity is the number of seats a student can be given.
func (l Layout) Capacity() int {
	return l.Rows*l.Cols - len(l.blockedSet())
}

type CellKind int

const (
	unfilled CellKind = iota
	Empty
	Blocked
	Occupied
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Blocked:
		return "blocked"
	case Occupied:
		return "occupied"
	default:
		return "unfilled"
	}
}

// Cell is one desk position. Student is only meaningful when Kind is
// Occupied.
type Cell struct {
	Kind    CellKind
	Student roster.Student
}

func EmptyCell() Cell   { return Cell{Kind: Empty} }
func BlockedCell() Cell { return Cell{Kind: Blocked} }

func Seat(s roster.Student) Cell {
	return Cell{Kind: Occupied, Student: s}
}

func (c Cell) IsOccupied() bool { return c.Kind == Occupied }

func (c Cell) isDisruptive() bool {
	return c.Kind == Occupied && c.Student.Disruptive
}

// orthogonal neighbor offsets: up, right, down, left.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
