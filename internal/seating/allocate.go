package seating

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/classkit/internal/rng"
	"github.com/san-kum/classkit/internal/roster"
)

// DefaultMaxAttempts bounds the random draws spent on the whole batch of
// disruptive students. It does not scale with the grid size.
const DefaultMaxAttempts = 1000

type config struct {
	maxAttempts int
}

type Option func(*config)

// WithMaxAttempts overrides DefaultMaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// Result is a finished seat assignment plus any non-fatal warnings.
type Result struct {
	Grid     *Grid
	Warnings []error
	// Attempts is the number of random draws used for disruptive students.
	Attempts int
	// Unseparated lists the disruptive students seated by the normal fill.
	Unseparated []roster.Student
}

// Allocate seats students on a grid shaped by layout.
//
// It fails with ErrInvalidLayout for an empty grid and with a
// *CapacityError (matching ErrCapacityExceeded) when there are more
// students than free seats; no grid is returned in either case. Failing
// to separate all disruptive students is not an error: the result
// carries an *AdjacencyError warning instead.
func Allocate(students []roster.Student, layout Layout, r *rand.Rand, opts ...Option) (*Result, error) {
	if layout.Rows < 1 || layout.Cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidLayout, layout.Rows, layout.Cols)
	}
	if seats := layout.Capacity(); len(students) > seats {
		return nil, &CapacityError{Seats: seats, Students: len(students)}
	}

	cfg := config{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}
	r = rng.OrNew(r)

	front, disruptive, normal := partition(students)
	front = rng.Shuffle(r, front)
	disruptive = rng.Shuffle(r, disruptive)
	normal = rng.Shuffle(r, normal)

	g := newGrid(layout)
	res := &Result{Grid: g}

	leftover, attempts := placeDisruptive(g, disruptive, r, cfg.maxAttempts)
	res.Attempts = attempts
	if len(leftover) > 0 {
		res.Unseparated = leftover
		res.Warnings = append(res.Warnings, &AdjacencyError{Unplaced: len(leftover), Attempts: attempts})
		normal = append(normal, leftover...)
	}

	placeFrontRow(g, front, r)
	fillNormal(g, normal)

	return res, nil
}

// partition splits students into front-row, disruptive and normal, in
// input order. Front row wins over disruptive.
func partition(students []roster.Student) (front, disruptive, normal []roster.Student) {
	for _, s := range students {
		switch {
		case s.FrontRow:
			front = append(front, s)
		case s.Disruptive:
			disruptive = append(disruptive, s)
		default:
			normal = append(normal, s)
		}
	}
	return front, disruptive, normal
}

// placeDisruptive seats disruptive students on random free cells without
// a disruptive neighbor. Draws are shared across the batch and capped at
// maxAttempts; a rejected cell is not drawn again for the same student.
// It returns the students left unseated and the number of draws used.
func placeDisruptive(g *Grid, students []roster.Student, r *rand.Rand, maxAttempts int) ([]roster.Student, int) {
	attempts := 0
	for i, s := range students {
		candidates := g.freeCells()
		placed := false
		for len(candidates) > 0 && attempts < maxAttempts {
			attempts++
			j := r.Intn(len(candidates))
			c := candidates[j]
			if !g.hasDisruptiveNeighbor(c) {
				g.set(c, Seat(s))
				placed = true
				break
			}
			candidates[j] = candidates[len(candidates)-1]
			candidates = candidates[:len(candidates)-1]
		}
		if !placed {
			// Either the shared draw budget is spent, so no later student
			// gets a draw, or no free cell lacks a disruptive neighbor,
			// and those cells block every later student alike.
			return students[i:], attempts
		}
	}
	return nil, attempts
}

// placeFrontRow fills shuffled free cells of the front row first, then
// spills over row by row towards the back, left to right.
func placeFrontRow(g *Grid, students []roster.Student, r *rand.Rand) {
	if len(students) == 0 {
		return
	}
	front := g.FrontRow()
	var cols []int
	for c := 0; c < g.Cols; c++ {
		if g.Cells[front][c].Kind == unfilled {
			cols = append(cols, c)
		}
	}
	cols = rng.Shuffle(r, cols)

	next := 0
	for _, c := range cols {
		if next == len(students) {
			return
		}
		g.set(Coord{front, c}, Seat(students[next]))
		next++
	}
	for row := front - 1; row >= 0 && next < len(students); row-- {
		for c := 0; c < g.Cols && next < len(students); c++ {
			if g.Cells[row][c].Kind == unfilled {
				g.set(Coord{row, c}, Seat(students[next]))
				next++
			}
		}
	}
}

// fillNormal sweeps the grid from the front row backwards, left to
// right, seating queue in order and marking the rest Empty.
func fillNormal(g *Grid, queue []roster.Student) {
	next := 0
	for row := g.Rows - 1; row >= 0; row-- {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[row][c].Kind != unfilled {
				continue
			}
			if next < len(queue) {
				g.set(Coord{row, c}, Seat(queue[next]))
				next++
			} else {
				g.set(Coord{row, c}, EmptyCell())
			}
		}
	}
}
