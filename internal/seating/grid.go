package seating

import (
	"github.com/san-kum/classkit/internal/roster"
)

// Grid is a seat assignment: Rows x Cols cells indexed [row][col].
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

// newGrid returns a grid with blocked cells marked and every other cell
// unfilled.
func newGrid(l Layout) *Grid {
	blocked := l.blockedSet()
	g := &Grid{Rows: l.Rows, Cols: l.Cols, Cells: make([][]Cell, l.Rows)}
	for r := 0; r < l.Rows; r++ {
		g.Cells[r] = make([]Cell, l.Cols)
		for c := 0; c < l.Cols; c++ {
			if blocked[Coord{r, c}] {
				g.Cells[r][c] = BlockedCell()
			}
		}
	}
	return g
}

func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// At returns the cell at c. Out-of-range coordinates read as blocked.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return BlockedCell()
	}
	return g.Cells[c.Row][c.Col]
}

func (g *Grid) set(c Coord, cell Cell) {
	g.Cells[c.Row][c.Col] = cell
}

// FrontRow is the row index nearest the front of the room.
func (g *Grid) FrontRow() int {
	return g.Rows - 1
}

// Layout recovers the dimensions and blocked cells of g.
func (g *Grid) Layout() Layout {
	l := Layout{Rows: g.Rows, Cols: g.Cols}
	for r := range g.Cells {
		for c := range g.Cells[r] {
			if g.Cells[r][c].Kind == Blocked {
				l.Blocked = append(l.Blocked, Coord{r, c})
			}
		}
	}
	return l
}

// Students lists the seated students in row-major order.
func (g *Grid) Students() []roster.Student {
	var out []roster.Student
	for r := range g.Cells {
		for _, cell := range g.Cells[r] {
			if cell.IsOccupied() {
				out = append(out, cell.Student)
			}
		}
	}
	return out
}

// Find returns the seat of the student with the given id.
func (g *Grid) Find(id int64) (Coord, bool) {
	for r := range g.Cells {
		for c, cell := range g.Cells[r] {
			if cell.IsOccupied() && cell.Student.ID == id {
				return Coord{r, c}, true
			}
		}
	}
	return Coord{}, false
}

func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, Cells: make([][]Cell, len(g.Cells))}
	for r := range g.Cells {
		out.Cells[r] = make([]Cell, len(g.Cells[r]))
		copy(out.Cells[r], g.Cells[r])
	}
	return out
}

// hasDisruptiveNeighbor reports whether any orthogonal neighbor of c
// holds a disruptive student. Cells outside the grid never count.
func (g *Grid) hasDisruptiveNeighbor(c Coord) bool {
	for _, d := range neighborOffsets {
		if g.At(Coord{c.Row + d[0], c.Col + d[1]}).isDisruptive() {
			return true
		}
	}
	return false
}

// Violations lists orthogonally adjacent pairs of disruptive students.
// Each pair is reported once.
func (g *Grid) Violations() [][2]Coord {
	var out [][2]Coord
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			here := Coord{r, c}
			if !g.At(here).isDisruptive() {
				continue
			}
			for _, next := range []Coord{{r, c + 1}, {r + 1, c}} {
				if g.At(next).isDisruptive() {
					out = append(out, [2]Coord{here, next})
				}
			}
		}
	}
	return out
}

// freeCells returns every cell not yet filled, row-major.
func (g *Grid) freeCells() []Coord {
	var out []Coord
	for r := range g.Cells {
		for c, cell := range g.Cells[r] {
			if cell.Kind == unfilled {
				out = append(out, Coord{r, c})
			}
		}
	}
	return out
}

// Matrix converts g to the saved-class representation: a student or nil
// per cell. Blocked and empty cells are both nil.
func (g *Grid) Matrix() [][]*roster.Student {
	out := make([][]*roster.Student, g.Rows)
	for r := range g.Cells {
		out[r] = make([]*roster.Student, g.Cols)
		for c, cell := range g.Cells[r] {
			if cell.IsOccupied() {
				s := cell.Student
				out[r][c] = &s
			}
		}
	}
	return out
}

// FromMatrix rebuilds a grid from its saved representation. Cells listed
// in blocked become Blocked; other nil cells become Empty.
func FromMatrix(m [][]*roster.Student, blocked []Coord) *Grid {
	rows := len(m)
	cols := 0
	for _, row := range m {
		if len(row) > cols {
			cols = len(row)
		}
	}
	g := newGrid(Layout{Rows: rows, Cols: cols, Blocked: blocked})
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if g.Cells[r][c].Kind == Blocked {
				continue
			}
			if c < len(m[r]) && m[r][c] != nil {
				g.Cells[r][c] = Seat(*m[r][c])
			} else {
				g.Cells[r][c] = EmptyCell()
			}
		}
	}
	return g
}
