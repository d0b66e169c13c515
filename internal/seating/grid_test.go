package seating

import (
	"errors"
	"testing"

	"github.com/san-kum/classkit/internal/roster"
)

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in   string
		want Coord
		err  bool
	}{
		{"0-0", Coord{0, 0}, false},
		{"3-12", Coord{3, 12}, false},
		{" 1-2 ", Coord{1, 2}, false},
		{"12", Coord{}, true},
		{"a-1", Coord{}, true},
		{"1-b", Coord{}, true},
	}
	for _, tt := range tests {
		got, err := ParseCoord(tt.in)
		if tt.err {
			if !errors.Is(err, ErrBadCoord) {
				t.Errorf("ParseCoord(%q): expected ErrBadCoord, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseCoord(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if got.String() != tt.want.String() {
			t.Errorf("String() mismatch for %v", got)
		}
	}
}

func sampleGrid() *Grid {
	g := newGrid(Layout{Rows: 2, Cols: 3, Blocked: []Coord{{0, 1}}})
	g.Cells[0][0] = Seat(roster.Student{ID: 1, Name: "A", Disruptive: true})
	g.Cells[0][2] = EmptyCell()
	g.Cells[1][0] = Seat(roster.Student{ID: 2, Name: "B"})
	g.Cells[1][1] = Seat(roster.Student{ID: 3, Name: "C", Disruptive: true})
	g.Cells[1][2] = Seat(roster.Student{ID: 4, Name: "D"})
	return g
}

func TestSwap(t *testing.T) {
	g := sampleGrid()

	if !Swap(g, Coord{0, 0}, Coord{1, 2}) {
		t.Fatal("swap of two seats was refused")
	}
	if g.At(Coord{0, 0}).Student.ID != 4 || g.At(Coord{1, 2}).Student.ID != 1 {
		t.Errorf("swap did not exchange students")
	}

	if !Swap(g, Coord{0, 2}, Coord{1, 0}) {
		t.Fatal("swap with an empty seat was refused")
	}
	if g.At(Coord{0, 2}).Student.ID != 2 || g.At(Coord{1, 0}).Kind != Empty {
		t.Errorf("swap with empty seat failed")
	}
}

func TestSwap_Rejected(t *testing.T) {
	g := sampleGrid()
	before := g.Clone()

	if Swap(g, Coord{0, 1}, Coord{1, 0}) {
		t.Error("swap with blocked cell should be refused")
	}
	if Swap(g, Coord{1, 0}, Coord{0, 1}) {
		t.Error("swap into blocked cell should be refused")
	}
	if Swap(g, Coord{1, 0}, Coord{5, 0}) {
		t.Error("swap out of range should be refused")
	}
	for r := range g.Cells {
		for c := range g.Cells[r] {
			if g.Cells[r][c] != before.Cells[r][c] {
				t.Fatalf("refused swap changed cell %d-%d", r, c)
			}
		}
	}
}

func TestSwap_Commutative(t *testing.T) {
	a, b := sampleGrid(), sampleGrid()
	Swap(a, Coord{0, 0}, Coord{1, 1})
	Swap(b, Coord{1, 1}, Coord{0, 0})
	for r := range a.Cells {
		for c := range a.Cells[r] {
			if a.Cells[r][c] != b.Cells[r][c] {
				t.Fatalf("swap is not commutative at %d-%d", r, c)
			}
		}
	}
}

func TestSwap_AllowsViolation(t *testing.T) {
	g := sampleGrid()
	if len(g.Violations()) != 0 {
		t.Fatalf("sample grid should start without violations: %v", g.Violations())
	}
	// Move the disruptive student from 0-0 next to the one at 1-1.
	if !Swap(g, Coord{0, 0}, Coord{1, 0}) {
		t.Fatal("swap refused")
	}
	v := g.Violations()
	if len(v) != 1 || v[0] != [2]Coord{{1, 0}, {1, 1}} {
		t.Errorf("expected one violation between 1-0 and 1-1, got %v", v)
	}
}

func TestMatrixRoundTrip(t *testing.T) {
	g := sampleGrid()
	back := FromMatrix(g.Matrix(), g.Layout().Blocked)

	if back.Rows != g.Rows || back.Cols != g.Cols {
		t.Fatalf("dimensions changed: %dx%d", back.Rows, back.Cols)
	}
	for r := range g.Cells {
		for c := range g.Cells[r] {
			if g.Cells[r][c] != back.Cells[r][c] {
				t.Errorf("cell %d-%d: %+v != %+v", r, c, g.Cells[r][c], back.Cells[r][c])
			}
		}
	}
}

func TestGridHelpers(t *testing.T) {
	g := sampleGrid()
	if got := len(g.Students()); got != 4 {
		t.Errorf("expected 4 students, got %d", got)
	}
	if pos, ok := g.Find(3); !ok || pos != (Coord{1, 1}) {
		t.Errorf("Find(3) = %v, %v", pos, ok)
	}
	if _, ok := g.Find(42); ok {
		t.Error("found a student that is not seated")
	}
	if g.FrontRow() != 1 {
		t.Errorf("expected front row 1, got %d", g.FrontRow())
	}
	if g.At(Coord{-1, 0}).Kind != Blocked {
		t.Error("out-of-range cells should read as blocked")
	}

	c := g.Clone()
	c.Cells[0][0] = EmptyCell()
	if !g.Cells[0][0].IsOccupied() {
		t.Error("clone shares cells with the original")
	}
}
