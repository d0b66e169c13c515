package seating

// Swap exchanges the contents of two cells in place. It refuses (and
// returns false) when either cell is blocked or outside the grid.
// The adjacency rule is not re-checked.
func Swap(g *Grid, a, b Coord) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	if g.At(a).Kind == Blocked || g.At(b).Kind == Blocked {
		return false
	}
	g.Cells[a.Row][a.Col], g.Cells[b.Row][b.Col] = g.Cells[b.Row][b.Col], g.Cells[a.Row][a.Col]
	return true
}
