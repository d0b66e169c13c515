package classstore

import (
	"fmt"

	"github.com/san-kum/classkit/internal/roster"
	"github.com/san-kum/classkit/internal/seating"
)

// DefaultKey is the key the snapshot list is stored under.
const DefaultKey = "saved-classes"

// SavedClass is one persisted snapshot. The seating fields are optional.
type SavedClass struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Students     []roster.Student    `json:"students"`
	Timestamp    int64               `json:"timestamp"`
	Grid         [][]*roster.Student `json:"grid,omitempty"`
	Rows         int                 `json:"rows,omitempty"`
	Cols         int                 `json:"cols,omitempty"`
	BlockedCells []string            `json:"blockedCells,omitempty"`
}

// HasSeating reports whether a seating plan was saved with the class.
func (c *SavedClass) HasSeating() bool {
	return len(c.Grid) > 0 && c.Rows > 0 && c.Cols > 0
}

// Layout returns the saved grid dimensions and blocked cells. A class
// saved without dimensions gets def unchanged; a class saved with them
// keeps its own blocked set, even an empty one.
func (c *SavedClass) Layout(def seating.Layout) (seating.Layout, error) {
	if c.Rows <= 0 || c.Cols <= 0 {
		return def, nil
	}
	blocked, err := parseBlocked(c.BlockedCells)
	if err != nil {
		return seating.Layout{}, err
	}
	return seating.Layout{Rows: c.Rows, Cols: c.Cols, Blocked: blocked}, nil
}

// Seating rebuilds the saved seating plan.
func (c *SavedClass) Seating() (*seating.Grid, error) {
	if !c.HasSeating() {
		return nil, fmt.Errorf("classstore: %q has no saved seating", c.Name)
	}
	blocked, err := parseBlocked(c.BlockedCells)
	if err != nil {
		return nil, err
	}
	return seating.FromMatrix(c.Grid, blocked), nil
}

func parseBlocked(keys []string) ([]seating.Coord, error) {
	out := make([]seating.Coord, 0, len(keys))
	for _, k := range keys {
		c, err := seating.ParseCoord(k)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func formatBlocked(coords []seating.Coord) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = c.String()
	}
	return out
}

// SaveRequest describes a save. A nil Grid keeps the seating plan already
// stored under Name; a nil Layout keeps its dimensions and blocked cells.
// A Grid implies its own layout.
type SaveRequest struct {
	Name     string
	Students []roster.Student
	Grid     *seating.Grid
	Layout   *seating.Layout
}
