package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/classkit/internal/grouping"
	"github.com/san-kum/classkit/internal/seating"
)

// GridView renders a seating grid. Cursor and Marked are optional and
// used by the seat editor.
type GridView struct {
	Grid   *seating.Grid
	Styles Styles
	Cursor *seating.Coord
	Marked *seating.Coord
}

// RenderGrid draws g back row first, with the front row last above a
// "front" marker. Seats involved in a disruptive-neighbor violation get
// a warning border.
func RenderGrid(g *seating.Grid, t Theme) string {
	return GridView{Grid: g, Styles: NewStyles(t)}.Render()
}

func (v GridView) Render() string {
	g := v.Grid
	if g == nil || g.Rows == 0 || g.Cols == 0 {
		return v.Styles.Subtle.Render("(no seating)")
	}

	bad := make(map[seating.Coord]bool)
	for _, pair := range g.Violations() {
		bad[pair[0]] = true
		bad[pair[1]] = true
	}

	rows := make([]string, 0, g.Rows+1)
	for r := 0; r < g.Rows; r++ {
		cells := make([]string, g.Cols)
		for c := 0; c < g.Cols; c++ {
			at := seating.Coord{Row: r, Col: c}
			cells[c] = v.cell(at, bad[at])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	width := lipgloss.Width(rows[0])
	rows = append(rows, v.Styles.Front.Width(width).Render("front"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v GridView) cell(at seating.Coord, violation bool) string {
	s := v.Styles
	c := v.Grid.At(at)

	var style lipgloss.Style
	text := ""
	switch {
	case c.Kind == seating.Blocked:
		style, text = s.Blocked, "░░░░"
	case c.Kind != seating.Occupied:
		style, text = s.Empty, "·"
	case c.Student.Disruptive:
		style, text = s.Disruptive, "! "+c.Student.Name
	case c.Student.FrontRow:
		style, text = s.FrontRow, "^ "+c.Student.Name
	default:
		style, text = s.Seat, c.Student.Name
	}

	if violation {
		style = style.BorderForeground(s.theme.Violation)
	}
	if v.Marked != nil && *v.Marked == at {
		style = style.Border(lipgloss.DoubleBorder()).BorderForeground(s.theme.Marked)
	}
	if v.Cursor != nil && *v.Cursor == at {
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(s.theme.Cursor)
	}
	return style.Render(Truncate(text, CellWidth))
}

// groupsPerLine is how many group boxes share one line of output.
const groupsPerLine = 4

// RenderGroups draws each group as a titled box, wrapping every
// groupsPerLine boxes.
func RenderGroups(groups []grouping.Group, t Theme) string {
	s := NewStyles(t)
	if len(groups) == 0 {
		return s.Subtle.Render("(no groups)")
	}

	boxes := make([]string, len(groups))
	for i, g := range groups {
		var b strings.Builder
		b.WriteString(s.GroupTitle.Render(fmt.Sprintf("Group %d (%d)", i+1, len(g))))
		for _, st := range g {
			b.WriteString("\n")
			name := Truncate(st.Name, CellWidth)
			switch {
			case st.Disruptive:
				name = lipgloss.NewStyle().Foreground(t.Disruptive).Render(name)
			case st.FrontRow:
				name = lipgloss.NewStyle().Foreground(t.FrontRow).Render(name)
			}
			b.WriteString(name)
		}
		boxes[i] = s.GroupBox.Render(b.String())
	}

	var lines []string
	for i := 0; i < len(boxes); i += groupsPerLine {
		end := i + groupsPerLine
		if end > len(boxes) {
			end = len(boxes)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, boxes[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Legend explains the seat markers.
func Legend(t Theme) string {
	s := NewStyles(t)
	return s.KeyHint.Render("! disruptive   ^ front row   ░ blocked   · empty")
}
