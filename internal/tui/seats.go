package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/classkit/internal/seating"
	"github.com/san-kum/classkit/internal/viz"
)

// SeatEditorOptions wires the editor to the rest of the program. Both
// callbacks are optional; without them "r" and "s" are disabled.
type SeatEditorOptions struct {
	Title      string
	Grid       *seating.Grid
	Theme      viz.Theme
	Reallocate func() (*seating.Result, error)
	Save       func(*seating.Grid) error
}

type seatEditor struct {
	opts   SeatEditorOptions
	styles viz.Styles
	grid   *seating.Grid
	cursor seating.Coord
	marked *seating.Coord
	dirty  bool
	status string
	saving bool
}

type savedMsg struct{ err error }

// NewSeatEditor returns a bubbletea model that edits a copy of
// opts.Grid. Swaps made in the editor do not re-check the
// disruptive-neighbor rule; violations are highlighted instead.
func NewSeatEditor(opts SeatEditorOptions) *seatEditor {
	g := opts.Grid
	if g != nil {
		g = g.Clone()
	}
	m := &seatEditor{
		opts:   opts,
		styles: viz.NewStyles(opts.Theme),
		grid:   g,
	}
	if g != nil {
		m.cursor = seating.Coord{Row: g.FrontRow(), Col: 0}
	}
	return m
}

// Grid is the grid as currently edited.
func (m seatEditor) Grid() *seating.Grid { return m.grid }

func (m seatEditor) Init() tea.Cmd { return nil }

func (m seatEditor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
		} else {
			m.dirty = false
			m.status = "saved"
		}
	}
	return m, nil
}

func (m seatEditor) handleKey(msg tea.KeyMsg) (seatEditor, tea.Cmd) {
	if m.grid == nil {
		if s := msg.String(); s == "q" || s == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.String() == "r" {
			m.reallocate()
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}
	case "down", "j":
		if m.cursor.Row < m.grid.Rows-1 {
			m.cursor.Row++
		}
	case "left", "h":
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}
	case "right", "l":
		if m.cursor.Col < m.grid.Cols-1 {
			m.cursor.Col++
		}
	case " ", "enter":
		m.toggleMark()
	case "esc":
		m.marked = nil
		m.status = ""
	case "r":
		m.reallocate()
	case "s":
		if m.opts.Save == nil {
			m.status = "saving is not available"
			return m, nil
		}
		if m.saving {
			return m, nil
		}
		m.saving = true
		m.status = "saving…"
		save, g := m.opts.Save, m.grid.Clone()
		return m, func() tea.Msg { return savedMsg{err: save(g)} }
	}
	return m, nil
}

func (m *seatEditor) toggleMark() {
	if m.marked == nil {
		if m.grid.At(m.cursor).Kind == seating.Blocked {
			m.status = "cell " + m.cursor.String() + " is blocked"
			return
		}
		c := m.cursor
		m.marked = &c
		m.status = "marked " + c.String() + ", move and press space to swap"
		return
	}
	if *m.marked == m.cursor {
		m.marked = nil
		m.status = ""
		return
	}
	if !seating.Swap(m.grid, *m.marked, m.cursor) {
		m.status = "cannot swap with a blocked cell"
		return
	}
	m.status = fmt.Sprintf("swapped %s and %s", m.marked, m.cursor)
	m.marked = nil
	m.dirty = true
}

func (m *seatEditor) reallocate() {
	if m.opts.Reallocate == nil {
		m.status = "reallocation is not available"
		return
	}
	res, err := m.opts.Reallocate()
	if err != nil {
		m.status = "reallocate failed: " + err.Error()
		return
	}
	m.grid = res.Grid
	m.marked = nil
	m.dirty = true
	if m.cursor.Row >= m.grid.Rows || m.cursor.Col >= m.grid.Cols {
		m.cursor = seating.Coord{Row: m.grid.FrontRow(), Col: 0}
	}
	m.status = "reallocated"
	for _, w := range res.Warnings {
		var adj *seating.AdjacencyError
		if errors.As(w, &adj) {
			m.status = fmt.Sprintf("reallocated; %d disruptive student(s) could not be separated", adj.Unplaced)
		}
	}
}

func (m seatEditor) View() string {
	var b strings.Builder

	title := m.opts.Title
	if title == "" {
		title = "seating"
	}
	if m.dirty {
		title += " *"
	}
	b.WriteString(m.styles.GroupTitle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(viz.GridView{
		Grid:   m.grid,
		Styles: m.styles,
		Cursor: &m.cursor,
		Marked: m.marked,
	}.Render())
	b.WriteString("\n")

	if m.grid != nil {
		if n := len(m.grid.Violations()); n > 0 {
			b.WriteString(m.styles.Warning.Render(fmt.Sprintf("%d disruptive pair(s) seated side by side", n)))
			b.WriteString("\n")
		}
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(viz.Legend(m.opts.Theme))
	b.WriteString("\n")
	b.WriteString(m.styles.KeyHint.Render("arrows/hjkl move · space mark/swap · esc unmark · r reallocate · s save · q quit"))
	return b.String()
}
