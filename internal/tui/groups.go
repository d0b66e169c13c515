package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/classkit/internal/grouping"
	"github.com/san-kum/classkit/internal/viz"
)

type groupEditor struct {
	groups []grouping.Group
	theme  viz.Theme
	styles viz.Styles

	group, idx int
	picked     *[2]int
	status     string
}

// NewGroupEditor returns a bubbletea model for moving students between
// groups. Left/right pick a group, up/down a student; space picks a
// student up and a second space drops them into the current group.
func NewGroupEditor(groups []grouping.Group, theme viz.Theme) *groupEditor {
	return &groupEditor{
		groups: grouping.Clone(groups),
		theme:  theme,
		styles: viz.NewStyles(theme),
	}
}

// Groups are the groups as currently edited.
func (m groupEditor) Groups() []grouping.Group { return m.groups }

func (m groupEditor) Init() tea.Cmd { return nil }

func (m groupEditor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

func (m groupEditor) handleKey(msg tea.KeyMsg) (groupEditor, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.group > 0 {
			m.group--
			m.clampIdx()
		}
	case "right", "l":
		if m.group < len(m.groups)-1 {
			m.group++
			m.clampIdx()
		}
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if len(m.groups) > 0 && m.idx < len(m.groups[m.group])-1 {
			m.idx++
		}
	case "n":
		m.groups = grouping.AddGroup(m.groups)
		m.group = len(m.groups) - 1
		m.idx = 0
		m.status = fmt.Sprintf("added group %d", len(m.groups))
	case " ", "enter":
		m.pickOrDrop()
	case "esc":
		m.picked = nil
		m.status = ""
	}
	return m, nil
}

func (m *groupEditor) clampIdx() {
	n := len(m.groups[m.group])
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *groupEditor) pickOrDrop() {
	if len(m.groups) == 0 {
		return
	}
	if m.picked == nil {
		if len(m.groups[m.group]) == 0 {
			return
		}
		m.picked = &[2]int{m.group, m.idx}
		m.status = "picked " + m.groups[m.group][m.idx].Name
		return
	}

	from, idx := m.picked[0], m.picked[1]
	m.picked = nil
	if from == m.group {
		m.status = ""
		return
	}
	name := m.groups[from][idx].Name
	id := m.groups[from][idx].ID
	moved, err := grouping.Move(m.groups, from, idx, m.group)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.groups = moved
	// Move prunes empty groups, so find the student again.
	if g, i, ok := grouping.Locate(m.groups, id); ok {
		m.group, m.idx = g, i
	}
	m.status = fmt.Sprintf("moved %s", name)
}

func (m groupEditor) View() string {
	var b strings.Builder
	b.WriteString(m.styles.GroupTitle.Render(fmt.Sprintf("%d group(s)", len(m.groups))))
	b.WriteString("\n\n")

	for gi, g := range m.groups {
		head := fmt.Sprintf("Group %d (%d)", gi+1, len(g))
		if gi == m.group {
			head = "> " + head
		} else {
			head = "  " + head
		}
		b.WriteString(m.styles.GroupTitle.Render(head))
		b.WriteString("\n")
		for si, s := range g {
			prefix := "    "
			if gi == m.group && si == m.idx {
				prefix = "  > "
			}
			if m.picked != nil && m.picked[0] == gi && m.picked[1] == si {
				prefix = "  * "
			}
			b.WriteString(prefix + viz.Truncate(s.Name, 24) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString(m.styles.KeyHint.Render("arrows/hjkl move · space pick/drop · n new group · q done"))
	return b.String()
}
