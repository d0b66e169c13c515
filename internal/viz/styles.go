package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CellWidth is the inner width of one rendered seat.
const CellWidth = 12

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Seat       lipgloss.Style
	Empty      lipgloss.Style
	Blocked    lipgloss.Style
	Disruptive lipgloss.Style
	FrontRow   lipgloss.Style
	Front      lipgloss.Style
	GroupBox   lipgloss.Style
	GroupTitle lipgloss.Style
	Subtle     lipgloss.Style
	KeyHint    lipgloss.Style
	Warning    lipgloss.Style

	theme Theme
}

func NewStyles(t Theme) Styles {
	seat := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Width(CellWidth).
		Align(lipgloss.Center)

	return Styles{
		Seat:       seat,
		Empty:      seat.Foreground(t.Muted),
		Blocked:    seat.Border(lipgloss.HiddenBorder()).Foreground(t.Muted),
		Disruptive: seat.Foreground(t.Disruptive).Bold(true),
		FrontRow:   seat.Foreground(t.FrontRow),
		Front: lipgloss.NewStyle().
			Foreground(t.Muted).
			Align(lipgloss.Center).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(t.Border),
		GroupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(CellWidth + 4),
		GroupTitle: lipgloss.NewStyle().Bold(true).Foreground(t.FrontRow),
		Subtle:     lipgloss.NewStyle().Foreground(t.Muted),
		KeyHint:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Warning:    lipgloss.NewStyle().Bold(true).Foreground(t.Violation),
		theme:      t,
	}
}

// Truncate shortens s to width runes, ending in "…" when cut.
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

// Separator is a muted horizontal rule.
func (s Styles) Separator(width int) string {
	if width < 1 {
		return ""
	}
	return s.Subtle.Render(strings.Repeat("─", width))
}
