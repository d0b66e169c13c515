package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme for seat grids and group boxes.
type Theme struct {
	Name       string
	Border     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Disruptive lipgloss.Color
	FrontRow   lipgloss.Color
	Violation  lipgloss.Color
	Cursor     lipgloss.Color
	Marked     lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:       "classic",
		Border:     lipgloss.Color("#5f5f87"),
		Text:       lipgloss.Color("#eeeeee"),
		Muted:      lipgloss.Color("#6c6c6c"),
		Disruptive: lipgloss.Color("#ff5f5f"),
		FrontRow:   lipgloss.Color("#5fafff"),
		Violation:  lipgloss.Color("#ff0000"),
		Cursor:     lipgloss.Color("#ffd75f"),
		Marked:     lipgloss.Color("#87ff87"),
	}

	ThemeChalk = Theme{
		Name:       "chalk",
		Border:     lipgloss.Color("#a8a8a8"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#4e4e4e"),
		Disruptive: lipgloss.Color("#ffaf87"),
		FrontRow:   lipgloss.Color("#afd7ff"),
		Violation:  lipgloss.Color("#ff5f87"),
		Cursor:     lipgloss.Color("#ffff87"),
		Marked:     lipgloss.Color("#afffaf"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Border:     lipgloss.Color("#808080"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#585858"),
		Disruptive: lipgloss.Color("#ffffff"),
		FrontRow:   lipgloss.Color("#d0d0d0"),
		Violation:  lipgloss.Color("#ffffff"),
		Cursor:     lipgloss.Color("#ffffff"),
		Marked:     lipgloss.Color("#bcbcbc"),
	}

	Themes = []Theme{ThemeClassic, ThemeChalk, ThemeMono}
)

// GetTheme returns a theme by name, or ThemeClassic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
