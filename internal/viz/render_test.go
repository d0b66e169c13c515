package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/classkit/internal/grouping"
	"github.com/san-kum/classkit/internal/roster"
	"github.com/san-kum/classkit/internal/seating"
)

func testGrid() *seating.Grid {
	m := [][]*roster.Student{
		{{ID: 1, Name: "Anna"}, nil, {ID: 2, Name: "Bram", Disruptive: true}},
		{{ID: 3, Name: "Cas", FrontRow: true}, {ID: 4, Name: "Dewi"}, {ID: 5, Name: "Eva", Disruptive: true}},
	}
	return seating.FromMatrix(m, []seating.Coord{{Row: 0, Col: 1}})
}

func TestRenderGridFrontLast(t *testing.T) {
	out := RenderGrid(testGrid(), ThemeClassic)

	for _, name := range []string{"Anna", "Bram", "Cas", "Dewi", "Eva"} {
		if !strings.Contains(out, name) {
			t.Errorf("missing %q in output:\n%s", name, out)
		}
	}
	front := strings.LastIndex(out, "front")
	if front < strings.Index(out, "Cas") {
		t.Errorf("front marker should follow the front row:\n%s", out)
	}
	if strings.Index(out, "Anna") > strings.Index(out, "Cas") {
		t.Errorf("back row should be drawn first:\n%s", out)
	}
	if !strings.Contains(out, "! Bram") || !strings.Contains(out, "^ Cas") {
		t.Errorf("expected disruptive and front-row markers:\n%s", out)
	}
}

func TestRenderGridEmpty(t *testing.T) {
	if out := RenderGrid(nil, ThemeMono); !strings.Contains(out, "no seating") {
		t.Errorf("got %q", out)
	}
}

func TestGridViewCursor(t *testing.T) {
	g := testGrid()
	cur := seating.Coord{Row: 1, Col: 1}
	plain := GridView{Grid: g, Styles: NewStyles(ThemeClassic)}.Render()
	withCursor := GridView{Grid: g, Styles: NewStyles(ThemeClassic), Cursor: &cur}.Render()
	if plain == withCursor {
		t.Error("cursor did not change rendering")
	}
}

func TestRenderGroups(t *testing.T) {
	groups := []grouping.Group{
		{{ID: 1, Name: "Anna"}, {ID: 2, Name: "Bram"}},
		{{ID: 3, Name: "Cas"}},
	}
	out := RenderGroups(groups, ThemeChalk)
	for _, want := range []string{"Group 1 (2)", "Group 2 (1)", "Anna", "Cas"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	if out := RenderGroups(nil, ThemeChalk); !strings.Contains(out, "no groups") {
		t.Errorf("got %q", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Anna", 12, "Anna"},
		{"Maximiliaan de Vries", 8, "Maximil…"},
		{"Zoë", 3, "Zoë"},
		{"Zoë", 1, "Z"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("chalk").Name != "chalk" {
		t.Error("chalk not found")
	}
	if GetTheme("nope").Name != ThemeClassic.Name {
		t.Error("unknown theme should fall back to classic")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}
