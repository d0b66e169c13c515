package config

import "sort"

// Preset is a named classroom layout.
type Preset struct {
	Rows    int
	Cols    int
	Blocked []string
}

var Presets = map[string]Preset{
	"standard": {Rows: 4, Cols: 6},
	"small":    {Rows: 3, Cols: 4},
	"large":    {Rows: 6, Cols: 8},
	// One aisle down the middle.
	"aisle": {
		Rows:    5,
		Cols:    7,
		Blocked: []string{"0-3", "1-3", "2-3", "3-3", "4-3"},
	},
	// Pairs of desks with an aisle between each pair.
	"pairs": {
		Rows:    5,
		Cols:    8,
		Blocked: []string{"0-2", "1-2", "2-2", "3-2", "4-2", "0-5", "1-5", "2-5", "3-5", "4-5"},
	},
	// U shape facing the board: back row and both sides, middle empty.
	"horseshoe": {
		Rows: 4,
		Cols: 6,
		Blocked: []string{
			"1-1", "1-2", "1-3", "1-4",
			"2-1", "2-2", "2-3", "2-4",
			"3-1", "3-2", "3-3", "3-4",
		},
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
