package scenario

import "github.com/katalvlaran/gridpath/astar"

func at(row, col int) astar.Coord { return astar.Coord{Row: row, Col: col} }

// presets are the classic demo grids.
var presets = []Scenario{
	{
		Name:    "corner",
		Rows:    3,
		Cols:    3,
		Start:   at(2, 0),
		Goal:    at(0, 2),
		Blocked: []astar.Coord{at(1, 1)},
	},
	{
		Name:    "enclosed",
		Rows:    3,
		Cols:    3,
		Start:   at(2, 0),
		Goal:    at(0, 2),
		Blocked: []astar.Coord{at(0, 1), at(1, 1), at(1, 2)},
	},
	{
		Name:    "pocket",
		Rows:    5,
		Cols:    5,
		Start:   at(0, 0),
		Goal:    at(3, 2),
		Blocked: []astar.Coord{at(0, 4), at(2, 2), at(3, 1), at(3, 3), at(2, 1), at(2, 3)},
	},
	{
		Name:  "walls",
		Rows:  7,
		Cols:  6,
		Start: at(6, 0),
		Goal:  at(0, 5),
		Blocked: []astar.Coord{
			at(4, 0), at(5, 1), at(0, 4), at(1, 5), at(2, 1),
			at(2, 2), at(2, 3), at(3, 3), at(4, 3),
		},
	},
	{
		Name:  "open",
		Rows:  5,
		Cols:  5,
		Start: at(0, 0),
		Goal:  at(4, 4),
	},
}

// Presets returns copies of the built-in scenarios.
func Presets() []Scenario {
	out := make([]Scenario, len(presets))
	for i, p := range presets {
		p.Blocked = append([]astar.Coord(nil), p.Blocked...)
		out[i] = p
	}
	return out
}

// Preset returns the built-in scenario with the given name.
func Preset(name string) (Scenario, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Scenario{}, false
}
