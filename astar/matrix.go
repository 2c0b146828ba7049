package astar

import "fmt"

// Cell codes accepted by FromMatrix.
const (
	CellRoad    = 0
	CellBarrier = 1
	CellStart   = 2
	CellGoal    = 3
)

// FromMatrix builds a Pathfinder from a non-empty, rectangular matrix of
// cell codes indexed [row][col]. Exactly one CellStart and one CellGoal
// must be present; CellBarrier cells become blocked.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownCellCode,
// ErrMissingEndpoint or ErrDuplicateEndpoint, plus anything New returns.
// Complexity: O(rows×cols).
func FromMatrix(values [][]int, opts ...Option) (*Pathfinder, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	var (
		start, goal   Coord
		starts, goals int
		blocked       []Coord
	)
	for r, row := range values {
		for c, v := range row {
			at := Coord{Row: r, Col: c}
			switch v {
			case CellRoad:
			case CellBarrier:
				blocked = append(blocked, at)
			case CellStart:
				start = at
				starts++
			case CellGoal:
				goal = at
				goals++
			default:
				return nil, fmt.Errorf("%w: %d at %v", ErrUnknownCellCode, v, at)
			}
		}
	}
	if starts == 0 || goals == 0 {
		return nil, ErrMissingEndpoint
	}
	if starts > 1 || goals > 1 {
		return nil, fmt.Errorf("%w: %d starts, %d goals", ErrDuplicateEndpoint, starts, goals)
	}

	return New(rows, cols, start, goal, blocked, opts...)
}
