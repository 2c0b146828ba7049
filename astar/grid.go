package astar

import "fmt"

// step is a precomputed neighbor offset with its move cost.
type step struct {
	dr, dc int
	cost   int
}

// neighborSteps lists the 8 neighbors: the top three, left, right, then the
// bottom three. Should be used in all adjacency traversals to avoid branching.
var neighborSteps = [8]step{
	{-1, 0, OrthogonalCost}, {-1, -1, DiagonalCost}, {-1, 1, DiagonalCost},
	{0, -1, OrthogonalCost}, {0, 1, OrthogonalCost},
	{1, 0, OrthogonalCost}, {1, -1, DiagonalCost}, {1, 1, DiagonalCost},
}

// Pathfinder owns a rows×cols grid of cells, the endpoints and the search
// state. It is not safe for concurrent use.
type Pathfinder struct {
	rows, cols  int
	start, goal Coord
	cells       []Cell
	options     Options
}

// New constructs a Pathfinder for a rows×cols grid.
//
// Validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. rows and cols must be positive and rows×cols at most MaxCells
//     (ErrBadDimensions).
//  3. start, goal and every blocked coordinate must be in bounds (ErrOutOfBounds).
//  4. start and goal must not be blocked (ErrBlockedEndpoint).
//
// Duplicate blocked coordinates are accepted. Every returned error wraps
// ErrInvalidConfiguration.
// Complexity: O(rows×cols + len(blocked)) time and memory.
func New(rows, cols int, start, goal Coord, blocked []Coord, opts ...Option) (*Pathfinder, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	// Division keeps the check free of overflow.
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %d×%d exceeds %d cells", ErrBadDimensions, rows, cols, MaxCells)
	}

	pf := &Pathfinder{
		rows:    rows,
		cols:    cols,
		start:   start,
		goal:    goal,
		cells:   make([]Cell, rows*cols),
		options: cfg,
	}
	if !pf.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %d×%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !pf.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v in %d×%d grid", ErrOutOfBounds, goal, rows, cols)
	}

	for i := range pf.cells {
		pf.cells[i].Coord = pf.coordinate(i)
	}
	for _, b := range blocked {
		if !pf.InBounds(b) {
			return nil, fmt.Errorf("%w: blocked cell %v in %d×%d grid", ErrOutOfBounds, b, rows, cols)
		}
		if b == start || b == goal {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, b)
		}
		pf.cells[pf.index(b)].Blocked = true
	}
	for i := range pf.cells {
		c := &pf.cells[i]
		if !c.Blocked {
			c.Heuristic = cfg.Heuristic.estimate(c.Coord, goal)
		}
	}
	pf.reset()

	return pf, nil
}

// reset restores every mutable cell field to its pre-search state.
func (pf *Pathfinder) reset() {
	for i := range pf.cells {
		c := &pf.cells[i]
		c.Cost = Unreached
		c.Parent = -1
		c.Visited = false
		c.Solution = false
	}
	pf.cells[pf.index(pf.start)].Cost = 0
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (pf *Pathfinder) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < pf.rows && c.Col >= 0 && c.Col < pf.cols
}

// Dims returns the number of rows and columns.
func (pf *Pathfinder) Dims() (rows, cols int) {
	return pf.rows, pf.cols
}

// Start returns the start coordinate.
func (pf *Pathfinder) Start() Coord { return pf.start }

// Goal returns the goal coordinate.
func (pf *Pathfinder) Goal() Coord { return pf.goal }

// Heuristic returns the heuristic the pathfinder was built with.
func (pf *Pathfinder) Heuristic() HeuristicKind { return pf.options.Heuristic }

// IsBlocked reports whether c is an in-bounds blocked cell.
func (pf *Pathfinder) IsBlocked(c Coord) bool {
	return pf.InBounds(c) && pf.cells[pf.index(c)].Blocked
}

// Cell returns a copy of the cell at c. ok is false when c is out of bounds.
func (pf *Pathfinder) Cell(c Coord) (cell Cell, ok bool) {
	if !pf.InBounds(c) {
		return Cell{}, false
	}
	return pf.cells[pf.index(c)], true
}

// index maps c to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (pf *Pathfinder) index(c Coord) int {
	return c.Row*pf.cols + c.Col
}

// coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (pf *Pathfinder) coordinate(idx int) Coord {
	return Coord{Row: idx / pf.cols, Col: idx % pf.cols}
}
