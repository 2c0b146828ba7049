// Package astar defines core types, cost constants, sentinel errors and
// configuration options for A* search on a bounded 8-connected grid.
package astar

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Step costs of the grid. A diagonal step costs 14 ≈ 10·√2, so every cost
// and every heuristic value in this package is expressed in tenths of an
// orthogonal step.
const (
	// OrthogonalCost is the cost of a vertical or horizontal step.
	OrthogonalCost = 10
	// DiagonalCost is the cost of a diagonal step.
	DiagonalCost = 14
)

// Sentinel cost values exposed through CostGrid.
const (
	// Unreached marks a cell whose cost was never relaxed.
	Unreached = math.MaxInt
	// BlockedCost marks a blocked cell in CostGrid.
	BlockedCost = -1
)

// MaxCells is the largest rows×cols grid New accepts.
const MaxCells = 1 << 26

// Sentinel errors for pathfinder construction and search.
var (
	// ErrInvalidConfiguration is the parent of every construction error.
	ErrInvalidConfiguration = errors.New("astar: invalid configuration")

	// ErrBadDimensions indicates a non-positive row or column count.
	ErrBadDimensions = fmt.Errorf("%w: grid dimensions must be positive and at most MaxCells in total", ErrInvalidConfiguration)

	// ErrOutOfBounds indicates a start, goal or blocked coordinate outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: coordinate out of bounds", ErrInvalidConfiguration)

	// ErrBlockedEndpoint indicates that the start or goal lies on a blocked cell.
	ErrBlockedEndpoint = fmt.Errorf("%w: start or goal is blocked", ErrInvalidConfiguration)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("%w: invalid option supplied", ErrInvalidConfiguration)

	// ErrEmptyGrid indicates a cell matrix with no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrInvalidConfiguration)

	// ErrNonRectangular indicates matrix rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidConfiguration)

	// ErrUnknownCellCode indicates a matrix value outside CellRoad..CellGoal.
	ErrUnknownCellCode = fmt.Errorf("%w: unknown cell code", ErrInvalidConfiguration)

	// ErrMissingEndpoint indicates a matrix without a start or a goal cell.
	ErrMissingEndpoint = fmt.Errorf("%w: matrix has no start or no goal cell", ErrInvalidConfiguration)

	// ErrDuplicateEndpoint indicates a matrix with more than one start or goal cell.
	ErrDuplicateEndpoint = fmt.Errorf("%w: matrix has more than one start or goal cell", ErrInvalidConfiguration)

	// ErrPathNotFound is returned by Path when the goal was never reached.
	ErrPathNotFound = errors.New("astar: path not found")

	// ErrExpansionLimit is returned by Search when MaxExpansions is exhausted.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is a single grid record.
//
// Heuristic is fixed at construction. Cost, Parent, Visited and Solution
// are rewritten by every Search and Path call. Parent is a row-major index
// into the grid (-1 when unset), never an owning reference.
type Cell struct {
	Coord     Coord
	Heuristic int
	Cost      int
	Parent    int
	Blocked   bool
	Visited   bool
	Solution  bool
}

// HeuristicKind selects the remaining-cost estimate.
type HeuristicKind int

const (
	// Octile is 10·max(dr,dc) + 4·min(dr,dc): the exact cost on an empty
	// grid, admissible and consistent for 10/14 steps.
	Octile HeuristicKind = iota
	// Manhattan is (dr+dc)·OrthogonalCost. It overestimates diagonal
	// travel, so returned paths are not guaranteed optimal.
	Manhattan
	// ManhattanUnscaled is dr+dc in unit steps, the estimate used by the
	// classic 10/14 grid demo.
	ManhattanUnscaled
)

var heuristicNames = map[HeuristicKind]string{
	Octile:            "octile",
	Manhattan:         "manhattan",
	ManhattanUnscaled: "manhattan-unscaled",
}

// String returns the canonical heuristic name.
func (k HeuristicKind) String() string {
	if name, ok := heuristicNames[k]; ok {
		return name
	}
	return fmt.Sprintf("HeuristicKind(%d)", int(k))
}

// ParseHeuristic maps a canonical name back to its HeuristicKind.
// The empty string selects Octile.
func ParseHeuristic(name string) (HeuristicKind, error) {
	if name == "" {
		return Octile, nil
	}
	for k, n := range heuristicNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown heuristic %q", ErrOptionViolation, name)
}

// estimate returns the heuristic distance between two coordinates.
func (k HeuristicKind) estimate(from, to Coord) int {
	dr, dc := abs(from.Row-to.Row), abs(from.Col-to.Col)
	switch k {
	case Manhattan:
		return (dr + dc) * OrthogonalCost
	case ManhattanUnscaled:
		return dr + dc
	default:
		lo, hi := dr, dc
		if lo > hi {
			lo, hi = hi, lo
		}
		return OrthogonalCost*hi + (DiagonalCost-OrthogonalCost)*lo
	}
}

// Option configures a Pathfinder via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// Heuristic selects the remaining-cost estimate.
	Heuristic HeuristicKind

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit after
	// that many cells have been finalized without reaching the goal.
	MaxExpansions int

	// OnVisit is called when a cell is finalized, with its final cost.
	OnVisit func(c Coord, cost int)

	// OnRelax is called whenever a cheaper route to a cell is recorded.
	OnRelax func(from, to Coord, cost int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Octile heuristic
//   - no expansion cap
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heuristic:     Octile,
		MaxExpansions: 0,
		OnVisit:       func(Coord, int) {},
		OnRelax:       func(Coord, Coord, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the heuristic estimate.
func WithHeuristic(k HeuristicKind) Option {
	return func(o *Options) {
		if _, ok := heuristicNames[k]; !ok {
			o.err = fmt.Errorf("%w: unknown heuristic %d", ErrOptionViolation, int(k))
			return
		}
		o.Heuristic = k
	}
}

// WithMaxExpansions caps the number of finalized cells.
//
//	n > 0: abort after n expansions
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnVisit registers a callback run when a cell is finalized.
func WithOnVisit(fn func(c Coord, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRelax registers a callback run on every successful relaxation.
func WithOnRelax(fn func(from, to Coord, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Result summarizes one Search call.
type Result struct {
	// Found reports whether the goal was reached.
	Found bool
	// Start and Goal echo the endpoints, for "no path" reporting.
	Start, Goal Coord
	// Cost is the goal's total cost when Found, otherwise zero.
	Cost int
	// Expanded counts finalized cells.
	Expanded int
	// Pushed counts frontier insertions, stale duplicates included.
	Pushed int
	// Stale counts popped entries discarded by the visited check.
	Stale int
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
