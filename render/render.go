// Package render prints the outputs of an astar.Pathfinder as fixed-width
// text tables: heuristic estimates, the start/end/blocked layout, closed
// cells, final costs and the solution path.
//
// Every cell is printed as a 3-character field followed by a space.
// Colour is optional and applied after padding, so columns stay aligned.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/gridpath/astar"
)

// Cell tags.
const (
	TagStart   = "SC"
	TagEnd     = "EC"
	TagBlocked = "BC"
	TagOpen    = "0"
	TagPath    = "X"
	TagClosed  = "T"
	TagOpenSet = "F"
	TagNoCost  = "-"
)

// Legend explains the tags of the Grid table.
const Legend = "0: open cell  BC: blocked cell  SC: start cell  EC: end cell"

// Printer writes tables to w. The first write error is kept and returned
// by every later call.
type Printer struct {
	w   io.Writer
	au  aurora.Aurora
	err error
}

// NewPrinter returns a Printer writing to w, with ANSI colours if colors is set.
func NewPrinter(w io.Writer, colors bool) *Printer {
	return &Printer{w: w, au: aurora.NewAurora(colors)}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// field pads s to the common cell width.
func field(s string) string { return fmt.Sprintf("%-3s ", s) }

// table prints a titled rows×cols table whose cells come from fn.
func (p *Printer) table(title string, rows, cols int, fn func(r, c int) string) {
	p.printf("%s:\n", title)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			b.WriteString(fn(r, c))
		}
		p.printf("%s\n", b.String())
	}
	p.printf("\n")
}

// layout returns the colourised tag for endpoints and blocked cells, or
// the open tag for everything else.
func (p *Printer) layout(pf *astar.Pathfinder, at astar.Coord, open func() string) string {
	switch {
	case at == pf.Start():
		return fmt.Sprint(p.au.Green(field(TagStart)))
	case at == pf.Goal():
		return fmt.Sprint(p.au.Red(field(TagEnd)))
	case pf.IsBlocked(at):
		return fmt.Sprint(p.au.Magenta(field(TagBlocked)))
	default:
		return open()
	}
}

// Heuristics prints the heuristic estimate of every cell.
func (p *Printer) Heuristics(pf *astar.Pathfinder) error {
	h := pf.HeuristicGrid()
	rows, cols := pf.Dims()
	p.table("heuristics", rows, cols, func(r, c int) string {
		return field(fmt.Sprint(h[r][c]))
	})
	return p.err
}

// Grid prints the start, end and blocked cells followed by the legend.
func (p *Printer) Grid(pf *astar.Pathfinder) error {
	rows, cols := pf.Dims()
	p.table("grid", rows, cols, func(r, c int) string {
		return p.layout(pf, astar.Coord{Row: r, Col: c}, func() string { return field(TagOpen) })
	})
	p.printf("%s\n\n", Legend)
	return p.err
}

// ClosedCells prints the visited flags of the last search as T/F.
func (p *Printer) ClosedCells(pf *astar.Pathfinder) error {
	v := pf.VisitedGrid()
	rows, cols := pf.Dims()
	p.table("closed cells", rows, cols, func(r, c int) string {
		if v[r][c] {
			return fmt.Sprint(p.au.Cyan(field(TagClosed)))
		}
		return field(TagOpenSet)
	})
	return p.err
}

// Scores prints the final cost of every cell; blocked cells print BC and
// unreached cells print "-".
func (p *Printer) Scores(pf *astar.Pathfinder) error {
	g := pf.CostGrid()
	rows, cols := pf.Dims()
	p.table("scores", rows, cols, func(r, c int) string {
		switch g[r][c] {
		case astar.BlockedCost:
			return fmt.Sprint(p.au.Magenta(field(TagBlocked)))
		case astar.Unreached:
			return field(TagNoCost)
		default:
			return field(fmt.Sprint(g[r][c]))
		}
	})
	return p.err
}

// Path reconstructs the path of the last search and prints it as a
// "->" chain followed by a grid with the solution cells marked X.
// When the goal was not reached it prints a single "NOT found" line.
func (p *Printer) Path(pf *astar.Pathfinder) error {
	path, err := pf.Path()
	if errors.Is(err, astar.ErrPathNotFound) {
		p.printf("%s\n", NotFound(pf.Start(), pf.Goal()))
		return p.err
	}
	if err != nil {
		return err
	}

	p.printf("path: %s\n\n", Chain(path))
	sol := pf.SolutionGrid()
	rows, cols := pf.Dims()
	p.table("solution", rows, cols, func(r, c int) string {
		return p.layout(pf, astar.Coord{Row: r, Col: c}, func() string {
			if sol[r][c] {
				return fmt.Sprint(p.au.Cyan(field(TagPath)))
			}
			return field(TagOpen)
		})
	})
	return p.err
}

// Report prints, in order, the grid layout, closed cells, scores and path.
// Search must have been called on pf.
func (p *Printer) Report(pf *astar.Pathfinder) error {
	for _, step := range []func(*astar.Pathfinder) error{p.Grid, p.ClosedCells, p.Scores, p.Path} {
		if err := step(pf); err != nil {
			return err
		}
	}
	return nil
}

// Chain formats a path as "(r,c) -> (r,c) -> ...".
func Chain(path []astar.Coord) string {
	parts := make([]string, len(path))
	for i, at := range path {
		parts[i] = at.String()
	}
	return strings.Join(parts, " -> ")
}

// NotFound formats the failure line for an unreachable goal.
func NotFound(start, goal astar.Coord) string {
	return fmt.Sprintf("path from %v to %v NOT found :o(", start, goal)
}
