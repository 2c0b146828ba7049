package astar

import (
	"container/heap"
	"fmt"
)

// Search runs A* from the start cell to the goal cell.
//
// Steps:
//  1. Reset every cell's cost, parent, visited and solution flags, so the
//     same Pathfinder can be searched repeatedly with identical results.
//  2. Push start with priority 0 + h(start).
//  3. Pop the lowest-priority entry; skip it if the cell is already visited.
//  4. Mark the cell visited; stop if it is the goal.
//  5. Relax the up to 8 neighbors that are in bounds, open and unvisited.
//
// An exhausted frontier is not an error: Result.Found is false and Start
// and Goal identify the failed query. An error is returned only when the
// context is done (wrapping ctx.Err()) or MaxExpansions is exhausted
// (ErrExpansionLimit); Result then carries the counters reached so far.
//
// Diagonal moves may cut between two blocked orthogonal neighbors.
//
// Complexity:
//
//   - Time:  O(N log N), N = rows×cols (each cell pushes at most 8 entries).
//   - Space: O(N) cells plus O(8N) frontier entries in the worst case.
func (pf *Pathfinder) Search() (Result, error) {
	pf.reset()

	r := &runner{
		pf:      pf,
		options: pf.options,
		pq:      make(frontier, 0, pf.rows+pf.cols),
		goal:    pf.index(pf.goal),
	}
	r.init()
	err := r.process()

	res := Result{
		Found:    r.found,
		Start:    pf.start,
		Goal:     pf.goal,
		Expanded: r.expanded,
		Pushed:   r.pushed,
		Stale:    r.stale,
	}
	if r.found {
		res.Cost = pf.cells[r.goal].Cost
	}

	return res, err
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	pf       *Pathfinder // grid arena; cell fields are mutated in place
	options  Options     // hooks, context and expansion cap
	pq       frontier    // lazy min-heap
	goal     int         // goal cell index
	found    bool
	expanded int
	pushed   int
	stale    int
}

// init seeds the frontier with the start cell.
func (r *runner) init() {
	heap.Init(&r.pq)
	s := r.pf.index(r.pf.start)
	r.push(s, 0)
}

// process is the main loop. It returns nil both when the goal is reached
// and when the frontier runs dry.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("astar: search interrupted after %d expansions: %w", r.expanded, err)
		}

		item := heap.Pop(&r.pq).(*frontierItem)
		u := item.index
		cell := &r.pf.cells[u]

		// Stale duplicate of an already finalized cell.
		if cell.Visited {
			r.stale++
			continue
		}

		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return fmt.Errorf("%w: %d cells finalized", ErrExpansionLimit, r.expanded)
		}

		cell.Visited = true
		r.expanded++
		r.options.OnVisit(cell.Coord, cell.Cost)

		if u == r.goal {
			r.found = true
			return nil
		}
		r.relax(u)
	}

	return nil
}

// relax tries to improve the cost of every traversable neighbor of u.
// Assumes cells[u].Cost is final.
func (r *runner) relax(u int) {
	pf := r.pf
	from := pf.cells[u].Coord
	base := pf.cells[u].Cost

	for _, s := range neighborSteps {
		to := Coord{Row: from.Row + s.dr, Col: from.Col + s.dc}
		if !pf.InBounds(to) {
			continue
		}
		v := pf.index(to)
		nb := &pf.cells[v]
		if nb.Blocked || nb.Visited {
			continue
		}

		// Strictly cheaper only; undiscovered cells hold Unreached.
		candidate := base + s.cost
		if candidate >= nb.Cost {
			continue
		}
		nb.Cost = candidate
		nb.Parent = u
		r.options.OnRelax(from, to, candidate)

		// No decrease-key: the old entry for v, if any, goes stale.
		r.push(v, candidate)
	}
}

// push inserts cell idx with the given path cost.
func (r *runner) push(idx, cost int) {
	h := r.pf.cells[idx].Heuristic
	heap.Push(&r.pq, &frontierItem{
		index:     idx,
		priority:  cost + h,
		heuristic: h,
	})
	r.pushed++
}
