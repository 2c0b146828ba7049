package astar

// HeuristicGrid returns the per-cell heuristic estimate, [row][col].
// Values depend on the heuristic selected with WithHeuristic (octile by
// default; see HeuristicKind). Blocked cells hold 0.
func (pf *Pathfinder) HeuristicGrid() [][]int {
	out := make([][]int, pf.rows)
	for r := range out {
		out[r] = make([]int, pf.cols)
		for c := range out[r] {
			out[r][c] = pf.cells[r*pf.cols+c].Heuristic
		}
	}
	return out
}

// VisitedGrid returns the closed-set flags of the last Search, [row][col].
func (pf *Pathfinder) VisitedGrid() [][]bool {
	return pf.boolGrid(func(c *Cell) bool { return c.Visited })
}

// SolutionGrid returns the cells flagged by the last Path call, [row][col].
func (pf *Pathfinder) SolutionGrid() [][]bool {
	return pf.boolGrid(func(c *Cell) bool { return c.Solution })
}

// CostGrid returns the best known cost of every cell, [row][col].
// Blocked cells hold BlockedCost; cells never reached hold Unreached.
func (pf *Pathfinder) CostGrid() [][]int {
	out := make([][]int, pf.rows)
	for r := range out {
		out[r] = make([]int, pf.cols)
		for c := range out[r] {
			cell := &pf.cells[r*pf.cols+c]
			if cell.Blocked {
				out[r][c] = BlockedCost
				continue
			}
			out[r][c] = cell.Cost
		}
	}
	return out
}

func (pf *Pathfinder) boolGrid(pick func(*Cell) bool) [][]bool {
	out := make([][]bool, pf.rows)
	for r := range out {
		out[r] = make([]bool, pf.cols)
		for c := range out[r] {
			out[r][c] = pick(&pf.cells[r*pf.cols+c])
		}
	}
	return out
}
