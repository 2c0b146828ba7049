package astar

import "fmt"

// Path reconstructs the route found by the last Search, ordered from start
// to goal, and flags every cell on it as Solution.
//
// Returns ErrPathNotFound if Search has not reached the goal. When start
// equals goal the path is the single start cell.
// Complexity: O(L), L = path length.
func (pf *Pathfinder) Path() ([]Coord, error) {
	g := pf.index(pf.goal)
	if !pf.cells[g].Visited {
		return nil, fmt.Errorf("%w: from %v to %v", ErrPathNotFound, pf.start, pf.goal)
	}

	var path []Coord
	for at := g; at >= 0; at = pf.cells[at].Parent {
		pf.cells[at].Solution = true
		path = append(path, pf.cells[at].Coord)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathCost sums the step costs along a path of adjacent coordinates.
// It does not check blocked cells or bounds.
func PathCost(path []Coord) int {
	total := 0
	for i := 1; i < len(path); i++ {
		if path[i].Row != path[i-1].Row && path[i].Col != path[i-1].Col {
			total += DiagonalCost
		} else {
			total += OrthogonalCost
		}
	}
	return total
}
