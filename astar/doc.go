// Package astar implements A* search for a minimum-cost path between two
// cells of a bounded, 8-connected grid with impassable cells.
//
// What:
//
//   - Pathfinder owns a rows×cols arena of Cell records addressed by
//     row-major index; parent links are indices, not pointers.
//   - Orthogonal steps cost OrthogonalCost (10), diagonal steps cost
//     DiagonalCost (14). Diagonals may cut between two blocked corners.
//   - The frontier is a min-heap ordered by cost+heuristic with lazy
//     deletion: improved cells are pushed again and stale entries are
//     dropped at pop time by the Visited check.
//   - Ties are broken by smaller heuristic, then by (row, col), so every
//     query returns the same path on every run.
//
// Outputs:
//
//   - Search: Result{Found, Start, Goal, Cost, Expanded, Pushed, Stale}.
//   - Path: coordinates from start to goal, or ErrPathNotFound.
//   - HeuristicGrid, VisitedGrid, CostGrid, SolutionGrid for presentation.
//
// Heuristics:
//
//   - Octile (default): admissible and consistent, paths are optimal and no
//     visited cell is ever reopened.
//   - Manhattan: (dr+dc)·10. Overestimates diagonal travel.
//   - ManhattanUnscaled: dr+dc, the estimate of the classic demo.
//
// Options:
//
//   - WithContext, WithMaxExpansions: bound a search on large grids.
//   - WithOnVisit, WithOnRelax: instrumentation hooks.
//
// Errors:
//
//   - ErrInvalidConfiguration and its children from New / FromMatrix.
//   - ErrPathNotFound from Path.
//   - ErrExpansionLimit or a wrapped ctx.Err() from Search.
//
// Complexity: O(N log N) time, O(N) memory, N = rows×cols.
package astar
