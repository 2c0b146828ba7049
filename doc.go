// Package gridpath is an A* pathfinder for 8-connected grids, with the
// tools around it to run, print and serve searches.
//
// 🚀 What is gridpath?
//
//	A small, deterministic shortest-path engine plus its drivers:
//		• Core: A* with orthogonal cost 10, diagonal cost 14, a lazy-deletion
//		  frontier and parent-index path reconstruction
//		• Heuristics: octile (default), Manhattan ×10, unscaled Manhattan
//		• Diagnostics: heuristic, visited, cost and solution grids
//		• Hardening: context cancellation, expansion caps, OnVisit/OnRelax hooks
//
// Under the hood, everything is organized under four subpackages:
//
//	astar/       grid, frontier, Search, Path and the diagnostic views
//	render/      text tables of a search (optionally coloured)
//	scenario/    "row,col" parsing, validation and the built-in demo grids
//	server/      chi HTTP API with zap request logs and prometheus metrics
//
// and one command:
//
//	cmd/gridpath run a scenario in the terminal or serve the API
//
// Quick ASCII example (S start, E end, # blocked, * path):
//
//	. * E
//	* # .
//	S . .
//
// The path S → (1,0) → (0,1) → E costs 10 + 14 + 10 = 34.
//
//	go run github.com/katalvlaran/gridpath/cmd/gridpath -preset corner
package gridpath
