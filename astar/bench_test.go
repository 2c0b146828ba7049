package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
)

// BenchmarkSearch_Open measures Search on an open 512×512 grid, corner to corner.
// Complexity: O(N log N)
func BenchmarkSearch_Open(b *testing.B) {
	const n = 512
	pf, err := astar.New(n, n, astar.Coord{}, astar.Coord{Row: n - 1, Col: n - 1}, nil)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pf.Search()
	}
}

// BenchmarkSearch_Random measures Search on a 512×512 grid with ~25% blocks.
func BenchmarkSearch_Random(b *testing.B) {
	const n = 512
	rng := rand.New(rand.NewSource(42))
	start, goal := astar.Coord{}, astar.Coord{Row: n - 1, Col: n - 1}
	var blocked []astar.Coord
	for r := 0; r < n; r++ {
		for col := 0; col < n; col++ {
			at := astar.Coord{Row: r, Col: col}
			if at != start && at != goal && rng.Intn(4) == 0 {
				blocked = append(blocked, at)
			}
		}
	}
	pf, err := astar.New(n, n, start, goal, blocked)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pf.Search()
	}
}
