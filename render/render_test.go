package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/render"
)

func corner(t *testing.T, blocked ...astar.Coord) *astar.Pathfinder {
	t.Helper()
	if blocked == nil {
		blocked = []astar.Coord{{Row: 1, Col: 1}}
	}
	pf, err := astar.New(3, 3, astar.Coord{Row: 2, Col: 0}, astar.Coord{Row: 0, Col: 2}, blocked)
	require.NoError(t, err)
	return pf
}

// lines joins table rows; every row keeps its trailing field separator.
func lines(rows ...string) string { return strings.Join(rows, "\n") + "\n" }

// TestReport_Found renders the full report of the corner scenario.
func TestReport_Found(t *testing.T) {
	pf := corner(t)
	_, err := pf.Search()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.NewPrinter(&buf, false).Report(pf))

	want := lines(
		"grid:",
		"0   0   EC  ",
		"0   BC  0   ",
		"SC  0   0   ",
		"",
		render.Legend,
		"",
		"closed cells:",
		"F   T   T   ",
		"T   F   F   ",
		"T   F   F   ",
		"",
		"scores:",
		"20  24  34  ",
		"10  BC  38  ",
		"0   10  -   ",
		"",
		"path: (2,0) -> (1,0) -> (0,1) -> (0,2)",
		"",
		"solution:",
		"0   X   EC  ",
		"X   BC  0   ",
		"SC  0   0   ",
		"",
	)
	assert.Equal(t, want, buf.String())
}

// TestPath_NotFound prints the failure line for a walled-in goal.
func TestPath_NotFound(t *testing.T) {
	pf := corner(t, astar.Coord{Row: 0, Col: 1}, astar.Coord{Row: 1, Col: 1}, astar.Coord{Row: 1, Col: 2})
	_, err := pf.Search()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.NewPrinter(&buf, false).Path(pf))
	assert.Equal(t, "path from (2,0) to (0,2) NOT found :o(\n", buf.String())
}

// TestHeuristics prints the octile estimates; blocked cells show 0.
func TestHeuristics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewPrinter(&buf, false).Heuristics(corner(t)))
	assert.Equal(t, lines(
		"heuristics:",
		"20  10  0   ",
		"24  0   10  ",
		"28  24  20  ",
		"",
	), buf.String())
}

// TestColors checks that ANSI escapes appear only when enabled.
func TestColors(t *testing.T) {
	pf := corner(t)

	var plain, colored bytes.Buffer
	require.NoError(t, render.NewPrinter(&plain, false).Grid(pf))
	require.NoError(t, render.NewPrinter(&colored, true).Grid(pf))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), render.TagStart)
}

type failWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(p), nil
}

// TestPrinter_StickyError keeps the first write error.
func TestPrinter_StickyError(t *testing.T) {
	pf := corner(t)
	_, err := pf.Search()
	require.NoError(t, err)

	p := render.NewPrinter(&failWriter{n: 2}, false)
	assert.ErrorIs(t, p.Report(pf), errWrite)
	assert.ErrorIs(t, p.Err(), errWrite)
	assert.ErrorIs(t, p.Scores(pf), errWrite)
}

// TestChain formats single-cell and empty paths.
func TestChain(t *testing.T) {
	assert.Equal(t, "(1,1)", render.Chain([]astar.Coord{{Row: 1, Col: 1}}))
	assert.Equal(t, "", render.Chain(nil))
}
