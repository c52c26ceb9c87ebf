package traverse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridded/grid"
	"github.com/katalvlaran/gridded/traverse"
)

// TestFloodFill_UniformGrid verifies that on a grid of one value, a fill
// started anywhere visits and replaces every cell exactly once.
func TestFloodFill_UniformGrid(t *testing.T) {
	starts := []grid.Coordinate{grid.Coord(0, 0), grid.Coord(2, 1), grid.Coord(3, 2)}
	for _, start := range starts {
		g, err := grid.WithSize(grid.Sz(4, 3), 'a')
		require.NoError(t, err)

		res, err := traverse.FloodFill(g, start, 'b')
		require.NoError(t, err)
		require.Len(t, res.Filled, 12, "start %s", start)

		seen := make(map[grid.Coordinate]bool)
		for _, c := range res.Filled {
			require.False(t, seen[c], "coordinate %s visited twice", c)
			seen[c] = true
		}
		for _, v := range g.Values() {
			require.Equal(t, 'b', v)
		}
	}
}

// TestFloodFill_Region verifies the fill stops at non-matching cells.
func TestFloodFill_Region(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 1, 0},
		{0, 1, 0},
		{0, 1, 1},
	})
	require.NoError(t, err)

	res, err := traverse.FloodFill(g, grid.Coord(1, 0), 9)
	require.NoError(t, err)
	require.Len(t, res.Filled, 5)
	require.Equal(t, []int{9, 9, 0, 0, 9, 0, 0, 9, 9}, g.Values())
}

// TestFloodFill_Conn8CrossesDiagonals verifies diagonal reachability.
func TestFloodFill_Conn8CrossesDiagonals(t *testing.T) {
	rows := [][]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	g4, _ := grid.FromRows(rows)
	res, err := traverse.FloodFill(g4, grid.Coord(0, 0), 5)
	require.NoError(t, err)
	require.Len(t, res.Filled, 1, "Conn4 must not cross diagonals")

	g8, _ := grid.FromRows(rows)
	res, err = traverse.FloodFill(g8, grid.Coord(0, 0), 5, traverse.WithConnectivity(traverse.Conn8))
	require.NoError(t, err)
	require.Len(t, res.Filled, 3)
	require.Equal(t, []int{5, 0, 0, 0, 5, 0, 0, 0, 5}, g8.Values())
}

// TestFloodFill_SameReplacement verifies termination when the replacement
// equals the target value.
func TestFloodFill_SameReplacement(t *testing.T) {
	g, _ := grid.WithSize(grid.Sz(3, 3), 7)
	res, err := traverse.FloodFill(g, grid.Coord(1, 1), 7)
	require.NoError(t, err)
	require.Len(t, res.Filled, 9)
}

// TestFloodFillFunc_Predicate fills through a predicate and replacement
// function instead of equality.
func TestFloodFillFunc_Predicate(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 2, 9},
		{3, 9, 9},
		{4, 5, 6},
	})
	require.NoError(t, err)

	res, err := traverse.FloodFillFunc(g,
		grid.Coord(0, 0),
		func(v int) bool { return v < 9 },
		func(v int) int { return v * 10 },
	)
	require.NoError(t, err)
	require.Len(t, res.Filled, 6)
	require.Equal(t, []int{10, 20, 9, 30, 9, 9, 40, 50, 60}, g.Values())
}

// TestFloodFillFunc_StartNotMatching verifies an empty result when the start
// cell fails the predicate.
func TestFloodFillFunc_StartNotMatching(t *testing.T) {
	g, _ := grid.WithSize(grid.Sz(2, 2), 5)
	res, err := traverse.FloodFillFunc(g,
		grid.Coord(0, 0),
		func(v int) bool { return v == 1 },
		func(int) int { return 0 },
	)
	require.NoError(t, err)
	require.Empty(t, res.Filled)
	require.Equal(t, []int{5, 5, 5, 5}, g.Values())
}

// TestFloodFill_Errors verifies the error taxonomy.
func TestFloodFill_Errors(t *testing.T) {
	g, _ := grid.WithSize(grid.Sz(2, 2), 0)

	_, err := traverse.FloodFill[int](nil, grid.Coord(0, 0), 1)
	require.ErrorIs(t, err, traverse.ErrGridNil)

	_, err = traverse.FloodFill(g, grid.Coord(5, 5), 1)
	require.ErrorIs(t, err, traverse.ErrOutOfBounds)

	_, err = traverse.FloodFill(g, grid.Coord(0, 0), 1, traverse.WithConnectivity(traverse.Connectivity(3)))
	require.ErrorIs(t, err, traverse.ErrOptionViolation)

	_, err = traverse.FloodFillFunc(g, grid.Coord(0, 0), nil, func(v int) int { return v })
	require.ErrorIs(t, err, traverse.ErrNilCallback)
}

// TestFloodFill_ContextCancellation verifies a cancelled context aborts the
// fill.
func TestFloodFill_ContextCancellation(t *testing.T) {
	g, _ := grid.WithSize(grid.Sz(16, 16), 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := traverse.FloodFill(g, grid.Coord(0, 0), 1, traverse.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestFloodFill_OnVisitHook verifies the hook fires once per filled cell.
func TestFloodFill_OnVisitHook(t *testing.T) {
	g, _ := grid.WithSize(grid.Sz(3, 2), 0)
	var visited []grid.Coordinate

	res, err := traverse.FloodFill(g, grid.Coord(0, 0), 1,
		traverse.WithOnVisit(func(c grid.Coordinate) { visited = append(visited, c) }))
	require.NoError(t, err)
	require.Equal(t, res.Filled, visited)
	require.Len(t, visited, 6)
}
