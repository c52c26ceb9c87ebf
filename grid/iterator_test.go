package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridded/grid"
)

// collect drains an iterator into coordinate and value slices.
func collect(it *grid.Iterator[int]) ([]grid.Coordinate, []int, error) {
	var coords []grid.Coordinate
	var vals []int
	for it.Next() {
		coords = append(coords, it.Coordinate())
		vals = append(vals, it.Value())
	}
	return coords, vals, it.Err()
}

// TestIterator_RowMajorOrder verifies whole-grid iteration yields every cell
// in row-major order, paired with its coordinate.
func TestIterator_RowMajorOrder(t *testing.T) {
	g, _ := grid.FromRows([][]int{{1, 2}, {3, 4}})
	coords, vals, err := collect(g.Iterator())
	if err != nil {
		t.Fatalf("Err() = %v; want nil", err)
	}
	wantCoords := []grid.Coordinate{
		grid.Coord(0, 0), grid.Coord(1, 0),
		grid.Coord(0, 1), grid.Coord(1, 1),
	}
	wantVals := []int{1, 2, 3, 4}
	if len(coords) != 4 {
		t.Fatalf("visited %d cells; want 4", len(coords))
	}
	for i := range wantVals {
		if coords[i] != wantCoords[i] || vals[i] != wantVals[i] {
			t.Errorf("cell %d = %s:%d; want %s:%d", i, coords[i], vals[i], wantCoords[i], wantVals[i])
		}
	}
}

// TestIterator_RowAndColumn verifies the row and column windows.
func TestIterator_RowAndColumn(t *testing.T) {
	g, _ := grid.FromRows([][]int{{1, 2}, {3, 4}})

	row, _ := g.Row(0)
	_, vals, err := collect(row.Iterator())
	if err != nil {
		t.Fatalf("row iterator Err() = %v", err)
	}
	if len(vals) != 2 || vals[0] != 1 || vals[1] != 2 {
		t.Errorf("row 0 values = %v; want [1 2]", vals)
	}

	col, _ := g.Column(1)
	coords, vals, err := collect(col.Iterator())
	if err != nil {
		t.Fatalf("column iterator Err() = %v", err)
	}
	if len(vals) != 2 || vals[0] != 2 || vals[1] != 4 {
		t.Errorf("column 1 values = %v; want [2 4]", vals)
	}
	if coords[1] != grid.Coord(1, 1) {
		t.Errorf("column 1 coords[1] = %s; want (1,1)", coords[1])
	}
}

// TestIterator_Rect verifies sub-rectangle iteration and bounds validation.
func TestIterator_Rect(t *testing.T) {
	g, _ := grid.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	it, err := g.RectIterator(grid.Coord(1, 1), grid.Sz(2, 2))
	if err != nil {
		t.Fatalf("RectIterator error: %v", err)
	}
	coords, vals, err := collect(it)
	if err != nil {
		t.Fatalf("Err() = %v", err)
	}
	wantVals := []int{5, 6, 8, 9}
	for i, want := range wantVals {
		if vals[i] != want {
			t.Errorf("rect vals[%d] = %d; want %d", i, vals[i], want)
		}
	}
	if coords[0] != grid.Coord(1, 1) || coords[3] != grid.Coord(2, 2) {
		t.Errorf("rect coords = %v; want (1,1)..(2,2)", coords)
	}

	if _, err = g.RectIterator(grid.Coord(2, 2), grid.Sz(2, 2)); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("overflowing rect error = %v; want ErrOutOfBounds", err)
	}
	if _, err = g.RectIterator(grid.Coord(-1, 0), grid.Sz(1, 1)); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("negative rect origin error = %v; want ErrOutOfBounds", err)
	}
}

// TestIterator_StaleMidIteration verifies a structural mutation stops the
// iterator with ErrStaleView.
func TestIterator_StaleMidIteration(t *testing.T) {
	g, _ := grid.FromRows([][]int{{1, 2}, {3, 4}})
	it := g.Iterator()
	if !it.Next() {
		t.Fatal("first Next() = false; want true")
	}
	if err := g.InsertRow(0, []int{9, 9}); err != nil {
		t.Fatalf("InsertRow error: %v", err)
	}
	if it.Next() {
		t.Error("Next() after mutation = true; want false")
	}
	if !errors.Is(it.Err(), grid.ErrStaleView) {
		t.Errorf("Err() = %v; want ErrStaleView", it.Err())
	}
}

// TestIterator_Restartable verifies a fresh iterator replays the sequence.
func TestIterator_Restartable(t *testing.T) {
	g, _ := grid.FromRows([][]int{{1, 2}})
	for round := 0; round < 2; round++ {
		_, vals, err := collect(g.Iterator())
		if err != nil {
			t.Fatalf("round %d Err() = %v", round, err)
		}
		if len(vals) != 2 || vals[0] != 1 || vals[1] != 2 {
			t.Errorf("round %d vals = %v; want [1 2]", round, vals)
		}
	}
}

// TestIterator_EmptyGrid verifies iteration over an empty grid terminates
// immediately without error.
func TestIterator_EmptyGrid(t *testing.T) {
	g := grid.New[int]()
	it := g.Iterator()
	if it.Next() {
		t.Error("Next() on empty grid = true; want false")
	}
	if it.Err() != nil {
		t.Errorf("Err() = %v; want nil", it.Err())
	}
}
