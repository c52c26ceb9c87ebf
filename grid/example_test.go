package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridded/grid"
)

// ExampleGrid walks the typical lifecycle: provision capacity, resize with a
// fill value, write cells, insert a column and inspect a row.
func ExampleGrid() {
	// Provision storage for 9 elements; logical size starts at 0×0.
	g, _ := grid.WithCapacity[rune](grid.Sz(3, 3))

	// Resize to 2×3 and fill the new cells.
	_ = g.Resize(grid.Sz(2, 3), '.')

	// Write the top-left and bottom-right cells.
	_ = g.Set(grid.Coord(0, 0), '#')
	_ = g.Set(grid.Coord(1, 2), '#')

	// Insert a column right in the middle.
	_ = g.InsertColumn(1, []rune{'o', 'o', 'o'})

	// Iterate over the last row, coordinates included.
	row, _ := g.Row(2)
	it := row.Iterator()
	for it.Next() {
		fmt.Printf("cell %s = %c\n", it.Coordinate(), it.Value())
	}
	// Output:
	// cell (0,2) = .
	// cell (1,2) = o
	// cell (2,2) = #
}

// ExampleGrid_resize shows overlap preservation and capacity retention.
func ExampleGrid_resize() {
	g, _ := grid.FromRows([][]int{
		{1, 2},
		{3, 4},
	})
	_ = g.Resize(grid.Sz(3, 3), 0)
	fmt.Print(g)
	fmt.Println("size:", g.Size())
	// Output:
	// [1, 2, 0]
	// [3, 4, 0]
	// [0, 0, 0]
	// size: 3x3
}

// ExampleGrid_RemoveRow demonstrates the returned row and shift semantics.
func ExampleGrid_RemoveRow() {
	g, _ := grid.FromRows([][]string{
		{"a", "b"},
		{"c", "d"},
		{"e", "f"},
	})
	removed, _ := g.RemoveRow(1)
	fmt.Println("removed:", removed)
	fmt.Print(g)
	// Output:
	// removed: [c d]
	// [a, b]
	// [e, f]
}
