package grid

// Iterator lazily walks a rectangular window of a Grid in row-major order.
// The whole grid, a single row, a single column and an arbitrary
// sub-rectangle are all windows; every element is paired with its grid
// Coordinate, so enumeration order and positions travel together.
//
// Usage follows the scanner idiom:
//
//	it := g.Iterator()
//	for it.Next() {
//		c, v := it.Coordinate(), it.Value()
//		// ...
//	}
//	if err := it.Err(); err != nil {
//		// the parent grid was structurally mutated mid-iteration
//	}
//
// An iterator is finite and single-use; request a fresh one to restart.
// Structural mutation of the parent grid during iteration makes the next
// Next call return false with Err reporting ErrStaleView.
type Iterator[T any] struct {
	grid   *Grid[T]
	gen    uint64
	origin Coordinate // top-left cell of the window
	window Size
	pos    int // linear position within the window, -1 before the first Next
	err    error
}

// Iterator returns a fresh iterator over every cell of the grid in
// row-major order.
// Complexity: O(1).
func (g *Grid[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{grid: g, gen: g.gen, window: g.size, pos: -1}
}

// RectIterator returns a fresh iterator over the sub-rectangle anchored at
// topLeft spanning window, in row-major order. The rectangle must lie fully
// inside the logical size; returns ErrOutOfBounds otherwise.
// Complexity: O(1).
func (g *Grid[T]) RectIterator(topLeft Coordinate, window Size) (*Iterator[T], error) {
	if window.Width < 0 || window.Height < 0 {
		return nil, coordErrorf("RectIterator", topLeft)
	}
	if topLeft.Column < 0 || topLeft.Row < 0 ||
		topLeft.Column+window.Width > g.size.Width ||
		topLeft.Row+window.Height > g.size.Height {
		return nil, coordErrorf("RectIterator", topLeft)
	}
	return &Iterator[T]{grid: g, gen: g.gen, origin: topLeft, window: window, pos: -1}, nil
}

// Next advances to the next cell. It returns false when the window is
// exhausted or when the parent grid was structurally mutated since the
// iterator was created; distinguish the two with Err.
// Complexity: O(1).
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.grid == nil || it.grid.gen != it.gen {
		it.err = ErrStaleView
		return false
	}
	if it.pos+1 >= it.window.Count() {
		return false
	}
	it.pos++
	return true
}

// Coordinate returns the grid coordinate of the current cell. Valid only
// after Next has returned true.
// Complexity: O(1).
func (it *Iterator[T]) Coordinate() Coordinate {
	if it.pos < 0 || it.window.Width == 0 {
		return it.origin
	}
	return Coord(it.origin.Column+it.pos%it.window.Width, it.origin.Row+it.pos/it.window.Width)
}

// Value returns the element at the current cell. Valid only after Next has
// returned true.
// Complexity: O(1).
func (it *Iterator[T]) Value() T {
	if it.pos < 0 || it.err != nil || it.grid.gen != it.gen {
		var zero T
		return zero
	}
	return it.grid.data[it.grid.index(it.Coordinate())]
}

// Err reports whether iteration terminated abnormally. The only abnormal
// termination is ErrStaleView: the parent grid was structurally mutated
// while this iterator was live.
func (it *Iterator[T]) Err() error {
	return it.err
}
