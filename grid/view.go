package grid

// Row is a non-owning view over one row of a Grid. It borrows the grid's
// buffer without copying: access is contiguous and O(1). The view captures
// the grid's mutation generation at creation; any subsequent structural
// mutation of the parent invalidates it, and every later access fails with
// ErrStaleView instead of reading relocated data.
type Row[T any] struct {
	grid   *Grid[T]
	index  int
	length int
	gen    uint64
}

// Row returns a view over the row at index.
// Returns ErrOutOfBounds when index >= Height.
// Complexity: O(1).
func (g *Grid[T]) Row(index int) (Row[T], error) {
	if index < 0 || index >= g.size.Height {
		return Row[T]{}, indexErrorf("Row", index)
	}
	return Row[T]{grid: g, index: index, length: g.size.Width, gen: g.gen}, nil
}

// Index returns the row index this view was created for.
func (v Row[T]) Index() int { return v.index }

// Len returns the number of elements in the row (the grid width at creation).
func (v Row[T]) Len() int { return v.length }

// At returns the element at position i within the row.
// Returns ErrStaleView after a structural mutation of the parent grid,
// ErrOutOfBounds when i >= Len.
// Complexity: O(1).
func (v Row[T]) At(i int) (T, error) {
	var zero T
	if v.grid == nil || v.grid.gen != v.gen {
		return zero, ErrStaleView
	}
	if i < 0 || i >= v.length {
		return zero, indexErrorf("Row.At", i)
	}
	return v.grid.data[v.index*v.length+i], nil
}

// Set assigns value at position i within the row.
// Returns ErrStaleView after a structural mutation of the parent grid,
// ErrOutOfBounds when i >= Len.
// Complexity: O(1).
func (v Row[T]) Set(i int, value T) error {
	if v.grid == nil || v.grid.gen != v.gen {
		return ErrStaleView
	}
	if i < 0 || i >= v.length {
		return indexErrorf("Row.Set", i)
	}
	v.grid.data[v.index*v.length+i] = value
	return nil
}

// Values returns a copy of the row's elements in column order.
// Returns ErrStaleView after a structural mutation of the parent grid.
// Complexity: O(W).
func (v Row[T]) Values() ([]T, error) {
	if v.grid == nil || v.grid.gen != v.gen {
		return nil, ErrStaleView
	}
	out := make([]T, v.length)
	copy(out, v.grid.data[v.index*v.length:(v.index+1)*v.length])
	return out, nil
}

// Iterator returns a fresh iterator over the row's cells, left to right.
// Complexity: O(1).
func (v Row[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		grid:   v.grid,
		gen:    v.gen,
		origin: Coord(0, v.index),
		window: Sz(v.length, 1),
		pos:    -1,
	}
}

// Column is a non-owning view over one column of a Grid. Access is strided
// by the grid's width but still O(1) per element. Staleness semantics match
// Row.
type Column[T any] struct {
	grid   *Grid[T]
	index  int
	length int
	stride int
	gen    uint64
}

// Column returns a view over the column at index.
// Returns ErrOutOfBounds when index >= Width.
// Complexity: O(1).
func (g *Grid[T]) Column(index int) (Column[T], error) {
	if index < 0 || index >= g.size.Width {
		return Column[T]{}, indexErrorf("Column", index)
	}
	return Column[T]{grid: g, index: index, length: g.size.Height, stride: g.size.Width, gen: g.gen}, nil
}

// Index returns the column index this view was created for.
func (v Column[T]) Index() int { return v.index }

// Len returns the number of elements in the column (the grid height at creation).
func (v Column[T]) Len() int { return v.length }

// At returns the element at position i within the column.
// Returns ErrStaleView after a structural mutation of the parent grid,
// ErrOutOfBounds when i >= Len.
// Complexity: O(1).
func (v Column[T]) At(i int) (T, error) {
	var zero T
	if v.grid == nil || v.grid.gen != v.gen {
		return zero, ErrStaleView
	}
	if i < 0 || i >= v.length {
		return zero, indexErrorf("Column.At", i)
	}
	return v.grid.data[i*v.stride+v.index], nil
}

// Set assigns value at position i within the column.
// Returns ErrStaleView after a structural mutation of the parent grid,
// ErrOutOfBounds when i >= Len.
// Complexity: O(1).
func (v Column[T]) Set(i int, value T) error {
	if v.grid == nil || v.grid.gen != v.gen {
		return ErrStaleView
	}
	if i < 0 || i >= v.length {
		return indexErrorf("Column.Set", i)
	}
	v.grid.data[i*v.stride+v.index] = value
	return nil
}

// Values returns a copy of the column's elements in row order.
// Returns ErrStaleView after a structural mutation of the parent grid.
// Complexity: O(H).
func (v Column[T]) Values() ([]T, error) {
	if v.grid == nil || v.grid.gen != v.gen {
		return nil, ErrStaleView
	}
	out := make([]T, v.length)
	for i := 0; i < v.length; i++ {
		out[i] = v.grid.data[i*v.stride+v.index]
	}
	return out, nil
}

// Iterator returns a fresh iterator over the column's cells, top to bottom.
// Complexity: O(1).
func (v Column[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		grid:   v.grid,
		gen:    v.gen,
		origin: Coord(v.index, 0),
		window: Sz(1, v.length),
		pos:    -1,
	}
}
