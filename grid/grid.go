package grid

import (
	"fmt"
	"strings"
)

// Grid is a generic dynamic two-dimensional array. Elements live in a single
// flat buffer in row-major order with stride equal to the current logical
// width; size and capacity are tracked independently so that structural
// mutations within capacity never reallocate.
//
// The zero value is not ready for use; construct grids with New,
// WithCapacity, WithSize, FromRows or FromColumns.
type Grid[T any] struct {
	data []T    // flat backing storage, length == capacity.Count()
	size Size   // current logical extent
	cap  Size   // provisioned extent, componentwise >= size
	gen  uint64 // mutation generation, bumped by every structural mutation
}

// New creates an empty grid with no allocated storage.
// Complexity: O(1).
func New[T any]() *Grid[T] {
	return &Grid[T]{}
}

// WithCapacity creates an empty grid with storage provisioned for
// capacity.Width × capacity.Height elements. The logical size starts at 0×0.
// Returns ErrCapacityOverflow when the element count is not representable.
// Complexity: O(W×H) for the allocation.
func WithCapacity[T any](capacity Size) (*Grid[T], error) {
	n, err := elementCount(capacity)
	if err != nil {
		return nil, fmt.Errorf("Grid.WithCapacity: %w", err)
	}
	return &Grid[T]{data: make([]T, n), cap: capacity}, nil
}

// WithSize creates a grid of the given logical size with every cell set to
// fill. Capacity equals the size. Returns ErrCapacityOverflow when the
// element count is not representable.
// Complexity: O(W×H).
func WithSize[T any](size Size, fill T) (*Grid[T], error) {
	n, err := elementCount(size)
	if err != nil {
		return nil, fmt.Errorf("Grid.WithSize: %w", err)
	}
	g := &Grid[T]{data: make([]T, n), size: size, cap: size}
	for i := range g.data {
		g.data[i] = fill
	}
	return g, nil
}

// FromRows builds a grid from a slice of rows. All rows must share the same
// length; returns ErrLengthMismatch otherwise. An empty input yields an
// empty grid.
// Complexity: O(W×H).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return New[T](), nil
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("Grid.FromRows: row %d has length %d, want %d: %w", i, len(row), w, ErrLengthMismatch)
		}
	}
	size := Sz(w, len(rows))
	g := &Grid[T]{data: make([]T, size.Count()), size: size, cap: size}
	for r, row := range rows {
		copy(g.data[r*w:(r+1)*w], row)
	}
	return g, nil
}

// FromColumns builds a grid from a slice of columns. All columns must share
// the same length; returns ErrLengthMismatch otherwise.
// Complexity: O(W×H).
func FromColumns[T any](columns [][]T) (*Grid[T], error) {
	if len(columns) == 0 {
		return New[T](), nil
	}
	h := len(columns[0])
	for i, col := range columns {
		if len(col) != h {
			return nil, fmt.Errorf("Grid.FromColumns: column %d has length %d, want %d: %w", i, len(col), h, ErrLengthMismatch)
		}
	}
	size := Sz(len(columns), h)
	g := &Grid[T]{data: make([]T, size.Count()), size: size, cap: size}
	for c, col := range columns {
		for r, v := range col {
			g.data[r*size.Width+c] = v
		}
	}
	return g, nil
}

// Size returns the current logical extent.
// Complexity: O(1).
func (g *Grid[T]) Size() Size {
	return g.size
}

// Capacity returns the provisioned storage extent.
// Complexity: O(1).
func (g *Grid[T]) Capacity() Size {
	return g.cap
}

// index maps a coordinate to its flat row-major offset: row*Width + column.
func (g *Grid[T]) index(c Coordinate) int {
	return c.Row*g.size.Width + c.Column
}

// At returns the element stored at c.
// Returns ErrOutOfBounds when c lies outside the logical size.
// Complexity: O(1).
func (g *Grid[T]) At(c Coordinate) (T, error) {
	if !g.size.Contains(c) {
		var zero T
		return zero, coordErrorf("At", c)
	}
	return g.data[g.index(c)], nil
}

// Set assigns v to the cell at c.
// Returns ErrOutOfBounds when c lies outside the logical size.
// Complexity: O(1).
func (g *Grid[T]) Set(c Coordinate, v T) error {
	if !g.size.Contains(c) {
		return coordErrorf("Set", c)
	}
	g.data[g.index(c)] = v
	return nil
}

// Update replaces the cell at c with fn applied to its current value.
// Returns ErrOutOfBounds when c lies outside the logical size.
// Complexity: O(1) plus the cost of fn.
func (g *Grid[T]) Update(c Coordinate, fn func(T) T) error {
	if !g.size.Contains(c) {
		return coordErrorf("Update", c)
	}
	i := g.index(c)
	g.data[i] = fn(g.data[i])
	return nil
}

// SwapValues exchanges the elements stored at a and b.
// Returns ErrOutOfBounds when either coordinate is outside the logical size.
// Complexity: O(1).
func (g *Grid[T]) SwapValues(a, b Coordinate) error {
	if !g.size.Contains(a) {
		return coordErrorf("SwapValues", a)
	}
	if !g.size.Contains(b) {
		return coordErrorf("SwapValues", b)
	}
	i, j := g.index(a), g.index(b)
	g.data[i], g.data[j] = g.data[j], g.data[i]
	return nil
}

// Values returns a copy of all elements in row-major order.
// Complexity: O(W×H).
func (g *Grid[T]) Values() []T {
	out := make([]T, g.size.Count())
	copy(out, g.data[:g.size.Count()])
	return out
}

// Fill assigns v to every cell. The logical size is unchanged.
// Complexity: O(W×H).
func (g *Grid[T]) Fill(v T) {
	for i := 0; i < g.size.Count(); i++ {
		g.data[i] = v
	}
}

// Clear resets the logical size to 0×0 without releasing capacity.
// Calling Clear twice in a row is equivalent to calling it once.
// Complexity: O(W×H) to drop element references.
func (g *Grid[T]) Clear() {
	if g.size == (Size{}) {
		return
	}
	// Zero the previously occupied region so dropped elements can be collected.
	clear(g.data[:g.size.Count()])
	g.size = Size{}
	g.gen++
}

// Clone returns a deep copy of the grid with identical size and capacity.
// Complexity: O(capacity) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	dup := make([]T, len(g.data))
	copy(dup, g.data)
	return &Grid[T]{data: dup, size: g.size, cap: g.cap}
}

// String implements fmt.Stringer, rendering one bracketed line per row.
// Complexity: O(W×H).
func (g *Grid[T]) String() string {
	var b strings.Builder
	for r := 0; r < g.size.Height; r++ {
		b.WriteByte('[')
		for c := 0; c < g.size.Width; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", g.data[r*g.size.Width+c])
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// Generation returns the mutation generation counter. Views and iterators
// capture it at creation and refuse access once it has moved on.
// Complexity: O(1).
func (g *Grid[T]) Generation() uint64 {
	return g.gen
}
