package grid

import "fmt"

// InsertRow inserts row at the given index, shifting every row at or after
// it down by one. A completely empty (0×0) grid accepts its first row of any
// length, which establishes the grid's width; otherwise the row length must
// equal the current width.
//
// Returns ErrOutOfBounds when index > Height, ErrLengthMismatch on a wrong
// row length, ErrCapacityOverflow when the grown extent is not representable.
// The grid is left unmodified on failure.
// Complexity: O(W×H).
func (g *Grid[T]) InsertRow(index int, row []T) error {
	if index < 0 || index > g.size.Height {
		return indexErrorf("InsertRow", index)
	}
	w := g.size.Width
	if g.size == (Size{}) {
		w = len(row) // the first row establishes the width
	} else if len(row) != w {
		return lengthErrorf("InsertRow", len(row), w)
	}
	newSize := Sz(w, g.size.Height+1)
	if err := g.growSameStride(newSize, "InsertRow"); err != nil {
		return err
	}
	h := g.size.Height
	copy(g.data[(index+1)*w:(h+1)*w], g.data[index*w:h*w])
	copy(g.data[index*w:(index+1)*w], row)
	g.size = newSize
	g.gen++
	return nil
}

// RemoveRow removes the row at index, shifting subsequent rows up by one,
// and returns the removed elements. Capacity is never reduced by removal.
// Returns ErrOutOfBounds when index >= Height.
// Complexity: O(W×H).
func (g *Grid[T]) RemoveRow(index int) ([]T, error) {
	if index < 0 || index >= g.size.Height {
		return nil, indexErrorf("RemoveRow", index)
	}
	w, h := g.size.Width, g.size.Height
	removed := make([]T, w)
	copy(removed, g.data[index*w:(index+1)*w])
	copy(g.data[index*w:(h-1)*w], g.data[(index+1)*w:h*w])
	// Zero the vacated row so dropped elements can be collected.
	clear(g.data[(h-1)*w : h*w])
	g.size.Height--
	g.gen++
	return removed, nil
}

// SwapRows exchanges the contents of rows a and b in place.
// Returns ErrOutOfBounds when either index is >= Height.
// Complexity: O(W).
func (g *Grid[T]) SwapRows(a, b int) error {
	if a < 0 || a >= g.size.Height {
		return indexErrorf("SwapRows", a)
	}
	if b < 0 || b >= g.size.Height {
		return indexErrorf("SwapRows", b)
	}
	if a == b {
		return nil
	}
	w := g.size.Width
	ra := g.data[a*w : (a+1)*w]
	rb := g.data[b*w : (b+1)*w]
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
	g.gen++
	return nil
}

// growSameStride ensures capacity for newSize in contexts where the stride
// is unchanged (or the grid holds no elements), so the packed region can be
// copied verbatim into the grown buffer.
func (g *Grid[T]) growSameStride(newSize Size, method string) error {
	if newSize.Fits(g.cap) {
		return nil
	}
	newCap := grownCapacity(g.cap, newSize)
	if _, err := elementCount(newCap); err != nil {
		newCap = g.cap.Union(newSize)
		if _, err = elementCount(newCap); err != nil {
			return fmt.Errorf("Grid.%s: %w", method, err)
		}
	}
	buf := make([]T, newCap.Count())
	copy(buf, g.data[:g.size.Count()])
	g.data = buf
	g.cap = newCap
	return nil
}
