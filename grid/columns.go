package grid

import "fmt"

// InsertColumn inserts column at the given index, shifting every column at
// or after it right by one. A completely empty (0×0) grid accepts its first
// column of any length, which establishes the grid's height; otherwise the
// column length must equal the current height.
//
// Returns ErrOutOfBounds when index > Width, ErrLengthMismatch on a wrong
// column length, ErrCapacityOverflow when the grown extent is not
// representable. The grid is left unmodified on failure.
// Complexity: O(W×H).
func (g *Grid[T]) InsertColumn(index int, column []T) error {
	if index < 0 || index > g.size.Width {
		return indexErrorf("InsertColumn", index)
	}
	h := g.size.Height
	if g.size == (Size{}) {
		h = len(column) // the first column establishes the height
	} else if len(column) != h {
		return lengthErrorf("InsertColumn", len(column), h)
	}
	w := g.size.Width
	newSize := Sz(w+1, h)

	if newSize.Fits(g.cap) {
		// Backward in-place shuffle with the widened stride: walking cells
		// in strictly decreasing destination offsets guarantees no unread
		// source cell is overwritten.
		for r := h - 1; r >= 0; r-- {
			for c := w; c >= 0; c-- {
				dst := r*(w+1) + c
				switch {
				case c == index:
					g.data[dst] = column[r]
				case c > index:
					g.data[dst] = g.data[r*w+c-1]
				default:
					g.data[dst] = g.data[r*w+c]
				}
			}
		}
	} else {
		newCap := grownCapacity(g.cap, newSize)
		if _, err := elementCount(newCap); err != nil {
			newCap = g.cap.Union(newSize)
			if _, err = elementCount(newCap); err != nil {
				return fmt.Errorf("Grid.InsertColumn: %w", err)
			}
		}
		buf := make([]T, newCap.Count())
		for r := 0; r < h; r++ {
			copy(buf[r*(w+1):r*(w+1)+index], g.data[r*w:r*w+index])
			buf[r*(w+1)+index] = column[r]
			copy(buf[r*(w+1)+index+1:(r+1)*(w+1)], g.data[r*w+index:(r+1)*w])
		}
		g.data = buf
		g.cap = newCap
	}
	g.size = newSize
	g.gen++
	return nil
}

// RemoveColumn removes the column at index, shifting subsequent columns left
// by one, and returns the removed elements. Capacity is never reduced by
// removal. Returns ErrOutOfBounds when index >= Width.
// Complexity: O(W×H).
func (g *Grid[T]) RemoveColumn(index int) ([]T, error) {
	if index < 0 || index >= g.size.Width {
		return nil, indexErrorf("RemoveColumn", index)
	}
	w, h := g.size.Width, g.size.Height
	removed := make([]T, h)
	for r := 0; r < h; r++ {
		removed[r] = g.data[r*w+index]
	}
	// Forward compaction with the narrowed stride.
	for r := 0; r < h; r++ {
		for c := 0; c < w-1; c++ {
			src := r*w + c
			if c >= index {
				src++
			}
			g.data[r*(w-1)+c] = g.data[src]
		}
	}
	// Zero stale slots beyond the new footprint.
	clear(g.data[(w-1)*h : w*h])
	g.size.Width--
	g.gen++
	return removed, nil
}

// SwapColumns exchanges the contents of columns a and b in place.
// Returns ErrOutOfBounds when either index is >= Width.
// Complexity: O(H).
func (g *Grid[T]) SwapColumns(a, b int) error {
	if a < 0 || a >= g.size.Width {
		return indexErrorf("SwapColumns", a)
	}
	if b < 0 || b >= g.size.Width {
		return indexErrorf("SwapColumns", b)
	}
	if a == b {
		return nil
	}
	w := g.size.Width
	for r := 0; r < g.size.Height; r++ {
		i, j := r*w+a, r*w+b
		g.data[i], g.data[j] = g.data[j], g.data[i]
	}
	g.gen++
	return nil
}
