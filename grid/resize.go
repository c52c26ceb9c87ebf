package grid

import "fmt"

// Resize changes the logical size to newSize. Elements inside the overlap
// region (min(oldW,newW) × min(oldH,newH)) keep their coordinates; cells
// inside the new bounds but outside the old ones are set to fill.
//
// When newSize fits componentwise within the current capacity no
// reallocation occurs: the buffer is reinterpreted with the new stride,
// which relocates rows in place whenever the width changes. Otherwise a new
// buffer is allocated with geometric capacity growth to amortize repeated
// small resizes. Shrinking never releases capacity; see ShrinkToFit.
//
// Returns ErrCapacityOverflow when newSize is negative or its element count
// is not representable; the grid is left unmodified on failure.
// Complexity: O(W×H).
func (g *Grid[T]) Resize(newSize Size, fill T) error {
	if _, err := elementCount(newSize); err != nil {
		return fmt.Errorf("Grid.Resize: %w", err)
	}
	old := g.size
	if newSize == old {
		return nil
	}
	if newSize.Fits(g.cap) {
		g.relocateInPlace(old, newSize, fill)
	} else {
		newCap := grownCapacity(g.cap, newSize)
		if _, err := elementCount(newCap); err != nil {
			// Doubling overflowed; fall back to the exact request.
			newCap = g.cap.Union(newSize)
			if _, err = elementCount(newCap); err != nil {
				return fmt.Errorf("Grid.Resize: %w", err)
			}
		}
		g.reallocate(newCap, old, newSize, fill)
	}
	g.size = newSize
	g.gen++
	return nil
}

// Reserve grows the capacity by additional columns and rows without changing
// the logical size. Element offsets are preserved, so existing views and
// iterators remain valid. Capacity never shrinks.
// Returns ErrCapacityOverflow when the resulting extent is not representable.
// Complexity: O(W×H) when a reallocation is needed.
func (g *Grid[T]) Reserve(additional Size) error {
	if additional.Width < 0 || additional.Height < 0 {
		return fmt.Errorf("Grid.Reserve: size %s has a negative component: %w", additional, ErrCapacityOverflow)
	}
	newCap := Sz(g.cap.Width+additional.Width, g.cap.Height+additional.Height)
	n, err := elementCount(newCap)
	if err != nil {
		return fmt.Errorf("Grid.Reserve: %w", err)
	}
	if newCap == g.cap {
		return nil
	}
	buf := make([]T, n)
	copy(buf, g.data[:g.size.Count()])
	g.data = buf
	g.cap = newCap
	return nil
}

// ShrinkToFit releases unused capacity so that capacity equals the logical
// size. Element offsets are preserved; existing views remain valid.
// Complexity: O(W×H).
func (g *Grid[T]) ShrinkToFit() {
	if g.cap == g.size {
		return
	}
	buf := make([]T, g.size.Count())
	copy(buf, g.data[:g.size.Count()])
	g.data = buf
	g.cap = g.size
}

// relocateInPlace reinterprets the existing buffer with the stride of the
// new size, moving overlap rows to their new offsets and filling exposed
// cells. Rows are walked backward when the stride grows and forward when it
// shrinks so that unread source cells are never overwritten.
func (g *Grid[T]) relocateInPlace(old, newSize Size, fill T) {
	overlapW := min(old.Width, newSize.Width)
	overlapH := min(old.Height, newSize.Height)
	switch {
	case newSize.Width > old.Width:
		for r := overlapH - 1; r > 0; r-- { // row 0 never moves
			copy(g.data[r*newSize.Width:r*newSize.Width+overlapW], g.data[r*old.Width:r*old.Width+overlapW])
		}
	case newSize.Width < old.Width:
		for r := 1; r < overlapH; r++ {
			copy(g.data[r*newSize.Width:r*newSize.Width+overlapW], g.data[r*old.Width:r*old.Width+overlapW])
		}
	}
	// Initialize cells inside the new bounds but outside the preserved overlap.
	for r := 0; r < newSize.Height; r++ {
		base := r * newSize.Width
		start := 0
		if r < overlapH {
			start = overlapW
		}
		for c := start; c < newSize.Width; c++ {
			g.data[base+c] = fill
		}
	}
	// Zero stale slots beyond the new footprint so elements can be collected.
	if old.Count() > newSize.Count() {
		clear(g.data[newSize.Count():old.Count()])
	}
}

// reallocate copies the overlap region into a freshly sized buffer and
// fills the remaining cells of the new logical extent.
func (g *Grid[T]) reallocate(newCap, old, newSize Size, fill T) {
	buf := make([]T, newCap.Count())
	overlapW := min(old.Width, newSize.Width)
	overlapH := min(old.Height, newSize.Height)
	for r := 0; r < overlapH; r++ {
		copy(buf[r*newSize.Width:r*newSize.Width+overlapW], g.data[r*old.Width:r*old.Width+overlapW])
	}
	for r := 0; r < newSize.Height; r++ {
		base := r * newSize.Width
		start := 0
		if r < overlapH {
			start = overlapW
		}
		for c := start; c < newSize.Width; c++ {
			buf[base+c] = fill
		}
	}
	g.data = buf
	g.cap = newCap
}

// grownCapacity doubles each exceeded capacity dimension, or jumps straight
// to the requested extent when doubling is not enough.
func grownCapacity(cur, need Size) Size {
	next := cur
	if need.Width > next.Width {
		next.Width = max(2*next.Width, need.Width)
	}
	if need.Height > next.Height {
		next.Height = max(2*next.Height, need.Height)
	}
	return next
}
