package grid

import (
	"fmt"
	"math"
)

// Size describes a grid extent as a (width, height) pair, used both for the
// logical size and for buffer capacity. A Size with either component equal
// to zero denotes an empty grid: it holds no element regardless of the other
// component.
type Size struct {
	Width  int
	Height int
}

// Sz is a shorthand constructor for Size.
func Sz(width, height int) Size {
	return Size{Width: width, Height: height}
}

// IsEmpty reports whether the size denotes zero elements.
// Complexity: O(1).
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Count returns the number of elements the size spans (Width×Height).
// The result is meaningful only for validated, non-overflowing sizes;
// see elementCount for the checked form.
func (s Size) Count() int {
	return s.Width * s.Height
}

// Contains reports whether c lies within [0, Width) × [0, Height).
// Complexity: O(1).
func (s Size) Contains(c Coordinate) bool {
	return c.Column >= 0 && c.Column < s.Width && c.Row >= 0 && c.Row < s.Height
}

// Fits reports whether s fits componentwise within outer.
// Complexity: O(1).
func (s Size) Fits(outer Size) bool {
	return s.Width <= outer.Width && s.Height <= outer.Height
}

// Union returns the componentwise maximum of s and o.
// Complexity: O(1).
func (s Size) Union(o Size) Size {
	u := s
	if o.Width > u.Width {
		u.Width = o.Width
	}
	if o.Height > u.Height {
		u.Height = o.Height
	}
	return u
}

// String implements fmt.Stringer as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// elementCount validates s and returns its element count.
// Returns ErrCapacityOverflow when a component is negative or when
// Width×Height does not fit in an int.
func elementCount(s Size) (int, error) {
	if s.Width < 0 || s.Height < 0 {
		return 0, fmt.Errorf("size %s has a negative component: %w", s, ErrCapacityOverflow)
	}
	if s.Width != 0 && s.Height > math.MaxInt/s.Width {
		return 0, fmt.Errorf("size %s: %w", s, ErrCapacityOverflow)
	}
	return s.Width * s.Height, nil
}
