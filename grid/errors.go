package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate or row/column index outside the logical size.
	ErrOutOfBounds = errors.New("grid: coordinate or index out of bounds")
	// ErrLengthMismatch indicates an inserted row/column whose length differs
	// from the perpendicular dimension.
	ErrLengthMismatch = errors.New("grid: sequence length does not match grid dimension")
	// ErrCapacityOverflow indicates a requested size or capacity whose element
	// count is negative or exceeds the addressable range.
	ErrCapacityOverflow = errors.New("grid: requested capacity overflows addressable memory")
	// ErrStaleView indicates use of a view or iterator after a structural
	// mutation of its parent grid.
	ErrStaleView = errors.New("grid: view or iterator invalidated by structural mutation")
)

// coordErrorf wraps ErrOutOfBounds with the failing method and coordinate.
func coordErrorf(method string, c Coordinate) error {
	return fmt.Errorf("Grid.%s%s: %w", method, c, ErrOutOfBounds)
}

// indexErrorf wraps ErrOutOfBounds with the failing method and index.
func indexErrorf(method string, index int) error {
	return fmt.Errorf("Grid.%s(%d): %w", method, index, ErrOutOfBounds)
}

// lengthErrorf wraps ErrLengthMismatch with the offending and expected lengths.
func lengthErrorf(method string, got, want int) error {
	return fmt.Errorf("Grid.%s: sequence length %d, dimension %d: %w", method, got, want, ErrLengthMismatch)
}
