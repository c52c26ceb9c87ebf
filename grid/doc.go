// Package grid provides Grid[T], a generic dynamic two-dimensional array
// backed by a single contiguous row-major buffer, together with Row/Column
// views and lazy iterators.
//
// What:
//
//   - Grid[T] owns one flat buffer addressed by (column, row) Coordinates,
//     with a logical Size managed independently from its allocated Capacity.
//   - Element-preserving structural mutation: Resize, InsertRow/InsertColumn,
//     RemoveRow/RemoveColumn, SwapRows/SwapColumns, flips and rotations.
//   - Row[T] and Column[T] are non-owning, slice-like windows into the
//     buffer; Iterator[T] walks any rectangular window in row-major order,
//     pairing each element with its Coordinate.
//
// Why:
//
//   - Pixel buffers, tile maps, cellular-automaton boards: any data that is
//     naturally a dense rectangle of values.
//   - Amortized growth and capacity retention avoid needless reallocation
//     across repeated resizes, mirroring the behavior of dynamic arrays.
//
// Capacity:
//
//	The capacity of a grid is the storage extent provisioned for future
//	elements; it is componentwise ≥ the logical size. Growing within capacity
//	never reallocates (rows are relocated in place when the width changes);
//	growing beyond it reallocates with geometric growth. Shrinking retains
//	capacity; call ShrinkToFit to release it.
//
// Staleness:
//
//	Views and iterators capture the grid's mutation generation at creation.
//	Any structural mutation invalidates them: subsequent access fails with
//	ErrStaleView instead of silently returning relocated data.
//
// Complexity (W×H = logical size):
//
//   - At/Set/Update/SwapValues:      O(1)
//   - Resize, InsertRow, RemoveRow:  O(W×H)
//   - InsertColumn, RemoveColumn:    O(W×H)
//   - Row/Column view access:        O(1) per element
//
// Errors:
//
//   - ErrOutOfBounds:      coordinate or row/column index exceeds the logical size.
//   - ErrLengthMismatch:   inserted sequence length differs from the perpendicular dimension.
//   - ErrCapacityOverflow: requested size or capacity exceeds the representable element count.
//   - ErrStaleView:        a view or iterator outlived a structural mutation.
//
// All structural mutations are atomic: a failed call leaves the grid
// completely unmodified.
package grid
