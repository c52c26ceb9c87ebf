package traverse

import (
	"fmt"

	"github.com/katalvlaran/gridded/grid"
)

// Neighbors returns the in-bounds coordinates adjacent to at under the given
// connectivity mode, in offset-table order. Neighbors falling outside the
// grid are silently omitted: an interior cell has 4 (or 8) neighbors, a
// corner cell 2 (or 3).
//
// Returns ErrGridNil for a nil grid, ErrOutOfBounds when at itself lies
// outside the grid, ErrOptionViolation for an unknown connectivity.
// Complexity: O(d), d = 4 or 8.
func Neighbors[T any](g *grid.Grid[T], at grid.Coordinate, conn Connectivity) ([]grid.Coordinate, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !conn.valid() {
		return nil, fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, conn)
	}
	size := g.Size()
	if !size.Contains(at) {
		return nil, fmt.Errorf("Neighbors%s: %w", at, ErrOutOfBounds)
	}
	offsets := conn.Offsets()
	out := make([]grid.Coordinate, 0, len(offsets))
	for _, d := range offsets {
		n := at.Translate(d[0], d[1])
		if size.Contains(n) {
			out = append(out, n)
		}
	}
	return out, nil
}
