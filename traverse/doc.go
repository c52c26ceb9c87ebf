// Package traverse provides the common traversal algorithms over a
// grid.Grid: neighbor enumeration under 4- or 8-connectivity and
// breadth-first flood fill.
//
// What:
//
//   - Neighbors lists the in-bounds coordinates adjacent to a cell,
//     silently omitting neighbors that fall outside the grid.
//   - FloodFill replaces the connected region holding the start cell's
//     value; FloodFillFunc generalizes to an arbitrary match predicate and
//     replacement function.
//   - Functional options configure connectivity, cancellation and an
//     OnVisit hook.
//
// Why:
//
//   - Tile maps: region selection, paint-bucket tools.
//   - Cellular automata and puzzle boards: contiguous-area detection.
//
// Determinism:
//
//	Neighbor offsets are visited in a fixed order (N, E, S, W, then NE, SE,
//	SW, NW under Conn8), and flood fill enqueues neighbors in that order, so
//	the visit sequence is fully reproducible. Only the visited set is part
//	of the stable contract.
//
// Complexity (W×H = grid size, d = 4 or 8):
//
//   - Neighbors: O(d)
//   - FloodFill: O(W×H×d) time, O(W×H) memory for the visited set and queue
//
// Errors:
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOutOfBounds      if the start coordinate lies outside the grid.
//   - ErrOptionViolation  if an invalid Option or connectivity is supplied.
//   - ErrNilCallback      if FloodFillFunc receives a nil match or apply.
//
// Flood fill always terminates: an explicit visited set keyed by Coordinate
// guarantees each cell is visited at most once even though every grid is
// trivially cyclic through neighbor adjacency.
package traverse
