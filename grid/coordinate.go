package grid

import "fmt"

// Coordinate addresses a single cell of a grid as a (column, row) pair.
// The top-left cell of a grid is (0, 0); columns grow rightward, rows grow
// downward. Two coordinates are equal iff both components match (plain ==).
// Row-major linearization is a storage-engine concern, not a property of
// Coordinate itself.
type Coordinate struct {
	Column int
	Row    int
}

// Coord is a shorthand constructor for Coordinate.
func Coord(column, row int) Coordinate {
	return Coordinate{Column: column, Row: row}
}

// Translate returns the coordinate shifted by dc columns and dr rows.
// Complexity: O(1).
func (c Coordinate) Translate(dc, dr int) Coordinate {
	return Coordinate{Column: c.Column + dc, Row: c.Row + dr}
}

// String implements fmt.Stringer as "(column,row)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}
