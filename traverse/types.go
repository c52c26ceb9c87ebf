// Package traverse defines connectivity modes, tunable options, and sentinel
// errors for grid traversal algorithms.
package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridded/grid"
)

// Sentinel errors for traversal operations.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("traverse: grid is nil")
	// ErrOutOfBounds is returned when the start coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("traverse: coordinate out of bounds")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
	// ErrNilCallback is returned when a required callback is nil.
	ErrNilCallback = errors.New("traverse: match and apply callbacks must be non-nil")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, E, S, W plus diagonals.
	Conn8
)

// Offset tables are ordered N, E, S, W with the diagonals NE, SE, SW, NW
// appended for Conn8; each entry is a (dColumn, dRow) pair.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// Offsets returns the (dColumn, dRow) neighbor offsets for the connectivity
// mode. The returned slice is shared; callers must not mutate it.
// Complexity: O(1).
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return conn8Offsets
	}
	return conn4Offsets
}

func (c Connectivity) valid() bool {
	return c == Conn4 || c == Conn8
}

// Option configures traversal behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when the
// traversal runs.
type Option func(*Options)

// Options holds parameters and callbacks customizing a traversal.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// Ctx allows cancellation and deadlines; checked once per dequeued cell.
	Ctx context.Context

	// OnVisit is called for each coordinate as it is visited.
	OnVisit func(grid.Coordinate)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: Conn4, background
// context, no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Conn:    Conn4,
		Ctx:     context.Background(),
		OnVisit: func(grid.Coordinate) {},
	}
}

// WithConnectivity selects the connectivity mode. An unknown mode is an
// option violation.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if !c.valid() {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked for every visited coordinate.
func WithOnVisit(fn func(grid.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// buildOptions folds opts over the defaults and surfaces any recorded
// violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// Result holds the outcome of a flood fill: the coordinates whose cells
// were replaced, in visit order, each exactly once.
type Result struct {
	Filled []grid.Coordinate
}
