package traverse

import (
	"fmt"

	"github.com/katalvlaran/gridded/grid"
)

// filler encapsulates mutable flood-fill state.
type filler[T any] struct {
	grid    *grid.Grid[T]
	match   func(T) bool
	apply   func(T) T
	opts    Options
	queue   []grid.Coordinate
	visited map[grid.Coordinate]bool
	res     *Result
}

// FloodFill replaces the connected region of cells equal to the value at
// start with replacement, under the configured connectivity (Conn4 by
// default). Each reachable coordinate is visited and replaced exactly once;
// the explicit visited set guarantees termination even though every grid is
// cyclic through neighbor adjacency.
//
// Returns ErrGridNil for a nil grid, ErrOutOfBounds when start lies outside
// the grid, ErrOptionViolation for bad options, or the context error on
// cancellation.
// Complexity: O(W×H×d) time, O(W×H) memory.
func FloodFill[T comparable](g *grid.Grid[T], start grid.Coordinate, replacement T, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	target, err := g.At(start)
	if err != nil {
		return nil, fmt.Errorf("FloodFill%s: %w", start, ErrOutOfBounds)
	}
	return FloodFillFunc(g,
		start,
		func(v T) bool { return v == target },
		func(T) T { return replacement },
		opts...)
}

// FloodFillFunc is the predicate form of FloodFill: it visits every
// coordinate reachable from start through neighbors whose value satisfies
// match, replacing each visited cell with apply(old). When the start cell
// itself does not satisfy match, nothing is visited and the Result is empty.
//
// Returns ErrGridNil, ErrOutOfBounds, ErrNilCallback, ErrOptionViolation,
// or the context error on cancellation.
// Complexity: O(W×H×d) time, O(W×H) memory.
func FloodFillFunc[T any](g *grid.Grid[T], start grid.Coordinate, match func(T) bool, apply func(T) T, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if match == nil || apply == nil {
		return nil, ErrNilCallback
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	startValue, err := g.At(start)
	if err != nil {
		return nil, fmt.Errorf("FloodFillFunc%s: %w", start, ErrOutOfBounds)
	}

	f := &filler[T]{
		grid:    g,
		match:   match,
		apply:   apply,
		opts:    o,
		visited: make(map[grid.Coordinate]bool),
		res:     &Result{},
	}
	if !match(startValue) {
		return f.res, nil
	}
	f.enqueue(start)
	if err = f.loop(); err != nil {
		return nil, err
	}
	return f.res, nil
}

// enqueue marks c visited and adds it to the queue.
func (f *filler[T]) enqueue(c grid.Coordinate) {
	f.visited[c] = true
	f.queue = append(f.queue, c)
}

// loop processes the queue breadth-first until empty or cancelled.
func (f *filler[T]) loop() error {
	size := f.grid.Size()
	offsets := f.opts.Conn.Offsets()
	for qi := 0; qi < len(f.queue); qi++ {
		// cancellation check (once per dequeue)
		select {
		case <-f.opts.Ctx.Done():
			return f.opts.Ctx.Err()
		default:
		}

		cur := f.queue[qi]
		// Enqueue matching neighbors before replacing the current cell, so
		// the match predicate always observes pre-fill values.
		for _, d := range offsets {
			n := cur.Translate(d[0], d[1])
			if !size.Contains(n) || f.visited[n] {
				continue
			}
			v, err := f.grid.At(n)
			if err != nil {
				return err
			}
			if f.match(v) {
				f.enqueue(n)
			}
		}
		if err := f.grid.Update(cur, f.apply); err != nil {
			return err
		}
		f.opts.OnVisit(cur)
		f.res.Filled = append(f.res.Filled, cur)
	}
	return nil
}
