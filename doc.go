// Package gridded is a dynamic two-dimensional array container with its
// common algorithms — the general-purpose substrate for grid-shaped data
// such as pixel buffers, tile maps and cellular-automaton boards.
//
// 🚀 What is gridded?
//
//	A modern, generic, zero-I/O library that brings together:
//		• Storage engine: a single contiguous row-major buffer with logical
//		  size and capacity managed independently, amortized growth, and
//		  element-preserving resize / row / column insertion and removal
//		• Views: non-owning Row and Column windows with slice-like access
//		• Iterators: lazy, restartable traversal of grids, rows, columns
//		  and sub-rectangles, each element paired with its Coordinate
//		• Traversals: 4-/8-connected neighbor enumeration and flood fill
//
// ✨ Why choose gridded?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – atomic structural mutations, stale-view
//     detection via generation counters, explicit sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – bring any element type T; hooks (OnVisit) for custom logic
//
// Everything is organized under two subpackages:
//
//	grid/     — Coordinate, Size, the Grid[T] storage engine, views, iterators
//	traverse/ — neighbor enumeration and flood fill over a Grid[T]
//
// Quick ASCII example:
//
//	    (0,0)───(1,0)───(2,0)
//	      │       │       │
//	    (0,1)───(1,1)───(2,1)
//
//	represents a 3×2 grid; a Coordinate is a (column, row) pair.
//
// Dive into the package docs for full examples and the error taxonomy.
//
//	go get github.com/katalvlaran/gridded
package gridded
