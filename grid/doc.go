// Copyright 2025 Grid ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grid provides a generic fixed-shape multi-dimensional array.
//
// # Overview
//
// A Grid is a container whose per-axis extents are fixed at
// construction and whose elements are stored contiguously in
// row-major order. Elements are addressed either by a flat offset in
// [0, NumElements) or by a Coord holding one bounded index per axis;
// the two addressings are a bijection for every shape. This package
// provides:
//   - Generic type-safe grids (Grid[T]) over any element type
//   - Construction from generator functions, flat slices, and nested lists
//   - Immutable value semantics: updates produce new grids
//   - Elementwise combination (Map, ZipWith, pointwise Monoid)
//
// # Basic Usage
//
//	import "github.com/grid-ml/grid/grid"
//
//	func main() {
//	    g, err := grid.Generate(grid.Shape{2, 3}, func(i int) int { return i })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    v, _ := g.At(grid.Coord{1, 2})  // 5
//	    fmt.Println(g.Nested())         // [[0 1 2] [3 4 5]]
//	}
//
// # Shapes and Coordinates
//
// A Shape is an ordered sequence of positive extents, one per axis; a
// shape with zero axes or a non-positive extent is rejected with
// ErrInvalidShape at construction. A Coord carries one index per
// axis, each in range for the corresponding extent. The element at
// coordinate c lives at flat offset sum(c[i] * stride[i]) with the
// last axis varying fastest; Shape.CoordOf and Shape.OffsetOf convert
// between the two and are mutual inverses.
//
// # Nested Lists
//
// Nested is a recursive sequence-of-sequences rendering of a grid's
// contents, with nesting depth equal to the axis count. It exists for
// ergonomic construction and printing:
//
//	g, err := grid.FromNested(grid.Shape{2, 3},
//	    grid.Nest(grid.Leaf(0, 1, 2), grid.Leaf(3, 4, 5)))
//
// # Errors
//
// Every fallible operation reports to its caller; there are no
// panics on user input. Failures match one of the sentinel errors
// with errors.Is:
//   - ErrInvalidShape: zero axes or an extent < 1
//   - ErrInvalidLength: element count does not match the shape
//   - ErrOutOfBounds: coordinate axis value or flat offset out of range
//   - ErrShapeMismatch: pointwise combination of differently shaped grids
//
// # Concurrency
//
// Grids are immutable once constructed, so a grid may be shared and
// read concurrently without coordination. The slice returned by Data
// is a live view; callers that write through it take on the usual
// exclusive-access obligations.
package grid
