// Copyright 2025 Grid ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grid provides the public API for fixed-shape
// multi-dimensional grids.
//
// The package re-exports the core types and operations:
//   - Grid[T]: generic fixed-shape container with row-major storage
//   - Shape, Coord: extents and per-axis indices
//   - Nested: recursive nested-list representation
//   - Map, ZipWith, Monoid: elementwise combination
package grid

import (
	"github.com/grid-ml/grid/internal/grid"
)

// Type aliases for public API

// Shape represents the extents of a grid, one per axis.
// Example: Shape{2, 3, 4} describes a 3-axis grid with 24 elements.
type Shape = grid.Shape

// Coord addresses a single element: one index per axis, in the same
// order as the shape's extents.
type Coord = grid.Coord

// Grid is a generic fixed-shape multi-dimensional container with
// contiguous row-major storage. The shape never changes after
// construction; Update produces a new grid.
//
// Example:
//
//	g, err := grid.Generate(grid.Shape{2, 3}, func(i int) int { return i })
//	v, err := g.At(grid.Coord{1, 2})  // 5
type Grid[T any] = grid.Grid[T]

// Nested is the recursive nested-list representation of a grid's
// contents, with nesting depth equal to the axis count.
type Nested[T any] = grid.Nested[T]

// Entry pairs a coordinate with a replacement value for Grid.Update.
type Entry[T any] = grid.Entry[T]

// Monoid describes an associative combining operation with identity,
// lifted pointwise over equally shaped grids.
type Monoid[T any] = grid.Monoid[T]

// LengthError reports expected vs actual element counts; matches
// ErrInvalidLength with errors.Is.
type LengthError = grid.LengthError

// BoundsError reports the offending axis and value of an
// out-of-range coordinate or offset; matches ErrOutOfBounds.
type BoundsError = grid.BoundsError

// Sentinel errors.
var (
	ErrInvalidShape  = grid.ErrInvalidShape
	ErrInvalidLength = grid.ErrInvalidLength
	ErrOutOfBounds   = grid.ErrOutOfBounds
	ErrShapeMismatch = grid.ErrShapeMismatch
)

// Creation functions

// Generate builds a grid by calling f with each flat offset in
// increasing row-major order.
//
// Example:
//
//	g, err := grid.Generate(grid.Shape{2, 3}, func(i int) int { return i * i })
func Generate[T any](shape Shape, f func(offset int) T) (*Grid[T], error) {
	return grid.Generate(shape, f)
}

// FromSlice creates a grid from a flat row-major slice. The slice
// must hold exactly shape.NumElements() elements.
//
// Example:
//
//	g, err := grid.FromSlice(grid.Shape{2, 3}, []int{0, 1, 2, 3, 4, 5})
func FromSlice[T any](shape Shape, data []T) (*Grid[T], error) {
	return grid.FromSlice(shape, data)
}

// FromNested creates a grid from a nested-list representation.
//
// Example:
//
//	g, err := grid.FromNested(grid.Shape{2, 2},
//	    grid.Nest(grid.Leaf(1, 2), grid.Leaf(3, 4)))
func FromNested[T any](shape Shape, n Nested[T]) (*Grid[T], error) {
	return grid.FromNested(shape, n)
}

// Full creates a grid where every element equals value.
//
// Example:
//
//	g, err := grid.Full(grid.Shape{3, 3}, 3.14)
func Full[T any](shape Shape, value T) (*Grid[T], error) {
	return grid.Full(shape, value)
}

// Zeros creates a grid filled with the zero value of T.
//
// Example:
//
//	g, err := grid.Zeros[float64](grid.Shape{2, 3})
func Zeros[T any](shape Shape) (*Grid[T], error) {
	return grid.Zeros[T](shape)
}

// Nested construction helpers

// Leaf builds a leaf level of a nested-list value.
func Leaf[T any](elems ...T) Nested[T] {
	return grid.Leaf(elems...)
}

// Nest builds an inner level of a nested-list value.
func Nest[T any](items ...Nested[T]) Nested[T] {
	return grid.Nest(items...)
}

// Elementwise operations

// Map applies f to every element, preserving shape and order.
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	return grid.Map(g, f)
}

// ZipWith combines two equally shaped grids offset by offset.
// Fails with ErrShapeMismatch when the shapes differ.
func ZipWith[T, U, V any](a *Grid[T], b *Grid[U], f func(T, U) V) (*Grid[V], error) {
	return grid.ZipWith(a, b, f)
}

// Equal reports whether two grids have the same shape and identical
// elements at every offset.
func Equal[T comparable](a, b *Grid[T]) bool {
	return grid.Equal(a, b)
}
