package grid

import (
	"fmt"
	"iter"
)

// Grid is a fixed-shape multi-dimensional container of elements of
// type T, stored contiguously in row-major order. A grid's shape and
// element count never change after construction; Update produces a
// new grid rather than mutating the receiver.
//
// Example:
//
//	g, err := grid.Generate(grid.Shape{2, 3}, func(i int) int { return i })
//	v, err := g.At(grid.Coord{1, 2}) // 5
type Grid[T any] struct {
	shape  Shape
	stride []int // row-major strides, cached at construction
	data   []T
}

// newGrid allocates a grid for the given shape with uninitialized
// (zero-valued) storage. The shape is validated and cloned.
func newGrid[T any](shape Shape) (*Grid[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Grid[T]{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]T, shape.NumElements()),
	}, nil
}

// Shape returns a copy of the grid's shape.
func (g *Grid[T]) Shape() Shape {
	return g.shape.Clone()
}

// Strides returns a copy of the grid's row-major strides.
func (g *Grid[T]) Strides() []int {
	return append([]int(nil), g.stride...)
}

// NumElements returns the total number of elements.
func (g *Grid[T]) NumElements() int {
	return len(g.data)
}

// NumAxes returns the number of axes in the grid's shape.
func (g *Grid[T]) NumAxes() int {
	return len(g.shape)
}

// Data returns the flat row-major backing store.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the grid.
func (g *Grid[T]) Data() []T {
	return g.data
}

// CoordOf converts a flat offset into a coordinate using the grid's
// cached strides.
func (g *Grid[T]) CoordOf(offset int) (Coord, error) {
	return coordOf(g.shape, g.stride, offset)
}

// OffsetOf converts a coordinate into its flat offset using the
// grid's cached strides.
func (g *Grid[T]) OffsetOf(c Coord) (int, error) {
	return offsetOf(g.shape, g.stride, c)
}

// At returns the element at the given coordinate.
func (g *Grid[T]) At(c Coord) (T, error) {
	offset, err := offsetOf(g.shape, g.stride, c)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.data[offset], nil
}

// Entry pairs a coordinate with a replacement value for Update.
type Entry[T any] struct {
	Coord Coord
	Value T
}

// Update returns a new grid identical to the receiver except that the
// element at each entry's coordinate is replaced with the entry's
// value. When the same coordinate appears more than once the last
// occurrence wins. The receiver is never modified: if any coordinate
// is out of range, Update fails before applying anything.
func (g *Grid[T]) Update(entries []Entry[T]) (*Grid[T], error) {
	offsets := make([]int, len(entries))
	for i, e := range entries {
		offset, err := offsetOf(g.shape, g.stride, e.Coord)
		if err != nil {
			return nil, fmt.Errorf("update entry %d: %w", i, err)
		}
		offsets[i] = offset
	}

	out := g.Clone()
	for i, e := range entries {
		out.data[offsets[i]] = e.Value
	}
	return out, nil
}

// Clone creates a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		shape:  g.shape.Clone(),
		stride: append([]int(nil), g.stride...),
		data:   append([]T(nil), g.data...),
	}
}

// EqualFunc reports whether two grids have the same shape and, under
// eq, the same element at every offset.
func (g *Grid[T]) EqualFunc(other *Grid[T], eq func(a, b T) bool) bool {
	if !g.shape.Equal(other.shape) {
		return false
	}
	for i := range g.data {
		if !eq(g.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two grids have the same shape and identical
// elements at every offset.
func Equal[T comparable](a, b *Grid[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// All iterates over every element in row-major order, yielding the
// coordinate and the element value.
//
// Example:
//
//	for c, v := range g.All() {
//	    fmt.Println(c, v)
//	}
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for offset, v := range g.data {
			c, _ := coordOf(g.shape, g.stride, offset)
			if !yield(c, v) {
				return
			}
		}
	}
}

// String returns a human-readable representation: the shape followed
// by the nested-list rendering of the elements.
func (g *Grid[T]) String() string {
	return fmt.Sprintf("Grid(%s)%s", g.shape, g.Nested())
}
