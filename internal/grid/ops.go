package grid

import "fmt"

// Map applies f to every element, producing a new grid of the same
// shape with element order preserved.
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	out := &Grid[U]{
		shape:  g.shape.Clone(),
		stride: append([]int(nil), g.stride...),
		data:   make([]U, len(g.data)),
	}
	for i, v := range g.data {
		out.data[i] = f(v)
	}
	return out
}

// Apply is Map restricted to the element type, usable as a method.
func (g *Grid[T]) Apply(f func(T) T) *Grid[T] {
	return Map(g, f)
}

// ZipWith combines two grids of identical shape offset by offset.
// Fails with a shape-mismatch error when the shapes differ.
func ZipWith[T, U, V any](a *Grid[T], b *Grid[U], f func(T, U) V) (*Grid[V], error) {
	if !a.shape.Equal(b.shape) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, b.shape)
	}
	out := &Grid[V]{
		shape:  a.shape.Clone(),
		stride: append([]int(nil), a.stride...),
		data:   make([]V, len(a.data)),
	}
	for i := range a.data {
		out.data[i] = f(a.data[i], b.data[i])
	}
	return out, nil
}

// Monoid describes an associative combining operation on T with an
// identity element. Grids of the same shape combine pointwise under
// it; associativity and identity lift directly from the element type,
// applied independently per offset.
//
// Example:
//
//	sum := grid.Monoid[int]{Identity: 0, Combine: func(a, b int) int { return a + b }}
//	c, err := sum.Concat(a, b)
type Monoid[T any] struct {
	Identity T
	Combine  func(a, b T) T
}

// Empty returns the identity grid for the given shape: every element
// is the monoid's identity.
func (m Monoid[T]) Empty(shape Shape) (*Grid[T], error) {
	return Full(shape, m.Identity)
}

// Concat combines two equally-shaped grids pointwise.
func (m Monoid[T]) Concat(a, b *Grid[T]) (*Grid[T], error) {
	return ZipWith(a, b, m.Combine)
}
