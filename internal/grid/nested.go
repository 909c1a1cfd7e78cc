package grid

import (
	"fmt"
	"strings"
)

// Nested is the recursive sequence-of-sequences representation of a
// grid's contents. A value is either a leaf level (Elems set), which
// corresponds to the last axis, or an inner level (Items set), one
// entry per index of the corresponding axis. Nesting depth equals the
// axis count of the shape it represents.
//
// Nested values exist for ergonomic construction and printing; they
// carry no shape of their own beyond their structure.
type Nested[T any] struct {
	Elems []T
	Items []Nested[T]
}

// Leaf builds a leaf level from a flat sequence of elements.
func Leaf[T any](elems ...T) Nested[T] {
	return Nested[T]{Elems: elems}
}

// Nest builds an inner level from a sequence of sub-structures.
func Nest[T any](items ...Nested[T]) Nested[T] {
	return Nested[T]{Items: items}
}

// Flatten concatenates the nested structure into a flat row-major
// sequence, outermost axis first.
func (n Nested[T]) Flatten() []T {
	if n.Items == nil {
		return append([]T(nil), n.Elems...)
	}
	var out []T
	for _, item := range n.Items {
		out = append(out, item.Flatten()...)
	}
	return out
}

// String renders the structure as nested bracketed lists, e.g.
// "[[0 1 2] [3 4 5]]".
func (n Nested[T]) String() string {
	if n.Items == nil {
		parts := make([]string, len(n.Elems))
		for i, v := range n.Elems {
			parts[i] = fmt.Sprintf("%v", v)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	parts := make([]string, len(n.Items))
	for i, item := range n.Items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Nested regroups the grid's flat store into its nested-list
// representation: one level per axis, each level's group size equal
// to the stride of that axis. Always succeeds for a valid grid.
func (g *Grid[T]) Nested() Nested[T] {
	return nest(g.shape, g.data)
}

// nest recursively partitions flat into chunks of the leading axis's
// stride. flat always holds exactly shape.NumElements() elements.
func nest[T any](shape Shape, flat []T) Nested[T] {
	if len(shape) == 1 {
		return Leaf(append([]T(nil), flat...)...)
	}
	chunk := len(flat) / shape[0] // stride of the leading axis
	items := make([]Nested[T], shape[0])
	for i := range items {
		items[i] = nest(shape[1:], flat[i*chunk:(i+1)*chunk])
	}
	return Nest(items...)
}

// FromNested creates a grid from a nested-list representation by
// flattening it and delegating to FromSlice: the flattened element
// count must match the shape exactly.
func FromNested[T any](shape Shape, n Nested[T]) (*Grid[T], error) {
	return FromSlice(shape, n.Flatten())
}
