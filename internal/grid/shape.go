package grid

import (
	"fmt"
	"strings"
)

// Shape represents the extents of a grid, one per axis.
// A valid shape has at least one axis and every extent >= 1.
type Shape []int

// NumElements returns the total number of elements a grid of this
// shape holds: the product of all extents.
func (s Shape) NumElements() int {
	n := 1
	for _, ext := range s {
		n *= ext
	}
	return n
}

// Validate checks that the shape has at least one axis and that every
// extent is positive.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: shape must have at least one axis", ErrInvalidShape)
	}
	for i, ext := range s {
		if ext < 1 {
			return fmt.Errorf("%w: extent %d at axis %d (must be >= 1)", ErrInvalidShape, ext, i)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// The last axis has stride 1; each preceding axis's stride is the
// product of all extents to its right, so the last axis varies
// fastest in the flat store.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String returns a compact rendering like "2x3x4".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, ext := range s {
		parts[i] = fmt.Sprintf("%d", ext)
	}
	return strings.Join(parts, "x")
}
