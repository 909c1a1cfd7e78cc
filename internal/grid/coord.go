package grid

import "fmt"

// Coord addresses a single element of a grid: one index per axis, in
// the same order as the shape's extents. Coordinates are plain values
// with no tie to any particular grid.
type Coord []int

// Clone returns a copy of the coordinate.
func (c Coord) Clone() Coord {
	clone := make(Coord, len(c))
	copy(clone, c)
	return clone
}

// Equal checks if two coordinates are equal.
func (c Coord) Equal(other Coord) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// CoordOf converts a flat row-major offset into the coordinate it
// addresses. The offset must be in [0, NumElements).
//
// CoordOf and OffsetOf are mutual inverses for every valid shape.
func (s Shape) CoordOf(offset int) (Coord, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return coordOf(s, s.ComputeStrides(), offset)
}

// OffsetOf converts a coordinate into its flat row-major offset.
// Every axis value must be in range for the corresponding extent.
func (s Shape) OffsetOf(c Coord) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return offsetOf(s, s.ComputeStrides(), c)
}

// coordOf is the stride-aware implementation of Shape.CoordOf; the
// grid container calls it with its cached strides.
func coordOf(s Shape, strides []int, offset int) (Coord, error) {
	n := s.NumElements()
	if offset < 0 || offset >= n {
		return nil, &BoundsError{Axis: -1, Value: offset, Limit: n}
	}

	c := make(Coord, len(s))
	for i := range s {
		c[i] = (offset / strides[i]) % s[i]
	}
	return c, nil
}

// offsetOf is the stride-aware implementation of Shape.OffsetOf.
func offsetOf(s Shape, strides []int, c Coord) (int, error) {
	if len(c) != len(s) {
		return 0, fmt.Errorf("%w: coordinate has %d axes, shape %v has %d", ErrOutOfBounds, len(c), s, len(s))
	}

	offset := 0
	for i, idx := range c {
		if idx < 0 || idx >= s[i] {
			return 0, &BoundsError{Axis: i, Value: idx, Limit: s[i]}
		}
		offset += idx * strides[i]
	}
	return offset, nil
}
