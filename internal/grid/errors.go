package grid

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidShape  = errors.New("invalid shape")
	ErrInvalidLength = errors.New("element count does not match shape")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
	ErrShapeMismatch = errors.New("shapes do not match")
)

// LengthError reports a mismatch between the element count a shape
// requires and the count actually supplied.
type LengthError struct {
	Shape    Shape
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("shape %v requires %d elements, but got %d", e.Shape, e.Expected, e.Actual)
}

// Unwrap makes the error match ErrInvalidLength with errors.Is.
func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// BoundsError reports a coordinate axis value or flat offset outside
// the valid range for a shape.
type BoundsError struct {
	Axis  int // -1 when the offending value is a flat offset
	Value int
	Limit int // exclusive upper bound for Value
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("offset %d out of range [0, %d)", e.Value, e.Limit)
	}
	return fmt.Sprintf("index %d out of bounds for axis %d (extent %d)", e.Value, e.Axis, e.Limit)
}

// Unwrap makes the error match ErrOutOfBounds with errors.Is.
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
