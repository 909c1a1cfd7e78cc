// Copyright 2025 Grid ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense converts a 2-axis float64 grid into a gonum dense matrix.
// The matrix owns its own copy of the data. Fails with
// ErrShapeMismatch when the grid does not have exactly two axes.
//
// Example:
//
//	g, _ := grid.Generate(grid.Shape{2, 3}, func(i int) float64 { return float64(i) })
//	m, err := grid.ToDense(g)
func ToDense(g *Grid[float64]) (*mat.Dense, error) {
	shape := g.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: matrix conversion needs a 2-axis grid, got %s", ErrShapeMismatch, shape)
	}
	data := append([]float64(nil), g.Data()...)
	return mat.NewDense(shape[0], shape[1], data), nil
}

// FromDense converts a gonum matrix into a 2-axis float64 grid.
// Both representations are row-major, so elements keep their
// positions.
func FromDense(m mat.Matrix) (*Grid[float64], error) {
	rows, cols := m.Dims()
	return Generate(Shape{rows, cols}, func(offset int) float64 {
		return m.At(offset/cols, offset%cols)
	})
}
