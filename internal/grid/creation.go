package grid

// Generate builds a grid by calling f with each flat offset
// 0 .. NumElements-1 in increasing order. The only failure is an
// invalid shape.
//
// Example:
//
//	g, err := grid.Generate(grid.Shape{2, 3}, func(i int) int { return i })
//	// flat store [0 1 2 3 4 5]
func Generate[T any](shape Shape, f func(offset int) T) (*Grid[T], error) {
	g, err := newGrid[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = f(i)
	}
	return g, nil
}

// FromSlice creates a grid from a flat slice in row-major order.
// The slice is copied into the grid's storage. Fails unless the slice
// holds exactly NumElements elements.
func FromSlice[T any](shape Shape, data []T) (*Grid[T], error) {
	g, err := newGrid[T](shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(g.data) {
		return nil, &LengthError{Shape: g.shape, Expected: len(g.data), Actual: len(data)}
	}
	copy(g.data, data)
	return g, nil
}

// Full creates a grid where every element equals value.
//
// Example:
//
//	g, err := grid.Full(grid.Shape{3, 3}, 3.14)
func Full[T any](shape Shape, value T) (*Grid[T], error) {
	g, err := newGrid[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = value
	}
	return g, nil
}

// Zeros creates a grid filled with the zero value of T.
func Zeros[T any](shape Shape) (*Grid[T], error) {
	return newGrid[T](shape)
}
