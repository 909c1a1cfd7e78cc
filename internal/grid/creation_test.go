package grid

import (
	"errors"
	"testing"
)

func TestGenerate(t *testing.T) {
	g, err := Generate(Shape{2, 3}, func(i int) int { return i })
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	assertEqualShape(t, Shape{2, 3}, g.Shape(), "Generate shape")
	assertEqualInts(t, []int{0, 1, 2, 3, 4, 5}, g.Data(), "Generate flat store")
}

func TestGenerateIndexLaw(t *testing.T) {
	// index(generate(s, f), c) == f(offsetOf(s, c)) for every coordinate.
	s := Shape{3, 4, 2}
	f := func(i int) int { return i*i - 7 }
	g, err := Generate(s, f)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	for offset := 0; offset < s.NumElements(); offset++ {
		c, _ := s.CoordOf(offset)
		v, err := g.At(c)
		if err != nil {
			t.Fatalf("At(%v) error: %v", c, err)
		}
		if v != f(offset) {
			t.Errorf("At(%v) = %d, want f(%d) = %d", c, v, offset, f(offset))
		}
	}
}

func TestGenerateInvalidShape(t *testing.T) {
	for _, s := range []Shape{{}, {0}, {2, -1}} {
		_, err := Generate(s, func(i int) int { return i })
		assertIs(t, err, ErrInvalidShape, "Generate invalid shape")
	}
}

func TestFromSlice(t *testing.T) {
	g, err := FromSlice(Shape{2, 2}, []string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatalf("FromSlice error: %v", err)
	}

	v, err := g.At(Coord{1, 0})
	if err != nil {
		t.Fatalf("At error: %v", err)
	}
	if v != "c" {
		t.Errorf("At({1,0}) = %q, want %q", v, "c")
	}
}

func TestFromSliceCopies(t *testing.T) {
	data := []int{1, 2, 3, 4}
	g, err := FromSlice(Shape{4}, data)
	if err != nil {
		t.Fatalf("FromSlice error: %v", err)
	}
	data[0] = 99
	if g.Data()[0] != 1 {
		t.Error("FromSlice did not copy the input slice")
	}
}

func TestFromSliceLengthLaw(t *testing.T) {
	// Succeeds iff the slice holds exactly NumElements elements.
	_, err := FromSlice(Shape{2, 3}, []int{0, 1, 2, 3})
	assertIs(t, err, ErrInvalidLength, "FromSlice short slice")

	var lengthErr *LengthError
	if !errors.As(err, &lengthErr) {
		t.Fatalf("expected *LengthError, got %T", err)
	}
	if lengthErr.Expected != 6 || lengthErr.Actual != 4 {
		t.Errorf("LengthError = expected %d actual %d, want 6 and 4", lengthErr.Expected, lengthErr.Actual)
	}

	_, err = FromSlice(Shape{2, 3}, make([]int, 7))
	assertIs(t, err, ErrInvalidLength, "FromSlice long slice")

	if _, err := FromSlice(Shape{2, 3}, make([]int, 6)); err != nil {
		t.Errorf("FromSlice exact length error: %v", err)
	}
}

func TestFull(t *testing.T) {
	g, err := Full(Shape{2, 3}, 3.14)
	if err != nil {
		t.Fatalf("Full error: %v", err)
	}
	for _, v := range g.Data() {
		if v != 3.14 {
			t.Fatalf("Full element = %v, want 3.14", v)
		}
	}
}

func TestZeros(t *testing.T) {
	g, err := Zeros[int](Shape{3, 3})
	if err != nil {
		t.Fatalf("Zeros error: %v", err)
	}
	for _, v := range g.Data() {
		if v != 0 {
			t.Fatalf("Zeros element = %v, want 0", v)
		}
	}
}
