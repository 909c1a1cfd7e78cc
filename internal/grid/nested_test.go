package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNested(t *testing.T) {
	g := mustGenerate(t, Shape{2, 3})

	got := g.Nested()
	want := Nest(Leaf(0, 1, 2), Leaf(3, 4, 5))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Nested() mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedOneAxis(t *testing.T) {
	g := mustGenerate(t, Shape{4})

	got := g.Nested()
	want := Leaf(0, 1, 2, 3)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Nested() mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedThreeAxes(t *testing.T) {
	g := mustGenerate(t, Shape{2, 2, 2})

	got := g.Nested()
	want := Nest(
		Nest(Leaf(0, 1), Leaf(2, 3)),
		Nest(Leaf(4, 5), Leaf(6, 7)),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Nested() mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedFlatten(t *testing.T) {
	n := Nest(Nest(Leaf(0, 1), Leaf(2, 3)), Nest(Leaf(4, 5), Leaf(6, 7)))
	assertEqualInts(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, n.Flatten(), "Flatten")
}

func TestFromNested(t *testing.T) {
	g, err := FromNested(Shape{2, 3}, Nest(Leaf(0, 1, 2), Leaf(3, 4, 5)))
	if err != nil {
		t.Fatalf("FromNested error: %v", err)
	}
	assertEqualInts(t, []int{0, 1, 2, 3, 4, 5}, g.Data(), "FromNested flat store")
}

func TestFromNestedLengthMismatch(t *testing.T) {
	_, err := FromNested(Shape{2, 3}, Nest(Leaf(0), Leaf(1, 2)))
	assertIs(t, err, ErrInvalidLength, "FromNested ragged input")
}

// Round-trip law: FromNested(shape, g.Nested()) reproduces g exactly.
func TestNestedRoundTrip(t *testing.T) {
	shapes := []Shape{{1}, {6}, {2, 3}, {3, 2, 2}, {2, 1, 4}}

	for _, s := range shapes {
		g := mustGenerate(t, s)
		back, err := FromNested(s, g.Nested())
		if err != nil {
			t.Fatalf("shape %v: FromNested error: %v", s, err)
		}
		if !Equal(g, back) {
			t.Errorf("shape %v: round trip changed the grid", s)
		}
	}
}

func TestNestedString(t *testing.T) {
	g := mustGenerate(t, Shape{2, 3})
	want := "[[0 1 2] [3 4 5]]"
	if got := g.Nested().String(); got != want {
		t.Errorf("Nested().String() = %q, want %q", got, want)
	}
}

func TestNestedIsCopy(t *testing.T) {
	g := mustGenerate(t, Shape{2, 2})
	n := g.Nested()
	n.Items[0].Elems[0] = 99
	if g.Data()[0] != 0 {
		t.Error("Nested shares storage with the grid")
	}
}
