package hexgrid

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := Point{X: 3, Y: -5}
	b := Point{X: -1, Y: 2}

	if got := a.Add(b); got != (Point{2, -3}) {
		t.Errorf("Add = %v, want (2,-3)", got)
	}
	if got := a.Sub(b); got != (Point{4, -7}) {
		t.Errorf("Sub = %v, want (4,-7)", got)
	}
	if got := a.Abs(); got != (Point{3, 5}) {
		t.Errorf("Abs = %v, want (3,5)", got)
	}
	if got := a.Signum(); got != (Point{1, -1}) {
		t.Errorf("Signum = %v, want (1,-1)", got)
	}
	if got := (Point{0, 0}).Signum(); got != (Point{0, 0}) {
		t.Errorf("Signum of zero = %v, want (0,0)", got)
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int32 }{
		{11, 12, 0},
		{-1, 12, -1},
		{-12, 12, -1},
		{-13, 12, -2},
		{12, 12, 1},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.want {
			t.Errorf("floorDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
