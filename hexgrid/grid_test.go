package hexgrid

import "testing"

func TestDefaultTileGrid(t *testing.T) {
	g := NewDefaultTileGrid()
	if g.Width() != 200 || g.Height() != 200 {
		t.Fatalf("default grid = %dx%d, want 200x200", g.Width(), g.Height())
	}
	if g.ScreenPos() != (Point{}) || g.Pos() != (Point{}) {
		t.Fatalf("default grid origin not zero: screenPos=%v pos=%v", g.ScreenPos(), g.Pos())
	}
}

func TestScreenTileRoundTrip(t *testing.T) {
	g := NewDefaultTileGrid()
	for y := int32(-5); y <= 5; y++ {
		for x := int32(-5); x <= 5; x++ {
			p := Point{X: x, Y: y}
			if !g.IsInBounds(p) {
				continue
			}
			// ToScreen gives the bounding box's top-left corner, which lies
			// outside the hexagon; sample the tile's centre pixel instead.
			screen := g.ToScreen(p).Add(Point{X: 16, Y: 8})
			got := g.FromScreen(screen)
			if got != p {
				t.Errorf("FromScreen(ToScreen(%v)) = %v, want %v", p, got, p)
			}
		}
	}
}

func TestLinearRoundTrip(t *testing.T) {
	g := NewTileGrid(10, 10)
	for n := int32(0); n < g.Len(); n++ {
		p := g.FromLinear(n)
		got, ok := g.ToLinear(p)
		if !ok || got != n {
			t.Errorf("ToLinear(FromLinear(%d)) = (%d,%v), want (%d,true)", n, got, ok, n)
		}

		pInv := g.FromLinearInv(n)
		gotInv, ok := g.ToLinearInv(pInv)
		if !ok || gotInv != n {
			t.Errorf("ToLinearInv(FromLinearInv(%d)) = (%d,%v), want (%d,true)", n, gotInv, ok, n)
		}
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	g := NewDefaultTileGrid()
	from := Point{X: 100, Y: 100}
	for _, dir := range Directions {
		for k := int32(1); k <= 10; k++ {
			to := g.GoUnbounded(from, dir, k)
			if got := g.Direction(from, to); got != dir {
				t.Errorf("Direction(from, GoUnbounded(from,%v,%d)) = %v, want %v", dir, k, got, dir)
			}
		}
	}
}

func TestDistanceProperties(t *testing.T) {
	g := NewDefaultTileGrid()
	p := Point{X: 50, Y: 60}
	if d := g.Distance(p, p); d != 0 {
		t.Errorf("Distance(p,p) = %d, want 0", d)
	}

	a := Point{X: 12, Y: 34}
	b := Point{X: 56, Y: 78}
	if g.Distance(a, b) != g.Distance(b, a) {
		t.Errorf("Distance not symmetric: %d vs %d", g.Distance(a, b), g.Distance(b, a))
	}
}

func TestGoBoundsConsistency(t *testing.T) {
	g := NewDefaultTileGrid()
	p := Point{X: 0, Y: 0}
	for _, dir := range Directions {
		got, ok := g.Go(p, dir, 1)
		if ok && !g.IsInBounds(got) {
			t.Errorf("Go(%v,%v,1) returned in-bounds=false result %v but ok=true", p, dir, got)
		}
	}
}

func TestGoScenarios(t *testing.T) {
	g := NewDefaultTileGrid()

	if got := g.GoUnbounded(Point{0, 0}, W, 1); got != (Point{-1, -1}) {
		t.Errorf("GoUnbounded((0,0),W,1) = %v, want (-1,-1)", got)
	}
	if _, ok := g.Go(Point{0, 0}, W, 1); ok {
		t.Errorf("Go((0,0),W,1) should be out of bounds")
	}
	if got := g.GoClipped(Point{0, 0}, W, 1); got != (Point{0, 0}) {
		t.Errorf("GoClipped((0,0),W,1) = %v, want (0,0)", got)
	}
	if got := g.GoUnbounded(Point{22, 11}, E, 0); got != (Point{22, 11}) {
		t.Errorf("GoUnbounded((22,11),E,0) = %v, want (22,11)", got)
	}
	if got := g.GoUnbounded(Point{22, 11}, E, 1); got != (Point{23, 11}) {
		t.Errorf("GoUnbounded((22,11),E,1) = %v, want (23,11)", got)
	}
}

func TestFromScreenScenario(t *testing.T) {
	g := NewTileGrid(200, 200)
	g.SetScreenPos(Point{X: 272, Y: 182})
	g.SetPos(Point{X: 98, Y: 100})

	cases := []struct {
		screen Point
		linear int32
	}{
		{Point{-320, -240}, 12702},
		{Point{-320, 620}, 23538},
		{Point{256, -242}, 14484},
	}
	for _, c := range cases {
		got := g.FromScreen(c.screen)
		want := g.FromLinearInv(c.linear)
		if got != want {
			t.Errorf("FromScreen(%v) = %v, want %v (from_linear_inv(%d))", c.screen, got, want, c.linear)
		}
	}

	if got := g.ToScreen(g.FromLinearInv(12702)); got != (Point{-336, -250}) {
		t.Errorf("ToScreen(from_linear_inv(12702)) = %v, want (-336,-250)", got)
	}
}

func TestDistanceScenario(t *testing.T) {
	g := NewDefaultTileGrid()
	a := g.FromLinearInv(0x4838)
	b := g.FromLinearInv(0x526d)
	if d := g.Distance(a, b); d != 19 {
		t.Errorf("Distance = %d, want 19", d)
	}
	if d := g.Distance(b, a); d != 19 {
		t.Errorf("Distance (reversed) = %d, want 19", d)
	}

	c := g.FromLinearInv(0x7023)
	d := g.FromLinearInv(0x5031)
	if got := g.Distance(c, d); got != 52 {
		t.Errorf("Distance = %d, want 52", got)
	}
	if got := g.Distance(d, c); got != 52 {
		t.Errorf("Distance (reversed) = %d, want 52", got)
	}
}

func TestIsInFrontOfAndToRightOf(t *testing.T) {
	g := NewDefaultTileGrid()

	if !g.IsInFrontOf(Point{100, 100}, Point{100, 100}) {
		t.Error("IsInFrontOf(p,p) should be true")
	}
	if !g.IsInFrontOf(Point{101, 100}, Point{100, 100}) {
		t.Error("IsInFrontOf((101,100),(100,100)) should be true")
	}
	if !g.IsInFrontOf(Point{100, 101}, Point{100, 100}) {
		t.Error("IsInFrontOf((100,101),(100,100)) should be true")
	}
	if g.IsInFrontOf(Point{100, 99}, Point{100, 100}) {
		t.Error("IsInFrontOf((100,99),(100,100)) should be false")
	}

	rightCases := []struct {
		p1, p2 Point
		want   bool
	}{
		{Point{100, 100}, Point{100, 100}, true},
		{Point{99, 100}, Point{100, 100}, true},
		{Point{100, 99}, Point{100, 100}, true},
		{Point{100, 101}, Point{100, 100}, true},
		{Point{99, 99}, Point{100, 100}, true},
		{Point{101, 100}, Point{100, 100}, false},
		{Point{101, 99}, Point{100, 100}, false},
		{Point{101, 101}, Point{100, 100}, false},
	}
	for _, c := range rightCases {
		if got := g.IsToRightOf(c.p1, c.p2); got != c.want {
			t.Errorf("IsToRightOf(%v,%v) = %v, want %v", c.p1, c.p2, got, c.want)
		}
	}
}

func TestDirectionPanicsOnEqualPoints(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Direction(p,p) should panic")
		}
	}()
	g := NewDefaultTileGrid()
	g.Direction(Point{1, 1}, Point{1, 1})
}

func TestBeyondPanicsOnNegativeDistance(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Beyond with negative distance should panic")
		}
	}()
	g := NewDefaultTileGrid()
	g.Beyond(Point{0, 0}, Point{1, 1}, -1)
}

func TestBeyondZeroDistance(t *testing.T) {
	g := NewDefaultTileGrid()
	from := Point{5, 5}
	to := Point{20, 30}
	if got := g.Beyond(from, to, 0); got != from {
		t.Errorf("Beyond(from,to,0) = %v, want %v", got, from)
	}
}

func TestNewTileGridInvalidDimensionsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewTileGrid(0,0) should panic")
		}
	}()
	NewTileGrid(0, 0)
}

func TestDirectionFromOrdinal(t *testing.T) {
	for i := 0; i < LEN; i++ {
		d, ok := DirectionFromOrdinal(i)
		if !ok || int(d) != i {
			t.Errorf("DirectionFromOrdinal(%d) = (%v,%v)", i, d, ok)
		}
	}
	if _, ok := DirectionFromOrdinal(-1); ok {
		t.Error("DirectionFromOrdinal(-1) should fail")
	}
	if _, ok := DirectionFromOrdinal(6); ok {
		t.Error("DirectionFromOrdinal(6) should fail")
	}
}
