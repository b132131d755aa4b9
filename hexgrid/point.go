package hexgrid

// Point is an integer 2D vector used for both screen-pixel and
// tile-coordinate values.
type Point struct {
	X, Y int32
}

// NewPoint builds a Point from a 2-tuple.
func NewPoint(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns the componentwise sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the componentwise difference of p and other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Abs returns the componentwise absolute value of p.
func (p Point) Abs() Point {
	return Point{X: abs32(p.X), Y: abs32(p.Y)}
}

// Signum returns the componentwise sign of p: -1, 0, or 1 per axis.
func (p Point) Signum() Point {
	return Point{X: sign32(p.X), Y: sign32(p.Y)}
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func sign32(x int32) int32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// floorDiv performs floor division (rounds toward negative infinity),
// required at several points in screen-to-tile projection where Go's
// native truncating "/" would round the wrong way for negative inputs.
func floorDiv(a, b int32) int32 {
	if a >= 0 {
		return a / b
	}
	return (a+1)/b - 1
}
