package hexgrid

// Rect is an axis-aligned integer rectangle, expressed as top-left
// corner plus width/height. It is used both in screen-pixel space
// (rectangular screen queries) and tile space (FromScreenRect's
// return value).
type Rect struct {
	X, Y, W, H int32
}

// NewRect builds a Rect from its top-left corner and extent.
func NewRect(x, y, w, h int32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left, Top, Right and Bottom return the rectangle's edges. Right and
// Bottom are exclusive, matching X+W and Y+H.
func (r Rect) Left() int32   { return r.X }
func (r Rect) Top() int32    { return r.Y }
func (r Rect) Right() int32  { return r.X + r.W }
func (r Rect) Bottom() int32 { return r.Y + r.H }

// fromRectCorners builds the smallest Rect covering the four supplied
// corner points.
func fromRectCorners(points ...Point) Rect {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}
