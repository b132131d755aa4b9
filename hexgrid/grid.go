package hexgrid

import "fmt"

// advanceEven and advanceOdd give the neighbour-stepping delta for
// each direction, depending on the parity of the tile's current X
// coordinate. Staggered columns mean odd and even columns advance
// differently for every direction except SE/NW.
var advanceEven = [LEN]Point{
	NE: {X: 1, Y: -1},
	E:  {X: 1, Y: 0},
	SE: {X: 0, Y: 1},
	SW: {X: -1, Y: 0},
	W:  {X: -1, Y: -1},
	NW: {X: 0, Y: -1},
}

var advanceOdd = [LEN]Point{
	NE: {X: 1, Y: 0},
	E:  {X: 1, Y: 1},
	SE: {X: 0, Y: 1},
	SW: {X: -1, Y: 1},
	W:  {X: -1, Y: 0},
	NW: {X: 0, Y: -1},
}

// DefaultWidth and DefaultHeight are the dimensions TileGrid uses when
// constructed with NewDefaultTileGrid.
const (
	DefaultWidth  = 200
	DefaultHeight = 200
)

// TileGrid owns grid dimensions and an origin, and implements
// screen<->tile conversion, neighbour stepping, direction, distance,
// line traversal ("beyond") and linear-index mappings. It is a small
// value type, freely cloneable by plain assignment.
type TileGrid struct {
	screenPos Point
	pos       Point
	width     int32
	height    int32
}

// NewTileGrid builds a TileGrid with explicit dimensions. width and
// height must each be >= 1.
func NewTileGrid(width, height int32) TileGrid {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("hexgrid: invalid dimensions %dx%d", width, height))
	}
	return TileGrid{width: width, height: height}
}

// NewDefaultTileGrid builds a 200x200 TileGrid with a zero origin.
func NewDefaultTileGrid() TileGrid {
	return NewTileGrid(DefaultWidth, DefaultHeight)
}

// ScreenPos returns the screen pixel at which the tile named by Pos
// is anchored.
func (g TileGrid) ScreenPos() Point { return g.screenPos }

// SetScreenPos updates the grid's screen anchor, e.g. as the camera pans.
func (g *TileGrid) SetScreenPos(p Point) { g.screenPos = p }

// Pos returns the tile coordinate that maps to ScreenPos.
func (g TileGrid) Pos() Point { return g.pos }

// SetPos updates the grid's tile anchor.
func (g *TileGrid) SetPos(p Point) { g.pos = p }

// Width returns the grid extent in tiles along X.
func (g TileGrid) Width() int32 { return g.width }

// Height returns the grid extent in tiles along Y.
func (g TileGrid) Height() int32 { return g.height }

// Len returns width*height, the number of tiles in the grid.
func (g TileGrid) Len() int32 { return g.width * g.height }

// IsInBounds reports whether p falls within [0,width) x [0,height).
func (g TileGrid) IsInBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsOnEdge reports whether p lies on the grid's outer boundary.
func (g TileGrid) IsOnEdge(p Point) bool {
	return p.X == 0 || p.X == g.width-1 || p.Y == 0 || p.Y == g.height-1
}

// Clip clamps p into [0,width-1] x [0,height-1].
func (g TileGrid) Clip(p Point) Point {
	return Point{X: clamp32(p.X, 0, g.width-1), Y: clamp32(p.Y, 0, g.height-1)}
}

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToLinear encodes p as a row-major linear index. The second return
// value is false if p is out of bounds.
func (g TileGrid) ToLinear(p Point) (int32, bool) {
	if !g.IsInBounds(p) {
		return 0, false
	}
	return g.width*p.Y + p.X, true
}

// FromLinear decodes a row-major linear index back to a tile coordinate.
func (g TileGrid) FromLinear(n int32) Point {
	return Point{X: n % g.width, Y: n / g.width}
}

// ToLinearInv encodes p as a row-major linear index with the X axis
// mirrored, matching the legacy on-disk map format.
func (g TileGrid) ToLinearInv(p Point) (int32, bool) {
	if !g.IsInBounds(p) {
		return 0, false
	}
	return g.width*p.Y + (g.width - 1 - p.X), true
}

// FromLinearInv decodes a mirrored-X linear index back to a tile coordinate.
func (g TileGrid) FromLinearInv(n int32) Point {
	return Point{X: g.width - 1 - n%g.width, Y: n / g.width}
}

// FromScreen converts a screen pixel to its containing tile
// coordinate. The result may be out of bounds.
func (g TileGrid) FromScreen(p Point) Point {
	ay := p.Y - g.screenPos.Y

	tileY := floorDiv(ay, 12)
	hxPix := p.X - g.screenPos.X - 16*tileY
	sy := ay - 12*tileY

	tileHx := floorDiv(hxPix, 64)
	tileY += tileHx

	sx := hxPix - 64*tileHx
	tileX := 2 * tileHx
	if sx >= 32 {
		sx -= 32
		tileX++
	}

	tileX += g.pos.X
	tileY += g.pos.Y

	switch tileHitTest(sx, sy) {
	case hitTopRight:
		tileX++
		if tileX%2 != 0 {
			tileY--
		}
	case hitTopLeft:
		tileY--
	case hitBottomLeft:
		tileX--
		if tileX%2 == 0 {
			tileY++
		}
	case hitBottomRight:
		tileY++
	case hitInside:
	}

	return Point{X: tileX, Y: tileY}
}

// FromScreenRect returns the smallest tile-space Rect covering the
// given screen-space rect, optionally clipped to the grid bounds.
func (g TileGrid) FromScreenRect(rect Rect, clip bool) Rect {
	corners := [4]Point{
		g.FromScreen(Point{X: rect.Left(), Y: rect.Top()}),
		g.FromScreen(Point{X: rect.Right() - 1, Y: rect.Top()}),
		g.FromScreen(Point{X: rect.Left(), Y: rect.Bottom() - 1}),
		g.FromScreen(Point{X: rect.Right() - 1, Y: rect.Bottom() - 1}),
	}
	if clip {
		for i, c := range corners {
			corners[i] = g.Clip(c)
		}
	}
	return fromRectCorners(corners[0], corners[1], corners[2], corners[3])
}

// ToScreen returns the top-left of tile p's 32x16 bounding box in
// screen-pixel space.
func (g TileGrid) ToScreen(p Point) Point {
	r := g.screenPos
	dx := (p.X - g.pos.X) / 2
	r.X += 48 * dx
	r.Y += -12 * dx

	if p.X%2 != 0 {
		if p.X <= g.pos.X {
			r.X -= 16
			r.Y += 12
		} else {
			r.X += 32
		}
	}

	dy := p.Y - g.pos.Y
	r.X += 16 * dy
	r.Y += 12 * dy

	return r
}

// go0 is the shared implementation behind Go, GoUnbounded and
// GoClipped. Parity is re-read from the *current* tile's X at every
// one of the n steps, not from the starting tile — this is the crux
// of the staggered-column layout.
func (g TileGrid) go0(p Point, d Direction, n int32, clip bool) Point {
	for i := int32(0); i < n; i++ {
		var advance Point
		if ((p.X % 2) + 2) % 2 == 0 {
			advance = advanceEven[d]
		} else {
			advance = advanceOdd[d]
		}
		next := p.Add(advance)
		if clip && !g.IsInBounds(next) {
			break
		}
		p = next
	}
	return p
}

// GoUnbounded steps n tiles from p in direction d without regard to
// grid bounds.
func (g TileGrid) GoUnbounded(p Point, d Direction, n int32) Point {
	return g.go0(p, d, n, false)
}

// GoClipped steps n tiles from p in direction d, stopping at the last
// in-bounds position.
func (g TileGrid) GoClipped(p Point, d Direction, n int32) Point {
	return g.go0(p, d, n, true)
}

// Go steps n tiles from p in direction d, returning false if the
// unbounded result would be out of bounds.
func (g TileGrid) Go(p Point, d Direction, n int32) (Point, bool) {
	result := g.go0(p, d, n, false)
	if !g.IsInBounds(result) {
		return Point{}, false
	}
	return result, true
}

// Direction returns the direction from one tile to an adjacent or
// distant tile, measured through screen space. from and to must
// differ; passing equal points is a programming error and panics.
func (g TileGrid) Direction(from, to Point) Direction {
	if from == to {
		panic("hexgrid: Direction requires from != to")
	}
	fromScr := g.ToScreen(from)
	toScr := g.ToScreen(to)
	d := toScr.Sub(fromScr)

	if d.X != 0 {
		angle := atan2Degrees(-float64(d.Y), float64(d.X))
		// int32() truncates the angle toward zero; it does not floor.
		a := 90 - int32(angle)
		ordinal := ((a%360+360)%360 + 0) / 60
		if ordinal > 5 {
			ordinal = 5
		}
		dir, _ := DirectionFromOrdinal(int(ordinal))
		return dir
	}
	if d.Y < 0 {
		return NE
	}
	return SE
}

// Distance returns the number of tile steps from p1 to p2, walking
// greedily toward p2 one step at a time.
func (g TileGrid) Distance(p1, p2 Point) int32 {
	var distance int32
	for p1 != p2 {
		dir := g.Direction(p1, p2)
		p1 = g.GoUnbounded(p1, dir, 1)
		distance++
	}
	return distance
}

// IsInFrontOf reports whether p1 is in front of p2 when looking
// toward SE.
func (g TileGrid) IsInFrontOf(p1, p2 Point) bool {
	sp1 := g.ToScreen(p1)
	sp2 := g.ToScreen(p2)
	return sp2.X-sp1.X <= (sp2.Y-sp1.Y)*-4
}

// IsToRightOf reports whether p1 is to the right of p2 when looking
// toward SE.
func (g TileGrid) IsToRightOf(p1, p2 Point) bool {
	sp1 := g.ToScreen(p1)
	sp2 := g.ToScreen(p2)
	return sp1.X-sp2.X <= (sp1.Y-sp2.Y)*32/24
}

// Beyond returns the tile reached by walking distance tiles from
// "from" along the discrete screen-space line toward "to", stopping
// early if the next tile would be out of bounds. distance must be
// >= 0; distance == 0 returns from unchanged.
func (g TileGrid) Beyond(from, to Point, distance int32) Point {
	if distance < 0 {
		panic("hexgrid: Beyond requires distance >= 0")
	}
	if distance == 0 {
		return from
	}

	froms := g.ToScreen(from).Add(Point{X: 16, Y: 18})
	tos := g.ToScreen(to).Add(Point{X: 16, Y: 18})

	dx := tos.X - froms.X
	dy := tos.Y - froms.Y
	adx := 2 * abs32(dx)
	ady := 2 * abs32(dy)
	xi := sign32(dx)
	yi := sign32(dy)

	cur := from
	curs := froms
	var curDistance int32

	// The x-dominant and y-dominant branches are each a Bresenham-like
	// walk; the x-dominant branch advances curs.y using yi on the minor
	// step and xi on the dominant step, an asymmetry that must be
	// preserved bit-for-bit to keep traced trajectories identical to
	// the reference tracer.
	if adx > ady {
		j := ady - adx/2
		for {
			next := g.FromScreen(curs)
			if next != cur {
				curDistance++
				if curDistance == distance || !g.IsInBounds(next) {
					return cur
				}
				cur = next
			}
			if j >= 0 {
				j -= adx
				curs.Y += yi
			}
			j += ady
			curs.Y += xi
		}
	}

	j := adx - ady/2
	for {
		next := g.FromScreen(curs)
		if next != cur {
			curDistance++
			if curDistance == distance || !g.IsInBounds(next) {
				return cur
			}
			cur = next
		}
		if j >= 0 {
			j -= ady
			curs.X += xi
		}
		j += adx
		curs.Y += yi
	}
}
