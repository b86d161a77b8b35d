package mandala

import "math"

// Color represents an RGBA color. Channels are nominally in [0, 1] but are not
// clamped: interpolation toward an out-of-range openness value extrapolates
// past the endpoint colors. Render adapters clamp at submission time.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorRed is the initial mesh color before the first draw assigns one.
	ColorRed = Color{1, 0, 0, 1}
	// ColorWhite is opaque white.
	ColorWhite = Color{1, 1, 1, 1}
)

// LerpColor interpolates each channel of a toward b independently.
// w=0 returns a, w=1 returns b; other weights extrapolate.
func LerpColor(a, b Color, w float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*w,
		G: a.G + (b.G-a.G)*w,
		B: a.B + (b.B-a.B)*w,
		A: a.A + (b.A-a.A)*w,
	}
}

// Vec2 is a 2D point or direction.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by k.
func (v Vec2) Mul(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// cross returns the z component of (b-a) x (c-a).
func cross(a, b, c Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Vertex is a transformed, colored triangle corner.
type Vertex struct {
	X, Y  float64
	Color Color
}

// Triangle is one filled triangle in sink space.
type Triangle [3]Vertex

// Rect is an axis-aligned rectangle. Y grows downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// boundsOf returns the AABB of pts, or the zero Rect when pts is empty.
func boundsOf(pts []Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
