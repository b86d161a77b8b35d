package mandala

import "math"

// Transform is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// A point maps as x' = a*x + c*y + tx, y' = b*x + d*y + ty.
type Transform [6]float64

// Identity is the identity transform.
var Identity = Transform{1, 0, 0, 1, 0, 0}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Transform {
	return Transform{1, 0, 0, 1, x, y}
}

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation about the origin by the given angle in degrees.
// Positive angles turn +X toward +Y (clockwise on a Y-down screen).
func Rotate(degrees float64) Transform {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// Mul returns the matrix product t * u: u is applied first, then t.
//
//	Translate(p).Mul(Scale(s)) scales about the origin, then moves to p.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		t[0]*u[0] + t[2]*u[1],
		t[1]*u[0] + t[3]*u[1],
		t[0]*u[2] + t[2]*u[3],
		t[1]*u[2] + t[3]*u[3],
		t[0]*u[4] + t[2]*u[5] + t[4],
		t[1]*u[4] + t[3]*u[5] + t[5],
	}
}

// --- Elementwise arithmetic (animation blending only) ---
//
// These operate on the six affine coefficients. The implicit bottom row stays
// [0 0 1], which is exact for blends whose weights sum to one.

// Add returns the elementwise sum t+u.
func (t Transform) Add(u Transform) Transform {
	var r Transform
	for i := range t {
		r[i] = t[i] + u[i]
	}
	return r
}

// Sub returns the elementwise difference t-u.
func (t Transform) Sub(u Transform) Transform {
	var r Transform
	for i := range t {
		r[i] = t[i] - u[i]
	}
	return r
}

// Scaled returns t with every coefficient multiplied by k.
func (t Transform) Scaled(k float64) Transform {
	var r Transform
	for i := range t {
		r[i] = t[i] * k
	}
	return r
}

// LerpTransform returns a + (b-a)*w, blending each coefficient independently.
func LerpTransform(a, b Transform, w float64) Transform {
	return a.Add(b.Sub(a).Scaled(w))
}

// --- Point mapping ---

// Apply maps the point (x, y) through t.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t[0]*x + t[2]*y + t[4], t[1]*x + t[3]*y + t[5]
}

// ApplyVec maps p through t.
func (t Transform) ApplyVec(p Vec2) Vec2 {
	x, y := t.Apply(p.X, p.Y)
	return Vec2{x, y}
}

// Invert returns the inverse of t.
// Returns Identity if t is singular (determinant ≈ 0).
func (t Transform) Invert() Transform {
	det := t[0]*t[3] - t[2]*t[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	invDet := 1.0 / det
	a := t[3] * invDet
	b := -t[1] * invDet
	c := -t[2] * invDet
	d := t[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*t[4] + c*t[5]),
		-(b*t[4] + d*t[5]),
	}
}
