package mandala

import "math"

// maxFlattenSegments caps the number of chords a single curve is split into.
const maxFlattenSegments = 1024

// pointEps is the distance below which two flattened points are merged.
const pointEps = 1e-9

// Flatten converts the outline into closed polylines ("rings"), one per
// subpath. Curves and arcs are replaced by chords whose distance from the true
// curve stays within tol. Open subpaths are closed implicitly, as they are for
// filling. Repeated and collinear points are dropped, and rings left with
// fewer than three points are discarded. The closing point is not repeated.
func (o *Outline) Flatten(tol float64) [][]Vec2 {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	var rings [][]Vec2
	var cur []Vec2
	var pen Vec2

	flush := func() {
		if r := cleanRing(cur); len(r) >= 3 {
			rings = append(rings, r)
		}
		cur = nil
	}

	for _, s := range o.segs {
		switch s.Kind {
		case SegMoveTo:
			flush()
			pen = s.P[0]
			cur = append(cur, pen)
		case SegLineTo:
			cur = append(cur, s.P[0])
		case SegQuadTo:
			cur = flattenQuad(cur, pen, s.P[0], s.P[1], tol)
		case SegCubicTo:
			cur = flattenCubic(cur, pen, s.P[0], s.P[1], s.P[2], tol)
		case SegArcTo:
			cur = flattenArc(cur, pen, s, tol)
		case SegClose:
			flush()
		}
		pen = s.End()
	}
	flush()
	return rings
}

func segmentCount(n float64) int {
	if math.IsNaN(n) || n < 1 {
		return 1
	}
	if n > maxFlattenSegments {
		return maxFlattenSegments
	}
	return int(math.Ceil(n))
}

// flattenQuad appends the points of the quadratic Bézier a→b (control c),
// excluding a. The chord error of n uniform steps is |a-2c+b|/(4n²).
func flattenQuad(dst []Vec2, a, c, b Vec2, tol float64) []Vec2 {
	dd := a.Sub(c.Mul(2)).Add(b).Len()
	n := segmentCount(math.Sqrt(dd / (4 * tol)))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		dst = append(dst, Vec2{
			X: u*u*a.X + 2*u*t*c.X + t*t*b.X,
			Y: u*u*a.Y + 2*u*t*c.Y + t*t*b.Y,
		})
	}
	return dst
}

// flattenCubic appends the points of the cubic Bézier a→b (controls c1, c2),
// excluding a. The second derivative is bounded by 6*max(|d1|, |d2|), giving
// a chord error of 3*max/(4n²).
func flattenCubic(dst []Vec2, a, c1, c2, b Vec2, tol float64) []Vec2 {
	d1 := a.Sub(c1.Mul(2)).Add(c2).Len()
	d2 := c1.Sub(c2.Mul(2)).Add(b).Len()
	n := segmentCount(math.Sqrt(3 * math.Max(d1, d2) / (4 * tol)))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		u2 := u * u
		t2 := t * t
		dst = append(dst, Vec2{
			X: u2*u*a.X + 3*u2*t*c1.X + 3*u*t2*c2.X + t2*t*b.X,
			Y: u2*u*a.Y + 3*u2*t*c1.Y + 3*u*t2*c2.Y + t2*t*b.Y,
		})
	}
	return dst
}

// flattenArc appends the points of an SVG endpoint-parameterized elliptical
// arc from a to s.P[0], excluding a. Zero radii degrade to a straight line and
// radii too small to reach the endpoint are scaled up.
func flattenArc(dst []Vec2, a Vec2, s Segment, tol float64) []Vec2 {
	b := s.P[0]
	rx, ry := math.Abs(s.RX), math.Abs(s.RY)
	if rx < pointEps || ry < pointEps || a.Sub(b).Len() < pointEps {
		return append(dst, b)
	}

	sinPhi, cosPhi := math.Sincos(s.Rotation * math.Pi / 180)
	dx, dy := (a.X-b.X)/2, (a.Y-b.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		k := math.Sqrt(lambda)
		rx *= k
		ry *= k
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if den > 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if s.LargeArc == s.Sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	cx := cosPhi*cx1 - sinPhi*cy1 + (a.X+b.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (a.Y+b.Y)/2

	theta1 := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	theta2 := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	delta := theta2 - theta1
	if s.Sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !s.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	r := math.Max(rx, ry)
	step := math.Pi / 2
	if tol < r {
		step = 2 * math.Acos(1-tol/r)
	}
	n := segmentCount(math.Abs(delta) / step)
	for i := 1; i < n; i++ {
		t := theta1 + delta*float64(i)/float64(n)
		sinT, cosT := math.Sincos(t)
		dst = append(dst, Vec2{
			X: cx + rx*cosT*cosPhi - ry*sinT*sinPhi,
			Y: cy + rx*cosT*sinPhi + ry*sinT*cosPhi,
		})
	}
	// End exactly on the endpoint so adjacent segments join without a seam.
	return append(dst, b)
}

// cleanRing removes repeated points and points collinear with their
// neighbours, treating pts as a closed ring. It loops until no point is
// removed since each removal can expose a new collinear triple.
func cleanRing(pts []Vec2) []Vec2 {
	if len(pts) == 0 {
		return nil
	}
	ring := make([]Vec2, 0, len(pts))
	for _, p := range pts {
		if len(ring) > 0 && p.Sub(ring[len(ring)-1]).Len() <= pointEps {
			continue
		}
		ring = append(ring, p)
	}
	for len(ring) > 1 && ring[0].Sub(ring[len(ring)-1]).Len() <= pointEps {
		ring = ring[:len(ring)-1]
	}

	for changed := true; changed && len(ring) >= 3; {
		changed = false
		out := ring[:0:0]
		n := len(ring)
		for i := 0; i < n; i++ {
			prev := ring[(i+n-1)%n]
			if len(out) > 0 {
				prev = out[len(out)-1]
			}
			next := ring[(i+1)%n]
			if collinear(prev, ring[i], next) {
				changed = true
				continue
			}
			out = append(out, ring[i])
		}
		ring = out
	}
	if len(ring) < 3 {
		return nil
	}
	return ring
}

// collinear reports whether b lies on the line through a and c, or
// coincides with either of them.
func collinear(a, b, c Vec2) bool {
	la := b.Sub(a).Len()
	lc := c.Sub(b).Len()
	if la <= pointEps || lc <= pointEps {
		return true
	}
	return math.Abs(cross(a, b, c)) <= pointEps*la*lc
}
