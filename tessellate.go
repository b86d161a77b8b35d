package mandala

import (
	"math"
	"sort"
)

// DefaultTolerance is the curve-flattening error bound, in outline units,
// used when none is configured.
const DefaultTolerance = 0.01

// Tessellator fills outlines with triangles using the even-odd rule.
type Tessellator struct {
	// Tolerance bounds the distance between a curve and its flattened chords.
	// Non-positive means DefaultTolerance.
	Tolerance float64
}

// Fill triangulates o and returns the triangle corners in outline space,
// three per triangle. Output is deterministic for a given outline and
// tolerance.
//
// Rings at even nesting depth are filled, rings at odd depth are holes. Holes
// are bridged into their enclosing ring and each resulting ring is ear
// clipped, so a simple ring of n points yields n-2 triangles. Rings that
// cross one another or repeat a boundary are rejected.
func (t Tessellator) Fill(o *Outline) ([]Vec2, error) {
	if o.Empty() {
		return nil, &TessellationError{Ring: -1, Reason: "outline is empty"}
	}
	tol := t.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	var rings [][]Vec2
	for _, r := range o.Flatten(tol) {
		if math.Abs(signedArea(r)) > pointEps {
			rings = append(rings, r)
		}
	}
	if len(rings) == 0 {
		return nil, &TessellationError{Ring: -1, Reason: "outline encloses no area"}
	}

	for i := range rings {
		for j := i + 1; j < len(rings); j++ {
			if ringsOverlap(rings[i], rings[j]) {
				return nil, &TessellationError{Ring: j, Reason: "rings overlap"}
			}
		}
	}

	polys := groupRings(rings)
	var out []Vec2
	for _, p := range polys {
		merged := p.outer
		for _, h := range p.holes {
			var ok bool
			merged, ok = bridgeHole(merged, h.pts, p.holes)
			if !ok {
				return nil, &TessellationError{Ring: h.index, Reason: "hole cannot be bridged to its outer ring"}
			}
		}
		var ok bool
		out, ok = earClip(out, merged)
		if !ok {
			return nil, &TessellationError{Ring: p.index, Reason: "ring is self-intersecting"}
		}
	}
	return out, nil
}

// --- Ring classification ---

type ring struct {
	index int
	pts   []Vec2
	area  float64 // absolute
	depth int
}

type polygon struct {
	index int
	outer []Vec2
	holes []ring
}

// groupRings orients every ring (outer rings positive, holes negative) and
// attaches each hole to the smallest ring one level above it.
func groupRings(pts [][]Vec2) []polygon {
	rings := make([]ring, len(pts))
	for i, p := range pts {
		rings[i] = ring{index: i, pts: p, area: math.Abs(signedArea(p))}
	}
	for i := range rings {
		probe := rings[i].pts[0]
		for j := range rings {
			if i != j && rings[j].area > rings[i].area && pointInRing(probe, rings[j].pts) {
				rings[i].depth++
			}
		}
	}

	var polys []polygon
	owner := make(map[int]int) // ring index -> polys index
	for _, r := range rings {
		if r.depth%2 == 0 {
			owner[r.index] = len(polys)
			polys = append(polys, polygon{index: r.index, outer: orient(r.pts, true)})
		}
	}
	for _, r := range rings {
		if r.depth%2 == 0 {
			continue
		}
		parent := -1
		for _, c := range rings {
			if c.depth != r.depth-1 || c.area <= r.area || !pointInRing(r.pts[0], c.pts) {
				continue
			}
			if parent < 0 || c.area < rings[parent].area {
				parent = c.index
			}
		}
		if parent < 0 {
			continue
		}
		r.pts = orient(r.pts, false)
		pi := owner[parent]
		polys[pi].holes = append(polys[pi].holes, r)
	}

	// Bridge holes right to left so later bridges never cross earlier ones.
	for i := range polys {
		holes := polys[i].holes
		sort.SliceStable(holes, func(a, b int) bool {
			return maxX(holes[a].pts) > maxX(holes[b].pts)
		})
	}
	return polys
}

func signedArea(pts []Vec2) float64 {
	var s float64
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		s += a.X*b.Y - b.X*a.Y
	}
	return s / 2
}

// orient returns pts with positive signed area when positive is true and
// negative signed area otherwise. The input is not modified.
func orient(pts []Vec2, positive bool) []Vec2 {
	out := make([]Vec2, len(pts))
	copy(out, pts)
	if (signedArea(out) > 0) != positive {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// pointInRing is the even-odd crossing test.
func pointInRing(p Vec2, pts []Vec2) bool {
	in := false
	n := len(pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func maxX(pts []Vec2) float64 {
	m := math.Inf(-1)
	for _, p := range pts {
		m = math.Max(m, p.X)
	}
	return m
}

// ringsOverlap reports whether a and b cross each other or trace the same
// boundary. Nesting depth cannot express the even-odd coverage of either case.
// Rings that only touch do not overlap.
func ringsOverlap(a, b []Vec2) bool {
	if sameRing(a, b) {
		return true
	}
	for i := range a {
		p, q := a[i], a[(i+1)%len(a)]
		for j := range b {
			if segmentsCrossProperly(p, q, b[j], b[(j+1)%len(b)]) {
				return true
			}
		}
	}
	return false
}

// sameRing reports whether a and b visit the same points, in any order or
// direction.
func sameRing(a, b []Vec2) bool {
	if len(a) != len(b) {
		return false
	}
	for _, p := range a {
		found := false
		for _, q := range b {
			if samePoint(p, q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// segmentsCrossProperly reports whether a-b and c-d intersect at a single
// point interior to both.
func segmentsCrossProperly(a, b, c, d Vec2) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	return (d1 > pointEps && d2 < -pointEps || d1 < -pointEps && d2 > pointEps) &&
		(d3 > pointEps && d4 < -pointEps || d3 < -pointEps && d4 > pointEps)
}

// --- Hole bridging ---

// bridgeHole splices hole into outer through a pair of coincident edges
// joining the hole's rightmost point to the nearest outer vertex that can
// see it. The bridge must not cross outer, the hole itself, or any other hole.
func bridgeHole(outer, hole []Vec2, all []ring) ([]Vec2, bool) {
	m := 0
	for i, p := range hole {
		if p.X > hole[m].X || p.X == hole[m].X && p.Y < hole[m].Y {
			m = i
		}
	}
	mp := hole[m]

	order := make([]int, len(outer))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return outer[order[a]].Sub(mp).Len() < outer[order[b]].Sub(mp).Len()
	})

	for _, vi := range order {
		vp := outer[vi]
		if !segmentClear(vp, mp, outer) || !segmentClear(vp, mp, hole) {
			continue
		}
		clear := true
		for _, h := range all {
			if !segmentClear(vp, mp, h.pts) {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}

		merged := make([]Vec2, 0, len(outer)+len(hole)+2)
		merged = append(merged, outer[:vi+1]...)
		for k := 0; k <= len(hole); k++ {
			merged = append(merged, hole[(m+k)%len(hole)])
		}
		merged = append(merged, vp)
		merged = append(merged, outer[vi+1:]...)
		return merged, true
	}
	return nil, false
}

// segmentClear reports whether segment a-b crosses no edge of the ring pts.
// Edges touching a or b are ignored.
func segmentClear(a, b Vec2, pts []Vec2) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		p, q := pts[i], pts[(i+1)%n]
		if samePoint(p, a) || samePoint(p, b) || samePoint(q, a) || samePoint(q, b) {
			continue
		}
		if segmentsCross(a, b, p, q) {
			return false
		}
	}
	return true
}

func samePoint(a, b Vec2) bool {
	return a.Sub(b).Len() <= pointEps
}

// segmentsCross reports whether segments a-b and c-d intersect, touching
// included.
func segmentsCross(a, b, c, d Vec2) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	if (d1 > 0 && d2 < 0 || d1 < 0 && d2 > 0) && (d3 > 0 && d4 < 0 || d3 < 0 && d4 > 0) {
		return true
	}
	return d1 == 0 && onSegment(c, d, a) ||
		d2 == 0 && onSegment(c, d, b) ||
		d3 == 0 && onSegment(a, b, c) ||
		d4 == 0 && onSegment(a, b, d)
}

// onSegment reports whether p, known to be collinear with a-b, lies within it.
func onSegment(a, b, p Vec2) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// --- Ear clipping ---

// earClip triangulates a positively oriented ring and appends the triangle
// corners to dst. It reports false when the ring cannot be fully clipped.
func earClip(dst []Vec2, pts []Vec2) ([]Vec2, bool) {
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}

	cursor := 0
	for len(idx) > 3 {
		n := len(idx)
		clipped := false
		for k := 0; k < n; k++ {
			i := (cursor + k) % n
			a, b, c := pts[idx[(i+n-1)%n]], pts[idx[i]], pts[idx[(i+1)%n]]
			if !isEar(a, b, c, pts, idx) {
				continue
			}
			dst = append(dst, a, b, c)
			idx = append(idx[:i], idx[i+1:]...)
			// Resume at the ear's left neighbour, whose corner just changed.
			cursor = (i + n - 2) % (n - 1)
			clipped = true
			break
		}
		if clipped {
			continue
		}
		// No proper ear: drop one zero-area corner (a bridge spike or a
		// collinear run the bridge exposed) and retry.
		dropped := false
		for i := 0; i < n; i++ {
			a, b, c := pts[idx[(i+n-1)%n]], pts[idx[i]], pts[idx[(i+1)%n]]
			if math.Abs(cross(a, b, c)) <= pointEps {
				idx = append(idx[:i], idx[i+1:]...)
				dropped = true
				break
			}
		}
		if !dropped {
			return dst, false
		}
	}

	if len(idx) == 3 {
		a, b, c := pts[idx[0]], pts[idx[1]], pts[idx[2]]
		switch area := cross(a, b, c); {
		case area > pointEps:
			dst = append(dst, a, b, c)
		case area < -pointEps:
			return dst, false
		}
	}
	return dst, true
}

// isEar reports whether b is a convex corner whose triangle a-b-c contains
// no other ring vertex. Vertices coincident with a corner are ignored so
// bridge duplicates do not block their own ears.
func isEar(a, b, c Vec2, pts []Vec2, idx []int) bool {
	if cross(a, b, c) <= pointEps {
		return false
	}
	for _, k := range idx {
		p := pts[k]
		if samePoint(p, a) || samePoint(p, b) || samePoint(p, c) {
			continue
		}
		if pointInTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

// pointInTriangle reports whether p lies inside or on the edge of the
// positively oriented triangle a-b-c.
func pointInTriangle(p, a, b, c Vec2) bool {
	return cross(a, b, p) >= 0 && cross(b, c, p) >= 0 && cross(c, a, p) >= 0
}
