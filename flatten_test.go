package mandala

import (
	"math"
	"testing"
)

func TestFlattenQuadSegmentCount(t *testing.T) {
	rings := mustParse(t, quadPetalPath).Flatten(0.01)
	if len(rings) != 1 {
		t.Fatalf("rings = %d, want 1", len(rings))
	}
	if got := len(rings[0]); got != 72 {
		t.Errorf("ring points = %d, want 72", got)
	}
}

func TestFlattenQuadPointsOnCurve(t *testing.T) {
	ring := mustParse(t, quadPetalPath).Flatten(0.01)[0]
	// The curve is x = 100t, y = 200t(1-t).
	for _, p := range ring {
		tt := p.X / 100
		want := 200 * tt * (1 - tt)
		if math.Abs(p.Y-want) > 1e-9 {
			t.Fatalf("point %v off curve (want y=%v)", p, want)
		}
	}
}

func TestFlattenCubicWithinTolerance(t *testing.T) {
	const tol = 0.05
	a, c1, c2, b := Vec2{0, 0}, Vec2{0, 80}, Vec2{100, 80}, Vec2{100, 0}
	pts := flattenCubic([]Vec2{a}, a, c1, c2, b, tol)
	if pts[len(pts)-1] != b {
		t.Fatalf("last point = %v, want %v", pts[len(pts)-1], b)
	}
	// The curve at each chord's parameter midpoint stays within tol of it.
	n := len(pts) - 1
	for i := 0; i < n; i++ {
		tm := (float64(i) + 0.5) / float64(n)
		u := 1 - tm
		mid := a.Mul(u * u * u).Add(c1.Mul(3 * u * u * tm)).Add(c2.Mul(3 * u * tm * tm)).Add(b.Mul(tm * tm * tm))
		chordMid := pts[i].Add(pts[i+1]).Mul(0.5)
		if d := mid.Sub(chordMid).Len(); d > tol {
			t.Fatalf("chord %d deviates %v > %v", i, d, tol)
		}
	}
}

func TestFlattenArcOnCircle(t *testing.T) {
	ring := mustParse(t, "M0 0 A50 50 0 0 1 100 0 Z").Flatten(0.01)[0]
	for _, p := range ring {
		if d := p.Sub(Vec2{50, 0}).Len(); math.Abs(d-50) > 1e-9 {
			t.Fatalf("point %v at radius %v, want 50", p, d)
		}
	}
	if len(ring) < 10 {
		t.Errorf("semicircle flattened to only %d points", len(ring))
	}
}

func TestFlattenArcRadiiScaledUp(t *testing.T) {
	ring := mustParse(t, "M0 0 A1 1 0 0 1 100 0 Z").Flatten(0.01)[0]
	for _, p := range ring {
		if d := p.Sub(Vec2{50, 0}).Len(); math.Abs(d-50) > 1e-9 {
			t.Fatalf("point %v at radius %v, want 50", p, d)
		}
	}
}

func TestFlattenArcZeroRadiusIsLine(t *testing.T) {
	rings := mustParse(t, "M0 0 A0 5 0 0 1 10 0 L10 10 Z").Flatten(0.01)
	if len(rings) != 1 || len(rings[0]) != 3 {
		t.Fatalf("rings = %v, want one triangle", rings)
	}
}

func TestFlattenDropsCollinearAndRepeats(t *testing.T) {
	o := mustParse(t, "M0 0 L5 0 L5 0 L10 0 L10 10 L0 10 L0 0 Z")
	rings := o.Flatten(1)
	if len(rings) != 1 {
		t.Fatalf("rings = %d, want 1", len(rings))
	}
	want := []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if len(rings[0]) != len(want) {
		t.Fatalf("ring = %v, want %v", rings[0], want)
	}
	for i := range want {
		if rings[0][i] != want[i] {
			t.Errorf("ring[%d] = %v, want %v", i, rings[0][i], want[i])
		}
	}
}

func TestFlattenOpenSubpathClosedImplicitly(t *testing.T) {
	rings := mustParse(t, "M0 0 L10 0 L10 10").Flatten(1)
	if len(rings) != 1 || len(rings[0]) != 3 {
		t.Fatalf("rings = %v, want one 3-point ring", rings)
	}
}

func TestSegmentCountClamped(t *testing.T) {
	if got := segmentCount(0); got != 1 {
		t.Errorf("segmentCount(0) = %d, want 1", got)
	}
	if got := segmentCount(math.NaN()); got != 1 {
		t.Errorf("segmentCount(NaN) = %d, want 1", got)
	}
	if got := segmentCount(1e12); got != maxFlattenSegments {
		t.Errorf("segmentCount(1e12) = %d, want %d", got, maxFlattenSegments)
	}
}
