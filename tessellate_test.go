package mandala

import (
	"errors"
	"math"
	"testing"
)

const (
	squarePath    = "M0 0 L10 0 L10 10 L0 10 Z"
	quadPetalPath = "M0 0 Q50 100 100 0 Z"
)

func mustParse(t *testing.T, d string) *Outline {
	t.Helper()
	o, err := ParsePathData(d)
	if err != nil {
		t.Fatalf("ParsePathData(%q): %v", d, err)
	}
	return o
}

func fillCount(t *testing.T, d string, tol float64) int {
	t.Helper()
	pts, err := Tessellator{Tolerance: tol}.Fill(mustParse(t, d))
	if err != nil {
		t.Fatalf("Fill(%q): %v", d, err)
	}
	if len(pts)%3 != 0 {
		t.Fatalf("Fill(%q) returned %d corners, not a multiple of 3", d, len(pts))
	}
	return len(pts) / 3
}

func trianglesArea(pts []Vec2) float64 {
	var sum float64
	for i := 0; i+2 < len(pts); i += 3 {
		sum += math.Abs(cross(pts[i], pts[i+1], pts[i+2])) / 2
	}
	return sum
}

func TestFillSquare(t *testing.T) {
	if got := fillCount(t, squarePath, DefaultTolerance); got != 2 {
		t.Errorf("square triangles = %d, want 2", got)
	}
}

func TestFillQuadraticPetal(t *testing.T) {
	// 71 chords plus the closing edge give a 72-point ring.
	if got := fillCount(t, quadPetalPath, 0.01); got != 70 {
		t.Errorf("quad petal triangles = %d, want 70", got)
	}
}

func TestFillCoarserToleranceFewerTriangles(t *testing.T) {
	fine := fillCount(t, quadPetalPath, 0.01)
	coarse := fillCount(t, quadPetalPath, 1)
	if coarse != 7 {
		t.Errorf("coarse triangles = %d, want 7", coarse)
	}
	if coarse >= fine {
		t.Errorf("coarse (%d) should be fewer than fine (%d)", coarse, fine)
	}
}

func TestFillSimpleRingNMinus2(t *testing.T) {
	// Concave arrow-like ring with 7 points.
	d := "M0 0 L40 0 L40 -10 L60 10 L40 30 L40 20 L0 20 Z"
	if got := fillCount(t, d, DefaultTolerance); got != 5 {
		t.Errorf("triangles = %d, want 5", got)
	}
}

func TestFillSquareWithHole(t *testing.T) {
	d := squarePath + " M3 3 L7 3 L7 7 L3 7 Z"
	pts, err := Tessellator{}.Fill(mustParse(t, d))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(pts) / 3; got != 8 {
		t.Errorf("triangles = %d, want 8", got)
	}
	assertNear(t, "area", trianglesArea(pts), 84)
}

func TestFillHoleOrientationIrrelevant(t *testing.T) {
	// Same hole drawn the other way round: even-odd ignores winding.
	d := squarePath + " M3 3 L3 7 L7 7 L7 3 Z"
	pts, err := Tessellator{}.Fill(mustParse(t, d))
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "area", trianglesArea(pts), 84)
}

func TestFillIslandInsideHole(t *testing.T) {
	d := "M0 0 L30 0 L30 30 L0 30 Z M5 5 L25 5 L25 25 L5 25 Z M10 10 L20 10 L20 20 L10 20 Z"
	pts, err := Tessellator{}.Fill(mustParse(t, d))
	if err != nil {
		t.Fatal(err)
	}
	// 900 - 400 + 100
	assertNear(t, "area", trianglesArea(pts), 600)
}

func TestFillDisjointRings(t *testing.T) {
	d := squarePath + " M20 0 L30 0 L30 10 L20 10 Z"
	if got := fillCount(t, d, DefaultTolerance); got != 4 {
		t.Errorf("triangles = %d, want 4", got)
	}
}

func TestFillDeterministic(t *testing.T) {
	o := mustParse(t, quadPetalPath+" M200 0 L210 0 L210 10 L200 10 Z")
	a, err := Tessellator{}.Fill(o)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Tessellator{}.Fill(o)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("corner %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFillDegenerate(t *testing.T) {
	for _, d := range []string{
		"M0 0 L10 0 L20 0 Z", // collinear
		"M5 5 L5 5 Z",        // single point
		"M0 0 M10 10",        // moves only
	} {
		_, err := Tessellator{}.Fill(mustParse(t, d))
		var te *TessellationError
		if !errors.As(err, &te) {
			t.Errorf("Fill(%q) err = %v, want *TessellationError", d, err)
			continue
		}
		if te.Ring != -1 {
			t.Errorf("Fill(%q) Ring = %d, want -1", d, te.Ring)
		}
	}
}

func TestFillOverlappingRings(t *testing.T) {
	for _, d := range []string{
		squarePath + " M5 5 L15 5 L15 15 L5 15 Z", // crossing, equal areas
		squarePath + " " + squarePath,             // duplicate
		squarePath + " M10 10 L0 10 L0 0 L10 0 Z", // duplicate, reversed
		squarePath + " M5 2 L20 2 L20 8 L5 8 Z",   // crossing, unequal areas
	} {
		_, err := Tessellator{}.Fill(mustParse(t, d))
		var te *TessellationError
		if !errors.As(err, &te) {
			t.Errorf("Fill(%q) err = %v, want *TessellationError", d, err)
			continue
		}
		if te.Reason != "rings overlap" || te.Ring != 1 {
			t.Errorf("Fill(%q) = ring %d %q, want ring 1 \"rings overlap\"", d, te.Ring, te.Reason)
		}
	}
}

func TestFillTouchingRingsAllowed(t *testing.T) {
	// Shared edge and shared corner only.
	d := squarePath + " M10 0 L20 0 L20 10 L10 10 Z M20 10 L30 10 L30 20 L20 20 Z"
	if got := fillCount(t, d, DefaultTolerance); got != 6 {
		t.Errorf("triangles = %d, want 6", got)
	}
}

func TestFillEmptyOutline(t *testing.T) {
	_, err := Tessellator{}.Fill(NewOutline())
	var te *TessellationError
	if !errors.As(err, &te) || te.Reason != "outline is empty" {
		t.Fatalf("err = %v, want empty outline error", err)
	}
}

func TestFillSelfIntersecting(t *testing.T) {
	_, err := Tessellator{}.Fill(mustParse(t, "M0 0 L10 10 L10 0 L0 20 Z"))
	if !errors.Is(err, ErrTessellation) {
		t.Fatalf("err = %v, want ErrTessellation", err)
	}
}

func TestPointInRing(t *testing.T) {
	sq := []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !pointInRing(Vec2{5, 5}, sq) {
		t.Error("center should be inside")
	}
	if pointInRing(Vec2{15, 5}, sq) {
		t.Error("point right of square should be outside")
	}
}

func TestOrient(t *testing.T) {
	cw := []Vec2{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	if signedArea(orient(cw, true)) <= 0 {
		t.Error("orient(positive) should give positive area")
	}
	if signedArea(orient(cw, false)) >= 0 {
		t.Error("orient(negative) should give negative area")
	}
	if cw[1] != (Vec2{0, 10}) {
		t.Error("orient modified its input")
	}
}
