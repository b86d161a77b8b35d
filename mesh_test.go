package mandala

import (
	"errors"
	"testing"
)

func TestNewMutableMeshDefaults(t *testing.T) {
	m := NewMutableMesh(mustParse(t, squarePath))
	if m.Color() != ColorRed {
		t.Errorf("Color = %v, want ColorRed", m.Color())
	}
	assertMatrix(t, "transform", m.Transform(), Identity)
	assertNear(t, "tolerance", m.Tolerance(), DefaultTolerance)
}

func TestTessellateAppliesColorAndTransform(t *testing.T) {
	m := NewMutableMesh(mustParse(t, squarePath))
	c := Color{R: 0.2, G: 0.4, B: 0.6, A: 0.8}
	m.SetColor(c)
	m.SetTransform(Translate(100, 0).Mul(Scale(2, 2)))

	var buf TriangleBuffer
	n, err := m.Tessellate(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || buf.Len() != 2 {
		t.Fatalf("emitted %d (buffer %d), want 2", n, buf.Len())
	}
	for _, tri := range buf.Triangles() {
		for _, v := range tri {
			if v.Color != c {
				t.Errorf("vertex color = %v, want %v", v.Color, c)
			}
			if v.X < 100 || v.X > 120 || v.Y < 0 || v.Y > 20 {
				t.Errorf("vertex (%v, %v) outside transformed square", v.X, v.Y)
			}
		}
	}
}

func TestTessellateSettersAreLazy(t *testing.T) {
	m := NewMutableMesh(mustParse(t, squarePath))
	var first TriangleBuffer
	if _, err := m.Tessellate(&first); err != nil {
		t.Fatal(err)
	}
	snapshot := append([]Triangle(nil), first.Triangles()...)

	m.SetColor(ColorWhite)
	m.SetTransform(Translate(5, 5))
	// Previously emitted triangles are unaffected.
	for i := range snapshot {
		if first.Triangles()[i] != snapshot[i] {
			t.Fatal("setters changed already emitted triangles")
		}
	}

	var second TriangleBuffer
	if _, err := m.Tessellate(&second); err != nil {
		t.Fatal(err)
	}
	if second.Triangles()[0][0].Color != ColorWhite {
		t.Error("new color not applied at next Tessellate")
	}
}

func TestTessellateBitIdentical(t *testing.T) {
	m := NewMutableMesh(mustParse(t, quadPetalPath))
	m.SetTransform(Translate(500, 500).Mul(Rotate(33)).Mul(Scale(1.7, 0.4)))
	m.SetColor(Color{R: 0.3, G: 0.1, B: 0.9, A: 0.5})

	var a, b TriangleBuffer
	if _, err := m.Tessellate(&a); err != nil {
		t.Fatal(err)
	}
	m.UpdatePath(mustParse(t, quadPetalPath)) // forces a fresh triangulation
	if _, err := m.Tessellate(&b); err != nil {
		t.Fatal(err)
	}
	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Triangles() {
		if a.Triangles()[i] != b.Triangles()[i] {
			t.Fatalf("triangle %d differs", i)
		}
	}
}

func TestUpdatePathKeepsColorAndTransform(t *testing.T) {
	m := NewMutableMesh(mustParse(t, squarePath))
	m.SetColor(ColorWhite)
	m.SetTransform(Scale(3, 3))
	m.UpdatePath(mustParse(t, quadPetalPath))

	var buf TriangleBuffer
	n, err := m.Tessellate(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 70 {
		t.Errorf("triangles = %d, want 70", n)
	}
	if m.Color() != ColorWhite {
		t.Error("UpdatePath reset color")
	}
	assertMatrix(t, "transform", m.Transform(), Scale(3, 3))
}

func TestSetTolerance(t *testing.T) {
	m := NewMutableMesh(mustParse(t, quadPetalPath))
	m.SetTolerance(1)
	n, err := m.Tessellate(SinkFunc(func(Triangle) {}))
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("triangles at tol 1 = %d, want 7", n)
	}

	m.SetTolerance(-5)
	assertNear(t, "reset tolerance", m.Tolerance(), DefaultTolerance)
	n, _ = m.Tessellate(SinkFunc(func(Triangle) {}))
	if n != 70 {
		t.Errorf("triangles at default tol = %d, want 70", n)
	}
}

func TestTessellateDegenerateEmitsNothing(t *testing.T) {
	m := NewMutableMesh(mustParse(t, "M0 0 L10 0 L20 0 Z"))
	var buf TriangleBuffer
	n, err := m.Tessellate(&buf)
	if !errors.Is(err, ErrTessellation) {
		t.Fatalf("err = %v, want ErrTessellation", err)
	}
	if n != 0 || buf.Len() != 0 {
		t.Errorf("emitted %d triangles on failure", buf.Len())
	}
	if m.Bounds() != (Rect{}) {
		t.Errorf("Bounds = %v, want zero", m.Bounds())
	}
}

func TestMeshBounds(t *testing.T) {
	m := NewMutableMesh(mustParse(t, squarePath))
	want := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if got := m.Bounds(); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
	if !m.Bounds().Contains(5, 5) {
		t.Error("Bounds should contain center")
	}
}

func TestTriangleBufferReset(t *testing.T) {
	var buf TriangleBuffer
	buf.AddTriangle(Triangle{})
	buf.AddTriangle(Triangle{})
	buf.Reset()
	if buf.Len() != 0 {
		t.Errorf("Len after Reset = %d", buf.Len())
	}
}
