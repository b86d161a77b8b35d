package mandala

// MutableMesh owns one outline together with the color and transform applied
// when it is tessellated. Setters take effect lazily at the next Tessellate.
//
// The local-space triangulation is cached per (outline, tolerance) pair, so
// redrawing the same petal under a new color or transform only re-maps the
// cached corners.
type MutableMesh struct {
	outline   *Outline
	color     Color
	transform Transform
	tol       float64

	// Cached triangulation in outline space. local holds three corners per
	// triangle; err is the cached failure, if any.
	local []Vec2
	err   error
	dirty bool
}

// NewMutableMesh creates a mesh for o. The color starts as ColorRed, the
// transform as Identity, and the tolerance as DefaultTolerance.
func NewMutableMesh(o *Outline) *MutableMesh {
	return &MutableMesh{
		outline:   o,
		color:     ColorRed,
		transform: Identity,
		tol:       DefaultTolerance,
		dirty:     true,
	}
}

// Outline returns the mesh's current outline.
func (m *MutableMesh) Outline() *Outline { return m.outline }

// Color returns the color applied at the next Tessellate.
func (m *MutableMesh) Color() Color { return m.color }

// SetColor sets the vertex color used by the next Tessellate.
func (m *MutableMesh) SetColor(c Color) { m.color = c }

// Transform returns the transform applied at the next Tessellate.
func (m *MutableMesh) Transform() Transform { return m.transform }

// SetTransform sets the transform used by the next Tessellate.
func (m *MutableMesh) SetTransform(t Transform) { m.transform = t }

// Tolerance returns the curve-flattening tolerance.
func (m *MutableMesh) Tolerance() float64 { return m.tol }

// SetTolerance changes the flattening tolerance. Non-positive values reset it
// to DefaultTolerance.
func (m *MutableMesh) SetTolerance(tol float64) {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if tol != m.tol {
		m.tol = tol
		m.dirty = true
	}
}

// UpdatePath replaces the outline without touching color or transform.
func (m *MutableMesh) UpdatePath(o *Outline) {
	m.outline = o
	m.dirty = true
}

// triangulate refreshes the cached local-space triangulation if needed.
func (m *MutableMesh) triangulate() error {
	if !m.dirty {
		return m.err
	}
	m.local, m.err = Tessellator{Tolerance: m.tol}.Fill(m.outline)
	m.dirty = false
	return m.err
}

// LocalTriangles returns the cached outline-space triangulation, three
// corners per triangle. The returned slice must not be modified.
func (m *MutableMesh) LocalTriangles() ([]Vec2, error) {
	if err := m.triangulate(); err != nil {
		return nil, err
	}
	return m.local, nil
}

// Tessellate emits the outline's triangles to sink, mapped through the
// current transform and colored with the current color. It returns the
// number of triangles emitted. On error nothing is emitted.
func (m *MutableMesh) Tessellate(sink Sink) (int, error) {
	if err := m.triangulate(); err != nil {
		return 0, err
	}
	a, b, c, d, tx, ty := m.transform[0], m.transform[1], m.transform[2], m.transform[3], m.transform[4], m.transform[5]
	col := m.color
	n := len(m.local) / 3
	for i := 0; i < n; i++ {
		var tri Triangle
		for k := 0; k < 3; k++ {
			p := m.local[i*3+k]
			tri[k] = Vertex{
				X:     a*p.X + c*p.Y + tx,
				Y:     b*p.X + d*p.Y + ty,
				Color: col,
			}
		}
		sink.AddTriangle(tri)
	}
	return n, nil
}

// Bounds returns the outline-space bounding box of the triangulation, or the
// zero Rect when the outline cannot be tessellated.
func (m *MutableMesh) Bounds() Rect {
	if err := m.triangulate(); err != nil {
		return Rect{}
	}
	return boundsOf(m.local)
}
