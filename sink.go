package mandala

// Sink receives colored triangles in a common coordinate space. The core never
// presents pixels; render adapters implement Sink and draw what they collect.
type Sink interface {
	AddTriangle(Triangle)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Triangle)

// AddTriangle calls f(t).
func (f SinkFunc) AddTriangle(t Triangle) { f(t) }

// TriangleBuffer is a Sink that keeps every triangle in memory. The zero value
// is ready to use.
type TriangleBuffer struct {
	tris []Triangle
}

// AddTriangle appends t to the buffer.
func (b *TriangleBuffer) AddTriangle(t Triangle) {
	b.tris = append(b.tris, t)
}

// Triangles returns the collected triangles. The slice is only valid until
// the next Reset.
func (b *TriangleBuffer) Triangles() []Triangle { return b.tris }

// Len returns the number of collected triangles.
func (b *TriangleBuffer) Len() int { return len(b.tris) }

// Reset empties the buffer, keeping its capacity (high-water mark).
func (b *TriangleBuffer) Reset() { b.tris = b.tris[:0] }
