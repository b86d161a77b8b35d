// Package ebitensink draws mandala triangles with Ebitengine.
package ebitensink

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/mandala"
)

// --- White pixel singleton (no sync.Once, drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Every vertex samples its center so the vertex color is the fill color.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Sink accumulates mandala triangles as Ebitengine vertices and submits them
// in a single DrawTriangles32 call. It implements mandala.Sink.
type Sink struct {
	verts []ebiten.Vertex
	inds  []uint32

	// Blend is applied at Flush. The zero value is source-over.
	Blend ebiten.Blend
}

var _ mandala.Sink = (*Sink)(nil)

// New returns an empty Sink.
func New() *Sink {
	return &Sink{}
}

// AddTriangle converts t to three premultiplied vertices. Color channels are
// clamped to [0, 1] here since interpolation may extrapolate past them.
func (s *Sink) AddTriangle(t mandala.Triangle) {
	base := uint32(len(s.verts))
	for _, v := range t {
		ca := clamp01(v.Color.A)
		s.verts = append(s.verts, ebiten.Vertex{
			DstX:   float32(v.X),
			DstY:   float32(v.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: clamp01(v.Color.R) * ca,
			ColorG: clamp01(v.Color.G) * ca,
			ColorB: clamp01(v.Color.B) * ca,
			ColorA: ca,
		})
	}
	s.inds = append(s.inds, base, base+1, base+2)
}

func clamp01(v float64) float32 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return float32(v)
}

// Len returns the number of buffered triangles.
func (s *Sink) Len() int { return len(s.inds) / 3 }

// Vertices returns the buffered vertices. The slice is reused after Reset.
func (s *Sink) Vertices() []ebiten.Vertex { return s.verts }

// Indices returns the buffered triangle indices.
func (s *Sink) Indices() []uint32 { return s.inds }

// Reset drops buffered triangles, keeping capacity (high-water mark).
func (s *Sink) Reset() {
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
}

// Flush draws the buffered triangles onto target and resets the sink.
func (s *Sink) Flush(target *ebiten.Image) {
	if len(s.inds) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = s.Blend
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles32(s.verts, s.inds, ensureWhitePixel(), &triOp)
	s.Reset()
}
