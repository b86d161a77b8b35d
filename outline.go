package mandala

import (
	"fmt"
	"strings"
)

// SegmentKind identifies a path-drawing command.
type SegmentKind uint8

const (
	SegMoveTo  SegmentKind = iota // start a new subpath at P[0]
	SegLineTo                     // straight line to P[0]
	SegQuadTo                     // quadratic Bézier, control P[0], end P[1]
	SegCubicTo                    // cubic Bézier, controls P[0] P[1], end P[2]
	SegArcTo                      // elliptical arc to P[0] (RX, RY, Rotation, LargeArc, Sweep)
	SegClose                      // close the current subpath
)

// Segment is one absolute path-drawing command.
type Segment struct {
	Kind SegmentKind
	P    [3]Vec2

	// Arc parameters (SegArcTo only). Rotation is in degrees.
	RX, RY   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
}

// End returns the pen position after the segment. For SegClose the end is
// the subpath start, which the segment itself does not record.
func (s Segment) End() Vec2 {
	switch s.Kind {
	case SegQuadTo:
		return s.P[1]
	case SegCubicTo:
		return s.P[2]
	default:
		return s.P[0]
	}
}

// Outline is an ordered sequence of absolute path commands describing one
// fillable shape. Build it with the drawing methods or ParsePathData. Once
// handed to a MutableMesh it should be treated as immutable; swap shapes with
// MutableMesh.UpdatePath instead.
type Outline struct {
	segs  []Segment
	start Vec2 // start of the current subpath
	pen   Vec2
	open  bool // a MoveTo has been issued and not yet closed
}

// NewOutline returns an empty outline.
func NewOutline() *Outline {
	return &Outline{}
}

// MoveTo starts a new subpath at (x, y).
func (o *Outline) MoveTo(x, y float64) {
	p := Vec2{x, y}
	o.segs = append(o.segs, Segment{Kind: SegMoveTo, P: [3]Vec2{p}})
	o.start, o.pen, o.open = p, p, true
}

// ensureSubpath opens an implicit subpath at the pen for drawing commands
// issued without a preceding MoveTo.
func (o *Outline) ensureSubpath() {
	if !o.open {
		o.MoveTo(o.pen.X, o.pen.Y)
	}
}

// LineTo draws a straight line to (x, y).
func (o *Outline) LineTo(x, y float64) {
	o.ensureSubpath()
	p := Vec2{x, y}
	o.segs = append(o.segs, Segment{Kind: SegLineTo, P: [3]Vec2{p}})
	o.pen = p
}

// QuadTo draws a quadratic Bézier with control (cx, cy) ending at (x, y).
func (o *Outline) QuadTo(cx, cy, x, y float64) {
	o.ensureSubpath()
	p := Vec2{x, y}
	o.segs = append(o.segs, Segment{Kind: SegQuadTo, P: [3]Vec2{{cx, cy}, p}})
	o.pen = p
}

// CubicTo draws a cubic Bézier with controls (c1x, c1y), (c2x, c2y) ending at (x, y).
func (o *Outline) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	o.ensureSubpath()
	p := Vec2{x, y}
	o.segs = append(o.segs, Segment{Kind: SegCubicTo, P: [3]Vec2{{c1x, c1y}, {c2x, c2y}, p}})
	o.pen = p
}

// ArcTo draws an SVG elliptical arc from the pen to (x, y). rotation is the
// x-axis rotation of the ellipse in degrees.
func (o *Outline) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) {
	o.ensureSubpath()
	p := Vec2{x, y}
	o.segs = append(o.segs, Segment{
		Kind:     SegArcTo,
		P:        [3]Vec2{p},
		RX:       rx,
		RY:       ry,
		Rotation: rotation,
		LargeArc: largeArc,
		Sweep:    sweep,
	})
	o.pen = p
}

// Close closes the current subpath and returns the pen to its start.
func (o *Outline) Close() {
	if !o.open {
		return
	}
	o.segs = append(o.segs, Segment{Kind: SegClose, P: [3]Vec2{o.start}})
	o.pen, o.open = o.start, false
}

// Pos returns the current pen position.
func (o *Outline) Pos() Vec2 { return o.pen }

// Len returns the number of segments.
func (o *Outline) Len() int { return len(o.segs) }

// Empty reports whether the outline has no drawing commands other than
// MoveTo and Close.
func (o *Outline) Empty() bool {
	for _, s := range o.segs {
		if s.Kind != SegMoveTo && s.Kind != SegClose {
			return false
		}
	}
	return true
}

// Segments returns a copy of the outline's commands.
func (o *Outline) Segments() []Segment {
	out := make([]Segment, len(o.segs))
	copy(out, o.segs)
	return out
}

// String formats the outline as absolute SVG path data.
func (o *Outline) String() string {
	sb := strings.Builder{}
	for i, s := range o.segs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s.Kind {
		case SegMoveTo:
			fmt.Fprintf(&sb, "M%g %g", s.P[0].X, s.P[0].Y)
		case SegLineTo:
			fmt.Fprintf(&sb, "L%g %g", s.P[0].X, s.P[0].Y)
		case SegQuadTo:
			fmt.Fprintf(&sb, "Q%g %g %g %g", s.P[0].X, s.P[0].Y, s.P[1].X, s.P[1].Y)
		case SegCubicTo:
			fmt.Fprintf(&sb, "C%g %g %g %g %g %g", s.P[0].X, s.P[0].Y, s.P[1].X, s.P[1].Y, s.P[2].X, s.P[2].Y)
		case SegArcTo:
			fmt.Fprintf(&sb, "A%g %g %g %d %d %g %g", s.RX, s.RY, s.Rotation,
				boolFlag(s.LargeArc), boolFlag(s.Sweep), s.P[0].X, s.P[0].Y)
		case SegClose:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
