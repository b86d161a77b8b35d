// Package mandala animates a radially symmetric flower of vector petals and
// turns it into colored triangles.
//
// A [Mandala] holds N rotated copies of one petal outline. Each petal's
// color and pose blend between a closed and an open [State] under a single
// live [Transition] of the openness value. Feeding a new openness sample with
// [Mandala.StartTransition] re-bases the animation on the value currently
// shown, so retargeting mid-flight never jumps.
//
// # Quick start
//
//	petal, _ := mandala.StaticPetalFromFile("petal.svg")
//	m, _ := mandala.New(mandala.Config{
//		Petal:      petal,
//		Position:   mandala.Vec2{X: 512, Y: 512},
//		Scale:      mandala.Vec2{X: 2, Y: 2},
//		PetalCount: 12,
//		Open:       open,
//		Closed:     closed,
//	})
//
//	m.StartTransition(now, 0.5, 1) // open over half a second
//
//	var buf mandala.TriangleBuffer
//	m.Draw(now, &buf)
//
// # Geometry
//
// Petal shapes come from SVG path data: [ParsePathData] for a raw d string,
// [ParseSVG] for a document, and [FrameList] for a file of one path per line
// used to morph the petal frame by frame. [MutableMesh] fills an [Outline]
// using the even-odd rule and caches the triangulation, so redrawing a petal
// under a new color or transform only re-maps its corners.
//
// # Composition
//
// Petal k is drawn with
//
//	Center ∘ Slot(k) ∘ Translate ∘ Scale ∘ Rotate
//
// where Center places the whole mandala, Slot(k) rotates by k*360/N degrees,
// and the last three come from the interpolated [State].
//
// # Threading
//
// A Mandala is single-threaded. Producers on other goroutines send [Sample]
// values over a channel which the render loop consumes with [Mandala.Drain].
//
// # Debug mode
//
// [SetDebugMode] makes contract violations panic: reading a transition before
// its start time, or re-targeting with a non-finite value or a negative
// duration. With debug mode off they are clamped or ignored so a live
// visualization keeps running.
package mandala
