package ebitensink

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/mandala"
)

// Readout is what the HUD shows.
type Readout struct {
	FPS, TPS float64
	Openness float64
	Phase    mandala.Phase
	Frame    int
	Stats    mandala.DrawStats
}

func (r Readout) String() string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nopen: %.2f (%s)\nframe: %d\ntris: %d skipped: %d",
		r.FPS, r.TPS, r.Openness, r.Phase, r.Frame, r.Stats.Triangles, r.Stats.Skipped)
}

// HUD is a small overlay refreshed about twice a second.
type HUD struct {
	// Interval is the refresh period in seconds.
	Interval float64

	since float64
	text  string
	img   *ebiten.Image
	dirty bool
}

// NewHUD returns a HUD that refreshes every half second.
func NewHUD() *HUD {
	return &HUD{Interval: 0.5, since: 0.5}
}

// Update advances the HUD clock by dt seconds and, when a refresh is due,
// takes a new readout. It reports whether the text changed.
func (h *HUD) Update(dt float64, read func() Readout) bool {
	h.since += dt
	if h.since < h.Interval {
		return false
	}
	h.since = 0
	text := read().String()
	if text == h.text {
		return false
	}
	h.text = text
	h.dirty = true
	return true
}

// Text returns the current overlay text.
func (h *HUD) Text() string { return h.text }

// Draw renders the overlay at the top-left corner of dst.
func (h *HUD) Draw(dst *ebiten.Image) {
	if h.img == nil {
		// Large enough for five lines of the debug font.
		h.img = ebiten.NewImage(180, 84)
		h.dirty = true
	}
	if h.dirty {
		h.img.Clear()
		// Semi-transparent background for readability
		h.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(h.img, h.text)
		h.dirty = false
	}
	dst.DrawImage(h.img, nil)
}
