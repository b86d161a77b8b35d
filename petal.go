package mandala

import "math"

// PetalSource supplies the outline a Mandala tessellates for each petal.
type PetalSource interface {
	// Outline returns the petal shape for the given frame index.
	Outline(frame int) (*Outline, error)
	// Frames returns the number of distinct frames, at least 1 for a usable
	// source.
	Frames() int
}

// StaticPetal is a PetalSource with a single shape; every frame index
// returns it.
type StaticPetal struct {
	outline *Outline
}

// NewStaticPetal wraps o.
func NewStaticPetal(o *Outline) *StaticPetal {
	return &StaticPetal{outline: o}
}

// StaticPetalFromFile loads the petal shape from an SVG file.
func StaticPetalFromFile(path string) (*StaticPetal, error) {
	o, err := LoadSVGFile(path)
	if err != nil {
		return nil, err
	}
	return NewStaticPetal(o), nil
}

// Outline returns the petal shape regardless of frame.
func (p *StaticPetal) Outline(int) (*Outline, error) {
	if p.outline == nil {
		return nil, &PathGrammarError{Reason: "no path data"}
	}
	return p.outline, nil
}

// Frames returns 1.
func (p *StaticPetal) Frames() int { return 1 }

// FramePetal is a PetalSource backed by a line-indexed frame list. Frames are
// parsed on first use and cached.
type FramePetal struct {
	frames *FrameList
}

// NewFramePetal wraps fl.
func NewFramePetal(fl *FrameList) *FramePetal {
	return &FramePetal{frames: fl}
}

// FramePetalFromFile loads a frame list, one path-data string per line.
func FramePetalFromFile(path string) (*FramePetal, error) {
	fl, err := LoadFrames(path)
	if err != nil {
		return nil, err
	}
	return NewFramePetal(fl), nil
}

// Outline returns frame i.
func (p *FramePetal) Outline(frame int) (*Outline, error) {
	return p.frames.Outline(frame)
}

// Frames returns the number of frames in the list.
func (p *FramePetal) Frames() int { return p.frames.Len() }

// FrameForValue maps an openness value onto a frame index,
// round(value*(frames-1)) clamped to [0, frames-1]. It returns 0 when frames
// is less than 1 or value is not a number.
func FrameForValue(value float64, frames int) int {
	if frames <= 1 || math.IsNaN(value) {
		return 0
	}
	last := float64(frames - 1)
	return int(math.Round(math.Min(last, math.Max(0, value*last))))
}
