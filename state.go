package mandala

// State is one animation endpoint of a petal: its color and the three local
// pose transforms. A petal's pose is Translate ∘ Scale ∘ Rotate, applied
// inside its slot rotation.
type State struct {
	Color     Color
	Rotate    Transform
	Translate Transform
	Scale     Transform
}

// IdentityState returns an opaque white state with identity transforms.
func IdentityState() State {
	return State{
		Color:     ColorWhite,
		Rotate:    Identity,
		Translate: Identity,
		Scale:     Identity,
	}
}

// Pose returns the state's local transform, Translate ∘ Scale ∘ Rotate.
func (s State) Pose() Transform {
	return s.Translate.Mul(s.Scale).Mul(s.Rotate)
}

// LerpState blends closed toward open by w: each color channel and each
// transform coefficient is interpolated independently. w=0 returns closed,
// w=1 returns open, and weights outside [0,1] extrapolate.
func LerpState(closed, open State, w float64) State {
	return State{
		Color:     LerpColor(closed.Color, open.Color, w),
		Rotate:    LerpTransform(closed.Rotate, open.Rotate, w),
		Translate: LerpTransform(closed.Translate, open.Translate, w),
		Scale:     LerpTransform(closed.Scale, open.Scale, w),
	}
}
