package mandala

import "math"

// FixedDuration is the duration of a FixedTransition. It is small and
// nonzero so a static pose goes through the same arithmetic as a timed one.
const FixedDuration = 0.1

// Transition is a timed animation of one scalar from StartValue to EndValue.
// Times are seconds on the caller's clock. A Transition is a plain value:
// re-targeting builds a new one rather than mutating it.
type Transition struct {
	StartTime  float64
	Duration   float64
	StartValue float64
	EndValue   float64

	// Ease shapes the progress curve. Nil is linear.
	Ease Easing
}

// NewTransition returns a linear transition from `from` at start to `to` at
// start+duration.
func NewTransition(start, duration, from, to float64) Transition {
	return Transition{
		StartTime:  start,
		Duration:   duration,
		StartValue: from,
		EndValue:   to,
	}
}

// FixedTransition returns a settled-at-value transition: it starts at time 0,
// lasts FixedDuration, and holds value throughout.
func FixedTransition(value float64) Transition {
	return NewTransition(0, FixedDuration, value, value)
}

// WithEase returns a copy of tr that uses e.
func (tr Transition) WithEase(e Easing) Transition {
	tr.Ease = e
	return tr
}

// PercentElapsed returns how far now is through the transition, clamped to
// [0, 1]. A non-positive duration completes instantly. Calling it with now
// before StartTime panics in debug mode and returns 0 otherwise.
func (tr Transition) PercentElapsed(now float64) float64 {
	if now < tr.StartTime {
		_ = contractViolation("clock read at %g before transition start %g", now, tr.StartTime)
		return 0
	}
	if tr.Duration <= 0 {
		return 1
	}
	p := (now - tr.StartTime) / tr.Duration
	if math.IsNaN(p) {
		return 0
	}
	return math.Min(1, math.Max(0, p))
}

// Value returns the animated value at now. It equals StartValue at the start
// and freezes at EndValue once the transition settles.
func (tr Transition) Value(now float64) float64 {
	p := tr.PercentElapsed(now)
	if p >= 1 {
		return tr.EndValue
	}
	return tr.StartValue + (tr.EndValue-tr.StartValue)*applyEasing(tr.Ease, p)
}

// Settled reports whether the transition has reached its end value.
func (tr Transition) Settled(now float64) bool {
	return tr.PercentElapsed(now) >= 1
}
