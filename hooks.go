package mandala

// TransitionEvent describes a re-target accepted by StartTransition.
type TransitionEvent struct {
	Now      float64
	Duration float64
	From     float64 // value at Now under the replaced transition
	To       float64
}

// DrawStats summarizes one Draw call.
type DrawStats struct {
	Petals    int // petals emitted
	Skipped   int // petals skipped after a tessellation failure
	Triangles int // triangles emitted across all petals
}

// Hooks are optional callbacks fired synchronously from the Mandala's
// goroutine. Nil fields are skipped.
type Hooks struct {
	OnTransition   func(TransitionEvent)
	OnPetalSkipped func(slot int, err error)
	OnFrameError   func(frame int, err error)
	OnDraw         func(DrawStats)
}

// Merge returns hooks that call h's callbacks and then o's.
func (h Hooks) Merge(o Hooks) Hooks {
	return Hooks{
		OnTransition: func(ev TransitionEvent) {
			if h.OnTransition != nil {
				h.OnTransition(ev)
			}
			if o.OnTransition != nil {
				o.OnTransition(ev)
			}
		},
		OnPetalSkipped: func(slot int, err error) {
			if h.OnPetalSkipped != nil {
				h.OnPetalSkipped(slot, err)
			}
			if o.OnPetalSkipped != nil {
				o.OnPetalSkipped(slot, err)
			}
		},
		OnFrameError: func(frame int, err error) {
			if h.OnFrameError != nil {
				h.OnFrameError(frame, err)
			}
			if o.OnFrameError != nil {
				o.OnFrameError(frame, err)
			}
		},
		OnDraw: func(s DrawStats) {
			if h.OnDraw != nil {
				h.OnDraw(s)
			}
			if o.OnDraw != nil {
				o.OnDraw(s)
			}
		},
	}
}
