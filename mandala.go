package mandala

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Phase is the Mandala's animation phase.
type Phase uint8

const (
	// PhaseRunning means the live transition has not yet reached its target.
	PhaseRunning Phase = iota
	// PhaseSettled means the transition is frozen at its target.
	PhaseSettled
)

func (p Phase) String() string {
	if p == PhaseSettled {
		return "settled"
	}
	return "running"
}

// Config configures a Mandala.
type Config struct {
	// Petal supplies the petal outline. Required.
	Petal PetalSource

	// Position and Scale place the whole mandala: every petal is mapped
	// through Translate(Position) ∘ Scale(Scale). A zero Scale means (1, 1).
	Position Vec2
	Scale    Vec2

	// PetalCount is the number of rotational copies. Zero draws nothing.
	PetalCount int

	// Open and Closed are the endpoint states for openness 1 and 0.
	Open, Closed State

	// InitialValue is the openness held before the first transition.
	InitialValue float64

	// Tolerance is the curve-flattening tolerance. Non-positive means
	// DefaultTolerance.
	Tolerance float64

	// Ease shapes every transition. Nil is linear.
	Ease Easing

	// Logger receives transition and degradation events. Nil disables logging.
	Logger *zerolog.Logger

	Hooks Hooks
}

// Mandala is N rotated copies of one petal whose color and pose animate
// between a closed and an open State.
//
// A Mandala is not safe for concurrent use; it belongs to the goroutine that
// updates and draws it. Feed samples from other goroutines through a channel
// and Drain.
type Mandala struct {
	petal  PetalSource
	mesh   *MutableMesh
	center Transform
	slots  []Transform
	clock  Transition
	ease   Easing

	open, closed State

	frame        int          // frame index currently loaded into mesh
	failedFrames map[int]bool // frame indices already reported as failing

	log   zerolog.Logger
	hooks Hooks
}

// New validates cfg, loads frame 0 of the petal source, and precomputes the
// center and slot transforms.
func New(cfg Config) (*Mandala, error) {
	if cfg.Petal == nil {
		return nil, fmt.Errorf("%w: nil petal source", ErrContract)
	}
	if cfg.PetalCount < 0 {
		return nil, fmt.Errorf("%w: negative petal count %d", ErrContract, cfg.PetalCount)
	}
	scale := cfg.Scale
	if scale == (Vec2{}) {
		scale = Vec2{1, 1}
	}
	if !finite(scale.X) || !finite(scale.Y) || scale.X == 0 || scale.Y == 0 {
		return nil, fmt.Errorf("%w: invalid scale (%g, %g)", ErrContract, scale.X, scale.Y)
	}
	if !finite(cfg.Position.X) || !finite(cfg.Position.Y) {
		return nil, fmt.Errorf("%w: invalid position (%g, %g)", ErrContract, cfg.Position.X, cfg.Position.Y)
	}
	if !finite(cfg.InitialValue) {
		return nil, fmt.Errorf("%w: non-finite initial value %g", ErrContract, cfg.InitialValue)
	}

	o, err := cfg.Petal.Outline(0)
	if err != nil {
		return nil, fmt.Errorf("mandala: load petal: %w", err)
	}

	m := &Mandala{
		petal:        cfg.Petal,
		mesh:         NewMutableMesh(o),
		center:       Translate(cfg.Position.X, cfg.Position.Y).Mul(Scale(scale.X, scale.Y)),
		slots:        make([]Transform, cfg.PetalCount),
		clock:        FixedTransition(cfg.InitialValue).WithEase(cfg.Ease),
		ease:         cfg.Ease,
		open:         cfg.Open,
		closed:       cfg.Closed,
		failedFrames: make(map[int]bool),
		log:          zerolog.Nop(),
		hooks:        cfg.Hooks,
	}
	m.mesh.SetTolerance(cfg.Tolerance)
	if cfg.Logger != nil {
		m.log = *cfg.Logger
	}
	for k := range m.slots {
		m.slots[k] = Rotate(float64(k) * 360 / float64(cfg.PetalCount))
	}
	return m, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// --- Transition control ---

// StartTransition re-targets the animation: the value currently shown at now
// becomes the start of a new transition that reaches target after duration
// seconds. The previous transition is discarded, finished or not, so the
// displayed value never jumps.
//
// A non-finite now or target, or a negative or non-finite duration, panics in
// debug mode. Otherwise the call is ignored and an error wrapping ErrContract
// is returned.
func (m *Mandala) StartTransition(now, duration, target float64) error {
	switch {
	case !finite(now):
		return contractViolation("non-finite transition time %g", now)
	case !finite(target):
		return contractViolation("non-finite transition target %g", target)
	case !finite(duration) || duration < 0:
		return contractViolation("invalid transition duration %g", duration)
	}

	current := m.clock.Value(now)
	m.clock = NewTransition(now, duration, current, target).WithEase(m.ease)

	m.log.Debug().
		Float64("current", current).
		Float64("target", target).
		Float64("duration", duration).
		Msg("start transition")
	if m.hooks.OnTransition != nil {
		m.hooks.OnTransition(TransitionEvent{Now: now, Duration: duration, From: current, To: target})
	}
	return nil
}

// CurrentValue returns the openness at now.
func (m *Mandala) CurrentValue(now float64) float64 { return m.clock.Value(now) }

// CurrentPercent returns the live transition's percent elapsed at now.
func (m *Mandala) CurrentPercent(now float64) float64 { return m.clock.PercentElapsed(now) }

// Phase reports whether the live transition is still running at now.
func (m *Mandala) Phase(now float64) Phase {
	if m.clock.Settled(now) {
		return PhaseSettled
	}
	return PhaseRunning
}

// Transition returns the live transition.
func (m *Mandala) Transition() Transition { return m.clock }

// CurrentState returns the petal state at now: Closed blended toward Open by
// the current openness.
func (m *Mandala) CurrentState(now float64) State {
	return LerpState(m.closed, m.open, m.CurrentValue(now))
}

// --- Composition ---

// PetalCount returns the number of petal slots.
func (m *Mandala) PetalCount() int { return len(m.slots) }

// Center returns the transform that places the whole mandala.
func (m *Mandala) Center() Transform { return m.center }

// Slot returns the rotation of slot k. It panics if k is out of range.
func (m *Mandala) Slot(k int) Transform { return m.slots[k] }

// PetalTransform returns the full transform of slot k for state s:
// center ∘ slot[k] ∘ s.Translate ∘ s.Scale ∘ s.Rotate.
func (m *Mandala) PetalTransform(k int, s State) Transform {
	return m.center.Mul(m.slots[k]).Mul(s.Pose())
}

// Petal returns the petal source.
func (m *Mandala) Petal() PetalSource { return m.petal }

// Mesh returns the mesh used to tessellate petals.
func (m *Mandala) Mesh() *MutableMesh { return m.mesh }

// Frame returns the index of the frame currently loaded into the mesh.
func (m *Mandala) Frame() int { return m.frame }

// --- Drawing ---

// Draw emits every petal at now to sink using frame 0.
func (m *Mandala) Draw(now float64, sink Sink) DrawStats {
	return m.DrawFrame(now, 0, sink)
}

// DrawFrame emits every petal at now to sink, first switching the petal
// outline to frame if it differs from the loaded one. A frame that fails to
// load leaves the last good outline in place. A petal that fails to
// tessellate is skipped; the others are still drawn.
func (m *Mandala) DrawFrame(now float64, frame int, sink Sink) DrawStats {
	m.loadFrame(frame)

	var stats DrawStats
	state := m.CurrentState(now)
	m.mesh.SetColor(state.Color)
	pose := state.Pose()
	for k, slot := range m.slots {
		m.mesh.SetTransform(m.center.Mul(slot).Mul(pose))
		n, err := m.mesh.Tessellate(sink)
		if err != nil {
			stats.Skipped++
			m.petalSkipped(k, err)
			continue
		}
		stats.Petals++
		stats.Triangles += n
	}

	if m.hooks.OnDraw != nil {
		m.hooks.OnDraw(stats)
	}
	return stats
}

func (m *Mandala) loadFrame(frame int) {
	if frame == m.frame {
		return
	}
	o, err := m.petal.Outline(frame)
	if err != nil {
		if !m.failedFrames[frame] {
			m.failedFrames[frame] = true
			m.log.Warn().Err(err).Int("frame", frame).Int("kept", m.frame).Msg("petal frame failed to load")
			if m.hooks.OnFrameError != nil {
				m.hooks.OnFrameError(frame, err)
			}
		}
		return
	}
	m.mesh.UpdatePath(o)
	m.frame = frame
}

func (m *Mandala) petalSkipped(slot int, err error) {
	// The mesh caches its failure, so every slot fails together; log once.
	if slot == 0 || !errors.Is(err, ErrTessellation) {
		m.log.Warn().Err(err).Int("frame", m.frame).Msg("petal skipped")
	}
	if m.hooks.OnPetalSkipped != nil {
		m.hooks.OnPetalSkipped(slot, err)
	}
}
