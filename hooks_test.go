package mandala

import (
	"errors"
	"testing"
)

func TestHooksMergeCallsBothInOrder(t *testing.T) {
	var calls []string
	a := Hooks{
		OnTransition: func(TransitionEvent) { calls = append(calls, "a.transition") },
		OnDraw:       func(DrawStats) { calls = append(calls, "a.draw") },
	}
	b := Hooks{
		OnTransition:   func(TransitionEvent) { calls = append(calls, "b.transition") },
		OnPetalSkipped: func(int, error) { calls = append(calls, "b.skipped") },
		OnFrameError:   func(int, error) { calls = append(calls, "b.frame") },
	}
	h := a.Merge(b)

	h.OnTransition(TransitionEvent{})
	h.OnPetalSkipped(0, errors.New("x"))
	h.OnFrameError(1, errors.New("x"))
	h.OnDraw(DrawStats{})

	want := []string{"a.transition", "b.transition", "b.skipped", "b.frame", "a.draw"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestHooksMergeZeroValues(t *testing.T) {
	h := Hooks{}.Merge(Hooks{})
	// Every merged callback is non-nil and tolerates missing halves.
	h.OnTransition(TransitionEvent{})
	h.OnPetalSkipped(0, nil)
	h.OnFrameError(0, nil)
	h.OnDraw(DrawStats{})
}

func TestTriangleBufferKeepsCapacity(t *testing.T) {
	var b TriangleBuffer
	b.AddTriangle(Triangle{})
	b.AddTriangle(Triangle{})
	if b.Len() != 2 || len(b.Triangles()) != 2 {
		t.Fatalf("Len = %d", b.Len())
	}
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", b.Len())
	}
	if cap(b.Triangles()) < 2 {
		t.Errorf("Reset dropped capacity")
	}
}
