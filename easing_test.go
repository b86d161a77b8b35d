package mandala

import (
	"sort"
	"testing"
)

func TestEasingByName(t *testing.T) {
	for _, name := range []string{"linear", "in-out-sine", "In_Out_Sine", " OUT-BOUNCE ", ""} {
		e, ok := EasingByName(name)
		if !ok || e == nil {
			t.Errorf("EasingByName(%q) not found", name)
			continue
		}
		if got := e(1, 0, 1, 1); got < 0.999 || got > 1.001 {
			t.Errorf("%q(1) = %v, want 1", name, got)
		}
	}
	if _, ok := EasingByName("wobble"); ok {
		t.Error("unknown easing should not be found")
	}
}

func TestEasingNamesSorted(t *testing.T) {
	names := EasingNames()
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	if len(names) != len(easings) {
		t.Errorf("names = %d, want %d", len(names), len(easings))
	}
}

func TestApplyEasingNilIsLinear(t *testing.T) {
	for _, p := range []float64{0, 0.25, 0.5, 1} {
		if got := applyEasing(nil, p); got != p {
			t.Errorf("applyEasing(nil, %v) = %v", p, got)
		}
	}
}
