package mandala

import (
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing shapes a transition's progress curve. It uses the gween signature
// (t elapsed, b begin, c change, d duration); a Transition calls it with
// b=0, c=1, d=1 and t the linear percent elapsed.
type Easing = ease.TweenFunc

var easings = map[string]Easing{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-expo":      ease.InExpo,
	"out-expo":     ease.OutExpo,
	"in-out-expo":  ease.InOutExpo,
	"in-back":      ease.InBack,
	"out-back":     ease.OutBack,
	"in-out-back":  ease.InOutBack,
	"out-elastic":  ease.OutElastic,
	"out-bounce":   ease.OutBounce,
}

// EasingByName looks up an easing curve by its kebab-case name ("linear",
// "in-out-sine", ...). The empty name is linear. Names are case-insensitive
// and may use underscores.
func EasingByName(name string) (Easing, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if key == "" {
		return ease.Linear, true
	}
	e, ok := easings[key]
	return e, ok
}

// EasingNames returns the registered easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for k := range easings {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// applyEasing maps a linear progress p in [0,1] through e. A nil e is linear
// and evaluated in float64; gween curves are evaluated in float32.
func applyEasing(e Easing, p float64) float64 {
	if e == nil {
		return p
	}
	return float64(e(float32(p), 0, 1, 1))
}
