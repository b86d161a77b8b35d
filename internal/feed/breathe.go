package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/mandala"
)

// Breathe ping-pongs between 0 and 1: each half of Period is one tween, in
// then out, shaped by Ease (InOutSine when nil).
type Breathe struct {
	Period   time.Duration
	Interval time.Duration
	Ease     ease.TweenFunc
}

// Run advances the ping-pong tween once per Interval until ctx is done.
func (b Breathe) Run(ctx context.Context, out chan<- mandala.Sample) error {
	if b.Period <= 0 || b.Interval <= 0 {
		return fmt.Errorf("feed: breathe needs a positive period and interval, got %s and %s", b.Period, b.Interval)
	}
	fn := b.Ease
	if fn == nil {
		fn = ease.InOutSine
	}
	half := float32(b.Period.Seconds() / 2)
	dt := float32(b.Interval.Seconds())

	ticker := time.NewTicker(b.Interval)
	defer ticker.Stop()

	var from, to float32 = 0, 1
	tween := gween.New(from, to, half, fn)
	value := from
	for k := 0; ; k++ {
		s := mandala.Sample{Time: float64(k) * b.Interval.Seconds(), Value: float64(value)}
		if err := send(ctx, out, s); err != nil {
			return err
		}

		var done bool
		value, done = tween.Update(dt)
		if done {
			from, to = to, from
			tween = gween.New(from, to, half, fn)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
