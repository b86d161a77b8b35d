package feed

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/phanxgames/mandala"
)

// Sine emits 0.5 - 0.5*cos(2πt/Period) every Interval, starting closed at
// t=0. Sample times count ticks, not wall time, so a slow consumer sees an
// undistorted wave.
type Sine struct {
	Period   time.Duration
	Interval time.Duration
}

// Run sends one sample per Interval until ctx is done.
func (s Sine) Run(ctx context.Context, out chan<- mandala.Sample) error {
	if s.Period <= 0 || s.Interval <= 0 {
		return fmt.Errorf("feed: sine needs a positive period and interval, got %s and %s", s.Period, s.Interval)
	}
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	period := s.Period.Seconds()
	for k := 0; ; k++ {
		t := float64(k) * s.Interval.Seconds()
		v := 0.5 - 0.5*math.Cos(2*math.Pi*t/period)
		if err := send(ctx, out, mandala.Sample{Time: t, Value: v}); err != nil {
			return err
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
