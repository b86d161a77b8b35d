// Package feed produces openness samples for a running mandala. Each
// producer runs on its own goroutine and hands samples to the render loop
// over a buffered channel, which the loop empties with Mandala.Drain.
package feed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/phanxgames/mandala"
)

// Producer writes samples to out until ctx is cancelled or its input ends.
// It must not close out.
type Producer interface {
	Run(ctx context.Context, out chan<- mandala.Sample) error
}

// Start runs p on a new goroutine and returns the channel it writes to. The
// channel is closed when p returns. Errors other than cancellation are
// logged.
func Start(ctx context.Context, p Producer, buffer int, log zerolog.Logger) <-chan mandala.Sample {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan mandala.Sample, buffer)
	go func() {
		defer close(ch)
		err := p.Run(ctx, ch)
		switch {
		case err == nil, errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			log.Debug().Msg("feed stopped")
		default:
			log.Error().Err(err).Msg("feed failed")
		}
	}()
	return ch
}

// send delivers s unless ctx ends first.
func send(ctx context.Context, out chan<- mandala.Sample, s mandala.Sample) error {
	select {
	case out <- s:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
