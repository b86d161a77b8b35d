// Package telemetry exports mandala activity as Prometheus metrics.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/phanxgames/mandala"
)

// Metrics holds the collectors fed by a mandala's hooks.
type Metrics struct {
	Transitions   prometheus.Counter
	PetalsSkipped prometheus.Counter
	FrameErrors   prometheus.Counter
	Triangles     prometheus.Gauge
	Target        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Transitions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mandala_transitions_total",
			Help: "Total number of accepted openness re-targets",
		}),
		PetalsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mandala_petals_skipped_total",
			Help: "Total number of petals skipped because they could not be tessellated",
		}),
		FrameErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mandala_frame_errors_total",
			Help: "Total number of petal frames that failed to load",
		}),
		Triangles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mandala_triangles",
			Help: "Triangles emitted by the last draw",
		}),
		Target: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mandala_openness_target",
			Help: "Openness the live transition is heading to",
		}),
	}
	for _, c := range []prometheus.Collector{m.Transitions, m.PetalsSkipped, m.FrameErrors, m.Triangles, m.Target} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns mandala hooks that record into m.
func (m *Metrics) Hooks() mandala.Hooks {
	return mandala.Hooks{
		OnTransition: func(ev mandala.TransitionEvent) {
			m.Transitions.Inc()
			m.Target.Set(ev.To)
		},
		OnPetalSkipped: func(int, error) {
			m.PetalsSkipped.Inc()
		},
		OnFrameError: func(int, error) {
			m.FrameErrors.Inc()
		},
		OnDraw: func(s mandala.DrawStats) {
			m.Triangles.Set(float64(s.Triangles))
		},
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return mux
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, log zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(g),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("serving metrics")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
