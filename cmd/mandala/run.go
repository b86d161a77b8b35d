package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phanxgames/mandala"
	"github.com/phanxgames/mandala/ebitensink"
	"github.com/phanxgames/mandala/internal/config"
	"github.com/phanxgames/mandala/internal/feed"
	"github.com/phanxgames/mandala/internal/telemetry"
)

// sampleBuffer is the capacity of the channel between a feed and the game.
const sampleBuffer = 64

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and animate the mandala",
	Long: `Opens a window and animates the mandala. SPACE restarts the configured
transition, ESC exits. With a feed configured, every sample re-targets the
openness over the feed's smoothing time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("feed") {
			cfg.Feed.Source, _ = cmd.Flags().GetString("feed")
		}
		if cmd.Flags().Changed("metrics-addr") {
			cfg.Metrics.Enabled = true
			cfg.Metrics.Addr, _ = cmd.Flags().GetString("metrics-addr")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runWindow(cmd.Context(), cfg, log)
	},
}

func init() {
	runCmd.Flags().String("feed", config.FeedNone, "sample source: none, sine, breathe or stdin")
	runCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address")
	rootCmd.AddCommand(runCmd)
}

func runWindow(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	blend, err := ebitensink.ParseBlendMode(cfg.Window.Blend)
	if err != nil {
		return err
	}

	hooks := mandala.Hooks{
		OnDraw: func(s mandala.DrawStats) {
			log.Trace().Int("petals", s.Petals).Int("skipped", s.Skipped).Int("triangles", s.Triangles).Msg("draw")
		},
	}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		metrics, err := telemetry.NewMetrics(reg)
		if err != nil {
			return err
		}
		hooks = hooks.Merge(metrics.Hooks())
		go func() {
			if err := telemetry.Serve(ctx, cfg.Metrics.Addr, reg, log); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	m, err := cfg.NewMandala(&log, hooks)
	if err != nil {
		return err
	}

	producer, err := newProducer(cfg.Feed, os.Stdin, &log)
	if err != nil {
		return err
	}
	var samples <-chan mandala.Sample
	if producer != nil {
		samples = feed.Start(ctx, producer, sampleBuffer, log)
	}

	start := time.Now()
	g := newGame(ctx, cfg, m, samples, blend, func() float64 { return time.Since(start).Seconds() }, log)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	log.Info().
		Int("petals", m.PetalCount()).
		Int("frames", m.Petal().Frames()).
		Str("feed", cfg.Feed.Source).
		Msg("starting")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// newProducer returns the configured sample producer, or nil for none.
func newProducer(fc config.FeedConfig, stdin io.Reader, log *zerolog.Logger) (feed.Producer, error) {
	switch fc.Source {
	case config.FeedNone, "":
		return nil, nil
	case config.FeedSine:
		return feed.Sine{Period: fc.Period.Std(), Interval: fc.Interval.Std()}, nil
	case config.FeedBreathe:
		return feed.Breathe{Period: fc.Period.Std(), Interval: fc.Interval.Std()}, nil
	case config.FeedStdin:
		return feed.Lines{Reader: stdin, Logger: log}, nil
	}
	return nil, fmt.Errorf("unknown feed source %q", fc.Source)
}
