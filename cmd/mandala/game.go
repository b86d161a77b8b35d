package main

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/phanxgames/mandala"
	"github.com/phanxgames/mandala/ebitensink"
	"github.com/phanxgames/mandala/internal/config"
)

// game is the ebiten.Game that animates one mandala. Space restarts the
// configured transition, P saves a screenshot, and Escape quits.
type game struct {
	ctx     context.Context
	cfg     config.Config
	m       *mandala.Mandala
	samples <-chan mandala.Sample
	sink    *ebitensink.Sink
	hud     *ebitensink.HUD
	shots   *ebitensink.Screenshots
	bg      color.Color
	now     func() float64
	log     zerolog.Logger

	last mandala.DrawStats
}

func newGame(ctx context.Context, cfg config.Config, m *mandala.Mandala, samples <-chan mandala.Sample, blend ebitensink.BlendMode, now func() float64, log zerolog.Logger) *game {
	sink := ebitensink.New()
	sink.Blend = blend.EbitenBlend()
	bg := cfg.Window.BackgroundColor().Clamped()
	r, gr, b := bg.RGB255()
	g := &game{
		ctx:     ctx,
		cfg:     cfg,
		m:       m,
		samples: samples,
		sink:    sink,
		shots:   ebitensink.NewScreenshots(cfg.Window.Screenshots),
		bg:      color.RGBA{R: r, G: gr, B: b, A: 255},
		now:     now,
		log:     log,
	}
	if cfg.Window.HUD {
		g.hud = ebitensink.NewHUD()
	}
	g.restart(now())
	return g
}

// restart jumps to the initial openness and starts the configured
// transition toward the target.
func (g *game) restart(now float64) {
	mc := g.cfg.Mandala
	if err := g.m.StartTransition(now, 0, mc.Initial); err != nil {
		g.log.Warn().Err(err).Msg("restart")
		return
	}
	if err := g.m.StartTransition(now, mc.Duration.Seconds(), mc.Target); err != nil {
		g.log.Warn().Err(err).Msg("restart")
	}
}

// step consumes pending samples. It returns how many arrived.
func (g *game) step(now float64) int {
	if g.samples == nil {
		return 0
	}
	return g.m.Drain(g.samples, now, g.cfg.Feed.Smoothing.Seconds())
}

// frame picks the petal frame for the openness shown at now.
func (g *game) frame(now float64) int {
	return g.cfg.Petal.FrameFor(g.m.CurrentValue(now), g.m.Petal().Frames())
}

func (g *game) readout(now float64) func() ebitensink.Readout {
	return func() ebitensink.Readout {
		return ebitensink.Readout{
			FPS:      ebiten.ActualFPS(),
			TPS:      ebiten.ActualTPS(),
			Openness: g.m.CurrentValue(now),
			Phase:    g.m.Phase(now),
			Frame:    g.m.Frame(),
			Stats:    g.last,
		}
	}
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := g.now()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.restart(now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.shots.Queue(fmt.Sprintf("open-%.2f", g.m.CurrentValue(now)))
	}
	g.step(now)
	if g.hud != nil {
		g.hud.Update(1/float64(ebiten.TPS()), g.readout(now))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	now := g.now()
	screen.Fill(g.bg)
	g.last = g.m.DrawFrame(now, g.frame(now), g.sink)
	g.sink.Flush(screen)
	if g.hud != nil {
		g.hud.Draw(screen)
	}
	paths, err := g.shots.Flush(screen)
	if err != nil {
		g.log.Error().Err(err).Msg("screenshot failed")
	}
	for _, p := range paths {
		g.log.Info().Str("path", p).Msg("screenshot saved")
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
