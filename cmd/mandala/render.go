package main

import (
	"fmt"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phanxgames/mandala"
	"github.com/phanxgames/mandala/internal/config"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Tessellate the mandala without a window and print per-frame stats",
	Long: `Runs the configured transition headlessly. With --steps N it samples N+1
evenly spaced times from 0 to --at and prints the openness, phase, petal
color and triangle count of each.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		at := cfg.Mandala.Duration.Seconds()
		if cmd.Flags().Changed("at") {
			at, _ = cmd.Flags().GetFloat64("at")
		}
		steps, _ := cmd.Flags().GetInt("steps")
		return runRender(cmd.OutOrStdout(), cfg, log, at, steps)
	},
}

func init() {
	renderCmd.Flags().Float64("at", 0, "time in seconds to render (defaults to the transition duration)")
	renderCmd.Flags().Int("steps", 0, "number of intervals to sample between 0 and --at")
	rootCmd.AddCommand(renderCmd)
}

func runRender(w io.Writer, cfg config.Config, log zerolog.Logger, at float64, steps int) error {
	if steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", steps)
	}
	m, err := cfg.NewMandala(&log, mandala.Hooks{})
	if err != nil {
		return err
	}
	if err := m.StartTransition(0, cfg.Mandala.Duration.Seconds(), cfg.Mandala.Target); err != nil {
		return err
	}

	out := termenv.NewOutput(w)
	bg := cfg.Window.BackgroundColor()
	fmt.Fprintf(w, "mandala: %d petals, %d frames\n", m.PetalCount(), m.Petal().Frames())

	var buf mandala.TriangleBuffer
	for i := 0; i <= steps; i++ {
		t := at
		if steps > 0 {
			t = at * float64(i) / float64(steps)
		}
		buf.Reset()
		value := m.CurrentValue(t)
		stats := m.DrawFrame(t, cfg.Petal.FrameFor(value, m.Petal().Frames()), &buf)
		state := m.CurrentState(t)

		hex := swatchColor(state.Color, bg).Hex()
		swatch := out.String("    ").Background(out.Color(hex))
		fmt.Fprintf(w, "t=%6.3fs open=%.3f %-8s frame=%d tris=%d skipped=%d %s %s\n",
			t, value, m.Phase(t), m.Frame(), stats.Triangles, stats.Skipped, hex, swatch)
	}
	return nil
}

// swatchColor composites c over bg, as the petal would appear on screen.
func swatchColor(c mandala.Color, bg colorful.Color) colorful.Color {
	fg := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	a := min(max(c.A, 0), 1)
	return bg.BlendRgb(fg, a).Clamped()
}
