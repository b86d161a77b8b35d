package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/phanxgames/mandala"
)

var framesCmd = &cobra.Command{
	Use:   "frames [file]",
	Short: "Check that every petal frame in a frame file parses and tessellates",
	Long: `Reads a frame file (one SVG path per line) and reports the triangle count
and bounds of each frame. Without an argument the configured petal.frames
file is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup(cmd)
		if err != nil {
			return err
		}
		path := cfg.Petal.Frames
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no frame file given and petal.frames is not configured")
		}
		return runFrames(cmd.OutOrStdout(), path, cfg.Petal.Tolerance)
	},
}

func init() {
	rootCmd.AddCommand(framesCmd)
}

func runFrames(w io.Writer, path string, tol float64) error {
	fl, err := mandala.LoadFrames(path)
	if err != nil {
		return err
	}

	out := termenv.NewOutput(w)
	ok := out.String("ok").Foreground(out.Color("#22c55e"))
	bad := out.String("bad").Foreground(out.Color("#ef4444"))

	failed := 0
	for i := 0; i < fl.Len(); i++ {
		o, err := fl.Outline(i)
		if err == nil {
			mesh := mandala.NewMutableMesh(o)
			mesh.SetTolerance(tol)
			var tris []mandala.Vec2
			if tris, err = mesh.LocalTriangles(); err == nil {
				b := mesh.Bounds()
				fmt.Fprintf(w, "frame %3d %s %d triangles, bounds (%g,%g)-(%g,%g)\n",
					i, ok, len(tris)/3, b.X, b.Y, b.X+b.Width, b.Y+b.Height)
				continue
			}
		}
		failed++
		fmt.Fprintf(w, "frame %3d %s %v\n", i, bad, err)
	}

	fmt.Fprintf(w, "%d frames, %d failed\n", fl.Len(), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d frames are invalid", failed, fl.Len())
	}
	return nil
}
