// Package config loads the mandala command configuration from TOML or YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/mandala"
	"github.com/phanxgames/mandala/internal/logging"
)

// Frame modes for PetalConfig.FrameMode.
const (
	FrameFixed    = "fixed"
	FrameOpenness = "openness"
)

// Feed sources for FeedConfig.Source.
const (
	FeedNone    = "none"
	FeedSine    = "sine"
	FeedBreathe = "breathe"
	FeedStdin   = "stdin"
)

// DefaultPetalPath is the petal drawn when no petal file is configured.
const DefaultPetalPath = "M0 0 C20 -18 60 -18 80 0 C60 18 20 18 0 0 Z"

// Config is the full command configuration.
type Config struct {
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Petal   PetalConfig   `toml:"petal" yaml:"petal"`
	Mandala MandalaConfig `toml:"mandala" yaml:"mandala"`
	Open    StateConfig   `toml:"open" yaml:"open"`
	Closed  StateConfig   `toml:"closed" yaml:"closed"`
	Feed    FeedConfig    `toml:"feed" yaml:"feed"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Metrics MetricsConfig `toml:"metrics" yaml:"metrics"`
}

// WindowConfig sizes and decorates the demo window.
type WindowConfig struct {
	Width       int    `toml:"width" yaml:"width"`
	Height      int    `toml:"height" yaml:"height"`
	Title       string `toml:"title" yaml:"title"`
	TPS         int    `toml:"tps" yaml:"tps"`
	Background  string `toml:"background" yaml:"background"`
	Blend       string `toml:"blend" yaml:"blend"`
	HUD         bool   `toml:"hud" yaml:"hud"`
	Screenshots string `toml:"screenshots" yaml:"screenshots"` // directory for P-key captures
}

// PetalConfig selects the petal outline. Frames wins over File, and File
// wins over Path.
type PetalConfig struct {
	File      string  `toml:"file" yaml:"file"`
	Path      string  `toml:"path" yaml:"path"`
	Frames    string  `toml:"frames" yaml:"frames"`
	FrameMode string  `toml:"frame_mode" yaml:"frame_mode"`
	Frame     int     `toml:"frame" yaml:"frame"`
	Tolerance float64 `toml:"tolerance" yaml:"tolerance"`
}

// MandalaConfig places the mandala and sets its configured transition.
type MandalaConfig struct {
	Petals   int        `toml:"petals" yaml:"petals"`
	Center   [2]float64 `toml:"center" yaml:"center"`
	Scale    [2]float64 `toml:"scale" yaml:"scale"`
	Ease     string     `toml:"ease" yaml:"ease"`
	Initial  float64    `toml:"initial" yaml:"initial"`
	Target   float64    `toml:"target" yaml:"target"`
	Duration Duration   `toml:"duration" yaml:"duration"`
}

// StateConfig is one animation endpoint. Rotate is in degrees.
type StateConfig struct {
	Color     string     `toml:"color" yaml:"color"`
	Alpha     float64    `toml:"alpha" yaml:"alpha"`
	Rotate    float64    `toml:"rotate" yaml:"rotate"`
	Translate [2]float64 `toml:"translate" yaml:"translate"`
	Scale     [2]float64 `toml:"scale" yaml:"scale"`
}

// FeedConfig selects the openness sample producer.
type FeedConfig struct {
	Source    string   `toml:"source" yaml:"source"`
	Period    Duration `toml:"period" yaml:"period"`
	Interval  Duration `toml:"interval" yaml:"interval"`
	Smoothing Duration `toml:"smoothing" yaml:"smoothing"`
}

// LogConfig sets the zerolog level and output format.
type LogConfig struct {
	Level   string `toml:"level" yaml:"level"`
	Console bool   `toml:"console" yaml:"console"`
}

// MetricsConfig controls the Prometheus /metrics listener.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Addr    string `toml:"addr" yaml:"addr"`
}

// Default returns the demo configuration: twelve petals on a 1024x1024
// canvas, opening from translucent turquoise to crimson over three seconds.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:       1024,
			Height:      1024,
			Title:       "Mandala Demo - press SPACE to restart easing, ESC to exit",
			TPS:         60,
			Background:  "#000000",
			Blend:       "normal",
			HUD:         true,
			Screenshots: "screenshots",
		},
		Petal: PetalConfig{
			Path:      DefaultPetalPath,
			FrameMode: FrameFixed,
			Tolerance: mandala.DefaultTolerance,
		},
		Mandala: MandalaConfig{
			Petals:   12,
			Center:   [2]float64{512, 512},
			Scale:    [2]float64{2, 2},
			Ease:     "linear",
			Initial:  0,
			Target:   1,
			Duration: Duration(3 * time.Second),
		},
		Open: StateConfig{
			Color:     "#dc143c",
			Alpha:     1,
			Rotate:    90,
			Translate: [2]float64{50, 0},
			Scale:     [2]float64{1, 1},
		},
		Closed: StateConfig{
			Color:     "#40e0d0",
			Alpha:     0.2,
			Rotate:    0,
			Translate: [2]float64{0, 0},
			Scale:     [2]float64{0.1, 1},
		},
		Feed: FeedConfig{
			Source:    FeedNone,
			Period:    Duration(6 * time.Second),
			Interval:  Duration(200 * time.Millisecond),
			Smoothing: Duration(500 * time.Millisecond),
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
		Metrics: MetricsConfig{
			Addr: "127.0.0.1:9090",
		},
	}
}

// Load reads path on top of Default. The format follows the extension:
// .toml, or .yaml/.yml. Unknown keys are an error in both formats. The
// result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("load config: unknown keys: %s", strings.Join(keys, ", "))
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("load config: unsupported extension %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.TPS > 0, "window: tps must be positive, got %d", c.Window.TPS)
	if _, err := colorful.Hex(c.Window.Background); err != nil {
		errs = append(errs, fmt.Errorf("window: background: %w", err))
	}

	check(c.Petal.File != "" || c.Petal.Path != "" || c.Petal.Frames != "", "petal: one of file, path or frames is required")
	check(c.Petal.FrameMode == FrameFixed || c.Petal.FrameMode == FrameOpenness,
		"petal: frame_mode must be %q or %q, got %q", FrameFixed, FrameOpenness, c.Petal.FrameMode)
	check(c.Petal.Frame >= 0, "petal: frame must not be negative, got %d", c.Petal.Frame)
	check(c.Petal.Tolerance >= 0 && finite(c.Petal.Tolerance), "petal: tolerance must be a non-negative number, got %g", c.Petal.Tolerance)

	check(c.Mandala.Petals >= 0, "mandala: petals must not be negative, got %d", c.Mandala.Petals)
	check(finite(c.Mandala.Center[0]) && finite(c.Mandala.Center[1]), "mandala: center must be finite")
	check(finite(c.Mandala.Scale[0]) && finite(c.Mandala.Scale[1]) && c.Mandala.Scale[0] != 0 && c.Mandala.Scale[1] != 0,
		"mandala: scale must be finite and non-zero, got %v", c.Mandala.Scale)
	if _, ok := mandala.EasingByName(c.Mandala.Ease); !ok {
		errs = append(errs, fmt.Errorf("mandala: unknown ease %q (want one of %s)", c.Mandala.Ease, strings.Join(mandala.EasingNames(), ", ")))
	}
	check(finite(c.Mandala.Initial) && finite(c.Mandala.Target), "mandala: initial and target must be finite")
	check(c.Mandala.Duration >= 0, "mandala: duration must not be negative, got %s", c.Mandala.Duration)

	for _, s := range []struct {
		name string
		cfg  StateConfig
	}{{"open", c.Open}, {"closed", c.Closed}} {
		if err := s.cfg.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}

	switch c.Feed.Source {
	case FeedNone, FeedStdin:
	case FeedSine, FeedBreathe:
		check(c.Feed.Period > 0, "feed: period must be positive for %s, got %s", c.Feed.Source, c.Feed.Period)
		check(c.Feed.Interval > 0, "feed: interval must be positive for %s, got %s", c.Feed.Source, c.Feed.Interval)
	default:
		errs = append(errs, fmt.Errorf("feed: unknown source %q", c.Feed.Source))
	}
	check(c.Feed.Smoothing >= 0, "feed: smoothing must not be negative, got %s", c.Feed.Smoothing)

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	check(!c.Metrics.Enabled || c.Metrics.Addr != "", "metrics: addr is required when enabled")

	return errors.Join(errs...)
}

func (s StateConfig) validate() error {
	var errs []error
	if _, err := colorful.Hex(s.Color); err != nil {
		errs = append(errs, fmt.Errorf("color: %w", err))
	}
	if !finite(s.Alpha) || s.Alpha < 0 || s.Alpha > 1 {
		errs = append(errs, fmt.Errorf("alpha must be in [0, 1], got %g", s.Alpha))
	}
	for _, v := range []float64{s.Rotate, s.Translate[0], s.Translate[1], s.Scale[0], s.Scale[1]} {
		if !finite(v) {
			errs = append(errs, fmt.Errorf("transform values must be finite"))
			break
		}
	}
	return errors.Join(errs...)
}

// State converts the endpoint into a mandala.State. A zero Scale is read as
// (1, 1).
func (s StateConfig) State() (mandala.State, error) {
	c, err := colorful.Hex(s.Color)
	if err != nil {
		return mandala.State{}, fmt.Errorf("color: %w", err)
	}
	scale := s.Scale
	if scale == ([2]float64{}) {
		scale = [2]float64{1, 1}
	}
	return mandala.State{
		Color:     mandala.Color{R: c.R, G: c.G, B: c.B, A: s.Alpha},
		Rotate:    mandala.Rotate(s.Rotate),
		Translate: mandala.Translate(s.Translate[0], s.Translate[1]),
		Scale:     mandala.Scale(scale[0], scale[1]),
	}, nil
}

// Easing resolves the configured easing curve.
func (m MandalaConfig) Easing() (mandala.Easing, error) {
	e, ok := mandala.EasingByName(m.Ease)
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", m.Ease)
	}
	return e, nil
}

// Source loads the configured petal.
func (p PetalConfig) Source() (mandala.PetalSource, error) {
	switch {
	case p.Frames != "":
		return mandala.FramePetalFromFile(p.Frames)
	case p.File != "":
		return mandala.StaticPetalFromFile(p.File)
	default:
		o, err := mandala.ParsePathData(p.Path)
		if err != nil {
			return nil, err
		}
		return mandala.NewStaticPetal(o), nil
	}
}

// FrameFor picks the petal frame to draw for an openness value.
func (p PetalConfig) FrameFor(value float64, frames int) int {
	if p.FrameMode == FrameOpenness {
		return mandala.FrameForValue(value, frames)
	}
	return p.Frame
}

// BackgroundColor returns the parsed window background.
func (w WindowConfig) BackgroundColor() colorful.Color {
	c, err := colorful.Hex(w.Background)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// NewMandala builds the mandala described by c. The petal source is loaded
// from disk here.
func (c Config) NewMandala(log *zerolog.Logger, hooks mandala.Hooks) (*mandala.Mandala, error) {
	petal, err := c.Petal.Source()
	if err != nil {
		return nil, err
	}
	open, err := c.Open.State()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	closed, err := c.Closed.State()
	if err != nil {
		return nil, fmt.Errorf("closed: %w", err)
	}
	ease, err := c.Mandala.Easing()
	if err != nil {
		return nil, err
	}
	return mandala.New(mandala.Config{
		Petal:        petal,
		Position:     mandala.Vec2{X: c.Mandala.Center[0], Y: c.Mandala.Center[1]},
		Scale:        mandala.Vec2{X: c.Mandala.Scale[0], Y: c.Mandala.Scale[1]},
		PetalCount:   c.Mandala.Petals,
		Open:         open,
		Closed:       closed,
		InitialValue: c.Mandala.Initial,
		Tolerance:    c.Petal.Tolerance,
		Ease:         ease,
		Logger:       log,
		Hooks:        hooks,
	})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
