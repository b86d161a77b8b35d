package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phanxgames/mandala"
	"github.com/phanxgames/mandala/internal/config"
	"github.com/phanxgames/mandala/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "mandala",
	Short: "Mandala animates a flower of vector petals",
	Long: `Mandala draws N rotated copies of an SVG petal whose color and pose
open and close under a smoothed openness value, fed by a demo wave or by
numbers piped on stdin.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "TOML or YAML configuration file (defaults when empty)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("debug", false, "panic on contract violations instead of clamping")
}

// setup loads the configuration named by --config and builds the logger.
func setup(cmd *cobra.Command) (config.Config, zerolog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	level, _ := cmd.Flags().GetString("log-level")
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		mandala.SetDebugMode(true)
	}
	return loadConfig(path, level)
}

func loadConfig(path, level string) (config.Config, zerolog.Logger, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, zerolog.Nop(), err
		}
	}
	if level != "" {
		cfg.Log.Level = level
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Console)
	if err != nil {
		return config.Config{}, zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	return cfg, log, nil
}
