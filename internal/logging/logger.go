// Package logging builds the zerolog logger shared by the mandala commands.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the configured level when set.
const EnvLogLevel = "MANDALA_LOG_LEVEL"

// New creates the application logger. It writes to stderr so stdout stays
// free for command output. With console set, records are rendered by a
// zerolog.ConsoleWriter instead of as JSON.
func New(level string, console bool) (zerolog.Logger, error) {
	return NewWriter(os.Stderr, level, console)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, level string, console bool) (zerolog.Logger, error) {
	if env := strings.TrimSpace(os.Getenv(EnvLogLevel)); env != "" {
		level = env
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("app", "mandala").Logger(), nil
}

// ParseLevel parses a level name. The empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	if s == "warning" {
		s = "warn"
	}
	return zerolog.ParseLevel(s)
}
