// Package telemetry builds the process logger.
package telemetry

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps per-artifact skips out of the operator's way.
const DefaultLevel = "warn"

// ParseLevel maps a config or flag value to a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		s = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// NewLogger writes human-readable lines to w at the given level.
func NewLogger(w io.Writer, level zerolog.Level, noColor bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: "15:04:05"}
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "footprint").
		Logger()
}
