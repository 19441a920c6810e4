// Package obslog wires up the zerolog loggers passed explicitly into the
// VIG builders and the FH segmenter, following the
// Config.CreateLogger pattern used by the louvain/scar packages this
// module was grown alongside.
package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewConsoleLogger returns a human-readable logger suitable for local runs
// and tests, timestamped and tagged with the given service name.
func NewConsoleLogger(service string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", service).Logger()
}

// NewJSONLogger returns a structured JSON logger for production piping.
func NewJSONLogger(w io.Writer, service string, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("service", service).Logger()
}

// ParseLevel parses a level string, defaulting to Info on failure —
// matching Config.CreateLogger's fallback behavior.
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
