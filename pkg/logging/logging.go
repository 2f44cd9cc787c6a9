// Package logging configures the zerolog logger shared by every command.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a console logger writing to w at the named level. Unknown
// level names fall back to warn.
func New(w io.Writer, level string) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(console).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// Setup installs a stderr logger as the zerolog global and returns it.
func Setup(level string) zerolog.Logger {
	l := New(os.Stderr, level)
	log.Logger = l
	return l
}

// ParseLevel maps a level name to a zerolog.Level.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

// Component tags a logger with the subsystem it belongs to.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
