// Package clip copies rendered entries to the system clipboard.
package clip

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
)

var errNoClipboard = errors.New("no clipboard utility available")

// Copier writes text to a clipboard. Failures are logged, never returned.
type Copier struct {
	Write  func(string) error
	Logger zerolog.Logger
}

// New returns a Copier backed by the system clipboard.
func New(l zerolog.Logger) *Copier {
	return &Copier{Write: writeSystem, Logger: l}
}

func writeSystem(text string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(text)
}

// Copy trims text and copies it. It reports whether the clipboard now holds
// the text; blank text is skipped.
func (c *Copier) Copy(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	write := c.Write
	if write == nil {
		write = writeSystem
	}
	if err := write(text); err != nil {
		c.Logger.Warn().Err(err).Msg("copy failed")
		return false
	}
	return true
}
