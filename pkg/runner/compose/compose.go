// Package compose runs the interactive entry form with a live preview.
package compose

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tableflip.dev/eod/pkg/clip"
	"tableflip.dev/eod/pkg/journal"
	"tableflip.dev/eod/pkg/session"
)

// ErrNoTerminal is returned when stdout is not an interactive terminal.
var ErrNoTerminal = errors.New("compose needs an interactive terminal")

type Compose struct {
	Journal *journal.Store
	Session *session.Session
	Themes  *session.Themes
	Copier  *clip.Copier
	// EditID starts the form on an existing entry.
	EditID string
	Theme  session.Theme
}

func (c *Compose) Do(ctx context.Context) error {
	if c.Journal == nil || c.Session == nil {
		return errors.New("can not compose, no journal")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return ErrNoTerminal
	}
	if c.EditID != "" && !c.Session.BeginEdit(c.Journal, c.EditID) {
		return fmt.Errorf("%w: %s", journal.ErrUnknownEntry, c.EditID)
	}

	m := newModel(ctx, c.Journal, c.Session, c.Themes, c.Copier, c.Theme)
	p := tea.NewProgram(m, tea.WithAltScreen())

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	_, err := p.Run()
	return err
}
