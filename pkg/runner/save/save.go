package save

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/eod/pkg/clip"
	"tableflip.dev/eod/pkg/journal"
	"tableflip.dev/eod/pkg/printers"
	"tableflip.dev/eod/pkg/session"
)

// Save writes the session's form to the journal, creating a new entry or
// updating the one being edited.
type Save struct {
	Journal *journal.Store
	Session *session.Session

	// Copier, when set, receives the saved content.
	Copier *clip.Copier

	Theme session.Theme
	Out   io.Writer
}

func (s *Save) Do(ctx context.Context) error {
	if s.Journal == nil || s.Session == nil {
		return fmt.Errorf("can not save, no journal")
	}

	editing := s.Session.Editing()
	e, err := s.Session.Save(ctx, s.Journal)
	if err != nil {
		return err
	}

	out := s.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out, Theme: s.Theme, ShowID: true}
	pp.Entry(e)

	verb := "Saved"
	if editing {
		verb = "Updated"
	}
	msg := color.New(color.FgGreen)
	_, _ = msg.Fprintf(out, "%s %s\n", verb, e.ID)

	if s.Copier != nil {
		if s.Copier.Copy(e.Content) {
			_, _ = msg.Fprintln(out, "Copied to clipboard")
		} else {
			_, _ = color.New(color.FgYellow).Fprintln(out, "Could not copy to clipboard")
		}
	}
	return nil
}
