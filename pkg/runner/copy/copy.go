package copy

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/eod/pkg/clip"
	"tableflip.dev/eod/pkg/journal"
)

// Copy puts an entry's content, or Text when ID is empty, on the clipboard.
// A clipboard failure is reported on Out but is not an error.
type Copy struct {
	Journal *journal.Store
	Copier  *clip.Copier
	ID      string
	Text    string
	Out     io.Writer
}

func (c *Copy) Do(ctx context.Context) error {
	if c.Copier == nil {
		return errors.New("can not copy, no clipboard")
	}

	text := c.Text
	if c.ID != "" {
		if c.Journal == nil {
			return errors.New("can not copy, no journal")
		}
		e, ok := c.Journal.FindByID(c.ID)
		if !ok {
			return fmt.Errorf("%w: %s", journal.ErrUnknownEntry, c.ID)
		}
		text = e.Content
	}

	out := c.Out
	if out == nil {
		out = color.Output
	}
	if c.Copier.Copy(text) {
		_, _ = color.New(color.FgGreen).Fprintln(out, "Copied to clipboard")
	} else {
		_, _ = color.New(color.FgYellow).Fprintln(out, "Nothing copied")
	}
	return nil
}
