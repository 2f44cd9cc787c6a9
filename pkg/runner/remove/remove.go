package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/eod/pkg/journal"
)

// Remove deletes a single entry.
type Remove struct {
	Journal *journal.Store
	ID      string
	Out     io.Writer
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Journal == nil {
		return errors.New("can not delete, no journal")
	}
	removed, err := r.Journal.Delete(ctx, r.ID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: %s", journal.ErrUnknownEntry, r.ID)
	}
	_, _ = color.New(color.FgRed).Fprintf(writer(r.Out), "Deleted %s\n", r.ID)
	return nil
}

// Clear deletes every entry.
type Clear struct {
	Journal *journal.Store
	Out     io.Writer
}

func (c *Clear) Do(ctx context.Context) error {
	if c.Journal == nil {
		return errors.New("can not clear, no journal")
	}
	n := c.Journal.Len()
	if err := c.Journal.ClearAll(ctx); err != nil {
		return err
	}
	_, _ = color.New(color.FgRed).Fprintf(writer(c.Out), "Cleared %d entries\n", n)
	return nil
}

func writer(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
