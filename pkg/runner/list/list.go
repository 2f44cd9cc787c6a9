package list

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/eod/pkg/entry"
	"tableflip.dev/eod/pkg/exchange"
	"tableflip.dev/eod/pkg/journal"
	"tableflip.dev/eod/pkg/printers"
	"tableflip.dev/eod/pkg/session"
	"tableflip.dev/eod/pkg/timeutil"
)

type List struct {
	Journal *journal.Store
	// Since limits the listing to entries created within the window.
	Since  time.Duration
	ShowID bool
	JSON   bool
	// Check reports entries whose content no longer matches their fields.
	Check bool

	Theme session.Theme
	Out   io.Writer
}

func (l *List) Do(ctx context.Context) error {
	if l.Journal == nil {
		return errors.New("can not list, no journal")
	}

	all := l.Journal.List()
	title := "EOD Entries"
	if l.Since > 0 {
		all = l.Journal.Since(timeutil.Cutoff(l.Journal.Now(), l.Since))
		title = fmt.Sprintf("EOD Entries (last %s)", timeutil.FormatWindow(l.Since))
	}

	if l.JSON {
		return writeJSON(l.out(), all)
	}

	pp := printers.PrettyPrint{Out: l.Out, Theme: l.Theme, ShowID: l.ShowID}
	pp.TitleWithCount(title, len(all))
	pp.Entries(all...)

	if l.Check {
		now := l.Journal.Now()
		stale := 0
		warn := color.New(color.FgYellow)
		for _, e := range all {
			if e.Stale(now) {
				stale++
				_, _ = warn.Fprintf(l.out(), "stale content: %s\n", e.ID)
			}
		}
		if stale == 0 {
			_, _ = color.New(color.FgGreen).Fprintln(l.out(), "all entries match their fields")
		}
	}
	return nil
}

func (l *List) out() io.Writer {
	if l.Out == nil {
		return color.Output
	}
	return l.Out
}

// Show prints one entry.
type Show struct {
	Journal *journal.Store
	ID      string
	ShowID  bool
	JSON    bool

	Theme session.Theme
	Out   io.Writer
}

func (s *Show) Do(ctx context.Context) error {
	if s.Journal == nil {
		return errors.New("can not show, no journal")
	}
	e, ok := s.Journal.FindByID(s.ID)
	if !ok {
		return fmt.Errorf("%w: %s", journal.ErrUnknownEntry, s.ID)
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}
	if s.JSON {
		return writeJSON(out, []*entry.Entry{e})
	}
	pp := printers.PrettyPrint{Out: out, Theme: s.Theme, ShowID: s.ShowID}
	pp.Entry(e)
	return nil
}

func writeJSON(w io.Writer, entries []*entry.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "[]")
		return err
	}
	b, err := exchange.Export(entries)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
