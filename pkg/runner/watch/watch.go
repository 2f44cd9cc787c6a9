package watch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"tableflip.dev/eod/pkg/journal"
	"tableflip.dev/eod/pkg/printers"
	"tableflip.dev/eod/pkg/session"
	"tableflip.dev/eod/pkg/store"
)

// Watch reprints the entry list each time another process changes the
// stored entries. It returns when ctx is done.
type Watch struct {
	Backend store.Backend
	Journal *journal.Store
	ShowID  bool
	Theme   session.Theme
	Out     io.Writer
	Logger  zerolog.Logger
}

func (w *Watch) Do(ctx context.Context) error {
	if w.Journal == nil {
		return errors.New("can not watch, no journal")
	}
	watcher, ok := w.Backend.(store.Watcher)
	if !ok {
		return store.ErrWatchUnsupported
	}
	events, err := watcher.Watch(ctx, store.EntriesKey)
	if err != nil {
		return err
	}

	w.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			w.Logger.Debug().Str("key", ev.Key).Msg("entries changed")
			w.Journal.Load(ctx)
			w.render()
		}
	}
}

func (w *Watch) render() {
	out := w.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out, Theme: w.Theme, ShowID: w.ShowID}
	_, _ = fmt.Fprintln(out, color.New(color.Faint).Sprintf("updated %s", w.Journal.Now().Format("15:04:05")))
	pp.TitleWithCount("EOD Entries", w.Journal.Len())
	pp.Entries(w.Journal.List()...)
}
