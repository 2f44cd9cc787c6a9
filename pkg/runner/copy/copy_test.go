package copy

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"tableflip.dev/eod/pkg/clip"
	"tableflip.dev/eod/pkg/format"
	"tableflip.dev/eod/pkg/journal"
	"tableflip.dev/eod/pkg/store"
)

func TestCopyEntryContent(t *testing.T) {
	ctx := context.Background()
	j, err := journal.Open(ctx, store.NewMemory())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	e, err := j.Upsert(ctx, "", format.Fields{Details: "1. Did X"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	var got string
	c := Copy{
		Journal: j,
		Copier:  &clip.Copier{Write: func(s string) error { got = s; return nil }, Logger: zerolog.Nop()},
		ID:      e.ID,
		Out:     &bytes.Buffer{},
	}
	if err := c.Do(ctx); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if got != e.Content {
		t.Fatalf("expected %q, got %q", e.Content, got)
	}

	c.ID = "missing"
	if err := c.Do(ctx); !errors.Is(err, journal.ErrUnknownEntry) {
		t.Fatalf("expected ErrUnknownEntry, got %v", err)
	}
}

func TestCopyFailureIsNotAnError(t *testing.T) {
	var b bytes.Buffer
	c := Copy{
		Copier: &clip.Copier{Write: func(string) error { return errors.New("no display") }, Logger: zerolog.Nop()},
		Text:   "preview",
		Out:    &b,
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(b.String(), "Nothing copied") {
		t.Fatalf("unexpected output %q", b.String())
	}
}
