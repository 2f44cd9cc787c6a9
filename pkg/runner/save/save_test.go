package save

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"tableflip.dev/eod/pkg/clip"
	"tableflip.dev/eod/pkg/format"
	"tableflip.dev/eod/pkg/journal"
	"tableflip.dev/eod/pkg/session"
	"tableflip.dev/eod/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestSaveNewWithTemplateAndCopy(t *testing.T) {
	ctx := context.Background()
	j, err := journal.Open(ctx, store.NewMemory())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var copied string
	c := &clip.Copier{Write: func(s string) error { copied = s; return nil }, Logger: zerolog.Nop()}

	var b bytes.Buffer
	sess := session.New(j.Now(), "Alice")
	sess.GenerateTemplate()
	s := Save{Journal: j, Session: sess, Copier: c, Out: &b}
	if err := s.Do(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	if j.Len() != 1 {
		t.Fatalf("expected one entry, got %d", j.Len())
	}
	e := j.List()[0]
	if e.Details != format.Template || copied != e.Content {
		t.Fatalf("unexpected entry %+v, copied %q", e, copied)
	}
	if !strings.Contains(b.String(), "Saved "+e.ID) {
		t.Fatalf("unexpected output %q", b.String())
	}
}

func TestSaveEditReportsUpdate(t *testing.T) {
	ctx := context.Background()
	j, err := journal.Open(ctx, store.NewMemory())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	e, err := j.Upsert(ctx, "", format.Fields{Details: "first"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	sess := session.New(j.Now(), "")
	if !sess.BeginEdit(j, e.ID) {
		t.Fatalf("begin edit failed")
	}
	sess.Form.Details = "second"

	var b bytes.Buffer
	s := Save{Journal: j, Session: sess, Out: &b}
	if err := s.Do(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, _ := j.FindByID(e.ID); got.Details != "second" {
		t.Fatalf("entry not updated: %+v", got)
	}
	if !strings.Contains(b.String(), "Updated "+e.ID) {
		t.Fatalf("unexpected output %q", b.String())
	}
}

func TestSaveEmptyDetails(t *testing.T) {
	ctx := context.Background()
	j, err := journal.Open(ctx, store.NewMemory())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s := Save{Journal: j, Session: session.New(j.Now(), ""), Out: &bytes.Buffer{}}
	if err := s.Do(ctx); !errors.Is(err, journal.ErrEmptyDetails) {
		t.Fatalf("expected ErrEmptyDetails, got %v", err)
	}
}
