package watch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"tableflip.dev/eod/pkg/format"
	"tableflip.dev/eod/pkg/journal"
	"tableflip.dev/eod/pkg/store"
)

func init() {
	color.NoColor = true
}

type lockedBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *lockedBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

func TestWatchUnsupportedBackend(t *testing.T) {
	ctx := context.Background()
	b := store.NewMemory()
	j, err := journal.Open(ctx, b)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	w := Watch{Backend: b, Journal: j, Out: &bytes.Buffer{}, Logger: zerolog.Nop()}
	if err := w.Do(ctx); !errors.Is(err, store.ErrWatchUnsupported) {
		t.Fatalf("expected ErrWatchUnsupported, got %v", err)
	}
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	watched := store.NewDiskv(dir)
	j, err := journal.Open(ctx, watched)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	out := &lockedBuffer{}
	w := Watch{Backend: watched, Journal: j, Out: out, Logger: zerolog.Nop()}
	done := make(chan error, 1)
	go func() { done <- w.Do(ctx) }()

	writer, err := journal.Open(ctx, store.NewDiskv(dir))
	if err != nil {
		t.Fatalf("open writer: %v", err)
	}
	// Give the watcher time to register before writing.
	time.Sleep(200 * time.Millisecond)
	if _, err := writer.Upsert(ctx, "", format.Fields{Title: "From elsewhere", Details: "x"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for !strings.Contains(out.String(), "From elsewhere") {
		select {
		case <-deadline:
			t.Fatalf("watch never reprinted, output %q", out.String())
		case <-time.After(20 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("watch returned %v", err)
	}
}
