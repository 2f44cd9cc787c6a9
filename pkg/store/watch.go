package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const watchDelay = 100 * time.Millisecond

// Watch streams an Event each time the file behind key changes, until ctx is
// cancelled. Bursts of writes are coalesced into one event. The channel is
// closed when ctx is done or the watcher fails.
func (b *DiskvBackend) Watch(ctx context.Context, key string) (<-chan Event, error) {
	if b.basePath == "" {
		return nil, fmt.Errorf("store: base path unknown")
	}
	if err := os.MkdirAll(b.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(b.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", b.basePath, err)
	}

	events := make(chan Event, 16)
	logger := log.Logger.With().Str("component", "watch").Logger()

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				logger.Warn().Err(err).Msg("close watcher")
			}
		}()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// The consumer reloads everything on each event, so a dropped
				// one is covered by the one still queued.
			}
		}

		throttle := newEventThrottle(watchDelay)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn().Err(err).Msg("watcher error")
				throttle.Enqueue(Event{Key: key}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != key {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				throttle.Enqueue(Event{Key: key}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid notifications so a listener reloads once per
// burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.pending[ev.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

// flush sends while holding the lock so Stop cannot return mid-send; send
// must not block.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil

	for key := range pending {
		send(Event{Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
