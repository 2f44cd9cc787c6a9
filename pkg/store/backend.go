// Package store holds the storage media an eod journal can persist to. Each
// medium is a tiny key/value byte store; the journal decides what the bytes
// mean.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EntriesKey holds the JSON array of saved entries.
	EntriesKey = "dailyEodEntries_v1"
	// ThemeKey holds the persisted theme preference, "dark" or "light".
	ThemeKey = "dailyEodTheme"

	sqliteFile = "eod.db"
)

var (
	// ErrNotFound is returned by Read for a key that was never written.
	ErrNotFound = errors.New("store: key not found")
	// ErrWatchUnsupported is returned when a backend cannot report changes.
	ErrWatchUnsupported = errors.New("store: backend does not support watching")
)

// Backend is the persistence contract for a journal.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Erase(ctx context.Context, key string) error
	Close() error
}

// Watcher is implemented by backends that can notice writes made by other
// processes.
type Watcher interface {
	Watch(ctx context.Context, key string) (<-chan Event, error)
}

// Event reports that the value under Key changed on disk.
type Event struct {
	Key string
}

// Open creates the backend named by cfg. A nil cfg loads the default config.
func Open(ctx context.Context, cfg Config) (Backend, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend() {
	case BackendDiskv:
		return NewDiskv(cfg.BasePath()), nil
	case BackendSQLite:
		if err := os.MkdirAll(cfg.BasePath(), 0o755); err != nil {
			return nil, fmt.Errorf("store: ensure base path: %w", err)
		}
		return OpenSQLite(ctx, filepath.Join(cfg.BasePath(), sqliteFile))
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}
