// Package journal owns the collection of end-of-day entries and mediates
// every create, update, delete, import and export against a storage backend.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/eod/pkg/entry"
	"tableflip.dev/eod/pkg/format"
	"tableflip.dev/eod/pkg/store"
)

// Store is the single owner of the entry collection. Entries are kept front
// first: new entries are prepended, edits keep their position. Every mutation
// is read-modify-persist under one lock, and a failed persist leaves the
// in-memory collection untouched.
type Store struct {
	mu      sync.Mutex
	entries []*entry.Entry

	backend store.Backend
	now     func() time.Time
	newID   func() string
	log     zerolog.Logger
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs replaces entry.NewID.
func WithIDs(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger sets the logger used for recoverable problems.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns an empty Store over backend. Call Load to read saved entries.
func New(backend store.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		now:     time.Now,
		newID:   entry.NewID,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open is New followed by Load.
func Open(ctx context.Context, backend store.Backend, opts ...Option) (*Store, error) {
	if backend == nil {
		return nil, errNoBackend
	}
	s := New(backend, opts...)
	s.Load(ctx)
	return s, nil
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Load replaces the in-memory collection with the persisted one. Missing,
// unreadable or corrupt data yields an empty collection, and stored elements
// that do not decode are skipped. Problems are logged and never returned, so
// the journal always starts usable.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = s.read(ctx)
}

func (s *Store) read(ctx context.Context) []*entry.Entry {
	raw, err := s.backend.Read(ctx, store.EntriesKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn().Err(err).Msg("failed to read entries, starting empty")
		}
		return nil
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		s.log.Warn().Err(err).Msg("failed to parse entries, starting empty")
		return nil
	}
	out := make([]*entry.Entry, 0, len(elems))
	for i, el := range elems {
		el = json.RawMessage(strings.TrimSpace(string(el)))
		if len(el) == 0 || el[0] != '{' {
			s.log.Warn().Int("index", i).Msg("skipping stored entry that is not an object")
			continue
		}
		e := &entry.Entry{}
		if err := json.Unmarshal(el, e); err != nil {
			s.log.Warn().Err(err).Int("index", i).Msg("skipping unreadable stored entry")
			continue
		}
		out = append(out, e)
	}
	return out
}

// Persist writes the whole collection.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, s.entries)
}

func (s *Store) write(ctx context.Context, entries []*entry.Entry) error {
	if entries == nil {
		entries = []*entry.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("journal: encode entries: %w", err)
	}
	if err := s.backend.Write(ctx, store.EntriesKey, data); err != nil {
		return fmt.Errorf("journal: persist entries: %w", err)
	}
	return nil
}

// commit persists next and, only if that worked, makes it the collection.
func (s *Store) commit(ctx context.Context, next []*entry.Entry) error {
	if err := s.write(ctx, next); err != nil {
		return err
	}
	s.entries = next
	return nil
}

// Upsert saves the form. With an editingID that resolves, the entry is
// replaced field for field in place, keeping its id and createdAt. Otherwise
// a new entry is created at the front. Blank details fail with
// ErrEmptyDetails and change nothing.
func (s *Store) Upsert(ctx context.Context, editingID string, f format.Fields) (*entry.Entry, error) {
	if strings.TrimSpace(f.Details) == "" {
		return nil, ErrEmptyDetails
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := entry.Now(s.now).Time

	if editingID != "" {
		if idx := s.indexOf(editingID); idx >= 0 {
			updated := s.entries[idx].Clone()
			updated.Apply(f, now)

			next := make([]*entry.Entry, len(s.entries))
			copy(next, s.entries)
			next[idx] = updated
			if err := s.commit(ctx, next); err != nil {
				return nil, err
			}
			s.log.Debug().Str("id", updated.ID).Msg("entry updated")
			return updated.Clone(), nil
		}
		s.log.Debug().Str("id", editingID).Msg("edit target gone, saving as new entry")
	}

	created := entry.New(s.uniqueID(), f, now)
	next := make([]*entry.Entry, 0, len(s.entries)+1)
	next = append(next, created)
	next = append(next, s.entries...)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.log.Debug().Str("id", created.ID).Msg("entry created")
	return created.Clone(), nil
}

// Delete removes the entry with id and reports whether one was removed.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	next := make([]*entry.Entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:idx]...)
	next = append(next, s.entries[idx+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// FindByID returns a copy of the entry with id.
func (s *Store) FindByID(id string) (*entry.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	return s.entries[idx].Clone(), true
}

// ClearAll empties the collection.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, []*entry.Entry{})
}

// ReplaceAll swaps in a new collection wholesale, in the given order. The
// entries are taken as they are; only nil elements are dropped.
func (s *Store) ReplaceAll(ctx context.Context, entries []*entry.Entry) error {
	next := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			next = append(next, e.Clone())
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, next)
}

// List returns copies of all entries in store order.
func (s *Store) List() []*entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entry.Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

// Since returns entries created at or after cutoff, in store order.
func (s *Store) Since(cutoff time.Time) []*entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entry.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.CreatedAt.Before(cutoff) {
			out = append(out, e.Clone())
		}
	}
	return out
}

// Len is the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// uniqueID draws ids until one is not taken. Collisions only happen with an
// injected generator.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}
