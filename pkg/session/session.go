// Package session tracks the state of the form a user is filling in: which
// entry, if any, is being edited and what the fields currently hold.
package session

import (
	"context"
	"time"

	"tableflip.dev/eod/pkg/entry"
	"tableflip.dev/eod/pkg/format"
	"tableflip.dev/eod/pkg/journal"
)

// Session is owned by one UI shell. It is not safe for concurrent use.
type Session struct {
	// EditingID is the entry being edited, or empty for a new entry.
	EditingID string
	Form      format.Fields

	author string
}

// New returns a session with the form at its defaults. author prefills the
// name field and survives EndEdit.
func New(now time.Time, author string) *Session {
	s := &Session{author: author}
	s.reset(now)
	return s
}

func (s *Session) reset(now time.Time) {
	s.Form = format.Fields{
		Name:  s.author,
		Date:  format.Today(now),
		Title: format.DefaultTitle,
	}
}

// Editing reports whether an edit is in progress.
func (s *Session) Editing() bool {
	return s.EditingID != ""
}

// BeginEdit loads the entry with id into the form. Unknown ids leave the
// session untouched and return false.
func (s *Session) BeginEdit(j *journal.Store, id string) bool {
	e, ok := j.FindByID(id)
	if !ok {
		return false
	}
	s.EditingID = e.ID
	s.Form = e.Fields()
	if s.Form.Date == "" {
		s.Form.Date = format.Today(j.Now())
	}
	return true
}

// EndEdit drops any edit in progress and resets the form.
func (s *Session) EndEdit(now time.Time) {
	s.EditingID = ""
	s.reset(now)
}

// Preview renders the form as it stands, placeholders included.
func (s *Session) Preview(now time.Time) string {
	return format.Preview(s.Form, now)
}

// GenerateTemplate fills blank details with format.Template.
func (s *Session) GenerateTemplate() bool {
	details, applied := format.ApplyTemplate(s.Form.Details)
	s.Form.Details = details
	return applied
}

// Save upserts the form into j. On success the edit session ends and the
// form resets; on failure the session is left as it was.
func (s *Session) Save(ctx context.Context, j *journal.Store) (*entry.Entry, error) {
	e, err := j.Upsert(ctx, s.EditingID, s.Form)
	if err != nil {
		return nil, err
	}
	s.EndEdit(j.Now())
	return e, nil
}
