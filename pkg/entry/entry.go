package entry

import (
	"time"

	"tableflip.dev/eod/pkg/format"
)

// Entry is one saved end-of-day post. Content is derived from the other
// fields on every save and is not edited directly.
type Entry struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Date      string     `json:"date"`
	Title     string     `json:"title"`
	Details   string     `json:"details"`
	Content   string     `json:"content"`
	CreatedAt Timestamp  `json:"createdAt"`
	UpdatedAt *Timestamp `json:"updatedAt,omitempty"`
}

// New builds an entry from already validated fields.
func New(id string, f format.Fields, now time.Time) *Entry {
	r := format.Resolve(f, now)
	return &Entry{
		ID:        id,
		Name:      r.Name,
		Date:      r.Date,
		Title:     r.Title,
		Details:   r.Details,
		Content:   format.Render(r, now),
		CreatedAt: Timestamp{Time: now},
	}
}

// Apply replaces every editable field, recomputes Content and stamps
// UpdatedAt. ID and CreatedAt are left alone.
func (e *Entry) Apply(f format.Fields, now time.Time) {
	r := format.Resolve(f, now)
	e.Name = r.Name
	e.Date = r.Date
	e.Title = r.Title
	e.Details = r.Details
	e.Content = format.Render(r, now)
	e.UpdatedAt = &Timestamp{Time: now}
}

// Fields returns the editable fields for hydrating a form.
func (e *Entry) Fields() format.Fields {
	return format.Fields{
		Name:    e.Name,
		Date:    e.Date,
		Title:   e.Title,
		Details: e.Details,
	}
}

// Stale reports whether Content no longer matches the rendering of the
// entry's own fields. Only imported data can be stale.
func (e *Entry) Stale(today time.Time) bool {
	return e.Content != format.Render(e.Fields(), today)
}

// Clone returns a deep copy.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	if e.UpdatedAt != nil {
		u := *e.UpdatedAt
		cp.UpdatedAt = &u
	}
	return &cp
}

// Heading returns the card heading, falling back for imported entries that
// carry no title.
func (e *Entry) Heading() string {
	if e.Title == "" {
		return "EOD Entry"
	}
	return e.Title
}

// LastTouched is UpdatedAt when set, otherwise CreatedAt.
func (e *Entry) LastTouched() time.Time {
	if e.UpdatedAt != nil && !e.UpdatedAt.IsZero() {
		return e.UpdatedAt.Time
	}
	return e.CreatedAt.Time
}
