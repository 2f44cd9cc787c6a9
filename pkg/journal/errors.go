package journal

import "errors"

// ValidationError rejects a save before any state changes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "journal: " + e.Field + " " + e.Reason
}

// Is matches any ValidationError on the same field, so errors.Is works
// against the sentinel below.
func (e *ValidationError) Is(target error) bool {
	var other *ValidationError
	if !errors.As(target, &other) {
		return false
	}
	return other.Field == e.Field
}

var (
	// ErrEmptyDetails is returned by Upsert when the details are blank.
	ErrEmptyDetails = &ValidationError{Field: "details", Reason: "must not be empty"}

	// ErrUnknownEntry reports an id that resolves to no entry.
	ErrUnknownEntry = errors.New("journal: no such entry")

	errNoBackend = errors.New("journal: no backend configured")
)
