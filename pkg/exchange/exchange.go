// Package exchange converts between the journal and portable snapshot files.
package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/eod/pkg/entry"
	"tableflip.dev/eod/pkg/journal"
)

// ErrNothingToExport is returned by Export for an empty collection.
var ErrNothingToExport = errors.New("exchange: no entries to export")

// Kind classifies an ImportError.
type Kind int

const (
	// KindParse means the file is not valid JSON or an element has the
	// wrong shape.
	KindParse Kind = iota
	// KindNotAnArray means the JSON parsed but its top level is not an array.
	KindNotAnArray
)

func (k Kind) String() string {
	switch k {
	case KindNotAnArray:
		return "not an array"
	default:
		return "parse error"
	}
}

// ImportError aborts an import. Nothing is replaced when one is returned.
type ImportError struct {
	Kind Kind
	Err  error
}

func (e *ImportError) Error() string {
	if e.Kind == KindNotAnArray {
		return "exchange: invalid file format, expected an array of entries"
	}
	return fmt.Sprintf("exchange: failed to import file: %v", e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Export encodes entries as a two-space indented JSON array.
func Export(entries []*entry.Entry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNothingToExport
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("exchange: encode entries: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// FileName is the download name for an export taken at now, for example
// eod-entries-2024-03-05T10-20-30-123Z.json.
func FileName(now time.Time) string {
	stamp := entry.Timestamp{Time: now}.String()
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return "eod-entries-" + stamp + ".json"
}

// Import decodes a snapshot. The top level must be an array; each element
// must be an object whose known fields have the right types. Missing fields
// are left empty and unknown ones are ignored.
func Import(data []byte) ([]*entry.Entry, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ImportError{Kind: KindParse, Err: err}
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &ImportError{Kind: KindNotAnArray, Err: fmt.Errorf("top level is %s", jsonKind(trimmed))}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, &ImportError{Kind: KindParse, Err: err}
	}

	entries := make([]*entry.Entry, 0, len(elems))
	for i, el := range elems {
		el = bytes.TrimSpace(el)
		if len(el) == 0 || el[0] != '{' {
			return nil, &ImportError{Kind: KindParse, Err: fmt.Errorf("element %d is %s, expected an object", i, jsonKind(el))}
		}
		e := &entry.Entry{}
		if err := json.Unmarshal(el, e); err != nil {
			return nil, &ImportError{Kind: KindParse, Err: fmt.Errorf("element %d: %w", i, err)}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Restore imports data and, only if that succeeds, replaces the whole
// journal with it. It returns the number of entries now in the journal.
func Restore(ctx context.Context, j *journal.Store, data []byte) (int, error) {
	entries, err := Import(data)
	if err != nil {
		return 0, err
	}
	entries = ensureIDs(entries)
	if err := j.ReplaceAll(ctx, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// ensureIDs gives entries without an id, or with an id already used earlier
// in the file, a fresh one so edit and delete can address them.
func ensureIDs(entries []*entry.Entry) []*entry.Entry {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.ID]; e.ID == "" || dup {
			e.ID = entry.NewID()
		}
		seen[e.ID] = struct{}{}
	}
	return entries
}

func jsonKind(b []byte) string {
	if len(b) == 0 {
		return "empty"
	}
	switch b[0] {
	case '{':
		return "an object"
	case '[':
		return "an array"
	case '"':
		return "a string"
	case 't', 'f':
		return "a boolean"
	case 'n':
		return "null"
	default:
		return "a number"
	}
}
