// Package transfer moves the whole journal in and out of JSON files.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"tableflip.dev/eod/pkg/exchange"
	"tableflip.dev/eod/pkg/journal"
)

// Stdio is the path that selects standard input or output.
const Stdio = "-"

// Export writes every entry as pretty JSON. An empty Path writes a
// timestamped file into Dir.
type Export struct {
	Journal *journal.Store
	Path    string
	Dir     string
	Out     io.Writer
}

func (e *Export) Do(ctx context.Context) error {
	if e.Journal == nil {
		return errors.New("can not export, no journal")
	}
	b, err := exchange.Export(e.Journal.List())
	if err != nil {
		return err
	}

	out := e.Out
	if out == nil {
		out = color.Output
	}
	if e.Path == Stdio {
		_, err := fmt.Fprintln(out, string(b))
		return err
	}

	path := e.Path
	if path == "" {
		path = filepath.Join(e.Dir, exchange.FileName(e.Journal.Now()))
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	_, _ = color.New(color.FgGreen).Fprintf(out, "Exported %d entries to %s\n", e.Journal.Len(), path)
	return nil
}

// Import replaces the journal with the entries in a JSON file.
type Import struct {
	Journal *journal.Store
	Path    string
	In      io.Reader
	Out     io.Writer
}

func (i *Import) Do(ctx context.Context) error {
	if i.Journal == nil {
		return errors.New("can not import, no journal")
	}

	var (
		data []byte
		err  error
	)
	if i.Path == Stdio {
		if i.In == nil {
			i.In = os.Stdin
		}
		data, err = io.ReadAll(i.In)
	} else {
		data, err = os.ReadFile(i.Path)
	}
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	n, err := exchange.Restore(ctx, i.Journal, data)
	if err != nil {
		return err
	}

	out := i.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.FgGreen).Fprintf(out, "Imported %d entries\n", n)
	return nil
}
