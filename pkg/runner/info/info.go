package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/eod/pkg/journal"
	"tableflip.dev/eod/pkg/session"
	"tableflip.dev/eod/pkg/store"
)

type Info struct {
	Config  store.Config
	Journal *journal.Store
	Theme   session.Theme
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("EOD_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "EOD_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "EOD_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Journal == nil {
		return errors.New("failed to open the journal")
	}

	author := n.Config.AuthorName()
	if author == "" {
		author = "(unset)"
	}

	table := uitable.New()
	table.AddRow("path:", n.Config.BasePath())
	table.AddRow("backend:", n.Config.Backend())
	table.AddRow("name:", author)
	table.AddRow("log-level:", n.Config.LogLevel())
	table.AddRow("theme:", fmt.Sprintf("%s %s", n.Theme.Icon(), n.Theme))
	table.AddRow("entries:", n.Journal.Len())
	_, err := fmt.Fprintln(out, table.String())
	return err
}
