package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/eod/pkg/commands/options"
	"tableflip.dev/eod/pkg/journal"
	"tableflip.dev/eod/pkg/runner/remove"
	"tableflip.dev/eod/pkg/snake"
)

func addDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete one entry.",
		Example: `
eod delete 0190a7c2-...
eod delete 0190a7c2-... --yes
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			found, ok := e.journal.FindByID(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", journal.ErrUnknownEntry, args[0])
			}
			if !co.Yes {
				sure, err := snake.Confirm(cmd, fmt.Sprintf("Delete %q", found.Heading()))
				if err != nil || !sure {
					return err
				}
			}

			r := remove.Remove{Journal: e.journal, ID: args[0], Out: cmd.OutOrStdout()}
			return r.Do(cmd.Context())
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every entry.",
		Example: `
eod export && eod clear --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if !co.Yes {
				sure, err := snake.Confirm(cmd, fmt.Sprintf("Delete all %d entries", e.journal.Len()))
				if err != nil || !sure {
					return err
				}
			}

			c := remove.Clear{Journal: e.journal, Out: cmd.OutOrStdout()}
			return c.Do(cmd.Context())
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
