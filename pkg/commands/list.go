package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/eod/pkg/commands/options"
	"tableflip.dev/eod/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	lo := &options.ListOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved entries, newest first.",
		Example: `
eod list
eod list --since 1w --show-id
eod list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			oo.Out = cmd.OutOrStdout()
			window, err := lo.Window()
			if err != nil {
				return oo.HandleError(err)
			}
			e, err := openEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.Close()

			l := list.List{
				Journal: e.journal,
				Since:   window,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Check:   lo.Check,
				Theme:   e.theme(cmd.Context()),
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddListArgs(cmd, lo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one entry.",
		Example: `
eod show 0190a7c2-...
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			e, err := openEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.Close()

			s := list.Show{
				Journal: e.journal,
				ID:      args[0],
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Theme:   e.theme(cmd.Context()),
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
