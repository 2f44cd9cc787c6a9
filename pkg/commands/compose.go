package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/eod/pkg/commands/options"
	"tableflip.dev/eod/pkg/runner/compose"
)

func addCompose(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Write an entry in a full screen form with a live preview.",
		Example: `
eod compose
eod compose --edit 0190a7c2-...
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			c := compose.Compose{
				Journal: e.journal,
				Session: e.session(),
				Themes:  e.themes,
				Copier:  e.copier(),
				EditID:  io.ID,
				Theme:   e.theme(cmd.Context()),
			}
			return c.Do(cmd.Context())
		},
	}

	options.AddEditIDArgs(cmd, io)
	_ = cmd.RegisterFlagCompletionFunc("edit", entryCompletions)

	topLevel.AddCommand(cmd)
}
