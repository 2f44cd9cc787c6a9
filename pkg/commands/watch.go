package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/eod/pkg/commands/options"
	"tableflip.dev/eod/pkg/logging"
	"tableflip.dev/eod/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint the entry list whenever it changes.",
		Long:  options.Wrap80("Reprint the entry list whenever another eod process changes it. Needs the diskv backend."),
		Example: `
eod watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			w := watch.Watch{
				Backend: e.backend,
				Journal: e.journal,
				ShowID:  io.ShowID,
				Theme:   e.theme(cmd.Context()),
				Out:     cmd.OutOrStdout(),
				Logger:  logging.Component(e.log, "watch"),
			}
			return w.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
