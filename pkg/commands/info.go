package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/eod/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where entries are stored.",
		Example: `
eod info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			s := info.Info{
				Config:  e.cfg,
				Journal: e.journal,
				Theme:   e.theme(cmd.Context()),
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
