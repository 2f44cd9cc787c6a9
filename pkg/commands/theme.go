package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/eod/pkg/runner/theme"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme [dark|light|toggle]",
		Short: "Show or set the color theme.",
		Example: `
eod theme
eod theme toggle
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", theme.Toggle},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			t := theme.Theme{Themes: e.themes, Out: cmd.OutOrStdout()}
			if len(args) == 1 {
				t.Arg = args[0]
			}
			return t.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
