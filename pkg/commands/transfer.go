package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/eod/pkg/commands/options"
	"tableflip.dev/eod/pkg/runner/transfer"
)

func addExport(topLevel *cobra.Command) {
	to := &options.TransferOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all entries to a JSON file.",
		Example: `
eod export
eod export --out backup.json
eod export --out - | jq length
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			x := transfer.Export{
				Journal: e.journal,
				Path:    to.Out,
				Dir:     ".",
				Out:     cmd.OutOrStdout(),
			}
			return x.Do(cmd.Context())
		},
	}

	options.AddExportArgs(cmd, to)

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all entries with those in a JSON export.",
		Long: options.Wrap80("Replace all entries with those in a JSON export. " +
			`The file must hold a JSON array. Use "-" to read from stdin.`),
		Example: `
eod import eod-entries-2024-03-05T10-20-30-123Z.json
cat backup.json | eod import -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			x := transfer.Import{
				Journal: e.journal,
				Path:    args[0],
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
			}
			return x.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
