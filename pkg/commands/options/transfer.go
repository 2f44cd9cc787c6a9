package options

import (
	"github.com/spf13/cobra"
)

// TransferOptions
type TransferOptions struct {
	Out string
}

func AddExportArgs(cmd *cobra.Command, o *TransferOptions) {
	cmd.Flags().StringVarP(&o.Out, "out", "o", "",
		Wrap80(`File to write. "-" writes to stdout. Defaults to a timestamped file in the current directory.`))
}
