package options

import (
	"github.com/spf13/cobra"
)

// ConfirmOptions
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVar(&o.Yes, "yes", false,
		"Skip the confirmation prompt.")
}
