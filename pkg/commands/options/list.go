package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/eod/pkg/timeutil"
)

// ListOptions
type ListOptions struct {
	Since string
	Check bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVar(&o.Since, "since", "",
		Wrap80(`Only entries created within this window, example: --since=1w or --since=3d12h.`))
	cmd.Flags().BoolVar(&o.Check, "check", false,
		"Report entries whose content no longer matches their fields.")
}

// Window parses --since. Zero means no limit.
func (o *ListOptions) Window() (time.Duration, error) {
	if o.Since == "" {
		return 0, nil
	}
	d, _, err := timeutil.ParseWindow(o.Since)
	return d, err
}
