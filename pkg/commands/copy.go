package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/eod/pkg/commands/options"
	clipcopy "tableflip.dev/eod/pkg/runner/copy"
)

func addCopy(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	preview := false

	cmd := &cobra.Command{
		Use:   "copy [id]",
		Short: "Copy an entry, or a preview, to the clipboard.",
		Example: `
eod copy 0190a7c2-...
eod copy --preview --details "1. Still drafting"
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			if preview == (len(args) == 1) {
				return errors.New("give either an entry id or --preview")
			}
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			c := clipcopy.Copy{
				Journal: e.journal,
				Copier:  e.copier(),
				Out:     cmd.OutOrStdout(),
			}
			if preview {
				sess := e.session()
				if err := eo.ApplyTo(cmd.Flags(), cmd.InOrStdin(), &sess.Form); err != nil {
					return err
				}
				c.Text = sess.Preview(e.journal.Now())
			} else {
				c.ID = args[0]
			}
			return c.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&preview, "preview", "p", false,
		"Copy the rendered preview of the given fields instead of a saved entry.")
	options.AddEntryArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
