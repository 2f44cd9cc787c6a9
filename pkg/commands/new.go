package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/eod/pkg/commands/options"
	"tableflip.dev/eod/pkg/format"
	"tableflip.dev/eod/pkg/journal"
	"tableflip.dev/eod/pkg/printers"
	"tableflip.dev/eod/pkg/runner/save"
	"tableflip.dev/eod/pkg/session"
	"tableflip.dev/eod/pkg/snake"
)

func addNew(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "new",
		Aliases: []string{"save"},
		Short:   "Save a new end of day entry.",
		Example: `
eod new --details "1. Shipped the release"
eod new --title "Sprint 12" --template
git log --oneline --since=midnight | eod new --details -
eod new -i
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			sess := e.session()
			if err := fillForm(cmd, sess, eo, i); err != nil {
				return err
			}
			return runSave(cmd, e, sess, eo)
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddCopyArgs(cmd, eo)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the fields of a saved entry.",
		Example: `
eod edit 0190a7c2-... --details "1. Fixed the typo"
eod edit 0190a7c2-... -i
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			sess := e.session()
			if !sess.BeginEdit(e.journal, args[0]) {
				return fmt.Errorf("%w: %s", journal.ErrUnknownEntry, args[0])
			}
			if err := fillForm(cmd, sess, eo, i); err != nil {
				return err
			}
			return runSave(cmd, e, sess, eo)
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddCopyArgs(cmd, eo)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

func addPreview(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render an entry without saving it.",
		Example: `
eod preview --title "Sprint 12"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			sess := e.session()
			if err := fillForm(cmd, sess, eo, &options.InteractiveOptions{}); err != nil {
				return err
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout(), Theme: e.theme(cmd.Context())}
			pp.Preview(sess.Preview(e.journal.Now()))
			return nil
		},
	}

	options.AddEntryArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

func addTemplate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print the starter details template.",
		Example: `
eod template > today.txt
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), format.Template)
			return err
		},
	}

	topLevel.AddCommand(cmd)
}

// fillForm applies flags, the template and interactive answers to the form,
// in that order.
func fillForm(cmd *cobra.Command, sess *session.Session, eo *options.EntryOptions, i *options.InteractiveOptions) error {
	if err := eo.ApplyTo(cmd.Flags(), cmd.InOrStdin(), &sess.Form); err != nil {
		return err
	}
	if eo.Template {
		sess.GenerateTemplate()
	}
	if !i.Interactive {
		return nil
	}
	f, err := snake.PromptFields(cmd, sess.Form)
	if err != nil {
		return err
	}
	sess.Form = f
	return nil
}

func runSave(cmd *cobra.Command, e *env, sess *session.Session, eo *options.EntryOptions) error {
	s := save.Save{
		Journal: e.journal,
		Session: sess,
		Theme:   e.theme(cmd.Context()),
		Out:     cmd.OutOrStdout(),
	}
	if eo.Copy {
		s.Copier = e.copier()
	}
	return s.Do(cmd.Context())
}
