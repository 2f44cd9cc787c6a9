package options

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/eod/pkg/format"
)

// EntryOptions are the entry form fields as flags.
type EntryOptions struct {
	Name     string
	Date     string
	Title    string
	Details  string
	Template bool
	Copy     bool
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		Wrap80("Author name. Defaults to the configured name."))
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Entry date, example: --date="2024-03-05". Defaults to today.`)
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		Wrap80(`Entry title. Defaults to "`+format.DefaultTitle+`".`))
	cmd.Flags().StringVarP(&o.Details, "details", "m", "",
		Wrap80(`Entry body. Use "-" to read it from stdin.`))
	cmd.Flags().BoolVar(&o.Template, "template", false,
		"Start blank details from the task template.")
}

func AddCopyArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().BoolVarP(&o.Copy, "copy", "y", false,
		"Copy the saved entry to the clipboard.")
}

// ApplyTo overwrites the fields in f whose flags were set. A details value of
// "-" is read from in.
func (o *EntryOptions) ApplyTo(flags *pflag.FlagSet, in io.Reader, f *format.Fields) error {
	if flags.Changed("name") {
		f.Name = o.Name
	}
	if flags.Changed("date") {
		f.Date = o.Date
	}
	if flags.Changed("title") {
		f.Title = o.Title
	}
	if flags.Changed("details") {
		f.Details = o.Details
		if o.Details == "-" {
			b, err := io.ReadAll(in)
			if err != nil {
				return err
			}
			f.Details = strings.TrimRight(string(b), "\n")
		}
	}
	return nil
}
