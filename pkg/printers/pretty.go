package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/eod/pkg/entry"
	"tableflip.dev/eod/pkg/format"
	"tableflip.dev/eod/pkg/session"
)

// EmptyHint is printed in place of an empty list.
const EmptyHint = `No entries yet. Create your first EOD with "eod new".`

type PrettyPrint struct {
	Out    io.Writer
	Theme  session.Theme
	ShowID bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// accent is the highlight color for the active theme.
func (pp *PrettyPrint) accent() *color.Color {
	if pp.Theme == session.Dark {
		return color.New(color.FgHiCyan)
	}
	return color.New(color.FgBlue)
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

const excerptWidth = 40

// Entries prints one row per entry, newest first as given.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintf(pp.out(), "%s\n\n", EmptyHint)
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	a := pp.accent()

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	f := color.New(color.Faint)
	for _, e := range entries {
		date := a.Sprint(format.DisplayDate(e.Date))
		excerpt := f.Sprint(Excerpt(e.Details))
		if pp.ShowID {
			table.AddRow(y.Sprint(e.ID), date, e.Heading(), excerpt)
		} else {
			table.AddRow(date, e.Heading(), excerpt)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), table.String())
	pp.NewLine()
}

// Excerpt is the first non-blank line of details, cut to fit a table cell.
func Excerpt(details string) string {
	for _, line := range strings.Split(details, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return truncate.StringWithTail(line, excerptWidth, "…")
		}
	}
	return ""
}

// Entry prints a single entry as a card.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	pp.Title(e.Heading())
	f := color.New(color.Faint)
	_, _ = pp.accent().Fprintln(pp.out(), format.DisplayDate(e.Date))
	if pp.ShowID {
		_, _ = f.Fprintf(pp.out(), "id: %s\n", e.ID)
	}
	if t := e.LastTouched(); !t.IsZero() {
		_, _ = f.Fprintf(pp.out(), "saved %s\n", t.Local().Format("Jan 2 15:04"))
	}
	pp.NewLine()
	_, _ = fmt.Fprintln(pp.out(), e.Content)
	pp.NewLine()
}

// Preview frames rendered text with a rule above and below.
func (pp *PrettyPrint) Preview(text string) {
	rule := color.New(color.Faint).Sprint(strings.Repeat("─", 40))
	_, _ = fmt.Fprintln(pp.out(), rule)
	_, _ = fmt.Fprintln(pp.out(), text)
	_, _ = fmt.Fprintln(pp.out(), rule)
}
