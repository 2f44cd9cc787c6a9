// Package format composes the canonical end-of-day text from entry fields.
//
// Everything here is pure: the same fields and the same notion of "today"
// always produce the same text, so the live preview, the saved content and
// the clipboard copy never disagree.
package format

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultName is shown when no author name was given.
	DefaultName = "Your Name"
	// DefaultTitle is the heading used when the title is left empty.
	DefaultTitle = "Today's Tasks & Progress"
	// PlaceholderDetails fills the body of a preview that has no details yet.
	PlaceholderDetails = "1. ..."
	// UnknownDate is displayed for an empty date string.
	UnknownDate = "Unknown date"
	// DateLayout is the canonical ISO calendar date.
	DateLayout = "2006-01-02"

	displayLayout = "January 02, 2006"
	headerPrefix  = "EOD"
)

// Template is the starter body offered when the details are still empty.
var Template = strings.Join([]string{
	"1. Task Category One",
	"\t- Point one",
	"\t- Point two",
	"",
	"2. Task Category Two",
	"\t- Point one",
	"\t- Point two",
}, "\n")

// Fields are the raw values a user typed into the entry form.
type Fields struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

// Today renders the local calendar date of now in DateLayout.
func Today(now time.Time) string {
	return now.Local().Format(DateLayout)
}

// Resolve trims every field and substitutes the defaults for name, date and
// title. Details are trimmed but never defaulted.
func Resolve(f Fields, today time.Time) Fields {
	r := Fields{
		Name:    strings.TrimSpace(f.Name),
		Date:    strings.TrimSpace(f.Date),
		Title:   strings.TrimSpace(f.Title),
		Details: strings.TrimSpace(f.Details),
	}
	if r.Name == "" {
		r.Name = DefaultName
	}
	if r.Date == "" {
		r.Date = Today(today)
	}
	if r.Title == "" {
		r.Title = DefaultTitle
	}
	return r
}

// DisplayDate turns a YYYY-MM-DD string into "<Month> <DD>, <YYYY>". A string
// that does not parse is returned verbatim, and an empty one as UnknownDate.
func DisplayDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return UnknownDate
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return d.Format(displayLayout)
}

// Header is the first line of the rendering: "EOD | <date> | <name>".
func Header(date, name string) string {
	return fmt.Sprintf("%s | %s | %s", headerPrefix, DisplayDate(date), name)
}

// Render is the canonical rendering stored as an entry's content.
func Render(f Fields, today time.Time) string {
	r := Resolve(f, today)
	return compose(r)
}

// Preview renders like Render but shows PlaceholderDetails for an empty body.
func Preview(f Fields, today time.Time) string {
	r := Resolve(f, today)
	if r.Details == "" {
		r.Details = PlaceholderDetails
	}
	return compose(r)
}

// ApplyTemplate returns Template when details are blank. The bool reports
// whether the template was used.
func ApplyTemplate(details string) (string, bool) {
	if strings.TrimSpace(details) != "" {
		return details, false
	}
	return Template, true
}

func compose(r Fields) string {
	var b strings.Builder
	b.WriteString(Header(r.Date, r.Name))
	b.WriteString("\n\n")
	b.WriteString(r.Title)
	b.WriteString("\n\n")
	b.WriteString(r.Details)
	return b.String()
}
