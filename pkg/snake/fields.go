package snake

import (
	"errors"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/eod/pkg/format"
)

// PromptFields walks the user through each entry field, offering the values
// in f as defaults. Details are read line by line until an empty line; an
// immediately empty line keeps the details already in f.
func PromptFields(cmd *cobra.Command, f format.Fields) (format.Fields, error) {
	var err error
	if f.Name, err = run(cmd, promptui.Prompt{Label: "Name", Default: f.Name, AllowEdit: true}); err != nil {
		return f, err
	}
	if f.Date, err = run(cmd, promptui.Prompt{Label: "Date (YYYY-MM-DD)", Default: f.Date, AllowEdit: true, Validate: validateDate}); err != nil {
		return f, err
	}
	if f.Title, err = run(cmd, promptui.Prompt{Label: "Title", Default: f.Title, AllowEdit: true}); err != nil {
		return f, err
	}

	var lines []string
	for {
		label := "Details (empty line to finish)"
		if len(lines) > 0 {
			label = "..."
		}
		line, err := run(cmd, promptui.Prompt{Label: label, Validate: requireFirst(len(lines) == 0 && strings.TrimSpace(f.Details) == "")})
		if err != nil {
			return f, err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if len(lines) > 0 {
		f.Details = strings.Join(lines, "\n")
	}
	return f, nil
}

func validateDate(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if _, err := time.Parse(format.DateLayout, input); err != nil {
		return errors.New("expected YYYY-MM-DD")
	}
	return nil
}

func requireFirst(first bool) func(string) error {
	return func(input string) error {
		if first && strings.TrimSpace(input) == "" {
			return errors.New("details are required")
		}
		return nil
	}
}
