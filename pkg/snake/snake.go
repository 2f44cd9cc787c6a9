// Package snake holds the interactive prompts used by the eod commands.
package snake

import (
	"io"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . | green }}: ",
	Invalid: "{{ . | red }}: ",
	Success: "{{ . | bold }}: ",
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func run(cmd *cobra.Command, p promptui.Prompt) (string, error) {
	p.Templates = templates
	p.Stdin = io.NopCloser(cmd.InOrStdin())
	p.Stdout = nopCloser{cmd.OutOrStdout()}
	return p.Run()
}

// Confirm asks a yes/no question. An empty answer is no.
func Confirm(cmd *cobra.Command, label string) (bool, error) {
	result, err := run(cmd, promptui.Prompt{
		Label: label + " [y/N]",
		Validate: func(input string) error {
			if input == "" {
				return nil
			}
			_, err := ParseBool(input)
			return err
		},
	})
	if err != nil {
		return false, err
	}
	if result == "" {
		return false, nil
	}
	return ParseBool(result)
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
