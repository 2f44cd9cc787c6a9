package theme

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/eod/pkg/session"
)

// Toggle is the argument that flips the current theme.
const Toggle = "toggle"

// Theme prints the theme, or sets it when Arg is dark, light or toggle.
type Theme struct {
	Themes *session.Themes
	Arg    string
	Out    io.Writer
}

func (t *Theme) Do(ctx context.Context) error {
	if t.Themes == nil {
		return errors.New("can not resolve theme, no storage")
	}
	out := t.Out
	if out == nil {
		out = color.Output
	}

	var (
		current session.Theme
		err     error
	)
	switch arg := strings.ToLower(strings.TrimSpace(t.Arg)); arg {
	case "":
		current = t.Themes.Current(ctx)
	case Toggle:
		current, err = t.Themes.Toggle(ctx)
	default:
		current, err = session.ParseTheme(arg)
		if err == nil {
			err = t.Themes.Set(ctx, current)
		}
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s %s\n", current.Icon(), current)
	return err
}
