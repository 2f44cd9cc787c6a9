package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"tableflip.dev/eod/pkg/store"
)

// Theme is the color scheme preference.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// ParseTheme accepts "dark" or "light" in any case.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return "", fmt.Errorf("session: unknown theme %q, want dark or light", s)
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon is the glyph shown next to the theme toggle.
func (t Theme) Icon() string {
	if t == Dark {
		return "☾"
	}
	return "☼"
}

// Themes resolves and persists the theme preference.
type Themes struct {
	backend store.Backend
	// DarkSignal reports whether the environment prefers a dark scheme.
	DarkSignal func() bool
}

// NewThemes uses the terminal's background color as the dark signal.
func NewThemes(backend store.Backend) *Themes {
	return &Themes{backend: backend, DarkSignal: termenv.HasDarkBackground}
}

// Current returns the stored preference, else dark when the environment
// prefers it, else light. Unreadable or unknown stored values are ignored.
func (t *Themes) Current(ctx context.Context) Theme {
	if raw, err := t.backend.Read(ctx, store.ThemeKey); err == nil {
		if theme, err := ParseTheme(string(raw)); err == nil {
			return theme
		}
	}
	if t.DarkSignal != nil && t.DarkSignal() {
		return Dark
	}
	return Light
}

// Set persists theme.
func (t *Themes) Set(ctx context.Context, theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	if err := t.backend.Write(ctx, store.ThemeKey, []byte(theme)); err != nil {
		return fmt.Errorf("session: persist theme: %w", err)
	}
	return nil
}

// Toggle flips the current theme, persists and returns it.
func (t *Themes) Toggle(ctx context.Context) (Theme, error) {
	next := t.Current(ctx).Other()
	if err := t.Set(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
