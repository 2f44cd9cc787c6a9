package theme

import (
	"bytes"
	"context"
	"testing"

	"tableflip.dev/eod/pkg/session"
	"tableflip.dev/eod/pkg/store"
)

func TestThemeCommands(t *testing.T) {
	ctx := context.Background()
	themes := session.NewThemes(store.NewMemory())
	themes.DarkSignal = func() bool { return false }

	run := func(arg string) string {
		var b bytes.Buffer
		th := Theme{Themes: themes, Arg: arg, Out: &b}
		if err := th.Do(ctx); err != nil {
			t.Fatalf("theme %q: %v", arg, err)
		}
		return b.String()
	}

	if got := run(""); got != "☼ light\n" {
		t.Fatalf("unexpected default %q", got)
	}
	if got := run("toggle"); got != "☾ dark\n" {
		t.Fatalf("unexpected toggle %q", got)
	}
	if got := run("Light"); got != "☼ light\n" {
		t.Fatalf("unexpected set %q", got)
	}
	if themes.Current(ctx) != session.Light {
		t.Fatalf("theme not persisted")
	}

	bad := Theme{Themes: themes, Arg: "blue", Out: &bytes.Buffer{}}
	if err := bad.Do(ctx); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}
