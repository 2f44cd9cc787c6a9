package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/eod/pkg/format"
)

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Fatalf("unexpected wrap %q", got)
	}
	if Wrap80("short") != "short" {
		t.Fatalf("short text should be unchanged")
	}
}

func TestApplyToOnlyChangedFlags(t *testing.T) {
	o := &EntryOptions{}
	cmd := &cobra.Command{Use: "edit", RunE: func(*cobra.Command, []string) error { return nil }}
	AddEntryArgs(cmd, o)
	cmd.SetArgs([]string{"--title", "Sprint", "--details", "-"})
	cmd.SetIn(strings.NewReader("1. Did X\n"))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	f := format.Fields{Name: "Alice", Date: "2024-03-05", Title: "Old", Details: "old"}
	if err := o.ApplyTo(cmd.Flags(), cmd.InOrStdin(), &f); err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := format.Fields{Name: "Alice", Date: "2024-03-05", Title: "Sprint", Details: "1. Did X"}
	if f != want {
		t.Fatalf("expected %+v, got %+v", want, f)
	}
}

func TestListWindow(t *testing.T) {
	o := ListOptions{}
	if d, err := o.Window(); err != nil || d != 0 {
		t.Fatalf("expected no window, got %v %v", d, err)
	}
	o.Since = "1w"
	if d, err := o.Window(); err != nil || d != 7*24*time.Hour {
		t.Fatalf("unexpected window %v %v", d, err)
	}
	o.Since = "soon"
	if _, err := o.Window(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestHandleErrorJSON(t *testing.T) {
	var b bytes.Buffer
	o := OutputOptions{JSON: true, Out: &b}
	if err := o.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("expected error to be swallowed, got %v", err)
	}
	if strings.TrimSpace(b.String()) != `{"error":"boom"}` {
		t.Fatalf("unexpected output %q", b.String())
	}

	plain := OutputOptions{}
	if err := plain.HandleError(errors.New("boom")); err == nil {
		t.Fatalf("expected error to pass through")
	}
}
