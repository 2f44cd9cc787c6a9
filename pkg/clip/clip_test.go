package clip

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestCopyTrims(t *testing.T) {
	var got string
	c := &Copier{Write: func(s string) error { got = s; return nil }, Logger: zerolog.Nop()}
	if !c.Copy("  EOD | March 05, 2024 | Alice\n") {
		t.Fatalf("expected copy to succeed")
	}
	if got != "EOD | March 05, 2024 | Alice" {
		t.Fatalf("unexpected clipboard text %q", got)
	}
}

func TestCopySkipsBlank(t *testing.T) {
	called := false
	c := &Copier{Write: func(string) error { called = true; return nil }, Logger: zerolog.Nop()}
	if c.Copy(" \n ") || called {
		t.Fatalf("blank text must not reach the clipboard")
	}
}

func TestCopyFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	c := &Copier{
		Write:  func(string) error { return errors.New("xclip missing") },
		Logger: zerolog.New(&buf),
	}
	if c.Copy("text") {
		t.Fatalf("expected copy to report failure")
	}
	if !strings.Contains(buf.String(), "xclip missing") {
		t.Fatalf("expected failure to be logged, got %q", buf.String())
	}
}
