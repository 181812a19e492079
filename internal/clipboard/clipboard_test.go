package clipboard

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCopyPrimarySucceeds(t *testing.T) {
	var got string
	fallbackUsed := false
	c := &Copier{
		primary:  func(s string) error { got = s; return nil },
		fallback: func(string) error { fallbackUsed = true; return nil },
	}

	if !c.Copy("hello") {
		t.Fatal("expected success")
	}
	if got != "hello" {
		t.Errorf("primary got %q", got)
	}
	if fallbackUsed {
		t.Error("fallback should not run when primary succeeds")
	}
}

func TestCopyFallsBack(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	c.primary = func(string) error { return errors.New("no xclip") }

	if !c.Copy("prompt text") {
		t.Fatal("expected fallback success")
	}
	// OSC 52 sequence targeting the system clipboard.
	if !strings.HasPrefix(buf.String(), "\x1b]52;c;") {
		t.Errorf("unexpected fallback output %q", buf.String())
	}
}

func TestCopyBothFail(t *testing.T) {
	c := New(nil)
	c.primary = func(string) error { return errors.New("no xclip") }

	if c.Copy("x") {
		t.Error("expected failure when both paths fail")
	}
}
