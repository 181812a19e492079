package clipboard

import (
	"errors"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
)

// Copier writes text to the system clipboard, falling back to an OSC 52
// escape sequence on the terminal when no clipboard utility is available.
type Copier struct {
	primary  func(string) error
	fallback func(string) error
}

// New creates a Copier whose fallback writes to term. A nil term disables
// the fallback.
func New(term io.Writer) *Copier {
	return &Copier{
		primary: func(s string) error {
			if clipboard.Unsupported {
				return errors.New("system clipboard unsupported")
			}
			return clipboard.WriteAll(s)
		},
		fallback: func(s string) error {
			if term == nil {
				return errors.New("no terminal for OSC 52")
			}
			_, err := io.WriteString(term, ansi.SetSystemClipboard(s))
			return err
		},
	}
}

// Copy writes text and reports whether either path succeeded.
func (c *Copier) Copy(text string) bool {
	if c.primary != nil && c.primary(text) == nil {
		return true
	}
	if c.fallback != nil && c.fallback(text) == nil {
		return true
	}
	return false
}
