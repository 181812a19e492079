package components

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genai-course/internal/ui/theme"
)

// FlashDuration is how long a button shows its flash label.
const FlashDuration = 2 * time.Second

// FlashEndMsg restores a flashed button's label.
type FlashEndMsg struct {
	ID  string
	Seq int
}

// Button is a styled button. A flash temporarily swaps its label, as the
// copy button does with "Copied!".
type Button struct {
	ID      string
	Label   string
	Focused bool

	flash string
	seq   int
}

// NewButton creates a new button.
func NewButton(id, label string) Button {
	return Button{ID: id, Label: label}
}

// Flash shows label for FlashDuration and returns the timer command.
func (b *Button) Flash(label string) tea.Cmd {
	b.flash = label
	b.seq++
	id, seq := b.ID, b.seq
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return FlashEndMsg{ID: id, Seq: seq}
	})
}

// Flashing reports whether the flash label is showing.
func (b Button) Flashing() bool {
	return b.flash != ""
}

// Update clears the flash when its timer fires. Stale timers from an
// earlier flash are ignored.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if m, ok := msg.(FlashEndMsg); ok && m.ID == b.ID && m.Seq == b.seq {
		b.flash = ""
	}
	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.flash != "" {
		return theme.ButtonDone.Render(b.flash)
	}
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render("  " + b.Label)
}
