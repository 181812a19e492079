package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genai-course/internal/ui/theme"
)

// OptionMark decorates an option after evaluation.
type OptionMark int

const (
	MarkNone OptionMark = iota
	MarkCorrect
	MarkIncorrect
)

// MultiChoice renders a question with lettered options. It tracks only the
// cursor; selection and evaluation belong to the caller.
type MultiChoice struct {
	Question string
	Options  []string
	Cursor   int
	Selected int          // -1 when nothing is selected
	Marks    []OptionMark // nil before evaluation
	Locked   bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Selected: -1,
	}
}

// Update moves the cursor. Locked components ignore input.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	}

	return m, nil
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Locked {
			prefix = "▸ "
		}
		radio := "○"
		if i == m.Selected {
			radio = "●"
		}
		line := fmt.Sprintf("%s%s %c)  %s", prefix, radio, 'A'+rune(i), opt)

		var style lipgloss.Style
		switch {
		case i < len(m.Marks) && m.Marks[i] == MarkCorrect:
			style = theme.Correct
			line += "  ✓"
		case i < len(m.Marks) && m.Marks[i] == MarkIncorrect:
			style = theme.Incorrect
			line += "  ✗"
		case m.Locked:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		case i == m.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary)
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line) + "\n")
	}

	return b.String()
}
