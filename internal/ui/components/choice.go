package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genai-course/internal/ui/theme"
)

// Choice is a horizontal single-select field cycled with left and right.
type Choice struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewChoice creates a choice with the first option selected.
func NewChoice(label string, options []string) Choice {
	return Choice{Label: label, Options: options}
}

// Value returns the selected option, or "" when there are none.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// Update cycles the selection while focused.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !c.Focused || len(c.Options) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		c.Selected = (c.Selected - 1 + len(c.Options)) % len(c.Options)
	case "right", "l":
		c.Selected = (c.Selected + 1) % len(c.Options)
	}
	return c, nil
}

// View renders the label and options with the selection highlighted.
func (c Choice) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if c.Focused {
		labelStyle = theme.Selected
	}

	parts := make([]string, len(c.Options))
	for i, opt := range c.Options {
		if i == c.Selected {
			parts[i] = theme.Selected.Render("[" + opt + "]")
		} else {
			parts[i] = theme.Unselected.Render(" " + opt + " ")
		}
	}
	return labelStyle.Render(c.Label) + "\n" + strings.Join(parts, " ")
}
