package prompt

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	promptgen "github.com/abhisek/genai-course/internal/prompt"
	"github.com/abhisek/genai-course/internal/screen"
	"github.com/abhisek/genai-course/internal/ui/components"
	"github.com/abhisek/genai-course/internal/ui/layout"
	"github.com/abhisek/genai-course/internal/ui/theme"
)

// Copier writes text to the clipboard and reports success.
type Copier interface {
	Copy(text string) bool
}

// Form field order. Tab walks it top to bottom.
const (
	fieldRole = iota
	fieldTask
	fieldContext
	fieldFormat
	fieldTone
	fieldGenerate
	fieldCopy
	fieldCount
)

var (
	formatOptions = []string{promptgen.DefaultFormat, "list", "table", "markdown", "json"}
	toneOptions   = []string{promptgen.DefaultTone, "friendly", "concise", "humorous"}
)

type copyResultMsg struct {
	ok bool
}

// PromptScreen is the prompt builder form.
type PromptScreen struct {
	copier Copier

	role    components.TextInput
	task    components.TextInput
	context components.TextInput
	format  components.Choice
	tone    components.Choice
	gen     components.Button
	copy    components.Button

	focus  int
	output string
	notice string
}

var _ screen.Screen = (*PromptScreen)(nil)
var _ screen.KeyHintProvider = (*PromptScreen)(nil)

// New creates the prompt builder.
func New(copier Copier) *PromptScreen {
	s := &PromptScreen{
		copier:  copier,
		role:    components.NewTextInput("Role", promptgen.DefaultRole, 80),
		task:    components.NewTextInput("Task (required)", "What should the model do?", 400),
		context: components.NewTextInput("Context (optional)", "Background the model needs", 400),
		format:  components.NewChoice("Output format", formatOptions),
		tone:    components.NewChoice("Tone", toneOptions),
		gen:     components.NewButton("generate", "Generate prompt"),
		copy:    components.NewButton("copy", "Copy"),
	}
	return s
}

func (s *PromptScreen) Init() tea.Cmd {
	return s.setFocus(fieldRole)
}

func (s *PromptScreen) Title() string {
	return "Prompt Builder"
}

// Output returns the last generated prompt.
func (s *PromptScreen) Output() string {
	return s.output
}

func (s *PromptScreen) KeyHints() []layout.KeyHint {
	if s.notice != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Dismiss"}}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Confirm"},
	}
	if s.focus == fieldFormat || s.focus == fieldTone {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Change"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *PromptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case copyResultMsg:
		if !msg.ok {
			s.notice = "Copy failed, please copy the prompt manually."
			return s, nil
		}
		return s, s.copy.Flash("Copied!")

	case components.FlashEndMsg:
		s.copy, _ = s.copy.Update(msg)
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, s.updateFocused(msg)
}

func (s *PromptScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.notice != "" {
		s.notice = ""
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus - 1 + fieldCount) % fieldCount)
	case "enter":
		switch s.focus {
		case fieldGenerate:
			return s, s.generate()
		case fieldCopy:
			return s, s.copyOutput()
		default:
			return s, s.setFocus(s.focus + 1)
		}
	}

	return s, s.updateFocused(msg)
}

func (s *PromptScreen) generate() tea.Cmd {
	out, err := promptgen.Build(promptgen.Request{
		Role:    s.role.Value(),
		Task:    s.task.Value(),
		Context: s.context.Value(),
		Format:  s.format.Value(),
		Tone:    s.tone.Value(),
	})
	if err != nil {
		if errors.Is(err, promptgen.ErrEmptyTask) {
			s.notice = "Please enter a task description."
		}
		return nil
	}
	s.output = out
	return s.setFocus(fieldCopy)
}

func (s *PromptScreen) copyOutput() tea.Cmd {
	if s.output == "" || s.copier == nil {
		return nil
	}
	text, copier := s.output, s.copier
	return func() tea.Msg {
		return copyResultMsg{ok: copier.Copy(text)}
	}
}

func (s *PromptScreen) setFocus(f int) tea.Cmd {
	s.focus = f
	s.role.Blur()
	s.task.Blur()
	s.context.Blur()
	s.format.Focused = f == fieldFormat
	s.tone.Focused = f == fieldTone
	s.gen.Focused = f == fieldGenerate
	s.copy.Focused = f == fieldCopy

	switch f {
	case fieldRole:
		return s.role.Focus()
	case fieldTask:
		return s.task.Focus()
	case fieldContext:
		return s.context.Focus()
	}
	return nil
}

func (s *PromptScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldRole:
		s.role, cmd = s.role.Update(msg)
	case fieldTask:
		s.task, cmd = s.task.Update(msg)
	case fieldContext:
		s.context, cmd = s.context.Update(msg)
	case fieldFormat:
		s.format, cmd = s.format.Update(msg)
	case fieldTone:
		s.tone, cmd = s.tone.Update(msg)
	}
	return cmd
}

func (s *PromptScreen) View(width, height int) string {
	if s.notice != "" {
		return layout.RenderNotice(s.notice, width, height)
	}

	formWidth := min(width-6, 70)
	for _, ti := range []*components.TextInput{&s.role, &s.task, &s.context} {
		ti.SetWidth(formWidth - 4)
	}

	form := strings.Join([]string{
		s.role.View(),
		s.task.View(),
		s.context.View(),
		s.format.View(),
		s.tone.View(),
		"",
		s.gen.View() + "  " + s.copy.View(),
	}, "\n\n")

	if s.output != "" {
		preview := lipgloss.NewStyle().
			Foreground(theme.Text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Width(formWidth).
			Render(s.output)
		form += "\n\n" + preview
	}

	return lipgloss.NewStyle().PaddingLeft(2).MaxHeight(height).Render(form)
}

// HasNotice reports whether a blocking notice is shown.
func (s *PromptScreen) HasNotice() bool {
	return s.notice != ""
}
