package subscribe

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genai-course/internal/screen"
	sub "github.com/abhisek/genai-course/internal/subscribe"
	"github.com/abhisek/genai-course/internal/ui/components"
	"github.com/abhisek/genai-course/internal/ui/layout"
	"github.com/abhisek/genai-course/internal/ui/theme"
)

// SubscribeScreen collects an email address for the certificate.
type SubscribeScreen struct {
	service *sub.Service
	input   components.TextInput
	notice  string
	done    bool
}

var _ screen.Screen = (*SubscribeScreen)(nil)
var _ screen.KeyHintProvider = (*SubscribeScreen)(nil)

// New creates the subscribe form.
func New(service *sub.Service) *SubscribeScreen {
	return &SubscribeScreen{
		service: service,
		input:   components.NewTextInput("Email", "you@example.com", 254),
	}
}

func (s *SubscribeScreen) Init() tea.Cmd {
	return s.input.Focus()
}

func (s *SubscribeScreen) Title() string {
	return "Subscribe"
}

func (s *SubscribeScreen) KeyHints() []layout.KeyHint {
	if s.notice != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Dismiss"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Subscribe"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SubscribeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if s.notice != "" {
			s.notice = ""
			return s, nil
		}
		if kmsg.String() == "enter" {
			s.submit()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SubscribeScreen) submit() {
	err := s.service.Subscribe(context.Background(), s.input.Value())
	switch {
	case errors.Is(err, sub.ErrEmptyEmail):
		s.notice = "Please enter your email address."
	case errors.Is(err, sub.ErrInvalidEmail):
		s.notice = "Please enter a valid email address."
	case err == nil:
		s.input.Reset()
		s.done = true
		s.notice = sub.ThanksMessage
	}
}

func (s *SubscribeScreen) View(width, height int) string {
	if s.notice != "" {
		return layout.RenderNotice(s.notice, width, height)
	}

	cardWidth := min(width-4, 64)
	s.input.SetWidth(cardWidth - 10)

	intro := lipgloss.NewStyle().Width(cardWidth - 6).Foreground(theme.Text).
		Render("Subscribe to receive your course certificate. Subscribing marks every chapter as complete.")

	parts := []string{theme.Title.Render("Get your certificate"), "", intro, "", s.input.View()}
	if s.done {
		parts = append(parts, "", theme.Correct.Render("✓ Subscribed. All chapters are complete."))
	}

	card := theme.Card.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// HasNotice reports whether a blocking notice is shown.
func (s *SubscribeScreen) HasNotice() bool {
	return s.notice != ""
}
