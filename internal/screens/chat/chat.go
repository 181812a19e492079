package chat

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	chatbot "github.com/abhisek/genai-course/internal/chat"
	"github.com/abhisek/genai-course/internal/screen"
	"github.com/abhisek/genai-course/internal/ui/components"
	"github.com/abhisek/genai-course/internal/ui/layout"
	"github.com/abhisek/genai-course/internal/ui/theme"
)

type welcomeMsg struct{}

type replyMsg struct {
	to string
}

// ChatScreen is the scripted chat demo.
type ChatScreen struct {
	responder    *chatbot.Responder
	conv         chatbot.Conversation
	input        components.TextInput
	replyDelay   time.Duration
	welcomeDelay time.Duration
	pending      int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the chat demo.
func New(responder *chatbot.Responder, replyDelay, welcomeDelay time.Duration) *ChatScreen {
	return &ChatScreen{
		responder:    responder,
		input:        components.NewTextInput("", "Type a message...", 500),
		replyDelay:   replyDelay,
		welcomeDelay: welcomeDelay,
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return tea.Batch(
		s.input.Focus(),
		tea.Tick(s.welcomeDelay, func(time.Time) tea.Msg { return welcomeMsg{} }),
	)
}

func (s *ChatScreen) Title() string {
	return "Chat Demo"
}

// Messages returns the transcript so far.
func (s *ChatScreen) Messages() []chatbot.Message {
	return s.conv.Messages
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case welcomeMsg:
		s.conv.Receive(chatbot.Welcome)
		return s, nil

	case replyMsg:
		s.conv.Receive(s.responder.Reply(msg.to))
		s.pending = max(s.pending-1, 0)
		return s, nil

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return s, s.send()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) send() tea.Cmd {
	m, ok := s.conv.Send(s.input.Value())
	if !ok {
		return nil
	}
	s.input.Reset()
	s.pending++
	return tea.Tick(s.replyDelay, func(time.Time) tea.Msg { return replyMsg{to: m.Text} })
}

func (s *ChatScreen) View(width, height int) string {
	bubbleWidth := max(width*2/3, 20)

	userStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Primary).
		Padding(0, 1).
		MaxWidth(bubbleWidth)
	aiStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.BgCard).
		Padding(0, 1).
		MaxWidth(bubbleWidth)

	var rows []string
	for _, m := range s.conv.Messages {
		if m.Role == chatbot.RoleUser {
			bubble := userStyle.Width(min(lipgloss.Width(m.Text)+2, bubbleWidth)).Render(m.Text)
			rows = append(rows, lipgloss.PlaceHorizontal(width-2, lipgloss.Right, bubble))
		} else {
			rows = append(rows, aiStyle.Width(min(lipgloss.Width(m.Text)+2, bubbleWidth)).Render(m.Text))
		}
		rows = append(rows, "")
	}
	if s.pending > 0 {
		rows = append(rows, theme.Hint.Render("assistant is typing..."))
	}

	s.input.SetWidth(width - 6)
	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width - 2).
		Render(s.input.View())

	// Keep the newest messages visible above the input.
	lines := strings.Split(strings.Join(rows, "\n"), "\n")
	avail := max(height-lipgloss.Height(inputBox), 0)
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	transcript := lipgloss.NewStyle().Height(avail).Render(strings.Join(lines, "\n"))

	return transcript + "\n" + inputBox
}
