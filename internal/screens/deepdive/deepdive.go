package deepdive

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genai-course/internal/content"
	"github.com/abhisek/genai-course/internal/screen"
	"github.com/abhisek/genai-course/internal/ui/layout"
	"github.com/abhisek/genai-course/internal/ui/theme"
)

// DeepDiveScreen shows a chapter's extended material.
type DeepDiveScreen struct {
	chapter  content.Chapter
	openQuiz func() tea.Cmd
	offset   int
}

var _ screen.Screen = (*DeepDiveScreen)(nil)
var _ screen.KeyHintProvider = (*DeepDiveScreen)(nil)

// New creates a deep-dive screen. openQuiz is nil when the chapter has no quiz.
func New(ch content.Chapter, openQuiz func() tea.Cmd) *DeepDiveScreen {
	return &DeepDiveScreen{chapter: ch, openQuiz: openQuiz}
}

func (s *DeepDiveScreen) Init() tea.Cmd {
	return nil
}

func (s *DeepDiveScreen) Title() string {
	return "Deep Dive · " + s.chapter.Title
}

func (s *DeepDiveScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Scroll"}}
	if s.openQuiz != nil {
		hints = append(hints, layout.KeyHint{Key: "Q", Description: "Quiz"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *DeepDiveScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	case "q":
		if s.openQuiz != nil {
			return s, s.openQuiz()
		}
	}
	return s, nil
}

func (s *DeepDiveScreen) View(width, height int) string {
	textWidth := min(width-4, 80)

	body := s.chapter.DeepDive
	if strings.TrimSpace(body) == "" {
		body = s.chapter.Body
	}

	doc := theme.Title.Render(s.chapter.Title) + "\n" +
		theme.Subtitle.Render(s.chapter.Summary) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth).Render(strings.TrimSpace(body))

	lines := strings.Split(doc, "\n")
	s.offset = min(s.offset, max(len(lines)-1, 0))
	end := min(s.offset+height, len(lines))

	return lipgloss.NewStyle().
		PaddingLeft(2).
		Render(strings.Join(lines[s.offset:end], "\n"))
}
