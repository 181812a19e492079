package quiz

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	quizeng "github.com/abhisek/genai-course/internal/quiz"
	"github.com/abhisek/genai-course/internal/screen"
	"github.com/abhisek/genai-course/internal/ui/components"
	"github.com/abhisek/genai-course/internal/ui/layout"
	"github.com/abhisek/genai-course/internal/ui/theme"
)

// QuizScreen runs a single quiz attempt.
type QuizScreen struct {
	engine  *quizeng.Engine
	attempt quizeng.Attempt
	chapter string
	choice  components.MultiChoice
	notice  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New opens the quiz for chapterID. It returns false when the bank has no
// definition, in which case the caller shows nothing.
func New(engine *quizeng.Engine, chapterID, chapterTitle string) (*QuizScreen, bool) {
	a, ok := engine.Start(chapterID)
	if !ok {
		return nil, false
	}
	return &QuizScreen{
		engine:  engine,
		attempt: a,
		chapter: chapterTitle,
		choice:  components.NewMultiChoice(a.Def.Question, a.Def.Options),
	}, true
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz · " + s.chapter
}

// Attempt returns the current attempt state.
func (s *QuizScreen) Attempt() quizeng.Attempt {
	return s.attempt
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.notice != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Dismiss"}}
	}
	if s.attempt.Submitted() {
		return []layout.KeyHint{{Key: "Esc", Description: "Back to course"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Select"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.notice != "" {
		s.notice = ""
		return s, nil
	}
	if s.attempt.Submitted() {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "space", "x":
		s.selectOption(s.choice.Cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		s.selectOption(i)
		if i < len(s.choice.Options) {
			s.choice.Cursor = i
		}
	case "enter":
		s.submit()
	default:
		s.choice, _ = s.choice.Update(msg)
	}
	return s, nil
}

func (s *QuizScreen) selectOption(i int) {
	s.attempt = s.engine.Select(s.attempt, i)
	s.choice.Selected = s.attempt.Selected
}

func (s *QuizScreen) submit() {
	next, err := s.engine.Submit(context.Background(), s.attempt)
	if err != nil {
		if errors.Is(err, quizeng.ErrNoSelection) {
			s.notice = "Please select an answer first."
		}
		return
	}
	s.attempt = next

	fb, _ := next.Feedback()
	s.choice.Locked = true
	s.choice.Marks = make([]components.OptionMark, len(fb.Marks))
	for i, m := range fb.Marks {
		switch m {
		case quizeng.MarkCorrect:
			s.choice.Marks[i] = components.MarkCorrect
		case quizeng.MarkIncorrect:
			s.choice.Marks[i] = components.MarkIncorrect
		}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.notice != "" {
		return layout.RenderNotice(s.notice, width, height)
	}

	cardWidth := min(width-4, 76)
	sections := []string{s.choice.View()}

	if fb, ok := s.attempt.Feedback(); ok {
		var verdict string
		if fb.Correct {
			verdict = theme.Correct.Render("✓ Correct! This chapter is now marked complete.")
		} else {
			verdict = theme.Incorrect.Render("✗ Not quite. The correct answer is: " + fb.CorrectAnswer)
		}
		explanation := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cardWidth - 6).
			Render(fb.Explanation)
		sections = append(sections, verdict, explanation)
	}

	card := theme.Card.Width(cardWidth).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// HasNotice reports whether a blocking notice is shown.
func (s *QuizScreen) HasNotice() bool {
	return s.notice != ""
}
