package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genai-course/internal/screen"
)

// stubScreen records what it saw.
type stubScreen struct {
	title   string
	initRan bool
	msgs    []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.msgs = append(s.msgs, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "course"}
	r := New(s1)

	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopResumesUncoveredScreen(t *testing.T) {
	s1 := &stubScreen{title: "course"}
	r := New(s1)
	r.Push(&stubScreen{title: "deep dive"})

	cmd := r.Pop()
	if r.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", r.Depth())
	}
	if cmd == nil {
		t.Fatal("expected resume command after pop")
	}
	msg := cmd()
	if _, ok := msg.(ResumedMsg); !ok {
		t.Fatalf("expected ResumedMsg, got %T", msg)
	}

	r.Update(msg)
	if len(s1.msgs) != 1 {
		t.Fatalf("expected course screen to receive resume, got %d msgs", len(s1.msgs))
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "course"})

	if cmd := r.Pop(); cmd != nil {
		t.Error("expected nil command when popping the last screen")
	}
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestPopScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "course"})
	r.Update(PushScreenMsg{Screen: &stubScreen{title: "chat"}})
	r.Update(Pop())

	if r.Active().Title() != "course" {
		t.Errorf("expected active 'course', got %q", r.Active().Title())
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "course"})
	r.Push(&stubScreen{title: "quiz"})

	s3 := &stubScreen{title: "prompt"}
	r.Update(ReplaceScreenMsg{Screen: s3})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "prompt" {
		t.Errorf("expected active 'prompt', got %q", r.Active().Title())
	}
	if !s3.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}
