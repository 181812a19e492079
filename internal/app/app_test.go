package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genai-course/internal/catalog"
	"github.com/abhisek/genai-course/internal/content"
	"github.com/abhisek/genai-course/internal/nav"
	"github.com/abhisek/genai-course/internal/progress"
	quizeng "github.com/abhisek/genai-course/internal/quiz"
	"github.com/abhisek/genai-course/internal/screens/course"
	"github.com/abhisek/genai-course/internal/store"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	c, err := content.Default()
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	ps := progress.NewStore(store.NewMemoryKV())
	return newAppModel(Options{
		Deps: course.Deps{
			Catalog:  catalog.Default(),
			Content:  c,
			Progress: ps,
			Quiz:     quizeng.NewEngine(quizeng.DefaultBank(), ps, nil),
			Marker:   nav.NewMarker(store.NewMemoryKV(), nil),
		},
		StartChapter: "ch05",
	})
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestRenderBeforeSize(t *testing.T) {
	m := testModel(t)
	if got := m.render(); got != "" {
		t.Errorf("expected empty frame before size, got %q", got)
	}
}

func TestHeaderShowsProgress(t *testing.T) {
	m := testModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if !strings.Contains(m.render(), "0/11") {
		t.Error("expected progress count in header")
	}
}

func TestQuizFlowThroughRouter(t *testing.T) {
	m := testModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m.render()

	m, cmd := update(m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected quiz push")
	}
	m, _ = update(m, cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	m, _ = update(m, tea.KeyPressMsg{Code: '2', Text: "2"})
	m, _ = update(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(m.render(), "1/11") {
		t.Error("expected header to reflect completed quiz")
	}

	m, cmd = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m, cmd = update(m, cmd())
	if m.router.Depth() != 1 {
		t.Fatalf("depth = %d, want 1 after esc", m.router.Depth())
	}
	if cmd == nil {
		t.Fatal("expected resume command after pop")
	}
	m, _ = update(m, cmd())
	if !strings.Contains(m.render(), "Contents") {
		t.Error("expected course screen after returning")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestEscDismissesNoticeBeforePopping(t *testing.T) {
	m := testModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m.render()

	m, cmd := update(m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	m, _ = update(m, cmd())

	m, _ = update(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(m.render(), "Please select an answer first.") {
		t.Fatal("expected selection notice")
	}

	m, cmd = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on a notice should not pop")
	}
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if strings.Contains(m.render(), "Please select an answer first.") {
		t.Error("expected notice dismissed")
	}
}
