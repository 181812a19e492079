package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/genai-course/internal/router"
	"github.com/abhisek/genai-course/internal/screen"
	"github.com/abhisek/genai-course/internal/screens/course"
	"github.com/abhisek/genai-course/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Deps         course.Deps
	StartChapter string // chapter to open at, like a URL fragment
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   course.Deps
	width  int
	height int
}

// newAppModel creates a new AppModel with the course screen at the bottom
// of the stack.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(course.New(opts.Deps, opts.StartChapter)),
		deps:   opts.Deps,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if screen.Blocked(m.router.Active()) {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer into one frame.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	total := m.deps.Catalog.Len()
	completed := 0
	if m.deps.Progress != nil {
		completed = m.deps.Progress.CompletedCount(context.Background())
	}
	header := layout.RenderHeader(title, completed, total, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	if m.router.Depth() > 1 && !hasKey(footerHints, "Esc") {
		footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func hasKey(hints []layout.KeyHint, key string) bool {
	for _, h := range hints {
		if h.Key == key {
			return true
		}
	}
	return false
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	if opts.Deps.Logger == nil {
		opts.Deps.Logger = zap.NewNop()
	}
	sessionID := uuid.NewString()
	opts.Deps.Logger = opts.Deps.Logger.With(zap.String("session_id", sessionID))
	opts.Deps.Logger.Info("session started", zap.String("start_chapter", opts.StartChapter))

	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		opts.Deps.Logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("run program: %w", err)
	}

	opts.Deps.Logger.Info("session ended")
	return nil
}
