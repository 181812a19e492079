package course

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/genai-course/internal/nav"
	"github.com/abhisek/genai-course/internal/router"
	"github.com/abhisek/genai-course/internal/screen"
	chatscreen "github.com/abhisek/genai-course/internal/screens/chat"
	"github.com/abhisek/genai-course/internal/screens/deepdive"
	promptscreen "github.com/abhisek/genai-course/internal/screens/prompt"
	quizscreen "github.com/abhisek/genai-course/internal/screens/quiz"
	subscreen "github.com/abhisek/genai-course/internal/screens/subscribe"
	"github.com/abhisek/genai-course/internal/ui/components"
	"github.com/abhisek/genai-course/internal/ui/layout"
	"github.com/abhisek/genai-course/internal/ui/theme"
)

const (
	navWidth        = 34
	navWidthCompact = 26
)

type copyResultMsg struct {
	ok bool
}

type statusEndMsg struct {
	seq int
}

// CourseScreen is the scrolling course document with its side navigation.
type CourseScreen struct {
	deps      Deps
	presenter *nav.Presenter
	vis       nav.Visibility

	lines    []string
	spans    []nav.Section // document coordinates, Bottom exclusive
	offset   int
	width    int
	height   int
	dirty    bool
	pending  string
	notice   string
	status   string
	statusNo int
}

var _ screen.Screen = (*CourseScreen)(nil)
var _ screen.KeyHintProvider = (*CourseScreen)(nil)

// New creates the course screen. fragment names the chapter to open at,
// like a URL fragment; when empty the session's last chapter is used.
func New(deps Deps, fragment string) *CourseScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.ReferenceLine <= 0 {
		deps.ReferenceLine = nav.DefaultReferenceLine
	}

	s := &CourseScreen{
		deps:      deps,
		presenter: nav.NewPresenter(),
		dirty:     true,
	}

	if id, ok := deps.Marker.Restore(context.Background(), fragment); ok {
		if deps.Catalog.Has(id) {
			s.pending = id
		} else {
			deps.Logger.Debug("unknown start chapter, skipping", zap.String("chapter", id))
		}
	}
	return s
}

func (s *CourseScreen) Init() tea.Cmd {
	return nil
}

func (s *CourseScreen) Title() string {
	if ch, ok := s.deps.Catalog.Get(s.presenter.Active()); ok {
		return ch.Title
	}
	return "Course"
}

// Active returns the chapter currently in view.
func (s *CourseScreen) Active() string {
	return s.presenter.Active()
}

// NavShown reports whether the navigation panel is visible.
func (s *CourseScreen) NavShown() bool {
	return s.vis.Shown()
}

func (s *CourseScreen) KeyHints() []layout.KeyHint {
	if s.notice != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Dismiss"}}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "[ ]", Description: "Chapter"},
		{Key: "Enter", Description: "Deep dive"},
	}
	if s.deps.Quiz != nil && s.deps.Quiz.Has(s.presenter.Active()) {
		hints = append(hints, layout.KeyHint{Key: "Q", Description: "Quiz"})
	}
	return append(hints,
		layout.KeyHint{Key: "N", Description: "Nav"},
		layout.KeyHint{Key: "P/C/S", Description: "Prompt/Chat/Subscribe"},
		layout.KeyHint{Key: "Y", Description: "Copy link"},
	)
}

func (s *CourseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case router.ResumedMsg:
		s.dirty = true
		if id, ok := s.deps.Marker.Last(context.Background()); ok && s.deps.Catalog.Has(id) {
			s.pending = id
		}
		s.layout(s.width, s.height)
		return s, nil

	case copyResultMsg:
		if !msg.ok {
			s.notice = "Copy failed, please copy the link manually."
			return s, nil
		}
		s.status = "Copied!"
		s.statusNo++
		no := s.statusNo
		return s, tea.Tick(components.FlashDuration, func(time.Time) tea.Msg {
			return statusEndMsg{seq: no}
		})

	case statusEndMsg:
		if msg.seq == s.statusNo {
			s.status = ""
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *CourseScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.notice != "" {
		s.notice = ""
		return s, nil
	}

	page := max(s.viewportHeight()/2, 1)
	active := s.presenter.Active()

	switch msg.String() {
	case "up", "k":
		s.scrollBy(-1)
	case "down", "j":
		s.scrollBy(1)
	case "pgup", "ctrl+u":
		s.scrollBy(-page)
	case "pgdown", "ctrl+d", "space":
		s.scrollBy(page)
	case "home", "g":
		s.scrollBy(-len(s.lines))
	case "end", "G":
		s.scrollBy(len(s.lines))
	case "]", "tab":
		s.jumpRelative(1)
	case "[", "shift+tab":
		s.jumpRelative(-1)
	case "n":
		s.vis = s.vis.Toggle()
		s.dirty = true
		s.pending = active
		s.layout(s.width, s.height)
	case "enter":
		return s, s.openDeepDive(active)
	case "q":
		return s, s.openQuiz(active)
	case "p":
		return s, router.Push(promptscreen.New(s.deps.Copier))
	case "c":
		return s, router.Push(chatscreen.New(s.deps.Responder, s.deps.ReplyDelay, s.deps.WelcomeDelay))
	case "s":
		return s, router.Push(subscreen.New(s.deps.Subscribe))
	case "y":
		return s, s.copyLink(active)
	}
	return s, nil
}

// JumpTo scrolls chapterID to the reference line and records it as the
// session's last chapter.
func (s *CourseScreen) JumpTo(chapterID string) {
	if !s.scrollTo(chapterID) {
		return
	}
	s.deps.Marker.Save(context.Background(), chapterID)
}

func (s *CourseScreen) jumpRelative(delta int) {
	ids := s.deps.Catalog.IDs()
	if len(ids) == 0 {
		return
	}
	i := s.deps.Catalog.Index(s.presenter.Active())
	if i < 0 {
		i = 0
	} else {
		i = min(max(i+delta, 0), len(ids)-1)
	}
	s.JumpTo(ids[i])
}

func (s *CourseScreen) openDeepDive(chapterID string) tea.Cmd {
	if chapterID == "" {
		return nil
	}
	ctx := context.Background()
	s.deps.Progress.MarkCompleted(ctx, chapterID)
	s.deps.Marker.Save(ctx, chapterID)
	s.dirty = true

	ch, ok := s.deps.Content.Get(chapterID)
	if !ok {
		s.deps.Logger.Debug("no deep dive content, skipping", zap.String("chapter", chapterID))
		return nil
	}

	// The quiz takes the deep dive's place, so Esc returns to the course.
	var openQuiz func() tea.Cmd
	if s.deps.Quiz != nil && s.deps.Quiz.Has(chapterID) {
		openQuiz = func() tea.Cmd {
			if qs := s.quizScreen(chapterID); qs != nil {
				return router.Replace(qs)
			}
			return nil
		}
	}
	return router.Push(deepdive.New(ch, openQuiz))
}

func (s *CourseScreen) openQuiz(chapterID string) tea.Cmd {
	if qs := s.quizScreen(chapterID); qs != nil {
		return router.Push(qs)
	}
	return nil
}

func (s *CourseScreen) quizScreen(chapterID string) *quizscreen.QuizScreen {
	if s.deps.Quiz == nil {
		return nil
	}
	ch, _ := s.deps.Catalog.Get(chapterID)
	qs, ok := quizscreen.New(s.deps.Quiz, chapterID, ch.Title)
	if !ok {
		return nil
	}
	return qs
}

func (s *CourseScreen) copyLink(chapterID string) tea.Cmd {
	if chapterID == "" || s.deps.Copier == nil {
		return nil
	}
	link := "genai-course --chapter " + chapterID
	copier := s.deps.Copier
	return func() tea.Msg {
		return copyResultMsg{ok: copier.Copy(link)}
	}
}

func (s *CourseScreen) viewportHeight() int {
	return max(s.height-1, 1) // last row is the status line
}

func (s *CourseScreen) maxOffset() int {
	return max(len(s.lines)-1-s.deps.ReferenceLine, 0)
}

func (s *CourseScreen) scrollBy(delta int) {
	s.offset = min(max(s.offset+delta, 0), s.maxOffset())
	s.updateActive()
}

func (s *CourseScreen) scrollTo(chapterID string) bool {
	for _, sp := range s.spans {
		if sp.ID == chapterID {
			s.offset = min(max(sp.Top-s.deps.ReferenceLine, 0), s.maxOffset())
			s.updateActive()
			return true
		}
	}
	return false
}

// updateActive re-evaluates which section straddles the reference line.
func (s *CourseScreen) updateActive() {
	visible := make([]nav.Section, len(s.spans))
	for i, sp := range s.spans {
		visible[i] = nav.Section{ID: sp.ID, Top: sp.Top - s.offset, Bottom: sp.Bottom - s.offset}
	}
	id, _ := nav.ActiveSection(visible, s.deps.ReferenceLine)
	s.presenter.SetActive(id)
}

func (s *CourseScreen) navPanelWidth() int {
	if !s.vis.Shown() {
		return 0
	}
	if layout.IsCompactWidth(s.width) {
		return navWidthCompact
	}
	return navWidth
}

// layout rebuilds the document when the size or progress changed and
// applies any pending scroll target.
func (s *CourseScreen) layout(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width != s.width || height != s.height {
		s.width, s.height = width, height
		s.dirty = true
	}
	if s.dirty {
		s.lines, s.spans = s.buildDocument(max(s.width-s.navPanelWidth()-4, 20))
		s.offset = min(s.offset, s.maxOffset())
		s.dirty = false
		s.updateActive()
	}
	if s.pending != "" {
		s.scrollTo(s.pending)
		s.pending = ""
	}
}

func (s *CourseScreen) buildDocument(width int) ([]string, []nav.Section) {
	rec := s.deps.Progress.All(context.Background())
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width)
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width))

	var lines []string
	var spans []nav.Section
	for i, ch := range s.deps.Catalog.Chapters() {
		top := len(lines)

		heading := theme.Title.Render(fmt.Sprintf("%02d  %s", i+1, ch.Title))
		if rec[ch.ID] {
			heading += "  " + theme.Correct.Render("✓ Completed")
		}
		lines = append(lines, heading)

		text := "(content unavailable)"
		if c, ok := s.deps.Content.Get(ch.ID); ok {
			if c.Summary != "" {
				lines = append(lines, theme.Subtitle.Render(c.Summary))
			}
			text = strings.TrimSpace(c.Body)
		}
		lines = append(lines, "")
		lines = append(lines, strings.Split(body.Render(text), "\n")...)
		lines = append(lines, "", s.actionsLine(ch.ID), "", rule, "")

		spans = append(spans, nav.Section{ID: ch.ID, Top: top, Bottom: len(lines)})
	}
	return lines, spans
}

func (s *CourseScreen) actionsLine(chapterID string) string {
	parts := []string{theme.KeyCap.Render("Enter") + theme.Hint.Render(" deep dive")}
	if s.deps.Quiz != nil && s.deps.Quiz.Has(chapterID) {
		parts = append(parts, theme.KeyCap.Render("q")+theme.Hint.Render(" quiz"))
	}
	switch chapterID {
	case "ch05":
		parts = append(parts, theme.KeyCap.Render("p")+theme.Hint.Render(" prompt builder"))
	case "ch06":
		parts = append(parts, theme.KeyCap.Render("c")+theme.Hint.Render(" chat demo"))
	}
	return strings.Join(parts, theme.Hint.Render("  ·  "))
}

func (s *CourseScreen) View(width, height int) string {
	if s.notice != "" {
		return layout.RenderNotice(s.notice, width, height)
	}
	s.layout(width, height)

	vh := s.viewportHeight()
	end := min(s.offset+vh, len(s.lines))
	var doc string
	if s.offset < end {
		doc = strings.Join(s.lines[s.offset:end], "\n")
	}
	doc = lipgloss.NewStyle().
		PaddingLeft(2).
		Width(width - s.navPanelWidth()).
		Height(vh).
		MaxHeight(vh).
		Render(doc)

	main := doc
	if s.vis.Shown() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, s.renderNav(vh), doc)
	}
	return main + "\n" + s.renderStatus(width)
}

func (s *CourseScreen) renderNav(height int) string {
	w := s.navPanelWidth()
	v := s.presenter.Render(s.deps.Progress.All(context.Background()), s.deps.Catalog)

	rows := []string{
		theme.Title.Render("Contents"),
		components.NewProgressBar(v.Text, v.Percent, true, w-4).View(),
		"",
	}
	for _, e := range v.Entries {
		mark := "○"
		if e.Completed {
			mark = "✓"
		}
		label := truncate(fmt.Sprintf("%s %s", mark, e.Title), w-4)
		switch {
		case e.Active:
			rows = append(rows, theme.NavActive.Render(label))
		case e.Completed:
			rows = append(rows, theme.NavCompleted.Render(label))
		default:
			rows = append(rows, theme.Unselected.Render(label))
		}
	}

	return theme.Sidebar.
		Width(w).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(rows, "\n"))
}

func (s *CourseScreen) renderStatus(width int) string {
	text := ""
	if ch, ok := s.deps.Catalog.Get(s.presenter.Active()); ok {
		text = ch.ID + " · " + ch.Title
	}
	if !s.vis.Shown() {
		text += "   (n: show contents)"
	}
	left := theme.Hint.Render("  " + text)
	if s.status == "" {
		return left
	}
	right := theme.Correct.Render(s.status + "  ")
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > w {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// HasNotice reports whether a blocking notice is shown.
func (s *CourseScreen) HasNotice() bool {
	return s.notice != ""
}
