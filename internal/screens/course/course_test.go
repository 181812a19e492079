package course

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/genai-course/internal/catalog"
	chatbot "github.com/abhisek/genai-course/internal/chat"
	"github.com/abhisek/genai-course/internal/content"
	"github.com/abhisek/genai-course/internal/nav"
	"github.com/abhisek/genai-course/internal/progress"
	quizeng "github.com/abhisek/genai-course/internal/quiz"
	"github.com/abhisek/genai-course/internal/router"
	"github.com/abhisek/genai-course/internal/screens/deepdive"
	quizscreen "github.com/abhisek/genai-course/internal/screens/quiz"
	"github.com/abhisek/genai-course/internal/store"
	sub "github.com/abhisek/genai-course/internal/subscribe"
)

type fakeCopier struct {
	text string
	ok   bool
}

func (f *fakeCopier) Copy(text string) bool {
	f.text = text
	return f.ok
}

type fixture struct {
	deps     Deps
	progress *progress.Store
	session  *store.MemoryKV
	copier   *fakeCopier
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	cat := catalog.Default()
	c, err := content.Default()
	require.NoError(t, err)

	ps := progress.NewStore(store.NewMemoryKV())
	session := store.NewMemoryKV()
	copier := &fakeCopier{ok: true}

	return fixture{
		deps: Deps{
			Catalog:       cat,
			Content:       c,
			Progress:      ps,
			Quiz:          quizeng.NewEngine(quizeng.DefaultBank(), ps, nil),
			Marker:        nav.NewMarker(session, nil),
			Subscribe:     sub.NewService(ps, cat.IDs(), nil),
			Responder:     chatbot.NewResponder(chatbot.DefaultReplies(), nil),
			Copier:        copier,
			ReferenceLine: nav.DefaultReferenceLine,
		},
		progress: ps,
		session:  session,
		copier:   copier,
	}
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func pushed(t *testing.T, cmd tea.Cmd) router.PushScreenMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	return msg
}

func lastChapter(t *testing.T, f fixture) string {
	t.Helper()
	id, _ := nav.NewMarker(f.session, nil).Last(context.Background())
	return id
}

func TestStartsAtFirstChapter(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "")
	s.View(120, 30)

	assert.Equal(t, "ch01", s.Active())
	assert.True(t, s.NavShown())
	assert.Equal(t, "Generative AI Overview", s.Title())
}

func TestFragmentScrollsToChapter(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "ch07")
	s.View(120, 30)

	assert.Equal(t, "ch07", s.Active())
}

func TestUnknownFragmentIgnored(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "ch99")
	s.View(120, 30)

	assert.Equal(t, "ch01", s.Active())
}

func TestSessionMarkerUsedWithoutFragment(t *testing.T) {
	f := newFixture(t)
	f.deps.Marker.Save(context.Background(), "ch04")

	s := New(f.deps, "")
	s.View(120, 30)
	assert.Equal(t, "ch04", s.Active())

	// An explicit fragment wins over the marker.
	s = New(f.deps, "ch09")
	s.View(120, 30)
	assert.Equal(t, "ch09", s.Active())
}

func TestNextChapterSavesMarker(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "")
	s.View(120, 30)

	s.Update(key("]"))
	assert.Equal(t, "ch02", s.Active())
	assert.Equal(t, "ch02", lastChapter(t, f))

	s.Update(key("["))
	s.Update(key("["))
	assert.Equal(t, "ch01", s.Active())
}

func TestBoundaryLastSectionWins(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "")
	s.View(120, 30)

	// Put ch03's top exactly on the reference line. ch02's bottom touches
	// the same row, and the later section must win.
	ch03 := s.spans[2]
	require.Equal(t, ch03.Top, s.spans[1].Bottom)
	s.scrollBy(ch03.Top - s.deps.ReferenceLine - s.offset)
	assert.Equal(t, "ch03", s.Active())

	s.scrollBy(-1)
	assert.Equal(t, "ch02", s.Active())
}

func TestScrollingUpdatesActive(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "")
	s.View(120, 30)

	seen := map[string]bool{}
	for range len(s.lines) {
		s.Update(key("down"))
		seen[s.Active()] = true
	}
	assert.Len(t, seen, catalog.ChapterCount)
	assert.Equal(t, "ch11", s.Active())
}

func TestDeepDiveMarksCompleteAndSavesMarker(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "ch02")
	s.View(120, 30)

	_, cmd := s.Update(key("enter"))
	msg := pushed(t, cmd)
	_, ok := msg.Screen.(*deepdive.DeepDiveScreen)
	assert.True(t, ok)

	ctx := context.Background()
	assert.True(t, f.progress.IsCompleted(ctx, "ch02"))
	assert.Equal(t, "ch02", lastChapter(t, f))

	view := s.View(120, 30)
	assert.Contains(t, view, "1/11")
}

func TestQuizOnlyWhereDefined(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "ch01")
	s.View(120, 30)

	_, cmd := s.Update(key("q"))
	assert.Nil(t, cmd, "ch01 has no quiz")

	s.JumpTo("ch05")
	_, cmd = s.Update(key("q"))
	msg := pushed(t, cmd)
	_, ok := msg.Screen.(*quizscreen.QuizScreen)
	assert.True(t, ok)
}

func TestDeepDiveQuizReplacesDeepDive(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "ch05")
	s.View(120, 30)

	_, cmd := s.Update(key("enter"))
	dd, ok := pushed(t, cmd).Screen.(*deepdive.DeepDiveScreen)
	require.True(t, ok)

	_, cmd = dd.Update(key("q"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	_, ok = msg.Screen.(*quizscreen.QuizScreen)
	assert.True(t, ok)
}

func TestNoQualifyingSectionClearsActive(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "")
	s.View(120, 30)
	require.Equal(t, "ch01", s.Active())

	s.spans = nil
	s.updateActive()
	assert.Equal(t, "", s.Active())
}

func TestResumeReturnsToLastChapter(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "")
	s.View(120, 30)

	f.deps.Marker.Save(context.Background(), "ch08")
	f.progress.MarkCompleted(context.Background(), "ch08")
	s.Update(router.ResumedMsg{})

	assert.Equal(t, "ch08", s.Active())
	assert.Contains(t, strings.Join(s.lines, "\n"), "✓ Completed")
}

func TestToggleNav(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "ch06")
	s.View(120, 30)
	assert.Contains(t, s.View(120, 30), "Contents")

	s.Update(key("n"))
	assert.False(t, s.NavShown())
	assert.NotContains(t, s.View(120, 30), "Contents")
	assert.Equal(t, "ch06", s.Active(), "toggling keeps the reader's place")

	s.Update(key("n"))
	assert.True(t, s.NavShown())
}

func TestCopyLink(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "ch03")
	s.View(120, 30)

	_, cmd := s.Update(key("y"))
	require.NotNil(t, cmd)
	res := cmd()
	assert.Equal(t, "genai-course --chapter ch03", f.copier.text)

	_, tick := s.Update(res)
	assert.NotNil(t, tick)
	assert.Contains(t, s.View(120, 30), "Copied!")

	s.Update(statusEndMsg{seq: 1})
	assert.NotContains(t, s.View(120, 30), "Copied!")
}

func TestCopyLinkFailureNotice(t *testing.T) {
	f := newFixture(t)
	f.copier.ok = false
	s := New(f.deps, "")
	s.View(120, 30)

	_, cmd := s.Update(key("y"))
	s.Update(cmd())
	assert.Contains(t, s.View(120, 30), "Copy failed")

	s.Update(key("x"))
	assert.NotContains(t, s.View(120, 30), "Copy failed")
}

func TestToolScreensPush(t *testing.T) {
	f := newFixture(t)
	s := New(f.deps, "")
	s.View(120, 30)

	for _, k := range []string{"p", "c", "s"} {
		_, cmd := s.Update(key(k))
		pushed(t, cmd)
	}
}
