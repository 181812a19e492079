package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genai-course/internal/ui/layout"
)

// Screen is one page of the course reader: the chapter view, a quiz, the
// prompt builder and so on.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// NoticeHolder is implemented by screens that can show a blocking notice.
// While a notice is up every key, Esc included, goes to the screen.
type NoticeHolder interface {
	HasNotice() bool
}

// Blocked reports whether s currently shows a blocking notice.
func Blocked(s Screen) bool {
	n, ok := s.(NoticeHolder)
	return ok && n.HasNotice()
}
