package nav

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/genai-course/internal/store"
)

// LastChapterKey is the session storage key for the last viewed chapter.
const LastChapterKey = "lastChapter"

// Marker remembers the last viewed chapter for the current session so the
// reader can return to it.
type Marker struct {
	kv     store.KV
	logger *zap.Logger
}

// NewMarker creates a Marker over session storage.
func NewMarker(kv store.KV, logger *zap.Logger) *Marker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Marker{kv: kv, logger: logger}
}

// Save records chapterID as the last viewed chapter.
func (m *Marker) Save(ctx context.Context, chapterID string) {
	if m == nil || m.kv == nil {
		return
	}
	if err := m.kv.Set(ctx, LastChapterKey, chapterID); err != nil {
		m.logger.Warn("save scroll position failed", zap.Error(err))
	}
}

// Last returns the last viewed chapter, if any.
func (m *Marker) Last(ctx context.Context) (string, bool) {
	if m == nil || m.kv == nil {
		return "", false
	}
	v, ok, err := m.kv.Get(ctx, LastChapterKey)
	if err != nil {
		m.logger.Warn("read scroll position failed", zap.Error(err))
		return "", false
	}
	return v, ok && v != ""
}

// Restore picks the chapter to scroll to on load: the explicit fragment
// wins, then the session marker.
func (m *Marker) Restore(ctx context.Context, fragment string) (string, bool) {
	if fragment != "" {
		return fragment, true
	}
	return m.Last(ctx)
}
