package progress

import (
	"context"
	"encoding/json"
	"math"

	"go.uber.org/zap"

	"github.com/abhisek/genai-course/internal/store"
)

// DefaultKey is the local storage key holding the progress record.
const DefaultKey = "genai_course_progress"

// Record maps chapter identifier to completion. Absent keys are not completed.
type Record map[string]bool

// Completed returns the number of true flags.
func (r Record) Completed() int {
	n := 0
	for _, done := range r {
		if done {
			n++
		}
	}
	return n
}

// Store owns the persisted completion record. Every query re-reads storage
// and every mutation writes the whole record back immediately.
//
// Storage failures never reach the caller: reads degrade to an empty
// record and writes are dropped, both with a warning.
type Store struct {
	kv     store.KV
	key    string
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used for storage warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates a Store over kv. A nil kv behaves as unavailable storage.
func NewStore(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		key:    DefaultKey,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// All returns the persisted record, or an empty one if storage is absent,
// corrupted or unavailable.
func (s *Store) All(ctx context.Context) Record {
	return toRecord(s.load(ctx))
}

// load reads the stored object as-is. Failures yield an empty object.
func (s *Store) load(ctx context.Context) map[string]any {
	if s.kv == nil {
		s.logger.Warn("read progress failed", zap.Error(store.ErrClosed))
		return map[string]any{}
	}

	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("read progress failed", zap.String("key", s.key), zap.Error(err))
		return map[string]any{}
	}
	if !ok {
		return map[string]any{}
	}

	var values map[string]any
	if err := json.Unmarshal([]byte(raw), &values); err != nil || values == nil {
		s.logger.Warn("progress record corrupted, using empty record",
			zap.String("key", s.key), zap.Error(err))
		return map[string]any{}
	}
	return values
}

// toRecord keeps only entries whose value is literally true.
func toRecord(values map[string]any) Record {
	rec := make(Record, len(values))
	for id, v := range values {
		if isTrue(v) {
			rec[id] = true
		}
	}
	return rec
}

func isTrue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// IsCompleted reports whether chapterID is marked complete.
func (s *Store) IsCompleted(ctx context.Context, chapterID string) bool {
	return s.All(ctx)[chapterID]
}

// MarkCompleted sets chapterID complete and persists the record.
// Marking an already-complete chapter writes nothing. Other stored
// entries, including non-boolean ones, are written back unchanged.
func (s *Store) MarkCompleted(ctx context.Context, chapterID string) {
	values := s.load(ctx)
	if isTrue(values[chapterID]) {
		return
	}
	values[chapterID] = true
	s.save(ctx, values)
}

// MarkAllCompleted sets every given chapter complete with a single write.
func (s *Store) MarkAllCompleted(ctx context.Context, chapterIDs []string) {
	values := s.load(ctx)
	changed := false
	for _, id := range chapterIDs {
		if !isTrue(values[id]) {
			values[id] = true
			changed = true
		}
	}
	if changed {
		s.save(ctx, values)
	}
}

// CompletedCount returns the number of completed chapters in the record.
func (s *Store) CompletedCount(ctx context.Context) int {
	return s.All(ctx).Completed()
}

// Percent returns the course completion percentage over total chapters.
func (s *Store) Percent(ctx context.Context, total int) int {
	return Percent(s.CompletedCount(ctx), total)
}

func (s *Store) save(ctx context.Context, values map[string]any) {
	if s.kv == nil {
		s.logger.Warn("save progress failed", zap.Error(store.ErrClosed))
		return
	}

	b, err := json.Marshal(values)
	if err != nil {
		s.logger.Warn("encode progress failed", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, s.key, string(b)); err != nil {
		s.logger.Warn("save progress failed", zap.String("key", s.key), zap.Error(err))
	}
}

// Percent returns round(completed/total*100) clamped to [0, 100].
// The record may hold identifiers outside the catalog, so completed can
// exceed total.
func Percent(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	p := int(math.Round(float64(completed) / float64(total) * 100))
	if p > 100 {
		return 100
	}
	return p
}
