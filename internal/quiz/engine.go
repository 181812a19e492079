package quiz

import (
	"context"

	"go.uber.org/zap"
)

// ProgressMarker receives chapter completions from correct answers.
type ProgressMarker interface {
	MarkCompleted(ctx context.Context, chapterID string)
}

// Engine evaluates attempts against a static bank and records completions.
type Engine struct {
	bank   Bank
	marker ProgressMarker
	logger *zap.Logger
}

// NewEngine creates an Engine. marker may be nil to evaluate without
// recording progress.
func NewEngine(bank Bank, marker ProgressMarker, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{bank: bank, marker: marker, logger: logger}
}

// Bank returns the engine's quiz bank.
func (e *Engine) Bank() Bank {
	return e.bank
}

// Has reports whether a quiz exists for quizID.
func (e *Engine) Has(quizID string) bool {
	_, ok := e.bank.Lookup(quizID)
	return ok
}

// Start opens a new attempt. It returns false when the bank has no
// definition for quizID; callers skip the quiz in that case.
func (e *Engine) Start(quizID string) (Attempt, bool) {
	def, ok := e.bank.Lookup(quizID)
	if !ok {
		e.logger.Debug("no quiz definition, skipping", zap.String("quiz", quizID))
		return Attempt{}, false
	}
	return NewAttempt(quizID, def), true
}

// Select applies a selection to a.
func (e *Engine) Select(a Attempt, index int) Attempt {
	next, _ := Reduce(a, SelectEvent{Index: index})
	return next
}

// Submit evaluates a. A correct answer marks the quiz's chapter complete.
// Validation failures return the unchanged attempt and the error.
func (e *Engine) Submit(ctx context.Context, a Attempt) (Attempt, error) {
	next, err := Reduce(a, SubmitEvent{})
	if err != nil {
		return a, err
	}

	e.logger.Info("quiz submitted",
		zap.String("quiz", next.QuizID),
		zap.Int("selected", next.Selected),
		zap.Bool("correct", next.Correct()))

	if next.Correct() && e.marker != nil {
		e.marker.MarkCompleted(ctx, next.QuizID)
	}
	return next, nil
}
