package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/genai-course/internal/progress"
	"github.com/abhisek/genai-course/internal/store"
)

// recordingMarker records MarkCompleted calls.
type recordingMarker struct {
	calls []string
}

func (r *recordingMarker) MarkCompleted(_ context.Context, id string) {
	r.calls = append(r.calls, id)
}

func testDef() Definition {
	return Definition{
		Question:    "Pick B",
		Options:     []string{"A", "B", "C", "D"},
		Correct:     1,
		Explanation: "B is right.",
	}
}

func TestSelectThenSubmitCorrect(t *testing.T) {
	m := &recordingMarker{}
	e := NewEngine(Bank{"ch05": testDef()}, m, nil)

	a, ok := e.Start("ch05")
	require.True(t, ok)
	a = e.Select(a, 1)

	a, err := e.Submit(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, PhaseSubmitted, a.Phase)
	assert.Equal(t, OutcomeCorrect, a.Outcome)
	assert.Equal(t, []string{"ch05"}, m.calls)
}

func TestSelectThenSubmitIncorrect(t *testing.T) {
	m := &recordingMarker{}
	e := NewEngine(Bank{"ch05": testDef()}, m, nil)

	a, _ := e.Start("ch05")
	a = e.Select(a, 0)

	a, err := e.Submit(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIncorrect, a.Outcome)
	assert.Empty(t, m.calls)

	fb, ok := a.Feedback()
	require.True(t, ok)
	assert.False(t, fb.Correct)
	assert.Equal(t, []Mark{MarkIncorrect, MarkCorrect, MarkNone, MarkNone}, fb.Marks)
	assert.Equal(t, "B", fb.CorrectAnswer)
	assert.Equal(t, "B is right.", fb.Explanation)
}

func TestFeedbackCorrectOnlyMarksAnswer(t *testing.T) {
	a := NewAttempt("q", testDef())
	a, _ = Reduce(a, SelectEvent{Index: 1})
	a, _ = Reduce(a, SubmitEvent{})

	fb, ok := a.Feedback()
	require.True(t, ok)
	assert.True(t, fb.Correct)
	assert.Equal(t, []Mark{MarkNone, MarkCorrect, MarkNone, MarkNone}, fb.Marks)
	assert.NotEmpty(t, fb.Explanation)
}

func TestFeedbackBeforeSubmit(t *testing.T) {
	a := NewAttempt("q", testDef())
	_, ok := a.Feedback()
	assert.False(t, ok)
}

func TestSubmitWithoutSelection(t *testing.T) {
	kv := store.NewMemoryKV()
	ps := progress.NewStore(kv)
	e := NewEngine(Bank{"ch05": testDef()}, ps, nil)

	a, _ := e.Start("ch05")
	next, err := e.Submit(context.Background(), a)

	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, a, next)
	assert.Equal(t, PhaseUnanswered, next.Phase)
	assert.Zero(t, kv.Len(), "no persistence write expected")
}

func TestReselectBeforeSubmit(t *testing.T) {
	a := NewAttempt("q", testDef())
	for _, i := range []int{0, 3, 2, 1} {
		a, _ = Reduce(a, SelectEvent{Index: i})
		assert.Equal(t, PhaseSelected, a.Phase)
		assert.Equal(t, i, a.Selected)
	}
}

func TestSelectOutOfRangeIgnored(t *testing.T) {
	a := NewAttempt("q", testDef())
	for _, i := range []int{-1, 4, 99} {
		next, err := Reduce(a, SelectEvent{Index: i})
		require.NoError(t, err)
		assert.Equal(t, a, next)
	}
}

func TestSubmittedIsTerminal(t *testing.T) {
	m := &recordingMarker{}
	e := NewEngine(Bank{"ch05": testDef()}, m, nil)
	ctx := context.Background()

	a, _ := e.Start("ch05")
	a = e.Select(a, 0)
	a, err := e.Submit(ctx, a)
	require.NoError(t, err)

	// Re-selecting after submission changes nothing.
	after := e.Select(a, 1)
	assert.Equal(t, a, after)

	again, err := e.Submit(ctx, after)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, OutcomeIncorrect, again.Outcome)
	assert.Empty(t, m.calls)
}

func TestStartMissingDefinition(t *testing.T) {
	e := NewEngine(DefaultBank(), nil, nil)
	_, ok := e.Start("ch01")
	assert.False(t, ok)
	assert.False(t, e.Has("ch01"))
	assert.True(t, e.Has("ch05"))
}

func TestCorrectAnswerPersistsProgress(t *testing.T) {
	ctx := context.Background()
	ps := progress.NewStore(store.NewMemoryKV())
	e := NewEngine(DefaultBank(), ps, nil)

	a, ok := e.Start("ch03")
	require.True(t, ok)
	a = e.Select(a, 1)
	_, err := e.Submit(ctx, a)
	require.NoError(t, err)

	assert.True(t, ps.IsCompleted(ctx, "ch03"))
	assert.Equal(t, 1, ps.CompletedCount(ctx))
}

func TestDefaultBankWellFormed(t *testing.T) {
	for id, d := range DefaultBank() {
		assert.NotEmpty(t, d.Question, id)
		assert.Len(t, d.Options, 4, id)
		assert.True(t, d.Correct >= 0 && d.Correct < len(d.Options), id)
		assert.NotEmpty(t, d.CorrectAnswer(), id)
		assert.NotEmpty(t, d.Explanation, id)
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "unanswered", PhaseUnanswered.String())
	assert.Equal(t, "selected", PhaseSelected.String())
	assert.Equal(t, "submitted", PhaseSubmitted.String())
}
