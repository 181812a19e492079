package quiz

// Attempt is the in-memory state of one rendered quiz. It is a value:
// transitions return a new Attempt.
type Attempt struct {
	QuizID   string
	Def      Definition
	Phase    Phase
	Selected int // -1 when nothing is chosen
	Outcome  Outcome
}

// NewAttempt starts an unanswered attempt.
func NewAttempt(quizID string, def Definition) Attempt {
	return Attempt{
		QuizID:   quizID,
		Def:      def,
		Phase:    PhaseUnanswered,
		Selected: -1,
	}
}

// Event is a user action on a quiz.
type Event interface {
	isEvent()
}

// SelectEvent chooses the option at Index.
type SelectEvent struct {
	Index int
}

// SubmitEvent submits the current selection.
type SubmitEvent struct{}

func (SelectEvent) isEvent() {}
func (SubmitEvent) isEvent() {}

// Reduce applies ev to a and returns the next state. On error the
// returned state equals a.
func Reduce(a Attempt, ev Event) (Attempt, error) {
	switch ev := ev.(type) {
	case SelectEvent:
		return a.selectOption(ev.Index), nil
	case SubmitEvent:
		return a.submit()
	}
	return a, nil
}

func (a Attempt) selectOption(i int) Attempt {
	if a.Phase == PhaseSubmitted {
		return a
	}
	if i < 0 || i >= len(a.Def.Options) {
		return a
	}
	a.Selected = i
	a.Phase = PhaseSelected
	return a
}

func (a Attempt) submit() (Attempt, error) {
	switch a.Phase {
	case PhaseSubmitted:
		return a, ErrAlreadySubmitted
	case PhaseUnanswered:
		return a, ErrNoSelection
	}
	if a.Selected < 0 {
		return a, ErrNoSelection
	}

	a.Phase = PhaseSubmitted
	if a.Selected == a.Def.Correct {
		a.Outcome = OutcomeCorrect
	} else {
		a.Outcome = OutcomeIncorrect
	}
	return a, nil
}

// Submitted reports whether the attempt is finished.
func (a Attempt) Submitted() bool {
	return a.Phase == PhaseSubmitted
}

// Correct reports whether the attempt was submitted with the right answer.
func (a Attempt) Correct() bool {
	return a.Outcome == OutcomeCorrect
}

// Feedback is what the quiz reveals after submission.
type Feedback struct {
	Correct       bool
	Marks         []Mark
	CorrectAnswer string
	Explanation   string
}

// Feedback returns the post-submit reveal. The correct option is always
// marked; on a wrong answer the chosen option is marked incorrect too.
// Before submission it returns false.
func (a Attempt) Feedback() (Feedback, bool) {
	if a.Phase != PhaseSubmitted {
		return Feedback{}, false
	}

	marks := make([]Mark, len(a.Def.Options))
	for i := range marks {
		switch {
		case i == a.Def.Correct:
			marks[i] = MarkCorrect
		case a.Outcome == OutcomeIncorrect && i == a.Selected:
			marks[i] = MarkIncorrect
		}
	}

	return Feedback{
		Correct:       a.Outcome == OutcomeCorrect,
		Marks:         marks,
		CorrectAnswer: a.Def.CorrectAnswer(),
		Explanation:   a.Def.Explanation,
	}, true
}
