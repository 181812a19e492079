package quiz

import "errors"

var (
	// ErrNoSelection is returned when submitting without a chosen option.
	ErrNoSelection = errors.New("please select an answer first")

	// ErrAlreadySubmitted is returned when submitting a finished attempt.
	ErrAlreadySubmitted = errors.New("quiz already submitted")
)

// Definition is a static single-answer question.
type Definition struct {
	Question    string
	Options     []string
	Correct     int
	Explanation string
}

// CorrectAnswer returns the text of the correct option.
func (d Definition) CorrectAnswer() string {
	if d.Correct < 0 || d.Correct >= len(d.Options) {
		return ""
	}
	return d.Options[d.Correct]
}

// Bank maps chapter identifiers to quiz definitions.
type Bank map[string]Definition

// Lookup returns the definition for quizID.
func (b Bank) Lookup(quizID string) (Definition, bool) {
	d, ok := b[quizID]
	return d, ok
}

// Phase is the attempt lifecycle position.
type Phase int

const (
	PhaseUnanswered Phase = iota // Nothing chosen yet
	PhaseSelected                // An option is chosen, not submitted
	PhaseSubmitted               // Terminal; Outcome is set
)

func (p Phase) String() string {
	switch p {
	case PhaseUnanswered:
		return "unanswered"
	case PhaseSelected:
		return "selected"
	case PhaseSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Outcome is the evaluation result of a submitted attempt.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

// Mark is the feedback styling for one option.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkIncorrect
)
