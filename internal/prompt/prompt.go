package prompt

import (
	"errors"
	"strings"
)

// ErrEmptyTask is returned when the task description is blank.
var ErrEmptyTask = errors.New("please enter a task description")

// Defaults applied to empty optional fields.
const (
	DefaultRole   = "AI assistant"
	DefaultFormat = "text"
	DefaultTone   = "professional"
)

// Request holds the prompt builder fields. Only Task is required.
type Request struct {
	Role    string
	Task    string
	Context string
	Format  string
	Tone    string
}

// Build assembles a structured prompt from r. The context section is
// emitted only when Context has non-blank text.
func Build(r Request) (string, error) {
	if strings.TrimSpace(r.Task) == "" {
		return "", ErrEmptyTask
	}

	role := orDefault(r.Role, DefaultRole)
	format := orDefault(r.Format, DefaultFormat)
	tone := orDefault(r.Tone, DefaultTone)

	var b strings.Builder
	b.WriteString("# Role\nYou are a " + role + ".\n\n")
	if strings.TrimSpace(r.Context) != "" {
		b.WriteString("# Context\n" + r.Context + "\n\n")
	}
	b.WriteString("# Task\n" + r.Task + "\n\n")
	b.WriteString("# Output requirements\n")
	b.WriteString("- Format: " + format + "\n")
	b.WriteString("- Tone: " + tone + "\n")
	b.WriteString("- Make sure the answer is accurate, professional and easy to understand.")
	return b.String(), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
