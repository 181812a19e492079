package chat

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Role identifies who sent a message.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Message is one chat bubble.
type Message struct {
	Role Role
	Text string
}

// Welcome is the assistant's opening line.
const Welcome = "Hi! I'm the course assistant. Chat with me to get a feel for how large models respond, " +
	"or browse the chapters to learn more!"

// Replies holds the canned reply pools.
type Replies struct {
	Greeting []string
	Weather  []string
	Default  []string
}

// DefaultReplies returns the built-in reply pools.
func DefaultReplies() Replies {
	return Replies{
		Greeting: []string{
			"Hello! I'm your AI assistant and happy to help. What can I do for you?",
			"Hi there! What question can I help you with?",
			"Hello! I'm your AI assistant, ask me anything.",
		},
		Weather: []string{
			"For weather questions a real model would use function calling to fetch live data. " +
				"That's exactly the FC technique covered in the course!",
			"Good question! A deployed assistant would call a weather API for live data. " +
				"That's the function calling chapter in action.",
		},
		Default: []string{
			"Interesting question! In practice you can tune the prompt to get a more precise answer.",
			"Thanks for asking! Good prompt engineering is one of the key skills for working with large models.",
			"That's worth thinking about. The matching deep-dive page has more on this.",
			"Great question! Retrieval-augmented generation (RAG) can make answers more accurate and targeted.",
		},
	}
}

var (
	greetingKeywords = []string{"你好", "hi", "hello"}
	weatherKeywords  = []string{"天气", "气温", "weather", "temperature"}
)

// Responder picks scripted replies by keyword. It performs no inference.
type Responder struct {
	replies Replies
	rng     *rand.Rand
	fold    cases.Caser
}

// NewResponder creates a Responder. A nil rng uses a randomly seeded source.
func NewResponder(replies Replies, rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Responder{replies: replies, rng: rng, fold: cases.Fold()}
}

// Reply returns a canned reply for msg. Greeting keywords are checked
// before weather keywords; anything else gets a default reply.
func (r *Responder) Reply(msg string) string {
	text := r.normalize(msg)

	switch {
	case containsAny(text, greetingKeywords):
		return r.pick(r.replies.Greeting)
	case containsAny(text, weatherKeywords):
		return r.pick(r.replies.Weather)
	default:
		return r.pick(r.replies.Default)
	}
}

// normalize folds case and compatibility forms so full-width input matches.
func (r *Responder) normalize(s string) string {
	return r.fold.String(norm.NFKC.String(s))
}

func (r *Responder) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[r.rng.IntN(len(pool))]
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// Conversation is the transcript of a chat demo.
type Conversation struct {
	Messages []Message
}

// Send appends a trimmed user message. Blank input is ignored and
// reports false.
func (c *Conversation) Send(text string) (Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, false
	}
	m := Message{Role: RoleUser, Text: text}
	c.Messages = append(c.Messages, m)
	return m, true
}

// Receive appends an assistant message.
func (c *Conversation) Receive(text string) Message {
	m := Message{Role: RoleAI, Text: text}
	c.Messages = append(c.Messages, m)
	return m
}
