package subscribe

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrEmptyEmail is returned when no address was entered.
	ErrEmptyEmail = errors.New("please enter an email address")

	// ErrInvalidEmail is returned when the address does not look like one.
	ErrInvalidEmail = errors.New("please enter a valid email address")
)

// ThanksMessage is shown after a successful subscription.
const ThanksMessage = "Thanks for subscribing! Your certificate will be sent to your inbox once the course is complete."

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail trims raw and checks it. It returns the trimmed address.
func ValidateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", ErrEmptyEmail
	}
	if !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// Completer marks every chapter complete in one write.
type Completer interface {
	MarkAllCompleted(ctx context.Context, chapterIDs []string)
}

// Service handles the subscribe form.
type Service struct {
	completer  Completer
	chapterIDs []string
	logger     *zap.Logger
}

// NewService creates a Service that completes chapterIDs on subscription.
func NewService(completer Completer, chapterIDs []string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{completer: completer, chapterIDs: chapterIDs, logger: logger}
}

// Subscribe validates email and, on success, marks the whole course
// complete. Nothing is sent anywhere.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	addr, err := ValidateEmail(email)
	if err != nil {
		return err
	}
	s.logger.Info("subscribed", zap.Int("chapters", len(s.chapterIDs)), zap.Int("email_len", len(addr)))
	if s.completer != nil {
		s.completer.MarkAllCompleted(ctx, s.chapterIDs)
	}
	return nil
}
