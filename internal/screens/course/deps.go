package course

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/genai-course/internal/catalog"
	chatbot "github.com/abhisek/genai-course/internal/chat"
	"github.com/abhisek/genai-course/internal/content"
	"github.com/abhisek/genai-course/internal/nav"
	"github.com/abhisek/genai-course/internal/progress"
	quizeng "github.com/abhisek/genai-course/internal/quiz"
	promptscreen "github.com/abhisek/genai-course/internal/screens/prompt"
	sub "github.com/abhisek/genai-course/internal/subscribe"
)

// Deps are the collaborators the course screen and its child screens use.
type Deps struct {
	Catalog   catalog.Catalog
	Content   *content.Content
	Progress  *progress.Store
	Quiz      *quizeng.Engine
	Marker    *nav.Marker
	Subscribe *sub.Service
	Responder *chatbot.Responder
	Copier    promptscreen.Copier
	Logger    *zap.Logger

	ReferenceLine int
	ReplyDelay    time.Duration
	WelcomeDelay  time.Duration
}
