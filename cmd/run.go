package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/genai-course/internal/app"
	"github.com/abhisek/genai-course/internal/chat"
	"github.com/abhisek/genai-course/internal/clipboard"
	"github.com/abhisek/genai-course/internal/nav"
	"github.com/abhisek/genai-course/internal/screens/course"
	"github.com/abhisek/genai-course/internal/store"
	"github.com/abhisek/genai-course/internal/subscribe"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeEnv(e)

	// Unknown chapters are skipped by the course screen.
	chapter, _ := cmd.Flags().GetString("chapter")

	// Session storage lives for the process only.
	session := store.NewMemoryKV()

	deps := course.Deps{
		Catalog:       e.catalog,
		Content:       e.content,
		Progress:      e.progress,
		Quiz:          e.quiz,
		Marker:        nav.NewMarker(session, e.logger),
		Subscribe:     subscribe.NewService(e.progress, e.catalog.IDs(), e.logger),
		Responder:     chat.NewResponder(chat.DefaultReplies(), nil),
		Copier:        clipboard.New(os.Stderr),
		Logger:        e.logger,
		ReferenceLine: e.cfg.Nav.ReferenceLine,
		ReplyDelay:    e.cfg.Chat.ReplyDelay,
		WelcomeDelay:  e.cfg.Chat.WelcomeDelay,
	}

	return app.Run(cmd.Context(), app.Options{Deps: deps, StartChapter: chapter})
}
