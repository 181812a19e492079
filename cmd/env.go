package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/genai-course/internal/catalog"
	"github.com/abhisek/genai-course/internal/config"
	"github.com/abhisek/genai-course/internal/content"
	"github.com/abhisek/genai-course/internal/logger"
	"github.com/abhisek/genai-course/internal/progress"
	"github.com/abhisek/genai-course/internal/quiz"
	"github.com/abhisek/genai-course/internal/store"
)

// env holds everything a command needs after start-up.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	kv       store.KV
	closer   io.Closer
	catalog  catalog.Catalog
	content  *content.Content
	progress *progress.Store
	quiz     *quiz.Engine
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setup loads config, opens the log file and the progress backend.
// Callers must Close the returned env.
func setup(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if b, _ := cmd.Flags().GetString("backend"); b != "" {
		cfg.Storage.Backend = b
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.Storage.Path = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	cat := catalog.Default()
	c, err := content.Load(cfg.Content.Path)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if err := c.Check(cat); err != nil {
		return nil, fmt.Errorf("check content: %w", err)
	}

	opts := cfg.StoreOptions()
	opts.Logger = log
	kv, closer, err := store.OpenLocal(ctx, opts)
	if err != nil {
		// Progress reads as empty and writes are dropped until storage
		// comes back on a later run.
		log.Warn("open store failed, progress will not be saved",
			zap.String("backend", cfg.Storage.Backend), zap.Error(err))
		kv, closer = nil, nopCloser{}
	}

	ps := progress.NewStore(kv, progress.WithKey(cfg.Storage.Key), progress.WithLogger(log))
	return &env{
		cfg:      cfg,
		logger:   log,
		kv:       kv,
		closer:   closer,
		catalog:  cat,
		content:  c,
		progress: ps,
		quiz:     quiz.NewEngine(quiz.DefaultBank(), ps, log),
	}, nil
}

// Close releases the store and flushes the logger.
func (e *env) Close() error {
	err := e.closer.Close()
	_ = e.logger.Sync()
	return err
}

func closeEnv(e *env) {
	if err := e.Close(); err != nil && !errors.Is(err, store.ErrClosed) {
		e.logger.Warn("close store failed", zap.Error(err))
	}
}
