package logger

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/genai-course/internal/config"
	"github.com/abhisek/genai-course/internal/store"
)

// DefaultFile is the log file name inside the data dir.
const DefaultFile = "genai-course.log"

// New builds a logger from cfg. Output goes to a file because the TUI owns
// the terminal.
func New(cfg *config.Config) (*zap.Logger, error) {
	path, err := filePath(cfg.Log.File)
	if err != nil {
		return nil, err
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var zc zap.Config
	if cfg.Env == "local" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}

	return zc.Build()
}

func filePath(p string) (string, error) {
	if p != "" {
		if err := store.EnsureDir(p); err != nil {
			return "", fmt.Errorf("create log dir: %w", err)
		}
		return p, nil
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", fmt.Errorf("resolve log dir: %w", err)
	}
	p = filepath.Join(dir, DefaultFile)
	if err := store.EnsureDir(p); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return p, nil
}
