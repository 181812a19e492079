package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/genai-course/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "course.log")
	cfg := &config.Config{Env: "production", Log: config.Log{Level: "info", File: path}}

	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("hello")
	log.Debug("hidden")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewBadLevel(t *testing.T) {
	cfg := &config.Config{Log: config.Log{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")}}
	_, err := New(cfg)
	assert.Error(t, err)
}
