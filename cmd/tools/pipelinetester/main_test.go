package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRuntimeHonorsLogSettings(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "pipeline.log")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FILE", logFile)

	cfg, logger, closeLog, err := loadRuntime()
	require.NoError(t, err)

	assert.Equal(t, slog.LevelWarn, cfg.Log.Level)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))

	logger.Info("hidden")
	logger.Warn("visible")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"visible"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestLoadRuntimeRejectsBadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, _, _, err := loadRuntime()
	assert.Error(t, err)
}
