// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/mart-api/internal/config"
	"github.com/phrazzld/mart-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, logger.ParseLevel(tc.name))
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	log := logger.New(buf, "warn")

	log.Info("hidden")
	log.Warn("shown", slog.String("component", "test"))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "test", entries[0]["component"])
}

func TestSetupWritesToRotatingFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	path := filepath.Join(t.TempDir(), "mart.log")
	log, closer, err := logger.Setup(config.ServerConfig{
		LogLevel:      "info",
		LogFile:       path,
		LogMaxSizeMB:  1,
		LogMaxBackups: 1,
		LogMaxAgeDays: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, log)

	log.Info("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Same(t, log, slog.Default())
}

func TestSetupWithoutFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	log, closer, err := logger.Setup(config.ServerConfig{LogLevel: "debug"})
	require.NoError(t, err)
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
	assert.NoError(t, closer.Close())
}

func TestContextHelpers(t *testing.T) {
	assert.Nil(t, logger.FromContext(context.Background()))
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background()))

	buf := &logger.TestLogBuffer{}
	scoped := logger.New(buf, "debug").With(slog.String("trace_id", "abc"))
	ctx := logger.WithLogger(context.Background(), scoped)

	assert.Same(t, scoped, logger.FromContext(ctx))
	logger.FromContextOrDefault(ctx).Info("hello")
	logger.AssertLogContains(t, buf, `"trace_id":"abc"`)
}
