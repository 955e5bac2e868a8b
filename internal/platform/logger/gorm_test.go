package logger_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/mart-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLoggerTrace(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	ctx := logger.WithLogger(context.Background(), logger.New(buf, "debug"))
	gl := logger.NewGormLogger(slog.LevelInfo, 200*time.Millisecond)

	t.Run("query error is logged", func(t *testing.T) {
		buf.Reset()
		gl.Trace(ctx, time.Now(), sqlFn("SELECT 1", 0), errors.New("boom"))
		entries, err := buf.GetLogEntries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "query failed", entries[0]["msg"])
		assert.Equal(t, "boom", entries[0]["error"])
		assert.Equal(t, "SELECT 1", entries[0]["sql"])
	})

	t.Run("record not found is silent", func(t *testing.T) {
		buf.Reset()
		gl.Trace(ctx, time.Now(), sqlFn("SELECT * FROM product", 0), gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("slow query warns", func(t *testing.T) {
		buf.Reset()
		gl.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT pg_sleep(1)", 1), nil)
		entries, err := buf.GetLogEntries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "slow query", entries[0]["msg"])
		assert.Equal(t, "WARN", entries[0]["level"])
	})

	t.Run("fast query is quiet at info", func(t *testing.T) {
		buf.Reset()
		gl.Trace(ctx, time.Now(), sqlFn("SELECT 1", 1), nil)
		assert.Empty(t, buf.String())
	})
}

func TestGormLoggerDebugLogsStatements(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	ctx := logger.WithLogger(context.Background(), logger.New(buf, "debug"))
	gl := logger.NewGormLogger(slog.LevelDebug, 0)

	gl.Trace(ctx, time.Now(), sqlFn("SELECT 1", 1), nil)
	logger.AssertLogContains(t, buf, `"msg":"query"`)
}

func TestGormLoggerLogMode(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	ctx := logger.WithLogger(context.Background(), logger.New(buf, "debug"))
	gl := logger.NewGormLogger(slog.LevelInfo, 0)

	silent := gl.LogMode(gormlogger.Silent)
	silent.Trace(ctx, time.Now(), sqlFn("SELECT 1", 0), errors.New("boom"))
	silent.Error(ctx, "ignored %d", 1)
	assert.Empty(t, buf.String())

	gl.Warn(ctx, "pool %s", "exhausted")
	logger.AssertLogContains(t, buf, "pool exhausted")
}
