//go:build integration

package testdb

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/mart-api/internal/config"
	"github.com/phrazzld/mart-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 10 * time.Second

// tables lists every application table, children first.
var tables = []string{
	"revoked_tokens", "invoice_item", "invoice", "staff", "position",
	"product", "category", "branch", "users",
}

// GetTestDatabaseURL returns the database URL for tests.
func GetTestDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("MART_TEST_DB_URL")
}

// Open connects to the test database, applies migrations, empties every
// table and registers cleanup. It skips the test when no URL is set.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	url := GetTestDatabaseURL()
	if url == "" {
		t.Skip("DATABASE_URL not set - skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	sqlDB, err := postgres.OpenSQL(ctx, config.DatabaseConfig{
		URL:             url,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(ctx, sqlDB, "up", slog.Default()), "Failed to run migrations")

	db, err := postgres.OpenGorm(sqlDB, slog.LevelWarn, 0)
	require.NoError(t, err)

	Reset(t, db)
	return db
}

// Reset truncates every table and restarts id sequences.
func Reset(t *testing.T, db *gorm.DB) {
	t.Helper()
	quoted := make([]string, len(tables))
	for i, name := range tables {
		quoted[i] = `"` + name + `"`
	}
	err := db.Exec("TRUNCATE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error
	require.NoError(t, err, "Failed to truncate tables")
}
