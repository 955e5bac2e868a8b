package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/phrazzld/mart-api/internal/config"
	"github.com/phrazzld/mart-api/internal/platform/logger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const pingTimeout = 5 * time.Second

// OpenSQL opens and pings a pooled database/sql handle.
func OpenSQL(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database at %s: %w", MaskDatabaseURL(cfg.URL), err)
	}

	return db, nil
}

// OpenGorm wraps an existing pool in gorm. Closing the pool closes gorm's
// connections too.
func OpenGorm(db *sql.DB, level slog.Level, slowThreshold time.Duration) (*gorm.DB, error) {
	gdb, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db}), &gorm.Config{
		Logger:                 logger.NewGormLogger(level, slowThreshold),
		SkipDefaultTransaction: true,
		NowFunc:                func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialise gorm: %w", err)
	}
	return gdb, nil
}

// MaskDatabaseURL masks the password in a database URL for safe logging.
func MaskDatabaseURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}
	if parsedURL.User == nil {
		return parsedURL.String()
	}
	if _, hasPassword := parsedURL.User.Password(); !hasPassword {
		return parsedURL.String()
	}

	// URL.String would percent-encode the mask, so splice it in after the scheme.
	user := url.User(parsedURL.User.Username()).String()
	parsedURL.User = nil
	prefix := parsedURL.Scheme + "://"
	return prefix + user + ":****@" + strings.TrimPrefix(parsedURL.String(), prefix)
}
