package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/mart-api/internal/config"
	"github.com/phrazzld/mart-api/internal/platform/logger"
	"github.com/phrazzld/mart-api/internal/platform/postgres"
	"gorm.io/gorm"
)

// database pairs the pooled handle used by migrations with the gorm view the
// stores query through. Both share one pool.
type database struct {
	sql  *sql.DB
	gorm *gorm.DB
}

// setupDatabase opens the pool, pings it and wraps it in gorm at the
// configured log level.
func setupDatabase(ctx context.Context, cfg *config.Config, l *slog.Logger) (*database, error) {
	sqlDB, err := postgres.OpenSQL(ctx, cfg.Database)
	if err != nil {
		return nil, logStartupFailure(l, "failed to connect to database", err)
	}

	gdb, err := postgres.OpenGorm(sqlDB, logger.ParseLevel(cfg.Server.LogLevel), cfg.Database.SlowQueryThreshold)
	if err != nil {
		_ = sqlDB.Close()
		return nil, logStartupFailure(l, "failed to initialise gorm", err)
	}

	l.Info("Database connection established",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns)
	return &database{sql: sqlDB, gorm: gdb}, nil
}

func (d *database) close(l *slog.Logger) {
	if err := d.sql.Close(); err != nil {
		l.Error("Error closing database connection", "error", err)
	}
}
