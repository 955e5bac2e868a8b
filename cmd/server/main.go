// Package main implements the entry point for the Mart API server, the
// back-office REST service for branches, catalogue, staff and invoices.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/mart-api/internal/config"
	"github.com/phrazzld/mart-api/internal/platform/logger"
	"github.com/phrazzld/mart-api/internal/platform/postgres"
)

func main() {
	migrate := flag.String("migrate", "", fmt.Sprintf("run a migration command %v and exit", postgres.MigrationCommands))
	seed := flag.Bool("seed", false, "insert the demo branch and exit")
	flag.Parse()

	if err := run(*migrate, *seed); err != nil {
		log.Fatalf("mart-api: %v", err)
	}
}

func run(migrate string, seed bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, closer, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer func() { _ = closer.Close() }()

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", postgres.MaskDatabaseURL(cfg.Database.URL))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := setupDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}

	switch {
	case migrate != "":
		defer db.close(l)
		return postgres.Migrate(ctx, db.sql, migrate, l)
	case seed:
		defer db.close(l)
		inserted, err := postgres.Seed(ctx, db.gorm)
		if err != nil {
			return err
		}
		l.Info("seed finished", "inserted", inserted)
		return nil
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		db.close(l)
		return err
	}
	return app.Run(ctx)
}

// logStartupFailure keeps a failing call site on a single line.
func logStartupFailure(l *slog.Logger, msg string, err error) error {
	l.Error(msg, "error", err)
	return fmt.Errorf("%s: %w", msg, err)
}
