package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/mart-api/internal/api"
	apiMiddleware "github.com/phrazzld/mart-api/internal/api/middleware"
	"github.com/phrazzld/mart-api/internal/config"
	"github.com/phrazzld/mart-api/internal/platform/postgres"
	"github.com/phrazzld/mart-api/internal/service"
	"github.com/phrazzld/mart-api/internal/service/auth"
	"github.com/phrazzld/mart-api/internal/validation"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *database
	routes routes
}

// newApplication builds stores, services and handlers on top of an open
// database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *database) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	v, err := validation.New(postgres.NewLookup(db.gorm))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize validator: %w", err)
	}

	users := postgres.NewPostgresUserStore(db.gorm)
	tokens := postgres.NewTokenStore(db.gorm)
	accounts := service.NewAccountService(users, tokens, jwtService,
		auth.NewBcryptHasher(cfg.Auth.BCryptCost), logger)

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		routes: routes{
			auth:         api.NewAuthHandler(accounts, v),
			authenticate: apiMiddleware.NewAuthMiddleware(jwtService, tokens).Authenticate,

			branch:       api.NewResourceHandler(api.BranchResource, postgres.NewBranchStore(db.gorm), v),
			categories:   api.NewResourceHandler(api.CategoryResource, postgres.NewCategoryStore(db.gorm), v),
			products:     api.NewResourceHandler(api.ProductResource, postgres.NewProductStore(db.gorm), v),
			positions:    api.NewResourceHandler(api.PositionResource, postgres.NewPositionStore(db.gorm), v),
			staff:        api.NewResourceHandler(api.StaffResource, postgres.NewStaffStore(db.gorm), v),
			invoices:     api.NewResourceHandler(api.InvoiceResource, postgres.NewInvoiceStore(db.gorm), v),
			invoiceItems: api.NewResourceHandler(api.InvoiceItemResource, postgres.NewInvoiceItemStore(db.gorm), v),
		},
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then releases the database.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, newRouter(app.logger, app.routes)); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.db.close(app.logger)
	app.logger.Info("Application shutdown completed")
}
