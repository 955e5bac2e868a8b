package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/mart-api/internal/api"
	apiMiddleware "github.com/phrazzld/mart-api/internal/api/middleware"
	"github.com/phrazzld/mart-api/internal/domain"
)

// resourceHandler is the handler set every back-office resource exposes.
type resourceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
}

// routes is everything newRouter mounts.
type routes struct {
	auth         *api.AuthHandler
	authenticate func(http.Handler) http.Handler

	branch       *api.ResourceHandler[domain.Branch]
	categories   resourceHandler
	products     resourceHandler
	positions    resourceHandler
	staff        resourceHandler
	invoices     resourceHandler
	invoiceItems resourceHandler
}

// access selects which reads of a resource skip authentication.
type access struct {
	publicList bool
	publicGet  bool
}

var (
	protected  = access{}
	listOnly   = access{publicList: true}
	publicRead = access{publicList: true, publicGet: true}
)

// newRouter creates the application router with all routes and middleware.
func newRouter(logger *slog.Logger, rt routes) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(logger))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", rt.auth.Register)
		r.Post("/login", rt.auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(rt.authenticate)
			r.Post("/logout", rt.auth.Logout)
			r.Post("/change-password", rt.auth.ChangePassword)
		})
	})

	r.Route("/branch", func(r chi.Router) {
		// legacy paths kept for existing clients; lists is unpaginated
		r.Get("/lists", rt.branch.All)
		r.With(rt.authenticate).Post("/create", rt.branch.Create)

		mountResource(r, rt.branch, publicRead, rt.authenticate)
	})
	r.Route("/categories", func(r chi.Router) {
		mountResource(r, rt.categories, publicRead, rt.authenticate)
	})
	r.Route("/products", func(r chi.Router) {
		mountResource(r, rt.products, publicRead, rt.authenticate)
	})
	r.Route("/positions", func(r chi.Router) {
		mountResource(r, rt.positions, listOnly, rt.authenticate)
	})
	r.Route("/staff", func(r chi.Router) {
		mountResource(r, rt.staff, protected, rt.authenticate)
	})
	r.Route("/invoices", func(r chi.Router) {
		mountResource(r, rt.invoices, protected, rt.authenticate)
	})
	r.Route("/invoice-items", func(r chi.Router) {
		mountResource(r, rt.invoiceItems, protected, rt.authenticate)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

func mountResource(r chi.Router, h resourceHandler, a access, authenticate func(http.Handler) http.Handler) {
	read := func(public bool) chi.Router {
		if public {
			return r
		}
		return r.With(authenticate)
	}
	read(a.publicList).Get("/", h.List)
	read(a.publicGet).Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/restore", h.Restore)
	})
}
