// Copyright (c) 2026 audio-server. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Mfungorn/audio-server/internal/catalog"
	"github.com/Mfungorn/audio-server/internal/platform/config"
	"github.com/Mfungorn/audio-server/internal/platform/constants"
	"github.com/Mfungorn/audio-server/internal/platform/middleware"
	"github.com/Mfungorn/audio-server/internal/platform/sec"
	"github.com/Mfungorn/audio-server/internal/users/auth"
	"github.com/Mfungorn/audio-server/internal/users/customer"
	"github.com/Mfungorn/audio-server/internal/users/favorites"
	"github.com/Mfungorn/audio-server/internal/users/manager"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles login, registration, and token verification.
	Auth *auth.Handler

	// Author, Album, Composition, and Genre serve the catalog surface.
	Author      *catalog.AuthorHandler
	Album       *catalog.AlbumHandler
	Composition *catalog.CompositionHandler
	Genre       *catalog.GenreHandler

	// Search serves the cross-catalog fan-out search.
	Search *catalog.SearchHandler

	// Customer and Favorites serve the authenticated /user surface.
	Customer  *customer.Handler
	Favorites *favorites.Handler

	// Manager serves the authenticated /admin surface.
	Manager *manager.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Mount("/auth", h.Auth.Routes())
	r.Mount("/authors", h.Author.Routes())
	r.Mount("/albums", h.Album.Routes())
	r.Mount("/compositions", h.Composition.Routes())
	r.Mount("/genres", h.Genre.Routes())
	r.Mount("/search", h.Search.Routes())

	// Authenticated customer surface: profile plus favorites.
	r.Route("/user", func(user chi.Router) {
		user.Use(middleware.RequireRole(sec.RoleUser))
		h.Customer.RegisterRoutes(user)
		user.Mount("/favorites", h.Favorites.Routes())
	})

	r.Mount("/admin", h.Manager.Routes())

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
