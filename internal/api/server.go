// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

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

	"github.com/shinobidex/fichas-api/internal/core/ability"
	"github.com/shinobidex/fichas-api/internal/core/assignment"
	"github.com/shinobidex/fichas-api/internal/core/character"
	"github.com/shinobidex/fichas-api/internal/core/upload"
	"github.com/shinobidex/fichas-api/internal/identity"
	"github.com/shinobidex/fichas-api/internal/platform/config"
	"github.com/shinobidex/fichas-api/internal/platform/constants"
	"github.com/shinobidex/fichas-api/internal/platform/middleware"
	"github.com/shinobidex/fichas-api/internal/session/edit"
	"github.com/shinobidex/fichas-api/internal/session/window"
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

	// Identity exposes the caller's resolved token and admin status.
	Identity *identity.Handler

	// Character handles the character sheet catalogue.
	Character *character.Handler

	// Assignment manages sheet–jutsu links (mounted under /fichas).
	Assignment *assignment.Handler

	// Ability handles the shared jutsu catalogue.
	Ability *ability.Handler

	// Upload accepts portrait and jutsu images into blob storage.
	Upload *upload.Handler

	// Window manages per-session jutsu window arrangements.
	Window *window.Handler

	// Edit manages per-session pending sheet edits.
	Edit *edit.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, resolver middleware.CallerResolver, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CallerIdentity(resolver))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/identity", h.Identity.RegisterRoutes)

		api.Route("/fichas", func(fichas chi.Router) {
			h.Character.RegisterRoutes(fichas)
			h.Assignment.RegisterRoutes(fichas)
		})

		api.Route("/jutsus", h.Ability.RegisterRoutes)
		api.Route("/uploads", h.Upload.RegisterRoutes)

		api.Route("/session", func(session chi.Router) {
			session.Route("/windows", h.Window.RegisterRoutes)
			session.Route("/edit", h.Edit.RegisterRoutes)
		})
	})

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
