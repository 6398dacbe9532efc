// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

// Command api is the entry point for the ShinobiDex fichas HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (.env honored in dev).
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Configure blob storage.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shinobidex/fichas-api/internal/api"
	"github.com/shinobidex/fichas-api/internal/core/ability"
	"github.com/shinobidex/fichas-api/internal/core/assignment"
	"github.com/shinobidex/fichas-api/internal/core/character"
	"github.com/shinobidex/fichas-api/internal/core/upload"
	"github.com/shinobidex/fichas-api/internal/identity"
	"github.com/shinobidex/fichas-api/internal/platform/blob"
	"github.com/shinobidex/fichas-api/internal/platform/config"
	"github.com/shinobidex/fichas-api/internal/platform/constants"
	"github.com/shinobidex/fichas-api/internal/platform/migration"
	pgstore "github.com/shinobidex/fichas-api/internal/platform/postgres"
	redisstore "github.com/shinobidex/fichas-api/internal/platform/redis"
	"github.com/shinobidex/fichas-api/internal/session/edit"
	"github.com/shinobidex/fichas-api/internal/session/window"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A local .env is a development convenience; in production everything
	// comes from the real environment and the file simply isn't there.
	if err := godotenv.Load(); err == nil {
		log.Info("dotenv_loaded")
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Int("admin_tokens", len(cfg.AdminTokens)),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Blob Storage ───────────────────────────────────────────────────
	blobStore, err := blob.NewS3Store(startupCtx, blob.S3Options{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	}, log)
	must(log, err, "configure blob storage")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckSessions: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	allowlist := identity.NewAllowlist(cfg.AdminTokens)
	resolver := identity.NewResolver(cfg.IPEchoURL, log)
	identityHandler := identity.NewHandler(allowlist)

	characterRepository := character.NewPostgresRepository(pool)
	characterService := character.NewService(characterRepository, allowlist, log)
	characterHandler := character.NewHandler(characterService)

	abilityRepository := ability.NewPostgresRepository(pool)
	abilityService := ability.NewService(abilityRepository, log)
	abilityHandler := ability.NewHandler(abilityService)

	assignmentRepository := assignment.NewPostgresRepository(pool)
	assignmentService := assignment.NewService(assignmentRepository, characterRepository, allowlist, log)
	assignmentHandler := assignment.NewHandler(assignmentService)

	uploadService := upload.NewService(blobStore, log)
	uploadHandler := upload.NewHandler(uploadService)

	windowService := window.NewService(window.NewRedisStore(rdb), log)
	windowHandler := window.NewHandler(windowService)

	editService := edit.NewService(edit.NewRedisStore(rdb), characterService, log)
	editHandler := edit.NewHandler(editService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Identity:   identityHandler,
		Character:  characterHandler,
		Assignment: assignmentHandler,
		Ability:    abilityHandler,
		Upload:     uploadHandler,
		Window:     windowHandler,
		Edit:       editHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, resolver, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
