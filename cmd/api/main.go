// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Quorum HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and run migrations, when a relational backend is selected.
//  4. Connect to Redis, when sessions live in Redis.
//  5. Choose the session token issuer.
//  6. Wire repositories, services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/quorum/internal/api"
	"github.com/taibuivan/quorum/internal/platform/config"
	"github.com/taibuivan/quorum/internal/platform/constants"
	"github.com/taibuivan/quorum/internal/platform/migration"
	pgstore "github.com/taibuivan/quorum/internal/platform/postgres"
	redisstore "github.com/taibuivan/quorum/internal/platform/redis"
	"github.com/taibuivan/quorum/internal/platform/sec"
	"github.com/taibuivan/quorum/internal/qa/answer"
	"github.com/taibuivan/quorum/internal/qa/question"
	"github.com/taibuivan/quorum/internal/users/account"
	"github.com/taibuivan/quorum/internal/users/auth"
)

// stores groups the repositories chosen for the configured backends.
type stores struct {
	users     auth.UserRepository
	sessions  auth.SessionRepository
	questions question.Repository
	answers   answer.Repository
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "quorum"))
	slog.SetDefault(log)

	log.Info("[Quorum] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "quorum"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_backend", cfg.StorageBackend),
		slog.String("session_backend", cfg.SessionBackend),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	health := api.HealthDependencies{}

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	var pool *pgxpool.Pool
	if cfg.NeedsPostgres() {
		pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		health.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	}

	// ── 4. Redis ──────────────────────────────────────────────────────────
	var rdb *redis.Client
	if cfg.SessionBackend == config.BackendRedis {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		health.CheckCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}

	// ── 5. Token Issuer ───────────────────────────────────────────────────
	var issuer auth.TokenIssuer = sec.NewOpaqueTokenIssuer()
	if cfg.JWTPrivKeyPath != "" {
		jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.TokenIssuer)
		must(log, err, "initialize jwt service")
		issuer = jwtSvc
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	repositories := newStores(cfg, pool, rdb)

	sessionService := auth.NewSessionService(repositories.sessions, repositories.users, issuer, log)
	authService := auth.NewService(repositories.users, sessionService, log)
	accountService := account.NewService(repositories.users, sessionService, log)
	questionService := question.NewService(repositories.questions, sessionService, repositories.users, log)
	answerService := answer.NewService(repositories.answers, repositories.questions, sessionService, log)

	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Account:   account.NewHandler(accountService),
		Question:  question.NewHandler(questionService),
		Answer:    answer.NewHandler(answerService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
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

// newStores selects repository implementations for the configured backends.
func newStores(cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client) stores {
	var repositories stores

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		repositories.users = auth.NewUserRepository(pool)
		repositories.questions = question.NewPostgresRepository(pool)
		repositories.answers = answer.NewPostgresRepository(pool)
	default:
		answers := answer.NewMemoryRepository()
		repositories.users = auth.NewMemoryUserRepository()
		repositories.questions = question.NewMemoryRepository(question.OnDelete(answers.DeleteByQuestion))
		repositories.answers = answers
	}

	switch cfg.SessionBackend {
	case config.BackendPostgres:
		repositories.sessions = auth.NewSessionRepository(pool)
	case config.BackendRedis:
		repositories.sessions = auth.NewRedisSessionRepository(rdb)
	default:
		repositories.sessions = auth.NewMemorySessionRepository()
	}

	return repositories
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
