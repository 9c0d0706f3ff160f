package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/mazadclick/admin-access/internal/access"
	"github.com/mazadclick/admin-access/internal/config"
	"github.com/mazadclick/admin-access/internal/database"
	"github.com/mazadclick/admin-access/internal/export"
	"github.com/mazadclick/admin-access/internal/handler"
	"github.com/mazadclick/admin-access/internal/logger"
	"github.com/mazadclick/admin-access/internal/middleware"
	"github.com/mazadclick/admin-access/internal/navigation"
	"github.com/mazadclick/admin-access/internal/repository"
	"github.com/mazadclick/admin-access/internal/router"
	"github.com/mazadclick/admin-access/internal/service"
	"github.com/mazadclick/admin-access/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting MazadClick access service")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Load Navigation ───────────────────────────────────────────────
	// Fail at startup rather than on the first login.
	nav := navigation.NewProvider(cfg.NavConfigPath, log)
	if _, err := nav.Items(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load navigation tree")
	}

	// ─── Initialize Services ──────────────────────────────────────────
	evaluator := access.Default
	authService := service.NewAuthService(cfg, rdb)
	userService := service.NewUserService(repository.NewUserRepository(pool), authService, evaluator, log)
	accessService := service.NewAccessService(evaluator, nav, export.NewMatrixExporter(evaluator.Matrix()), log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:   handler.NewAuthHandler(authService, userService, accessService),
		Access: handler.NewAccessHandler(accessService),
		User:   handler.NewUserHandler(userService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
	go loginLimiter.Run(ctx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(cfg, log, authService, userService, evaluator, handlers, loginLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}
	cancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
