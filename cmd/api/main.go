package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"proxy-admin-panel/config"
	httpHandler "proxy-admin-panel/internal/adapter/http/handler"
	pgStorage "proxy-admin-panel/internal/adapter/storage/postgres"
	redisStorage "proxy-admin-panel/internal/adapter/storage/redis"
	"proxy-admin-panel/internal/core/ports"
	"proxy-admin-panel/internal/service"
	"proxy-admin-panel/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Proxy Admin Panel")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	revocationStore := redisStorage.NewRevocationStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tagSvc := service.NewHMACTagService(cfg.Session.Secret)
	sessionSvc := service.NewSessionTokenService(tagSvc, cfg.Session.Secret, cfg.Session.Lifetime, cfg.Session.Issuer)

	// Initialize business services
	auditSvc := service.NewAuditService(auditRepo, log)
	ledgerSvc := service.NewLedgerEngine(accountRepo, ledgerRepo, transactor, log)
	registrar := service.NewRegistrar(accountRepo, hashSvc)
	authSvc := service.NewAuthService(accountRepo, hashSvc, sessionSvc, revocationStore, auditSvc, log)
	adminSvc := service.NewAccountAdminService(
		accountRepo,
		hashSvc,
		sessionSvc,
		ledgerSvc,
		registrar,
		revocationStore,
		auditSvc,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		AdminSvc:       adminSvc,
		LedgerSvc:      ledgerSvc,
		SessionSvc:     sessionSvc,
		Accounts:       accountRepo,
		Revocations:    revocationStore,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Session:        cfg.Session,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
