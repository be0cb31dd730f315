package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/sejanpass/sejanpass-go/internal/config"
	"github.com/sejanpass/sejanpass-go/internal/crypto"
	"github.com/sejanpass/sejanpass-go/internal/handler"
	"github.com/sejanpass/sejanpass-go/internal/metrics"
	"github.com/sejanpass/sejanpass-go/internal/middleware"
	"github.com/sejanpass/sejanpass-go/internal/repository"
	"github.com/sejanpass/sejanpass-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	opts := []service.GeneratorOption{service.WithDefaultLength(cfg.DefaultLength)}

	// The audit store is optional; generation works without it.
	var auditService *service.AuditService
	db, err := repository.NewDB(context.Background(), cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, audit routes disabled", "error", err)
	} else {
		defer db.Close()
		if err := repository.Migrate(context.Background(), db); err != nil {
			slog.Error("database migration failed", "error", err)
			os.Exit(1)
		}
		auditService = service.NewAuditService(repository.NewAuditRepository(db))
		opts = append(opts, service.WithAuditRecorder(auditService))
	}

	genService := service.NewGeneratorService(cfg.Policy, nil, opts...)
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})
	r.Post("/api/v1/strength", genHandler.HandleStrength)

	switch {
	case auditService == nil:
	case cfg.AdminSecretHash == "":
		slog.Warn("ADMIN_SECRET_HASH not set, audit routes disabled")
	default:
		authHandler := handler.NewAuthHandler(cfg.AdminSecretHash, cfg.JWTSecret, cfg.JWTExpiry)
		auditHandler := handler.NewAuditHandler(auditService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
			r.Post("/api/v1/auth/token", authHandler.HandleToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireScope(cfg.JWTSecret, crypto.ScopeAuditRead))
			r.Get("/api/v1/audit/stats", auditHandler.HandleStats)
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env,
			"min_length", cfg.Policy.MinLength, "max_length", cfg.Policy.MaxLength)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
