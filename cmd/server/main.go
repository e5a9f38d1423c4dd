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

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"liquidador/internal/domain/access"
	authdomain "liquidador/internal/domain/auth"
	holidaydomain "liquidador/internal/domain/holiday"
	salarydomain "liquidador/internal/domain/salary"
	"liquidador/internal/platform/config"
	"liquidador/internal/platform/db"
	"liquidador/internal/platform/metrics"
	"liquidador/internal/requestctx"
	"liquidador/internal/transport/http/api"
	accesshandler "liquidador/internal/transport/http/handlers/access"
	authhandler "liquidador/internal/transport/http/handlers/auth"
	exporthandler "liquidador/internal/transport/http/handlers/export"
	holidayhandler "liquidador/internal/transport/http/handlers/holiday"
	salaryhandler "liquidador/internal/transport/http/handlers/salary"
	settlementhandler "liquidador/internal/transport/http/handlers/settlement"
	"liquidador/internal/transport/http/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		slog.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			slog.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg.SeedAdminPassword, cfg.HolidayYearFrom, cfg.HolidayYearTo); err != nil {
			slog.Error("seed failed", "err", err)
			os.Exit(1)
		}
	}

	collector := metrics.New()

	authStore := authdomain.NewStore(pool)
	gradeStore := salarydomain.NewStore(pool)
	holidayStore := holidaydomain.NewStore(pool)
	accessService := access.New(pool)

	authH := authhandler.NewHandler(authStore, cfg.JWTSecret, cfg.TokenTTL)
	gradeH := salaryhandler.NewHandler(gradeStore)
	holidayH := holidayhandler.NewHandler(holidayStore, cfg.HolidayYearFrom, cfg.HolidayYearTo)
	accessH := accesshandler.NewHandler(accessService)
	settlementH := settlementhandler.NewHandler(gradeStore, holidayStore, collector)
	exportH := exporthandler.NewHandler(gradeStore, holidayStore, accessService)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, map[string]string{"status": "ok"}, requestctx.GetRequestID(r.Context()))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			api.Fail(w, http.StatusServiceUnavailable, "not_ready", "database unreachable", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Success(w, map[string]string{"status": "ready"}, requestctx.GetRequestID(r.Context()))
	})
	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), requestctx.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authH.RegisterRoutes(r)
		accessH.RegisterRoutes(r)
		holidayH.RegisterRoutes(r)
		gradeH.RegisterRoutes(r)
		settlementH.RegisterRoutes(r)
		exportH.RegisterRoutes(r)
	})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "err", err)
	}
}
