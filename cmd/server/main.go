package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/api"
	"github.com/greengirl/dashboard/internal/api/handler"
	"github.com/greengirl/dashboard/internal/api/middleware"
	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/config"
	"github.com/greengirl/dashboard/internal/database"
	"github.com/greengirl/dashboard/internal/gateway"
	"github.com/greengirl/dashboard/internal/lookup"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/profile"
	"github.com/greengirl/dashboard/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	lookups := lookup.NewRepository(db.Pool())
	if cfg.SeedFile != "" {
		if err := seedLookups(ctx, cfg.SeedFile, lookups); err != nil {
			slog.Error("failed to apply seed file", "path", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Error("invalid redis url", "error", err)
		os.Exit(1)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	authService := auth.NewService(
		auth.NewRepository(db.Pool()),
		auth.NewRedisSessionStore(rdb),
		[]byte(cfg.JWTSecret),
		cfg.TokenTTL,
		cfg.BcryptCost,
	)
	if _, err := authService.BootstrapSuperuser(ctx); err != nil {
		slog.Error("failed to bootstrap super-user", "error", err)
		os.Exit(1)
	}

	hub := gateway.NewHub(authService)
	gw := gateway.New(gateway.Deps{
		Auth:       authService,
		Profiles:   profile.NewRepository(db.Pool()),
		Materials:  material.NewRepository(db.Pool()),
		Activities: activity.NewRepository(db.Pool()),
		Lookups:    lookups,
		Sessions:   hub,
	})
	limiter := middleware.NewLoginLimiter(cfg.LoginRate, cfg.LoginBurst)

	registry := session.NewRegistry(
		func(contextID string) *session.Provider {
			return session.NewProvider(hub.For(contextID), gw)
		},
		cfg.ContextIdleTTL,
		session.WithEvictHook(func(contextID string) {
			hub.Forget(contextID)
			limiter.Forget(contextID)
		}),
	)
	defer registry.Close()

	go session.NewJanitor(registry, cfg.JanitorInterval).Start(ctx)

	router := api.NewRouter(api.RouterDeps{
		DBPinger: db,
		RedisPinger: handler.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}),
		Version: cfg.Version,
		Backend: gw,
		Clients: func(contextID string) gateway.SessionClient { return hub.For(contextID) },
		Sessions: middleware.SessionConfig{
			Registry: registry,
			Revalidate: func(ctx context.Context, contextID string) {
				hub.For(contextID).Revalidate(ctx)
			},
			ResolveTimeout: cfg.SessionResolveTimeout,
			SecureCookie:   cfg.CookieSecure,
		},
		Limiter:  limiter,
		PageSize: cfg.PageSize,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting GreenGirl dashboard", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func seedLookups(ctx context.Context, path string, repo lookup.Repository) error {
	seed, err := lookup.LoadSeed(path)
	if err != nil {
		return err
	}
	if err := seed.Apply(ctx, repo); err != nil {
		return err
	}
	slog.Info("seed applied", "projects", len(seed.Projects), "activityTypes", len(seed.ActivityTypes))
	return nil
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
