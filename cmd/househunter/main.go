package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/niladhikari/house-hunter-server/internal/app"
	"github.com/niladhikari/house-hunter-server/internal/guard"
	"github.com/niladhikari/house-hunter-server/internal/listings"
	"github.com/niladhikari/house-hunter-server/internal/platform/cache"
	"github.com/niladhikari/house-hunter-server/internal/platform/db"
	"github.com/niladhikari/house-hunter-server/internal/token"
	"github.com/niladhikari/house-hunter-server/internal/users"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Error("ensure schema", slog.Any("error", err))
		os.Exit(1)
	}

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = redisClient.Close() }()

	tokenService := token.NewService(cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	usersService := users.NewService(users.NewRepository(pool))
	listingsService := listings.NewService(listings.NewRepository(pool))

	roleCache := guard.NewRoleCache(redisClient, usersService, cfg.RoleCacheTTL, logger)
	guards := guard.Middleware{Tokens: tokenService, Roles: roleCache, Logger: logger}

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		TokenHandler:    token.NewHandler(logger, tokenService),
		UsersHandler:    users.NewHandler(logger, usersService, guards, roleCache),
		ListingsHandler: listings.NewHandler(logger, listingsService, guards),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
