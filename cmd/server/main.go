package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"labadmin/docs"
	"labadmin/internal/auth"
	"labadmin/internal/cache"
	"labadmin/internal/config"
	"labadmin/internal/db"
	"labadmin/internal/handler"
	"labadmin/internal/logging"
	"labadmin/internal/repository"
	"labadmin/internal/router"
	"labadmin/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Lab Admin API
// @version 1.0
// @description Session-authenticated administration of users, products and laboratories.
// @host localhost:3001
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel)
	ctx := context.Background()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	logger.Info(ctx, "connecting to database",
		"host", cfg.DBHost, "port", cfg.DBPort, "user", cfg.DBUser, "database", cfg.DBName)

	gormDB, err := db.NewMySQL(ctx, db.DSN(cfg), cfg.DBMaxOpenConns)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			logger.Warn(ctx, "close database", "err", err)
		}
	}()
	logger.Info(ctx, "connected to database")

	// Drop the schema if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		logger.Warn(ctx, "RESET_DB=true detected, rolling back all migrations")
		if err := db.Reset(ctx, gormDB); err != nil {
			return err
		}
	}
	if cfg.RunMigrations {
		if err := db.Migrate(ctx, gormDB); err != nil {
			return err
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		return err
	}

	if cfg.SessionSecret == "change-me" {
		logger.Warn(ctx, "SESSION_SECRET is not set, session cookies use the default key")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	laboratoryRepo := repository.NewLaboratoryRepository(gormDB)

	// Initialize session components
	sessions := auth.NewSessionManager(
		auth.NewRedisSessionStore(cacheClient),
		auth.NewSessionTokenService(cfg.SessionSecret),
		auth.CookieConfig{
			Name:   cfg.SessionCookieName,
			Secure: cfg.SessionCookieSecure,
			TTL:    cfg.SessionTTL,
		},
		logger.With("component", "session"),
	)

	// Initialize services
	passwords := service.PasswordPolicy{Hash: cfg.PasswordHashing}
	authService := service.NewAuthService(userRepo, passwords)
	userService := service.NewUserService(userRepo, passwords)
	productService := service.NewProductService(productRepo)
	laboratoryService := service.NewLaboratoryService(laboratoryRepo)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, sessions, router.Handlers{
		Auth:       handler.NewAuthHandler(authService, sessions, logger.With("handler", "auth")),
		User:       handler.NewUserHandler(userService, logger.With("handler", "user")),
		Product:    handler.NewProductHandler(productService, logger.With("handler", "product")),
		Laboratory: handler.NewLaboratoryHandler(laboratoryService, logger.With("handler", "laboratory")),
		Page:       handler.NewPageHandler(cfg.PublicDir),
	}, logger)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}

	serverErr := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info(ctx, "server listening", "addr", addr, "swagger", "/swagger/index.html")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-stop:
	}

	logger.Info(ctx, "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
