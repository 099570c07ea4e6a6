package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/olimjonbek/savdo-backend/internal/config"
	"github.com/olimjonbek/savdo-backend/internal/database"
	"github.com/olimjonbek/savdo-backend/internal/handlers"
	"github.com/olimjonbek/savdo-backend/internal/logging"
	"github.com/olimjonbek/savdo-backend/internal/middleware"
	"github.com/olimjonbek/savdo-backend/internal/repository"
	"github.com/olimjonbek/savdo-backend/internal/routes"
	"github.com/olimjonbek/savdo-backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewFanout(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	tokenRepo := repository.NewRefreshTokenRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	productRepo := repository.NewProductRepository(database.DB)
	storeRepo := repository.NewStoreRepository(database.DB)
	regionRepo := repository.NewRegionRepository(database.DB)
	orderRepo := repository.NewOrderRepository(database.DB)
	commentRepo := repository.NewCommentRepository(database.DB)

	// Services
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userService, tokenRepo, cfg)
	catalogService := services.NewCatalogService(categoryRepo, productRepo, storeRepo, regionRepo, commentRepo)
	orderService := services.NewOrderService(orderRepo, productRepo)
	profileService := services.NewProfileService(userService)

	seedSuperuser(cfg, userService)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	orderHandler := handlers.NewOrderHandler(orderService, catalogService)
	profileHandler := handlers.NewProfileHandler(profileService, userService)
	cabinetHandler := handlers.NewCabinetHandler(catalogService, cfg)
	adminHandler := handlers.NewAdminHandler(catalogService)
	healthHandler := handlers.NewHealthHandler()

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, database.DB, catalogHandler, authHandler, orderHandler, profileHandler, cabinetHandler, adminHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

// seedSuperuser creates the bootstrap admin account when ADMIN_PHONE
// and ADMIN_PASSWORD are set and the account does not exist yet.
func seedSuperuser(cfg *config.Config, userService *services.UserService) {
	if cfg.AdminPhone == "" || cfg.AdminPassword == "" {
		return
	}

	ctx := context.Background()
	if _, err := userService.FindByPhone(ctx, cfg.AdminPhone); err == nil {
		return
	} else if !errors.Is(err, services.ErrUserNotFound) {
		slog.Error("superuser lookup failed", "error", err)
		return
	}

	if _, err := userService.CreateSuperuser(ctx, cfg.AdminPhone, cfg.AdminPassword); err != nil {
		slog.Error("superuser seed failed", "error", err)
		return
	}
	slog.Info("superuser created", "phone", cfg.AdminPhone)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
