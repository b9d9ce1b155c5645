package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	dashhttp "github.com/corlin/wvsee/internal/dashboard/adapter/http"
	"github.com/corlin/wvsee/internal/dashboard/adapter/weaviate"
	"github.com/corlin/wvsee/internal/dashboard/config"
	"github.com/corlin/wvsee/internal/dashboard/usecase"
	"github.com/corlin/wvsee/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	appLogger := logger.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Fatalf("Failed to load configuration: %v", err)
	}
	appLogger.Info("Configuration loaded", "weaviate_url", cfg.Weaviate.BaseURL)

	// Wire the data-access layer: client → usecase → handler
	dbClient := weaviate.NewClient(&cfg.Weaviate, appLogger)
	catalogUC := usecase.NewCatalogUsecase(dbClient, appLogger)
	handler := dashhttp.NewCollectionHandler(catalogUC, appLogger)

	app := fiber.New(fiber.Config{
		AppName:      "wvsee v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			appLogger.Error("HTTP Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: "GET,HEAD,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(dashhttp.RequestIDMiddleware())

	app.Get("/health", handler.Health)
	app.Get("/", handler.DashboardPage)
	handler.RegisterRoutes(app)

	serverAddr := cfg.Server.Addr()
	appLogger.Info("Starting HTTP server", "addr", serverAddr)

	// Start server in a goroutine for graceful shutdown
	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(serverAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			appLogger.Fatalf("Server startup failed: %v", err)
		}
	case sig := <-quit:
		appLogger.Info("Received shutdown signal", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown: %v", err)
		}

		appLogger.Info("HTTP server stopped")
	}
}
