package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/lumen-scripture-index/internal/config"
	"github.com/lumen-scripture-index/internal/db"
	"github.com/lumen-scripture-index/internal/embeddings"
	"github.com/lumen-scripture-index/internal/handlers"
	"github.com/lumen-scripture-index/internal/middleware"
	"github.com/lumen-scripture-index/internal/repository/postgres"
	"github.com/lumen-scripture-index/internal/services"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize PostgreSQL
	pgDB, err := db.Connect(ctx, cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	log.Println("Database initialization complete")

	// Create repositories and services
	verseRepo := postgres.NewVerseRepository(pgDB, cfg.EmbeddingDimensions)

	embeddingsSvc, err := embeddings.NewService(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize embeddings service: %v", err)
	}

	retrievalSvc := services.NewRetrievalService(verseRepo, embeddingsSvc)

	// Create API group with prefix
	api := e.Group(cfg.APIPrefix)

	// Register handlers
	healthHandler := handlers.NewHealthHandler(pgDB)
	healthHandler.RegisterRoutes(api)

	searchHandler := handlers.NewSearchHandler(retrievalSvc)
	searchHandler.RegisterRoutes(api)

	// Root health check
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Starting %s v%s on %s", cfg.APITitle, cfg.APIVersion, addr)
		if err := e.Start(addr); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := pgDB.Close(); err != nil {
		log.Printf("Error closing PostgreSQL: %v", err)
	}

	if err := embeddingsSvc.Close(); err != nil {
		log.Printf("Error closing embeddings service: %v", err)
	}

	log.Println("Server stopped")
}
