package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grooming-dashboard-backend/config"
	"grooming-dashboard-backend/internal/api"
	"grooming-dashboard-backend/internal/availability"
	"grooming-dashboard-backend/internal/db"
	"grooming-dashboard-backend/internal/geo"
	"grooming-dashboard-backend/internal/store"
	"grooming-dashboard-backend/internal/travel"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "grooming-backend ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	loc, err := time.LoadLocation(cfg.Search.Timezone)
	if err != nil {
		logger.Fatalf("failed to load timezone %q: %v", cfg.Search.Timezone, err)
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	appStore := store.NewGormStore(gormDB)
	logger.Println("data store initialized")

	// Travel-time oracle: HTTP matrix client behind a shared TTL cache.
	travelClient, err := travel.NewClient(&cfg.Travel)
	if err != nil {
		logger.Fatalf("failed to initialize travel client: %v", err)
	}
	oracle := travel.NewCachedOracle(travelClient, time.Duration(cfg.Travel.CacheTTLMinutes)*time.Minute)

	resolver := geo.NewClient(&cfg.Geo)

	searcher := availability.NewSearcher(resolver, oracle, loc, cfg.Travel.MaxConcurrent)

	// Initialize router
	handler := api.NewHandler(appStore, searcher, loc)
	router := api.NewRouter(&cfg.Server, handler)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
