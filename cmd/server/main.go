package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AllenLeeyn/graphql/internal/config"
	"github.com/AllenLeeyn/graphql/internal/database"
	"github.com/AllenLeeyn/graphql/internal/handlers"
	"github.com/AllenLeeyn/graphql/internal/loader"
	"github.com/AllenLeeyn/graphql/internal/metrics"
	"github.com/AllenLeeyn/graphql/internal/middleware"
	"github.com/AllenLeeyn/graphql/internal/platform"
	"github.com/AllenLeeyn/graphql/internal/router"
	"github.com/AllenLeeyn/graphql/internal/session"
)

func main() {
	log.Println("🚀 Starting Profile Dashboard Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Redis Client ────
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClient.Close()
	log.Println("✓ Redis connected")

	// ──── Step 3: Initialize Platform Client ────
	platformClient := platform.NewClient(cfg.PlatformBaseURL)
	log.Printf("✓ Platform client initialized (%s)", cfg.PlatformBaseURL)

	// ──── Initialize Services ────
	sessionStore := session.NewRedisStore(redisClient)
	maxTTL := time.Duration(cfg.SessionTTLMaxHours) * time.Hour
	sessionManager := session.NewManager(platformClient, sessionStore, maxTTL)
	sessionAuth := middleware.NewSessionAuth(sessionManager)
	profileLoader := loader.New(platformClient)
	metricsManager := metrics.New()

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(sessionManager, metricsManager)
	profileHandler := handlers.NewProfileHandler(profileLoader, metricsManager)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(
		sessionAuth,
		authHandler,
		profileHandler,
		metricsManager,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Profile Dashboard Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API:     http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  Metrics: http://localhost:%s/metrics", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
