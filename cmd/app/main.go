package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cuotas/internal/config"
	"cuotas/internal/db"
	"cuotas/internal/logger"
	"cuotas/internal/preferences"
	"cuotas/internal/server"
	"cuotas/internal/subscription"
)

// @title Cuotas API
// @version 1.0
// @description Shared subscription expense tracker.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.InitWithLevel(cfg.LogLevel)
	logger.Info("Starting cuotas", "driver", cfg.DBDriver, "auth", cfg.AuthEnabled())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handle := db.NewHandle(cfg.DBDriver, cfg.DatabaseURL)
	defer handle.Close()

	database, err := handle.Get(ctx)
	if err != nil {
		logger.Fatalf("Failed to open store: %v", err)
	}
	logger.Info("Store ready")

	repo := subscription.NewRepository(database)
	session := subscription.NewSession(repo)
	pricing := subscription.NewPricing(cfg.GTQRate)

	var (
		prefs     preferences.Preferences
		forgetter subscription.Forgetter
	)
	if cfg.RedisAddr != "" {
		store := preferences.New(cfg.RedisAddr)
		defer store.Close()
		if err := store.Ping(ctx); err != nil {
			logger.Warn("Preferences store unreachable", "addr", cfg.RedisAddr, "error", err)
		}
		prefs = store
		forgetter = store
	}

	svc := subscription.NewService(repo, session, pricing, forgetter)
	if _, err := svc.List(ctx); err != nil {
		logger.Fatalf("Failed to load subscriptions: %v", err)
	}
	logger.Info("Session loaded", "subscriptions", session.Len())

	srv := server.New(server.Deps{
		Config:        cfg,
		Subscriptions: svc,
		Prefs:         prefs,
	})

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
