package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Aryanshah010/payhive-web-application/internal/backend"
	"github.com/Aryanshah010/payhive-web-application/internal/config"
	"github.com/Aryanshah010/payhive-web-application/internal/logger"
	"github.com/Aryanshah010/payhive-web-application/internal/sendmoney"
	"github.com/Aryanshah010/payhive-web-application/internal/session"
	"github.com/Aryanshah010/payhive-web-application/internal/web"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig("web")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize the wallet backend client and the send-money action layer
	client := backend.NewClient(log, &cfg.Backend)
	actions := sendmoney.NewBackendActions(log, client)

	// Initialize the wizard session store and start its sweeper
	sessions := session.NewStore(log, func() *sendmoney.Wizard {
		return sendmoney.NewWizard(log, actions)
	}, cfg.Session.TTL, cfg.Session.SweepInterval)
	sessions.Start()

	// Initialize REST server
	server := web.NewServer(log, cfg, client, sessions)
	log.Info("Web server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	sessions.Stop()

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
