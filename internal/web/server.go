// Package web is the HTTP surface of the application: a gin server that
// fronts the wallet backend for authentication, profile and admin
// management, and hosts the server-side send-money wizard.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aryanshah010/payhive-web-application/internal/backend"
	"github.com/Aryanshah010/payhive-web-application/internal/config"
	"github.com/Aryanshah010/payhive-web-application/internal/session"
	"github.com/Aryanshah010/payhive-web-application/internal/web/handler"
)

// Server handles HTTP requests and manages the application's lifecycle
type Server struct {
	logger     *slog.Logger // For structured logging
	httpServer *http.Server // Underlying HTTP server
	httpRouter *gin.Engine  // Gin router instance
}

// NewServer creates and configures a new HTTP server over the given backend
// client and wizard session store
func NewServer(log *slog.Logger, cfg *config.Config, client *backend.Client, sessions *session.Store) *Server {
	if cfg.Application.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	httpRouter := gin.New()

	cookieSecure := cfg.Session.CookieSecure
	authHandler := handler.NewAuthHandler(log, client, sessions, cookieSecure)
	profileHandler := handler.NewProfileHandler(log, client, cookieSecure)
	adminHandler := handler.NewAdminUserHandler(log, client)
	transferHandler := handler.NewTransferHandler(log, sessions, cookieSecure)

	setupRouter(log, httpRouter, authHandler, profileHandler, adminHandler, transferHandler)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      httpRouter,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		logger:     log,
		httpServer: httpServer,
		httpRouter: httpRouter,
	}
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server with a timeout
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.httpServer.WriteTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop HTTP server: %w", err)
	}

	return nil
}
