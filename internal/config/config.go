// Package config provides configuration structures and validation for the
// application. It handles environment-based configuration for the HTTP
// server, the wallet backend connection, sessions and logging.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds the complete application configuration. Each field represents
// a major subsystem's configuration and is validated during application
// startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Backend     BackendConfig
	Session     SessionConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// BackendConfig contains the wallet backend connection settings
type BackendConfig struct {
	BaseURL string        // Base URL of the wallet backend REST API
	Timeout time.Duration // Per-request timeout for backend calls
}

// SessionConfig contains wizard session and cookie settings
type SessionConfig struct {
	TTL           time.Duration // Idle lifetime of a wizard session
	SweepInterval time.Duration // How often expired sessions are collected
	CookieSecure  bool          // Mark session cookies Secure
}

// validate performs validation of all configuration values, ensuring they
// meet minimum requirements and logical constraints
func (c *Config) validate() error {
	var validationErrors []string

	// Validate Server config
	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	// Validate backend config
	if c.Backend.BaseURL == "" {
		validationErrors = append(validationErrors, "BACKEND_BASE_URL is required")
	}
	if c.Backend.Timeout <= 0 {
		validationErrors = append(validationErrors, "BACKEND_TIMEOUT must be greater than 0")
	}

	// Validate session config
	if c.Session.TTL <= 0 {
		validationErrors = append(validationErrors, "SESSION_TTL must be greater than 0")
	}
	if c.Session.SweepInterval <= 0 {
		validationErrors = append(validationErrors, "SESSION_SWEEP_INTERVAL must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
