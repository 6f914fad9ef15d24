package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aryanshah010/payhive-web-application/internal/web/handler"
	"github.com/Aryanshah010/payhive-web-application/internal/web/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	adminHandler *handler.AdminUserHandler,
	transferHandler *handler.TransferHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	api := r.Group("/api")
	{
		// Authentication and password reset
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// Self-service profile
		api.PUT("/profile", middleware.Auth(), profileHandler.Update)

		// Admin user management
		admin := api.Group("/admin", middleware.Auth(), middleware.RequireAdmin())
		{
			users := admin.Group("/users")
			{
				users.POST("", adminHandler.Create)
				users.GET("", adminHandler.List)
				users.GET("/:id", adminHandler.Get)
				users.PUT("/:id", adminHandler.Update)
				users.DELETE("/:id", adminHandler.Delete)
			}
		}

		// Send-money wizard
		transfer := api.Group("/transfer", middleware.Auth())
		{
			transfer.GET("", transferHandler.State)
			transfer.POST("/recipient", transferHandler.SubmitRecipient)
			transfer.POST("/amount", transferHandler.SubmitAmount)
			transfer.POST("/pin", transferHandler.SubmitPin)
			transfer.POST("/back", transferHandler.Back)
			transfer.POST("/reset", transferHandler.Reset)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
