package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aryanshah010/payhive-web-application/internal/backend"
	"github.com/Aryanshah010/payhive-web-application/internal/session"
	"github.com/Aryanshah010/payhive-web-application/internal/validation"
	"github.com/Aryanshah010/payhive-web-application/internal/web/middleware"
)

// authCookieMaxAge matches the backend token's validity window
const authCookieMaxAge = int((7 * 24 * time.Hour) / time.Second)

// AuthHandler handles registration, login, logout and password reset
type AuthHandler struct {
	logger       *slog.Logger
	client       *backend.Client
	sessions     *session.Store
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(logger *slog.Logger, client *backend.Client, sessions *session.Store, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		logger:       logger,
		client:       client,
		sessions:     sessions,
		cookieSecure: cookieSecure,
	}
}

// Register creates a new wallet account
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}

	input := validation.RegisterInput{
		FullName:        req.FullName,
		PhoneNumber:     req.PhoneNumber,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}
	if errs := input.Validate(); errs != nil {
		RespondValidationFailed(c, errs)
		return
	}

	user, err := h.client.Register(c.Request.Context(), backend.RegisterPayload{
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Password:    input.Password,
	})
	if err != nil {
		RespondBackendError(c, h.logger, err)
		return
	}

	h.logger.Info("User registered", "user_id", user.ID)
	RespondCreated(c, user)
}

// Login authenticates against the backend and establishes the cookie
// session: the bearer token in an HttpOnly cookie plus the profile blob in
// a readable one
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}

	input := validation.LoginInput{
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	}
	if errs := input.Validate(); errs != nil {
		RespondValidationFailed(c, errs)
		return
	}

	result, err := h.client.Login(c.Request.Context(), backend.LoginPayload{
		PhoneNumber: input.PhoneNumber,
		Password:    input.Password,
	})
	if err != nil {
		RespondBackendError(c, h.logger, err)
		return
	}

	h.setAuthCookies(c, result)
	h.logger.Info("User logged in", "user_id", result.User.ID)
	RespondOK(c, result.User)
}

// Logout clears the cookie session and discards the wizard session, if any
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(WizardSessionCookie); err == nil && id != "" {
		h.sessions.Delete(id)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthTokenCookie, "", -1, "/", "", h.cookieSecure, true)
	c.SetCookie(middleware.UserCookie, "", -1, "/", "", h.cookieSecure, false)
	c.SetCookie(WizardSessionCookie, "", -1, "/", "", h.cookieSecure, true)

	RespondOK(c, gin.H{"loggedOut": true})
}

// ForgotPassword asks the backend to start a password reset
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}

	input := validation.ForgotPasswordInput{PhoneNumber: req.PhoneNumber}
	if errs := input.Validate(); errs != nil {
		RespondValidationFailed(c, errs)
		return
	}

	if err := h.client.RequestPasswordReset(c.Request.Context(), input.PhoneNumber); err != nil {
		RespondBackendError(c, h.logger, err)
		return
	}

	RespondOK(c, gin.H{"sent": true})
}

// ResetPassword completes a password reset with the token the user received
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}

	input := validation.ResetPasswordInput{
		Token:           req.Token,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}
	if errs := input.Validate(); errs != nil {
		RespondValidationFailed(c, errs)
		return
	}

	if err := h.client.ResetPassword(c.Request.Context(), input.Token, input.Password); err != nil {
		RespondBackendError(c, h.logger, err)
		return
	}

	RespondOK(c, gin.H{"reset": true})
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, result *backend.LoginResult) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthTokenCookie, result.Token, authCookieMaxAge, "/", "", h.cookieSecure, true)

	blob, err := json.Marshal(result.User)
	if err != nil {
		h.logger.Error("Failed to encode user cookie", "error", err)
		return
	}
	c.SetCookie(middleware.UserCookie, string(blob), authCookieMaxAge, "/", "", h.cookieSecure, false)
}
