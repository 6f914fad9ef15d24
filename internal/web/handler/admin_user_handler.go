package handler

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Aryanshah010/payhive-web-application/internal/backend"
	"github.com/Aryanshah010/payhive-web-application/internal/validation"
	"github.com/Aryanshah010/payhive-web-application/internal/web/middleware"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// AdminUserHandler handles the administrator's user management surface
type AdminUserHandler struct {
	logger *slog.Logger
	client *backend.Client
}

// NewAdminUserHandler creates a new admin user handler
func NewAdminUserHandler(logger *slog.Logger, client *backend.Client) *AdminUserHandler {
	return &AdminUserHandler{
		logger: logger,
		client: client,
	}
}

// List returns one page of users, optionally filtered by a search term and
// role
func (h *AdminUserHandler) List(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), defaultPage)
	limit := parsePositiveInt(c.Query("limit"), defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}

	search := strings.TrimSpace(c.Query("search"))
	role := c.Query("role")
	if role != "" && role != "user" && role != "admin" {
		RespondBadRequest(c, "Role must be user or admin")
		return
	}

	ctx := backend.WithToken(c.Request.Context(), middleware.GetAuthToken(c))
	result, err := h.client.ListUsers(ctx, page, limit, search, role)
	if err != nil {
		RespondBackendError(c, h.logger, err)
		return
	}

	RespondWithPage(c, result.Users, result.Page, result.Limit, result.TotalPages, result.Total)
}

// Get returns a single user by ID
func (h *AdminUserHandler) Get(c *gin.Context) {
	ctx := backend.WithToken(c.Request.Context(), middleware.GetAuthToken(c))
	user, err := h.client.GetUser(ctx, c.Param("id"))
	if err != nil {
		RespondBackendError(c, h.logger, err)
		return
	}
	RespondOK(c, user)
}

// Create creates a user on behalf of an administrator. The body is
// multipart form data because of the optional avatar.
func (h *AdminUserHandler) Create(c *gin.Context) {
	input := validation.AdminUserInput{
		FullName:        strings.TrimSpace(c.PostForm("fullName")),
		PhoneNumber:     strings.TrimSpace(c.PostForm("phoneNumber")),
		Email:           strings.TrimSpace(c.PostForm("email")),
		Role:            c.PostForm("role"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirmPassword"),
	}
	errs := input.Validate()

	avatar, avatarErr := readAvatar(c, "imageUrl")
	if avatarErr != nil {
		errs = append(errs, *avatarErr)
	}
	if errs != nil {
		RespondValidationFailed(c, errs)
		return
	}

	ctx := backend.WithToken(c.Request.Context(), middleware.GetAuthToken(c))
	user, err := h.client.CreateUser(ctx, backend.AdminUserPayload{
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Role:        input.Role,
		Password:    input.Password,
		Avatar:      avatar,
	})
	if err != nil {
		RespondBackendError(c, h.logger, err)
		return
	}

	h.logger.Info("Admin created user", "user_id", user.ID)
	RespondCreated(c, user)
}

// Update edits a user by ID. A blank password pair leaves the password
// unchanged.
func (h *AdminUserHandler) Update(c *gin.Context) {
	input := validation.AdminUserEditInput{
		FullName:        strings.TrimSpace(c.PostForm("fullName")),
		PhoneNumber:     strings.TrimSpace(c.PostForm("phoneNumber")),
		Email:           strings.TrimSpace(c.PostForm("email")),
		Role:            c.PostForm("role"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirmPassword"),
	}
	errs := input.Validate()

	avatar, avatarErr := readAvatar(c, "imageUrl")
	if avatarErr != nil {
		errs = append(errs, *avatarErr)
	}
	if errs != nil {
		RespondValidationFailed(c, errs)
		return
	}

	ctx := backend.WithToken(c.Request.Context(), middleware.GetAuthToken(c))
	user, err := h.client.UpdateUser(ctx, c.Param("id"), backend.AdminUserPayload{
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Role:        input.Role,
		Password:    strings.TrimSpace(input.Password),
		Avatar:      avatar,
	})
	if err != nil {
		RespondBackendError(c, h.logger, err)
		return
	}

	RespondOK(c, user)
}

// Delete removes a user by ID
func (h *AdminUserHandler) Delete(c *gin.Context) {
	ctx := backend.WithToken(c.Request.Context(), middleware.GetAuthToken(c))
	if err := h.client.DeleteUser(ctx, c.Param("id")); err != nil {
		RespondBackendError(c, h.logger, err)
		return
	}

	h.logger.Info("Admin deleted user", "user_id", c.Param("id"))
	RespondNoContent(c)
}

func parsePositiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
