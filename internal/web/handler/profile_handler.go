package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Aryanshah010/payhive-web-application/internal/backend"
	"github.com/Aryanshah010/payhive-web-application/internal/validation"
	"github.com/Aryanshah010/payhive-web-application/internal/web/middleware"
)

// maxAvatarBytes caps avatar uploads to the backend's limit
const maxAvatarBytes = 5 << 20

var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// ProfileHandler handles the authenticated user's own profile
type ProfileHandler struct {
	logger       *slog.Logger
	client       *backend.Client
	cookieSecure bool
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(logger *slog.Logger, client *backend.Client, cookieSecure bool) *ProfileHandler {
	return &ProfileHandler{
		logger:       logger,
		client:       client,
		cookieSecure: cookieSecure,
	}
}

// Update changes the caller's name, password or avatar. The body is
// multipart form data because of the optional image; blank fields are left
// unchanged. On success the profile cookie is refreshed so the UI picks up
// the new name and avatar immediately.
func (h *ProfileHandler) Update(c *gin.Context) {
	input := validation.UpdateProfileInput{
		FullName: strings.TrimSpace(c.PostForm("fullName")),
		Password: c.PostForm("password"),
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
	user, err := h.client.UpdateProfile(ctx, backend.ProfileUpdate{
		FullName: input.FullName,
		Password: input.Password,
		Avatar:   avatar,
	})
	if err != nil {
		RespondBackendError(c, h.logger, err)
		return
	}

	h.refreshUserCookie(c, user)
	RespondOK(c, user)
}

func (h *ProfileHandler) refreshUserCookie(c *gin.Context, user *backend.User) {
	blob, err := json.Marshal(user)
	if err != nil {
		h.logger.Error("Failed to encode user cookie", "error", err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.UserCookie, string(blob), authCookieMaxAge, "/", "", h.cookieSecure, false)
}

// readAvatar loads an optional uploaded image, enforcing the size cap and
// the allowed formats. A missing file is not an error.
func readAvatar(c *gin.Context, field string) (*backend.Upload, *validation.FieldError) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	if fileHeader.Size > maxAvatarBytes {
		return nil, &validation.FieldError{Field: field, Message: "File size must be less than 5MB"}
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedAvatarTypes[contentType] {
		return nil, &validation.FieldError{Field: field, Message: "Only JPG, JPEG, PNG, and WEBP formats are allowed"}
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, &validation.FieldError{Field: field, Message: "Could not read uploaded file"}
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, &validation.FieldError{Field: field, Message: "Could not read uploaded file"}
	}

	return &backend.Upload{
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Content:     content,
	}, nil
}
