package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aryanshah010/payhive-web-application/internal/backend"
)

const (
	// AuthTokenCookie holds the opaque bearer token issued by the wallet
	// backend at login
	AuthTokenCookie = "payhive_token"

	// UserCookie holds the authenticated user's profile blob as JSON. It is
	// a rendering convenience; authorization always rides on the token.
	UserCookie = "payhive_user"

	authTokenKey   = "auth_token"
	currentUserKey = "current_user"
)

// Auth requires the bearer token cookie and stashes it, plus the decoded
// profile blob when present, in the request context. Requests without a
// token are rejected with 401.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthTokenCookie)
		if err != nil || token == "" {
			abortWithCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		c.Set(authTokenKey, token)

		if raw, err := c.Cookie(UserCookie); err == nil && raw != "" {
			var user backend.User
			if json.Unmarshal([]byte(raw), &user) == nil {
				c.Set(currentUserKey, user)
			}
		}

		c.Next()
	}
}

// RequireAdmin rejects requests whose profile blob is missing or not an
// admin. Must run after Auth. The backend re-checks the role on every
// admin call, so a forged cookie gains nothing past this gate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok || user.Role != "admin" {
			abortWithCode(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
			return
		}
		c.Next()
	}
}

// GetAuthToken retrieves the bearer token stored by Auth, empty if absent
func GetAuthToken(c *gin.Context) string {
	if v, exists := c.Get(authTokenKey); exists {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

// GetCurrentUser retrieves the profile blob stored by Auth
func GetCurrentUser(c *gin.Context) (backend.User, bool) {
	if v, exists := c.Get(currentUserKey); exists {
		if user, ok := v.(backend.User); ok {
			return user, true
		}
	}
	return backend.User{}, false
}

func abortWithCode(c *gin.Context, status int, code, message string) {
	response := gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
	if correlationID := GetCorrelationID(c); correlationID != "" {
		response["correlation_id"] = correlationID
	}
	c.AbortWithStatusJSON(status, response)
}
