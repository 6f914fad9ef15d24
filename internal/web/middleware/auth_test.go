package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryanshah010/payhive-web-application/internal/backend"
)

func userCookieValue(t *testing.T, user backend.User) string {
	t.Helper()
	blob, err := json.Marshal(user)
	require.NoError(t, err)
	return url.QueryEscape(string(blob))
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(handler gin.HandlerFunc) *gin.Engine {
		router := gin.New()
		router.Use(Auth())
		router.GET("/protected", handler)
		return router
	}

	t.Run("RejectsMissingToken", func(t *testing.T) {
		router := newRouter(func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "UNAUTHORIZED")
	})

	t.Run("ExposesTokenAndUser", func(t *testing.T) {
		var gotToken string
		var gotUser backend.User
		router := newRouter(func(c *gin.Context) {
			gotToken = GetAuthToken(c)
			gotUser, _ = GetCurrentUser(c)
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: AuthTokenCookie, Value: "token-123"})
		req.AddCookie(&http.Cookie{
			Name:  UserCookie,
			Value: userCookieValue(t, backend.User{ID: "u1", FullName: "Jane Doe", Role: "user"}),
		})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "token-123", gotToken)
		assert.Equal(t, "Jane Doe", gotUser.FullName)
	})

	t.Run("GarbageUserCookieStillAuthenticates", func(t *testing.T) {
		router := newRouter(func(c *gin.Context) {
			_, ok := GetCurrentUser(c)
			assert.False(t, ok)
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: AuthTokenCookie, Value: "token-123"})
		req.AddCookie(&http.Cookie{Name: UserCookie, Value: "not-json"})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRequireAdminMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(Auth(), RequireAdmin())
		router.GET("/admin", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	request := func(role string) *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: AuthTokenCookie, Value: "token-123"})
		if role != "" {
			blob, _ := json.Marshal(backend.User{ID: "u1", Role: role})
			req.AddCookie(&http.Cookie{Name: UserCookie, Value: url.QueryEscape(string(blob))})
		}
		return req
	}

	t.Run("AllowsAdmin", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newRouter().ServeHTTP(rr, request("admin"))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("RejectsNonAdmin", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newRouter().ServeHTTP(rr, request("user"))
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "FORBIDDEN")
	})

	t.Run("RejectsMissingProfile", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newRouter().ServeHTTP(rr, request(""))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
