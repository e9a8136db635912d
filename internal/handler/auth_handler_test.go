package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-event-program/internal/auth"
	"go-gin-event-program/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	verifier, err := auth.NewStaticAdminVerifier("admin", "rocher2025", "")
	require.NoError(t, err)

	router, api := newTestRouter()
	handler.NewAuthHandler(verifier, testTokens()).RegisterRoutes(api)
	// a protected probe route to check the issued token end to end
	api.GET("whoami", handler.RequireAdmin(testTokens()), func(c *gin.Context) {
		p, _ := handler.PrincipalFrom(c)
		c.JSON(http.StatusOK, p)
	})
	return router
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router := setupAuthTestRouter(t)

		req := createJSONHTTPRequest(http.MethodPost, "/api/admin/login", map[string]string{
			"username": "admin", "password": "rocher2025",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp handler.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, &auth.Principal{ID: "admin", Username: "admin", IsAdmin: true}, resp.User)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, withBearer(httptest.NewRequest(http.MethodGet, "/api/whoami", nil), resp.Token))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"admin","username":"admin","isAdmin":true}`, w.Body.String())
	})

	t.Run("Failed - wrong password", func(t *testing.T) {
		router := setupAuthTestRouter(t)

		req := createJSONHTTPRequest(http.MethodPost, "/api/admin/login", map[string]string{
			"username": "admin", "password": "nope",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, handler.CodeUnauthorized, decodeError(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("Failed - missing password", func(t *testing.T) {
		router := setupAuthTestRouter(t)

		req := createJSONHTTPRequest(http.MethodPost, "/api/admin/login", map[string]string{"username": "admin"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, handler.CodeValidation, decodeError(t, w.Body.Bytes()).Error.Code)
	})
}

func TestRequireAdmin_MalformedHeader(t *testing.T) {
	router := setupAuthTestRouter(t)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic YWRtaW46eA==", "token"} {
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}
