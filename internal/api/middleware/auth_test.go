package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicorifa/rifa-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newProtectedRouter(t *testing.T, adminOnly bool) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()

	authenticator := NewAuthenticator(testSigningKey)
	handlers := []gin.HandlerFunc{authenticator.VerifyJWT()}
	if adminOnly {
		handlers = append(handlers, authenticator.RequireAdmin())
	}

	group := router.Group("/", handlers...)
	group.GET("/protected", func(ctx *gin.Context) {
		claims := GetClaims(ctx)
		require.NotNil(t, claims)
		ctx.JSON(http.StatusOK, gin.H{"subject_id": claims.SubjectID})
	})

	return router
}

func adminToken(t *testing.T) string {
	t.Helper()

	token, err := jwthelper.GenerateAdminToken([]byte(testSigningKey), 7, "root", "superadmin")
	require.NoError(t, err)

	return token
}

func clienteToken(t *testing.T) string {
	t.Helper()

	token, err := jwthelper.GenerateClienteToken([]byte(testSigningKey), 42, "ana@example.com")
	require.NoError(t, err)

	return token
}

func TestVerifyJWT(t *testing.T) {
	t.Run("no token is 401", func(t *testing.T) {
		router := newProtectedRouter(t, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"autenticación requerida"}`, w.Body.String())
	})

	t.Run("garbage bearer token is 401", func(t *testing.T) {
		router := newProtectedRouter(t, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another key is 401", func(t *testing.T) {
		router := newProtectedRouter(t, false)

		foreign, err := jwthelper.GenerateClienteToken([]byte("other-key"), 1, "a@b.com")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+foreign)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid bearer token passes", func(t *testing.T) {
		router := newProtectedRouter(t, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+clienteToken(t))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"subject_id":42}`, w.Body.String())
	})

	t.Run("admin cookie works without a header", func(t *testing.T) {
		router := newProtectedRouter(t, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: adminToken(t)})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("cliente token on an admin route is 403", func(t *testing.T) {
		router := newProtectedRouter(t, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+clienteToken(t))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin token passes", func(t *testing.T) {
		router := newProtectedRouter(t, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken(t))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
