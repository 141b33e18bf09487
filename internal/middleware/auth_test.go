package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/service"
)

const testSecret = "test-secret"

func newProtectedRouter(t *testing.T, adminOnly bool, handlerCalled *bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := service.NewTokenService(testSecret)

	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop()))

	chain := []gin.HandlerFunc{middleware.Authenticate(tokens, zap.NewNop())}
	if adminOnly {
		chain = append(chain, middleware.RequireAdmin())
	}
	chain = append(chain, func(c *gin.Context) {
		if handlerCalled != nil {
			*handlerCalled = true
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"userID":  c.MustGet(middleware.ContextUserID),
			"email":   c.MustGet(middleware.ContextEmail),
			"role":    c.MustGet(middleware.ContextRole),
		})
	})

	r.GET("/protected", chain...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	called := false
	r := newProtectedRouter(t, false, &called)

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called, "handler must not run")
	assert.JSONEq(t, `{"success":false,"error":"Access denied. No token provided."}`, w.Body.String())
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	called := false
	r := newProtectedRouter(t, false, &called)

	for _, header := range []string{"Bearer", "Token abc", "Bearer a b", "justatoken"} {
		w := doGet(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
	assert.False(t, called)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	called := false
	r := newProtectedRouter(t, false, &called)

	w := doGet(r, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"success":false,"error":"Invalid or expired token."}`, w.Body.String())
}

func TestAuthenticate_ValidTokenResolvesIdentity(t *testing.T) {
	r := newProtectedRouter(t, false, nil)

	token, err := service.NewTokenService(testSecret).Issue("user-1", "a@x.com", models.RoleUser)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-1", body["userID"])
	assert.Equal(t, "a@x.com", body["email"])
	assert.Equal(t, models.RoleUser, body["role"])
}

func TestRequireAdmin_UserRoleForbidden(t *testing.T) {
	called := false
	r := newProtectedRouter(t, true, &called)

	token, err := service.NewTokenService(testSecret).Issue("user-1", "a@x.com", models.RoleUser)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called, "role check must precede the handler")
	assert.JSONEq(t, `{"success":false,"error":"Access denied. Admin privileges required."}`, w.Body.String())
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	called := false
	r := newProtectedRouter(t, true, &called)

	token, err := service.NewTokenService(testSecret).Issue("admin-1", "admin@x.com", models.RoleAdmin)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestRequireAdmin_NoIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop()))
	// RequireAdmin wired without Authenticate: no identity on the context.
	r.GET("/protected", middleware.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
