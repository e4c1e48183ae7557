package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelaney/ratemyclass/internal/pkg/auth"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "middleware-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "ratemyclass-test",
	})
	m := NewAuthMiddleware(jwtSvc)

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString(ContextUsername),
			"role":     c.GetString(ContextRole),
		})
	})
	router.POST("/admin-only", m.JWTAuth(), m.RoleRequired("admin"), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router, jwtSvc
}

func doRequest(router *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router, _ := setupAuthRouter(t)
	w := doRequest(router, http.MethodGet, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router, _ := setupAuthRouter(t)
	w := doRequest(router, http.MethodGet, "/protected", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router, _ := setupAuthRouter(t)
	w := doRequest(router, http.MethodGet, "/protected", "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	router, jwtSvc := setupAuthRouter(t)

	token, _, err := jwtSvc.GenerateToken("courseadmin", "admin")
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "courseadmin")
}

func TestRoleRequired_AdminAllowed(t *testing.T) {
	router, jwtSvc := setupAuthRouter(t)

	token, _, err := jwtSvc.GenerateToken("courseadmin", "admin")
	require.NoError(t, err)

	w := doRequest(router, http.MethodPost, "/admin-only", "Bearer "+token)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRoleRequired_NonAdminForbidden(t *testing.T) {
	router, jwtSvc := setupAuthRouter(t)

	token, _, err := jwtSvc.GenerateToken("student", "user")
	require.NoError(t, err)

	w := doRequest(router, http.MethodPost, "/admin-only", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
