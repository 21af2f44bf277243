package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiesbnb/pkg/utils"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("/", JWTAuthMiddleware())
	authed.GET("/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   c.GetString("user_id"),
			"user_type": c.GetString("user_type"),
		})
	})
	restaurantOnly := authed.Group("/", RoleMiddleware("restaurant"))
	restaurantOnly.POST("/collaborations", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestMissingTokenRejected(t *testing.T) {
	r := newProtectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMalformedHeaderRejected(t *testing.T) {
	r := newProtectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidTokenPassesClaimsThrough(t *testing.T) {
	utils.SetJWTKey("test-secret")
	r := newProtectedRouter()

	userID := uuid.New()
	token, err := utils.CreateToken(userID, "maria@example.com", "creator")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "creator")
}

func TestRoleMiddlewareBlocksWrongRole(t *testing.T) {
	utils.SetJWTKey("test-secret")
	r := newProtectedRouter()

	token, err := utils.CreateToken(uuid.New(), "maria@example.com", "creator")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/collaborations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleMiddlewareAllowsMatchingRole(t *testing.T) {
	utils.SetJWTKey("test-secret")
	r := newProtectedRouter()

	token, err := utils.CreateToken(uuid.New(), "owner@example.com", "restaurant")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/collaborations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
