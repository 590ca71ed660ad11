package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mkn-console/internal/middleware"
	"mkn-console/internal/permission"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func sessionRouter(resolver permission.Resolver, key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", middleware.Session(resolver))
	group.GET("/guarded", middleware.RequirePermission(key), func(c *gin.Context) {
		session := middleware.GetSession(c)
		c.JSON(http.StatusOK, gin.H{"user": session.UserID})
	})
	return router
}

func TestSession_MissingToken(t *testing.T) {
	router := sessionRouter(permission.NewStaticResolver(), permission.KeyBlogRead)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession_UnknownToken(t *testing.T) {
	router := sessionRouter(permission.NewStaticResolver(), permission.KeyBlogRead)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer nope")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePermission_Granted(t *testing.T) {
	resolver := permission.NewStaticResolver()
	resolver.Set("tok-editor", &permission.Session{
		UserID: "u-1",
		Role:   permission.RoleEditor,
	})
	router := sessionRouter(resolver, permission.KeyBlogWrite)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer tok-editor")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-1")
}

func TestRequirePermission_Denied(t *testing.T) {
	resolver := permission.NewStaticResolver()
	resolver.Set("tok-viewer", &permission.Session{
		UserID: "u-2",
		Role:   permission.RoleViewer,
	})
	router := sessionRouter(resolver, permission.KeyBlogDelete)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer tok-viewer")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermission_LegacyAliasGrant(t *testing.T) {
	resolver := permission.NewStaticResolver()
	resolver.Set("tok-legacy", &permission.Session{
		UserID: "u-3",
		Role:   permission.RoleViewer,
		Grants: map[string]bool{"canManageBlog": true},
	})
	router := sessionRouter(resolver, permission.KeyBlogWrite)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer tok-legacy")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerToken_PlainTokenAccepted(t *testing.T) {
	resolver := permission.NewStaticResolver()
	resolver.Set("raw-token", &permission.Session{
		UserID: "u-4",
		Role:   permission.RoleSuperAdmin,
	})
	router := sessionRouter(resolver, permission.KeyUsersWrite)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "raw-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
