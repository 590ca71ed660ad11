package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mkn-console/internal/logger"
	"mkn-console/internal/metrics"
	"mkn-console/internal/permission"
)

const (
	// SessionKey is the context key for the resolved session
	SessionKey = "session"
	// AuthorizationHeader carries the bearer token
	AuthorizationHeader = "Authorization"
)

// Session middleware resolves the bearer token to a console session once per
// request. Requests without a resolvable session are rejected before any
// handler runs.
func Session(resolver permission.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader(AuthorizationHeader))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		session, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Error("session resolve failed", "error", err, "request_id", GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session resolution failed"})
			return
		}
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown session token"})
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// RequirePermission gates a route on the given permission key. A session that
// does not grant the key gets 403; a missing session gets 401.
func RequirePermission(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			return
		}
		if !permission.Can(session, key) {
			metrics.PermissionDenials.WithLabelValues(key, string(session.Role)).Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied: " + key})
			return
		}
		c.Next()
	}
}

// GetSession retrieves the resolved session from the gin context.
func GetSession(c *gin.Context) *permission.Session {
	if v, exists := c.Get(SessionKey); exists {
		if s, ok := v.(*permission.Session); ok {
			return s
		}
	}
	return nil
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(header)
}
