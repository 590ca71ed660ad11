package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// healthPingTimeout bounds the store check so probes answer promptly even
// when the database is wedged.
const healthPingTimeout = 2 * time.Second

// HealthHandler serves the liveness/readiness endpoints.
type HealthHandler struct {
	db      *pgxpool.Pool
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *pgxpool.Pool, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services,omitempty"`
}

func (h *HealthHandler) storeHealthy(c *gin.Context) bool {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()
	return h.db.Ping(ctx) == nil
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:   "healthy",
		Version:  h.version,
		Services: map[string]string{"database": "healthy"},
	}
	if !h.storeHealthy(c) {
		resp.Status = "unhealthy"
		resp.Services["database"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ready handles GET /ready. The console is ready once the store answers.
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.storeHealthy(c) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
