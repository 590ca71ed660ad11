package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mkn-console/internal/service"
)

// DefaultImageSearchLimit bounds image searches when the caller gives no limit.
const DefaultImageSearchLimit = 20

// MediaHandler handles stock image search requests.
type MediaHandler struct {
	searcher service.ImageSearcher
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(searcher service.ImageSearcher) *MediaHandler {
	return &MediaHandler{searcher: searcher}
}

// SearchImages handles GET /api/v1/images/search?q=&limit=
func (h *MediaHandler) SearchImages(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	limit := DefaultImageSearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	results, err := h.searcher.Search(c.Request.Context(), query, limit)
	if err != nil {
		// A search superseded by a newer one is not a failure the caller
		// cares about.
		if errors.Is(err, context.Canceled) {
			c.Status(http.StatusNoContent)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": results})
}
