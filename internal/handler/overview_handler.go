package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mkn-console/internal/service"
)

// OverviewHandler serves the dashboard's initial data set.
type OverviewHandler struct {
	overviewService service.OverviewServiceInterface
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(overviewService service.OverviewServiceInterface) *OverviewHandler {
	return &OverviewHandler{overviewService: overviewService}
}

// Overview handles GET /api/v1/overview
func (h *OverviewHandler) Overview(c *gin.Context) {
	overview, err := h.overviewService.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
