package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mkn-console/internal/composer"
	"mkn-console/internal/domain"
	"mkn-console/internal/service"
)

// ComposerHandler handles multi-platform social post HTTP requests.
type ComposerHandler struct {
	composerService service.ComposerServiceInterface
}

// NewComposerHandler creates a new ComposerHandler.
func NewComposerHandler(composerService service.ComposerServiceInterface) *ComposerHandler {
	return &ComposerHandler{composerService: composerService}
}

// SocialPostRequest represents the body for social post create and update.
type SocialPostRequest struct {
	Topic          string                               `json:"topic" binding:"required"`
	Tone           string                               `json:"tone"`
	TargetAudience string                               `json:"target_audience"`
	BrandContext   string                               `json:"brand_context"`
	Instructions   string                               `json:"instructions"`
	Status         string                               `json:"status"`
	ScheduledFor   *time.Time                           `json:"scheduled_for"`
	Platforms      []domain.PlatformID                  `json:"platforms" binding:"required"`
	Variants       map[domain.PlatformID]domain.Variant `json:"variants"`
}

func (r SocialPostRequest) toDomain(id string) *domain.SocialPost {
	return &domain.SocialPost{
		ID:             id,
		Topic:          r.Topic,
		Tone:           r.Tone,
		TargetAudience: r.TargetAudience,
		BrandContext:   r.BrandContext,
		Instructions:   r.Instructions,
		Status:         domain.PostStatus(r.Status),
		ScheduledFor:   r.ScheduledFor,
		Platforms:      r.Platforms,
		Variants:       r.Variants,
	}
}

// GeneratePlatformRequest selects the platform for single-variant generation.
type GeneratePlatformRequest struct {
	Platform domain.PlatformID `json:"platform" binding:"required"`
}

// ListSocialPosts handles GET /api/v1/social-posts
func (h *ComposerHandler) ListSocialPosts(c *gin.Context) {
	posts, err := h.composerService.ListSocialPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetSocialPost handles GET /api/v1/social-posts/:id
func (h *ComposerHandler) GetSocialPost(c *gin.Context) {
	post, err := h.composerService.GetSocialPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "social post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreateSocialPost handles POST /api/v1/social-posts
func (h *ComposerHandler) CreateSocialPost(c *gin.Context) {
	var req SocialPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = string(domain.PostStatusDraft)
	}

	post, err := h.composerService.CreateSocialPost(c.Request.Context(), req.toDomain(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdateSocialPost handles PUT /api/v1/social-posts/:id
func (h *ComposerHandler) UpdateSocialPost(c *gin.Context) {
	var req SocialPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = string(domain.PostStatusDraft)
	}

	post, err := h.composerService.UpdateSocialPost(c.Request.Context(), req.toDomain(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeleteSocialPost handles DELETE /api/v1/social-posts/:id
func (h *ComposerHandler) DeleteSocialPost(c *gin.Context) {
	if err := h.composerService.DeleteSocialPost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GeneratePlatform handles POST /api/v1/social-posts/:id/generate
func (h *ComposerHandler) GeneratePlatform(c *gin.Context) {
	var req GeneratePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.composerService.GeneratePlatform(c.Request.Context(), c.Param("id"), req.Platform)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GenerateAll handles POST /api/v1/social-posts/:id/generate-all
func (h *ComposerHandler) GenerateAll(c *gin.Context) {
	post, err := h.composerService.GenerateAll(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Budgets handles GET /api/v1/social-posts/:id/budgets
func (h *ComposerHandler) Budgets(c *gin.Context) {
	post, err := h.composerService.GetSocialPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "social post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"budgets": h.composerService.Budgets(post)})
}

// ListPlatforms handles GET /api/v1/platforms
func (h *ComposerHandler) ListPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platforms": composer.Platforms})
}
