package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mkn-console/internal/domain"
	"mkn-console/internal/service"
)

// PostHandler handles blog post HTTP requests.
type PostHandler struct {
	contentService service.ContentServiceInterface
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(contentService service.ContentServiceInterface) *PostHandler {
	return &PostHandler{contentService: contentService}
}

// PostRequest carries post fields for create and update. Absent fields are
// left untouched on update.
type PostRequest struct {
	Title         *string    `json:"title"`
	Excerpt       *string    `json:"excerpt"`
	Content       *string    `json:"content"`
	Category      *string    `json:"category"`
	Tags          []string   `json:"tags"`
	Status        *string    `json:"status"`
	Featured      *bool      `json:"featured"`
	CoverImageURL *string    `json:"cover_image_url"`
	AuthorName    *string    `json:"author_name"`
	ScheduledFor  *time.Time `json:"scheduled_for"`
	PublishedAt   *time.Time `json:"published_at"`
}

func (r PostRequest) toInput() service.PostInput {
	return service.PostInput{
		Title:         r.Title,
		Excerpt:       r.Excerpt,
		Content:       r.Content,
		CategorySlug:  r.Category,
		Tags:          r.Tags,
		Status:        r.Status,
		Featured:      r.Featured,
		CoverImageURL: r.CoverImageURL,
		AuthorName:    r.AuthorName,
		ScheduledFor:  r.ScheduledFor,
		PublishedAt:   r.PublishedAt,
	}
}

// PostResponse represents a blog post in the API response.
type PostResponse struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Excerpt       *string  `json:"excerpt,omitempty"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags,omitempty"`
	Status        string   `json:"status"`
	Featured      bool     `json:"featured"`
	CoverImageURL *string  `json:"cover_image_url,omitempty"`
	AuthorName    string   `json:"author_name"`
	ScheduledFor  *string  `json:"scheduled_for,omitempty"`
	PublishedAt   *string  `json:"published_at,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// toPostResponse converts a domain.Post to a PostResponse.
func toPostResponse(p *domain.Post) PostResponse {
	return PostResponse{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		Category:      p.CategorySlug,
		Tags:          p.Tags,
		Status:        string(p.Status),
		Featured:      p.Featured,
		CoverImageURL: p.CoverImageURL,
		AuthorName:    p.AuthorName,
		ScheduledFor:  formatTimePtr(p.ScheduledFor),
		PublishedAt:   formatTimePtr(p.PublishedAt),
		CreatedAt:     p.CreatedAt.Format(TimeFormat),
		UpdatedAt:     p.UpdatedAt.Format(TimeFormat),
	}
}

func toPostResponses(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, len(posts))
	for i := range posts {
		out[i] = toPostResponse(&posts[i])
	}
	return out
}

// ListPosts handles GET /api/v1/posts?category=&status=&featured=
func (h *PostHandler) ListPosts(c *gin.Context) {
	filter := domain.PostFilter{
		CategorySlug: c.Query("category"),
		Status:       domain.PostStatus(c.Query("status")),
		FeaturedOnly: c.Query("featured") == "true",
	}
	if filter.Status != "" && !domain.IsValidPostStatus(string(filter.Status)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + string(filter.Status)})
		return
	}
	// The synthetic "all posts" category means no category constraint.
	if filter.CategorySlug == domain.ReservedCategorySlug {
		filter.CategorySlug = ""
	}

	posts, err := h.contentService.ListPosts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": toPostResponses(posts)})
}

// GetPost handles GET /api/v1/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.contentService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}

// GetPostBySlug handles GET /api/v1/posts/slug/:slug
func (h *PostHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.contentService.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}

// CreatePost handles POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.contentService.CreatePost(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPostResponse(post))
}

// UpdatePost handles PUT /api/v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.contentService.UpdatePost(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}

// DeletePost handles DELETE /api/v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.contentService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RelatedPosts handles GET /api/v1/posts/:id/related?limit=
func (h *PostHandler) RelatedPosts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}

	posts, err := h.contentService.RelatedPosts(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": toPostResponses(posts)})
}

// PostStats handles GET /api/v1/posts/stats
func (h *PostHandler) PostStats(c *gin.Context) {
	stats, err := h.contentService.PostStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
