package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mkn-console/internal/domain"
	"mkn-console/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func samplePost() *domain.Post {
	return &domain.Post{
		ID:           "post-1",
		Slug:         "fason-uretim-cozumleri",
		Title:        "Fason Üretim Çözümleri",
		Content:      "body",
		CategorySlug: "packaging",
		Status:       domain.PostStatusPublished,
		AuthorName:   "Meltem",
		CreatedAt:    time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestListPosts(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	h := NewPostHandler(mockService)

	mockService.EXPECT().
		ListPosts(mock.Anything, domain.PostFilter{CategorySlug: "packaging"}).
		Return([]domain.Post{*samplePost()}, nil)

	router := gin.New()
	router.GET("/posts", h.ListPosts)

	req := httptest.NewRequest(http.MethodGet, "/posts?category=packaging", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Posts []PostResponse `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Posts, 1)
	require.Equal(t, "fason-uretim-cozumleri", body.Posts[0].Slug)
}

func TestListPosts_ReservedCategoryMeansAll(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	h := NewPostHandler(mockService)

	// "all" is the synthetic list-view category, not a stored one
	mockService.EXPECT().
		ListPosts(mock.Anything, domain.PostFilter{}).
		Return([]domain.Post{}, nil)

	router := gin.New()
	router.GET("/posts", h.ListPosts)

	req := httptest.NewRequest(http.MethodGet, "/posts?category=all", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestListPosts_UnknownStatusRejected(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	h := NewPostHandler(mockService)

	router := gin.New()
	router.GET("/posts", h.ListPosts)

	req := httptest.NewRequest(http.MethodGet, "/posts?status=bogus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPost_NotFound(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	h := NewPostHandler(mockService)

	mockService.EXPECT().GetPost(mock.Anything, "missing").Return(nil, nil)

	router := gin.New()
	router.GET("/posts/:id", h.GetPost)

	req := httptest.NewRequest(http.MethodGet, "/posts/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePost(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	h := NewPostHandler(mockService)

	mockService.EXPECT().
		CreatePost(mock.Anything, mock.AnythingOfType("service.PostInput")).
		Return(samplePost(), nil)

	router := gin.New()
	router.POST("/posts", h.CreatePost)

	payload := `{"title":"Fason Üretim Çözümleri","content":"body","category":"packaging"}`
	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp PostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "post-1", resp.ID)
}

func TestCreatePost_MissingCategoryConflict(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	h := NewPostHandler(mockService)

	mockService.EXPECT().
		CreatePost(mock.Anything, mock.AnythingOfType("service.PostInput")).
		Return(nil, fmt.Errorf("category ghost does not exist: %w", domain.ErrConflict))

	router := gin.New()
	router.POST("/posts", h.CreatePost)

	payload := `{"title":"X","content":"body","category":"ghost"}`
	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCreatePost_ValidationErrorsAreBadRequest(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	h := NewPostHandler(mockService)

	mockService.EXPECT().
		CreatePost(mock.Anything, mock.AnythingOfType("service.PostInput")).
		Return(nil, validation.Errors{"title": validation.NewError("title_required", "title is required")})

	router := gin.New()
	router.POST("/posts", h.CreatePost)

	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewBufferString(`{"content":"body"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"fields"`)
	require.Contains(t, w.Body.String(), "title is required")
}

func TestDeletePost(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	h := NewPostHandler(mockService)

	mockService.EXPECT().DeletePost(mock.Anything, "post-1").Return(nil)

	router := gin.New()
	router.DELETE("/posts/:id", h.DeletePost)

	req := httptest.NewRequest(http.MethodDelete, "/posts/post-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteCategory_ReferencedConflict(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	h := NewCategoryHandler(mockService)

	mockService.EXPECT().
		DeleteCategory(mock.Anything, "cat-1").
		Return(fmt.Errorf("category packaging still has 3 posts: %w", domain.ErrConflict))

	router := gin.New()
	router.DELETE("/categories/:id", h.DeleteCategory)

	req := httptest.NewRequest(http.MethodDelete, "/categories/cat-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestRelatedPosts_BadLimit(t *testing.T) {
	mockService := mocks.NewMockContentServiceInterface(t)
	h := NewPostHandler(mockService)

	router := gin.New()
	router.GET("/posts/:id/related", h.RelatedPosts)

	req := httptest.NewRequest(http.MethodGet, "/posts/post-1/related?limit=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
