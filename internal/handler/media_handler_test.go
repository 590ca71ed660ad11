package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mkn-console/internal/client/images"
	"mkn-console/internal/mocks"
)

func TestSearchImages(t *testing.T) {
	searcher := mocks.NewMockImageSearcher(t)
	h := NewMediaHandler(searcher)

	searcher.EXPECT().
		Search(mock.Anything, "packaging", DefaultImageSearchLimit).
		Return([]images.Image{
			{ID: "img-1", URL: "https://img.example/1.jpg", Width: 1200, Height: 800},
		}, nil)

	router := gin.New()
	router.GET("/images/search", h.SearchImages)

	req := httptest.NewRequest(http.MethodGet, "/images/search?q=packaging", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Images []images.Image `json:"images"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Images, 1)
	require.Equal(t, "img-1", body.Images[0].ID)
}

func TestSearchImages_MissingQuery(t *testing.T) {
	searcher := mocks.NewMockImageSearcher(t)
	h := NewMediaHandler(searcher)

	router := gin.New()
	router.GET("/images/search", h.SearchImages)

	req := httptest.NewRequest(http.MethodGet, "/images/search", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchImages_SupersededSearchIsNoContent(t *testing.T) {
	searcher := mocks.NewMockImageSearcher(t)
	h := NewMediaHandler(searcher)

	// A newer search canceled this one; the stale caller gets nothing
	searcher.EXPECT().
		Search(mock.Anything, "old query", 5).
		Return(nil, context.Canceled)

	router := gin.New()
	router.GET("/images/search", h.SearchImages)

	req := httptest.NewRequest(http.MethodGet, "/images/search?q=old+query&limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
}
