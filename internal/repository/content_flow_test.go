package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkn-console/internal/domain"
	"mkn-console/internal/repository"
	"mkn-console/internal/service"
	"mkn-console/internal/validator"
)

// TestContentFlow drives the content service over real repositories through a
// full category lifecycle: a referenced category cannot be deleted until its
// posts are gone, and counts track the posts collection the whole way.
func TestContentFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	postRepo := repository.NewPostgresPostRepository(testDB.Pool)
	categoryRepo := repository.NewPostgresCategoryRepository(testDB.Pool)
	svc := service.NewContentService(postRepo, categoryRepo, validator.NewValidator())
	ctx := context.Background()

	testDB.TruncateTables(t, "blog_posts", "blog_categories")

	category, err := svc.CreateCategory(ctx, "Ambalaj Üretimi", "Ambalaj yazıları")
	require.NoError(t, err)
	assert.Equal(t, "ambalaj-uretimi", category.Slug)
	assert.Equal(t, 0, category.Count)

	title := "Sürdürülebilir Ambalaj Trendleri"
	content := "Uzun form içerik."
	author := "MKN Group"
	post, err := svc.CreatePost(ctx, service.PostInput{
		Title:        &title,
		Content:      &content,
		CategorySlug: &category.Slug,
		AuthorName:   &author,
	})
	require.NoError(t, err)
	assert.Equal(t, "surdurulebilir-ambalaj-trendleri", post.Slug)

	stored, err := svc.GetCategory(ctx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.Count)

	err = svc.DeleteCategory(ctx, category.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, svc.DeletePost(ctx, post.ID))

	stored, err = svc.GetCategory(ctx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 0, stored.Count)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))

	remaining, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
