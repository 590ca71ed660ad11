package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkn-console/internal/domain"
	"mkn-console/internal/repository"
)

func newTestCategory(name, slug string) *domain.Category {
	return &domain.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug,
		Description: "Kategori açıklaması",
	}
}

func TestPostgresCategoryRepository_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresCategoryRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("creates and reads back by id and slug", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_categories")

		category := newTestCategory("Ambalaj", "ambalaj")
		err := repo.Create(ctx, category)
		require.NoError(t, err)
		assert.False(t, category.CreatedAt.IsZero())

		byID, err := repo.GetByID(ctx, category.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "Ambalaj", byID.Name)
		assert.Equal(t, 0, byID.Count)

		bySlug, err := repo.GetBySlug(ctx, "ambalaj")
		require.NoError(t, err)
		require.NotNil(t, bySlug)
		assert.Equal(t, category.ID, bySlug.ID)
	})

	t.Run("duplicate slug returns conflict", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_categories")

		require.NoError(t, repo.Create(ctx, newTestCategory("Ambalaj", "ambalaj")))

		err := repo.Create(ctx, newTestCategory("Ambalaj Kopya", "ambalaj"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_categories")

		require.NoError(t, repo.Create(ctx, newTestCategory("Kozmetik", "kozmetik")))
		require.NoError(t, repo.Create(ctx, newTestCategory("Ambalaj", "ambalaj")))

		categories, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Ambalaj", categories[0].Name)
		assert.Equal(t, "Kozmetik", categories[1].Name)
	})

	t.Run("update replaces name slug and description", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_categories")

		category := newTestCategory("Ambalaj", "ambalaj")
		require.NoError(t, repo.Create(ctx, category))

		category.Name = "Ambalaj Üretimi"
		category.Slug = "ambalaj-uretimi"
		err := repo.Update(ctx, category)
		require.NoError(t, err)

		stored, err := repo.GetBySlug(ctx, "ambalaj-uretimi")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Ambalaj Üretimi", stored.Name)
	})

	t.Run("update unknown id returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_categories")

		err := repo.Update(ctx, newTestCategory("Hayalet", "hayalet"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_categories")

		category := newTestCategory("Silinecek", "silinecek")
		require.NoError(t, repo.Create(ctx, category))

		require.NoError(t, repo.Delete(ctx, category.ID))

		stored, err := repo.GetByID(ctx, category.ID)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("delete unknown id returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_categories")

		err := repo.Delete(ctx, uuid.New().String())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// TestPostgresCategoryRepository_VirtualCount covers the computed post count:
// it always reflects the live blog_posts table, with no stored counter to drift.
func TestPostgresCategoryRepository_VirtualCount(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	categoryRepo := repository.NewPostgresCategoryRepository(testDB.Pool)
	postRepo := repository.NewPostgresPostRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("count follows post creation and deletion", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_posts", "blog_categories")

		category := newTestCategory("Ambalaj", "ambalaj")
		require.NoError(t, categoryRepo.Create(ctx, category))

		first := newTestPost("sayilan-yazi-bir")
		second := newTestPost("sayilan-yazi-iki")
		require.NoError(t, postRepo.Create(ctx, first))
		require.NoError(t, postRepo.Create(ctx, second))

		stored, err := categoryRepo.GetByID(ctx, category.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 2, stored.Count)

		count, err := postRepo.CountByCategory(ctx, "ambalaj")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		require.NoError(t, postRepo.Delete(ctx, first.ID))

		stored, err = categoryRepo.GetByID(ctx, category.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 1, stored.Count)
	})

	t.Run("count scopes to the category slug", func(t *testing.T) {
		testDB.TruncateTables(t, "blog_posts", "blog_categories")

		ambalaj := newTestCategory("Ambalaj", "ambalaj")
		kozmetik := newTestCategory("Kozmetik", "kozmetik")
		require.NoError(t, categoryRepo.Create(ctx, ambalaj))
		require.NoError(t, categoryRepo.Create(ctx, kozmetik))

		post := newTestPost("kozmetik-yazisi")
		post.CategorySlug = "kozmetik"
		require.NoError(t, postRepo.Create(ctx, post))

		categories, err := categoryRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, 0, categories[0].Count)
		assert.Equal(t, 1, categories[1].Count)
	})
}
