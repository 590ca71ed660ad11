package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mkn-console/internal/domain"
)

// categoryColumns selects category fields plus the virtual post count,
// computed on read rather than stored.
const categoryColumns = `c.id, c.name, c.slug, c.description,
	(SELECT COUNT(*) FROM blog_posts p WHERE p.category_slug = c.slug) AS count,
	c.created_at, c.updated_at`

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Count, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all categories ordered by name, with live post counts.
func (r *PostgresCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+categoryColumns+" FROM blog_categories c ORDER BY c.name")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

// GetByID returns the category with the given id, or nil when absent.
func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+categoryColumns+" FROM blog_categories c WHERE c.id = $1", id)
	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}
	return c, nil
}

// GetBySlug returns the category with the given slug, or nil when absent.
func (r *PostgresCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+categoryColumns+" FROM blog_categories c WHERE c.slug = $1 ORDER BY c.created_at LIMIT 1", slug)
	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category by slug %s: %w", slug, err)
	}
	return c, nil
}

// Create inserts the category; timestamps are assigned by the store.
func (r *PostgresCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO blog_categories (id, name, slug, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at`,
		category.ID, category.Name, category.Slug, category.Description,
	).Scan(&category.CreatedAt, &category.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("create category slug %s: %w", category.Slug, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// Update replaces name, slug and description, refreshing updated_at.
func (r *PostgresCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE blog_categories
		SET name = $2, slug = $3, description = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		category.ID, category.Name, category.Slug, category.Description,
	).Scan(&category.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update category %s: %w", category.ID, domain.ErrNotFound)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("update category slug %s: %w", category.Slug, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("update category %s: %w", category.ID, err)
	}
	return nil
}

// Delete removes the category. Deleting a missing id surfaces ErrNotFound.
// The referenced-category guard lives in the service layer.
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM blog_categories WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
