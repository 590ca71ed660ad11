package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mkn-console/internal/domain"
)

const pgUniqueViolation = "23505"

// postColumns is the select list shared by every post query.
const postColumns = `id, slug, title, excerpt, content, category_slug, tags, status,
	featured, cover_image_url, author_name, scheduled_for, published_at, created_at, updated_at`

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.CategorySlug,
		&p.Tags, &p.Status, &p.Featured, &p.CoverImageURL, &p.AuthorName,
		&p.ScheduledFor, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns posts most-recent-first, optionally narrowed by the filter.
// An empty collection yields an empty slice, never an error.
func (r *PostgresPostRepository) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	query := "SELECT " + postColumns + " FROM blog_posts"
	var conds []string
	var args []interface{}

	if filter.CategorySlug != "" && filter.CategorySlug != domain.ReservedCategorySlug {
		args = append(args, filter.CategorySlug)
		conds = append(conds, fmt.Sprintf("category_slug = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.FeaturedOnly {
		conds = append(conds, "featured = TRUE")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY COALESCE(published_at, created_at) DESC, created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// GetByID returns the post with the given id, or nil when absent.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+postColumns+" FROM blog_posts WHERE id = $1", id)
	p, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	return p, nil
}

// GetBySlug returns the first post with the given slug, or nil when absent.
// Ordering by created_at makes the pick deterministic should duplicates exist.
func (r *PostgresPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+postColumns+" FROM blog_posts WHERE slug = $1 ORDER BY created_at LIMIT 1", slug)
	p, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post by slug %s: %w", slug, err)
	}
	return p, nil
}

// Create inserts the post. Timestamps are assigned by the store; published_at
// defaults to the creation time when the post is published without one.
func (r *PostgresPostRepository) Create(ctx context.Context, post *domain.Post) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO blog_posts (id, slug, title, excerpt, content, category_slug, tags,
			status, featured, cover_image_url, author_name, scheduled_for, published_at,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			CASE WHEN $8 = 'published' THEN COALESCE($13, NOW()) ELSE $13 END,
			NOW(), NOW())
		RETURNING published_at, created_at, updated_at`,
		post.ID, post.Slug, post.Title, post.Excerpt, post.Content, post.CategorySlug,
		post.Tags, string(post.Status), post.Featured, post.CoverImageURL,
		post.AuthorName, post.ScheduledFor, post.PublishedAt,
	).Scan(&post.PublishedAt, &post.CreatedAt, &post.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("create post slug %s: %w", post.Slug, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

// Update replaces the mutable fields and refreshes updated_at.
func (r *PostgresPostRepository) Update(ctx context.Context, post *domain.Post) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE blog_posts
		SET slug = $2, title = $3, excerpt = $4, content = $5, category_slug = $6,
			tags = $7, status = $8, featured = $9, cover_image_url = $10,
			author_name = $11, scheduled_for = $12,
			published_at = CASE WHEN $8 = 'published' THEN COALESCE($13, NOW()) ELSE $13 END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING published_at, updated_at`,
		post.ID, post.Slug, post.Title, post.Excerpt, post.Content, post.CategorySlug,
		post.Tags, string(post.Status), post.Featured, post.CoverImageURL,
		post.AuthorName, post.ScheduledFor, post.PublishedAt,
	).Scan(&post.PublishedAt, &post.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update post %s: %w", post.ID, domain.ErrNotFound)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("update post slug %s: %w", post.Slug, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("update post %s: %w", post.ID, err)
	}
	return nil
}

// Delete removes the post. Deleting a missing id surfaces ErrNotFound.
func (r *PostgresPostRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM blog_posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RelatedTo returns published posts sharing the category, excluding the post itself.
func (r *PostgresPostRepository) RelatedTo(ctx context.Context, id, categorySlug string, limit int) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+` FROM blog_posts
		WHERE category_slug = $1 AND id <> $2 AND status = 'published'
		ORDER BY COALESCE(published_at, created_at) DESC
		LIMIT $3`, categorySlug, id, limit)
	if err != nil {
		return nil, fmt.Errorf("query related posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0, limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan related post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// Stats aggregates post counts in a single query.
func (r *PostgresPostRepository) Stats(ctx context.Context) (*domain.PostStats, error) {
	var s domain.PostStats
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'published'),
			COUNT(*) FILTER (WHERE status = 'scheduled'),
			COUNT(*) FILTER (WHERE status = 'draft'),
			COUNT(*) FILTER (WHERE featured)
		FROM blog_posts`,
	).Scan(&s.Total, &s.Published, &s.Scheduled, &s.Drafts, &s.Featured)
	if err != nil {
		return nil, fmt.Errorf("post stats: %w", err)
	}
	return &s, nil
}

// CountByCategory counts posts referencing the given category slug.
func (r *PostgresPostRepository) CountByCategory(ctx context.Context, categorySlug string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM blog_posts WHERE category_slug = $1", categorySlug,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count posts for category %s: %w", categorySlug, err)
	}
	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
