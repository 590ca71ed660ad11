package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mkn-console/internal/domain"
)

const socialPostColumns = `id, topic, tone, target_audience, brand_context, instructions,
	status, scheduled_for, platforms, variants, created_at, updated_at`

// PostgresSocialPostRepository implements SocialPostRepository using PostgreSQL.
// The per-platform variant map is stored as a jsonb column; the platform list
// as a text array alongside it.
type PostgresSocialPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSocialPostRepository creates a new PostgresSocialPostRepository.
func NewPostgresSocialPostRepository(pool *pgxpool.Pool) *PostgresSocialPostRepository {
	return &PostgresSocialPostRepository{pool: pool}
}

func scanSocialPost(row pgx.Row) (*domain.SocialPost, error) {
	var p domain.SocialPost
	var platforms []string
	err := row.Scan(&p.ID, &p.Topic, &p.Tone, &p.TargetAudience, &p.BrandContext,
		&p.Instructions, &p.Status, &p.ScheduledFor, &platforms, &p.Variants,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Platforms = make([]domain.PlatformID, len(platforms))
	for i, id := range platforms {
		p.Platforms[i] = domain.PlatformID(id)
	}
	return &p, nil
}

func platformStrings(ids []domain.PlatformID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// List returns social posts most-recent-first.
func (r *PostgresSocialPostRepository) List(ctx context.Context) ([]domain.SocialPost, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+socialPostColumns+" FROM social_posts ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("query social posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.SocialPost, 0)
	for rows.Next() {
		p, err := scanSocialPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan social post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// GetByID returns the social post with the given id, or nil when absent.
func (r *PostgresSocialPostRepository) GetByID(ctx context.Context, id string) (*domain.SocialPost, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+socialPostColumns+" FROM social_posts WHERE id = $1", id)
	p, err := scanSocialPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get social post %s: %w", id, err)
	}
	return p, nil
}

// Create inserts the social post; timestamps are assigned by the store.
func (r *PostgresSocialPostRepository) Create(ctx context.Context, post *domain.SocialPost) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO social_posts (id, topic, tone, target_audience, brand_context,
			instructions, status, scheduled_for, platforms, variants, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at`,
		post.ID, post.Topic, post.Tone, post.TargetAudience, post.BrandContext,
		post.Instructions, string(post.Status), post.ScheduledFor,
		platformStrings(post.Platforms), post.Variants,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create social post: %w", err)
	}
	return nil
}

// Update replaces the mutable fields and refreshes updated_at.
func (r *PostgresSocialPostRepository) Update(ctx context.Context, post *domain.SocialPost) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE social_posts
		SET topic = $2, tone = $3, target_audience = $4, brand_context = $5,
			instructions = $6, status = $7, scheduled_for = $8, platforms = $9,
			variants = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		post.ID, post.Topic, post.Tone, post.TargetAudience, post.BrandContext,
		post.Instructions, string(post.Status), post.ScheduledFor,
		platformStrings(post.Platforms), post.Variants,
	).Scan(&post.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update social post %s: %w", post.ID, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update social post %s: %w", post.ID, err)
	}
	return nil
}

// Delete removes the social post. Deleting a missing id surfaces ErrNotFound.
func (r *PostgresSocialPostRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM social_posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete social post %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete social post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
