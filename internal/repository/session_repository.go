package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mkn-console/internal/permission"
)

// PostgresSessionRepository resolves API tokens against the console_users table.
// It implements both SessionRepository and permission.Resolver.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository.
func NewPostgresSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

// GetByToken returns the session for the given token, or nil when unknown.
func (r *PostgresSessionRepository) GetByToken(ctx context.Context, token string) (*permission.Session, error) {
	var s permission.Session
	var role string
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, role, grants
		FROM console_users
		WHERE token = $1`, token,
	).Scan(&s.UserID, &s.Name, &role, &s.Grants)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	s.Role = permission.Role(role)
	if s.Grants == nil {
		s.Grants = map[string]bool{}
	}
	return &s, nil
}

// Resolve implements permission.Resolver.
func (r *PostgresSessionRepository) Resolve(ctx context.Context, token string) (*permission.Session, error) {
	return r.GetByToken(ctx, token)
}
