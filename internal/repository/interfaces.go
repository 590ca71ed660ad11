package repository

import (
	"context"

	"mkn-console/internal/domain"
	"mkn-console/internal/permission"
)

// PostRepository defines data access for the blog posts collection.
// Get methods return nil, nil when no document matches.
type PostRepository interface {
	List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	RelatedTo(ctx context.Context, id, categorySlug string, limit int) ([]domain.Post, error)
	Stats(ctx context.Context) (*domain.PostStats, error)
	CountByCategory(ctx context.Context, categorySlug string) (int, error)
}

// CategoryRepository defines data access for the blog categories collection.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// CompanyRepository defines data access for the companies collection.
type CompanyRepository interface {
	List(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error)
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) error
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*domain.CompanyStats, error)
}

// SocialPostRepository defines data access for the social posts collection.
type SocialPostRepository interface {
	List(ctx context.Context) ([]domain.SocialPost, error)
	GetByID(ctx context.Context, id string) (*domain.SocialPost, error)
	Create(ctx context.Context, post *domain.SocialPost) error
	Update(ctx context.Context, post *domain.SocialPost) error
	Delete(ctx context.Context, id string) error
}

// SessionRepository resolves API tokens to console sessions.
type SessionRepository interface {
	GetByToken(ctx context.Context, token string) (*permission.Session, error)
}
