package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mkn-console/internal/domain"
	"mkn-console/internal/logger"
	"mkn-console/internal/metrics"
	"mkn-console/internal/repository"
	"mkn-console/internal/slug"
	"mkn-console/internal/validator"
)

// DefaultRelatedLimit bounds "related posts" queries when the caller gives none.
const DefaultRelatedLimit = 3

// PostInput carries post fields for create and update. Nil fields are left
// untouched on update, so a submit merges into the stored document.
type PostInput struct {
	Title         *string
	Excerpt       *string
	Content       *string
	CategorySlug  *string
	Tags          []string
	Status        *string
	Featured      *bool
	CoverImageURL *string
	AuthorName    *string
	ScheduledFor  *time.Time
	PublishedAt   *time.Time
}

func (in PostInput) apply(p *domain.Post) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Excerpt != nil {
		p.Excerpt = in.Excerpt
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.CategorySlug != nil {
		p.CategorySlug = *in.CategorySlug
	}
	if in.Tags != nil {
		p.Tags = in.Tags
	}
	if in.Status != nil {
		p.Status = domain.PostStatus(*in.Status)
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.CoverImageURL != nil {
		p.CoverImageURL = in.CoverImageURL
	}
	if in.AuthorName != nil {
		p.AuthorName = *in.AuthorName
	}
	if in.ScheduledFor != nil {
		p.ScheduledFor = in.ScheduledFor
	}
	if in.PublishedAt != nil {
		p.PublishedAt = in.PublishedAt
	}
}

// ContentService implements blog post and category operations.
type ContentService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	validator    *validator.Validator
}

// NewContentService creates a new ContentService.
func NewContentService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	v *validator.Validator,
) *ContentService {
	return &ContentService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		validator:    v,
	}
}

// ListPosts returns posts matching the filter, most-recent-first.
func (s *ContentService) ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	return s.postRepo.List(ctx, filter)
}

// GetPost returns the post or nil when absent.
func (s *ContentService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// GetPostBySlug returns the post or nil when absent.
func (s *ContentService) GetPostBySlug(ctx context.Context, slugValue string) (*domain.Post, error) {
	return s.postRepo.GetBySlug(ctx, slugValue)
}

// resolveCategory checks the invariant that a post's category reference
// resolves to a stored category. The reserved synthetic category is rejected
// earlier by validation.
func (s *ContentService) resolveCategory(ctx context.Context, categorySlug string) error {
	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return fmt.Errorf("resolve category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("category %s does not exist: %w", categorySlug, domain.ErrConflict)
	}
	return nil
}

// CreatePost creates a post. The slug is derived from the title; the store
// assigns timestamps and defaults published_at for published posts.
func (s *ContentService) CreatePost(ctx context.Context, in PostInput) (*domain.Post, error) {
	post := &domain.Post{
		ID:     uuid.New().String(),
		Status: domain.PostStatusDraft,
	}
	in.apply(post)
	post.Slug = slug.Make(post.Title)

	if err := s.validator.ValidatePost(post); err != nil {
		return nil, err
	}
	if err := s.resolveCategory(ctx, post.CategorySlug); err != nil {
		return nil, err
	}
	err := s.postRepo.Create(ctx, post)
	metrics.ObserveMutation("blog_posts", "create", err)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost merges the given fields into the stored post. The slug stays
// stable across title edits so published URLs do not move.
func (s *ContentService) UpdatePost(ctx context.Context, id string, in PostInput) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	in.apply(post)

	if err := s.validator.ValidatePost(post); err != nil {
		return nil, err
	}
	if in.CategorySlug != nil {
		if err := s.resolveCategory(ctx, post.CategorySlug); err != nil {
			return nil, err
		}
	}
	err = s.postRepo.Update(ctx, post)
	metrics.ObserveMutation("blog_posts", "update", err)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post; deleting a missing id surfaces ErrNotFound.
func (s *ContentService) DeletePost(ctx context.Context, id string) error {
	err := s.postRepo.Delete(ctx, id)
	metrics.ObserveMutation("blog_posts", "delete", err)
	return err
}

// RelatedPosts returns published posts sharing the post's category.
func (s *ContentService) RelatedPosts(ctx context.Context, id string, limit int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return s.postRepo.RelatedTo(ctx, id, post.CategorySlug, limit)
}

// PostStats aggregates post counts.
func (s *ContentService) PostStats(ctx context.Context) (*domain.PostStats, error) {
	return s.postRepo.Stats(ctx)
}

// ListCategories returns all categories with live post counts.
func (s *ContentService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

// GetCategory returns the category or nil when absent.
func (s *ContentService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// CreateCategory creates a category; the slug is derived from the name.
func (s *ContentService) CreateCategory(ctx context.Context, name, description string) (*domain.Category, error) {
	category := &domain.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: description,
	}
	if err := s.validator.ValidateCategory(category); err != nil {
		return nil, err
	}
	err := s.categoryRepo.Create(ctx, category)
	metrics.ObserveMutation("blog_categories", "create", err)
	if err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames a category. The slug follows the name only while no
// posts reference the category; a referenced category keeps its slug so post
// references stay valid.
func (s *ContentService) UpdateCategory(ctx context.Context, id, name, description string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}

	category.Name = name
	category.Description = description
	if category.Count == 0 {
		category.Slug = slug.Make(name)
	}

	if err := s.validator.ValidateCategory(category); err != nil {
		return nil, err
	}
	err = s.categoryRepo.Update(ctx, category)
	metrics.ObserveMutation("blog_categories", "update", err)
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. A category still referenced by posts is
// not deletable; the guard lives here, at the service boundary.
func (s *ContentService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	if category.Count > 0 {
		logger.Warn("rejected category delete",
			slog.String("category", category.Slug),
			slog.Int("post_count", category.Count))
		return fmt.Errorf("category %s still has %d posts: %w",
			category.Slug, category.Count, domain.ErrConflict)
	}
	err = s.categoryRepo.Delete(ctx, id)
	metrics.ObserveMutation("blog_categories", "delete", err)
	return err
}
