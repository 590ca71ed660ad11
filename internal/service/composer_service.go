package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"mkn-console/internal/client/ai"
	"mkn-console/internal/composer"
	"mkn-console/internal/domain"
	"mkn-console/internal/logger"
	"mkn-console/internal/metrics"
	"mkn-console/internal/repository"
	"mkn-console/internal/validator"
)

// ComposerService implements multi-platform social post operations including
// AI-assisted variant generation.
type ComposerService struct {
	socialRepo repository.SocialPostRepository
	generator  ContentGenerator
	validator  *validator.Validator
}

// NewComposerService creates a new ComposerService.
func NewComposerService(socialRepo repository.SocialPostRepository, generator ContentGenerator, v *validator.Validator) *ComposerService {
	return &ComposerService{
		socialRepo: socialRepo,
		generator:  generator,
		validator:  v,
	}
}

// ListSocialPosts returns all social posts, newest first.
func (s *ComposerService) ListSocialPosts(ctx context.Context) ([]domain.SocialPost, error) {
	return s.socialRepo.List(ctx)
}

// GetSocialPost returns the post or nil when absent.
func (s *ComposerService) GetSocialPost(ctx context.Context, id string) (*domain.SocialPost, error) {
	return s.socialRepo.GetByID(ctx, id)
}

// CreateSocialPost creates a social post. The variant map is reconciled with
// the selected platform set before storage.
func (s *ComposerService) CreateSocialPost(ctx context.Context, post *domain.SocialPost) (*domain.SocialPost, error) {
	post.ID = uuid.New().String()
	if post.Status == "" {
		post.Status = domain.PostStatusDraft
	}
	post.SyncVariants()
	if err := s.validator.ValidateSocialPost(post); err != nil {
		return nil, err
	}
	err := s.socialRepo.Create(ctx, post)
	metrics.ObserveMutation("social_posts", "create", err)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateSocialPost replaces the stored post with the submitted form state.
// Deselecting a platform drops its variant; reselecting starts empty.
func (s *ComposerService) UpdateSocialPost(ctx context.Context, post *domain.SocialPost) (*domain.SocialPost, error) {
	existing, err := s.socialRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("social post %s: %w", post.ID, domain.ErrNotFound)
	}
	post.SyncVariants()
	if err := s.validator.ValidateSocialPost(post); err != nil {
		return nil, err
	}
	err = s.socialRepo.Update(ctx, post)
	metrics.ObserveMutation("social_posts", "update", err)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeleteSocialPost removes the post; a missing id surfaces ErrNotFound.
func (s *ComposerService) DeleteSocialPost(ctx context.Context, id string) error {
	err := s.socialRepo.Delete(ctx, id)
	metrics.ObserveMutation("social_posts", "delete", err)
	return err
}

// GeneratePlatform asks the generator for one platform's content and writes it
// into that variant only. The platform must be among the post's selected set.
func (s *ComposerService) GeneratePlatform(ctx context.Context, id string, platform domain.PlatformID) (*domain.SocialPost, error) {
	post, err := s.socialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("social post %s: %w", id, domain.ErrNotFound)
	}
	if !platformSelected(post, platform) {
		return nil, fmt.Errorf("platform %s is not selected on post %s: %w", platform, id, domain.ErrConflict)
	}

	content, err := s.generator.GeneratePost(ctx, generationRequest(post), platform)
	metrics.ObserveGeneration(string(platform), err)
	if err != nil {
		return nil, fmt.Errorf("generate %s content: %w", platform, err)
	}

	post.SyncVariants()
	variant := post.Variants[platform]
	variant.Content = content
	post.Variants[platform] = variant

	if err := s.socialRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	logger.Info("generated platform content", "post_id", id, "platform", platform)
	return post, nil
}

// GenerateAll generates content for every selected platform in one batch.
// A failure for any platform leaves the post untouched: no partial apply.
func (s *ComposerService) GenerateAll(ctx context.Context, id string) (*domain.SocialPost, error) {
	post, err := s.socialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("social post %s: %w", id, domain.ErrNotFound)
	}
	if len(post.Platforms) == 0 {
		return nil, fmt.Errorf("post %s has no platforms selected: %w", id, domain.ErrConflict)
	}

	results, err := s.generator.GenerateBatch(ctx, generationRequest(post), post.Platforms)
	for _, platform := range post.Platforms {
		metrics.ObserveGeneration(string(platform), err)
	}
	if err != nil {
		return nil, fmt.Errorf("generate batch content: %w", err)
	}

	post.SyncVariants()
	for platform, content := range results {
		variant := post.Variants[platform]
		variant.Content = content
		post.Variants[platform] = variant
	}

	if err := s.socialRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	logger.Info("generated batch content", "post_id", id, "platforms", len(results))
	return post, nil
}

// Budgets computes the character budget of each selected platform's variant.
func (s *ComposerService) Budgets(post *domain.SocialPost) map[domain.PlatformID]composer.Budget {
	budgets := make(map[domain.PlatformID]composer.Budget, len(post.Platforms))
	for _, id := range post.Platforms {
		platform, ok := composer.ByID(id)
		if !ok {
			continue
		}
		budgets[id] = composer.ComputeBudget(platform, post.Variants[id])
	}
	return budgets
}

func platformSelected(post *domain.SocialPost, platform domain.PlatformID) bool {
	for _, id := range post.Platforms {
		if id == platform {
			return true
		}
	}
	return false
}

func generationRequest(post *domain.SocialPost) ai.GenerationRequest {
	return ai.GenerationRequest{
		Topic:          post.Topic,
		Tone:           post.Tone,
		TargetAudience: post.TargetAudience,
		BrandContext:   post.BrandContext,
		Instructions:   post.Instructions,
	}
}
