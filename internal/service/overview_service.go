package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"mkn-console/internal/domain"
	"mkn-console/internal/logger"
	"mkn-console/internal/repository"
)

// Overview is the dashboard's initial data set, assembled from independent
// sections. A section that fails to load stays zero-valued; the others are
// still returned.
type Overview struct {
	PostStats    *domain.PostStats    `json:"post_stats,omitempty"`
	Categories   []domain.Category    `json:"categories"`
	CompanyStats *domain.CompanyStats `json:"company_stats,omitempty"`
}

// OverviewService loads the dashboard sections concurrently.
type OverviewService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	companyRepo  repository.CompanyRepository
}

// NewOverviewService creates a new OverviewService.
func NewOverviewService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository, companyRepo repository.CompanyRepository) *OverviewService {
	return &OverviewService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		companyRepo:  companyRepo,
	}
}

// Load fetches all sections in parallel. Individual section failures are
// logged and tolerated so the dashboard always renders with whatever loaded.
func (s *OverviewService) Load(ctx context.Context) (*Overview, error) {
	overview := &Overview{Categories: []domain.Category{}}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.postRepo.Stats(ctx)
		if err != nil {
			logger.Warn("overview: post stats failed", "error", err)
			return nil
		}
		overview.PostStats = stats
		return nil
	})

	g.Go(func() error {
		categories, err := s.categoryRepo.List(ctx)
		if err != nil {
			logger.Warn("overview: category list failed", "error", err)
			return nil
		}
		overview.Categories = categories
		return nil
	})

	g.Go(func() error {
		stats, err := s.companyRepo.Stats(ctx)
		if err != nil {
			logger.Warn("overview: company stats failed", "error", err)
			return nil
		}
		overview.CompanyStats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}
