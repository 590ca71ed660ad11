package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mkn-console/internal/domain"
	"mkn-console/internal/mocks"
	"mkn-console/internal/service"
)

func TestOverviewService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles all sections", func(t *testing.T) {
		postRepo := mocks.NewMockPostRepository(t)
		categoryRepo := mocks.NewMockCategoryRepository(t)
		companyRepo := mocks.NewMockCompanyRepository(t)

		postRepo.EXPECT().Stats(mock.Anything).Return(&domain.PostStats{Total: 7, Published: 4}, nil)
		categoryRepo.EXPECT().List(mock.Anything).Return([]domain.Category{
			{Slug: "packaging", Count: 3},
		}, nil)
		companyRepo.EXPECT().Stats(mock.Anything).Return(&domain.CompanyStats{Total: 12}, nil)

		svc := service.NewOverviewService(postRepo, categoryRepo, companyRepo)
		overview, err := svc.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, 7, overview.PostStats.Total)
		assert.Len(t, overview.Categories, 1)
		assert.Equal(t, 12, overview.CompanyStats.Total)
	})

	t.Run("a failed section stays zero while the rest load", func(t *testing.T) {
		postRepo := mocks.NewMockPostRepository(t)
		categoryRepo := mocks.NewMockCategoryRepository(t)
		companyRepo := mocks.NewMockCompanyRepository(t)

		postRepo.EXPECT().Stats(mock.Anything).Return(nil, errors.New("connection refused"))
		categoryRepo.EXPECT().List(mock.Anything).Return([]domain.Category{
			{Slug: "packaging", Count: 3},
		}, nil)
		companyRepo.EXPECT().Stats(mock.Anything).Return(&domain.CompanyStats{Total: 12}, nil)

		svc := service.NewOverviewService(postRepo, categoryRepo, companyRepo)
		overview, err := svc.Load(ctx)

		require.NoError(t, err)
		assert.Nil(t, overview.PostStats)
		assert.Len(t, overview.Categories, 1)
		assert.Equal(t, 12, overview.CompanyStats.Total)
	})
}
