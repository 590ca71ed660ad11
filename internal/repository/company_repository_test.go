package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkn-console/internal/domain"
	"mkn-console/internal/repository"
)

func newTestCompany(name string) *domain.Company {
	return &domain.Company{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    "info@ornek.com.tr",
		Status:   domain.CompanyStatusLead,
		Priority: domain.CompanyPriorityMedium,
		Tags:     []string{"kozmetik"},
		Services: []string{"fason-uretim"},
	}
}

func TestPostgresCompanyRepository_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresCompanyRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("creates and reads back", func(t *testing.T) {
		testDB.TruncateTables(t, "companies")

		company := newTestCompany("Derin Kozmetik")
		err := repo.Create(ctx, company)
		require.NoError(t, err)
		assert.False(t, company.CreatedAt.IsZero())

		stored, err := repo.GetByID(ctx, company.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Derin Kozmetik", stored.Name)
		assert.Equal(t, []string{"kozmetik"}, stored.Tags)
		assert.Equal(t, []string{"fason-uretim"}, stored.Services)
	})

	t.Run("sub-documents round-trip through jsonb", func(t *testing.T) {
		testDB.TruncateTables(t, "companies")

		budget := 250000.0
		deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
		contractValue := 180000.0

		company := newTestCompany("Proje Ortağı")
		company.ProjectDetails = domain.ProjectDetails{
			Summary:  "Yeni ambalaj hattı",
			Deadline: &deadline,
			Budget:   &budget,
		}
		company.ContractDetails = domain.ContractDetails{
			Signed: true,
			Value:  &contractValue,
			Terms:  "Yıllık yenileme",
		}
		company.SocialMedia = domain.SocialMedia{
			Instagram: "projeortagi",
			LinkedIn:  "proje-ortagi",
		}
		require.NoError(t, repo.Create(ctx, company))

		stored, err := repo.GetByID(ctx, company.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)

		assert.Equal(t, "Yeni ambalaj hattı", stored.ProjectDetails.Summary)
		require.NotNil(t, stored.ProjectDetails.Budget)
		assert.Equal(t, budget, *stored.ProjectDetails.Budget)
		require.NotNil(t, stored.ProjectDetails.Deadline)
		assert.True(t, stored.ProjectDetails.Deadline.Equal(deadline))

		assert.True(t, stored.ContractDetails.Signed)
		require.NotNil(t, stored.ContractDetails.Value)
		assert.Equal(t, contractValue, *stored.ContractDetails.Value)
		assert.Equal(t, "Yıllık yenileme", stored.ContractDetails.Terms)

		assert.Equal(t, "projeortagi", stored.SocialMedia.Instagram)
		assert.Equal(t, "proje-ortagi", stored.SocialMedia.LinkedIn)
	})

	t.Run("update replaces the record", func(t *testing.T) {
		testDB.TruncateTables(t, "companies")

		company := newTestCompany("Eski Unvan")
		require.NoError(t, repo.Create(ctx, company))

		company.Name = "Yeni Unvan"
		company.Status = domain.CompanyStatusActive
		company.Priority = domain.CompanyPriorityHigh
		err := repo.Update(ctx, company)
		require.NoError(t, err)

		stored, err := repo.GetByID(ctx, company.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Yeni Unvan", stored.Name)
		assert.Equal(t, domain.CompanyStatusActive, stored.Status)
		assert.Equal(t, domain.CompanyPriorityHigh, stored.Priority)
	})

	t.Run("update unknown id returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, "companies")

		err := repo.Update(ctx, newTestCompany("Hayalet Firma"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		testDB.TruncateTables(t, "companies")

		company := newTestCompany("Silinecek Firma")
		require.NoError(t, repo.Create(ctx, company))

		require.NoError(t, repo.Delete(ctx, company.ID))

		stored, err := repo.GetByID(ctx, company.ID)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("delete unknown id returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, "companies")

		err := repo.Delete(ctx, uuid.New().String())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresCompanyRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresCompanyRepository(testDB.Pool)
	ctx := context.Background()

	seed := func(t *testing.T) {
		t.Helper()
		testDB.TruncateTables(t, "companies")

		lead := newTestCompany("Aday Firma")

		active := newTestCompany("Aktif Firma")
		active.Status = domain.CompanyStatusActive
		active.Priority = domain.CompanyPriorityHigh

		archived := newTestCompany("Arşiv Firma")
		archived.Status = domain.CompanyStatusArchived

		for _, c := range []*domain.Company{lead, active, archived} {
			require.NoError(t, repo.Create(ctx, c))
		}
	}

	t.Run("empty filter returns everything", func(t *testing.T) {
		seed(t)

		companies, err := repo.List(ctx, domain.CompanyFilter{})
		require.NoError(t, err)
		assert.Len(t, companies, 3)
	})

	t.Run("filters by status", func(t *testing.T) {
		seed(t)

		companies, err := repo.List(ctx, domain.CompanyFilter{Status: domain.CompanyStatusActive})
		require.NoError(t, err)
		require.Len(t, companies, 1)
		assert.Equal(t, "Aktif Firma", companies[0].Name)
	})

	t.Run("filters by priority", func(t *testing.T) {
		seed(t)

		companies, err := repo.List(ctx, domain.CompanyFilter{Priority: domain.CompanyPriorityHigh})
		require.NoError(t, err)
		require.Len(t, companies, 1)
		assert.Equal(t, "Aktif Firma", companies[0].Name)
	})
}

func TestPostgresCompanyRepository_Stats(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresCompanyRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("counts by pipeline status", func(t *testing.T) {
		testDB.TruncateTables(t, "companies")

		statuses := []domain.CompanyStatus{
			domain.CompanyStatusLead,
			domain.CompanyStatusLead,
			domain.CompanyStatusActive,
			domain.CompanyStatusInactive,
			domain.CompanyStatusArchived,
		}
		for i, status := range statuses {
			company := newTestCompany("Firma")
			company.Name = company.Name + "-" + string(rune('A'+i))
			company.Status = status
			require.NoError(t, repo.Create(ctx, company))
		}

		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, stats.Total)
		assert.Equal(t, 2, stats.Leads)
		assert.Equal(t, 1, stats.Active)
		assert.Equal(t, 1, stats.Inactive)
		assert.Equal(t, 1, stats.Archived)
	})
}
