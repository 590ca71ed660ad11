package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"mkn-console/internal/domain"
	"mkn-console/internal/metrics"
	"mkn-console/internal/repository"
	"mkn-console/internal/validator"
)

// CompanyService implements CRM company operations.
type CompanyService struct {
	companyRepo repository.CompanyRepository
	validator   *validator.Validator
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo repository.CompanyRepository, v *validator.Validator) *CompanyService {
	return &CompanyService{companyRepo: companyRepo, validator: v}
}

// ListCompanies returns companies matching the filter. The free-text query is
// the list view's search box: a pure substring predicate applied over the
// loaded list, not a store query.
func (s *CompanyService) ListCompanies(ctx context.Context, filter domain.CompanyFilter, query string) ([]domain.Company, error) {
	companies, err := s.companyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return companies, nil
	}
	matched := make([]domain.Company, 0, len(companies))
	for _, c := range companies {
		if domain.MatchCompany(c, query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// GetCompany returns the company or nil when absent.
func (s *CompanyService) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

// CreateCompany creates a company with defaulted status and priority.
func (s *CompanyService) CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	company.ID = uuid.New().String()
	if company.Status == "" {
		company.Status = domain.CompanyStatusLead
	}
	if company.Priority == "" {
		company.Priority = domain.CompanyPriorityMedium
	}
	if err := s.validator.ValidateCompany(company); err != nil {
		return nil, err
	}
	err := s.companyRepo.Create(ctx, company)
	metrics.ObserveMutation("companies", "create", err)
	if err != nil {
		return nil, err
	}
	return company, nil
}

// UpdateCompany replaces the stored company's mutable fields with the
// submitted form state.
func (s *CompanyService) UpdateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if err := s.validator.ValidateCompany(company); err != nil {
		return nil, err
	}
	existing, err := s.companyRepo.GetByID(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("company %s: %w", company.ID, domain.ErrNotFound)
	}
	err = s.companyRepo.Update(ctx, company)
	metrics.ObserveMutation("companies", "update", err)
	if err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany removes the company; deleting a missing id surfaces ErrNotFound.
func (s *CompanyService) DeleteCompany(ctx context.Context, id string) error {
	err := s.companyRepo.Delete(ctx, id)
	metrics.ObserveMutation("companies", "delete", err)
	return err
}

// CompanyStats aggregates company counts by status.
func (s *CompanyService) CompanyStats(ctx context.Context) (*domain.CompanyStats, error) {
	return s.companyRepo.Stats(ctx)
}
