package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mkn-console/internal/domain"
)

const companyColumns = `id, name, phone, email, address, website, status, priority,
	notes, tags, services, project_details, contract_details, social_media,
	created_at, updated_at`

// PostgresCompanyRepository implements CompanyRepository using PostgreSQL.
// The three nested sub-documents are stored as jsonb columns.
type PostgresCompanyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCompanyRepository creates a new PostgresCompanyRepository.
func NewPostgresCompanyRepository(pool *pgxpool.Pool) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{pool: pool}
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Website,
		&c.Status, &c.Priority, &c.Notes, &c.Tags, &c.Services,
		&c.ProjectDetails, &c.ContractDetails, &c.SocialMedia,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns companies most-recent-first, optionally narrowed by the filter.
func (r *PostgresCompanyRepository) List(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error) {
	query := "SELECT " + companyColumns + " FROM companies"
	var conds []string
	var args []interface{}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Priority != "" {
		args = append(args, string(filter.Priority))
		conds = append(conds, fmt.Sprintf("priority = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

// GetByID returns the company with the given id, or nil when absent.
func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+companyColumns+" FROM companies WHERE id = $1", id)
	c, err := scanCompany(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get company %s: %w", id, err)
	}
	return c, nil
}

// Create inserts the company; timestamps are assigned by the store.
func (r *PostgresCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO companies (id, name, phone, email, address, website, status,
			priority, notes, tags, services, project_details, contract_details,
			social_media, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING created_at, updated_at`,
		company.ID, company.Name, company.Phone, company.Email, company.Address,
		company.Website, string(company.Status), string(company.Priority),
		company.Notes, company.Tags, company.Services,
		company.ProjectDetails, company.ContractDetails, company.SocialMedia,
	).Scan(&company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}

// Update replaces the mutable fields and refreshes updated_at.
func (r *PostgresCompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE companies
		SET name = $2, phone = $3, email = $4, address = $5, website = $6,
			status = $7, priority = $8, notes = $9, tags = $10, services = $11,
			project_details = $12, contract_details = $13, social_media = $14,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		company.ID, company.Name, company.Phone, company.Email, company.Address,
		company.Website, string(company.Status), string(company.Priority),
		company.Notes, company.Tags, company.Services,
		company.ProjectDetails, company.ContractDetails, company.SocialMedia,
	).Scan(&company.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update company %s: %w", company.ID, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update company %s: %w", company.ID, err)
	}
	return nil
}

// Delete removes the company. Deleting a missing id surfaces ErrNotFound.
func (r *PostgresCompanyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM companies WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete company %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete company %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Stats aggregates company counts by pipeline status.
func (r *PostgresCompanyRepository) Stats(ctx context.Context) (*domain.CompanyStats, error) {
	var s domain.CompanyStats
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'lead'),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'inactive'),
			COUNT(*) FILTER (WHERE status = 'archived')
		FROM companies`,
	).Scan(&s.Total, &s.Leads, &s.Active, &s.Inactive, &s.Archived)
	if err != nil {
		return nil, fmt.Errorf("company stats: %w", err)
	}
	return &s, nil
}
