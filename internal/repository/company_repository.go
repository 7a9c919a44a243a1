package repository

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/database"
	"jobboard/internal/domain/company"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// jobs_count is a live subquery over active jobs so a deactivated job
// drops out of the count on the next read.
const companySelect = `
	SELECT c.id, c.name, c.description, c.location, c.website, c.created_by,
	       c.created_at, c.updated_at,
	       (SELECT COUNT(1) FROM jobs j WHERE j.company_id = c.id AND j.is_active) AS jobs_count
	FROM companies c`

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c company.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, name, description, location, website, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Description, c.Location, c.Website, c.CreatedBy,
	)
	return err
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx, companySelect+` WHERE c.id = $1`, id)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) List(ctx context.Context, f company.ListFilter) ([]company.Company, error) {
	query := companySelect
	args := []any{}

	if f.Search != "" {
		query += ` WHERE c.name ILIKE '%' || $1 || '%' OR c.location ILIKE '%' || $1 || '%'`
		args = append(args, f.Search)
	}
	query += ` ORDER BY c.created_at DESC`

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	return r.queryCompanies(ctx, query, args...)
}

func (r *PostgresCompanyRepository) ListByCreator(ctx context.Context, userID uuid.UUID) ([]company.Company, error) {
	return r.queryCompanies(ctx, companySelect+` WHERE c.created_by = $1 ORDER BY c.created_at DESC`, userID)
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, c company.Company) error {
	n, err := r.db.Exec(ctx,
		`UPDATE companies SET name = $2, description = $3, location = $4, website = $5, updated_at = now()
		 WHERE id = $1`,
		c.ID, c.Name, c.Description, c.Location, c.Website,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return company.ErrNotFound
	}
	return nil
}

func (r *PostgresCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return company.ErrNotFound
	}
	return nil
}

func (r *PostgresCompanyRepository) queryCompanies(ctx context.Context, query string, args ...any) ([]company.Company, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]company.Company, 0)
	for rows.Next() {
		var c company.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Location, &c.Website,
			&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt, &c.JobsCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCompany(row database.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Location, &c.Website,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt, &c.JobsCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}
