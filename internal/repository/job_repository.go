package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobSelect = `
	SELECT j.id, j.title, j.description, j.location, j.job_type, j.salary,
	       j.company_id, j.created_by, j.is_active, j.posted_at, j.updated_at,
	       c.name AS company_name,
	       (SELECT COUNT(1) FROM applications a WHERE a.job_id = j.id) AS applications_count
	FROM jobs j
	JOIN companies c ON c.id = j.company_id`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, description, location, job_type, salary, company_id, created_by, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		j.ID, j.Title, j.Description, j.Location, j.JobType, j.Salary, j.CompanyID, j.CreatedBy, j.IsActive,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id)
	return scanJob(row)
}

// List applies the filter as AND-combined predicates. BuildListQuery is
// split out so the WHERE/ORDER BY assembly stays testable without a store.
func (r *PostgresJobRepository) List(ctx context.Context, f job.ListFilter) ([]job.Job, error) {
	query, args := BuildListQuery(f)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJobFromRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func BuildListQuery(f job.ListFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.ActiveOnly {
		conds = append(conds, "j.is_active")
	}
	if f.CreatedBy != nil {
		add("j.created_by = $%d", *f.CreatedBy)
	}
	if f.Location != "" {
		add("j.location ILIKE '%%' || $%d || '%%'", f.Location)
	}
	if f.JobType != "" {
		add("j.job_type = $%d", f.JobType)
	}
	if f.Keyword != "" {
		args = append(args, f.Keyword)
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(j.title ILIKE '%%' || $%d || '%%' OR j.description ILIKE '%%' || $%d || '%%' OR c.name ILIKE '%%' || $%d || '%%')",
			n, n, n,
		))
	}

	query := jobSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	orderCol := "j.posted_at"
	if f.OrderBy == job.OrderTitle {
		orderCol = "j.title"
	}
	dir := "ASC"
	if f.Descending {
		dir = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", orderCol, dir)

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return query, args
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET title = $2, description = $3, location = $4, job_type = $5,
		        salary = $6, company_id = $7, is_active = $8, updated_at = now()
		 WHERE id = $1`,
		j.ID, j.Title, j.Description, j.Location, j.JobType, j.Salary, j.CompanyID, j.IsActive,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Location, &j.JobType, &j.Salary,
		&j.CompanyID, &j.CreatedBy, &j.IsActive, &j.PostedAt, &j.UpdatedAt,
		&j.CompanyName, &j.ApplicationsCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func scanJobFromRows(rows database.Rows) (job.Job, error) {
	var j job.Job
	err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Location, &j.JobType, &j.Salary,
		&j.CompanyID, &j.CreatedBy, &j.IsActive, &j.PostedAt, &j.UpdatedAt,
		&j.CompanyName, &j.ApplicationsCount)
	return j, err
}
