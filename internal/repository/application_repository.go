package repository

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/database"
	"jobboard/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const applicationSelect = `
	SELECT a.id, a.job_id, a.applicant_id, a.resume, a.cover_letter, a.status,
	       a.applied_at, a.updated_at, j.title AS job_title, j.created_by AS job_created_by
	FROM applications a
	JOIN jobs j ON j.id = a.job_id`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// Create relies on the (job_id, applicant_id) unique constraint to
// resolve concurrent duplicate submits: the race loser gets
// application.ErrDuplicate instead of a second row.
func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, applicant_id, resume, cover_letter, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.JobID, a.ApplicantID, a.Resume, a.CoverLetter, a.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return application.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, userID uuid.UUID, f application.ListFilter) ([]application.Application, error) {
	query, args := listQuery("a.applicant_id", userID, f)
	return r.queryApplications(ctx, query, args...)
}

func (r *PostgresApplicationRepository) ListByJobCreator(ctx context.Context, userID uuid.UUID, f application.ListFilter) ([]application.Application, error) {
	query, args := listQuery("j.created_by", userID, f)
	return r.queryApplications(ctx, query, args...)
}

func listQuery(scopeCol string, userID uuid.UUID, f application.ListFilter) (string, []any) {
	query := applicationSelect + ` WHERE ` + scopeCol + ` = $1`
	args := []any{userID}

	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND a.status = $%d", len(args))
	}
	if f.JobID != nil {
		args = append(args, *f.JobID)
		query += fmt.Sprintf(" AND a.job_id = $%d", len(args))
	}

	return query + ` ORDER BY a.applied_at DESC`, args
}

func (r *PostgresApplicationRepository) ExistsByJobAndApplicant(ctx context.Context, jobID, userID uuid.UUID) (bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, userID)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) Update(ctx context.Context, a application.Application) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET resume = $2, cover_letter = $3, updated_at = now() WHERE id = $1`,
		a.ID, a.Resume, a.CoverLetter,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) queryApplications(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Resume, &a.CoverLetter,
			&a.Status, &a.AppliedAt, &a.UpdatedAt, &a.JobTitle, &a.JobCreatedBy); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Resume, &a.CoverLetter,
		&a.Status, &a.AppliedAt, &a.UpdatedAt, &a.JobTitle, &a.JobCreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}
