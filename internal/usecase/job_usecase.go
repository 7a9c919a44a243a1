package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/company"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

var ErrEmployerRequired = errors.New("only employers can create jobs")

type CreateJobInput struct {
	Title       string
	Description string
	Location    string
	JobType     string
	Salary      *string
	CompanyID   uuid.UUID
}

type UpdateJobInput struct {
	Title       *string
	Description *string
	Location    *string
	JobType     *string
	Salary      *string
	IsActive    *bool
}

type JobSearchParams struct {
	Location string
	JobType  string
	Keyword  string
	// Ordering is "posted_at" or "title", with a leading '-' for
	// descending. Empty means "-posted_at".
	Ordering string
	Limit    int
	Offset   int
}

type JobUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, in CreateJobInput) (job.Job, error)
	Search(ctx context.Context, params JobSearchParams) ([]job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	Update(ctx context.Context, callerID, id uuid.UUID, in UpdateJobInput) (job.Job, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
	ListMine(ctx context.Context, callerID uuid.UUID) ([]job.Job, error)
}

type Jobs struct {
	jobs      job.Repository
	companies company.Repository
	users     user.Repository
}

func NewJobUsecase(jobs job.Repository, companies company.Repository, users user.Repository) *Jobs {
	return &Jobs{jobs: jobs, companies: companies, users: users}
}

func (u *Jobs) Create(ctx context.Context, callerID uuid.UUID, in CreateJobInput) (job.Job, error) {
	isEmployer, err := u.users.IsEmployer(ctx, callerID)
	if err != nil {
		return job.Job{}, ErrInternal
	}
	if !canCreateJob(isEmployer) {
		return job.Job{}, ErrEmployerRequired
	}

	title := strings.TrimSpace(in.Title)
	location := strings.TrimSpace(in.Location)
	if title == "" || location == "" || strings.TrimSpace(in.Description) == "" {
		return job.Job{}, ErrInvalidInput
	}

	jobType := job.Type(in.JobType)
	if in.JobType == "" {
		jobType = job.TypeFullTime
	}
	if !jobType.Valid() {
		return job.Job{}, ErrInvalidInput
	}

	if _, err := u.companies.GetByID(ctx, in.CompanyID); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return job.Job{}, ErrInvalidInput
		}
		return job.Job{}, ErrInternal
	}

	j := job.Job{
		ID:          uuid.New(),
		Title:       title,
		Description: in.Description,
		Location:    location,
		JobType:     jobType,
		Salary:      in.Salary,
		CompanyID:   in.CompanyID,
		CreatedBy:   callerID,
		IsActive:    true,
	}
	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}
	return u.jobs.GetByID(ctx, j.ID)
}

// Search serves the public listing: only active jobs, filters
// AND-combined, newest first unless an explicit ordering is asked for.
func (u *Jobs) Search(ctx context.Context, params JobSearchParams) ([]job.Job, error) {
	if params.Limit < 0 || params.Limit > 50 || params.Offset < 0 {
		return nil, ErrInvalidInput
	}

	f := job.ListFilter{
		ActiveOnly: true,
		Location:   strings.TrimSpace(params.Location),
		Keyword:    strings.TrimSpace(params.Keyword),
		Limit:      params.Limit,
		Offset:     params.Offset,
	}

	if params.JobType != "" {
		jt := job.Type(params.JobType)
		if !jt.Valid() {
			return nil, ErrInvalidInput
		}
		f.JobType = jt
	}

	orderBy, desc, err := parseOrdering(params.Ordering)
	if err != nil {
		return nil, err
	}
	f.OrderBy = orderBy
	f.Descending = desc

	out, err := u.jobs.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// Get intentionally skips the is_active filter: inactive jobs stay
// reachable by direct link.
func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, err
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) Update(ctx context.Context, callerID, id uuid.UUID, in UpdateJobInput) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, err
		}
		return job.Job{}, ErrInternal
	}
	if !canMutateJob(callerID, j) {
		return job.Job{}, ErrForbidden
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return job.Job{}, ErrInvalidInput
		}
		j.Title = title
	}
	if in.Description != nil {
		j.Description = *in.Description
	}
	if in.Location != nil {
		location := strings.TrimSpace(*in.Location)
		if location == "" {
			return job.Job{}, ErrInvalidInput
		}
		j.Location = location
	}
	if in.JobType != nil {
		jt := job.Type(*in.JobType)
		if !jt.Valid() {
			return job.Job{}, ErrInvalidInput
		}
		j.JobType = jt
	}
	if in.Salary != nil {
		j.Salary = in.Salary
	}
	if in.IsActive != nil {
		j.IsActive = *in.IsActive
	}

	if err := u.jobs.Update(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}
	return u.jobs.GetByID(ctx, id)
}

func (u *Jobs) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return err
		}
		return ErrInternal
	}
	if !canMutateJob(callerID, j) {
		return ErrForbidden
	}

	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return err
		}
		return ErrInternal
	}
	return nil
}

// ListMine returns the caller's jobs, active or not.
func (u *Jobs) ListMine(ctx context.Context, callerID uuid.UUID) ([]job.Job, error) {
	out, err := u.jobs.List(ctx, job.ListFilter{
		CreatedBy:  &callerID,
		OrderBy:    job.OrderPostedAt,
		Descending: true,
	})
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func parseOrdering(ordering string) (string, bool, error) {
	ordering = strings.TrimSpace(ordering)
	if ordering == "" {
		return job.OrderPostedAt, true, nil
	}

	desc := false
	if strings.HasPrefix(ordering, "-") {
		desc = true
		ordering = ordering[1:]
	}

	switch ordering {
	case job.OrderPostedAt, job.OrderTitle:
		return ordering, desc, nil
	default:
		return "", false, ErrInvalidInput
	}
}
