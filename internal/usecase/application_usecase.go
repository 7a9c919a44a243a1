package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmployersCannotApply = errors.New("employers cannot apply for jobs")
	ErrAlreadyApplied       = errors.New("already applied for this job")
	ErrJobInactive          = errors.New("job is no longer active")
	ErrInvalidStatus        = errors.New("invalid application status")
)

type CreateApplicationInput struct {
	JobID       uuid.UUID
	Resume      string
	CoverLetter string
}

type UpdateApplicationInput struct {
	Resume      *string
	CoverLetter *string
}

type ApplicationListParams struct {
	// Status narrows to one of the four values; empty means all.
	Status string
	JobID  *uuid.UUID
}

type ApplicationUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, in CreateApplicationInput) (application.Application, error)
	List(ctx context.Context, callerID uuid.UUID, params ApplicationListParams) ([]application.Application, error)
	Get(ctx context.Context, callerID, id uuid.UUID) (application.Application, error)
	Update(ctx context.Context, callerID, id uuid.UUID, in UpdateApplicationInput) (application.Application, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
	UpdateStatus(ctx context.Context, callerID, id uuid.UUID, status string) (application.Application, error)
	ListMine(ctx context.Context, callerID uuid.UUID, params ApplicationListParams) ([]application.Application, error)
}

type Applications struct {
	applications application.Repository
	jobs         job.Repository
	users        user.Repository
}

func NewApplicationUsecase(applications application.Repository, jobs job.Repository, users user.Repository) *Applications {
	return &Applications{applications: applications, jobs: jobs, users: users}
}

func (u *Applications) Create(ctx context.Context, callerID uuid.UUID, in CreateApplicationInput) (application.Application, error) {
	isEmployer, err := u.users.IsEmployer(ctx, callerID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if !canCreateApplication(isEmployer) {
		return application.Application{}, ErrEmployersCannotApply
	}

	if strings.TrimSpace(in.Resume) == "" {
		return application.Application{}, ErrInvalidInput
	}

	j, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, err
		}
		return application.Application{}, ErrInternal
	}
	if !j.IsActive {
		return application.Application{}, ErrJobInactive
	}

	// friendly pre-check; the unique constraint decides under races
	exists, err := u.applications.ExistsByJobAndApplicant(ctx, in.JobID, callerID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if exists {
		return application.Application{}, ErrAlreadyApplied
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       in.JobID,
		ApplicantID: callerID,
		Resume:      in.Resume,
		CoverLetter: in.CoverLetter,
		Status:      application.StatusPending,
	}
	if err := u.applications.Create(ctx, a); err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, ErrInternal
	}
	return u.applications.GetByID(ctx, a.ID)
}

// List is role-exclusive: employers get applications for their jobs,
// everyone else their own submissions. An employer's own submissions
// are only reachable through ListMine.
func (u *Applications) List(ctx context.Context, callerID uuid.UUID, params ApplicationListParams) ([]application.Application, error) {
	f, err := listFilter(params)
	if err != nil {
		return nil, err
	}

	isEmployer, err := u.users.IsEmployer(ctx, callerID)
	if err != nil {
		return nil, ErrInternal
	}

	var out []application.Application
	if isEmployer {
		out, err = u.applications.ListByJobCreator(ctx, callerID, f)
	} else {
		out, err = u.applications.ListByApplicant(ctx, callerID, f)
	}
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func listFilter(params ApplicationListParams) (application.ListFilter, error) {
	f := application.ListFilter{JobID: params.JobID}
	if params.Status != "" {
		st := application.Status(params.Status)
		if !st.Valid() {
			return application.ListFilter{}, ErrInvalidStatus
		}
		f.Status = st
	}
	return f, nil
}

// Get conflates visibility with existence: a record outside the
// caller's scope looks exactly like a missing one.
func (u *Applications) Get(ctx context.Context, callerID, id uuid.UUID) (application.Application, error) {
	a, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, err
		}
		return application.Application{}, ErrInternal
	}
	if !canViewApplication(callerID, a) {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (u *Applications) Update(ctx context.Context, callerID, id uuid.UUID, in UpdateApplicationInput) (application.Application, error) {
	a, err := u.Get(ctx, callerID, id)
	if err != nil {
		return application.Application{}, err
	}
	if !canMutateApplication(callerID, a) {
		return application.Application{}, ErrForbidden
	}

	if in.Resume != nil {
		if strings.TrimSpace(*in.Resume) == "" {
			return application.Application{}, ErrInvalidInput
		}
		a.Resume = *in.Resume
	}
	if in.CoverLetter != nil {
		a.CoverLetter = *in.CoverLetter
	}

	if err := u.applications.Update(ctx, a); err != nil {
		return application.Application{}, ErrInternal
	}
	return u.applications.GetByID(ctx, id)
}

func (u *Applications) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	a, err := u.Get(ctx, callerID, id)
	if err != nil {
		return err
	}
	if !canMutateApplication(callerID, a) {
		return ErrForbidden
	}

	if err := u.applications.Delete(ctx, id); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return err
		}
		return ErrInternal
	}
	return nil
}

// UpdateStatus is the one transition the job's creator owns. Any other
// caller gets a forbidden result and the status stays put.
func (u *Applications) UpdateStatus(ctx context.Context, callerID, id uuid.UUID, status string) (application.Application, error) {
	st := application.Status(status)
	if !st.Valid() {
		return application.Application{}, ErrInvalidStatus
	}

	a, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, err
		}
		return application.Application{}, ErrInternal
	}
	if !canSetApplicationStatus(callerID, a) {
		return application.Application{}, ErrForbidden
	}

	if err := u.applications.UpdateStatus(ctx, id, st); err != nil {
		return application.Application{}, ErrInternal
	}
	return u.applications.GetByID(ctx, id)
}

// ListMine is role-independent, unlike List.
func (u *Applications) ListMine(ctx context.Context, callerID uuid.UUID, params ApplicationListParams) ([]application.Application, error) {
	f, err := listFilter(params)
	if err != nil {
		return nil, err
	}
	out, err := u.applications.ListByApplicant(ctx, callerID, f)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
