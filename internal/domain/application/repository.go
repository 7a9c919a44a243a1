package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("application not found")
	// ErrDuplicate reports a second application for the same (job, applicant)
	// pair. The unique constraint raises it even when two submissions race.
	ErrDuplicate = errors.New("duplicate application")
)

// ListFilter narrows a listing; zero values mean no restriction.
type ListFilter struct {
	Status Status
	JobID  *uuid.UUID
}

type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	ListByApplicant(ctx context.Context, userID uuid.UUID, f ListFilter) ([]Application, error)
	ListByJobCreator(ctx context.Context, userID uuid.UUID, f ListFilter) ([]Application, error)
	ExistsByJobAndApplicant(ctx context.Context, jobID, userID uuid.UUID) (bool, error)
	Update(ctx context.Context, a Application) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}
