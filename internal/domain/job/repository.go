package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

const (
	OrderPostedAt = "posted_at"
	OrderTitle    = "title"
)

type ListFilter struct {
	// ActiveOnly restricts the base set to is_active = true. Public
	// listings set it; my_jobs does not.
	ActiveOnly bool
	// CreatedBy, when non-nil, restricts to jobs owned by that user.
	CreatedBy *uuid.UUID

	Location string // case-insensitive substring
	JobType  Type   // exact match when non-empty
	Keyword  string // substring over title, description or company name

	OrderBy    string // OrderPostedAt or OrderTitle
	Descending bool
	Limit      int
	Offset     int
}

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	List(ctx context.Context, f ListFilter) ([]Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}
