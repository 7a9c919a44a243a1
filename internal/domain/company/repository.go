package company

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("company not found")

type ListFilter struct {
	// Search matches name or location as a case-insensitive substring.
	Search string
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, c Company) error
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	List(ctx context.Context, f ListFilter) ([]Company, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]Company, error)
	Update(ctx context.Context, c Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}
