package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken reports a unique violation on users.email. Update
	// raises it when a caller claims another account's address.
	ErrEmailTaken = errors.New("email already in use")
)

type Repository interface {
	// CreateWithProfile persists the user and its profile atomically.
	CreateWithProfile(ctx context.Context, u User, p Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, u User) error

	GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error)
	UpdateProfile(ctx context.Context, p Profile) error
	IsEmployer(ctx context.Context, userID uuid.UUID) (bool, error)
}
