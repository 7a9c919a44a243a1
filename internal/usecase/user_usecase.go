package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/user"
	ucauth "jobboard/internal/usecase/auth"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	Email      *string
	FirstName  *string
	LastName   *string
	IsEmployer *bool
}

type UserUsecase interface {
	GetProfile(ctx context.Context, callerID uuid.UUID) (user.User, user.Profile, error)
	UpdateProfile(ctx context.Context, callerID uuid.UUID, in UpdateProfileInput) (user.User, user.Profile, error)
}

// User serves the caller's own account and profile; there is no
// cross-user access here at all.
type User struct {
	users user.Repository
}

func NewUserUsecase(users user.Repository) *User {
	return &User{users: users}
}

func (u *User) GetProfile(ctx context.Context, callerID uuid.UUID) (user.User, user.Profile, error) {
	usr, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.Profile{}, err
		}
		return user.User{}, user.Profile{}, ErrInternal
	}
	prof, err := u.users.GetProfile(ctx, callerID)
	if err != nil {
		return user.User{}, user.Profile{}, ErrInternal
	}
	return sanitize(usr), prof, nil
}

func (u *User) UpdateProfile(ctx context.Context, callerID uuid.UUID, in UpdateProfileInput) (user.User, user.Profile, error) {
	usr, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.Profile{}, err
		}
		return user.User{}, user.Profile{}, ErrInternal
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" {
			return user.User{}, user.Profile{}, ErrInvalidInput
		}
		usr.Email = email
	}
	if in.FirstName != nil {
		usr.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		usr.LastName = strings.TrimSpace(*in.LastName)
	}

	if err := u.users.Update(ctx, usr); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, user.Profile{}, ucauth.ErrEmailTaken
		}
		return user.User{}, user.Profile{}, ErrInternal
	}

	if in.IsEmployer != nil {
		prof, err := u.users.GetProfile(ctx, callerID)
		if err != nil {
			return user.User{}, user.Profile{}, ErrInternal
		}
		prof.IsEmployer = *in.IsEmployer
		if err := u.users.UpdateProfile(ctx, prof); err != nil {
			return user.User{}, user.Profile{}, ErrInternal
		}
	}

	return u.GetProfile(ctx, callerID)
}

func sanitize(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
