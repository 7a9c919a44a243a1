package usecase

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/user"
	ucauth "jobboard/internal/usecase/auth"

	"github.com/google/uuid"
)

func TestUserUpdateProfile_EmailTaken(t *testing.T) {
	callerID := uuid.New()
	users := stubUserRepo{
		users:     map[uuid.UUID]user.User{callerID: {ID: callerID, Username: "jo", Email: "jo@example.com"}},
		profiles:  map[uuid.UUID]user.Profile{callerID: {UserID: callerID}},
		updateErr: user.ErrEmailTaken,
	}
	uc := NewUserUsecase(users)

	email := "other@example.com"
	_, _, err := uc.UpdateProfile(context.Background(), callerID, UpdateProfileInput{Email: &email})
	if !errors.Is(err, ucauth.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserUpdateProfile_EmptyEmailRejected(t *testing.T) {
	callerID := uuid.New()
	users := stubUserRepo{
		users:    map[uuid.UUID]user.User{callerID: {ID: callerID, Email: "jo@example.com"}},
		profiles: map[uuid.UUID]user.Profile{callerID: {UserID: callerID}},
	}
	uc := NewUserUsecase(users)

	email := "   "
	_, _, err := uc.UpdateProfile(context.Background(), callerID, UpdateProfileInput{Email: &email})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserUpdateProfile_UnknownCaller(t *testing.T) {
	uc := NewUserUsecase(stubUserRepo{})

	name := "Jo"
	_, _, err := uc.UpdateProfile(context.Background(), uuid.New(), UpdateProfileInput{FirstName: &name})
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user.ErrNotFound, got %v", err)
	}
}
