package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/domain/user"
)

var (
	ErrPasswordMismatch   = errors.New("password fields did not match")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

type RegisterInput struct {
	Username             string
	Email                string
	Password             string
	PasswordConfirmation string
	IsEmployer           bool
	FirstName            string
	LastName             string
}

type LoginInput struct {
	Username string
	Password string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// Register creates the user and its profile in one transaction; a user
// row never exists without a profile row.
func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, user.Profile, error) {
	username := strings.TrimSpace(in.Username)
	email := normalizeEmail(in.Email)
	if username == "" || email == "" {
		return user.User{}, user.Profile{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return user.User{}, user.Profile{}, ErrInvalidInput
	}
	if in.Password != in.PasswordConfirmation {
		return user.User{}, user.Profile{}, ErrPasswordMismatch
	}

	if taken, err := s.users.ExistsByEmail(ctx, email); err != nil {
		return user.User{}, user.Profile{}, ErrInternal
	} else if taken {
		return user.User{}, user.Profile{}, ErrEmailTaken
	}
	if taken, err := s.users.ExistsByUsername(ctx, username); err != nil {
		return user.User{}, user.Profile{}, ErrInternal
	} else if taken {
		return user.User{}, user.Profile{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, user.Profile{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
	}
	p := user.Profile{
		ID:         uuid.New(),
		UserID:     u.ID,
		IsEmployer: in.IsEmployer,
	}

	if err := s.users.CreateWithProfile(ctx, u, p); err != nil {
		// the existence checks above race with concurrent registrations;
		// the unique constraints are the backstop
		if taken, exErr := s.users.ExistsByEmail(ctx, email); exErr == nil && taken {
			return user.User{}, user.Profile{}, ErrEmailTaken
		}
		if taken, exErr := s.users.ExistsByUsername(ctx, username); exErr == nil && taken {
			return user.User{}, user.Profile{}, ErrUsernameTaken
		}
		return user.User{}, user.Profile{}, ErrInternal
	}

	created, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return user.User{}, user.Profile{}, ErrInternal
	}
	profile, err := s.users.GetProfile(ctx, u.ID)
	if err != nil {
		return user.User{}, user.Profile{}, ErrInternal
	}
	return sanitizeUser(created), profile, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, user.Profile, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return user.User{}, user.Profile{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.Profile{}, ErrInvalidCredentials
		}
		return user.User{}, user.Profile{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, user.Profile{}, ErrInvalidCredentials
	}

	profile, err := s.users.GetProfile(ctx, u.ID)
	if err != nil {
		return user.User{}, user.Profile{}, ErrInternal
	}
	return sanitizeUser(u), profile, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
