package auth

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users    map[uuid.UUID]user.User
	byName   map[string]uuid.UUID
	profiles map[uuid.UUID]user.Profile

	takenEmails    map[string]bool
	takenUsernames map[string]bool

	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:          make(map[uuid.UUID]user.User),
		byName:         make(map[string]uuid.UUID),
		profiles:       make(map[uuid.UUID]user.Profile),
		takenEmails:    make(map[string]bool),
		takenUsernames: make(map[string]bool),
	}
}

func (f *fakeUserRepo) CreateWithProfile(_ context.Context, u user.User, p user.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[u.ID] = u
	f.byName[u.Username] = u.ID
	f.profiles[u.ID] = p
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	id, ok := f.byName[username]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return f.takenEmails[email], nil
}

func (f *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	return f.takenUsernames[username], nil
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetProfile(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return user.Profile{}, user.ErrNotFound
	}
	return p, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, p user.Profile) error {
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeUserRepo) IsEmployer(_ context.Context, userID uuid.UUID) (bool, error) {
	return f.profiles[userID].IsEmployer, nil
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username:             "jo",
		Email:                "jo@example.com",
		Password:             "hunter22!",
		PasswordConfirmation: "hunter22!",
		IsEmployer:           true,
		FirstName:            "Jo",
		LastName:             "Doe",
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	in := validRegisterInput()
	in.PasswordConfirmation = "something else"
	_, _, err := svc.Register(context.Background(), in)
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	in := validRegisterInput()
	in.Password = "short"
	in.PasswordConfirmation = "short"
	_, _, err := svc.Register(context.Background(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	repo.takenEmails["jo@example.com"] = true
	svc := NewService(repo)

	_, _, err := svc.Register(context.Background(), validRegisterInput())
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	repo := newFakeUserRepo()
	repo.takenUsernames["jo"] = true
	svc := NewService(repo)

	_, _, err := svc.Register(context.Background(), validRegisterInput())
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	u, p, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatalf("returned user must not carry the password hash")
	}
	if !p.IsEmployer {
		t.Fatalf("expected an employer profile")
	}

	stored := repo.users[u.ID]
	if stored.PasswordHash == "" || stored.PasswordHash == "hunter22!" {
		t.Fatalf("stored password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22!")); err != nil {
		t.Fatalf("stored hash does not match the password: %v", err)
	}
	if _, ok := repo.profiles[u.ID]; !ok {
		t.Fatalf("profile must be created with the user")
	}
}

func TestRegister_EmailNormalized(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	in := validRegisterInput()
	in.Email = "  Jo@Example.COM "
	u, _, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "jo@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	_, _, err := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "whatever1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	if _, _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, _, err := svc.Login(context.Background(), LoginInput{Username: "jo", Password: "wrong password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	if _, _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	u, p, err := svc.Login(context.Background(), LoginInput{Username: "jo", Password: "hunter22!"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Username != "jo" {
		t.Fatalf("unexpected user")
	}
	if u.PasswordHash != "" {
		t.Fatalf("returned user must not carry the password hash")
	}
	if !p.IsEmployer {
		t.Fatalf("expected the stored profile back")
	}
}
