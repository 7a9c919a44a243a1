package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"

	"github.com/google/uuid"
)

type fakeRevoker struct {
	revoked map[string]time.Duration
	err     error
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: make(map[string]time.Duration)}
}

func (f *fakeRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.revoked[tokenID] = ttl
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.revoked[tokenID]
	return ok, nil
}

func newTestAuth(users stubUserRepo, revoker TokenRevoker) *Auth {
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewAuthUsecase(users, jwtSvc, revoker)
}

func TestAuthLogout_RevokesRemainingLifetime(t *testing.T) {
	revoker := newFakeRevoker()
	uc := newTestAuth(stubUserRepo{}, revoker)
	uc.now = func() time.Time { return time.Unix(1000, 0) }

	if err := uc.Logout(context.Background(), "jti-1", time.Unix(1060, 0)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ttl := revoker.revoked["jti-1"]; ttl != time.Minute {
		t.Fatalf("expected 1m ttl, got %v", ttl)
	}
}

func TestAuthLogout_ExpiredTokenIsNoop(t *testing.T) {
	revoker := newFakeRevoker()
	uc := newTestAuth(stubUserRepo{}, revoker)
	uc.now = func() time.Time { return time.Unix(1000, 0) }

	if err := uc.Logout(context.Background(), "jti-1", time.Unix(900, 0)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("an expired token needs no denylist entry")
	}
}

func TestAuthRefresh_EmptyToken(t *testing.T) {
	uc := newTestAuth(stubUserRepo{}, newFakeRevoker())

	if _, err := uc.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthRefresh_AccessTokenRejected(t *testing.T) {
	userID := uuid.New()
	users := stubUserRepo{users: map[uuid.UUID]user.User{userID: {ID: userID, Username: "jo"}}}
	uc := newTestAuth(users, newFakeRevoker())

	access, err := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour).
		GenerateAccessToken(userID, "jo")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthRefresh_RevokedTokenRejected(t *testing.T) {
	userID := uuid.New()
	users := stubUserRepo{users: map[uuid.UUID]user.User{userID: {ID: userID, Username: "jo"}}}
	revoker := newFakeRevoker()
	uc := newTestAuth(users, revoker)

	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	refresh, err := jwtSvc.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	claims, err := jwtSvc.ValidateToken(refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	revoker.revoked[claims.ID] = time.Hour

	if _, err := uc.Refresh(context.Background(), refresh); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthRefresh_Success(t *testing.T) {
	userID := uuid.New()
	users := stubUserRepo{users: map[uuid.UUID]user.User{userID: {ID: userID, Username: "jo"}}}
	uc := newTestAuth(users, newFakeRevoker())

	refresh, err := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour).
		GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	pair, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("expected a fresh token pair")
	}
}
