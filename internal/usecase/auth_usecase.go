package usecase

import (
	"context"
	"errors"
	"time"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"
	ucauth "jobboard/internal/usecase/auth"
)

var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// TokenRevoker is the logout denylist. The redis-backed implementation
// degrades to a no-op when redis is down.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type TokenPair struct {
	Access  string
	Refresh string
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, user.Profile, TokenPair, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, user.Profile, TokenPair, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	authSvc *ucauth.Service
	users   user.Repository
	jwt     jwt.Service
	revoker TokenRevoker

	now func() time.Time
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service, revoker TokenRevoker) *Auth {
	return &Auth{
		authSvc: ucauth.NewService(users),
		users:   users,
		jwt:     jwtSvc,
		revoker: revoker,
		now:     time.Now,
	}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, user.Profile, TokenPair, error) {
	usr, prof, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, user.Profile{}, TokenPair{}, err
	}

	pair, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, user.Profile{}, TokenPair{}, err
	}
	return usr, prof, pair, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, user.Profile, TokenPair, error) {
	usr, prof, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, user.Profile{}, TokenPair{}, err
	}

	pair, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, user.Profile{}, TokenPair{}, err
	}
	return usr, prof, pair, nil
}

// Logout denylists the presented token for the remainder of its life.
func (u *Auth) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if u.revoker == nil {
		return nil
	}
	ttl := expiresAt.Sub(u.now())
	if ttl <= 0 {
		return nil
	}
	if err := u.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	if u.revoker != nil {
		revoked, err := u.revoker.IsRevoked(ctx, claims.ID)
		if err == nil && revoked {
			return TokenPair{}, ErrInvalidRefreshToken
		}
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, ErrInternal
	}

	return u.issueTokens(usr)
}

func (u *Auth) issueTokens(usr user.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Username)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}
