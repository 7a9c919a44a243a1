package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobboard/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUserIDKey      = "user_id"
	CtxUsernameKey    = "username"
	CtxTokenIDKey     = "token_id"
	CtxTokenExpiryKey = "token_expiry"
)

type revocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthMiddleware struct {
	jwt     jwt.Service
	revoked revocationChecker
}

func NewAuthMiddleware(jwtSvc jwt.Service, revoked revocationChecker) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, revoked: revoked}
}

// Middleware resolves the acting identity from the Authorization header
// and stores it in the request context; handlers read it from there and
// pass it down explicitly.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}
		if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
		}

		if m.revoked != nil {
			revoked, err := m.revoked.IsRevoked(c.Context(), claims.ID)
			if err == nil && revoked {
				return NewAppError(fiber.StatusUnauthorized, "Token revoked", nil, nil)
			}
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxUsernameKey, claims.Username)
		c.Locals(CtxTokenIDKey, claims.ID)
		if claims.ExpiresAt != nil {
			c.Locals(CtxTokenExpiryKey, claims.ExpiresAt.Time)
		} else {
			c.Locals(CtxTokenExpiryKey, time.Time{})
		}

		return c.Next()
	}
}

// BearerToken extracts the credential from an Authorization header.
func BearerToken(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
