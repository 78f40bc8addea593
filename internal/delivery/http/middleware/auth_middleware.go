package middleware

import (
	"context"
	"errors"
	"strings"

	"skill-swap/internal/domain/user"
	"skill-swap/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxUserIDKey = "user_id"
	CtxUserKey   = "user"
	CtxClaimsKey = "claims"
)

// Denylist reports revoked token ids.
type Denylist interface {
	IsRevoked(ctx context.Context, tokenID string) bool
}

type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (user.User, error)
}

type AuthMiddleware struct {
	jwt      jwt.Service
	denylist Denylist
	users    UserFinder
}

func NewAuthMiddleware(jwtSvc jwt.Service, denylist Denylist, users UserFinder) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, denylist: denylist, users: users}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateAccessToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		if m.denylist != nil && m.denylist.IsRevoked(c.Context(), claims.TokenID()) {
			return NewAppError(fiber.StatusUnauthorized, "Token revoked", nil, nil)
		}

		usr, err := m.users.FindByID(c.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
			}
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}

		c.Locals(CtxUserIDKey, usr.ID)
		c.Locals(CtxUserKey, usr.Public())
		c.Locals(CtxClaimsKey, claims)

		return c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware.
func CurrentUser(c fiber.Ctx) (user.User, bool) {
	u, ok := c.Locals(CtxUserKey).(user.User)
	if !ok || u.ID == uuid.Nil {
		return user.User{}, false
	}
	return u, true
}

func CurrentClaims(c fiber.Ctx) (jwt.Claims, bool) {
	claims, ok := c.Locals(CtxClaimsKey).(jwt.Claims)
	return claims, ok
}

func BearerToken(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
