package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"skill-swap/internal/domain/user"
	"skill-swap/internal/pkg/jwt"
	ucauth "skill-swap/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrRevocationDisabled  = errors.New("token revocation unavailable")
	ErrInternal            = errors.New("internal error")
)

// Revoker is the token denylist consulted by Refresh and written by Logout.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) bool
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, jwt.Pair, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, jwt.Pair, error)
	Refresh(ctx context.Context, refreshToken string) (jwt.Pair, error)
	ForgotPassword(ctx context.Context, in ucauth.ForgotPasswordInput) error
	Logout(ctx context.Context, access jwt.Claims, refreshToken string) error
}

type Auth struct {
	authSvc *ucauth.Service
	users   user.Repository
	jwt     jwt.Service
	revoker Revoker
}

func NewAuthUsecase(authSvc *ucauth.Service, users user.Repository, jwtSvc jwt.Service, revoker Revoker) *Auth {
	return &Auth{authSvc: authSvc, users: users, jwt: jwtSvc, revoker: revoker}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, jwt.Pair, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, jwt.Pair{}, err
	}

	pair, err := u.jwt.IssuePair(usr.ID, usr.Email)
	if err != nil {
		return user.User{}, jwt.Pair{}, ErrInternal
	}
	return usr, pair, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, jwt.Pair, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, jwt.Pair{}, err
	}

	pair, err := u.jwt.IssuePair(usr.ID, usr.Email)
	if err != nil {
		return user.User{}, jwt.Pair{}, ErrInternal
	}
	return usr, pair, nil
}

func (u *Auth) ForgotPassword(ctx context.Context, in ucauth.ForgotPasswordInput) error {
	return u.authSvc.ForgotPassword(ctx, in)
}

// Refresh rotates the pair: the presented refresh token is revoked on a
// best-effort basis so it cannot be replayed while the denylist is up.
func (u *Auth) Refresh(ctx context.Context, refreshToken string) (jwt.Pair, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return jwt.Pair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return jwt.Pair{}, ErrRefreshTokenExpired
		}
		return jwt.Pair{}, ErrInvalidRefreshToken
	}
	if u.revoker != nil && u.revoker.IsRevoked(ctx, claims.TokenID()) {
		return jwt.Pair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return jwt.Pair{}, ErrInvalidRefreshToken
		}
		return jwt.Pair{}, ErrInternal
	}

	pair, err := u.jwt.IssuePair(usr.ID, usr.Email)
	if err != nil {
		return jwt.Pair{}, ErrInternal
	}

	if u.revoker != nil {
		_ = u.revoker.Revoke(ctx, claims.TokenID(), claims.ExpiresAt())
	}
	return pair, nil
}

// Logout revokes the access token behind the current request and, when
// given, the caller's refresh token.
func (u *Auth) Logout(ctx context.Context, access jwt.Claims, refreshToken string) error {
	if access.UserID == uuid.Nil || access.TokenID() == "" {
		return ErrUnauthorized
	}
	if u.revoker == nil {
		return ErrRevocationDisabled
	}

	if err := u.revoker.Revoke(ctx, access.TokenID(), access.ExpiresAt()); err != nil {
		return ErrRevocationDisabled
	}

	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil
	}
	rc, err := u.jwt.ValidateRefreshToken(refreshToken)
	if err != nil || rc.UserID != access.UserID {
		return nil
	}
	if err := u.revoker.Revoke(ctx, rc.TokenID(), rc.ExpiresAt()); err != nil {
		return ErrRevocationDisabled
	}
	return nil
}
