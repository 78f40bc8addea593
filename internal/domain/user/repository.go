package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Repository is the user directory.
type Repository interface {
	Create(ctx context.Context, u User) error
	FindByID(ctx context.Context, id uuid.UUID) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error)
	ListAll(ctx context.Context) ([]User, error)
	UpdateCredential(ctx context.Context, id uuid.UUID, passwordHash string) error
}
