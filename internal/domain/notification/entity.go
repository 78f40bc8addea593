package notification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("notification not found")

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, n Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (Notification, error)
	// ListUnread returns the user's unread notifications, newest first.
	ListUnread(ctx context.Context, userID uuid.UUID) ([]Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}
