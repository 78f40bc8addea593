package notification

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"skill-swap/internal/domain/notification"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("notification not found")
	ErrForbidden    = errors.New("notification belongs to another user")
	ErrInternal     = errors.New("internal error")
)

type Service struct {
	repo notification.Repository
	now  func() time.Time
}

func NewService(repo notification.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Append(ctx context.Context, userID uuid.UUID, text string) error {
	text = strings.TrimSpace(text)
	if userID == uuid.Nil || text == "" {
		return ErrInvalidInput
	}

	n := notification.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   text,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) ListUnread(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	items, err := s.repo.ListUnread(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// MarkRead is idempotent for the owner.
func (s *Service) MarkRead(ctx context.Context, invoker, id uuid.UUID) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if n.UserID != invoker {
		return ErrForbidden
	}
	if n.IsRead {
		return nil
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return ErrInternal
	}
	return nil
}
