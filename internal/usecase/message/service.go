package message

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"skill-swap/internal/domain/message"
	"skill-swap/internal/domain/user"
)

const DefaultRecentLimit = 10

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrReceiverNotFound = errors.New("receiver not found")
	ErrNotFound         = errors.New("message not found")
	ErrForbidden        = errors.New("only the receiver can mark a message read")
	ErrInternal         = errors.New("internal error")
)

type Service struct {
	messages message.Repository
	users    user.Repository
	now      func() time.Time
}

func NewService(messages message.Repository, users user.Repository) *Service {
	return &Service{messages: messages, users: users, now: time.Now}
}

func (s *Service) Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (message.Message, error) {
	content = strings.TrimSpace(content)
	if senderID == uuid.Nil || receiverID == uuid.Nil || content == "" {
		return message.Message{}, ErrInvalidInput
	}
	if utf8.RuneCountInString(content) > message.MaxContentLength {
		return message.Message{}, ErrInvalidInput
	}

	if _, err := s.users.FindByID(ctx, receiverID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return message.Message{}, ErrReceiverNotFound
		}
		return message.Message{}, ErrInternal
	}

	m, err := s.messages.Create(ctx, message.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return message.Message{}, ErrInternal
	}
	return m, nil
}

// ListBetween returns the conversation between a and b, oldest first.
func (s *Service) ListBetween(ctx context.Context, a, b uuid.UUID) ([]message.Message, error) {
	if a == uuid.Nil || b == uuid.Nil {
		return nil, ErrInvalidInput
	}
	items, err := s.messages.ListBetween(ctx, a, b)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// ListUnreadRecent looks at the limit newest unread messages for userID and
// keeps the most recent one per sender.
func (s *Service) ListUnreadRecent(ctx context.Context, userID uuid.UUID, limit int) ([]message.Message, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	items, err := s.messages.ListUnreadForReceiver(ctx, userID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return message.LatestPerSender(items), nil
}

func (s *Service) MarkRead(ctx context.Context, invoker, messageID uuid.UUID) error {
	m, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, message.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if m.ReceiverID != invoker {
		return ErrForbidden
	}
	if m.IsRead {
		return nil
	}
	if err := s.messages.MarkRead(ctx, messageID); err != nil {
		return ErrInternal
	}
	return nil
}
