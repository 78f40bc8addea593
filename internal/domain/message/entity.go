package message

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const MaxContentLength = 4000

var ErrNotFound = errors.New("message not found")

type Message struct {
	ID           uuid.UUID
	SenderID     uuid.UUID
	SenderName   string
	ReceiverID   uuid.UUID
	ReceiverName string
	Content      string
	IsRead       bool
	CreatedAt    time.Time
}

type Repository interface {
	// Create stores m and returns it with the party names filled in.
	Create(ctx context.Context, m Message) (Message, error)
	FindByID(ctx context.Context, id uuid.UUID) (Message, error)
	// ListBetween returns messages in either direction, oldest first.
	ListBetween(ctx context.Context, a, b uuid.UUID) ([]Message, error)
	// ListUnreadForReceiver returns at most limit unread messages, newest first.
	ListUnreadForReceiver(ctx context.Context, receiverID uuid.UUID, limit int) ([]Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// LatestPerSender keeps the first message seen for each sender. Applied to
// a newest-first list it yields the most recent message per sender.
func LatestPerSender(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	seen := make(map[uuid.UUID]struct{}, len(msgs))
	for _, m := range msgs {
		if _, ok := seen[m.SenderID]; ok {
			continue
		}
		seen[m.SenderID] = struct{}{}
		out = append(out, m)
	}
	return out
}
