package dto

import (
	"time"

	"github.com/google/uuid"

	"skill-swap/internal/domain/message"
)

type SendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

type MessageResponse struct {
	ID         uuid.UUID    `json:"id"`
	SenderID   uuid.UUID    `json:"senderId"`
	ReceiverID uuid.UUID    `json:"receiverId"`
	Content    string       `json:"content"`
	IsRead     bool         `json:"isRead"`
	CreatedAt  time.Time    `json:"createdAt"`
	Sender     PeerResponse `json:"sender"`
	Receiver   PeerResponse `json:"receiver"`
}

func NewMessageResponse(m message.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
		Sender:     PeerResponse{ID: m.SenderID, Name: m.SenderName},
		Receiver:   PeerResponse{ID: m.ReceiverID, Name: m.ReceiverName},
	}
}

func NewMessageResponses(in []message.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(in))
	for _, m := range in {
		out = append(out, NewMessageResponse(m))
	}
	return out
}
