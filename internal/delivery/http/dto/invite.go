package dto

import (
	"time"

	"github.com/google/uuid"

	"skill-swap/internal/domain/invite"
)

type SendInviteRequest struct {
	ReceiverID string `json:"receiverId"`
}

type InviteResponse struct {
	ID           uuid.UUID  `json:"id"`
	SenderID     uuid.UUID  `json:"senderId"`
	ReceiverID   uuid.UUID  `json:"receiverId"`
	Status       string     `json:"status"`
	SenderName   string     `json:"senderName"`
	SenderEmail  string     `json:"senderEmail"`
	SenderSkills []string   `json:"senderSkills"`
	CreatedAt    time.Time  `json:"createdAt"`
	AcceptedAt   *time.Time `json:"acceptedAt"`
}

func NewInviteResponse(inv invite.Invite) InviteResponse {
	return InviteResponse{
		ID:           inv.ID,
		SenderID:     inv.SenderID,
		ReceiverID:   inv.ReceiverID,
		Status:       string(inv.Status),
		SenderName:   inv.SenderName,
		SenderEmail:  inv.SenderEmail,
		SenderSkills: nonNil(inv.SenderSkills),
		CreatedAt:    inv.CreatedAt,
		AcceptedAt:   inv.AcceptedAt,
	}
}

func NewInviteResponses(in []invite.Invite) []InviteResponse {
	out := make([]InviteResponse, 0, len(in))
	for _, inv := range in {
		out = append(out, NewInviteResponse(inv))
	}
	return out
}
