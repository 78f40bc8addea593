package dto

import (
	"time"

	"github.com/google/uuid"

	"skill-swap/internal/domain/user"
)

type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Qualification string    `json:"qualification"`
	Email         string    `json:"email"`
	Mobile        string    `json:"mobile"`
	SkillsHave    []string  `json:"skillsHave"`
	SkillsNeed    []string  `json:"skillsNeed"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Qualification: u.Qualification,
		Email:         u.Email,
		Mobile:        u.Mobile,
		SkillsHave:    nonNil(u.SkillsHave),
		SkillsNeed:    nonNil(u.SkillsNeed),
		CreatedAt:     u.CreatedAt,
	}
}

func NewUserResponses(in []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(in))
	for _, u := range in {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// PeerResponse is the short projection used in message and connection lists.
type PeerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
