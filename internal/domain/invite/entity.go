package invite

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusAccepted
}

var (
	ErrNotFound        = errors.New("invite not found")
	ErrDuplicate       = errors.New("invite already sent")
	ErrNotReceiver     = errors.New("only the receiver can accept an invite")
	ErrAlreadyAccepted = errors.New("invite already accepted")
	ErrSelfInvite      = errors.New("cannot invite yourself")
)

// Invite is a directed connection request. The Sender* fields snapshot the
// sender's profile at send time.
type Invite struct {
	ID           uuid.UUID
	SenderID     uuid.UUID
	ReceiverID   uuid.UUID
	Status       Status
	SenderName   string
	SenderEmail  string
	SenderSkills []string
	CreatedAt    time.Time
	AcceptedAt   *time.Time
}

// Involves reports whether userID is either party of the invite.
func (i Invite) Involves(userID uuid.UUID) bool {
	return i.SenderID == userID || i.ReceiverID == userID
}

// Counterpart returns the party opposite to userID. ok is false when
// userID is not a party.
func (i Invite) Counterpart(userID uuid.UUID) (uuid.UUID, bool) {
	switch userID {
	case i.SenderID:
		return i.ReceiverID, true
	case i.ReceiverID:
		return i.SenderID, true
	default:
		return uuid.Nil, false
	}
}

// CheckAccept validates the PENDING -> ACCEPTED transition for invoker.
func (i Invite) CheckAccept(invoker uuid.UUID) error {
	if i.ReceiverID != invoker {
		return ErrNotReceiver
	}
	if i.Status != StatusPending {
		return ErrAlreadyAccepted
	}
	return nil
}
