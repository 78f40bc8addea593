package invite

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the invite ledger. Implementations must enforce the
// single-PENDING-per-ordered-pair rule and the accept-once rule at write
// time.
type Repository interface {
	// Create returns ErrDuplicate when a PENDING invite already exists for
	// (SenderID, ReceiverID).
	Create(ctx context.Context, inv Invite) error
	FindByID(ctx context.Context, id uuid.UUID) (Invite, error)
	ListPendingForReceiver(ctx context.Context, receiverID uuid.UUID) ([]Invite, error)
	// ListInvolving returns invites of any status where userID is sender or receiver.
	ListInvolving(ctx context.Context, userID uuid.UUID) ([]Invite, error)
	ListAcceptedInvolving(ctx context.Context, userID uuid.UUID) ([]Invite, error)
	// MarkAccepted flips a PENDING invite addressed to receiverID to
	// ACCEPTED. It reports false when no row matched.
	MarkAccepted(ctx context.Context, id, receiverID uuid.UUID, at time.Time) (bool, error)
}
