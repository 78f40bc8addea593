package repository

import (
	"context"
	"fmt"
	"time"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/invite"

	"github.com/google/uuid"
)

const (
	inviteColumns = `id, sender_id, receiver_id, status, sender_name, sender_email, sender_skills, created_at, accepted_at`

	pendingPairIndex = "invites_pending_pair_key"
)

type PostgresInviteRepository struct {
	db database.DB
}

func NewPostgresInviteRepository(db database.DB) *PostgresInviteRepository {
	return &PostgresInviteRepository{db: db}
}

// Create relies on the partial unique index over PENDING (sender, receiver)
// pairs; a concurrent duplicate loses at insert time.
func (r *PostgresInviteRepository) Create(ctx context.Context, inv invite.Invite) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO invites (id, sender_id, receiver_id, status, sender_name, sender_email, sender_skills, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		inv.ID, inv.SenderID, inv.ReceiverID, string(inv.Status),
		inv.SenderName, inv.SenderEmail, nonNil(inv.SenderSkills), inv.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, pendingPairIndex) {
			return invite.ErrDuplicate
		}
		return fmt.Errorf("insert invite: %w", err)
	}
	return nil
}

func (r *PostgresInviteRepository) FindByID(ctx context.Context, id uuid.UUID) (invite.Invite, error) {
	row := r.db.QueryRow(ctx, `SELECT `+inviteColumns+` FROM invites WHERE id = $1`, id)
	inv, err := scanInvite(row)
	if err != nil {
		if database.IsNoRows(err) {
			return invite.Invite{}, invite.ErrNotFound
		}
		return invite.Invite{}, err
	}
	return inv, nil
}

func (r *PostgresInviteRepository) ListPendingForReceiver(ctx context.Context, receiverID uuid.UUID) ([]invite.Invite, error) {
	return r.list(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE receiver_id = $1 AND status = 'PENDING'
		 ORDER BY created_at ASC, id ASC`,
		receiverID,
	)
}

func (r *PostgresInviteRepository) ListInvolving(ctx context.Context, userID uuid.UUID) ([]invite.Invite, error) {
	return r.list(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE sender_id = $1 OR receiver_id = $1
		 ORDER BY created_at ASC, id ASC`,
		userID,
	)
}

func (r *PostgresInviteRepository) ListAcceptedInvolving(ctx context.Context, userID uuid.UUID) ([]invite.Invite, error) {
	return r.list(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE status = 'ACCEPTED' AND (sender_id = $1 OR receiver_id = $1)
		 ORDER BY accepted_at ASC NULLS LAST, id ASC`,
		userID,
	)
}

// MarkAccepted is a conditional update: it only matches while the invite is
// still PENDING and addressed to receiverID, so it succeeds at most once.
func (r *PostgresInviteRepository) MarkAccepted(ctx context.Context, id, receiverID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE invites SET status = 'ACCEPTED', accepted_at = $3
		 WHERE id = $1 AND receiver_id = $2 AND status = 'PENDING'`,
		id, receiverID, at,
	)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *PostgresInviteRepository) list(ctx context.Context, query string, args ...any) ([]invite.Invite, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]invite.Invite, 0)
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanInvite(row database.Row) (invite.Invite, error) {
	var inv invite.Invite
	var status string
	err := row.Scan(
		&inv.ID, &inv.SenderID, &inv.ReceiverID, &status,
		&inv.SenderName, &inv.SenderEmail, &inv.SenderSkills,
		&inv.CreatedAt, &inv.AcceptedAt,
	)
	if err != nil {
		return invite.Invite{}, err
	}
	inv.Status = invite.Status(status)
	if !inv.Status.Valid() {
		return invite.Invite{}, fmt.Errorf("invite %s: unknown status %q", inv.ID, status)
	}
	return inv, nil
}
