package invite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"skill-swap/internal/domain/invite"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/infrastructure/mail"
	"skill-swap/internal/pkg/aftercommit"
	"skill-swap/internal/pkg/logger"
)

const (
	AcceptedMailSubject = "Skill Swap Invite Accepted 🎉"

	acceptedNotificationFormat = "%s accepted your skill swap invite"
	acceptedMailBodyFormat     = "%s has accepted your skill swap invite."
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrReceiverNotFound = errors.New("receiver not found")
	ErrInternal         = errors.New("internal error")
)

// Notifier appends an in-app notification for a user.
type Notifier interface {
	Append(ctx context.Context, userID uuid.UUID, text string) error
}

type Service struct {
	invites  invite.Repository
	users    user.Repository
	notifier Notifier
	mailer   mail.Sender
	after    aftercommit.Runner
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(
	invites invite.Repository,
	users user.Repository,
	notifier Notifier,
	mailer mail.Sender,
	after aftercommit.Runner,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if after == nil {
		after = aftercommit.Sync{Logger: log}
	}
	return &Service{
		invites:  invites,
		users:    users,
		notifier: notifier,
		mailer:   mailer,
		after:    after,
		logger:   log,
		now:      time.Now,
	}
}

// SendInvite records a PENDING invite from sender to receiverID with a
// snapshot of the sender's profile. A PENDING invite for the same ordered
// pair is rejected by the store with invite.ErrDuplicate.
func (s *Service) SendInvite(ctx context.Context, sender user.User, receiverID uuid.UUID) (invite.Invite, error) {
	if sender.ID == uuid.Nil || receiverID == uuid.Nil {
		return invite.Invite{}, ErrInvalidInput
	}
	if sender.ID == receiverID {
		return invite.Invite{}, invite.ErrSelfInvite
	}

	if _, err := s.users.FindByID(ctx, receiverID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return invite.Invite{}, ErrReceiverNotFound
		}
		return invite.Invite{}, ErrInternal
	}

	inv := invite.Invite{
		ID:           uuid.New(),
		SenderID:     sender.ID,
		ReceiverID:   receiverID,
		Status:       invite.StatusPending,
		SenderName:   sender.Name,
		SenderEmail:  sender.Email,
		SenderSkills: append([]string{}, sender.SkillsHave...),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.invites.Create(ctx, inv); err != nil {
		if errors.Is(err, invite.ErrDuplicate) {
			return invite.Invite{}, invite.ErrDuplicate
		}
		logger.From(ctx, s.logger).Error("create invite failed", zap.Error(err))
		return invite.Invite{}, ErrInternal
	}
	return inv, nil
}

func (s *Service) ListPendingInvites(ctx context.Context, receiver user.User) ([]invite.Invite, error) {
	items, err := s.invites.ListPendingForReceiver(ctx, receiver.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// AcceptInvite moves a PENDING invite addressed to invoker to ACCEPTED and
// then notifies the sender. Notification and e-mail failures never fail
// the acceptance.
func (s *Service) AcceptInvite(ctx context.Context, invoker user.User, inviteID uuid.UUID) (invite.Invite, error) {
	if inviteID == uuid.Nil {
		return invite.Invite{}, invite.ErrNotFound
	}

	inv, err := s.invites.FindByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, invite.ErrNotFound) {
			return invite.Invite{}, invite.ErrNotFound
		}
		return invite.Invite{}, ErrInternal
	}
	if err := inv.CheckAccept(invoker.ID); err != nil {
		return invite.Invite{}, err
	}

	at := s.now().UTC()
	ok, err := s.invites.MarkAccepted(ctx, inv.ID, invoker.ID, at)
	if err != nil {
		logger.From(ctx, s.logger).Error("accept invite failed", zap.String("invite_id", inv.ID.String()), zap.Error(err))
		return invite.Invite{}, ErrInternal
	}
	if !ok {
		// Lost the race against a concurrent accept.
		return invite.Invite{}, invite.ErrAlreadyAccepted
	}

	inv.Status = invite.StatusAccepted
	inv.AcceptedAt = &at

	s.after.Run(ctx, s.acceptedActions(inv, invoker)...)
	return inv, nil
}

func (s *Service) acceptedActions(inv invite.Invite, invoker user.User) []aftercommit.Action {
	actions := make([]aftercommit.Action, 0, 2)
	if s.notifier != nil {
		actions = append(actions, aftercommit.Action{
			Name: "invite.accepted.notification",
			Fn: func(ctx context.Context) error {
				return s.notifier.Append(ctx, inv.SenderID, fmt.Sprintf(acceptedNotificationFormat, invoker.Name))
			},
		})
	}
	if s.mailer != nil {
		actions = append(actions, aftercommit.Action{
			Name: "invite.accepted.email",
			Fn: func(ctx context.Context) error {
				return s.mailer.Send(ctx, inv.SenderEmail, AcceptedMailSubject, fmt.Sprintf(acceptedMailBodyFormat, invoker.Name))
			},
		})
	}
	return actions
}
