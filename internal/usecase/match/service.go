package match

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"skill-swap/internal/domain/invite"
	"skill-swap/internal/domain/matching"
	"skill-swap/internal/domain/user"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

type Service struct {
	users   user.Repository
	invites invite.Repository
}

func NewService(users user.Repository, invites invite.Repository) *Service {
	return &Service{users: users, invites: invites}
}

// ComputeMatchCandidates recomputes the recommendation set from the current
// population and every invite touching u.
func (s *Service) ComputeMatchCandidates(ctx context.Context, u user.User) ([]user.User, error) {
	if u.ID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	population, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	invites, err := s.invites.ListInvolving(ctx, u.ID)
	if err != nil {
		return nil, ErrInternal
	}

	return publicAll(matching.Candidates(u, population, invites)), nil
}

func (s *Service) ComputeConnectedPeers(ctx context.Context, u user.User) ([]user.User, error) {
	if u.ID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	accepted, err := s.invites.ListAcceptedInvolving(ctx, u.ID)
	if err != nil {
		return nil, ErrInternal
	}
	ids := matching.ConnectedPeerIDs(u.ID, accepted)
	if len(ids) == 0 {
		return []user.User{}, nil
	}

	peers, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}
	return publicAll(peers), nil
}

func publicAll(in []user.User) []user.User {
	out := make([]user.User, 0, len(in))
	for _, u := range in {
		out = append(out, u.Public())
	}
	return out
}
