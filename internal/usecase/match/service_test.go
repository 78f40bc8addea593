package match

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"skill-swap/internal/domain/user"
	"skill-swap/internal/pkg/aftercommit"
	"skill-swap/internal/repository/memstore"
	ucinvite "skill-swap/internal/usecase/invite"
)

type fixture struct {
	svc     *Service
	invites *ucinvite.Service
	alice   user.User
	bob     user.User
	carol   user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	users := store.Users()
	ctx := context.Background()

	mk := func(name string, have, need []string) user.User {
		u := user.User{ID: uuid.New(), Name: name, Email: name + "@test.com", PasswordHash: "hash", SkillsHave: have, SkillsNeed: need}
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
		return u
	}

	f := &fixture{}
	f.alice = mk("Alice", []string{"React", "Node.js"}, []string{"Python", "Machine Learning"})
	f.bob = mk("Bob", []string{"Python", "Django"}, []string{"React", "UI/UX"})
	f.carol = mk("Carol", []string{"UI/UX", "Figma"}, []string{"Node.js", "React"})

	f.svc = NewService(users, store.Invites())
	f.invites = ucinvite.NewService(store.Invites(), users, nil, nil, aftercommit.Sync{}, nil)
	return f
}

func ids(us []user.User) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(us))
	for _, u := range us {
		out = append(out, u.ID)
	}
	return out
}

func TestComputeMatchCandidates_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.svc.ComputeMatchCandidates(ctx, f.alice)
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if len(got) != 1 || got[0].ID != f.bob.ID {
		t.Fatalf("alice should match only bob, got %v", ids(got))
	}
	if got[0].PasswordHash != "" {
		t.Fatalf("candidates must not carry the password hash")
	}

	got, _ = f.svc.ComputeMatchCandidates(ctx, f.bob)
	if len(got) != 2 || got[0].ID != f.alice.ID || got[1].ID != f.carol.ID {
		t.Fatalf("bob should match alice and carol in population order, got %v", ids(got))
	}

	inv, err := f.invites.SendInvite(ctx, f.alice, f.bob.ID)
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	// A pending invite excludes the pair from both sides.
	got, _ = f.svc.ComputeMatchCandidates(ctx, f.alice)
	if len(got) != 0 {
		t.Fatalf("alice should have no candidates while invite is pending, got %v", ids(got))
	}
	got, _ = f.svc.ComputeMatchCandidates(ctx, f.bob)
	if len(got) != 1 || got[0].ID != f.carol.ID {
		t.Fatalf("bob should only see carol, got %v", ids(got))
	}

	if _, err := f.invites.AcceptInvite(ctx, f.bob, inv.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	alicePeers, err := f.svc.ComputeConnectedPeers(ctx, f.alice)
	if err != nil {
		t.Fatalf("peers: %v", err)
	}
	bobPeers, _ := f.svc.ComputeConnectedPeers(ctx, f.bob)
	if len(alicePeers) != 1 || alicePeers[0].ID != f.bob.ID {
		t.Fatalf("alice should be connected to bob, got %v", ids(alicePeers))
	}
	if len(bobPeers) != 1 || bobPeers[0].ID != f.alice.ID {
		t.Fatalf("connection must be symmetric, got %v", ids(bobPeers))
	}
	if alicePeers[0].PasswordHash != "" {
		t.Fatalf("peers must not carry the password hash")
	}

	got, _ = f.svc.ComputeMatchCandidates(ctx, f.alice)
	if len(got) != 0 {
		t.Fatalf("connected users are not candidates, got %v", ids(got))
	}
}

func TestComputeConnectedPeers_PendingIsNotConnected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.invites.SendInvite(ctx, f.carol, f.alice.ID); err != nil {
		t.Fatalf("send: %v", err)
	}
	peers, err := f.svc.ComputeConnectedPeers(ctx, f.carol)
	if err != nil {
		t.Fatalf("peers: %v", err)
	}
	if len(peers) != 0 {
		t.Fatalf("pending invite must not connect, got %v", ids(peers))
	}
}

func TestCompute_RejectsAnonymous(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.ComputeMatchCandidates(context.Background(), user.User{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := f.svc.ComputeConnectedPeers(context.Background(), user.User{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
