package matching

import (
	"testing"

	"skill-swap/internal/domain/invite"
	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
)

type fixture struct {
	alice, bob, carol, dave user.User
	all                     []user.User
}

func newFixture() fixture {
	f := fixture{
		alice: user.User{ID: uuid.New(), Name: "Alice", SkillsHave: []string{"JS", "React"}, SkillsNeed: []string{"Python", "Design"}},
		bob:   user.User{ID: uuid.New(), Name: "Bob", SkillsHave: []string{"Python", "Node"}, SkillsNeed: []string{"React"}},
		carol: user.User{ID: uuid.New(), Name: "Carol", SkillsHave: []string{"Design", "Figma"}, SkillsNeed: []string{"JS"}},
		dave:  user.User{ID: uuid.New(), Name: "Dave", SkillsHave: []string{"Rust"}, SkillsNeed: []string{"Python"}},
	}
	f.all = []user.User{f.alice, f.bob, f.carol, f.dave}
	return f
}

func ids(us []user.User) map[uuid.UUID]bool {
	out := map[uuid.UUID]bool{}
	for _, u := range us {
		out[u.ID] = true
	}
	return out
}

func pending(from, to user.User) invite.Invite {
	return invite.Invite{ID: uuid.New(), SenderID: from.ID, ReceiverID: to.ID, Status: invite.StatusPending}
}

func accepted(from, to user.User) invite.Invite {
	inv := pending(from, to)
	inv.Status = invite.StatusAccepted
	return inv
}

func TestCandidates_Scenario(t *testing.T) {
	f := newFixture()

	got := ids(Candidates(f.alice, f.all, nil))
	if len(got) != 2 || !got[f.bob.ID] || !got[f.carol.ID] {
		t.Fatalf("no invites: expected {Bob, Carol}, got %v", got)
	}

	invites := []invite.Invite{pending(f.alice, f.bob)}
	got = ids(Candidates(f.alice, f.all, invites))
	if len(got) != 1 || !got[f.carol.ID] {
		t.Fatalf("after invite to Bob: expected {Carol}, got %v", got)
	}

	invites[0].Status = invite.StatusAccepted
	got = ids(Candidates(f.alice, f.all, invites))
	if got[f.bob.ID] {
		t.Fatalf("after accept: Bob must stay excluded")
	}

	peers := ConnectedPeerIDs(f.alice.ID, invites)
	if len(peers) != 1 || peers[0] != f.bob.ID {
		t.Fatalf("expected Alice connected to Bob, got %v", peers)
	}
}

func TestCandidates_ExcludesEitherDirection(t *testing.T) {
	f := newFixture()

	invites := []invite.Invite{pending(f.carol, f.alice)}
	got := ids(Candidates(f.alice, f.all, invites))
	if got[f.carol.ID] {
		t.Fatalf("received invite must exclude the sender")
	}
	if !got[f.bob.ID] {
		t.Fatalf("unrelated invite must not exclude Bob")
	}
}

func TestCandidates_NeverSelf(t *testing.T) {
	narcissist := user.User{ID: uuid.New(), SkillsHave: []string{"Go"}, SkillsNeed: []string{"Go"}}
	if got := Candidates(narcissist, []user.User{narcissist}, nil); len(got) != 0 {
		t.Fatalf("user must not match themselves, got %v", got)
	}
}

func TestCandidates_CaseSensitive(t *testing.T) {
	u := user.User{ID: uuid.New(), SkillsNeed: []string{"python"}}
	v := user.User{ID: uuid.New(), SkillsHave: []string{"Python"}}
	if got := Candidates(u, []user.User{v}, nil); len(got) != 0 {
		t.Fatalf("expected no match across case, got %v", got)
	}
}

func TestCandidates_PreservesPopulationOrder(t *testing.T) {
	u := user.User{ID: uuid.New(), SkillsNeed: []string{"X"}}
	a := user.User{ID: uuid.New(), Name: "a", SkillsHave: []string{"X"}}
	b := user.User{ID: uuid.New(), Name: "b", SkillsHave: []string{"X"}}
	c := user.User{ID: uuid.New(), Name: "c", SkillsHave: []string{"X"}}

	got := Candidates(u, []user.User{c, a, b}, nil)
	if len(got) != 3 || got[0].Name != "c" || got[1].Name != "a" || got[2].Name != "b" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestConnectedPeerIDs_Symmetric(t *testing.T) {
	f := newFixture()
	invites := []invite.Invite{
		accepted(f.alice, f.bob),
		accepted(f.carol, f.alice),
		pending(f.alice, f.dave),
		accepted(f.bob, f.carol),
	}

	alicePeers := map[uuid.UUID]bool{}
	for _, id := range ConnectedPeerIDs(f.alice.ID, invites) {
		alicePeers[id] = true
	}
	if len(alicePeers) != 2 || !alicePeers[f.bob.ID] || !alicePeers[f.carol.ID] {
		t.Fatalf("unexpected Alice peers: %v", alicePeers)
	}

	for _, u := range f.all {
		for _, peer := range ConnectedPeerIDs(u.ID, invites) {
			back := false
			for _, id := range ConnectedPeerIDs(peer, invites) {
				if id == u.ID {
					back = true
				}
			}
			if !back {
				t.Fatalf("connection %s -> %s is not symmetric", u.Name, peer)
			}
		}
	}
}

func TestConnectedPeerIDs_DedupesMutualAccepts(t *testing.T) {
	f := newFixture()
	invites := []invite.Invite{accepted(f.alice, f.bob), accepted(f.bob, f.alice)}

	if got := ConnectedPeerIDs(f.alice.ID, invites); len(got) != 1 {
		t.Fatalf("expected a single peer, got %v", got)
	}
}

func TestHasOverlap(t *testing.T) {
	cases := []struct {
		name    string
		offered []string
		sought  []string
		want    bool
	}{
		{"overlap", []string{"a", "b"}, []string{"b"}, true},
		{"disjoint", []string{"a"}, []string{"b"}, false},
		{"empty offered", nil, []string{"a"}, false},
		{"empty sought", []string{"a"}, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasOverlap(tc.offered, tc.sought); got != tc.want {
				t.Fatalf("HasOverlap()=%v want %v", got, tc.want)
			}
		})
	}
}
