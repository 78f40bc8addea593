// Package matching derives match candidates and connections from a snapshot
// of the user directory and the invite ledger. Nothing here is cached or
// stored; callers recompute on every query.
package matching

import (
	"skill-swap/internal/domain/invite"
	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
)

// ConnectedPeerIDs returns the counterpart of every ACCEPTED invite
// involving userID, without duplicates, in first-seen order.
func ConnectedPeerIDs(userID uuid.UUID, invites []invite.Invite) []uuid.UUID {
	out := make([]uuid.UUID, 0)
	seen := map[uuid.UUID]struct{}{}
	for _, inv := range invites {
		if inv.Status != invite.StatusAccepted {
			continue
		}
		peer, ok := inv.Counterpart(userID)
		if !ok || peer == userID {
			continue
		}
		if _, dup := seen[peer]; dup {
			continue
		}
		seen[peer] = struct{}{}
		out = append(out, peer)
	}
	return out
}

// ExclusionSet is userID plus the counterpart of every invite involving
// userID, whatever its status or direction.
func ExclusionSet(userID uuid.UUID, invites []invite.Invite) map[uuid.UUID]struct{} {
	ex := map[uuid.UUID]struct{}{userID: {}}
	for _, inv := range invites {
		if peer, ok := inv.Counterpart(userID); ok {
			ex[peer] = struct{}{}
		}
	}
	return ex
}

// HasOverlap reports whether offered and sought share at least one label.
// Comparison is exact and case-sensitive.
func HasOverlap(offered, sought []string) bool {
	if len(offered) == 0 || len(sought) == 0 {
		return false
	}
	want := make(map[string]struct{}, len(sought))
	for _, s := range sought {
		want[s] = struct{}{}
	}
	for _, s := range offered {
		if _, ok := want[s]; ok {
			return true
		}
	}
	return false
}

// Candidates filters population down to users not yet in contact with u
// who offer at least one skill u needs. Population order is preserved.
func Candidates(u user.User, population []user.User, invites []invite.Invite) []user.User {
	ex := ExclusionSet(u.ID, invites)

	out := make([]user.User, 0)
	for _, v := range population {
		if _, skip := ex[v.ID]; skip {
			continue
		}
		if !HasOverlap(v.SkillsHave, u.SkillsNeed) {
			continue
		}
		out = append(out, v)
	}
	return out
}
