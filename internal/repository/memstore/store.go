// Package memstore is an in-process implementation of the repository
// interfaces. It enforces the same write-time invariants as the Postgres
// schema (unique e-mail, one PENDING invite per ordered pair, accept-once)
// and is used to exercise use cases and handlers without a database.
package memstore

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"skill-swap/internal/domain/invite"
	"skill-swap/internal/domain/message"
	"skill-swap/internal/domain/notification"
	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
)

var (
	_ user.Repository         = (*Users)(nil)
	_ invite.Repository       = (*Invites)(nil)
	_ message.Repository      = (*Messages)(nil)
	_ notification.Repository = (*Notifications)(nil)
)

type Store struct {
	mu sync.Mutex

	users         []user.User
	invites       []invite.Invite
	messages      []message.Message
	notifications []notification.Notification

	now func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

func (s *Store) Users() *Users                 { return &Users{s: s} }
func (s *Store) Invites() *Invites             { return &Invites{s: s} }
func (s *Store) Messages() *Messages           { return &Messages{s: s} }
func (s *Store) Notifications() *Notifications { return &Notifications{s: s} }

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}

func cloneUser(u user.User) user.User {
	u.SkillsHave = cloneStrings(u.SkillsHave)
	u.SkillsNeed = cloneStrings(u.SkillsNeed)
	return u
}

func cloneInvite(inv invite.Invite) invite.Invite {
	inv.SenderSkills = cloneStrings(inv.SenderSkills)
	if inv.AcceptedAt != nil {
		at := *inv.AcceptedAt
		inv.AcceptedAt = &at
	}
	return inv
}

type Users struct{ s *Store }

func (r *Users) Create(_ context.Context, u user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	now := r.s.now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	r.s.users = append(r.s.users, cloneUser(u))
	return nil
}

func (r *Users) FindByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *Users) FindByEmail(_ context.Context, email string) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *Users) FindByIDs(_ context.Context, ids []uuid.UUID) ([]user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	want := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]user.User, 0, len(ids))
	for _, u := range r.s.users {
		if _, ok := want[u.ID]; ok {
			out = append(out, cloneUser(u))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Users) ListAll(_ context.Context) ([]user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]user.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *Users) UpdateCredential(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.users {
		if r.s.users[i].ID == id {
			r.s.users[i].PasswordHash = passwordHash
			r.s.users[i].UpdatedAt = r.s.now()
			return nil
		}
	}
	return user.ErrNotFound
}

type Invites struct{ s *Store }

func (r *Invites) Create(_ context.Context, inv invite.Invite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if inv.Status == invite.StatusPending {
		for _, existing := range r.s.invites {
			if existing.Status == invite.StatusPending &&
				existing.SenderID == inv.SenderID &&
				existing.ReceiverID == inv.ReceiverID {
				return invite.ErrDuplicate
			}
		}
	}
	r.s.invites = append(r.s.invites, cloneInvite(inv))
	return nil
}

func (r *Invites) FindByID(_ context.Context, id uuid.UUID) (invite.Invite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, inv := range r.s.invites {
		if inv.ID == id {
			return cloneInvite(inv), nil
		}
	}
	return invite.Invite{}, invite.ErrNotFound
}

func (r *Invites) ListPendingForReceiver(_ context.Context, receiverID uuid.UUID) ([]invite.Invite, error) {
	return r.filter(func(inv invite.Invite) bool {
		return inv.ReceiverID == receiverID && inv.Status == invite.StatusPending
	}), nil
}

func (r *Invites) ListInvolving(_ context.Context, userID uuid.UUID) ([]invite.Invite, error) {
	return r.filter(func(inv invite.Invite) bool { return inv.Involves(userID) }), nil
}

func (r *Invites) ListAcceptedInvolving(_ context.Context, userID uuid.UUID) ([]invite.Invite, error) {
	return r.filter(func(inv invite.Invite) bool {
		return inv.Status == invite.StatusAccepted && inv.Involves(userID)
	}), nil
}

func (r *Invites) MarkAccepted(_ context.Context, id, receiverID uuid.UUID, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.invites {
		inv := &r.s.invites[i]
		if inv.ID != id || inv.ReceiverID != receiverID || inv.Status != invite.StatusPending {
			continue
		}
		inv.Status = invite.StatusAccepted
		accepted := at
		inv.AcceptedAt = &accepted
		return true, nil
	}
	return false, nil
}

// Count returns how many invites exist from sender to receiver, any status.
func (r *Invites) Count(sender, receiver uuid.UUID) int {
	return len(r.filter(func(inv invite.Invite) bool {
		return inv.SenderID == sender && inv.ReceiverID == receiver
	}))
}

func (r *Invites) filter(keep func(invite.Invite) bool) []invite.Invite {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]invite.Invite, 0)
	for _, inv := range r.s.invites {
		if keep(inv) {
			out = append(out, cloneInvite(inv))
		}
	}
	return out
}

type Messages struct{ s *Store }

func (r *Messages) Create(_ context.Context, m message.Message) (message.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m.SenderName = r.s.nameOf(m.SenderID)
	m.ReceiverName = r.s.nameOf(m.ReceiverID)
	r.s.messages = append(r.s.messages, m)
	return m, nil
}

func (r *Messages) FindByID(_ context.Context, id uuid.UUID) (message.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return message.Message{}, message.ErrNotFound
}

func (r *Messages) ListBetween(_ context.Context, a, b uuid.UUID) ([]message.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]message.Message, 0)
	for _, m := range r.s.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *Messages) ListUnreadForReceiver(_ context.Context, receiverID uuid.UUID, limit int) ([]message.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]message.Message, 0)
	for i := len(r.s.messages) - 1; i >= 0; i-- {
		m := r.s.messages[i]
		if m.ReceiverID == receiverID && !m.IsRead {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Messages) MarkRead(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.messages {
		if r.s.messages[i].ID == id {
			r.s.messages[i].IsRead = true
			return nil
		}
	}
	return message.ErrNotFound
}

type Notifications struct{ s *Store }

func (r *Notifications) Create(_ context.Context, n notification.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.notifications = append(r.s.notifications, n)
	return nil
}

func (r *Notifications) FindByID(_ context.Context, id uuid.UUID) (notification.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, n := range r.s.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return notification.Notification{}, notification.ErrNotFound
}

func (r *Notifications) ListUnread(_ context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]notification.Notification, 0)
	for i := len(r.s.notifications) - 1; i >= 0; i-- {
		n := r.s.notifications[i]
		if n.UserID == userID && !n.IsRead {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Notifications) MarkRead(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.notifications {
		if r.s.notifications[i].ID == id {
			r.s.notifications[i].IsRead = true
			return nil
		}
	}
	return notification.ErrNotFound
}

// Count returns every notification stored for userID, read or not.
func (r *Notifications) Count(userID uuid.UUID) int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n := 0
	for _, it := range r.s.notifications {
		if it.UserID == userID {
			n++
		}
	}
	return n
}

func (s *Store) nameOf(id uuid.UUID) string {
	for _, u := range s.users {
		if u.ID == id {
			return u.Name
		}
	}
	return ""
}
