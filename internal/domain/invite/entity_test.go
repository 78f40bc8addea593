package invite

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestCheckAccept(t *testing.T) {
	sender, receiver, other := uuid.New(), uuid.New(), uuid.New()

	cases := []struct {
		name    string
		status  Status
		invoker uuid.UUID
		want    error
	}{
		{"receiver accepts pending", StatusPending, receiver, nil},
		{"sender cannot accept", StatusPending, sender, ErrNotReceiver},
		{"stranger cannot accept", StatusPending, other, ErrNotReceiver},
		{"accepted is terminal", StatusAccepted, receiver, ErrAlreadyAccepted},
		{"stranger on accepted", StatusAccepted, other, ErrNotReceiver},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := Invite{SenderID: sender, ReceiverID: receiver, Status: tc.status}
			if err := inv.CheckAccept(tc.invoker); !errors.Is(err, tc.want) {
				t.Fatalf("CheckAccept()=%v want %v", err, tc.want)
			}
		})
	}
}

func TestCounterpart(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	inv := Invite{SenderID: a, ReceiverID: b}

	if got, ok := inv.Counterpart(a); !ok || got != b {
		t.Fatalf("Counterpart(sender)=%v,%v", got, ok)
	}
	if got, ok := inv.Counterpart(b); !ok || got != a {
		t.Fatalf("Counterpart(receiver)=%v,%v", got, ok)
	}
	if _, ok := inv.Counterpart(uuid.New()); ok {
		t.Fatalf("expected ok=false for a non-party")
	}
	if !inv.Involves(a) || !inv.Involves(b) || inv.Involves(uuid.New()) {
		t.Fatalf("unexpected Involves result")
	}
}

func TestStatusValid(t *testing.T) {
	if !StatusPending.Valid() || !StatusAccepted.Valid() {
		t.Fatalf("expected known statuses valid")
	}
	if Status("REJECTED").Valid() {
		t.Fatalf("REJECTED is not part of the lifecycle")
	}
}
