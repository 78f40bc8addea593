package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTokenDenylist_Unavailable(t *testing.T) {
	d := &TokenDenylist{now: time.Now}
	ctx := context.Background()

	if err := d.Revoke(ctx, "jti", time.Now().Add(time.Hour)); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if d.IsRevoked(ctx, "jti") {
		t.Fatalf("unavailable denylist must report not revoked")
	}
	if err := d.Close(); err != nil {
		t.Fatalf("unexpected close err: %v", err)
	}
}

func TestTokenDenylist_NilReceiver(t *testing.T) {
	var d *TokenDenylist
	if d.IsRevoked(context.Background(), "jti") {
		t.Fatalf("nil denylist must report not revoked")
	}
	if err := d.Revoke(context.Background(), "jti", time.Now().Add(time.Minute)); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
