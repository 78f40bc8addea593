package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService(now time.Time) *HMACService {
	s := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	s.now = func() time.Time { return now }
	return s
}

func TestIssuePair_RoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := newTestService(now)
	uid := uuid.New()

	pair, err := s.IssuePair(uid, "alice@test.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	ac, err := s.ValidateAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("validate access: %v", err)
	}
	if ac.UserID != uid || ac.Email != "alice@test.com" || ac.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected access claims: %+v", ac)
	}
	if ac.TokenID() == "" {
		t.Fatalf("expected jti")
	}
	if !ac.ExpiresAt().Equal(now.Add(15 * time.Minute)) {
		t.Fatalf("unexpected exp %s", ac.ExpiresAt())
	}

	rc, err := s.ValidateRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("validate refresh: %v", err)
	}
	if rc.UserID != uid || rc.TokenType != TokenTypeRefresh {
		t.Fatalf("unexpected refresh claims: %+v", rc)
	}
}

func TestValidate_RejectsCrossedTokenTypes(t *testing.T) {
	s := newTestService(time.Now())
	pair, err := s.IssuePair(uuid.New(), "bob@test.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := s.ValidateAccessToken(pair.RefreshToken); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for refresh used as access, got %v", err)
	}
	if _, err := s.ValidateRefreshToken(pair.AccessToken); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for access used as refresh, got %v", err)
	}
}

func TestValidate_Expired(t *testing.T) {
	issued := time.Now().Add(-time.Hour)
	s := newTestService(issued)
	pair, err := s.IssuePair(uuid.New(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	s.now = time.Now
	if _, err := s.ValidateAccessToken(pair.AccessToken); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_Garbage(t *testing.T) {
	s := newTestService(time.Now())
	if _, err := s.ValidateAccessToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestIssuePair_MissingSecret(t *testing.T) {
	s := NewHMACService("", "r", time.Minute, time.Minute)
	if _, err := s.IssuePair(uuid.New(), ""); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
