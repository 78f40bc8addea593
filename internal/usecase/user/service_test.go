package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"skill-swap/internal/domain/user"
	"skill-swap/internal/repository/memstore"
)

func TestGetMe(t *testing.T) {
	users := memstore.New().Users()
	u := user.User{ID: uuid.New(), Name: "Alice", Email: "alice@test.com", PasswordHash: "hash", SkillsHave: []string{"React"}}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewService(users)

	got, err := s.GetMe(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("get me: %v", err)
	}
	if got.Name != "Alice" || got.PasswordHash != "" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := s.GetMe(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
