package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"skill-swap/internal/repository/memstore"
)

func newTestService() *Service {
	s := NewService(memstore.New().Users())
	s.cost = bcrypt.MinCost
	return s
}

func TestRegister_Success(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{
		Name:       " Alice ",
		Email:      "Alice@Test.com",
		Password:   "password123",
		SkillsHave: []string{"React", " React ", ""},
		SkillsNeed: []string{"Python"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Name != "Alice" || u.Email != "alice@test.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash must not leave the service")
	}
	if len(u.SkillsHave) != 1 || u.SkillsHave[0] != "React" {
		t.Fatalf("unexpected skills: %v", u.SkillsHave)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	in := RegisterInput{Name: "Alice", Email: "alice@test.com", Password: "password123"}
	if _, err := s.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	in.Email = "ALICE@test.com"
	if _, err := s.Register(ctx, in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	s := newTestService()
	cases := []RegisterInput{
		{Name: "", Email: "a@b.c", Password: "password123"},
		{Name: "A", Email: "not-an-email", Password: "password123"},
		{Name: "A", Email: "a@b.c", Password: "short"},
	}
	for _, in := range cases {
		if _, err := s.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestLogin(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	reg, err := s.Register(ctx, RegisterInput{Name: "Bob", Email: "bob@test.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := s.Login(ctx, LoginInput{Email: " BOB@test.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.ID != reg.ID {
		t.Fatalf("login returned a different user")
	}

	if _, err := s.Login(ctx, LoginInput{Email: "bob@test.com", Password: "wrongpass1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := s.Login(ctx, LoginInput{Email: "nobody@test.com", Password: "password123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestForgotPassword(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Register(ctx, RegisterInput{Name: "Carol", Email: "carol@test.com", Password: "password123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := s.ForgotPassword(ctx, ForgotPasswordInput{Email: "carol@test.com", NewPassword: "newsecret99"}); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if _, err := s.Login(ctx, LoginInput{Email: "carol@test.com", Password: "password123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}
	if _, err := s.Login(ctx, LoginInput{Email: "carol@test.com", Password: "newsecret99"}); err != nil {
		t.Fatalf("new password must work: %v", err)
	}

	if err := s.ForgotPassword(ctx, ForgotPasswordInput{Email: "ghost@test.com", NewPassword: "newsecret99"}); !errors.Is(err, ErrEmailNotRegistered) {
		t.Fatalf("expected ErrEmailNotRegistered, got %v", err)
	}
	if err := s.ForgotPassword(ctx, ForgotPasswordInput{Email: "carol@test.com", NewPassword: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
