package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skill-swap/internal/domain/user"
)

const minPasswordLength = 8

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrEmailNotRegistered     = errors.New("email not registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name          string
	Qualification string
	Email         string
	Mobile        string
	Password      string
	SkillsHave    []string
	SkillsNeed    []string
}

type LoginInput struct {
	Email    string
	Password string
}

type ForgotPasswordInput struct {
	Email       string
	NewPassword string
}

type Service struct {
	users user.Repository
	cost  int
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, cost: bcrypt.DefaultCost}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	name := strings.TrimSpace(in.Name)
	email := user.NormalizeEmail(in.Email)
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return user.User{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return user.User{}, ErrInvalidInput
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return user.User{}, err
	}

	u := user.User{
		ID:            uuid.New(),
		Name:          name,
		Qualification: strings.TrimSpace(in.Qualification),
		Email:         email,
		Mobile:        strings.TrimSpace(in.Mobile),
		PasswordHash:  hash,
		SkillsHave:    user.NormalizeSkills(in.SkillsHave),
		SkillsNeed:    user.NormalizeSkills(in.SkillsNeed),
	}

	// The unique index on email decides races between concurrent sign-ups.
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	created, err := s.users.FindByID(ctx, u.ID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return created.Public(), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := user.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return u.Public(), nil
}

// ForgotPassword replaces the credential of the account registered under
// in.Email. There is no token round-trip: knowing the address is enough.
func (s *Service) ForgotPassword(ctx context.Context, in ForgotPasswordInput) error {
	email := user.NormalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.NewPassword) {
		return ErrInvalidInput
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrEmailNotRegistered
		}
		return ErrInternal
	}

	hash, err := s.hash(in.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdateCredential(ctx, u.ID, hash); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) hash(pw string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), s.cost)
	if err != nil {
		return "", ErrInternal
	}
	return string(h), nil
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= minPasswordLength
}
