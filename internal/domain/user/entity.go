package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID
	Name          string
	Qualification string
	Email         string
	Mobile        string
	PasswordHash  string
	SkillsHave    []string
	SkillsNeed    []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Public returns a copy of u without the credential hash.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeSkills trims labels and drops blanks and exact duplicates.
// Case is preserved: skill matching is case-sensitive.
func NormalizeSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
