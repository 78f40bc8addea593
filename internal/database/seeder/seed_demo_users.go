package seeder

import (
	"context"
	"fmt"

	"skill-swap/internal/database"

	"golang.org/x/crypto/bcrypt"
)

const DemoPassword = "password123"

type DemoUser struct {
	Name          string
	Qualification string
	Email         string
	Mobile        string
	SkillsHave    []string
	SkillsNeed    []string
}

// DemoUsers have complementary skill sets. Skill labels are compared
// exactly, so Carol's "Design" does not satisfy Bob's "UI Design".
var DemoUsers = []DemoUser{
	{
		Name:          "Alice",
		Qualification: "Frontend Developer",
		Email:         "alice@test.com",
		Mobile:        "1234567890",
		SkillsHave:    []string{"JavaScript", "React"},
		SkillsNeed:    []string{"Python", "Design"},
	},
	{
		Name:          "Bob",
		Qualification: "Backend Developer",
		Email:         "bob@test.com",
		Mobile:        "0987654321",
		SkillsHave:    []string{"Python", "Node.js"},
		SkillsNeed:    []string{"React", "UI Design"},
	},
	{
		Name:          "Carol",
		Qualification: "UI/UX Designer",
		Email:         "carol@test.com",
		Mobile:        "5555555555",
		SkillsHave:    []string{"Design", "Figma"},
		SkillsNeed:    []string{"JavaScript", "Python"},
	},
}

// DemoUsersSeeder inserts DemoUsers. Existing e-mails are left untouched,
// so running it twice is harmless.
type DemoUsersSeeder struct{}

func (DemoUsersSeeder) Name() string { return "demo_users" }

func (DemoUsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users",
		"id", "name", "qualification", "email", "mobile", "password_hash", "skills_have", "skills_need",
	); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, u := range DemoUsers {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO users (id, name, qualification, email, mobile, password_hash, skills_have, skills_need)
				 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
				 ON CONFLICT (email) DO NOTHING`,
				u.Name, u.Qualification, u.Email, u.Mobile, string(hash), u.SkillsHave, u.SkillsNeed,
			); err != nil {
				return fmt.Errorf("insert %s: %w", u.Email, err)
			}
		}
		return nil
	})
}
