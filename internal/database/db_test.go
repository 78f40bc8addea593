package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsNoRows(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"pgx", pgx.ErrNoRows, true},
		{"sql", sql.ErrNoRows, true},
		{"wrapped", fmt.Errorf("get: %w", pgx.ErrNoRows), true},
		{"other", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNoRows(tc.err); got != tc.want {
				t.Fatalf("IsNoRows(%v)=%v want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "invites_pending_pair_key"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "invites_receiver_id_fkey"}

	if !IsUniqueViolation(dup, "") {
		t.Fatalf("expected unique violation")
	}
	if !IsUniqueViolation(fmt.Errorf("insert: %w", dup), "invites_pending_pair_key") {
		t.Fatalf("expected wrapped unique violation on named index")
	}
	if IsUniqueViolation(dup, "users_email_key") {
		t.Fatalf("expected constraint mismatch to be false")
	}
	if IsUniqueViolation(fk, "") {
		t.Fatalf("expected fk violation to be false")
	}
	if IsUniqueViolation(errors.New("x"), "") {
		t.Fatalf("expected plain error to be false")
	}
}
