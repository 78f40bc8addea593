package postgres

import (
	"context"
	"errors"
	"testing"

	"skill-swap/internal/config"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		DBHost:     " db ",
		DBPort:     "5432",
		DBName:     "skillswap",
		DBUser:     "app",
		DBPassword: "p@ss word",
		DBSSLMode:  "disable",
	})
	want := "postgres://app:p%40ss%20word@db:5432/skillswap?sslmode=disable"
	if got != want {
		t.Fatalf("DSN()=%q want %q", got, want)
	}
}

func TestNilPool(t *testing.T) {
	var p *Pool
	ctx := context.Background()

	if err := p.Ping(ctx); !errors.Is(err, errNilDB) {
		t.Fatalf("expected errNilDB, got %v", err)
	}
	if _, err := p.Exec(ctx, "SELECT 1"); !errors.Is(err, errNilDB) {
		t.Fatalf("expected errNilDB, got %v", err)
	}
	var n int
	if err := p.QueryRow(ctx, "SELECT 1").Scan(&n); !errors.Is(err, errNilDB) {
		t.Fatalf("expected errNilDB, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("expected nil close error, got %v", err)
	}
}
