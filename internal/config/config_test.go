package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func baseEnv() map[string]string {
	return map[string]string{
		"HTTP_PORT":          "8080",
		"DB_HOST":            "localhost",
		"DB_NAME":            "skillswap",
		"DB_USER":            "postgres",
		"JWT_ACCESS_SECRET":  "a",
		"JWT_REFRESH_SECRET": "r",
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(baseEnv()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.AppName != "skill-swap" {
		t.Fatalf("unexpected app name %q", cfg.App.AppName)
	}
	if cfg.Database.DBPort != "5432" || cfg.Database.DBSSLMode != "disable" {
		t.Fatalf("unexpected db defaults: %+v", cfg.Database)
	}
	if cfg.JWT.AccessExpiresIn != 24*time.Hour {
		t.Fatalf("unexpected access ttl %s", cfg.JWT.AccessExpiresIn)
	}
	if cfg.Invite.SideEffectTimeout != 10*time.Second {
		t.Fatalf("unexpected side effect timeout %s", cfg.Invite.SideEffectTimeout)
	}
	if cfg.Mail.Enabled() {
		t.Fatalf("expected mail disabled without SMTP_HOST")
	}
}

func TestFromEnv_MissingRequired(t *testing.T) {
	env := baseEnv()
	delete(env, "DB_HOST")
	delete(env, "JWT_ACCESS_SECRET")

	_, err := FromEnv(envFrom(env))
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "DB_HOST") || !strings.Contains(err.Error(), "JWT_ACCESS_SECRET") {
		t.Fatalf("expected both keys reported, got %v", err)
	}
}

func TestFromEnv_InvalidValues(t *testing.T) {
	env := baseEnv()
	env["JWT_ACCESS_EXPIRES_IN"] = "soon"
	env["DB_RUN_MIGRATIONS"] = "maybe"

	_, err := FromEnv(envFrom(env))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "JWT_ACCESS_EXPIRES_IN") || !strings.Contains(err.Error(), "DB_RUN_MIGRATIONS") {
		t.Fatalf("expected invalid keys reported, got %v", err)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	env := baseEnv()
	env["DB_RUN_MIGRATIONS"] = "true"
	env["DB_POOL_MAX_CONNS"] = "12"
	env["SMTP_HOST"] = "smtp.example.com"
	env["LOG_ENCODING"] = "console"

	cfg, err := FromEnv(envFrom(env))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !cfg.Database.RunMigrations {
		t.Fatalf("expected RunMigrations=true")
	}
	if cfg.Database.PoolMaxConns != 12 {
		t.Fatalf("expected PoolMaxConns=12, got %d", cfg.Database.PoolMaxConns)
	}
	if !cfg.Mail.Enabled() {
		t.Fatalf("expected mail enabled")
	}
	if cfg.Log.Encoding != "console" {
		t.Fatalf("unexpected encoding %q", cfg.Log.Encoding)
	}
}
