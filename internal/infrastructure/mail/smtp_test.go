package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"skill-swap/internal/config"
)

func TestNewSender_DisabledIsNop(t *testing.T) {
	s := NewSender(config.MailConfig{}, nil)
	if _, ok := s.(NopSender); !ok {
		t.Fatalf("expected NopSender, got %T", s)
	}
	if err := s.Send(context.Background(), "a@b.c", "hi", "body"); err != nil {
		t.Fatalf("nop send returned %v", err)
	}
}

func TestSMTPSender_Send(t *testing.T) {
	s := NewSender(config.MailConfig{SMTPHost: "smtp.example.com", SMTPPort: "587", From: "hub@example.com"}, nil).(*SMTPSender)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := s.Send(context.Background(), " bob@test.com ", "Skill Swap Invite Accepted 🎉", "Alice has accepted."); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotAddr != "smtp.example.com:587" || gotFrom != "hub@example.com" {
		t.Fatalf("unexpected addr/from: %s %s", gotAddr, gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "bob@test.com" {
		t.Fatalf("unexpected recipients: %v", gotTo)
	}
	msg := string(gotMsg)
	if !strings.Contains(msg, "To: bob@test.com\r\n") {
		t.Fatalf("missing To header: %q", msg)
	}
	if !strings.Contains(msg, "Subject: =?utf-8?q?") {
		t.Fatalf("expected encoded subject: %q", msg)
	}
	if !strings.HasSuffix(msg, "\r\n\r\nAlice has accepted.\r\n") {
		t.Fatalf("unexpected body: %q", msg)
	}
}

func TestSMTPSender_Errors(t *testing.T) {
	s := NewSender(config.MailConfig{SMTPHost: "smtp.example.com", SMTPPort: "25"}, nil).(*SMTPSender)

	if err := s.Send(context.Background(), "  ", "s", "b"); !errors.Is(err, ErrEmptyRecipient) {
		t.Fatalf("expected ErrEmptyRecipient, got %v", err)
	}

	boom := errors.New("connection refused")
	s.send = func(string, smtp.Auth, string, []string, []byte) error { return boom }
	if err := s.Send(context.Background(), "x@y.z", "s", "b"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped send error, got %v", err)
	}
}

func TestSMTPSender_ContextCancelled(t *testing.T) {
	s := NewSender(config.MailConfig{SMTPHost: "smtp.example.com", SMTPPort: "25"}, nil).(*SMTPSender)
	release := make(chan struct{})
	defer close(release)
	s.send = func(string, smtp.Auth, string, []string, []byte) error {
		<-release
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Send(ctx, "x@y.z", "s", "b"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
