package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"skill-swap/internal/config"

	"go.uber.org/zap"
)

var ErrEmptyRecipient = errors.New("empty recipient")

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPSender struct {
	addr string
	host string
	from string
	auth smtp.Auth

	send sendFunc
	now  func() time.Time
}

// NewSender returns an SMTP sender, or a logging no-op sender when SMTP is
// not configured.
func NewSender(cfg config.MailConfig, logger *zap.Logger) Sender {
	if !cfg.Enabled() {
		return NopSender{Logger: logger}
	}

	host := strings.TrimSpace(cfg.SMTPHost)
	from := strings.TrimSpace(cfg.From)
	if from == "" {
		from = strings.TrimSpace(cfg.Username)
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, host)
	}

	return &SMTPSender{
		addr: net.JoinHostPort(host, strings.TrimSpace(cfg.SMTPPort)),
		host: host,
		from: from,
		auth: auth,
		send: smtp.SendMail,
		now:  time.Now,
	}
}

// Send blocks until the SMTP exchange finishes or ctx is done. net/smtp has
// no context support, so on cancellation the exchange is abandoned, not
// aborted.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return ErrEmptyRecipient
	}

	msg := buildMessage(s.from, to, subject, body, s.now())

	done := make(chan error, 1)
	go func() {
		done <- s.send(s.addr, s.auth, s.from, []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func buildMessage(from, to, subject, body string, at time.Time) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&b, "Date: %s\r\n", at.UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return b.Bytes()
}

type NopSender struct {
	Logger *zap.Logger
}

func (n NopSender) Send(_ context.Context, to, subject, _ string) error {
	if n.Logger != nil {
		n.Logger.Debug("mail disabled, dropping message", zap.String("to", to), zap.String("subject", subject))
	}
	return nil
}
