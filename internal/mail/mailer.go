// Package mail delivers document emails over SMTP. Configuration is an
// explicit value passed on every call — sourced from persisted settings by the
// caller, never held as mutable package state.
package mail

import (
	"errors"
	"fmt"
	"net/smtp"

	"github.com/jaksoftwares/ReceiptPro/internal/infra"
	"github.com/jaksoftwares/ReceiptPro/internal/model"

	"github.com/jordan-wright/email"
)

// ErrNotConfigured is returned before any dispatch is attempted when the
// required SMTP values are missing.
var ErrNotConfigured = errors.New("email delivery is not configured")

// Config is the per-call SMTP delivery configuration.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// ConfigFromSettings maps stored settings onto a delivery config.
func ConfigFromSettings(s model.EmailSettings) Config {
	cfg := Config{
		Host:     s.SMTPHost,
		Port:     s.SMTPPort,
		Username: s.SMTPUsername,
		Password: s.SMTPPassword,
		From:     s.FromAddress,
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return cfg
}

func (c Config) valid() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// Message is one outgoing document email.
type Message struct {
	ToName         string
	ToEmail        string
	Subject        string
	Body           string
	AttachmentPath string
}

// Sender is the delivery port; the worker depends on this, not on SMTP.
type Sender interface {
	Send(cfg Config, msg Message) error
}

// Mailer sends via SMTP behind a circuit breaker: while the peer is down,
// sends fast-fail instead of holding a worker on a dead connection. The
// breaker never retries — a failed send is reported, not repeated.
type Mailer struct {
	cb *infra.CircuitBreaker
}

func NewMailer() *Mailer {
	return &Mailer{cb: infra.NewCircuitBreaker(infra.DefaultCBConfig())}
}

var _ Sender = (*Mailer)(nil)

// Send delivers one message, attaching the exported PDF when present.
func (m *Mailer) Send(cfg Config, msg Message) error {
	if !cfg.valid() {
		return ErrNotConfigured
	}

	return m.cb.Execute(func() error {
		e := email.NewEmail()
		e.From = cfg.From
		e.To = []string{msg.ToEmail}
		e.Subject = msg.Subject
		e.Text = []byte(msg.Body)

		if msg.AttachmentPath != "" {
			if _, err := e.AttachFile(msg.AttachmentPath); err != nil {
				return fmt.Errorf("mailer: attach PDF: %w", err)
			}
		}

		auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
		addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		return e.Send(addr, auth)
	})
}
