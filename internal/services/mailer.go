package services

import (
	"fmt"
	"log/slog"

	"github.com/internlink/internlink-api/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer delivers plain-text email.
type Mailer interface {
	Send(to, subject, body string) error
}

// NewMailer returns an SMTP mailer, or a logging mailer when SMTP is not
// configured.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return LogMailer{}
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// LogMailer records messages in the log instead of sending them.
type LogMailer struct{}

func (LogMailer) Send(to, subject, _ string) error {
	slog.Info("email suppressed, smtp not configured", "to", to, "subject", subject)
	return nil
}
