package services

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/foundercollab/backend/internal/config"
)

// Mailer is the outbound notification hook. Delivery is fire-and-forget:
// callers log failures and never propagate them.
type Mailer interface {
	Send(to, subject, body string) error
}

// NewMailer picks SMTP when configured, otherwise the log-only mailer.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return LogMailer{}
	}
	return &SMTPMailer{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		from: cfg.MailFrom,
		auth: smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost),
	}
}

// LogMailer writes the would-be email to the log. Default for environments
// without SMTP credentials.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	slog.Info("email notification", "to", to, "subject", subject, "bytes", len(body))
	return nil
}

// SMTPMailer delivers over plain SMTP.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
