package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"digital-reception-api/internal/config"
)

// SMTPProvider sends email through a plain SMTP relay
type SMTPProvider struct {
	cfg *config.MailConfig
}

// NewSMTPProvider creates a new SMTP provider
func NewSMTPProvider(cfg *config.MailConfig) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

// Name returns the provider identifier
func (p *SMTPProvider) Name() string {
	return config.ProviderSMTP
}

// Send transmits the email via net/smtp. smtp.SendMail blocks until the
// server accepts or rejects the message; ctx cancellation is not observed
// mid-transmission.
func (p *SMTPProvider) Send(ctx context.Context, email *Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	host := p.cfg.SMTP.Host
	port := p.cfg.SMTP.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	from := p.cfg.FromEmail
	raw := buildRawMessage(fmt.Sprintf("%s <%s>", p.cfg.FromName, from), email)

	auth := smtp.PlainAuth("", p.cfg.SMTP.User, p.cfg.SMTP.Password, host)
	if err := smtp.SendMail(addr, auth, from, []string{email.To}, []byte(raw)); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
