package mailer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"digital-reception-api/internal/config"
)

// ErrAttachmentNotFound is returned when the brochure PDF is missing from
// disk. The provider is never contacted in that case.
var ErrAttachmentNotFound = errors.New("brochure attachment not found")

// MailError wraps a provider-level failure with the provider's identity so
// the caller can record the provider message without parsing it.
type MailError struct {
	Provider string
	Err      error
}

func (e *MailError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *MailError) Unwrap() error {
	return e.Err
}

// Email is a single transactional email handed to a Provider.
type Email struct {
	To         string
	ToName     string
	Subject    string
	HTML       string
	Attachment *Attachment
}

// Attachment is a binary email attachment
type Attachment struct {
	Filename string
	Data     []byte
}

// Provider transmits an email through one transactional-email backend.
type Provider interface {
	Name() string
	Send(ctx context.Context, email *Email) error
}

// NewProvider creates the provider selected by configuration
func NewProvider(cfg *config.MailConfig) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderBrevo:
		return NewBrevoProvider(cfg), nil
	case config.ProviderSMTP:
		return NewSMTPProvider(cfg), nil
	case config.ProviderGmail:
		return NewGmailProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown mail provider: %q", cfg.Provider)
	}
}

// Mailer sends the brochure email. Sending twice sends two emails; the
// signup workflow guarantees one call per created subscriber.
type Mailer struct {
	cfg      *config.MailConfig
	brochure config.BrochureConfig
	provider Provider
}

// New creates a new brochure mailer
func New(cfg *config.MailConfig, brochure config.BrochureConfig, provider Provider) *Mailer {
	return &Mailer{cfg: cfg, brochure: brochure, provider: provider}
}

// Send delivers the brochure email to one recipient. The attachment is
// re-checked on every call even though its absence is a startup error.
func (m *Mailer) Send(ctx context.Context, to, name string) error {
	data, err := os.ReadFile(m.brochure.Path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Errorf("Brochure PDF missing at %s", m.brochure.Path)
			return fmt.Errorf("%w: %s", ErrAttachmentNotFound, m.brochure.Path)
		}
		return fmt.Errorf("failed to read brochure: %w", err)
	}

	html, err := renderBrochureEmail(brochureEmailData{
		CompanyName: m.cfg.CompanyName,
		FirstName:   firstName(name),
		DownloadURL: m.brochure.DownloadURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render brochure email: %w", err)
	}

	email := &Email{
		To:      to,
		ToName:  name,
		Subject: fmt.Sprintf("Your Brochure - %s", m.cfg.CompanyName),
		HTML:    html,
		Attachment: &Attachment{
			Filename: m.brochure.AttachmentName,
			Data:     data,
		},
	}

	if err := m.provider.Send(ctx, email); err != nil {
		return &MailError{Provider: m.provider.Name(), Err: err}
	}

	logrus.Infof("Brochure email sent to %s via %s", to, m.provider.Name())
	return nil
}
