package mailer

import (
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"digital-reception-api/internal/config"
)

// GmailProvider sends email through the Gmail API using an OAuth2 refresh
// token.
type GmailProvider struct {
	cfg     *config.MailConfig
	service *gmail.Service
}

// NewGmailProvider creates a new Gmail provider
func NewGmailProvider(cfg *config.MailConfig) (*GmailProvider, error) {
	ctx := context.Background()

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.Gmail.ClientID,
		ClientSecret: cfg.Gmail.ClientSecret,
		Scopes:       []string{gmail.GmailSendScope},
		Endpoint:     google.Endpoint,
	}

	token := &oauth2.Token{
		RefreshToken: cfg.Gmail.RefreshToken,
	}

	tokenSource := oauth2Config.TokenSource(ctx, token)

	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &GmailProvider{cfg: cfg, service: service}, nil
}

// Name returns the provider identifier
func (p *GmailProvider) Name() string {
	return config.ProviderGmail
}

// Send transmits the email as a raw Gmail message
func (p *GmailProvider) Send(ctx context.Context, email *Email) error {
	from := p.cfg.Gmail.UserEmail
	if from == "" {
		from = p.cfg.FromEmail
	}

	raw := buildRawMessage(fmt.Sprintf("%s <%s>", p.cfg.FromName, from), email)

	message := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	if _, err := p.service.Users.Messages.Send(from, message).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail send failed: %w", err)
	}
	return nil
}
