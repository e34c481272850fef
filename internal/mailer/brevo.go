package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"digital-reception-api/internal/config"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoProvider sends email through the Brevo transactional API
type BrevoProvider struct {
	cfg      *config.MailConfig
	endpoint string
	client   *http.Client
}

// NewBrevoProvider creates a new Brevo provider
func NewBrevoProvider(cfg *config.MailConfig) *BrevoProvider {
	return &BrevoProvider{
		cfg:      cfg,
		endpoint: brevoEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Name returns the provider identifier
func (p *BrevoProvider) Name() string {
	return config.ProviderBrevo
}

type brevoParty struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoAttachment struct {
	Content string `json:"content"`
	Name    string `json:"name"`
}

type brevoRequest struct {
	Sender      brevoParty        `json:"sender"`
	To          []brevoParty      `json:"to"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"htmlContent"`
	Attachment  []brevoAttachment `json:"attachment,omitempty"`
}

// Send submits the email to the Brevo API and treats anything other than a
// 2xx response as a rejection.
func (p *BrevoProvider) Send(ctx context.Context, email *Email) error {
	req := brevoRequest{
		Sender:      brevoParty{Email: p.cfg.FromEmail, Name: p.cfg.FromName},
		To:          []brevoParty{{Email: email.To, Name: email.ToName}},
		Subject:     email.Subject,
		HTMLContent: email.HTML,
	}
	if email.Attachment != nil {
		req.Attachment = []brevoAttachment{{
			Content: base64.StdEncoding.EncodeToString(email.Attachment.Data),
			Name:    email.Attachment.Filename,
		}}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("api-key", p.cfg.Brevo.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("brevo error %d: %s", resp.StatusCode, errResp.Message)
	}
	return nil
}
