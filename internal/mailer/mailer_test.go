package mailer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-reception-api/internal/config"
)

type fakeProvider struct {
	calls int
	last  *Email
	err   error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Send(ctx context.Context, email *Email) error {
	f.calls++
	f.last = email
	return f.err
}

func testMailConfig() *config.MailConfig {
	return &config.MailConfig{
		Provider:    config.ProviderBrevo,
		FromEmail:   "noreply@example.com",
		FromName:    "Digital Reception",
		CompanyName: "Digital Reception",
	}
}

func writeBrochure(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brochure.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 test"), 0o644); err != nil {
		t.Fatalf("failed to write brochure: %v", err)
	}
	return path
}

func TestMailerSend(t *testing.T) {
	provider := &fakeProvider{}
	brochure := config.BrochureConfig{
		Path:           writeBrochure(t),
		AttachmentName: "Digital-Reception-Brochure.pdf",
	}
	m := New(testMailConfig(), brochure, provider)

	err := m.Send(context.Background(), "guest@example.com", "Ana Petrovic")
	require.NoError(t, err)
	require.Equal(t, 1, provider.calls)

	email := provider.last
	assert.Equal(t, "guest@example.com", email.To)
	assert.Equal(t, "Ana Petrovic", email.ToName)
	assert.Contains(t, email.Subject, "Digital Reception")
	assert.Contains(t, email.HTML, "Thank you, Ana!")
	require.NotNil(t, email.Attachment)
	assert.Equal(t, "Digital-Reception-Brochure.pdf", email.Attachment.Filename)
	assert.Equal(t, []byte("%PDF-1.4 test"), email.Attachment.Data)
}

func TestMailerMissingAttachment(t *testing.T) {
	provider := &fakeProvider{}
	brochure := config.BrochureConfig{
		Path:           filepath.Join(t.TempDir(), "missing.pdf"),
		AttachmentName: "brochure.pdf",
	}
	m := New(testMailConfig(), brochure, provider)

	err := m.Send(context.Background(), "guest@example.com", "Ana")
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
	assert.Equal(t, 0, provider.calls, "provider must not be contacted when the attachment is missing")
}

func TestMailerWrapsProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	brochure := config.BrochureConfig{Path: writeBrochure(t), AttachmentName: "brochure.pdf"}
	m := New(testMailConfig(), brochure, provider)

	err := m.Send(context.Background(), "guest@example.com", "Ana")
	require.Error(t, err)

	var merr *MailError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "fake", merr.Provider)
	assert.Contains(t, merr.Error(), "quota exceeded")
}

func TestNewProviderSelection(t *testing.T) {
	cfg := testMailConfig()
	cfg.Provider = config.ProviderBrevo
	p, err := NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, config.ProviderBrevo, p.Name())

	cfg.Provider = config.ProviderSMTP
	p, err = NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, config.ProviderSMTP, p.Name())

	cfg.Provider = "sendgrid"
	_, err = NewProvider(cfg)
	assert.Error(t, err)
}
