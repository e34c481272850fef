package mailer

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBrochureEmail(t *testing.T) {
	html, err := renderBrochureEmail(brochureEmailData{
		CompanyName: "Digital Reception",
		FirstName:   "Ana",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Thank you, Ana!")
	assert.Contains(t, html, "Digital Reception")
	assert.NotContains(t, html, "Download the Brochure")
}

func TestRenderBrochureEmailDownloadLink(t *testing.T) {
	html, err := renderBrochureEmail(brochureEmailData{
		CompanyName: "Digital Reception",
		FirstName:   "Ana",
		DownloadURL: "https://example.com/brochure.pdf",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Download the Brochure")
	assert.Contains(t, html, "https://example.com/brochure.pdf")
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Ana", firstName("Ana Petrovic"))
	assert.Equal(t, "Ana", firstName("Ana"))
	assert.Equal(t, "", firstName(""))
	assert.Equal(t, "", firstName("   "))
}

func TestBuildRawMessageWithAttachment(t *testing.T) {
	data := []byte("%PDF-1.4 test")
	raw := buildRawMessage("Digital Reception <noreply@example.com>", &Email{
		To:      "guest@example.com",
		Subject: "Your Brochure",
		HTML:    "<p>hello</p>",
		Attachment: &Attachment{
			Filename: "brochure.pdf",
			Data:     data,
		},
	})

	assert.Contains(t, raw, "From: Digital Reception <noreply@example.com>\r\n")
	assert.Contains(t, raw, "To: guest@example.com\r\n")
	assert.Contains(t, raw, "Subject: Your Brochure\r\n")
	assert.Contains(t, raw, "Content-Type: multipart/mixed; boundary=")
	assert.Contains(t, raw, `Content-Disposition: attachment; filename="brochure.pdf"`)
	assert.Contains(t, raw, base64.StdEncoding.EncodeToString(data))
}

func TestBuildRawMessageWithoutAttachment(t *testing.T) {
	raw := buildRawMessage("noreply@example.com", &Email{
		To:      "guest@example.com",
		Subject: "Your Brochure",
		HTML:    "<p>hello</p>",
	})

	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.NotContains(t, raw, "multipart/mixed")
	assert.True(t, strings.HasSuffix(raw, "<p>hello</p>"))
}
