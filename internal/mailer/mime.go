package mailer

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// buildRawMessage assembles the RFC 2822 message used by the SMTP and Gmail
// providers: an HTML body, plus a multipart/mixed wrapper when an attachment
// is present.
func buildRawMessage(from string, email *Email) string {
	var b strings.Builder

	boundary := fmt.Sprintf("brochure-%d", time.Now().UnixNano())

	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", email.To))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	b.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	b.WriteString("MIME-Version: 1.0\r\n")

	if email.Attachment == nil {
		b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		b.WriteString("\r\n")
		b.WriteString(email.HTML)
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=\"%s\"\r\n", boundary))
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(email.HTML)

	b.WriteString(fmt.Sprintf("\r\n--%s\r\n", boundary))
	b.WriteString(fmt.Sprintf("Content-Type: application/pdf; name=\"%s\"\r\n", email.Attachment.Filename))
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	b.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=\"%s\"\r\n\r\n", email.Attachment.Filename))
	b.WriteString(base64.StdEncoding.EncodeToString(email.Attachment.Data))
	b.WriteString(fmt.Sprintf("\r\n--%s--\r\n", boundary))

	return b.String()
}
