package mailer

import (
	"bytes"
	"html/template"
	"strings"
)

// brochureEmailData is the data for the brochure email body
type brochureEmailData struct {
	CompanyName string
	FirstName   string
	DownloadURL string
}

const brochureTpl = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Thank you for signing up!</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f8fafc;">
  <table width="100%" cellpadding="0" cellspacing="0" style="background-color: #f8fafc; padding: 40px 20px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 16px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
          <tr>
            <td style="background: linear-gradient(135deg, #f97316 0%, #ea580c 100%); padding: 40px 40px 30px; text-align: center;">
              <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: bold;">{{.CompanyName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 40px;">
              <h2 style="color: #0f172a; font-size: 24px; font-weight: bold; text-align: center; margin: 0 0 20px;">
                Thank you, {{.FirstName}}!
              </h2>
              <p style="color: #475569; font-size: 16px; line-height: 1.6; margin: 0 0 25px; text-align: center;">
                We are glad you are interested in our solutions. Your brochure is <strong>attached to this email</strong> as a PDF document.
              </p>
              <div style="background-color: #f8fafc; border-radius: 12px; padding: 25px; margin-bottom: 30px;">
                <p style="color: #1e293b; font-size: 15px; font-weight: 600; margin: 0 0 15px;">
                  What you will find in the brochure:
                </p>
                <div style="margin-bottom: 15px;">
                  <span style="color: #f97316; font-weight: bold; font-size: 18px;">&#10003;</span>
                  <span style="color: #334155; font-size: 15px; margin-left: 10px;">A complete overview of all features</span>
                </div>
                <div style="margin-bottom: 15px;">
                  <span style="color: #f97316; font-weight: bold; font-size: 18px;">&#10003;</span>
                  <span style="color: #334155; font-size: 15px; margin-left: 10px;">Detailed package pricing</span>
                </div>
                <div style="margin-bottom: 15px;">
                  <span style="color: #f97316; font-weight: bold; font-size: 18px;">&#10003;</span>
                  <span style="color: #334155; font-size: 15px; margin-left: 10px;">Case studies from our clients</span>
                </div>
                <div>
                  <span style="color: #f97316; font-weight: bold; font-size: 18px;">&#10003;</span>
                  <span style="color: #334155; font-size: 15px; margin-left: 10px;">Technical specifications</span>
                </div>
              </div>
              {{if .DownloadURL}}
              <div style="text-align: center; margin-bottom: 30px;">
                <a href="{{.DownloadURL}}" style="display: inline-block; background-color: #f97316; color: #ffffff; text-decoration: none; padding: 16px 40px; border-radius: 12px; font-weight: bold; font-size: 16px;">
                  Download the Brochure
                </a>
              </div>
              {{end}}
              <div style="border-left: 4px solid #f97316; background-color: #fff7ed; padding: 15px 20px; border-radius: 8px; margin-bottom: 25px;">
                <p style="color: #9a3412; font-size: 14px; margin: 0; line-height: 1.5;">
                  <strong>Next step:</strong> Our team will contact you within 24 hours to answer your questions and arrange a free demo.
                </p>
              </div>
              <p style="color: #64748b; font-size: 14px; line-height: 1.6; text-align: center; margin: 0;">
                Have questions? Reply directly to this email.
              </p>
            </td>
          </tr>
          <tr>
            <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
              <p style="color: #94a3b8; font-size: 13px; margin: 0 0 10px;">
                {{.CompanyName}} | Modern self-check-in solutions
              </p>
              <p style="color: #cbd5e1; font-size: 12px; margin: 0;">
                You can unsubscribe at any time. We respect your privacy.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

func renderBrochureEmail(data brochureEmailData) (string, error) {
	t, err := template.New("brochure").Parse(brochureTpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// firstName extracts the first word of a full name for the greeting.
func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return strings.TrimSpace(name)
	}
	return fields[0]
}
