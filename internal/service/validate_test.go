package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-reception-api/internal/models"
)

func TestValidateSignupOrder(t *testing.T) {
	tests := []struct {
		name   string
		req    models.SignupRequest
		reason string
	}{
		{"missing email", models.SignupRequest{Name: "Ana", GDPRConsent: true}, MsgEmailRequired},
		{"blank email", models.SignupRequest{Email: "   ", Name: "Ana", GDPRConsent: true}, MsgEmailRequired},
		{"missing name", models.SignupRequest{Email: "a@b.com", GDPRConsent: true}, MsgNameRequired},
		{"blank name", models.SignupRequest{Email: "a@b.com", Name: "  ", GDPRConsent: true}, MsgNameRequired},
		{"no consent", models.SignupRequest{Email: "a@b.com", Name: "Ana"}, MsgConsentRequired},
		{"bad email shape", models.SignupRequest{Email: "not-an-email", Name: "Ana", GDPRConsent: true}, MsgEmailInvalid},
		{"no dot in domain", models.SignupRequest{Email: "a@b", Name: "Ana", GDPRConsent: true}, MsgEmailInvalid},
		{"double at", models.SignupRequest{Email: "a@@b.com", Name: "Ana", GDPRConsent: true}, MsgEmailInvalid},
		// Email presence is checked before name, so this surfaces the email reason.
		{"missing email and name", models.SignupRequest{GDPRConsent: true}, MsgEmailRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateSignup(&tt.req)
			require.NotNil(t, verr)
			assert.Equal(t, tt.reason, verr.Reason)
		})
	}
}

func TestValidateSignupAcceptsValid(t *testing.T) {
	req := models.SignupRequest{Email: "guest@example.com", Name: "Ana Petrovic", GDPRConsent: true}
	assert.Nil(t, ValidateSignup(&req))

	// Whitespace around an otherwise valid address is normalized away, not rejected.
	req.Email = "  Guest@Example.com  "
	assert.Nil(t, ValidateSignup(&req))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "foo@bar.com", NormalizeEmail("  Foo@Bar.com  "))
	assert.Equal(t, "foo@bar.com", NormalizeEmail("foo@bar.com"))
}
