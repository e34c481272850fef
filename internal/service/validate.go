package service

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"digital-reception-api/internal/models"
)

// emailShape is the accepted email format: one @, a dot in the domain, no
// whitespace.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation messages surfaced to the caller
const (
	MsgEmailRequired   = "Email is required"
	MsgNameRequired    = "Name is required"
	MsgConsentRequired = "You must accept the terms of use and privacy policy"
	MsgEmailInvalid    = "Invalid email address"
)

// ValidateSignup checks the signup payload and returns the first rejection
// in a fixed order: email presence, name presence, consent, email shape.
// No side effects.
func ValidateSignup(req *models.SignupRequest) *ValidationError {
	email := strings.TrimSpace(req.Email)
	if err := validation.Validate(email, validation.Required); err != nil {
		return &ValidationError{Reason: MsgEmailRequired}
	}
	if err := validation.Validate(strings.TrimSpace(req.Name), validation.Required); err != nil {
		return &ValidationError{Reason: MsgNameRequired}
	}
	if !req.GDPRConsent {
		return &ValidationError{Reason: MsgConsentRequired}
	}
	if err := validation.Validate(email, validation.Match(emailShape)); err != nil {
		return &ValidationError{Reason: MsgEmailInvalid}
	}
	return nil
}

// NormalizeEmail produces the uniqueness key for a subscriber
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
