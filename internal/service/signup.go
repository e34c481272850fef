package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"digital-reception-api/internal/metrics"
	"digital-reception-api/internal/models"
	"digital-reception-api/internal/repository"
)

// Source string length caps; longer values are truncated, not rejected.
const (
	maxIPLength        = 100
	maxUserAgentLength = 500
)

// SubscriberStore is the persistence surface the signup workflow needs
type SubscriberStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	Create(ctx context.Context, sub *models.Subscriber) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Stats(ctx context.Context) (models.SubscriberStats, error)
}

// BrochureMailer sends the brochure email to one recipient
type BrochureMailer interface {
	Send(ctx context.Context, to, name string) error
}

// RequestMeta carries per-request source data captured for abuse auditing
type RequestMeta struct {
	IP        string
	UserAgent string
}

// SignupService orchestrates the signup-and-fulfillment workflow
type SignupService struct {
	store   SubscriberStore
	mailer  BrochureMailer
	metrics *metrics.Metrics
}

// NewSignupService creates a new signup service
func NewSignupService(store SubscriberStore, mailer BrochureMailer, m *metrics.Metrics) *SignupService {
	return &SignupService{store: store, mailer: mailer, metrics: m}
}

// Signup runs validation, duplicate check, persistence, fulfillment, and the
// final status update. On fulfillment failure the created subscriber is kept
// and returned along with a *FulfillmentError; no signup is silently lost.
func (s *SignupService) Signup(ctx context.Context, req *models.SignupRequest, meta RequestMeta) (*models.Subscriber, error) {
	start := time.Now()
	if s.metrics != nil {
		s.metrics.SignupAttempts.Inc()
		defer func() {
			s.metrics.ProcessingTime.Observe(time.Since(start).Seconds())
		}()
	}

	if verr := ValidateSignup(req); verr != nil {
		return nil, verr
	}

	email := NormalizeEmail(req.Email)

	existing, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("checking existing subscriber: %w", err)
	}
	if existing != nil {
		if s.metrics != nil {
			s.metrics.SignupConflicts.Inc()
		}
		return nil, ErrAlreadySubscribed
	}

	sub := &models.Subscriber{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		GDPRConsent:  req.GDPRConsent,
		Status:       models.StatusActive,
		BrochureSent: false,
		IPAddress:    truncate(meta.IP, maxIPLength),
		UserAgent:    truncate(meta.UserAgent, maxUserAgentLength),
	}

	if err := s.store.Create(ctx, sub); err != nil {
		// Two concurrent signups can both pass the pre-check; the unique
		// index catches the loser here.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			if s.metrics != nil {
				s.metrics.SignupConflicts.Inc()
			}
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("creating subscriber: %w", err)
	}

	if err := s.mailer.Send(ctx, sub.Email, sub.Name); err != nil {
		logrus.Errorf("Brochure email to %s failed, subscriber %d kept for manual follow-up: %v", sub.Email, sub.ID, err)
		if s.metrics != nil {
			s.metrics.SendFailures.Inc()
		}
		note := "Email sending failed: " + err.Error()
		if uerr := s.store.Update(ctx, sub.ID, map[string]interface{}{"notes": note}); uerr != nil {
			logrus.Errorf("Failed to record send failure for subscriber %d: %v", sub.ID, uerr)
		}
		sub.Notes = note
		return sub, &FulfillmentError{Err: err}
	}

	now := time.Now()
	if err := s.store.Update(ctx, sub.ID, map[string]interface{}{"brochure_sent": true, "sent_at": now}); err != nil {
		logrus.Errorf("Failed to mark brochure sent for subscriber %d: %v", sub.ID, err)
	}
	sub.BrochureSent = true
	sub.SentAt = &now

	if s.metrics != nil {
		s.metrics.SendSuccesses.Inc()
	}
	logrus.Infof("Brochure sent to %s", sub.Email)
	return sub, nil
}

// Stats returns aggregate subscriber counts
func (s *SignupService) Stats(ctx context.Context) (models.SubscriberStats, error) {
	return s.store.Stats(ctx)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
