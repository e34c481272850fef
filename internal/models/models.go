package models

import (
	"time"
)

// Subscriber lifecycle statuses
const (
	StatusActive = "active"
)

// Subscriber represents one completed or attempted brochure signup, keyed by
// normalized (trimmed, lower-cased) email.
type Subscriber struct {
	ID           uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string     `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string     `json:"name" gorm:"type:varchar(255);not null"`
	Phone        string     `json:"phone" gorm:"type:varchar(50)"`
	GDPRConsent  bool       `json:"gdpr_consent" gorm:"not null"`
	Status       string     `json:"status" gorm:"type:varchar(50);not null;default:active"`
	BrochureSent bool       `json:"brochure_sent" gorm:"default:false"`
	SentAt       *time.Time `json:"sent_at"`
	Notes        string     `json:"notes" gorm:"type:text"`
	IPAddress    string     `json:"ip_address" gorm:"type:varchar(100)"`
	UserAgent    string     `json:"user_agent" gorm:"type:varchar(500)"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName specifies the table name for Subscriber
func (Subscriber) TableName() string {
	return "newsletter_subscribers"
}

// SignupRequest represents the newsletter signup payload
type SignupRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	GDPRConsent bool   `json:"gdprConsent"`
}

// SubscriberStats holds aggregate subscriber counts
type SubscriberStats struct {
	Total   int64 `json:"total"`
	Sent    int64 `json:"sent"`
	Pending int64 `json:"pending"`
}
