package repository

import (
	"context"
	"errors"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"digital-reception-api/internal/models"
)

// ErrDuplicateEmail is returned by Create when the unique index on the email
// column rejects the insert. This is the backstop for two concurrent signups
// that both passed the duplicate pre-check.
var ErrDuplicateEmail = errors.New("subscriber email already exists")

// mysqlDuplicateEntry is the MySQL error number for a unique key violation.
const mysqlDuplicateEntry = 1062

// SubscriberRepository provides persistence for subscribers
type SubscriberRepository struct {
	db *gorm.DB
}

// New creates a new subscriber repository
func New(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// FindByEmail looks up a subscriber by normalized email. Returns nil, nil
// when no record exists. Normalization (trim + lower-case) is the caller's
// responsibility.
func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&sub)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find subscriber: %w", result.Error)
	}
	return &sub, nil
}

// Create inserts a new subscriber row. A unique-key violation is surfaced as
// ErrDuplicateEmail rather than a generic database error.
func (r *SubscriberRepository) Create(ctx context.Context, sub *models.Subscriber) error {
	result := r.db.WithContext(ctx).Create(sub)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create subscriber: %w", result.Error)
	}
	return nil
}

// Update applies partial field updates to a subscriber by ID. Best-effort: a
// missing row is logged and ignored so a late update never fails the workflow.
func (r *SubscriberRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Subscriber{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update subscriber %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		logrus.Warnf("Subscriber %d no longer exists, skipping update", id)
	}
	return nil
}

// Stats returns aggregate subscriber counts
func (r *SubscriberRepository) Stats(ctx context.Context) (models.SubscriberStats, error) {
	var stats models.SubscriberStats
	if err := r.db.WithContext(ctx).Model(&models.Subscriber{}).Count(&stats.Total).Error; err != nil {
		return stats, fmt.Errorf("failed to count subscribers: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Subscriber{}).Where("brochure_sent = ?", true).Count(&stats.Sent).Error; err != nil {
		return stats, fmt.Errorf("failed to count sent brochures: %w", err)
	}
	stats.Pending = stats.Total - stats.Sent
	return stats, nil
}

func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *gomysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
