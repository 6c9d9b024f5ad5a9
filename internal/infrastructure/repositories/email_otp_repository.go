package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fasalmbt/complainto/domain"
)

// EmailOTPRepositoryImpl implements domain.EmailOTPRepository using GORM
type EmailOTPRepositoryImpl struct {
	db *gorm.DB
}

// DBEmailOTP represents the database model for EmailOTP
type DBEmailOTP struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"index;size:255"`
	Code      string    `gorm:"column:otp;size:6"`
	ExpiresAt time.Time
	Used      bool      `gorm:"column:is_used;default:false"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBEmailOTP) TableName() string {
	return "otps"
}

// NewEmailOTPRepository creates a new email OTP repository
func NewEmailOTPRepository(db *gorm.DB) domain.EmailOTPRepository {
	return &EmailOTPRepositoryImpl{db: db}
}

// Create implements domain.EmailOTPRepository
func (r *EmailOTPRepositoryImpl) Create(ctx context.Context, otp *domain.EmailOTP) error {
	dbOTP := &DBEmailOTP{
		Email:     otp.Email,
		Code:      otp.Code,
		ExpiresAt: otp.ExpiresAt,
		Used:      otp.Used,
	}
	if err := r.db.WithContext(ctx).Create(dbOTP).Error; err != nil {
		return err
	}
	otp.ID = dbOTP.ID
	otp.CreatedAt = dbOTP.CreatedAt
	return nil
}

// DeleteUnused implements domain.EmailOTPRepository. Consumed rows are
// left in place; only codes that could still verify are invalidated.
func (r *EmailOTPRepositoryImpl) DeleteUnused(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ? AND is_used = ?", email, false).
		Delete(&DBEmailOTP{}).Error
}

// Consume implements domain.EmailOTPRepository with the same conditional
// UPDATE contract as password resets: at most one concurrent verifier of
// a still-valid code observes success.
func (r *EmailOTPRepositoryImpl) Consume(ctx context.Context, email, code string, now time.Time) (*domain.EmailOTP, error) {
	res := r.db.WithContext(ctx).Model(&DBEmailOTP{}).
		Where("email = ? AND otp = ? AND is_used = ? AND expires_at > ?", email, code, false, now).
		Update("is_used", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrSecretInvalid
	}

	var dbOTP DBEmailOTP
	err := r.db.WithContext(ctx).
		Where("email = ? AND otp = ? AND is_used = ?", email, code, true).
		Order("id DESC").First(&dbOTP).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSecretInvalid
		}
		return nil, err
	}

	return &domain.EmailOTP{
		ID:        dbOTP.ID,
		Email:     dbOTP.Email,
		Code:      dbOTP.Code,
		ExpiresAt: dbOTP.ExpiresAt,
		Used:      dbOTP.Used,
		CreatedAt: dbOTP.CreatedAt,
	}, nil
}
