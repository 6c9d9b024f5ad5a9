package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fasalmbt/complainto/domain"
)

// PasswordResetRepositoryImpl implements domain.PasswordResetRepository using GORM
type PasswordResetRepositoryImpl struct {
	db *gorm.DB
}

// DBPasswordReset represents the database model for PasswordReset
type DBPasswordReset struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Token     string    `gorm:"uniqueIndex;size:64"`
	ExpiresAt time.Time
	Used      bool      `gorm:"default:false"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBPasswordReset) TableName() string {
	return "password_resets"
}

// NewPasswordResetRepository creates a new password reset repository
func NewPasswordResetRepository(db *gorm.DB) domain.PasswordResetRepository {
	return &PasswordResetRepositoryImpl{db: db}
}

// Create implements domain.PasswordResetRepository
func (r *PasswordResetRepositoryImpl) Create(ctx context.Context, reset *domain.PasswordReset) error {
	dbReset := &DBPasswordReset{
		UserID:    reset.UserID,
		Token:     reset.Token,
		ExpiresAt: reset.ExpiresAt,
		Used:      reset.Used,
	}
	if err := r.db.WithContext(ctx).Create(dbReset).Error; err != nil {
		return err
	}
	reset.ID = dbReset.ID
	reset.CreatedAt = dbReset.CreatedAt
	return nil
}

// Consume implements domain.PasswordResetRepository. The used flag is
// flipped with a single conditional UPDATE; RowsAffected tells us whether
// this caller won. Two concurrent verifiers of the same token can never
// both succeed. The row is kept afterwards as an audit trail.
func (r *PasswordResetRepositoryImpl) Consume(ctx context.Context, token string, now time.Time) (*domain.PasswordReset, error) {
	res := r.db.WithContext(ctx).Model(&DBPasswordReset{}).
		Where("token = ? AND used = ? AND expires_at > ?", token, false, now).
		Update("used", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrSecretInvalid
	}

	var dbReset DBPasswordReset
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&dbReset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSecretInvalid
		}
		return nil, err
	}

	return &domain.PasswordReset{
		ID:        dbReset.ID,
		UserID:    dbReset.UserID,
		Token:     dbReset.Token,
		ExpiresAt: dbReset.ExpiresAt,
		Used:      dbReset.Used,
		CreatedAt: dbReset.CreatedAt,
	}, nil
}
