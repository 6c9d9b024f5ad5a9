package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fasalmbt/complainto/domain"
)

// ComplaintRepositoryImpl implements domain.ComplaintRepository using GORM
type ComplaintRepositoryImpl struct {
	db *gorm.DB
}

// DBComplaint represents the database model for Complaint
type DBComplaint struct {
	ID             uint   `gorm:"primaryKey"`
	Title          string `gorm:"index;size:255"`
	Description    string `gorm:"type:text"`
	Category       string `gorm:"size:64"`
	Status         string `gorm:"size:32;default:pending"`
	ScreenshotPath string `gorm:"size:255"`
	AdminNotes     string `gorm:"type:text"`
	UserID         uint   `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName returns the table name for GORM
func (DBComplaint) TableName() string {
	return "complaints"
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) domain.ComplaintRepository {
	return &ComplaintRepositoryImpl{db: db}
}

// Create implements domain.ComplaintRepository
func (r *ComplaintRepositoryImpl) Create(ctx context.Context, complaint *domain.Complaint) error {
	dbComplaint := r.domainToDB(complaint)
	if err := r.db.WithContext(ctx).Create(dbComplaint).Error; err != nil {
		return err
	}
	complaint.ID = dbComplaint.ID
	complaint.CreatedAt = dbComplaint.CreatedAt
	complaint.UpdatedAt = dbComplaint.UpdatedAt
	return nil
}

// FindByID implements domain.ComplaintRepository
func (r *ComplaintRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Complaint, error) {
	var dbComplaint DBComplaint
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbComplaint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbComplaint), nil
}

// FindByUser implements domain.ComplaintRepository
func (r *ComplaintRepositoryImpl) FindByUser(ctx context.Context, userID uint) ([]domain.Complaint, error) {
	var dbComplaints []DBComplaint
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dbComplaints).Error
	if err != nil {
		return nil, err
	}

	complaints := make([]domain.Complaint, 0, len(dbComplaints))
	for i := range dbComplaints {
		complaints = append(complaints, *r.dbToDomain(&dbComplaints[i]))
	}
	return complaints, nil
}

// FindAllWithUsers implements domain.ComplaintRepository. Reporter name
// and email are joined in so the admin view needs a single query.
func (r *ComplaintRepositoryImpl) FindAllWithUsers(ctx context.Context) ([]domain.ComplaintSummary, error) {
	var rows []struct {
		DBComplaint
		UserName  string
		UserEmail string
	}

	err := r.db.WithContext(ctx).Model(&DBComplaint{}).
		Select("complaints.*, users.name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = complaints.user_id").
		Order("complaints.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ComplaintSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, domain.ComplaintSummary{
			Complaint: *r.dbToDomain(&rows[i].DBComplaint),
			UserName:  rows[i].UserName,
			UserEmail: rows[i].UserEmail,
		})
	}
	return summaries, nil
}

// Update implements domain.ComplaintRepository
func (r *ComplaintRepositoryImpl) Update(ctx context.Context, complaint *domain.Complaint) error {
	return r.db.WithContext(ctx).Model(&DBComplaint{}).Where("id = ?", complaint.ID).
		Updates(map[string]interface{}{
			"status":      complaint.Status,
			"admin_notes": complaint.AdminNotes,
			"updated_at":  time.Now().UTC(),
		}).Error
}

// DeleteByUser implements domain.ComplaintRepository
func (r *ComplaintRepositoryImpl) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBComplaint{}).Error
}

// domainToDB converts domain complaint to database complaint
func (r *ComplaintRepositoryImpl) domainToDB(complaint *domain.Complaint) *DBComplaint {
	return &DBComplaint{
		ID:             complaint.ID,
		Title:          complaint.Title,
		Description:    complaint.Description,
		Category:       complaint.Category,
		Status:         complaint.Status,
		ScreenshotPath: complaint.ScreenshotPath,
		AdminNotes:     complaint.AdminNotes,
		UserID:         complaint.UserID,
	}
}

// dbToDomain converts database complaint to domain complaint
func (r *ComplaintRepositoryImpl) dbToDomain(dbComplaint *DBComplaint) *domain.Complaint {
	return &domain.Complaint{
		ID:             dbComplaint.ID,
		Title:          dbComplaint.Title,
		Description:    dbComplaint.Description,
		Category:       dbComplaint.Category,
		Status:         dbComplaint.Status,
		ScreenshotPath: dbComplaint.ScreenshotPath,
		AdminNotes:     dbComplaint.AdminNotes,
		UserID:         dbComplaint.UserID,
		CreatedAt:      dbComplaint.CreatedAt,
		UpdatedAt:      dbComplaint.UpdatedAt,
	}
}
