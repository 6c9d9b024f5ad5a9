package services

import (
	"context"

	"github.com/fasalmbt/complainto/domain"
)

// ComplaintServiceImpl implements domain.ComplaintService
type ComplaintServiceImpl struct {
	complaintRepo domain.ComplaintRepository
	audit         domain.AuditLogger
}

// NewComplaintService creates a new complaint service
func NewComplaintService(complaintRepo domain.ComplaintRepository, audit domain.AuditLogger) domain.ComplaintService {
	return &ComplaintServiceImpl{
		complaintRepo: complaintRepo,
		audit:         audit,
	}
}

// Create implements domain.ComplaintService
func (s *ComplaintServiceImpl) Create(ctx context.Context, userID uint, title, description, category, screenshotPath string) (*domain.Complaint, error) {
	complaint := &domain.Complaint{
		Title:          title,
		Description:    description,
		Category:       category,
		Status:         domain.ComplaintPending,
		ScreenshotPath: screenshotPath,
		UserID:         userID,
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.ComplaintCreatedEvent, userID).
		WithMetadata("complaint_id", complaint.ID).
		WithMetadata("category", category))
	return complaint, nil
}

// ListForUser implements domain.ComplaintService
func (s *ComplaintServiceImpl) ListForUser(ctx context.Context, userID uint) ([]domain.Complaint, error) {
	return s.complaintRepo.FindByUser(ctx, userID)
}

// ListAll implements domain.ComplaintService
func (s *ComplaintServiceImpl) ListAll(ctx context.Context) ([]domain.ComplaintSummary, error) {
	return s.complaintRepo.FindAllWithUsers(ctx)
}

// UpdateStatus implements domain.ComplaintService
func (s *ComplaintServiceImpl) UpdateStatus(ctx context.Context, complaintID uint, status, adminNotes string) error {
	complaint, err := s.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		return err
	}

	complaint.Status = status
	complaint.AdminNotes = adminNotes
	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return err
	}

	_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.ComplaintTriagedEvent, complaint.UserID).
		WithMetadata("complaint_id", complaint.ID).
		WithMetadata("status", status))
	return nil
}
