package mocks

import (
	"context"

	"github.com/fasalmbt/complainto/domain"
)

// MockComplaintService implements domain.ComplaintService interface for testing
type MockComplaintService struct {
	CreateFunc       func(ctx context.Context, userID uint, title, description, category, screenshotPath string) (*domain.Complaint, error)
	ListForUserFunc  func(ctx context.Context, userID uint) ([]domain.Complaint, error)
	ListAllFunc      func(ctx context.Context) ([]domain.ComplaintSummary, error)
	UpdateStatusFunc func(ctx context.Context, complaintID uint, status, adminNotes string) error
}

// NewMockComplaintService creates a new MockComplaintService with default behaviors
func NewMockComplaintService() *MockComplaintService {
	return &MockComplaintService{}
}

// Create submits a complaint
func (m *MockComplaintService) Create(ctx context.Context, userID uint, title, description, category, screenshotPath string) (*domain.Complaint, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, title, description, category, screenshotPath)
	}
	return &domain.Complaint{ID: 1, UserID: userID, Title: title, Status: domain.ComplaintPending}, nil
}

// ListForUser lists a user's complaints
func (m *MockComplaintService) ListForUser(ctx context.Context, userID uint) ([]domain.Complaint, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID)
	}
	return nil, nil
}

// ListAll lists every complaint with its reporter
func (m *MockComplaintService) ListAll(ctx context.Context) ([]domain.ComplaintSummary, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

// UpdateStatus triages a complaint
func (m *MockComplaintService) UpdateStatus(ctx context.Context, complaintID uint, status, adminNotes string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, complaintID, status, adminNotes)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.ComplaintService = (*MockComplaintService)(nil)
