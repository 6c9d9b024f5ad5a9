package mocks

import (
	"context"

	"github.com/fasalmbt/complainto/domain"
)

// MockComplaintRepository implements domain.ComplaintRepository for testing
type MockComplaintRepository struct {
	CreateFunc           func(ctx context.Context, complaint *domain.Complaint) error
	FindByIDFunc         func(ctx context.Context, id uint) (*domain.Complaint, error)
	FindByUserFunc       func(ctx context.Context, userID uint) ([]domain.Complaint, error)
	FindAllWithUsersFunc func(ctx context.Context) ([]domain.ComplaintSummary, error)
	UpdateFunc           func(ctx context.Context, complaint *domain.Complaint) error
	DeleteByUserFunc     func(ctx context.Context, userID uint) error
}

// NewMockComplaintRepository creates a new MockComplaintRepository with default behaviors
func NewMockComplaintRepository() *MockComplaintRepository {
	return &MockComplaintRepository{}
}

// Create persists a complaint
func (m *MockComplaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, complaint)
	}
	return nil
}

// FindByID finds a complaint by ID
func (m *MockComplaintRepository) FindByID(ctx context.Context, id uint) (*domain.Complaint, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrComplaintNotFound
}

// FindByUser lists a user's complaints
func (m *MockComplaintRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Complaint, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	return nil, nil
}

// FindAllWithUsers lists every complaint joined with its reporter
func (m *MockComplaintRepository) FindAllWithUsers(ctx context.Context) ([]domain.ComplaintSummary, error) {
	if m.FindAllWithUsersFunc != nil {
		return m.FindAllWithUsersFunc(ctx)
	}
	return nil, nil
}

// Update updates a complaint
func (m *MockComplaintRepository) Update(ctx context.Context, complaint *domain.Complaint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, complaint)
	}
	return nil
}

// DeleteByUser removes every complaint owned by a user
func (m *MockComplaintRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, userID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.ComplaintRepository = (*MockComplaintRepository)(nil)
