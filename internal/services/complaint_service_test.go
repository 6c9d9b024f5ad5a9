package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fasalmbt/complainto/domain"
	"github.com/fasalmbt/complainto/internal/mocks"
)

func createComplaintServiceForTest(t *testing.T) (domain.ComplaintService, *mocks.MockComplaintRepository, *mocks.MockAuditLogger) {
	t.Helper()
	repo := mocks.NewMockComplaintRepository()
	audit := mocks.NewMockAuditLogger()
	return NewComplaintService(repo, audit), repo, audit
}

func TestComplaintCreateDefaultsToPending(t *testing.T) {
	svc, repo, audit := createComplaintServiceForTest(t)

	var stored *domain.Complaint
	repo.CreateFunc = func(ctx context.Context, complaint *domain.Complaint) error {
		complaint.ID = 1
		stored = complaint
		return nil
	}

	complaint, err := svc.Create(context.Background(), 7, "Broken light", "The hallway light is out", "maintenance", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if stored.Status != domain.ComplaintPending {
		t.Errorf("new complaint should be pending, got %q", stored.Status)
	}
	if stored.UserID != 7 {
		t.Errorf("complaint should belong to user 7, got %d", stored.UserID)
	}
	if complaint.ID != 1 {
		t.Errorf("expected assigned ID back, got %d", complaint.ID)
	}
	if len(audit.EventsOfType(domain.ComplaintCreatedEvent)) != 1 {
		t.Error("expected one complaint created audit event")
	}
}

func TestComplaintUpdateStatus(t *testing.T) {
	svc, repo, _ := createComplaintServiceForTest(t)

	repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Complaint, error) {
		return &domain.Complaint{ID: id, UserID: 7, Status: domain.ComplaintPending}, nil
	}
	var updated *domain.Complaint
	repo.UpdateFunc = func(ctx context.Context, complaint *domain.Complaint) error {
		updated = complaint
		return nil
	}

	if err := svc.UpdateStatus(context.Background(), 3, domain.ComplaintResolved, "replaced the bulb"); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != domain.ComplaintResolved {
		t.Errorf("expected status resolved, got %q", updated.Status)
	}
	if updated.AdminNotes != "replaced the bulb" {
		t.Errorf("expected admin notes to be set, got %q", updated.AdminNotes)
	}
}

func TestComplaintUpdateStatusNotFound(t *testing.T) {
	svc, _, _ := createComplaintServiceForTest(t)

	// Default repo behavior: ErrComplaintNotFound.
	if err := svc.UpdateStatus(context.Background(), 99, domain.ComplaintResolved, ""); !errors.Is(err, domain.ErrComplaintNotFound) {
		t.Errorf("expected ErrComplaintNotFound, got %v", err)
	}
}

func TestComplaintListForUser(t *testing.T) {
	svc, repo, _ := createComplaintServiceForTest(t)

	repo.FindByUserFunc = func(ctx context.Context, userID uint) ([]domain.Complaint, error) {
		if userID != 7 {
			t.Errorf("expected lookup for user 7, got %d", userID)
		}
		return []domain.Complaint{{ID: 1, UserID: userID}}, nil
	}

	complaints, err := svc.ListForUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if len(complaints) != 1 {
		t.Errorf("expected one complaint, got %d", len(complaints))
	}
}
