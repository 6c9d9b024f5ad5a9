package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fasalmbt/complainto/domain"
	"github.com/fasalmbt/complainto/internal/http/middleware"
)

// ComplaintHandlers handles complaint submission and admin triage
type ComplaintHandlers struct {
	complaintSvc domain.ComplaintService
}

// NewComplaintHandlers creates new complaint handlers
func NewComplaintHandlers(complaintSvc domain.ComplaintService) *ComplaintHandlers {
	return &ComplaintHandlers{complaintSvc: complaintSvc}
}

// CreateComplaintRequest represents a complaint submission
type CreateComplaintRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Category       string `json:"category" binding:"required"`
	ScreenshotPath string `json:"screenshot_path"`
}

// StatusUpdateRequest represents an admin triage update
type StatusUpdateRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"admin_notes"`
}

// Create handles complaint submission
func (h *ComplaintHandlers) Create(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.complaintSvc.Create(c.Request.Context(), user.ID, req.Title, req.Description, req.Category, req.ScreenshotPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit complaint"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Complaint submitted successfully",
		"complaint_id": complaint.ID,
	})
}

// ListMine returns the authenticated user's complaints
func (h *ComplaintHandlers) ListMine(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	complaints, err := h.complaintSvc.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list complaints"})
		return
	}

	c.JSON(http.StatusOK, complaints)
}

// ListAll returns every complaint with reporter details (admin only)
func (h *ComplaintHandlers) ListAll(c *gin.Context) {
	summaries, err := h.complaintSvc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list complaints"})
		return
	}

	out := make([]gin.H, 0, len(summaries))
	for i := range summaries {
		s := &summaries[i]
		out = append(out, gin.H{
			"id":              s.ID,
			"title":           s.Title,
			"description":     s.Description,
			"category":        s.Category,
			"status":          s.Status,
			"screenshot_path": s.ScreenshotPath,
			"admin_notes":     s.AdminNotes,
			"created_at":      s.CreatedAt,
			"updated_at":      s.UpdatedAt,
			"user_name":       s.UserName,
			"user_email":      s.UserEmail,
		})
	}

	c.JSON(http.StatusOK, out)
}

// UpdateStatus applies an admin triage decision
func (h *ComplaintHandlers) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.complaintSvc.UpdateStatus(c.Request.Context(), uint(id), req.Status, req.AdminNotes); err != nil {
		if errors.Is(err, domain.ErrComplaintNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update complaint"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complaint updated successfully"})
}
