package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fasalmbt/complainto/domain"
	"github.com/fasalmbt/complainto/internal/http/middleware"
)

// AccountHandlers handles profile and account lifecycle requests
type AccountHandlers struct {
	authSvc domain.AuthService
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(authSvc domain.AuthService) *AccountHandlers {
	return &AccountHandlers{authSvc: authSvc}
}

// ProfileUpdateRequest represents a profile update
type ProfileUpdateRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// DeleteAccountRequest represents an account deletion request
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
	OTP      string `json:"otp" binding:"required"`
}

// Profile returns the authenticated user's profile
func (h *AccountHandlers) Profile(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":       user.Name,
		"email":      user.Email,
		"is_admin":   user.IsAdmin,
		"created_at": user.CreatedAt,
	})
}

// UpdateProfile updates the authenticated user's name and email
func (h *AccountHandlers) UpdateProfile(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.UpdateProfile(c.Request.Context(), user.ID, req.Name, req.Email); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// DeleteAccount deletes the authenticated user's account. Requires the
// account password and a live OTP for the account email; the user's
// complaints go with the account.
func (h *AccountHandlers) DeleteAccount(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.DeleteAccount(c.Request.Context(), user.ID, req.Password, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordIncorrect):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect password"})
		case errors.Is(err, domain.ErrSecretInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
