package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/fasalmbt/complainto/domain"
)

// AuthMW wraps the auth service for middleware
type AuthMW struct {
	authSvc domain.AuthService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(authSvc domain.AuthService) *AuthMW {
	return &AuthMW{authSvc: authSvc}
}

// WithBearer returns the bearer token middleware function
func (mw *AuthMW) WithBearer() gin.HandlerFunc {
	return AuthMiddleware(mw.authSvc)
}
