package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fasalmbt/complainto/domain"
)

// Context keys set by the auth middleware.
const (
	CtxUser     = "user"
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
)

// AuthMiddleware creates authentication middleware. The resolved user is
// stored in the request context; the distinct error messages are cosmetic
// only, every failure is a plain 401.
func AuthMiddleware(authSvc domain.AuthService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		user, err := authSvc.Authenticate(c.Request.Context(), tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication credentials"})
			c.Abort()
			return
		}

		c.Set(CtxUser, user)
		c.Set(CtxUserID, user.ID)
		c.Set(CtxUserRole, user.RoleName())

		c.Next()
	})
}

// UserFromContext returns the authenticated user set by AuthMiddleware.
func UserFromContext(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
