package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"badum_backend/internal/apperrors"
	"badum_backend/internal/auth"
)

const (
	// UserIDKey holds the authenticated user id in the gin context.
	UserIDKey = "userID"
	// IsAdminKey holds the token's admin flag.
	IsAdminKey = "isAdmin"
)

// AuthMiddleware verifies the Bearer token and stores the principal in
// the request context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := tokens.ParseToken(parts[1], auth.TokenAccess)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(IsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// UserID returns the authenticated principal from the gin context.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
