package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobboard/internal/httperr"
	"jobboard/internal/models"
	"jobboard/internal/service"
)

// Context keys for the identity resolved from the bearer token.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// Authenticate resolves the caller from the Authorization header and places
// the verified claims on the request context. It rejects the request before
// the handler runs when the header is absent, malformed, or the token does
// not verify.
func Authenticate(tokens service.TokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, httperr.Unauthorized("Access denied. No token provided."))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithError(c, httperr.Unauthorized("Authorization header format must be Bearer <token>"))
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				abortWithError(c, httperr.Unauthorized("Token expired"))
				return
			}
			logger.Debug("Token verification failed", zap.Error(err))
			abortWithError(c, httperr.Unauthorized("Invalid or expired token."))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireAdmin gates a route on the admin role. It runs after Authenticate,
// so a missing identity means the route was wired without it.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			abortWithError(c, httperr.Unauthorized("Authentication required."))
			return
		}

		if role != models.RoleAdmin {
			abortWithError(c, httperr.Forbidden("Access denied. Admin privileges required."))
			return
		}

		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
