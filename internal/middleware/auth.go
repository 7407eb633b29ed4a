package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/types"
)

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// Context keys set by AuthMiddleware.
const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"
)

// AuthMiddleware creates a middleware that validates JWT tokens and stores
// the authenticated identity in the request context.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apperr.Abort(c, apperr.Unauthenticated("missing authorization header"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			apperr.Abort(c, apperr.Unauthenticated("invalid authorization header format"))
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			apperr.Abort(c, apperr.Unauthenticated("invalid token"))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects authenticated callers whose role is not in the allowed
// set. Must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CallerRole(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		apperr.Abort(c, apperr.Forbidden("insufficient role"))
	}
}

// CallerID returns the authenticated user id, or uuid.Nil when absent.
func CallerID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// CallerRole returns the authenticated user role, or "" when absent.
func CallerRole(c *gin.Context) string {
	v, ok := c.Get(UserRoleKey)
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}
