package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pitchhub/internal/models"
	"pitchhub/internal/policy"
	"pitchhub/internal/token"
)

const identityKey = "identity"

// RequireAuth validates the bearer token and puts the caller's identity into
// the gin context for handlers and role guards downstream.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, http.StatusUnauthorized, "authorization header format must be Bearer {token}")
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(identityKey, policy.Identity{UserID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// RequireRole denies the request unless the authenticated caller holds one
// of the allowed roles. Must run after RequireAuth.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		if err := policy.RequireRole(id, allowed...); err != nil {
			abort(c, http.StatusForbidden, err.Error())
			return
		}
		c.Next()
	}
}

// IdentityFrom extracts the authenticated identity set by RequireAuth.
func IdentityFrom(c *gin.Context) (policy.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return policy.Identity{}, false
	}
	id, ok := v.(policy.Identity)
	return id, ok
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": msg})
}
