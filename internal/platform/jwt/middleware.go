package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys under which the middleware stores the verified principal.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRoles    = "roles"
)

// AuthRequired returns a Gin middleware that rejects requests without a
// valid bearer token and stores the verified claims in the context.
func AuthRequired(p *Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := p.Verify(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRoles, claims.Roles)
		c.Next()
	}
}

// PrincipalUsername returns the authenticated username stored by
// AuthRequired, or an empty string when the request is anonymous.
func PrincipalUsername(c *gin.Context) string {
	if v, ok := c.Get(ContextUsername); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// PrincipalRoles returns the authenticated principal's role names.
func PrincipalRoles(c *gin.Context) []string {
	if v, ok := c.Get(ContextRoles); ok {
		if roles, ok := v.([]string); ok {
			return roles
		}
	}
	return nil
}
