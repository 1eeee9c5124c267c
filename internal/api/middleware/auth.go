package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/pkg/jwt"
	"github.com/moqawil/moqawil_server/internal/pkg/response"
)

const (
	UserIDKey  = "user_id"
	RoleKey    = "role"
	CompanyKey = "company"
)

// Auth requires a valid Bearer token and stores the user identity in
// the context.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.AuthError(c, "")
			c.Abort()
			return
		}

		claims, err := jwt.ParseToken(token, secret)
		if err != nil {
			response.AuthError(c, "")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// AdminOnly rejects callers without the admin role.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != model.RoleAdmin {
			response.PermissionError(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get(UserIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

func GetRole(c *gin.Context) string {
	if v, ok := c.Get(RoleKey); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

// GetCompany returns the company resolved by RequireCompany.
func GetCompany(c *gin.Context) *model.Company {
	if v, ok := c.Get(CompanyKey); ok {
		if company, ok := v.(*model.Company); ok {
			return company
		}
	}
	return nil
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	// Websocket clients cannot set headers, they pass ?token=.
	return c.Query("token")
}
