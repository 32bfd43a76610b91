package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/seva-foundation/core/internal/config"
	"github.com/seva-foundation/core/internal/pkg/jwt"
	"github.com/seva-foundation/core/internal/pkg/response"
)

const ContextKeyAdmin = "admin_user"

// Auth returns a middleware guarding the admin routes. When no admin
// credentials are configured the guard is a pass-through; enabling the
// gate is an explicit operator decision.
func Auth(cfg *config.AppConfig) gin.HandlerFunc {
	enabled := cfg.Admin.Enabled()
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}
		username, err := jwt.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyAdmin, username)
		c.Next()
	}
}

// CurrentAdmin extracts the authenticated admin username from context.
func CurrentAdmin(c *gin.Context) string {
	v, _ := c.Get(ContextKeyAdmin)
	name, _ := v.(string)
	return name
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
