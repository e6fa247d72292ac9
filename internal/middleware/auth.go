// internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/typackaging/backend/internal/i18n"
	"github.com/typackaging/backend/internal/models"
	"github.com/typackaging/backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func setClaims(c *gin.Context, claims *utils.JWTClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("user_name", claims.Name)
	c.Set("user_role", claims.Role)
	c.Set("company_id", claims.CompanyID)
	c.Set("company_tier", claims.Company.Tier)
}

func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = "en"
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": i18n.T(lang, i18n.KeyAuthRequired),
			})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": i18n.T(lang, i18n.KeyAuthInvalidToken),
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": i18n.T(lang, i18n.KeyAuthTokenExpired),
			})
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// RoleRequired gates a route to the given roles. It assumes AuthRequired
// already ran and populated the context.
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr, exists := utils.GetUserRoleFromContext(c)
		if exists {
			role := models.UserRole(roleStr)
			for _, allowed := range roles {
				if role == allowed {
					c.Next()
					return
				}
			}
		}

		utils.ForbiddenResponse(c, "")
		c.Abort()
	}
}

func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			c.Next()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}
