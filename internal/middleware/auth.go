package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"unidash-be/config"
	"unidash-be/internal/models"
	"unidash-be/internal/utils"
)

// AuthMiddleware requires a valid access token and exposes its user id as "userID".
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "Unauthorized",
				Message: "missing bearer token",
			})
			return
		}

		claims, err := utils.ValidateToken(strings.TrimSpace(token), cfg.JWTSecret)
		if err != nil || claims.TokenType != utils.TokenTypeAccess {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "Unauthorized",
				Message: "invalid or expired token",
			})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
