package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shoply-be/internal/apperrors"
	"shoply-be/internal/jwt"
)

// AuthMiddleware guards protected routes. A missing Authorization header is
// 401; a malformed, badly signed, or expired token is 403. On success the
// decoded user id and email are attached to the request context.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, apperrors.ErrTokenRequired)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWith(c, apperrors.ErrTokenInvalid)
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			abortWith(c, apperrors.ErrTokenInvalid)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}

func abortWith(c *gin.Context, appErr *apperrors.Error) {
	c.AbortWithStatusJSON(appErr.Status, gin.H{
		"message": appErr.Message,
		"code":    appErr.Code,
	})
}
