package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/devlink/pkg/auth"
)

const UserIDKey = "userID"

// AuthMiddleware проверяет JWT из заголовка x-auth-token
func AuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "No Token, Authorization Denied"})
			c.Abort()
			return
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token Is Not Valid"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.User.ID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token Is Not Valid"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
