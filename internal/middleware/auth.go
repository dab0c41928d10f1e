package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/auth"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/model"
)

// ContextUserKey is where the authenticated user id lives in gin context.
const ContextUserKey = "userID"

// RequireAuth resolves the bearer token to an existing user and aborts with
// 401 otherwise.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header format must be Bearer {token}"})
			return
		}

		userID, err := auth.VerifyJWT(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		var user model.User
		if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set(ContextUserKey, user.UserID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, or "" when anonymous.
func CurrentUserID(c *gin.Context) string {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return ""
	}
	userID, ok := v.(string)
	if !ok {
		return ""
	}
	return userID
}
