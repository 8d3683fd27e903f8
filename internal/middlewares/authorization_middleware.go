package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodybase/internal/repositories"
	"melodybase/internal/utils"
)

// RequireAdmin checks that the authenticated user holds the admin role.
// Must run after Authenticate.
func RequireAdmin(userRepo *repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.UserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		user, err := userRepo.FindUserByID(userID)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}

		if user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. Admin privileges required."})
			return
		}

		c.Set("authenticatedUser", user)
		c.Next()
	}
}
