package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// UserIDFromContext reads the authenticated user id set by the auth
// middleware.
func UserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, errors.New("no authenticated user in context")
	}
	id, ok := raw.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user id in context has wrong type")
	}
	return id, nil
}
