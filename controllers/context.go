package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID reads the authenticated user out of the request context.
// Middleware sets it as a string; a failed lookup writes the error response.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user_id"})
		return uuid.Nil, false
	}

	switch id := v.(type) {
	case string:
		parsed, err := uuid.Parse(id)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return uuid.Nil, false
		}
		return parsed, true
	case uuid.UUID:
		return id, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id type"})
		return uuid.Nil, false
	}
}
