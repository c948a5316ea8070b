package handlers

import (
	"net/http"

	"teammatch-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uuidParam parses a UUID path parameter, responding 400 on failure
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return uuid.Nil, false
	}
	return id, true
}

// actorID extracts the authenticated user from the request context,
// responding 401 when it is missing
func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, false
	}
	return id, true
}
