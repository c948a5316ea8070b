package handlers

import (
	"net/http"

	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FriendHandler handles HTTP requests for friend operations
type FriendHandler struct {
	friendService *service.FriendService
}

// NewFriendHandler creates a new friend handler
func NewFriendHandler(friendService *service.FriendService) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
	}
}

// friendRequest is the body for friend mutations
type friendRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// RequestFriend handles POST /friends/requests
// @Summary Send a friend request
// @Description Send a friend request to another user
// @Tags friends
// @Accept json
// @Produce json
// @Param request body friendRequest true "Target user"
// @Success 201 {object} service.FriendResponse "Request sent"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Relationship already exists"
// @Security BearerAuth
// @Router /friends/requests [post]
func (h *FriendHandler) RequestFriend(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req friendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	f, err := h.friendService.Request(userID, req.UserID)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsDuplicate(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send friend request", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, f)
}

// AcceptFriend handles POST /friends/requests/:userId/accept
// @Summary Accept a friend request
// @Description Accept a pending friend request from the given user
// @Tags friends
// @Produce json
// @Param userId path string true "Requester's user ID"
// @Success 204 "Request accepted"
// @Failure 404 {object} ErrorResponse "No pending request from this user"
// @Failure 409 {object} ErrorResponse "Request is not pending"
// @Security BearerAuth
// @Router /friends/requests/{userId}/accept [post]
func (h *FriendHandler) AcceptFriend(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	requesterID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	if err := h.friendService.Accept(userID, requesterID); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsNotEligible(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept friend request", "details": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// BlockFriend handles POST /friends/:userId/block
// @Summary Block a user
// @Description Block another user, one-directionally
// @Tags friends
// @Produce json
// @Param userId path string true "Target user ID"
// @Success 204 "User blocked"
// @Security BearerAuth
// @Router /friends/{userId}/block [post]
func (h *FriendHandler) BlockFriend(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	targetID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	if err := h.friendService.Block(userID, targetID); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to block user", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveFriend handles DELETE /friends/:userId
// @Summary Remove a friend
// @Description Remove the relationship with another user in both directions
// @Tags friends
// @Produce json
// @Param userId path string true "Friend's user ID"
// @Success 204 "Friend removed"
// @Security BearerAuth
// @Router /friends/{userId} [delete]
func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	friendID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	if err := h.friendService.Remove(userID, friendID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove friend", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFriends handles GET /friends
// @Summary List friends
// @Description List the authenticated user's accepted friends
// @Tags friends
// @Produce json
// @Success 200 {array} service.UserResponse "Friends"
// @Security BearerAuth
// @Router /friends [get]
func (h *FriendHandler) ListFriends(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	friends, err := h.friendService.ListFriends(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list friends", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, friends)
}

// ListFriendRequests handles GET /friends/requests
// @Summary List pending friend requests
// @Description List the pending friend requests addressed to the authenticated user
// @Tags friends
// @Produce json
// @Success 200 {array} service.FriendResponse "Pending requests"
// @Security BearerAuth
// @Router /friends/requests [get]
func (h *FriendHandler) ListFriendRequests(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	requests, err := h.friendService.ListPending(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list friend requests", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, requests)
}
