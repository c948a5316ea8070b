package handlers

import (
	"net/http"

	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvitationHandler handles HTTP requests for the invitation workflow
type InvitationHandler struct {
	invitationService *service.InvitationService
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationService *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
	}
}

// inviteRequest is the body for sending an invitation
type inviteRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// Invite handles POST /teams/:id/invitations
// @Summary Invite a user
// @Description Invite a user to a team. Leader only.
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body inviteRequest true "Invitee"
// @Success 201 {object} service.InvitationResponse "Invitation sent"
// @Failure 403 {object} ErrorResponse "Not the leader, or invitee is outside the team's class"
// @Failure 404 {object} ErrorResponse "Team or user not found"
// @Failure 409 {object} ErrorResponse "Already a member or already invited"
// @Security BearerAuth
// @Router /teams/{id}/invitations [post]
func (h *InvitationHandler) Invite(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	inv, err := h.invitationService.Invite(teamID, userID, req.UserID)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsPermission(err), apperrors.IsScope(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsDuplicate(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send invitation", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// ListMyInvitations handles GET /invitations/mine
// @Summary List own invitations
// @Description List the pending invitations addressed to the authenticated user
// @Tags invitations
// @Produce json
// @Success 200 {array} service.InvitationResponse "Pending invitations"
// @Security BearerAuth
// @Router /invitations/mine [get]
func (h *InvitationHandler) ListMyInvitations(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	invs, err := h.invitationService.ListPendingForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invitations", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, invs)
}

// AcceptInvitation handles POST /invitations/:id/accept
// @Summary Accept an invitation
// @Description Accept a pending invitation, joining the team unless it has filled up
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 204 "Invitation accepted, or dropped when the caller is not the invitee"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Failure 409 {object} ErrorResponse "Team is full; invitation rejected instead"
// @Security BearerAuth
// @Router /invitations/{id}/accept [post]
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.invitationService.Accept(id, userID); err != nil {
		h.respondResponseError(c, err, "Failed to accept invitation")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeclineInvitation handles POST /invitations/:id/decline
// @Summary Decline an invitation
// @Description Decline a pending invitation
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 204 "Invitation declined, or dropped when the caller is not the invitee"
// @Failure 404 {object} ErrorResponse "Invitation not found"
// @Security BearerAuth
// @Router /invitations/{id}/decline [post]
func (h *InvitationHandler) DeclineInvitation(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.invitationService.Decline(id, userID); err != nil {
		h.respondResponseError(c, err, "Failed to decline invitation")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InvitationHandler) respondResponseError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsPermission(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsCapacityExceeded(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
