package handlers

import (
	"net/http"

	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles HTTP requests for the application workflow
type ApplicationHandler struct {
	applicationService *service.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// applyRequest is the body for submitting an application
type applyRequest struct {
	Message string `json:"message,omitempty"`
}

// Apply handles POST /teams/:id/applications
// @Summary Apply to a team
// @Description Submit an application to a recruiting team
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body applyRequest false "Application message"
// @Success 201 {object} service.ApplicationResponse "Application submitted"
// @Failure 403 {object} ErrorResponse "Applicant is outside the team's class"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Already a member, already applied, or team not recruiting"
// @Security BearerAuth
// @Router /teams/{id}/applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	app, err := h.applicationService.Submit(teamID, userID, req.Message)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsScope(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsDuplicate(err), apperrors.IsNotEligible(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListTeamApplications handles GET /teams/:id/applications
// @Summary List pending applications
// @Description List the pending applications for a team. Leader only.
// @Tags applications
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} service.ApplicationResponse "Pending applications"
// @Failure 403 {object} ErrorResponse "Not the team leader"
// @Security BearerAuth
// @Router /teams/{id}/applications [get]
func (h *ApplicationHandler) ListTeamApplications(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	apps, err := h.applicationService.ListPendingByTeam(teamID, userID)
	if err != nil {
		if apperrors.IsPermission(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListMyApplications handles GET /applications/mine
// @Summary List own applications
// @Description List the applications the authenticated user has filed
// @Tags applications
// @Produce json
// @Success 200 {array} service.ApplicationResponse "Applications"
// @Security BearerAuth
// @Router /applications/mine [get]
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// AcceptApplication handles POST /applications/:id/accept
// @Summary Accept an application
// @Description Accept a pending application, admitting the applicant unless the team is full. Leader only.
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 204 "Application accepted"
// @Failure 403 {object} ErrorResponse "Not the team leader"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 409 {object} ErrorResponse "Team is full; application rejected instead"
// @Security BearerAuth
// @Router /applications/{id}/accept [post]
func (h *ApplicationHandler) AcceptApplication(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.applicationService.Accept(id, userID); err != nil {
		h.respondDecisionError(c, err, "Failed to accept application")
		return
	}
	c.Status(http.StatusNoContent)
}

// RejectApplication handles POST /applications/:id/reject
// @Summary Reject an application
// @Description Reject a pending application. Leader only.
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 204 "Application rejected"
// @Failure 403 {object} ErrorResponse "Not the team leader"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Security BearerAuth
// @Router /applications/{id}/reject [post]
func (h *ApplicationHandler) RejectApplication(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.applicationService.Reject(id, userID); err != nil {
		h.respondDecisionError(c, err, "Failed to reject application")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ApplicationHandler) respondDecisionError(c *gin.Context, err error, fallback string) {
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
