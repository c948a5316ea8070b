package handlers

import (
	"net/http"

	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team lifecycle, membership and
// matching operations
type TeamHandler struct {
	teamService       *service.TeamService
	membershipService *service.MembershipService
	matchingService   *service.MatchingService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService *service.TeamService, membershipService *service.MembershipService, matchingService *service.MatchingService) *TeamHandler {
	return &TeamHandler{
		teamService:       teamService,
		membershipService: membershipService,
		matchingService:   matchingService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Create a team; the caller becomes its leader
// @Tags teams
// @Accept json
// @Produce json
// @Param request body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Team created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 404 {object} ErrorResponse "Class or category not found"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	team, err := h.teamService.Create(userID, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get a team
// @Description Get a team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} service.TeamResponse "Team details"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get team", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, team)
}

// GetTeamWithMembers handles GET /teams/:id/members
// @Summary Get a team with its roster
// @Description Get a team together with its member list
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} service.TeamWithMembersResponse "Team with members"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/members [get]
func (h *TeamHandler) GetTeamWithMembers(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetWithMembers(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get team", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, team)
}

// ListMyTeams handles GET /teams/mine
// @Summary List own teams
// @Description List the teams the authenticated user belongs to
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Security BearerAuth
// @Router /teams/mine [get]
func (h *TeamHandler) ListMyTeams(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	teams, err := h.teamService.ListForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list teams", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, teams)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Edit a team
// @Description Edit team attributes. Leader only.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body service.UpdateTeamRequest true "Team data"
// @Success 200 {object} service.TeamResponse "Updated team"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 403 {object} ErrorResponse "Not the team leader"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	team, err := h.teamService.Update(id, userID, &req)
	if err != nil {
		h.respondTeamError(c, err, "Failed to update team")
		return
	}
	c.JSON(http.StatusOK, team)
}

// SetRecruitStatus handles PATCH /teams/:id/recruit-status
// @Summary Set recruitment status
// @Description Open or close recruitment. Leader only.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body object{recruit_status=string} true "New status (OPEN or CLOSED)"
// @Success 204 "Status updated"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "Not the team leader"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/recruit-status [patch]
func (h *TeamHandler) SetRecruitStatus(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		RecruitStatus models.RecruitStatus `json:"recruit_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if err := h.teamService.SetRecruitStatus(id, req.RecruitStatus, userID); err != nil {
		h.respondTeamError(c, err, "Failed to update recruit status")
		return
	}
	c.Status(http.StatusNoContent)
}

// DissolveTeam handles DELETE /teams/:id
// @Summary Dissolve a team
// @Description Delete the team and all of its memberships. Leader only.
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 204 "Team dissolved"
// @Failure 403 {object} ErrorResponse "Not the team leader"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DissolveTeam(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Dissolve(id, userID); err != nil {
		h.respondTeamError(c, err, "Failed to dissolve team")
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveMember handles DELETE /teams/:id/members/:userId
// @Summary Remove a member
// @Description Withdraw from a team or, as leader, expel a member. A leader cannot self-remove.
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Param userId path string true "User ID"
// @Success 204 "Membership removed"
// @Failure 403 {object} ErrorResponse "Not allowed to remove this member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Leader must delegate before leaving"
// @Security BearerAuth
// @Router /teams/{id}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	if err := h.membershipService.Remove(teamID, userID, actor); err != nil {
		if apperrors.IsInvariantViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.respondTeamError(c, err, "Failed to remove member")
		return
	}
	c.Status(http.StatusNoContent)
}

// DelegateLeadership handles POST /teams/:id/delegate/:userId
// @Summary Delegate leadership
// @Description Transfer team leadership to another member. Leader only.
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Param userId path string true "New leader's user ID"
// @Success 204 "Leadership delegated"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Actor is not the leader or target is not a member"
// @Security BearerAuth
// @Router /teams/{id}/delegate/{userId} [post]
func (h *TeamHandler) DelegateLeadership(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	if err := h.membershipService.Delegate(teamID, userID, actor); err != nil {
		if apperrors.IsNotEligible(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.respondTeamError(c, err, "Failed to delegate leadership")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCandidates handles GET /teams/:id/candidates
// @Summary Get ranked candidates
// @Description Get compatibility-ranked candidates for the team, scoped to its class when set
// @Tags matching
// @Produce json
// @Param id path string true "Team ID"
// @Param category_only query bool false "Restrict to candidates declaring the team's category"
// @Success 200 {array} service.Candidate "Ranked candidates"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/candidates [get]
func (h *TeamHandler) GetCandidates(c *gin.Context) {
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	opts := service.MatchOptions{
		RestrictToCategory: c.Query("category_only") == "true",
	}
	candidates, err := h.matchingService.Candidates(teamID, opts)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank candidates", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// respondTeamError maps the common team error cases to HTTP responses
func (h *TeamHandler) respondTeamError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsPermission(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
