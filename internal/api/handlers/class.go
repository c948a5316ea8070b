package handlers

import (
	"net/http"

	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClassHandler handles HTTP requests for class operations
type ClassHandler struct {
	classService *service.ClassService
	teamService  *service.TeamService
}

// NewClassHandler creates a new class handler
func NewClassHandler(classService *service.ClassService, teamService *service.TeamService) *ClassHandler {
	return &ClassHandler{
		classService: classService,
		teamService:  teamService,
	}
}

// joinClassRequest is the body for joining a class by code
type joinClassRequest struct {
	Code string `json:"code" binding:"required"`
}

// CreateClass handles POST /classes
// @Summary Create a class
// @Description Create a class with a generated join code; the caller becomes its admin
// @Tags classes
// @Accept json
// @Produce json
// @Param request body service.CreateClassRequest true "Class data"
// @Success 201 {object} service.ClassResponse "Class created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Security BearerAuth
// @Router /classes [post]
func (h *ClassHandler) CreateClass(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	class, err := h.classService.Create(userID, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, class)
}

// GetClass handles GET /classes/:id
// @Summary Get a class
// @Description Get a class by ID
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} service.ClassResponse "Class details"
// @Failure 404 {object} ErrorResponse "Class not found"
// @Security BearerAuth
// @Router /classes/{id} [get]
func (h *ClassHandler) GetClass(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	class, err := h.classService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get class", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, class)
}

// ListMyClasses handles GET /classes/mine
// @Summary List own classes
// @Description List the classes the authenticated user belongs to
// @Tags classes
// @Produce json
// @Success 200 {array} service.ClassResponse "Classes"
// @Security BearerAuth
// @Router /classes/mine [get]
func (h *ClassHandler) ListMyClasses(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	classes, err := h.classService.ListForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list classes", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// JoinClass handles POST /classes/join
// @Summary Join a class
// @Description Join a class using its join code
// @Tags classes
// @Accept json
// @Produce json
// @Param request body joinClassRequest true "Join code"
// @Success 200 {object} service.ClassResponse "Joined class"
// @Failure 404 {object} ErrorResponse "No class with this code"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Security BearerAuth
// @Router /classes/join [post]
func (h *ClassHandler) JoinClass(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req joinClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	class, err := h.classService.Join(req.Code, userID)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsDuplicate(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join class", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, class)
}

// ListClassTeams handles GET /classes/:id/teams
// @Summary List class teams
// @Description List the teams scoped to a class
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {array} service.TeamResponse "Teams"
// @Security BearerAuth
// @Router /classes/{id}/teams [get]
func (h *ClassHandler) ListClassTeams(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	teams, err := h.teamService.ListByClass(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list teams", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, teams)
}

// DissolveClass handles DELETE /classes/:id
// @Summary Dissolve a class
// @Description Delete the class, its memberships, and every team scoped to it. Owner only.
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 204 "Class dissolved"
// @Failure 403 {object} ErrorResponse "Not the class owner"
// @Failure 404 {object} ErrorResponse "Class not found"
// @Security BearerAuth
// @Router /classes/{id} [delete]
func (h *ClassHandler) DissolveClass(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.classService.Dissolve(id, userID); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsPermission(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dissolve class", "details": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
