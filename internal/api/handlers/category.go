package handlers

import (
	"net/http"

	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService *service.CategoryService
	teamService     *service.TeamService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService, teamService *service.TeamService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		teamService:     teamService,
	}
}

// ListCategories handles GET /categories
// @Summary List all categories
// @Description Get all categories
// @Tags categories
// @Produce json
// @Success 200 {array} service.CategoryResponse "Categories"
// @Security BearerAuth
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get categories", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /categories
// @Summary Create a category
// @Description Create a category with a globally unique name
// @Tags categories
// @Accept json
// @Produce json
// @Param request body service.CreateCategoryRequest true "Category data"
// @Success 201 {object} service.CategoryResponse "Category created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 409 {object} ErrorResponse "Name already taken"
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	category, err := h.categoryService.Create(userID, &req)
	if err != nil {
		switch {
		case apperrors.IsDuplicate(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, category)
}

// ListCategoryTeams handles GET /categories/:id/teams
// @Summary List category teams
// @Description List the teams scoped to a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {array} service.TeamResponse "Teams"
// @Security BearerAuth
// @Router /categories/{id}/teams [get]
func (h *CategoryHandler) ListCategoryTeams(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	teams, err := h.teamService.ListByCategory(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list teams", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, teams)
}
