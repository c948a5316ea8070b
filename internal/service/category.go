package service

import (
	"errors"
	"fmt"

	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService manages the global category taxonomy teams and
// profiles may reference
type CategoryService struct {
	repo      repository.CategoryRepositoryInterface
	validator *validator.Validate
}

// NewCategoryService creates a new category service
func NewCategoryService(repo repository.CategoryRepositoryInterface, validator *validator.Validate) *CategoryService {
	return &CategoryService{repo: repo, validator: validator}
}

// CreateCategoryRequest represents the request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Create creates a category. Names are globally unique.
func (s *CategoryService) Create(creatorID uuid.UUID, req *CreateCategoryRequest) (*CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category := &models.Category{Name: req.Name, CreatedBy: &creatorID}
	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// GetByID retrieves a category
func (s *CategoryService) GetByID(id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	return &CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// List lists all categories
func (s *CategoryService) List() ([]CategoryResponse, error) {
	categories, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return responses, nil
}
