package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	joinCodeLength  = 6
	joinCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	joinCodeRetries = 10
)

// ClassService manages classes: opaque-join-code creation, joining,
// and dissolution. Dissolving a class dissolves every team scoped to it
// before the class row goes away.
type ClassService struct {
	repo        repository.ClassroomRepositoryInterface
	teamRepo    repository.TeamRepositoryInterface
	teamService *TeamService
	validator   *validator.Validate
}

// NewClassService creates a new class service
func NewClassService(repo repository.ClassroomRepositoryInterface, teamRepo repository.TeamRepositoryInterface, teamService *TeamService, validator *validator.Validate) *ClassService {
	return &ClassService{
		repo:        repo,
		teamRepo:    teamRepo,
		teamService: teamService,
		validator:   validator,
	}
}

// CreateClassRequest represents the request to create a class
type CreateClassRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
}

// ClassResponse represents a class in API responses
type ClassResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Code        string    `json:"code"`
	OwnerID     uuid.UUID `json:"owner_id"`
}

// Create creates a class with a fresh join code. The creator becomes
// the class ADMIN in the same transaction.
func (s *ClassService) Create(ownerID uuid.UUID, req *CreateClassRequest) (*ClassResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	code, err := s.generateCode()
	if err != nil {
		return nil, err
	}

	class := &models.Classroom{
		Name:        req.Name,
		Description: req.Description,
		Code:        code,
		OwnerID:     ownerID,
	}
	if err := s.repo.CreateWithAdmin(class); err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}
	return toClassResponse(class), nil
}

// GetByID retrieves a class
func (s *ClassService) GetByID(id uuid.UUID) (*ClassResponse, error) {
	class, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to load class: %w", err)
	}
	return toClassResponse(class), nil
}

// ListForUser lists the classes a user belongs to
func (s *ClassService) ListForUser(userID uuid.UUID) ([]ClassResponse, error) {
	classes, err := s.repo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	responses := make([]ClassResponse, 0, len(classes))
	for i := range classes {
		responses = append(responses, *toClassResponse(&classes[i]))
	}
	return responses, nil
}

// Join adds the user to the class identified by the join code. Joining
// a class the user already belongs to is rejected as a duplicate.
func (s *ClassService) Join(code string, userID uuid.UUID) (*ClassResponse, error) {
	class, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to load class: %w", err)
	}

	isMember, err := s.repo.IsMember(class.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check class membership: %w", err)
	}
	if isMember {
		return nil, apperrors.ErrClassMemberExists
	}

	if err := s.repo.AddMember(class.ID, userID, models.ClassRoleMember); err != nil {
		return nil, fmt.Errorf("failed to join class: %w", err)
	}
	return toClassResponse(class), nil
}

// Dissolve deletes the class, its memberships, and every team scoped to
// it. Owner only. Team members learn about it through a class-dissolved
// notification per team; the cascade runs team by team so each deletion
// keeps its own transactional shape.
func (s *ClassService) Dissolve(classID, actorID uuid.UUID) error {
	class, err := s.repo.GetByID(classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClassNotFound
		}
		return fmt.Errorf("failed to load class: %w", err)
	}
	if class.OwnerID != actorID {
		return apperrors.NewPermissionError("dissolve the class")
	}

	teams, err := s.teamRepo.ListByClass(classID)
	if err != nil {
		return fmt.Errorf("failed to list class teams: %w", err)
	}
	for i := range teams {
		if err := s.teamService.DissolveCascade(&teams[i], actorID); err != nil {
			return fmt.Errorf("failed to dissolve team %s: %w", teams[i].ID, err)
		}
	}

	if err := s.repo.DeleteWithMembers(classID); err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	return nil
}

// generateCode draws uppercase alphanumeric join codes until one is
// unused, bounded by joinCodeRetries.
func (s *ClassService) generateCode() (string, error) {
	for attempt := 0; attempt < joinCodeRetries; attempt++ {
		code := make([]byte, joinCodeLength)
		for i := range code {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(joinCodeCharset))))
			if err != nil {
				return "", fmt.Errorf("failed to generate join code: %w", err)
			}
			code[i] = joinCodeCharset[n.Int64()]
		}
		exists, err := s.repo.CodeExists(string(code))
		if err != nil {
			return "", fmt.Errorf("failed to check join code: %w", err)
		}
		if !exists {
			return string(code), nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique join code after %d attempts", joinCodeRetries)
}

func toClassResponse(class *models.Classroom) *ClassResponse {
	return &ClassResponse{
		ID:          class.ID,
		Name:        class.Name,
		Description: class.Description,
		Code:        class.Code,
		OwnerID:     class.OwnerID,
	}
}
