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

// TeamService is the team lifecycle manager: creation, recruitment
// status, dissolution and read access. It orchestrates the membership
// ledger and emits notifications after mutations commit.
type TeamService struct {
	repo         repository.TeamRepositoryInterface
	memberRepo   repository.TeamMemberRepositoryInterface
	classRepo    repository.ClassroomRepositoryInterface
	categoryRepo repository.CategoryRepositoryInterface
	notifier     Notifier
	validator    *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, classRepo repository.ClassroomRepositoryInterface, categoryRepo repository.CategoryRepositoryInterface, notifier Notifier, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:         repo,
		memberRepo:   memberRepo,
		classRepo:    classRepo,
		categoryRepo: categoryRepo,
		notifier:     notifier,
		validator:    validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name           string     `json:"name" validate:"required,min=1,max=100"`
	Goal           string     `json:"goal"`
	RequiredSkills string     `json:"required_skills"`
	Capacity       *int       `json:"capacity,omitempty" validate:"omitempty,min=1"`
	ClassID        *uuid.UUID `json:"class_id,omitempty"`
	CategoryID     *uuid.UUID `json:"category_id,omitempty"`
	OpenchatURL    string     `json:"openchat_url,omitempty" validate:"omitempty,url"`
}

// UpdateTeamRequest represents the leader's request to edit a team
type UpdateTeamRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Goal           string `json:"goal"`
	RequiredSkills string `json:"required_skills"`
	Capacity       *int   `json:"capacity,omitempty" validate:"omitempty,min=1"`
	OpenchatURL    string `json:"openchat_url,omitempty" validate:"omitempty,url"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Goal           string               `json:"goal,omitempty"`
	RequiredSkills string               `json:"required_skills,omitempty"`
	Capacity       *int                 `json:"capacity,omitempty"`
	OwnerID        uuid.UUID            `json:"owner_id"`
	ClassID        *uuid.UUID           `json:"class_id,omitempty"`
	CategoryID     *uuid.UUID           `json:"category_id,omitempty"`
	RecruitStatus  models.RecruitStatus `json:"recruit_status"`
	OpenchatURL    string               `json:"openchat_url,omitempty"`
	MemberCount    int64                `json:"member_count"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

// TeamMemberResponse represents one membership row in a team detail view
type TeamMemberResponse struct {
	UserID   uuid.UUID       `json:"user_id"`
	Name     string          `json:"name,omitempty"`
	Username string          `json:"username,omitempty"`
	Role     models.TeamRole `json:"role"`
}

// TeamWithMembersResponse is a team detail view including its roster
type TeamWithMembersResponse struct {
	TeamResponse
	Members []TeamMemberResponse `json:"members"`
}

// Create creates a team and its owner's LEADER membership as one
// transaction: a team without a leader membership is never observable.
func (s *TeamService) Create(ownerID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.ClassID != nil && req.CategoryID != nil {
		return nil, apperrors.NewValidationError("scope", "a team may be scoped to a class or a category, not both")
	}

	if req.ClassID != nil {
		if _, err := s.classRepo.GetByID(*req.ClassID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrClassNotFound
			}
			return nil, fmt.Errorf("failed to verify class: %w", err)
		}
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, fmt.Errorf("failed to verify category: %w", err)
		}
	}

	team := &models.Team{
		Name:           req.Name,
		Goal:           req.Goal,
		RequiredSkills: req.RequiredSkills,
		Capacity:       req.Capacity,
		OwnerID:        ownerID,
		ClassID:        req.ClassID,
		CategoryID:     req.CategoryID,
		RecruitStatus:  models.RecruitStatusOpen,
		OpenchatURL:    req.OpenchatURL,
	}
	if err := s.repo.CreateWithLeader(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team, 0), nil
}

// GetByID retrieves a team
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	count, err := s.memberRepo.CountMembers(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	return s.toResponse(team, count), nil
}

// GetWithMembers retrieves a team together with its roster
func (s *TeamService) GetWithMembers(id uuid.UUID) (*TeamWithMembersResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	resp := &TeamWithMembersResponse{
		TeamResponse: *s.toResponse(team, 0),
		Members:      make([]TeamMemberResponse, 0, len(team.Members)),
	}
	for _, m := range team.Members {
		member := TeamMemberResponse{UserID: m.UserID, Role: m.Role}
		if m.User != nil {
			member.Name = m.User.Name
			member.Username = m.User.Username
		}
		if m.Role == models.TeamRoleMember {
			resp.MemberCount++
		}
		resp.Members = append(resp.Members, member)
	}
	return resp, nil
}

// ListForUser lists the teams a user belongs to
func (s *TeamService) ListForUser(userID uuid.UUID) ([]TeamResponse, error) {
	teams, err := s.repo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return s.toResponses(teams)
}

// ListByClass lists the teams scoped to a class
func (s *TeamService) ListByClass(classID uuid.UUID) ([]TeamResponse, error) {
	teams, err := s.repo.ListByClass(classID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return s.toResponses(teams)
}

// ListByCategory lists the teams scoped to a category
func (s *TeamService) ListByCategory(categoryID uuid.UUID) ([]TeamResponse, error) {
	teams, err := s.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return s.toResponses(teams)
}

// Update edits team attributes. Leader only. Capacity may not drop below
// the current member count.
func (s *TeamService) Update(teamID, actorID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.ownerCheck(teamID, actorID, "edit the team")
	if err != nil {
		return nil, err
	}

	count, err := s.memberRepo.CountMembers(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	if req.Capacity != nil && int64(*req.Capacity) < count {
		return nil, apperrors.NewValidationError("capacity", "capacity cannot be lower than the current member count")
	}

	team.Name = req.Name
	team.Goal = req.Goal
	team.RequiredSkills = req.RequiredSkills
	team.Capacity = req.Capacity
	team.OpenchatURL = req.OpenchatURL
	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return s.toResponse(team, count), nil
}

// SetRecruitStatus opens or closes recruitment. Owner only.
func (s *TeamService) SetRecruitStatus(teamID uuid.UUID, status models.RecruitStatus, actorID uuid.UUID) error {
	if !status.IsValid() {
		return apperrors.NewValidationError("recruit_status", "must be OPEN or CLOSED")
	}
	if _, err := s.ownerCheck(teamID, actorID, "change recruitment status"); err != nil {
		return err
	}
	if err := s.repo.UpdateRecruitStatus(teamID, status); err != nil {
		return fmt.Errorf("failed to update recruit status: %w", err)
	}
	return nil
}

// Dissolve deletes the team and every membership row. Owner only. Every
// member except the actor is notified once the deletion has committed.
func (s *TeamService) Dissolve(teamID, actorID uuid.UUID) error {
	team, err := s.ownerCheck(teamID, actorID, "dissolve the team")
	if err != nil {
		return err
	}
	return s.dissolve(team, actorID, models.NotificationTeamDissolved,
		"Your team has been dissolved.")
}

// DissolveCascade deletes a team as part of a class dissolution. The
// caller has already verified class ownership, so no owner check runs
// here, and members are told the class is gone rather than the team.
func (s *TeamService) DissolveCascade(team *models.Team, actorID uuid.UUID) error {
	return s.dissolve(team, actorID, models.NotificationClassDissolved,
		"Your team has been dissolved because its class was deleted.")
}

// dissolve removes the team and notifies the remaining members with the
// given message. Shared with the class-cascade path, which uses a
// distinct notification type.
func (s *TeamService) dissolve(team *models.Team, actorID uuid.UUID, notificationType models.NotificationType, message string) error {
	members, err := s.memberRepo.ListByTeam(team.ID)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}

	if err := s.repo.DeleteWithMembers(team.ID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	relatedID := team.ID
	for _, m := range members {
		if m.UserID != actorID {
			s.notifier.Send(m.UserID, notificationType, message, &relatedID)
		}
	}
	return nil
}

func (s *TeamService) ownerCheck(teamID, actorID uuid.UUID, action string) (*models.Team, error) {
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team.OwnerID != actorID {
		return nil, apperrors.NewPermissionError(action)
	}
	return team, nil
}

func (s *TeamService) toResponse(team *models.Team, memberCount int64) *TeamResponse {
	return &TeamResponse{
		ID:             team.ID,
		Name:           team.Name,
		Goal:           team.Goal,
		RequiredSkills: team.RequiredSkills,
		Capacity:       team.Capacity,
		OwnerID:        team.OwnerID,
		ClassID:        team.ClassID,
		CategoryID:     team.CategoryID,
		RecruitStatus:  team.RecruitStatus,
		OpenchatURL:    team.OpenchatURL,
		MemberCount:    memberCount,
		CreatedAt:      team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *TeamService) toResponses(teams []models.Team) ([]TeamResponse, error) {
	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		count, err := s.memberRepo.CountMembers(teams[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count members: %w", err)
		}
		responses = append(responses, *s.toResponse(&teams[i], count))
	}
	return responses, nil
}
