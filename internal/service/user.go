package service

import (
	"errors"
	"fmt"

	"teammatch-backend/internal/auth"
	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService manages accounts and matching profiles. Deleting an
// account is refused while the user still leads a team with other
// members; everything else the user touches is cleaned up.
type UserService struct {
	repo       repository.UserRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	friendRepo repository.FriendRepositoryInterface
	classRepo  repository.ClassroomRepositoryInterface
	teams      *TeamService
	membership *MembershipService
	validator  *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, friendRepo repository.FriendRepositoryInterface, classRepo repository.ClassroomRepositoryInterface, teams *TeamService, membership *MembershipService, validator *validator.Validate) *UserService {
	return &UserService{
		repo:       repo,
		memberRepo: memberRepo,
		friendRepo: friendRepo,
		classRepo:  classRepo,
		teams:      teams,
		membership: membership,
		validator:  validator,
	}
}

// RegisterRequest represents the request to register a user
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	StudentNo string `json:"student_no" validate:"required,min=1,max=30"`
	School    string `json:"school,omitempty" validate:"omitempty,max=100"`
}

// UpdateProfileRequest represents the request to create or replace the
// caller's matching profile
type UpdateProfileRequest struct {
	Personality string     `json:"personality,omitempty" validate:"omitempty,max=500"`
	Goals       string     `json:"goals,omitempty" validate:"omitempty,max=500"`
	Skills      string     `json:"skills,omitempty" validate:"omitempty,max=500"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
}

// ProfileResponse represents a matching profile in API responses
type ProfileResponse struct {
	Personality string     `json:"personality,omitempty"`
	Goals       string     `json:"goals,omitempty"`
	Skills      string     `json:"skills,omitempty"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID        `json:"id"`
	Username  string           `json:"username"`
	Name      string           `json:"name"`
	StudentNo string           `json:"student_no"`
	School    string           `json:"school,omitempty"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
}

// Register creates an account. Username and student number are both
// unique; the password is stored as an argon2id hash.
func (s *UserService) Register(req *RegisterRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByUsernameOrStudentNo(req.Username, req.StudentNo); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		StudentNo:    req.StudentNo,
		School:       req.School,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toUserResponse(user), nil
}

// Authenticate verifies the credentials and returns the account. A
// missing user and a wrong password are indistinguishable to the
// caller.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// GetByID retrieves a user with their matching profile
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetWithProfile(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return toUserResponse(user), nil
}

// Search finds users by name or student number fragment
func (s *UserService) Search(keyword string, limit int) ([]UserResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	users, err := s.repo.Search(keyword, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserResponse(&users[i]))
	}
	return responses, nil
}

// UpdateProfile creates or replaces the user's matching profile
func (s *UserService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	profile := &models.Profile{
		UserID:      userID,
		Personality: req.Personality,
		Goals:       req.Goals,
		Skills:      req.Skills,
		CategoryID:  req.CategoryID,
	}
	if err := s.repo.UpsertProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return s.GetByID(userID)
}

// Delete removes the account. It is refused while the user leads any
// team that still has other members; sole-member teams the user leads
// are dissolved, regular memberships and friend rows are removed, and
// class memberships are dropped.
func (s *UserService) Delete(userID uuid.UUID) error {
	if _, err := s.repo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	leaderships, err := s.memberRepo.ListLeaderships(userID)
	if err != nil {
		return fmt.Errorf("failed to list leaderships: %w", err)
	}
	for _, lead := range leaderships {
		count, err := s.memberRepo.CountAll(lead.TeamID)
		if err != nil {
			return fmt.Errorf("failed to count members: %w", err)
		}
		if count > 1 {
			return apperrors.NewNotEligibleError("user leads a team with other members; delegate or dissolve it first")
		}
	}
	for _, lead := range leaderships {
		if err := s.teams.Dissolve(lead.TeamID, userID); err != nil {
			return fmt.Errorf("failed to dissolve team %s: %w", lead.TeamID, err)
		}
	}

	memberships, err := s.memberRepo.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("failed to list memberships: %w", err)
	}
	for _, m := range memberships {
		if err := s.membership.Remove(m.TeamID, userID, userID); err != nil {
			return fmt.Errorf("failed to leave team %s: %w", m.TeamID, err)
		}
	}

	if err := s.friendRepo.DeleteAllForUser(userID); err != nil {
		return fmt.Errorf("failed to remove friend rows: %w", err)
	}
	if err := s.classRepo.RemoveMembersByUser(userID); err != nil {
		return fmt.Errorf("failed to remove class memberships: %w", err)
	}
	if err := s.repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func toUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		StudentNo: user.StudentNo,
		School:    user.School,
	}
	if user.Profile != nil {
		resp.Profile = &ProfileResponse{
			Personality: user.Profile.Personality,
			Goals:       user.Profile.Goals,
			Skills:      user.Profile.Skills,
			CategoryID:  user.Profile.CategoryID,
		}
	}
	return resp
}
