package service

import (
	"errors"
	"fmt"

	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FriendService manages directed friend rows. A request creates a
// single PENDING row; accepting it writes the reciprocal row so both
// directions read ACCEPTED. Blocking is one-directional.
type FriendService struct {
	repo     repository.FriendRepositoryInterface
	userRepo repository.UserRepositoryInterface
}

// NewFriendService creates a new friend service
func NewFriendService(repo repository.FriendRepositoryInterface, userRepo repository.UserRepositoryInterface) *FriendService {
	return &FriendService{repo: repo, userRepo: userRepo}
}

// FriendResponse represents a friend relationship in API responses
type FriendResponse struct {
	ID       uuid.UUID           `json:"id"`
	UserID   uuid.UUID           `json:"user_id"`
	FriendID uuid.UUID           `json:"friend_id"`
	Status   models.FriendStatus `json:"status"`
}

// Request sends a friend request from userID to friendID
func (s *FriendService) Request(userID, friendID uuid.UUID) (*FriendResponse, error) {
	if userID == friendID {
		return nil, apperrors.NewValidationError("friend_id", "cannot befriend yourself")
	}
	if _, err := s.userRepo.GetByID(friendID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	// A row in either direction blocks a new request.
	for _, pair := range [][2]uuid.UUID{{userID, friendID}, {friendID, userID}} {
		if _, err := s.repo.Get(pair[0], pair[1]); err == nil {
			return nil, apperrors.ErrFriendExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check friend row: %w", err)
		}
	}

	f := &models.Friend{UserID: userID, FriendID: friendID, Status: models.FriendStatusPending}
	if err := s.repo.Create(f); err != nil {
		return nil, fmt.Errorf("failed to create friend request: %w", err)
	}
	return toFriendResponse(f), nil
}

// Accept accepts a pending request addressed to userID and writes the
// reciprocal ACCEPTED row
func (s *FriendService) Accept(userID, requesterID uuid.UUID) error {
	f, err := s.repo.Get(requesterID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFriendNotFound
		}
		return fmt.Errorf("failed to load friend request: %w", err)
	}
	if f.Status != models.FriendStatusPending {
		return apperrors.NewNotEligibleError("friend request is not pending")
	}

	f.Status = models.FriendStatusAccepted
	if err := s.repo.Update(f); err != nil {
		return fmt.Errorf("failed to accept friend request: %w", err)
	}
	reciprocal := &models.Friend{UserID: userID, FriendID: requesterID, Status: models.FriendStatusAccepted}
	if err := s.repo.Create(reciprocal); err != nil {
		return fmt.Errorf("failed to create reciprocal friend row: %w", err)
	}
	return nil
}

// Block marks the relationship from userID to targetID as blocked,
// creating the row if none exists
func (s *FriendService) Block(userID, targetID uuid.UUID) error {
	if userID == targetID {
		return apperrors.NewValidationError("friend_id", "cannot block yourself")
	}
	f, err := s.repo.Get(userID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			blocked := &models.Friend{UserID: userID, FriendID: targetID, Status: models.FriendStatusBlocked}
			if err := s.repo.Create(blocked); err != nil {
				return fmt.Errorf("failed to create block row: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to load friend row: %w", err)
	}
	f.Status = models.FriendStatusBlocked
	if err := s.repo.Update(f); err != nil {
		return fmt.Errorf("failed to block user: %w", err)
	}
	return nil
}

// Remove deletes the relationship in both directions
func (s *FriendService) Remove(userID, friendID uuid.UUID) error {
	if err := s.repo.DeletePair(userID, friendID); err != nil {
		return fmt.Errorf("failed to remove friend: %w", err)
	}
	return nil
}

// ListFriends lists the users userID has an ACCEPTED relationship with
func (s *FriendService) ListFriends(userID uuid.UUID) ([]UserResponse, error) {
	ids, err := s.repo.ListAcceptedFriendIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	responses := make([]UserResponse, 0, len(ids))
	for _, id := range ids {
		user, err := s.userRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load friend: %w", err)
		}
		responses = append(responses, *toUserResponse(user))
	}
	return responses, nil
}

// ListPending lists the pending requests addressed to userID
func (s *FriendService) ListPending(userID uuid.UUID) ([]FriendResponse, error) {
	rows, err := s.repo.ListPendingFor(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friend requests: %w", err)
	}
	responses := make([]FriendResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, *toFriendResponse(&rows[i]))
	}
	return responses, nil
}

func toFriendResponse(f *models.Friend) *FriendResponse {
	return &FriendResponse{ID: f.ID, UserID: f.UserID, FriendID: f.FriendID, Status: f.Status}
}
