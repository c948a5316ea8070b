package service

import (
	"errors"
	"fmt"
	"time"

	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationService handles the leader-initiated join workflow: a leader
// invites a user, the user accepts or declines. Accepting inserts the
// membership row and flips the invitation terminal in one transaction.
type InvitationService struct {
	repo       repository.TeamInvitationRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	classRepo  repository.ClassroomRepositoryInterface
	notifier   Notifier
}

// NewInvitationService creates a new invitation service
func NewInvitationService(repo repository.TeamInvitationRepositoryInterface, teamRepo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, userRepo repository.UserRepositoryInterface, classRepo repository.ClassroomRepositoryInterface, notifier Notifier) *InvitationService {
	return &InvitationService{
		repo:       repo,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		classRepo:  classRepo,
		notifier:   notifier,
	}
}

// InvitationResponse represents an invitation in API responses
type InvitationResponse struct {
	ID          uuid.UUID            `json:"id"`
	TeamID      uuid.UUID            `json:"team_id"`
	TeamName    string               `json:"team_name,omitempty"`
	FromUserID  uuid.UUID            `json:"from_user_id"`
	ToUserID    uuid.UUID            `json:"to_user_id"`
	Status      models.RequestStatus `json:"status"`
	RespondedAt *time.Time           `json:"responded_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// Invite sends an invitation from the team leader to a user. The actor
// must be the leader, the invitee must exist, must not already belong
// to the team, must not hold a pending invitation, and for class-scoped
// teams must belong to the class. No row is written when any check
// fails.
func (s *InvitationService) Invite(teamID, actorID, toUserID uuid.UUID) (*InvitationResponse, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	membership, err := s.memberRepo.GetByTeamAndUser(teamID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewPermissionError("invite users to this team")
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if membership.Role != models.TeamRoleLeader {
		return nil, apperrors.NewPermissionError("invite users to this team")
	}

	if _, err := s.userRepo.GetByID(toUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if team.ClassID != nil {
		isMember, err := s.classRepo.IsMember(*team.ClassID, toUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check class membership: %w", err)
		}
		if !isMember {
			return nil, apperrors.NewScopeError(teamID, *team.ClassID)
		}
	}

	if _, err := s.memberRepo.GetByTeamAndUser(teamID, toUserID); err == nil {
		return nil, apperrors.NewDuplicateError("team membership", "user already belongs to the team")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	if _, err := s.repo.GetPending(teamID, toUserID); err == nil {
		return nil, apperrors.ErrInvitationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check pending invitation: %w", err)
	}

	inv := &models.TeamInvitation{
		TeamID:     teamID,
		FromUserID: actorID,
		ToUserID:   toUserID,
		Status:     models.RequestStatusPending,
	}
	if err := s.repo.Create(inv); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	relatedID := teamID
	s.notifier.Send(toUserID, models.NotificationInvitation,
		fmt.Sprintf("You have been invited to join %s.", team.Name), &relatedID)
	return s.toResponse(inv, team.Name), nil
}

// ListPendingForUser lists the pending invitations addressed to a user
func (s *InvitationService) ListPendingForUser(userID uuid.UUID) ([]InvitationResponse, error) {
	invs, err := s.repo.ListPendingForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	responses := make([]InvitationResponse, 0, len(invs))
	for i := range invs {
		name := ""
		if team, err := s.teamRepo.GetByID(invs[i].TeamID); err == nil {
			name = team.Name
		}
		responses = append(responses, *s.toResponse(&invs[i], name))
	}
	return responses, nil
}

// Accept accepts a pending invitation on behalf of its addressee.
// Responses to terminal invitations and responses from anyone but the
// addressee are no-ops. When the team has filled up in the meantime
// the invitation is rejected, the inviter is told, and the capacity
// error is returned.
func (s *InvitationService) Accept(invitationID, actorID uuid.UUID) error {
	inv, err := s.getForResponse(invitationID, actorID)
	if err != nil || inv == nil {
		return err
	}

	team, err := s.teamRepo.GetByID(inv.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to load team: %w", err)
	}

	relatedID := inv.TeamID
	if err := s.repo.AcceptWithMembership(inv); err != nil {
		if apperrors.IsCapacityExceeded(err) {
			s.notifier.Send(inv.FromUserID, models.NotificationInvitationRejected,
				fmt.Sprintf("Your invitation to %s could not be accepted because the team is full.", team.Name), &relatedID)
			return err
		}
		return fmt.Errorf("failed to accept invitation: %w", err)
	}

	s.notifier.Send(inv.FromUserID, models.NotificationInvitationAccepted,
		fmt.Sprintf("Your invitation to %s has been accepted.", team.Name), &relatedID)
	return nil
}

// Decline declines a pending invitation on behalf of its addressee
func (s *InvitationService) Decline(invitationID, actorID uuid.UUID) error {
	inv, err := s.getForResponse(invitationID, actorID)
	if err != nil || inv == nil {
		return err
	}

	if err := s.repo.Reject(inv.ID); err != nil {
		return fmt.Errorf("failed to decline invitation: %w", err)
	}

	name := ""
	if team, err := s.teamRepo.GetByID(inv.TeamID); err == nil {
		name = team.Name
	}
	relatedID := inv.TeamID
	s.notifier.Send(inv.FromUserID, models.NotificationInvitationRejected,
		fmt.Sprintf("Your invitation to %s was declined.", name), &relatedID)
	return nil
}

// getForResponse loads the invitation for a response by the actor.
// Terminal invitations and responses from anyone but the addressee
// come back (nil, nil): both are dropped silently, so a repeated or
// misaddressed response never changes state and never errors.
func (s *InvitationService) getForResponse(invitationID, actorID uuid.UUID) (*models.TeamInvitation, error) {
	inv, err := s.repo.GetByID(invitationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to load invitation: %w", err)
	}
	if inv.ToUserID != actorID {
		return nil, nil
	}
	if inv.Status.Terminal() {
		return nil, nil
	}
	return inv, nil
}

func (s *InvitationService) toResponse(inv *models.TeamInvitation, teamName string) *InvitationResponse {
	return &InvitationResponse{
		ID:          inv.ID,
		TeamID:      inv.TeamID,
		TeamName:    teamName,
		FromUserID:  inv.FromUserID,
		ToUserID:    inv.ToUserID,
		Status:      inv.Status,
		RespondedAt: inv.RespondedAt,
		CreatedAt:   inv.CreatedAt,
	}
}
