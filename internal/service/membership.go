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

// MembershipService is the authoritative ledger of who belongs to which
// team and in what role. All membership mutations flow through it (or
// through the workflow services, which share its capacity-checked
// repository paths); notifications are emitted only after the mutation
// has committed.
type MembershipService struct {
	memberRepo repository.TeamMemberRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
	notifier   Notifier
}

// NewMembershipService creates a new membership service
func NewMembershipService(memberRepo repository.TeamMemberRepositoryInterface, teamRepo repository.TeamRepositoryInterface, notifier Notifier) *MembershipService {
	return &MembershipService{
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		notifier:   notifier,
	}
}

// AddLeader inserts the LEADER membership for a newly created team.
// A pre-existing membership means the team is not new; that is a
// conflict, not a capacity problem.
func (s *MembershipService) AddLeader(teamID, userID uuid.UUID) error {
	return s.memberRepo.InsertLeader(teamID, userID)
}

// AddMember admits a user as MEMBER, re-checking capacity inside the
// insertion transaction. A CapacityExceededError means admission denied.
func (s *MembershipService) AddMember(teamID, userID uuid.UUID) error {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to load team: %w", err)
	}
	return s.memberRepo.InsertMemberWithCapacity(teamID, userID)
}

// Remove withdraws or expels a membership. The actor must be the member
// themself (withdrawal) or the team leader (expulsion). A leader cannot
// self-remove: leadership must be delegated first. Removing a
// nonexistent membership is a documented no-op.
func (s *MembershipService) Remove(teamID, userID, actorID uuid.UUID) error {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to load team: %w", err)
	}

	membership, err := s.memberRepo.GetByTeamAndUser(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load membership: %w", err)
	}

	if actorID == userID {
		if membership.Role == models.TeamRoleLeader {
			return apperrors.ErrLeaderCannotLeave
		}
	} else {
		actor, err := s.memberRepo.GetByTeamAndUser(teamID, actorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewPermissionError("remove members of this team")
			}
			return fmt.Errorf("failed to load actor membership: %w", err)
		}
		if actor.Role != models.TeamRoleLeader {
			return apperrors.NewPermissionError("remove members of this team")
		}
	}

	if err := s.memberRepo.Delete(teamID, userID); err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	relatedID := teamID
	if actorID == userID {
		s.notifier.Send(team.OwnerID, models.NotificationWithdrawal,
			"A member has withdrawn from your team.", &relatedID)
	} else {
		s.notifier.Send(userID, models.NotificationRemoved,
			"You have been removed from the team.", &relatedID)
	}
	return nil
}

// Delegate atomically transfers leadership: the current leader becomes
// MEMBER, the target becomes LEADER, and the team's owner is updated.
// Only the current leader may delegate.
func (s *MembershipService) Delegate(teamID, toUserID, actorID uuid.UUID) error {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to load team: %w", err)
	}
	if toUserID == actorID {
		return apperrors.NewNotEligibleError("cannot delegate leadership to yourself")
	}

	if err := s.memberRepo.SwapLeader(teamID, actorID, toUserID); err != nil {
		return err
	}

	relatedID := teamID
	s.notifier.Send(toUserID, models.NotificationDelegated,
		"Team leadership has been delegated to you.", &relatedID)
	return nil
}

// LeaderCheck returns the team and verifies the actor holds its LEADER
// role. Shared by the workflow and lifecycle services.
func (s *MembershipService) LeaderCheck(teamID, actorID uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	member, err := s.memberRepo.GetByTeamAndUser(teamID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewPermissionError("act for this team")
		}
		return nil, fmt.Errorf("failed to load actor membership: %w", err)
	}
	if member.Role != models.TeamRoleLeader {
		return nil, apperrors.NewPermissionError("act for this team")
	}
	return team, nil
}
