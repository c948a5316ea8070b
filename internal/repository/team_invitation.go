package repository

import (
	"errors"
	"time"

	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamInvitationRepository handles database operations for team
// invitations, the leader-initiated mirror of applications
type TeamInvitationRepository struct {
	db *gorm.DB
}

// NewTeamInvitationRepository creates a new team invitation repository
func NewTeamInvitationRepository(db *gorm.DB) *TeamInvitationRepository {
	return &TeamInvitationRepository{db: db}
}

// Create creates a new invitation
func (r *TeamInvitationRepository) Create(inv *models.TeamInvitation) error {
	return r.db.Create(inv).Error
}

// GetByID retrieves an invitation by ID
func (r *TeamInvitationRepository) GetByID(id uuid.UUID) (*models.TeamInvitation, error) {
	var inv models.TeamInvitation
	err := r.db.First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetPending retrieves the pending invitation for a (team, recipient) pair
func (r *TeamInvitationRepository) GetPending(teamID, toUserID uuid.UUID) (*models.TeamInvitation, error) {
	var inv models.TeamInvitation
	err := r.db.First(&inv, "team_id = ? AND to_user_id = ? AND status = ?",
		teamID, toUserID, models.RequestStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListPendingForUser retrieves pending invitations addressed to a user
func (r *TeamInvitationRepository) ListPendingForUser(userID uuid.UUID) ([]models.TeamInvitation, error) {
	var invs []models.TeamInvitation
	err := r.db.Where("to_user_id = ? AND status = ?", userID, models.RequestStatusPending).
		Order("created_at, id").
		Find(&invs).Error
	return invs, err
}

// Reject marks a pending invitation REJECTED and stamps responded_at.
// Already-terminal invitations are left untouched.
func (r *TeamInvitationRepository) Reject(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.TeamInvitation{}).
		Where("id = ? AND status = ?", id, models.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":       models.RequestStatusRejected,
			"responded_at": &now,
		}).Error
}

// AcceptWithMembership accepts a pending invitation with the same
// transactional capacity re-check as application acceptance, reading
// capacity from the row-locked team record. On a full team the
// invitation is force-rejected (committed) and a CapacityExceededError
// is returned so the responder sees the failure.
func (r *TeamInvitationRepository) AcceptWithMembership(inv *models.TeamInvitation) error {
	now := time.Now()
	var capacityHit *int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, "id = ?", inv.TeamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return err
		}

		if team.Capacity != nil {
			var members int64
			if err := tx.Model(&models.TeamMember{}).
				Where("team_id = ? AND role = ?", inv.TeamID, models.TeamRoleMember).
				Count(&members).Error; err != nil {
				return err
			}
			if members >= int64(*team.Capacity) {
				if err := tx.Model(inv).Updates(map[string]interface{}{
					"status":       models.RequestStatusRejected,
					"responded_at": &now,
				}).Error; err != nil {
					return err
				}
				inv.Status = models.RequestStatusRejected
				inv.RespondedAt = &now
				capacityHit = team.Capacity
				return nil
			}
		}

		if err := tx.Create(&models.TeamMember{
			TeamID: inv.TeamID,
			UserID: inv.ToUserID,
			Role:   models.TeamRoleMember,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(inv).Updates(map[string]interface{}{
			"status":       models.RequestStatusAccepted,
			"responded_at": &now,
		}).Error; err != nil {
			return err
		}
		inv.Status = models.RequestStatusAccepted
		inv.RespondedAt = &now
		return nil
	})
	if err != nil {
		return err
	}
	if capacityHit != nil {
		return apperrors.NewCapacityExceededError(inv.TeamID, *capacityHit)
	}
	return nil
}
