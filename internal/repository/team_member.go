package repository

import (
	"errors"

	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamMemberRepository is the storage side of the membership ledger. The
// capacity-checked insertion paths live here so the count and the insert
// share one transaction; callers never insert membership rows directly.
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// GetByTeamAndUser retrieves a membership by its unique (team, user) pair
func (r *TeamMemberRepository) GetByTeamAndUser(teamID, userID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByTeam retrieves all memberships of a team in insertion order
func (r *TeamMemberRepository) ListByTeam(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("team_id = ?", teamID).Order("created_at, id").Find(&members).Error
	return members, err
}

// ListByUser retrieves all memberships held by a user
func (r *TeamMemberRepository) ListByUser(userID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("user_id = ?", userID).Order("created_at, id").Find(&members).Error
	return members, err
}

// ListLeaderships retrieves the LEADER memberships held by a user
func (r *TeamMemberRepository) ListLeaderships(userID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("user_id = ? AND role = ?", userID, models.TeamRoleLeader).Find(&members).Error
	return members, err
}

// CountMembers counts MEMBER-role rows for a team. The leader is excluded:
// capacity bounds members only.
func (r *TeamMemberRepository) CountMembers(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND role = ?", teamID, models.TeamRoleMember).
		Count(&count).Error
	return count, err
}

// CountAll counts every membership row of a team, leader included
func (r *TeamMemberRepository) CountAll(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// InsertLeader inserts the LEADER membership for a freshly created team.
// Fails with a duplicate error if any membership already exists for the
// team, which should be unreachable for a new team.
func (r *TeamMemberRepository) InsertLeader(teamID, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrMemberExists
		}
		return tx.Create(&models.TeamMember{
			TeamID: teamID,
			UserID: userID,
			Role:   models.TeamRoleLeader,
		}).Error
	})
}

// InsertMemberWithCapacity inserts a MEMBER membership after re-checking
// capacity inside the same transaction. The team row is locked first so
// two concurrent admissions cannot both pass the count and jointly
// overflow capacity; the capacity read off the locked row also sees any
// concurrent capacity edit. A nil capacity means unbounded.
func (r *TeamMemberRepository) InsertMemberWithCapacity(teamID, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.TeamMember{}).
			Where("team_id = ? AND user_id = ?", teamID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return apperrors.ErrMemberExists
		}

		if team.Capacity != nil {
			var members int64
			if err := tx.Model(&models.TeamMember{}).
				Where("team_id = ? AND role = ?", teamID, models.TeamRoleMember).
				Count(&members).Error; err != nil {
				return err
			}
			if members >= int64(*team.Capacity) {
				return apperrors.NewCapacityExceededError(teamID, *team.Capacity)
			}
		}

		return tx.Create(&models.TeamMember{
			TeamID: teamID,
			UserID: userID,
			Role:   models.TeamRoleMember,
		}).Error
	})
}

// Delete removes a membership row
func (r *TeamMemberRepository) Delete(teamID, userID uuid.UUID) error {
	return r.db.Delete(&models.TeamMember{}, "team_id = ? AND user_id = ?", teamID, userID).Error
}

// SwapLeader atomically demotes the current leader, promotes the new one
// and repoints the team's owner. Either party lacking the expected
// membership or role aborts the transaction with a NotEligibleError.
func (r *TeamMemberRepository) SwapLeader(teamID, fromUserID, toUserID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var from models.TeamMember
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&from, "team_id = ? AND user_id = ? AND role = ?", teamID, fromUserID, models.TeamRoleLeader).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotEligibleError("delegating user is not the team leader")
			}
			return err
		}

		var to models.TeamMember
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&to, "team_id = ? AND user_id = ?", teamID, toUserID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotEligibleError("delegation target is not a member of the team")
			}
			return err
		}

		if err := tx.Model(&from).Update("role", models.TeamRoleMember).Error; err != nil {
			return err
		}
		if err := tx.Model(&to).Update("role", models.TeamRoleLeader).Error; err != nil {
			return err
		}
		return tx.Model(&models.Team{}).Where("id = ?", teamID).Update("owner_id", toUserID).Error
	})
}
