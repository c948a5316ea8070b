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

// TeamApplicationRepository handles database operations for team
// applications. The accept path re-checks capacity and inserts the
// membership in the same transaction that stamps the decision.
type TeamApplicationRepository struct {
	db *gorm.DB
}

// NewTeamApplicationRepository creates a new team application repository
func NewTeamApplicationRepository(db *gorm.DB) *TeamApplicationRepository {
	return &TeamApplicationRepository{db: db}
}

// Create creates a new application
func (r *TeamApplicationRepository) Create(app *models.TeamApplication) error {
	return r.db.Create(app).Error
}

// GetByID retrieves an application by ID
func (r *TeamApplicationRepository) GetByID(id uuid.UUID) (*models.TeamApplication, error) {
	var app models.TeamApplication
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetPending retrieves the pending application for a (team, user) pair
func (r *TeamApplicationRepository) GetPending(teamID, userID uuid.UUID) (*models.TeamApplication, error) {
	var app models.TeamApplication
	err := r.db.First(&app, "team_id = ? AND user_id = ? AND status = ?",
		teamID, userID, models.RequestStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListPendingByTeam retrieves pending applications for a team, applicants
// preloaded, in submission order
func (r *TeamApplicationRepository) ListPendingByTeam(teamID uuid.UUID) ([]models.TeamApplication, error) {
	var apps []models.TeamApplication
	err := r.db.Preload("User").
		Where("team_id = ? AND status = ?", teamID, models.RequestStatusPending).
		Order("created_at, id").
		Find(&apps).Error
	return apps, err
}

// ListByUser retrieves all applications submitted by a user
func (r *TeamApplicationRepository) ListByUser(userID uuid.UUID) ([]models.TeamApplication, error) {
	var apps []models.TeamApplication
	err := r.db.Where("user_id = ?", userID).Order("created_at, id").Find(&apps).Error
	return apps, err
}

// Reject marks a pending application REJECTED and stamps decided_at.
// Already-terminal applications are left untouched.
func (r *TeamApplicationRepository) Reject(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.TeamApplication{}).
		Where("id = ? AND status = ?", id, models.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":     models.RequestStatusRejected,
			"decided_at": &now,
		}).Error
}

// AcceptWithMembership accepts a pending application: capacity is
// re-evaluated at decision time from the row-locked team record, and the
// membership insert commits in the same transaction as the status
// change. When the team is full the application is force-rejected, the
// rejection still commits, and a CapacityExceededError is returned after
// the commit so the caller can branch on it.
func (r *TeamApplicationRepository) AcceptWithMembership(app *models.TeamApplication) error {
	now := time.Now()
	var capacityHit *int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, "id = ?", app.TeamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return err
		}

		if team.Capacity != nil {
			var members int64
			if err := tx.Model(&models.TeamMember{}).
				Where("team_id = ? AND role = ?", app.TeamID, models.TeamRoleMember).
				Count(&members).Error; err != nil {
				return err
			}
			if members >= int64(*team.Capacity) {
				if err := tx.Model(app).Updates(map[string]interface{}{
					"status":     models.RequestStatusRejected,
					"decided_at": &now,
				}).Error; err != nil {
					return err
				}
				app.Status = models.RequestStatusRejected
				app.DecidedAt = &now
				capacityHit = team.Capacity
				return nil
			}
		}

		if err := tx.Create(&models.TeamMember{
			TeamID: app.TeamID,
			UserID: app.UserID,
			Role:   models.TeamRoleMember,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(app).Updates(map[string]interface{}{
			"status":     models.RequestStatusAccepted,
			"decided_at": &now,
		}).Error; err != nil {
			return err
		}
		app.Status = models.RequestStatusAccepted
		app.DecidedAt = &now
		return nil
	})
	if err != nil {
		return err
	}
	if capacityHit != nil {
		return apperrors.NewCapacityExceededError(app.TeamID, *capacityHit)
	}
	return nil
}
