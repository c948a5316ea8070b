package repository

import (
	"teammatch-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithLeader creates the team row and the owner's LEADER membership
// in one transaction. A team without a leader membership must never be
// observable.
func (r *TeamRepository) CreateWithLeader(team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		leader := &models.TeamMember{
			TeamID: team.ID,
			UserID: team.OwnerID,
			Role:   models.TeamRoleLeader,
		}
		return tx.Create(leader).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembers retrieves a team with all its memberships and their users
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").Preload("Members.User").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListByClass retrieves all teams scoped to a class
func (r *TeamRepository) ListByClass(classID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("class_id = ?", classID).Order("created_at, id").Find(&teams).Error
	return teams, err
}

// ListByCategory retrieves all teams scoped to a category
func (r *TeamRepository) ListByCategory(categoryID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("category_id = ?", categoryID).Order("created_at, id").Find(&teams).Error
	return teams, err
}

// ListForUser retrieves all teams the user holds a membership in
func (r *TeamRepository) ListForUser(userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Order("teams.created_at, teams.id").
		Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// UpdateRecruitStatus sets the recruit status of a team
func (r *TeamRepository) UpdateRecruitStatus(teamID uuid.UUID, status models.RecruitStatus) error {
	return r.db.Model(&models.Team{}).Where("id = ?", teamID).Update("recruit_status", status).Error
}

// DeleteWithMembers deletes all memberships and the team row in one
// transaction, leaving no orphan rows
func (r *TeamRepository) DeleteWithMembers(teamID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TeamMember{}, "team_id = ?", teamID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, "id = ?", teamID).Error
	})
}
