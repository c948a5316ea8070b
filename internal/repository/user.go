package repository

import (
	"teammatch-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users and their profiles
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user together with its associated profile
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsernameOrStudentNo retrieves a user matching either identifier.
// Used to detect duplicate registrations.
func (r *UserRepository) GetByUsernameOrStudentNo(username, studentNo string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ? OR student_no = ?", username, studentNo).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetWithProfile retrieves a user with the profile preloaded
func (r *UserRepository) GetWithProfile(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpsertProfile creates or updates the profile row for a user
func (r *UserRepository) UpsertProfile(profile *models.Profile) error {
	var existing models.Profile
	err := r.db.First(&existing, "user_id = ?", profile.UserID).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}
	existing.Personality = profile.Personality
	existing.Goals = profile.Goals
	existing.Skills = profile.Skills
	existing.CategoryID = profile.CategoryID
	return r.db.Save(&existing).Error
}

// Delete deletes a user and, through the FK constraint, its profile
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Profile{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}

// Search searches users by partial, case-insensitive match on name or
// student number
func (r *UserRepository) Search(keyword string, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("name ILIKE ? OR student_no ILIKE ?", "%"+keyword+"%", "%"+keyword+"%").
		Order("created_at, id").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// CandidateFilter narrows the eligible user population for matching
type CandidateFilter struct {
	ExcludeTeamID uuid.UUID  // users already in this team are never eligible
	ClassID       *uuid.UUID // restrict to members of this class
	CategoryID    *uuid.UUID // restrict to users whose profile names this interest category
}

// ListCandidates returns users eligible for a team under the given filter,
// profiles preloaded, in ascending creation order. The stable insertion
// order is the documented tie-break for equal match scores downstream.
func (r *UserRepository) ListCandidates(filter CandidateFilter) ([]models.User, error) {
	query := r.db.Preload("Profile").
		Where("users.id NOT IN (?)",
			r.db.Model(&models.TeamMember{}).Select("user_id").Where("team_id = ?", filter.ExcludeTeamID))

	if filter.ClassID != nil {
		query = query.Where("users.id IN (?)",
			r.db.Model(&models.ClassMember{}).Select("user_id").Where("class_id = ?", *filter.ClassID))
	}
	if filter.CategoryID != nil {
		query = query.Where("users.id IN (?)",
			r.db.Model(&models.Profile{}).Select("user_id").Where("category_id = ?", *filter.CategoryID))
	}

	var users []models.User
	err := query.Order("users.created_at, users.id").Find(&users).Error
	return users, err
}
