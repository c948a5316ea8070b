package repository

import (
	"teammatch-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassroomRepository handles database operations for classes and their
// membership rows
type ClassroomRepository struct {
	db *gorm.DB
}

// NewClassroomRepository creates a new classroom repository
func NewClassroomRepository(db *gorm.DB) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

// CreateWithAdmin creates the class row and the owner's ADMIN membership
// in one transaction
func (r *ClassroomRepository) CreateWithAdmin(class *models.Classroom) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(class).Error; err != nil {
			return err
		}
		admin := &models.ClassMember{
			ClassID: class.ID,
			UserID:  class.OwnerID,
			Role:    models.ClassRoleAdmin,
		}
		return tx.Create(admin).Error
	})
}

// GetByID retrieves a class by ID
func (r *ClassroomRepository) GetByID(id uuid.UUID) (*models.Classroom, error) {
	var class models.Classroom
	err := r.db.First(&class, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// GetByCode retrieves a class by join code
func (r *ClassroomRepository) GetByCode(code string) (*models.Classroom, error) {
	var class models.Classroom
	err := r.db.First(&class, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// CodeExists reports whether a join code is already taken
func (r *ClassroomRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Classroom{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// ListForUser retrieves all classes the user is a member of
func (r *ClassroomRepository) ListForUser(userID uuid.UUID) ([]models.Classroom, error) {
	var classes []models.Classroom
	err := r.db.
		Joins("JOIN class_members ON class_members.class_id = classes.id").
		Where("class_members.user_id = ?", userID).
		Order("classes.created_at, classes.id").
		Find(&classes).Error
	return classes, err
}

// IsMember reports whether a user belongs to a class
func (r *ClassroomRepository) IsMember(classID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ClassMember{}).
		Where("class_id = ? AND user_id = ?", classID, userID).
		Count(&count).Error
	return count > 0, err
}

// AddMember inserts a class membership row
func (r *ClassroomRepository) AddMember(classID, userID uuid.UUID, role models.ClassRole) error {
	return r.db.Create(&models.ClassMember{
		ClassID: classID,
		UserID:  userID,
		Role:    role,
	}).Error
}

// RemoveMembersByUser deletes every class membership held by a user
func (r *ClassroomRepository) RemoveMembersByUser(userID uuid.UUID) error {
	return r.db.Delete(&models.ClassMember{}, "user_id = ?", userID).Error
}

// DeleteWithMembers deletes a class and its membership rows in one
// transaction. Teams scoped to the class must already be gone; the
// service layer dissolves them first.
func (r *ClassroomRepository) DeleteWithMembers(classID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ClassMember{}, "class_id = ?", classID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Classroom{}, "id = ?", classID).Error
	})
}
