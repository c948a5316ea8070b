package repository

import (
	"teammatch-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FriendRepository handles database operations for friendship rows
type FriendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

// Create creates a friendship row
func (r *FriendRepository) Create(f *models.Friend) error {
	return r.db.Create(f).Error
}

// GetByID retrieves a friendship row by ID
func (r *FriendRepository) GetByID(id uuid.UUID) (*models.Friend, error) {
	var f models.Friend
	err := r.db.First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Get retrieves the directed row from userID towards friendID
func (r *FriendRepository) Get(userID, friendID uuid.UUID) (*models.Friend, error) {
	var f models.Friend
	err := r.db.First(&f, "user_id = ? AND friend_id = ?", userID, friendID).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Update saves changes to a friendship row
func (r *FriendRepository) Update(f *models.Friend) error {
	return r.db.Save(f).Error
}

// ListAcceptedFriendIDs returns the ids of users the given user is
// friends with
func (r *FriendRepository) ListAcceptedFriendIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Friend{}).
		Where("user_id = ? AND status = ?", userID, models.FriendStatusAccepted).
		Order("created_at, id").
		Pluck("friend_id", &ids).Error
	return ids, err
}

// ListPendingFor retrieves pending requests addressed to the user
func (r *FriendRepository) ListPendingFor(userID uuid.UUID) ([]models.Friend, error) {
	var rows []models.Friend
	err := r.db.Where("friend_id = ? AND status = ?", userID, models.FriendStatusPending).
		Order("created_at, id").
		Find(&rows).Error
	return rows, err
}

// DeletePair deletes both directions of a friendship in one transaction
func (r *FriendRepository) DeletePair(userID, friendID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Friend{}, "user_id = ? AND friend_id = ?", userID, friendID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Friend{}, "user_id = ? AND friend_id = ?", friendID, userID).Error
	})
}

// DeleteAllForUser deletes every friendship row involving the user
func (r *FriendRepository) DeleteAllForUser(userID uuid.UUID) error {
	return r.db.Delete(&models.Friend{}, "user_id = ? OR friend_id = ?", userID, userID).Error
}
