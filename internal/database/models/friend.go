package models

import (
	"github.com/google/uuid"
)

// Friend is a directed friendship row. A pending request is a single row
// from requester to target; acceptance creates the reciprocal row.
type Friend struct {
	BaseModel
	UserID   uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_friends_pair" validate:"required"`
	FriendID uuid.UUID    `json:"friend_id" gorm:"type:uuid;not null;uniqueIndex:idx_friends_pair;index" validate:"required"`
	Status   FriendStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
}

// TableName returns the table name for Friend
func (Friend) TableName() string {
	return "friends"
}
