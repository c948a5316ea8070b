package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an append-only inbox record. The only mutation ever
// applied is setting ReadAt, once.
type Notification struct {
	BaseModel
	UserID    uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type      NotificationType `json:"type" gorm:"type:varchar(40);not null" validate:"required"`
	Message   string           `json:"message" gorm:"not null;size:500" validate:"required"`
	RelatedID *uuid.UUID       `json:"related_id,omitempty" gorm:"type:uuid"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
