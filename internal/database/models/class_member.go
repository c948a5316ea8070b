package models

import (
	"github.com/google/uuid"
)

// ClassMember records a user's membership in a class
type ClassMember struct {
	BaseModel
	ClassID uuid.UUID `json:"class_id" gorm:"type:uuid;not null;uniqueIndex:idx_class_members_pair" validate:"required"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_class_members_pair;index" validate:"required"`
	Role    ClassRole `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'"`
}

// TableName returns the table name for ClassMember
func (ClassMember) TableName() string {
	return "class_members"
}
