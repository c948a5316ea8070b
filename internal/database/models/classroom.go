package models

import (
	"github.com/google/uuid"
)

// Classroom is a class (course, cohort) that hosts teams. Code is the
// unique join code users enter to become members.
type Classroom struct {
	BaseModel
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null;size:20"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null" validate:"required"`

	// Relationships
	Members []ClassMember `json:"members,omitempty" gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
	Teams   []Team        `json:"teams,omitempty" gorm:"foreignKey:ClassID"`
}

// TableName returns the table name for Classroom
func (Classroom) TableName() string {
	return "classes"
}
