package models

import (
	"github.com/google/uuid"
)

// Profile stores the attribute profile used by the matching engine.
// Skills and Goals are comma-delimited tag lists at the storage boundary;
// they are parsed into normalized sets only inside the scoring engine.
type Profile struct {
	BaseModel
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;uniqueIndex;not null" validate:"required"`
	Personality string     `json:"personality,omitempty" gorm:"size:255"`
	Goals       string     `json:"goals,omitempty" gorm:"size:255"`
	Skills      string     `json:"skills,omitempty" gorm:"size:255"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty" gorm:"type:uuid;index"` // declared interest category
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
