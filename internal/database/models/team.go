package models

import (
	"github.com/google/uuid"
)

// Team represents a team recruiting members within a class or category
// scope. A team belongs to at most one of the two scopes. OwnerID always
// references the user holding the single LEADER membership. A nil
// Capacity means unbounded.
type Team struct {
	BaseModel
	Name           string        `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Goal           string        `json:"goal,omitempty" gorm:"type:text"`
	RequiredSkills string        `json:"required_skills,omitempty" gorm:"size:255"`
	Capacity       *int          `json:"capacity,omitempty" validate:"omitempty,min=1"`
	OwnerID        uuid.UUID     `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	ClassID        *uuid.UUID    `json:"class_id,omitempty" gorm:"type:uuid;index"`
	CategoryID     *uuid.UUID    `json:"category_id,omitempty" gorm:"type:uuid;index"`
	RecruitStatus  RecruitStatus `json:"recruit_status" gorm:"type:varchar(20);not null;default:'OPEN'"`
	OpenchatURL    string        `json:"openchat_url,omitempty" gorm:"size:255" validate:"omitempty,url"`

	// Relationships
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
