package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamApplication is a user-initiated request to join a team. The partial
// unique index keeps at most one PENDING application per (team, user)
// pair while leaving decided history untouched.
type TeamApplication struct {
	BaseModel
	TeamID    uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_applications_pending,where:status = 'PENDING'" validate:"required"`
	UserID    uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_applications_pending,where:status = 'PENDING'" validate:"required"`
	Message   string        `json:"message,omitempty" gorm:"size:500"`
	Status    RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	DecidedAt *time.Time    `json:"decided_at,omitempty"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for TeamApplication
func (TeamApplication) TableName() string {
	return "team_applications"
}
