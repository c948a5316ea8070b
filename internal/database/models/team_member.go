package models

import (
	"github.com/google/uuid"
)

// TeamMember is the membership ledger row granting a user standing in a
// team. Exactly one LEADER row exists per live team and it references
// the team's OwnerID.
type TeamMember struct {
	BaseModel
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_pair" validate:"required"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_pair;index" validate:"required"`
	Role   TeamRole  `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
