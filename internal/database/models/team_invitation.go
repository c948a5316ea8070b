package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamInvitation is the leader-initiated mirror of TeamApplication. The
// partial unique index keeps at most one PENDING invitation per
// (team, recipient) pair.
type TeamInvitation struct {
	BaseModel
	TeamID      uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_invitations_pending,where:status = 'PENDING'" validate:"required"`
	FromUserID  uuid.UUID     `json:"from_user_id" gorm:"type:uuid;not null" validate:"required"`
	ToUserID    uuid.UUID     `json:"to_user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_invitations_pending,where:status = 'PENDING'" validate:"required"`
	Status      RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	RespondedAt *time.Time    `json:"responded_at,omitempty"`
}

// TableName returns the table name for TeamInvitation
func (TeamInvitation) TableName() string {
	return "team_invitations"
}
