package models

import (
	"github.com/google/uuid"
)

// Category is an interest area that can host teams. Category membership
// is advisory for matching, unlike class scope which is exclusive.
type Category struct {
	BaseModel
	Name      string     `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	CreatedBy *uuid.UUID `json:"created_by,omitempty" gorm:"type:uuid"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}
