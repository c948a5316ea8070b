package models

// User represents a registered account. Authentication state lives in
// PasswordHash; matching attributes live in the associated Profile.
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:50" validate:"required,min=3,max=50"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
	Name         string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	StudentNo    string `json:"student_no" gorm:"uniqueIndex;not null;size:30" validate:"required,max=30"`
	School       string `json:"school,omitempty" gorm:"size:100"`

	// Relationships
	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
