package testutils

import (
	"time"

	"teammatch-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Unique username and student number derived from the UUID
	suffix := id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user" + suffix,
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$dGVzdHNhbHQxMjM0NTY$dGVzdGhhc2g",
		Name:         "Test User",
		StudentNo:    "S" + suffix,
		School:       "Test University",
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// WithProfile attaches a matching profile to the user
func (f *UserFactory) WithProfile(personality, goals, skills string) *models.User {
	user := f.Create()
	user.Profile = &models.Profile{
		UserID:      user.ID,
		Personality: personality,
		Goals:       goals,
		Skills:      skills,
	}
	return user
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile for the given user
func (f *ProfileFactory) Create(userID uuid.UUID) *models.Profile {
	return &models.Profile{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:      userID,
		Personality: "collaborative",
		Goals:       "learn backend development",
		Skills:      "go,sql",
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team owned by the given user
func (f *TeamFactory) Create(ownerID uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           "Test Team",
		Goal:           "build a backend service in go",
		RequiredSkills: "go,sql,docker",
		OwnerID:        ownerID,
		RecruitStatus:  models.RecruitStatusOpen,
	}
}

// WithCapacity sets the member capacity for the team
func (f *TeamFactory) WithCapacity(ownerID uuid.UUID, capacity int) *models.Team {
	team := f.Create(ownerID)
	team.Capacity = &capacity
	return team
}

// WithClass scopes the team to a class
func (f *TeamFactory) WithClass(ownerID, classID uuid.UUID) *models.Team {
	team := f.Create(ownerID)
	team.ClassID = &classID
	return team
}

// WithCategory scopes the team to a category
func (f *TeamFactory) WithCategory(ownerID, categoryID uuid.UUID) *models.Team {
	team := f.Create(ownerID)
	team.CategoryID = &categoryID
	return team
}

// ClassroomFactory provides methods to create test Classroom data
type ClassroomFactory struct{}

// NewClassroomFactory creates a new ClassroomFactory
func NewClassroomFactory() *ClassroomFactory {
	return &ClassroomFactory{}
}

// Create creates a test Classroom owned by the given user
func (f *ClassroomFactory) Create(ownerID uuid.UUID) *models.Classroom {
	id := uuid.New()
	return &models.Classroom{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Class",
		Description: "A class for testing",
		Code:        "C" + id.String()[:5],
		OwnerID:     ownerID,
	}
}

// CategoryFactory provides methods to create test Category data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a test Category with a unique name
func (f *CategoryFactory) Create() *models.Category {
	id := uuid.New()
	return &models.Category{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Category " + id.String()[:8],
	}
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates a test Notification for the given user
func (f *NotificationFactory) Create(userID uuid.UUID) *models.Notification {
	return &models.Notification{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:  userID,
		Type:    models.NotificationInvitation,
		Message: "You have been invited to join Test Team.",
	}
}
