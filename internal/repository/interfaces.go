package repository

import (
	"teammatch-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByUsernameOrStudentNo(username, studentNo string) (*models.User, error)
	GetWithProfile(id uuid.UUID) (*models.User, error)
	Update(user *models.User) error
	UpsertProfile(profile *models.Profile) error
	Delete(id uuid.UUID) error
	Search(keyword string, limit int) ([]models.User, error)
	ListCandidates(filter CandidateFilter) ([]models.User, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateWithLeader(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	ListByClass(classID uuid.UUID) ([]models.Team, error)
	ListByCategory(categoryID uuid.UUID) ([]models.Team, error)
	ListForUser(userID uuid.UUID) ([]models.Team, error)
	Update(team *models.Team) error
	UpdateRecruitStatus(teamID uuid.UUID, status models.RecruitStatus) error
	DeleteWithMembers(teamID uuid.UUID) error
}

// TeamMemberRepositoryInterface defines the interface for membership
// ledger storage operations
type TeamMemberRepositoryInterface interface {
	GetByTeamAndUser(teamID, userID uuid.UUID) (*models.TeamMember, error)
	ListByTeam(teamID uuid.UUID) ([]models.TeamMember, error)
	ListByUser(userID uuid.UUID) ([]models.TeamMember, error)
	ListLeaderships(userID uuid.UUID) ([]models.TeamMember, error)
	CountMembers(teamID uuid.UUID) (int64, error)
	CountAll(teamID uuid.UUID) (int64, error)
	InsertLeader(teamID, userID uuid.UUID) error
	InsertMemberWithCapacity(teamID, userID uuid.UUID) error
	Delete(teamID, userID uuid.UUID) error
	SwapLeader(teamID, fromUserID, toUserID uuid.UUID) error
}

// TeamApplicationRepositoryInterface defines the interface for application
// repository operations
type TeamApplicationRepositoryInterface interface {
	Create(app *models.TeamApplication) error
	GetByID(id uuid.UUID) (*models.TeamApplication, error)
	GetPending(teamID, userID uuid.UUID) (*models.TeamApplication, error)
	ListPendingByTeam(teamID uuid.UUID) ([]models.TeamApplication, error)
	ListByUser(userID uuid.UUID) ([]models.TeamApplication, error)
	Reject(id uuid.UUID) error
	AcceptWithMembership(app *models.TeamApplication) error
}

// TeamInvitationRepositoryInterface defines the interface for invitation
// repository operations
type TeamInvitationRepositoryInterface interface {
	Create(inv *models.TeamInvitation) error
	GetByID(id uuid.UUID) (*models.TeamInvitation, error)
	GetPending(teamID, toUserID uuid.UUID) (*models.TeamInvitation, error)
	ListPendingForUser(userID uuid.UUID) ([]models.TeamInvitation, error)
	Reject(id uuid.UUID) error
	AcceptWithMembership(inv *models.TeamInvitation) error
}

// ClassroomRepositoryInterface defines the interface for classroom
// repository operations
type ClassroomRepositoryInterface interface {
	CreateWithAdmin(class *models.Classroom) error
	GetByID(id uuid.UUID) (*models.Classroom, error)
	GetByCode(code string) (*models.Classroom, error)
	CodeExists(code string) (bool, error)
	ListForUser(userID uuid.UUID) ([]models.Classroom, error)
	IsMember(classID, userID uuid.UUID) (bool, error)
	AddMember(classID, userID uuid.UUID, role models.ClassRole) error
	RemoveMembersByUser(userID uuid.UUID) error
	DeleteWithMembers(classID uuid.UUID) error
}

// CategoryRepositoryInterface defines the interface for category
// repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	List() ([]models.Category, error)
}

// NotificationRepositoryInterface defines the interface for notification
// repository operations
type NotificationRepositoryInterface interface {
	Create(n *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	ListForUser(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error)
	CountUnread(userID uuid.UUID) (int64, error)
	MarkRead(id, userID uuid.UUID) error
}

// FriendRepositoryInterface defines the interface for friend repository
// operations
type FriendRepositoryInterface interface {
	Create(f *models.Friend) error
	GetByID(id uuid.UUID) (*models.Friend, error)
	Get(userID, friendID uuid.UUID) (*models.Friend, error)
	Update(f *models.Friend) error
	ListAcceptedFriendIDs(userID uuid.UUID) ([]uuid.UUID, error)
	ListPendingFor(userID uuid.UUID) ([]models.Friend, error)
	DeletePair(userID, friendID uuid.UUID) error
	DeleteAllForUser(userID uuid.UUID) error
}
