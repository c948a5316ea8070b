package models

// TeamRole represents the role a user holds within a team
type TeamRole string

const (
	TeamRoleLeader TeamRole = "LEADER"
	TeamRoleMember TeamRole = "MEMBER"
)

// ClassRole represents the role a user holds within a class
type ClassRole string

const (
	ClassRoleAdmin  ClassRole = "ADMIN"
	ClassRoleMember ClassRole = "MEMBER"
)

// RecruitStatus represents whether a team is open for new members
type RecruitStatus string

const (
	RecruitStatusOpen   RecruitStatus = "OPEN"
	RecruitStatusClosed RecruitStatus = "CLOSED"
)

// IsValid reports whether the recruit status is one of the known values
func (s RecruitStatus) IsValid() bool {
	return s == RecruitStatusOpen || s == RecruitStatusClosed
}

// RequestStatus represents the state of an application or invitation.
// PENDING is the only non-terminal state; ACCEPTED and REJECTED are
// immutable history.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusAccepted RequestStatus = "ACCEPTED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// Terminal reports whether the status admits no further transitions
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// FriendStatus represents the state of a friendship row
type FriendStatus string

const (
	FriendStatusPending  FriendStatus = "PENDING"
	FriendStatusAccepted FriendStatus = "ACCEPTED"
	FriendStatusBlocked  FriendStatus = "BLOCKED"
)

// NotificationType classifies inbox notifications
type NotificationType string

const (
	NotificationInvitation          NotificationType = "INVITATION"
	NotificationInvitationAccepted  NotificationType = "INVITATION_ACCEPTED"
	NotificationInvitationRejected  NotificationType = "INVITATION_REJECTED"
	NotificationApplicationAccepted NotificationType = "APPLICATION_ACCEPTED"
	NotificationApplicationRejected NotificationType = "APPLICATION_REJECTED"
	NotificationRemoved             NotificationType = "REMOVED"
	NotificationWithdrawal          NotificationType = "WITHDRAWAL"
	NotificationDelegated           NotificationType = "DELEGATED"
	NotificationTeamDissolved       NotificationType = "TEAM_DISSOLVED"
	NotificationClassDissolved      NotificationType = "CLASS_DISSOLVED"
)
