package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents malformed input, such as an unknown recruit status
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// DuplicateError represents a duplicate application, invitation, membership
// or entity creation attempt
type DuplicateError struct {
	Entity  string
	Context string // Additional context like "for this team"
}

func (e *DuplicateError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for DuplicateError
func (e *DuplicateError) Is(target error) bool {
	t, ok := target.(*DuplicateError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// CapacityExceededError means admission to a team was denied because the
// team is full. Callers treat this as "admission denied", not a crash.
type CapacityExceededError struct {
	TeamID   uuid.UUID
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("team %s is at capacity (%d members)", e.TeamID, e.Capacity)
}

// PermissionError means the actor lacks the role required for the operation
type PermissionError struct {
	Action string
}

func (e *PermissionError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("not permitted to %s", e.Action)
	}
	return "permission denied"
}

// NotEligibleError means a delegation party lacks the expected membership
// or role
type NotEligibleError struct {
	Reason string
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("not eligible: %s", e.Reason)
}

// ScopeError means an invitation targets a user outside the team's class
// scope
type ScopeError struct {
	TeamID  uuid.UUID
	ClassID uuid.UUID
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("user is outside the class scope %s of team %s", e.ClassID, e.TeamID)
}

// InvariantViolationError flags a state the membership ledger must never
// reach, such as a leader removing themself
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "membership"}
	ErrApplicationNotFound  = &NotFoundError{Entity: "application"}
	ErrInvitationNotFound   = &NotFoundError{Entity: "invitation"}
	ErrClassNotFound        = &NotFoundError{Entity: "class"}
	ErrCategoryNotFound     = &NotFoundError{Entity: "category"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
	ErrProfileNotFound      = &NotFoundError{Entity: "profile"}
	ErrFriendNotFound       = &NotFoundError{Entity: "friend relationship"}
)

// Duplicate Errors
var (
	ErrUserExists        = &DuplicateError{Entity: "user", Context: "with this username or student number"}
	ErrMemberExists      = &DuplicateError{Entity: "membership", Context: "for this team and user"}
	ErrApplicationExists = &DuplicateError{Entity: "application", Context: "pending for this team"}
	ErrInvitationExists  = &DuplicateError{Entity: "invitation", Context: "pending for this user"}
	ErrClassMemberExists = &DuplicateError{Entity: "class membership", Context: "for this class"}
	ErrCategoryExists    = &DuplicateError{Entity: "category", Context: "with this name"}
	ErrFriendExists      = &DuplicateError{Entity: "friend relationship", Context: "with this user"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = stderrors.New("invalid username or password")
)

// Invariant Errors
var (
	ErrLeaderCannotLeave = &InvariantViolationError{Message: "a leader cannot remove themself; delegate leadership first"}
	ErrLeaderlessTeam    = &InvariantViolationError{Message: "team would be left without a leader"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return stderrors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return stderrors.As(err, &validationErr)
}

// IsDuplicate checks if an error is a DuplicateError
func IsDuplicate(err error) bool {
	var dupErr *DuplicateError
	return stderrors.As(err, &dupErr)
}

// IsCapacityExceeded checks if an error is a CapacityExceededError
func IsCapacityExceeded(err error) bool {
	var capErr *CapacityExceededError
	return stderrors.As(err, &capErr)
}

// IsPermission checks if an error is a PermissionError
func IsPermission(err error) bool {
	var permErr *PermissionError
	return stderrors.As(err, &permErr)
}

// IsNotEligible checks if an error is a NotEligibleError
func IsNotEligible(err error) bool {
	var eligErr *NotEligibleError
	return stderrors.As(err, &eligErr)
}

// IsScope checks if an error is a ScopeError
func IsScope(err error) bool {
	var scopeErr *ScopeError
	return stderrors.As(err, &scopeErr)
}

// IsInvariantViolation checks if an error is an InvariantViolationError
func IsInvariantViolation(err error) bool {
	var invErr *InvariantViolationError
	return stderrors.As(err, &invErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewDuplicateError creates a new DuplicateError
func NewDuplicateError(entity, context string) error {
	return &DuplicateError{Entity: entity, Context: context}
}

// NewCapacityExceededError creates a new CapacityExceededError
func NewCapacityExceededError(teamID uuid.UUID, capacity int) error {
	return &CapacityExceededError{TeamID: teamID, Capacity: capacity}
}

// NewPermissionError creates a new PermissionError
func NewPermissionError(action string) error {
	return &PermissionError{Action: action}
}

// NewNotEligibleError creates a new NotEligibleError
func NewNotEligibleError(reason string) error {
	return &NotEligibleError{Reason: reason}
}

// NewScopeError creates a new ScopeError
func NewScopeError(teamID, classID uuid.UUID) error {
	return &ScopeError{TeamID: teamID, ClassID: classID}
}

// NewInvariantViolationError creates a new InvariantViolationError
func NewInvariantViolationError(message string) error {
	return &InvariantViolationError{Message: message}
}
