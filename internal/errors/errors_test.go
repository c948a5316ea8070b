package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "class"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrClassNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrMemberExists))
	})

	t.Run("IsNotFound with wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("loading team: %w", ErrTeamNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestDuplicateError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &DuplicateError{Entity: "application", Context: "pending for this team"}
		assert.Equal(t, "application already exists pending for this team", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &DuplicateError{Entity: "application"}
		assert.Equal(t, "application already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &DuplicateError{Entity: "invitation", Context: "pending"}
		err2 := &DuplicateError{Entity: "invitation", Context: "pending"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsDuplicate helper", func(t *testing.T) {
		assert.True(t, IsDuplicate(ErrApplicationExists))
		assert.False(t, IsDuplicate(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "recruit_status", Message: "must be OPEN or CLOSED"}
		assert.Equal(t, "validation error: recruit_status - must be OPEN or CLOSED", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid input"}
		assert.Equal(t, "validation error: invalid input", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("recruit_status", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestCapacityExceededError(t *testing.T) {
	teamID := uuid.New()

	t.Run("Error message carries team and capacity", func(t *testing.T) {
		err := &CapacityExceededError{TeamID: teamID, Capacity: 3}
		assert.Contains(t, err.Error(), teamID.String())
		assert.Contains(t, err.Error(), "3")
	})

	t.Run("IsCapacityExceeded helper", func(t *testing.T) {
		err := NewCapacityExceededError(teamID, 3)
		assert.True(t, IsCapacityExceeded(err))
		assert.False(t, IsCapacityExceeded(ErrTeamNotFound))
	})

	t.Run("structured fields survive wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("deciding application: %w", NewCapacityExceededError(teamID, 5))
		var capErr *CapacityExceededError
		assert.True(t, errors.As(wrapped, &capErr))
		assert.Equal(t, teamID, capErr.TeamID)
		assert.Equal(t, 5, capErr.Capacity)
	})
}

func TestPermissionError(t *testing.T) {
	t.Run("Error message with action", func(t *testing.T) {
		err := &PermissionError{Action: "dissolve the team"}
		assert.Equal(t, "not permitted to dissolve the team", err.Error())
	})

	t.Run("Error message without action", func(t *testing.T) {
		err := &PermissionError{}
		assert.Equal(t, "permission denied", err.Error())
	})

	t.Run("IsPermission helper", func(t *testing.T) {
		assert.True(t, IsPermission(NewPermissionError("remove members")))
		assert.False(t, IsPermission(ErrTeamNotFound))
	})
}

func TestNotEligibleError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotEligibleError{Reason: "target is not a member of the team"}
		assert.Equal(t, "not eligible: target is not a member of the team", err.Error())
	})

	t.Run("IsNotEligible helper", func(t *testing.T) {
		assert.True(t, IsNotEligible(NewNotEligibleError("no membership")))
		assert.False(t, IsNotEligible(ErrUserNotFound))
	})
}

func TestScopeError(t *testing.T) {
	teamID := uuid.New()
	classID := uuid.New()

	t.Run("Error message carries both ids", func(t *testing.T) {
		err := &ScopeError{TeamID: teamID, ClassID: classID}
		assert.Contains(t, err.Error(), teamID.String())
		assert.Contains(t, err.Error(), classID.String())
	})

	t.Run("IsScope helper", func(t *testing.T) {
		assert.True(t, IsScope(NewScopeError(teamID, classID)))
		assert.False(t, IsScope(ErrTeamNotFound))
	})
}

func TestInvariantViolationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t,
			"invariant violation: a leader cannot remove themself; delegate leadership first",
			ErrLeaderCannotLeave.Error())
	})

	t.Run("IsInvariantViolation helper", func(t *testing.T) {
		assert.True(t, IsInvariantViolation(ErrLeaderCannotLeave))
		assert.True(t, IsInvariantViolation(fmt.Errorf("remove member: %w", ErrLeaderCannotLeave)))
		assert.False(t, IsInvariantViolation(ErrTeamNotFound))
	})
}
