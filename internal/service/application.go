package service

import (
	"errors"
	"fmt"
	"time"

	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/logger"
	"teammatch-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationService handles the candidate-initiated join workflow: a
// user applies to a team, the leader accepts or rejects. Accepting both
// flips the application terminal and inserts the membership row in one
// transaction; when the team is already full the application is rejected
// instead.
type ApplicationService struct {
	repo       repository.TeamApplicationRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	classRepo  repository.ClassroomRepositoryInterface
	notifier   Notifier
	log        *logger.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(repo repository.TeamApplicationRepositoryInterface, teamRepo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, classRepo repository.ClassroomRepositoryInterface, notifier Notifier) *ApplicationService {
	return &ApplicationService{
		repo:       repo,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		classRepo:  classRepo,
		notifier:   notifier,
		log:        logger.New().WithField("component", "applications"),
	}
}

// ApplicationResponse represents an application in API responses
type ApplicationResponse struct {
	ID        uuid.UUID            `json:"id"`
	TeamID    uuid.UUID            `json:"team_id"`
	UserID    uuid.UUID            `json:"user_id"`
	UserName  string               `json:"user_name,omitempty"`
	Message   string               `json:"message,omitempty"`
	Status    models.RequestStatus `json:"status"`
	DecidedAt *time.Time           `json:"decided_at,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

// Submit files an application from userID to the team. The team must be
// recruiting, the applicant must not already belong to it, at most one
// pending application per (team, user) may exist, and for class-scoped
// teams the applicant must belong to the class.
func (s *ApplicationService) Submit(teamID, userID uuid.UUID, message string) (*ApplicationResponse, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	if team.RecruitStatus != models.RecruitStatusOpen {
		return nil, apperrors.NewNotEligibleError("team is not recruiting")
	}

	if team.ClassID != nil {
		isMember, err := s.classRepo.IsMember(*team.ClassID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check class membership: %w", err)
		}
		if !isMember {
			return nil, apperrors.NewScopeError(teamID, *team.ClassID)
		}
	}

	if _, err := s.memberRepo.GetByTeamAndUser(teamID, userID); err == nil {
		return nil, apperrors.NewDuplicateError("team membership", "user already belongs to the team")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	if _, err := s.repo.GetPending(teamID, userID); err == nil {
		return nil, apperrors.ErrApplicationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check pending application: %w", err)
	}

	app := &models.TeamApplication{
		TeamID:  teamID,
		UserID:  userID,
		Message: message,
		Status:  models.RequestStatusPending,
	}
	if err := s.repo.Create(app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return toApplicationResponse(app), nil
}

// ListPendingByTeam lists pending applications for the team. Leader only.
func (s *ApplicationService) ListPendingByTeam(teamID, actorID uuid.UUID) ([]ApplicationResponse, error) {
	if err := s.leaderCheck(teamID, actorID, "view team applications"); err != nil {
		return nil, err
	}
	apps, err := s.repo.ListPendingByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	responses := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, *toApplicationResponse(&apps[i]))
	}
	return responses, nil
}

// ListByUser lists the applications a user has filed, newest first
func (s *ApplicationService) ListByUser(userID uuid.UUID) ([]ApplicationResponse, error) {
	apps, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	responses := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, *toApplicationResponse(&apps[i]))
	}
	return responses, nil
}

// Accept accepts a pending application. Leader only. The membership
// insert and the status flip commit together; if the team is full the
// application is rejected instead and the applicant is told why. A
// second decision on the same application is a no-op.
func (s *ApplicationService) Accept(applicationID, actorID uuid.UUID) error {
	app, err := s.getForDecision(applicationID, actorID)
	if err != nil || app == nil {
		return err
	}

	team, err := s.teamRepo.GetByID(app.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to load team: %w", err)
	}

	if err := s.repo.AcceptWithMembership(app); err != nil {
		if apperrors.IsCapacityExceeded(err) {
			relatedID := app.TeamID
			s.notifier.Send(app.UserID, models.NotificationApplicationRejected,
				fmt.Sprintf("Your application to %s was rejected because the team is full.", team.Name), &relatedID)
			return err
		}
		return fmt.Errorf("failed to accept application: %w", err)
	}

	relatedID := app.TeamID
	s.notifier.Send(app.UserID, models.NotificationApplicationAccepted,
		fmt.Sprintf("Your application to %s has been accepted.", team.Name), &relatedID)
	return nil
}

// Reject rejects a pending application. Leader only. Repeating a
// decision on a terminal application is a no-op.
func (s *ApplicationService) Reject(applicationID, actorID uuid.UUID) error {
	app, err := s.getForDecision(applicationID, actorID)
	if err != nil || app == nil {
		return err
	}

	if err := s.repo.Reject(app.ID); err != nil {
		return fmt.Errorf("failed to reject application: %w", err)
	}

	team, err := s.teamRepo.GetByID(app.TeamID)
	if err != nil {
		// The rejection is already committed; only the notification is lost.
		s.log.WithField("application_id", app.ID).
			Errorf("failed to load team for rejection notification: %v", err)
		return nil
	}
	relatedID := app.TeamID
	s.notifier.Send(app.UserID, models.NotificationApplicationRejected,
		fmt.Sprintf("Your application to %s was rejected.", team.Name), &relatedID)
	return nil
}

// getForDecision loads the application and authorizes the actor. It
// returns (nil, nil) for terminal applications so decisions stay
// idempotent.
func (s *ApplicationService) getForDecision(applicationID, actorID uuid.UUID) (*models.TeamApplication, error) {
	app, err := s.repo.GetByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	if err := s.leaderCheck(app.TeamID, actorID, "decide team applications"); err != nil {
		return nil, err
	}
	if app.Status.Terminal() {
		return nil, nil
	}
	return app, nil
}

func (s *ApplicationService) leaderCheck(teamID, actorID uuid.UUID, action string) error {
	membership, err := s.memberRepo.GetByTeamAndUser(teamID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewPermissionError(action)
		}
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if membership.Role != models.TeamRoleLeader {
		return apperrors.NewPermissionError(action)
	}
	return nil
}

func toApplicationResponse(app *models.TeamApplication) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:        app.ID,
		TeamID:    app.TeamID,
		UserID:    app.UserID,
		Message:   app.Message,
		Status:    app.Status,
		DecidedAt: app.DecidedAt,
		CreatedAt: app.CreatedAt,
	}
	if app.User != nil {
		resp.UserName = app.User.Name
	}
	return resp
}
