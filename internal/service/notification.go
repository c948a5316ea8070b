package service

import (
	"errors"
	"fmt"

	"teammatch-backend/internal/database/models"
	apperrors "teammatch-backend/internal/errors"
	"teammatch-backend/internal/logger"
	"teammatch-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=notification.go -destination=../mocks/notifier_mock.go -package=mocks

// Notifier is the outbound notification contract consumed by the
// workflow and lifecycle services. Send is fire-and-forget: once it
// returns the notification is assumed durable.
type Notifier interface {
	Send(userID uuid.UUID, notificationType models.NotificationType, message string, relatedID *uuid.UUID)
}

// NotificationService persists notifications to the inbox table and
// serves read/mark-read access. It implements Notifier.
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
	log  *logger.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{
		repo: repo,
		log:  logger.New().WithField("component", "notifications"),
	}
}

// Send appends a notification row. Delivery failures are logged, never
// propagated: a failed notification must not fail the state change it
// follows.
func (s *NotificationService) Send(userID uuid.UUID, notificationType models.NotificationType, message string, relatedID *uuid.UUID) {
	n := &models.Notification{
		UserID:    userID,
		Type:      notificationType,
		Message:   message,
		RelatedID: relatedID,
	}
	if err := s.repo.Create(n); err != nil {
		s.log.WithField("user_id", userID).WithField("type", notificationType).
			Errorf("failed to persist notification: %v", err)
	}
}

// NotificationListResponse is a paginated slice of a user's inbox
type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	Unread        int64                 `json:"unread"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
}

// ListForUser returns a page of the user's notifications, newest first
func (s *NotificationService) ListForUser(userID uuid.UUID, page, pageSize int) (*NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	notifications, total, err := s.repo.ListForUser(userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	unread, err := s.repo.CountUnread(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &NotificationListResponse{
		Notifications: notifications,
		Total:         total,
		Unread:        unread,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// MarkRead stamps read_at on a notification owned by the user. Marking
// an already-read notification, or one belonging to someone else, is a
// documented no-op.
func (s *NotificationService) MarkRead(id, userID uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to load notification: %w", err)
	}
	return s.repo.MarkRead(id, userID)
}
