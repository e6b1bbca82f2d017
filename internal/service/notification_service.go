package service

import (
	"training_backend/internal/model"
	"training_backend/internal/repository"
	"training_backend/pkg/logger"

	"go.uber.org/zap"
)

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
	UserRepo         *repository.UserRepository
}

func NewNotificationService(
	notificationRepo *repository.NotificationRepository,
	userRepo *repository.UserRepository,
) *NotificationService {
	return &NotificationService{
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
	}
}

// NotifyUser is fire and forget: a failed insert is logged, never surfaced
// to the caller's request.
func (s *NotificationService) NotifyUser(userID string, typ model.NotificationType, title, message, link string) {
	n := &model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Link:    link,
		Type:    typ,
	}
	if err := s.NotificationRepo.Create(n); err != nil {
		logger.Log.Warn("notification insert failed", zap.String("user", userID), zap.Error(err))
	}
}

func (s *NotificationService) NotifyRole(role model.UserRole, typ model.NotificationType, title, message, link string) {
	users, err := s.UserRepo.ListByRole(role)
	if err != nil {
		logger.Log.Warn("role fan-out failed", zap.String("role", string(role)), zap.Error(err))
		return
	}
	for _, u := range users {
		s.NotifyUser(u.ID, typ, title, message, link)
	}
}

func (s *NotificationService) ListByUser(userID string) ([]model.Notification, error) {
	return s.NotificationRepo.ListByUser(userID)
}

func (s *NotificationService) ListUnread(userID string) ([]model.Notification, error) {
	return s.NotificationRepo.ListUnread(userID)
}

func (s *NotificationService) CountUnread(userID string) (int64, error) {
	return s.NotificationRepo.CountUnread(userID)
}

func (s *NotificationService) MarkRead(id, userID string) error {
	return s.NotificationRepo.MarkRead(id, userID)
}

func (s *NotificationService) MarkAllRead(userID string) error {
	return s.NotificationRepo.MarkAllRead(userID)
}
