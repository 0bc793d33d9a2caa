package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=notification.go -destination=../handler/http/v1/mocks/mock_notification.go -package=mocks

// NotificationService определяет контракт панели уведомлений
type NotificationService interface {
	List(ctx context.Context, userID int64) ([]*models.Notification, int, error)
	MarkRead(ctx context.Context, userID int64, notificationID string) error
	MarkAllRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, userID int64, notificationID string) error
}

type notificationService struct {
	store  RecordStore
	logger *logrus.Logger
}

func NewNotificationService(store RecordStore, logger *logrus.Logger) NotificationService {
	return &notificationService{
		store:  store,
		logger: logger,
	}
}

// List возвращает уведомления пользователя, новые первыми, и количество
// непрочитанных
func (s *notificationService) List(ctx context.Context, userID int64) ([]*models.Notification, int, error) {
	notifications, err := s.store.ListNotifications(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to list notifications")
		return nil, 0, fmt.Errorf("service: could not list notifications: %w", err)
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	return notifications, unread, nil
}

// MarkRead помечает уведомление прочитанным
func (s *notificationService) MarkRead(ctx context.Context, userID int64, notificationID string) error {
	notifications, err := s.store.ListNotifications(ctx, userID)
	if err != nil {
		return fmt.Errorf("service: could not list notifications: %w", err)
	}

	found := false
	for _, n := range notifications {
		if n.ID == notificationID {
			n.Read = true
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("service: notification %s not found: %w", notificationID, models.ErrNotFound)
	}

	if err := s.store.SaveNotifications(ctx, userID, notifications); err != nil {
		return fmt.Errorf("service: could not save notifications: %w", err)
	}
	return nil
}

// MarkAllRead помечает все уведомления пользователя прочитанными
func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) error {
	notifications, err := s.store.ListNotifications(ctx, userID)
	if err != nil {
		return fmt.Errorf("service: could not list notifications: %w", err)
	}

	for _, n := range notifications {
		n.Read = true
	}

	if err := s.store.SaveNotifications(ctx, userID, notifications); err != nil {
		return fmt.Errorf("service: could not save notifications: %w", err)
	}
	return nil
}

// Delete удаляет уведомление из списка пользователя
func (s *notificationService) Delete(ctx context.Context, userID int64, notificationID string) error {
	notifications, err := s.store.ListNotifications(ctx, userID)
	if err != nil {
		return fmt.Errorf("service: could not list notifications: %w", err)
	}

	kept := notifications[:0]
	found := false
	for _, n := range notifications {
		if n.ID == notificationID {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return fmt.Errorf("service: notification %s not found: %w", notificationID, models.ErrNotFound)
	}

	if err := s.store.SaveNotifications(ctx, userID, kept); err != nil {
		return fmt.Errorf("service: could not save notifications: %w", err)
	}
	return nil
}
