package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fleet_incident_reporting/internal/models"
)

// GetDraft возвращает черновик пользователя, nil если слот пуст.
// Повреждённый слот сбрасывается.
func (s *Store) GetDraft(ctx context.Context, userID int64) (*models.Draft, error) {
	key := draftKey(userID)
	val, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read draft for user %d: %w", userID, err)
	}

	draft := &models.Draft{}
	if err := json.Unmarshal(val, draft); err != nil {
		if delErr := s.redisClient.Del(ctx, key).Err(); delErr != nil {
			return nil, fmt.Errorf("failed to drop corrupted draft for user %d: %w", userID, delErr)
		}
		return nil, nil
	}
	return draft, nil
}

// SaveDraft пишет черновик в слот пользователя
func (s *Store) SaveDraft(ctx context.Context, userID int64, draft *models.Draft) error {
	val, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft for user %d: %w", userID, err)
	}
	if err := s.redisClient.Set(ctx, draftKey(userID), val, 0).Err(); err != nil {
		return fmt.Errorf("failed to save draft for user %d: %w", userID, err)
	}
	return nil
}

// DeleteDraft очищает слот черновика пользователя
func (s *Store) DeleteDraft(ctx context.Context, userID int64) error {
	if err := s.redisClient.Del(ctx, draftKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft for user %d: %w", userID, err)
	}
	return nil
}

// ListNotifications возвращает уведомления пользователя
func (s *Store) ListNotifications(ctx context.Context, userID int64) ([]*models.Notification, error) {
	var notifications []*models.Notification
	if err := s.readOverlay(ctx, notificationsKey(userID), &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// SaveNotifications сериализует список уведомлений пользователя целиком
func (s *Store) SaveNotifications(ctx context.Context, userID int64, notifications []*models.Notification) error {
	return s.writeOverlay(ctx, notificationsKey(userID), notifications)
}

// GetPreferences возвращает настройки уведомлений, значения по умолчанию
// если ключ отсутствует
func (s *Store) GetPreferences(ctx context.Context, userID int64) (*models.NotificationPreferences, error) {
	key := preferencesKey(userID)
	val, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.DefaultNotificationPreferences(), nil
		}
		return nil, fmt.Errorf("failed to read preferences for user %d: %w", userID, err)
	}

	prefs := &models.NotificationPreferences{}
	if err := json.Unmarshal(val, prefs); err != nil {
		if delErr := s.redisClient.Del(ctx, key).Err(); delErr != nil {
			return nil, fmt.Errorf("failed to drop corrupted preferences for user %d: %w", userID, delErr)
		}
		return models.DefaultNotificationPreferences(), nil
	}
	return prefs, nil
}

// SavePreferences пишет настройки уведомлений пользователя
func (s *Store) SavePreferences(ctx context.Context, userID int64, prefs *models.NotificationPreferences) error {
	val, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences for user %d: %w", userID, err)
	}
	if err := s.redisClient.Set(ctx, preferencesKey(userID), val, 0).Err(); err != nil {
		return fmt.Errorf("failed to save preferences for user %d: %w", userID, err)
	}
	return nil
}

// SaveSession пишет сессию с TTL
func (s *Store) SaveSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.redisClient.Set(ctx, sessionKey(session.Token), val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession возвращает сессию по токену. Просроченный или повреждённый
// токен трактуется как разлогиненный пользователь.
func (s *Store) GetSession(ctx context.Context, token string) (*models.Session, error) {
	key := sessionKey(token)
	val, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("session not found: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	session := &models.Session{}
	if err := json.Unmarshal(val, session); err != nil {
		if delErr := s.redisClient.Del(ctx, key).Err(); delErr != nil {
			return nil, fmt.Errorf("failed to drop corrupted session: %w", delErr)
		}
		return nil, fmt.Errorf("session not found: %w", models.ErrNotFound)
	}
	return session, nil
}

// DeleteSession удаляет сессию
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	if err := s.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
