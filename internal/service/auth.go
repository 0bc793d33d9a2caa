package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/shenikar/fleet_incident_reporting/internal/seed"
	"github.com/sirupsen/logrus"
)

// ErrInvalidCredentials - единственная ошибка логина. Не различаем
// неизвестного пользователя и неверный пароль, чтобы не допускать
// перечисление учётных записей.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ProfileUpdate - изменяемые поля профиля
type ProfileUpdate struct {
	Name        string
	Email       string
	Department  string
	Preferences *models.NotificationPreferences
}

//go:generate mockgen -source=auth.go -destination=../handler/http/v1/mocks/mock_auth.go -package=mocks

// AuthService определяет контракт аутентификации и сессий
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*models.User, error)
	GetPreferences(ctx context.Context, userID int64) (*models.NotificationPreferences, error)
}

type authService struct {
	store      RecordStore
	logger     *logrus.Logger
	sessionTTL time.Duration
}

func NewAuthService(store RecordStore, logger *logrus.Logger, sessionTTL time.Duration) AuthService {
	return &authService{
		store:      store,
		logger:     logger,
		sessionTTL: sessionTTL,
	}
}

// Login сверяет учётные данные с фиксированной таблицей и создаёт сессию
func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})

	var matched *seed.Credential
	for _, cred := range seed.Credentials() {
		if cred.Username == username && cred.Password == password {
			c := cred
			matched = &c
			break
		}
	}
	if matched == nil {
		log.Warn("Login attempt with invalid credentials")
		return "", nil, ErrInvalidCredentials
	}

	// Читаем через хранилище, чтобы overlay-правки профиля были видны
	user, err := s.store.GetUser(ctx, matched.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load user for credential")
		return "", nil, fmt.Errorf("service: could not load user: %w", err)
	}

	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		Name:      user.Name,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.store.SaveSession(ctx, session, s.sessionTTL); err != nil {
		log.WithError(err).Error("Failed to save session")
		return "", nil, fmt.Errorf("service: could not save session: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return session.Token, user, nil
}

// Logout удаляет сессию
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.store.DeleteSession(ctx, token); err != nil {
		s.logger.WithError(err).Warn("Failed to delete session")
		return fmt.Errorf("service: could not delete session: %w", err)
	}
	return nil
}

// CurrentUser разрешает токен сессии в пользователя
func (s *authService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	session, err := s.store.GetSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("service: could not resolve session: %w", err)
	}

	user, err := s.store.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load session user: %w", err)
	}
	return user, nil
}

// UpdateProfile обновляет изменяемые поля профиля и настройки уведомлений.
// Запись уходит в overlay и затеняет seed-версию пользователя.
func (s *authService) UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "UpdateProfile",
		"user_id": userID,
	})

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update profile of unknown user")
		return nil, fmt.Errorf("service: user with id %d not found for update: %w", userID, err)
	}

	// Пустые поля не затирают профиль: запрос может нести только настройки
	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Email != "" {
		user.Email = update.Email
	}
	if update.Department != "" {
		user.Department = update.Department
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update user in store")
		return nil, fmt.Errorf("service: could not update user: %w", err)
	}

	if update.Preferences != nil {
		if err := s.store.SavePreferences(ctx, userID, update.Preferences); err != nil {
			log.WithError(err).Error("Failed to save notification preferences")
			return nil, fmt.Errorf("service: could not save preferences: %w", err)
		}
	}

	log.Info("Profile updated successfully")
	return user, nil
}

// GetPreferences возвращает настройки уведомлений пользователя,
// значения по умолчанию если они ещё не сохранялись
func (s *authService) GetPreferences(ctx context.Context, userID int64) (*models.NotificationPreferences, error) {
	prefs, err := s.store.GetPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load preferences: %w", err)
	}
	return prefs, nil
}
