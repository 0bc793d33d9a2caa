package service

import (
	"context"
	"time"

	"github.com/shenikar/fleet_incident_reporting/internal/models"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// RecordStore определяет контракт хранилища записей. Видимые коллекции
// складываются из двух слоёв: неизменяемый seed и overlay в кэше.
// Чтение объединяет оба слоя, запись затрагивает только overlay.
type RecordStore interface {
	// Транспорт. Overlay-записи с совпадающим id затеняют seed при чтении;
	// удаление seed-записи невозможно и возвращает models.ErrNotFound.
	ListVehicles(ctx context.Context) ([]*models.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error)
	AddVehicle(ctx context.Context, vehicle *models.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id int64) error

	// Пользователи. Та же двухслойная схема, что и у транспорта.
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	AddUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error

	// Инциденты. Обновление ищет запись только в overlay: seed-инциденты
	// не редактируются, попытка даёт models.ErrNotFound.
	ListAllIncidents(ctx context.Context) ([]*models.Incident, error)
	ListIncidentsForUser(ctx context.Context, userID int64) ([]*models.Incident, error)
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	CreateIncident(ctx context.Context, incident *models.Incident) error
	UpdateIncident(ctx context.Context, id int64, patch models.IncidentUpdate) (*models.Incident, error)

	// Черновики, на пользователя
	GetDraft(ctx context.Context, userID int64) (*models.Draft, error)
	SaveDraft(ctx context.Context, userID int64, draft *models.Draft) error
	DeleteDraft(ctx context.Context, userID int64) error

	// Уведомления и настройки, на пользователя
	ListNotifications(ctx context.Context, userID int64) ([]*models.Notification, error)
	SaveNotifications(ctx context.Context, userID int64, notifications []*models.Notification) error
	GetPreferences(ctx context.Context, userID int64) (*models.NotificationPreferences, error)
	SavePreferences(ctx context.Context, userID int64, prefs *models.NotificationPreferences) error

	// Сессии
	SaveSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
}
