package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shenikar/fleet_incident_reporting/internal/config"
	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/shenikar/fleet_incident_reporting/internal/notification"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=../handler/http/v1/mocks/mock_incident.go -package=mocks

// ValidationError - ошибка валидации с сообщениями по полям.
// Обрабатывается локально на границе HTTP и не пропускается дальше.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// IncidentService определяет контракт бизнес-логики жизненного цикла инцидентов
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	ListAllIncidents(ctx context.Context, filter IncidentFilter) ([]*models.Incident, error)
	ListUserIncidents(ctx context.Context, userID int64, filter IncidentFilter) ([]*models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id int64, status, notes, adminName string) (*models.Incident, error)
}

type incidentService struct {
	store     RecordStore
	logger    *logrus.Logger
	cfg       *config.Config
	publisher notification.EventPublisher
}

func NewIncidentService(store RecordStore, logger *logrus.Logger, cfg *config.Config, publisher notification.EventPublisher) IncidentService {
	return &incidentService{
		store:     store,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// CreateIncident валидирует отчёт, денормализует ссылки и сохраняет его в overlay.
// Хранилище присваивает id и принудительно выставляет Pending/ApprovedBy=nil.
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"user_id": incident.UserID,
	})
	log.Info("Attempting to create a new incident")

	incident.Description = strings.TrimSpace(incident.Description)
	incident.Location = strings.TrimSpace(incident.Location)
	incident.AdditionalNotes = strings.TrimSpace(incident.AdditionalNotes)
	if incident.Severity == "" {
		incident.Severity = models.SeverityMedium
	}

	if verr := validateIncident(incident); verr != nil {
		log.WithError(verr).Warn("Incident validation failed")
		return verr
	}

	user, err := s.store.GetUser(ctx, incident.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve reporting user")
		return fmt.Errorf("service: could not resolve reporting user: %w", err)
	}
	incident.UserName = user.Name
	incident.ReportedBy = user.Name

	// Ссылочная целостность не enforced: отсутствующий транспорт помечается
	// как Unknown, а не блокирует отправку
	vehicle, err := s.store.GetVehicle(ctx, incident.VehicleID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Error("Failed to resolve vehicle")
			return fmt.Errorf("service: could not resolve vehicle: %w", err)
		}
		incident.VehicleNumber = "Unknown"
	} else {
		incident.VehicleNumber = vehicle.VehicleNumber
	}

	if err := s.store.CreateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in store")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	// Успешная отправка очищает слот черновика автора
	if err := s.store.DeleteDraft(ctx, incident.UserID); err != nil {
		log.WithError(err).Warn("Failed to clear draft after submission")
	}

	event := notification.Event{
		Type:         notification.EventIncidentCreated,
		IncidentID:   incident.ID,
		UserID:       incident.UserID,
		UserName:     incident.UserName,
		IncidentType: incident.IncidentType,
		Status:       incident.Status,
		Timestamp:    time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish incident created event")
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, err := s.store.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from store")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListAllIncidents возвращает общую очередь для админа, с применением фильтров.
// Поиск в админском представлении включает имя автора отчёта.
func (s *incidentService) ListAllIncidents(ctx context.Context, filter IncidentFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListAllIncidents",
	})

	incidents, err := s.store.ListAllIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from store")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	filter.IncludeReporter = true
	filtered := FilterIncidents(incidents, filter)
	log.WithField("count", len(filtered)).Info("Incidents listed successfully")
	return filtered, nil
}

// ListUserIncidents возвращает историю инцидентов одного пользователя
func (s *incidentService) ListUserIncidents(ctx context.Context, userID int64, filter IncidentFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListUserIncidents",
		"user_id": userID,
	})

	incidents, err := s.store.ListIncidentsForUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list user incidents from store")
		return nil, fmt.Errorf("service: could not list user incidents: %w", err)
	}

	filter.IncludeReporter = false
	filtered := FilterIncidents(incidents, filter)
	log.WithField("count", len(filtered)).Info("User incidents listed successfully")
	return filtered, nil
}

// UpdateIncidentStatus - админский путь обновления. Переходы разрешены между
// любыми статусами; каждый переход штампует ApprovedBy и UpdatedAt.
// Для seed-инцидентов хранилище возвращает models.ErrNotFound и запись
// не меняется.
func (s *incidentService) UpdateIncidentStatus(ctx context.Context, id int64, status, notes, adminName string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncidentStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to update incident status")

	if !isValidStatus(status) {
		return nil, &ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("status must be one of: %s, %s, %s, %s",
				models.StatusPending, models.StatusUnderReview, models.StatusUnderInvestigation, models.StatusResolved),
		}}
	}

	patch := models.IncidentUpdate{
		Status:     status,
		ApprovedBy: adminName,
		Notes:      notes,
		UpdatedAt:  time.Now(),
	}

	updated, err := s.store.UpdateIncident(ctx, id, patch)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Attempted to update a seed or non-existent incident")
			return nil, fmt.Errorf("service: incident with id %d not found for update: %w", id, err)
		}
		log.WithError(err).Error("Failed to update incident in store")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	event := notification.Event{
		Type:         notification.EventIncidentStatusChanged,
		IncidentID:   updated.ID,
		UserID:       updated.UserID,
		UserName:     updated.UserName,
		IncidentType: updated.IncidentType,
		Status:       updated.Status,
		ApprovedBy:   adminName,
		Notes:        notes,
		Timestamp:    time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish status changed event")
	}

	log.Info("Incident status updated successfully")
	return updated, nil
}

// validateIncident проверяет обязательные поля отчёта
func validateIncident(incident *models.Incident) *ValidationError {
	fields := make(map[string]string)

	if incident.IncidentType == "" {
		fields["incident_type"] = "incident type is required"
	} else if !isValidIncidentType(incident.IncidentType) {
		fields["incident_type"] = "unknown incident type"
	}

	if incident.Description == "" {
		fields["description"] = "description is required"
	} else if utf8.RuneCountInString(incident.Description) < 10 {
		// Считаем символы, а не байты: многобайтовый текст короче десяти
		// символов не проходит
		fields["description"] = "description must be at least 10 characters"
	}

	if incident.Location == "" {
		fields["location"] = "location is required"
	}

	// Дата и время сравниваются по всему коду лексикографически как ISO-строки,
	// поэтому формат проверяется на входе
	if incident.Date == "" {
		fields["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", incident.Date); err != nil {
		fields["date"] = "date must be in YYYY-MM-DD format"
	}

	if incident.Time == "" {
		fields["time"] = "time is required"
	} else if _, err := time.Parse("15:04", incident.Time); err != nil {
		fields["time"] = "time must be in HH:MM format"
	}

	if incident.VehicleID == 0 {
		fields["vehicle_id"] = "please select a vehicle"
	}

	if incident.Severity != models.SeverityLow &&
		incident.Severity != models.SeverityMedium &&
		incident.Severity != models.SeverityHigh {
		fields["severity"] = "unknown severity"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func isValidIncidentType(t string) bool {
	for _, known := range models.IncidentTypes() {
		if t == known {
			return true
		}
	}
	return false
}

func isValidStatus(status string) bool {
	switch status {
	case models.StatusPending, models.StatusUnderReview, models.StatusUnderInvestigation, models.StatusResolved:
		return true
	}
	return false
}
