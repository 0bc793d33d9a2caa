package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/shenikar/fleet_incident_reporting/internal/seed"
)

// ListAllIncidents возвращает seed ∪ overlay, упорядоченный по дате и
// времени происшествия по убыванию. Используется админской очередью.
func (s *Store) ListAllIncidents(ctx context.Context) ([]*models.Incident, error) {
	var overlay []*models.Incident
	if err := s.readOverlay(ctx, incidentsKey, &overlay); err != nil {
		return nil, err
	}

	merged := append(seed.Incidents(), overlay...)
	sortIncidentsByOccurrence(merged)
	return merged, nil
}

// ListIncidentsForUser возвращает инциденты одного автора, seed ∪ overlay,
// в том же порядке по убыванию
func (s *Store) ListIncidentsForUser(ctx context.Context, userID int64) ([]*models.Incident, error) {
	all, err := s.ListAllIncidents(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]*models.Incident, 0)
	for _, incident := range all {
		if incident.UserID == userID {
			mine = append(mine, incident)
		}
	}
	return mine, nil
}

// GetIncident возвращает инцидент по id из объединённой коллекции
func (s *Store) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	all, err := s.ListAllIncidents(ctx)
	if err != nil {
		return nil, err
	}
	for _, incident := range all {
		if incident.ID == id {
			return incident, nil
		}
	}
	return nil, fmt.Errorf("incident with id %d not found: %w", id, models.ErrNotFound)
}

// CreateIncident добавляет инцидент в overlay. Хранилище присваивает id как
// текущее время в миллисекундах и принудительно выставляет начальный статус
// независимо от входных данных.
func (s *Store) CreateIncident(ctx context.Context, incident *models.Incident) error {
	var overlay []*models.Incident
	if err := s.readOverlay(ctx, incidentsKey, &overlay); err != nil {
		return err
	}

	now := time.Now()
	incident.ID = now.UnixMilli()
	incident.Status = models.StatusPending
	incident.ApprovedBy = nil
	incident.CreatedAt = now
	incident.UpdatedAt = now

	overlay = append(overlay, incident)
	if err := s.writeOverlay(ctx, incidentsKey, overlay); err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// UpdateIncident применяет частичное обновление к записи в overlay.
// Seed-инциденты не обновляются: попытка возвращает models.ErrNotFound,
// и коллекция не меняется.
func (s *Store) UpdateIncident(ctx context.Context, id int64, patch models.IncidentUpdate) (*models.Incident, error) {
	var overlay []*models.Incident
	if err := s.readOverlay(ctx, incidentsKey, &overlay); err != nil {
		return nil, err
	}

	for _, incident := range overlay {
		if incident.ID != id {
			continue
		}
		incident.Status = patch.Status
		approvedBy := patch.ApprovedBy
		incident.ApprovedBy = &approvedBy
		incident.Notes = patch.Notes
		incident.UpdatedAt = patch.UpdatedAt

		if err := s.writeOverlay(ctx, incidentsKey, overlay); err != nil {
			return nil, fmt.Errorf("failed to update incident: %w", err)
		}
		return incident, nil
	}
	return nil, fmt.Errorf("incident with id %d not found for update: %w", id, models.ErrNotFound)
}

// sortIncidentsByOccurrence сортирует по конкатенации даты и времени
// по убыванию. ISO-формат сравнивается лексикографически.
func sortIncidentsByOccurrence(incidents []*models.Incident) {
	sort.SliceStable(incidents, func(i, j int) bool {
		return incidents[i].OccurredAt() > incidents[j].OccurredAt()
	})
}
