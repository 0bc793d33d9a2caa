package service

import (
	"context"
	"fmt"

	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=fleet.go -destination=../handler/http/v1/mocks/mock_fleet.go -package=mocks

// FleetService определяет контракт админского CRUD по транспорту и пользователям.
// Мутации пишутся в overlay; seed-записи затеняются правками, но не удаляются.
type FleetService interface {
	ListVehicles(ctx context.Context) ([]*models.Vehicle, error)
	AddVehicle(ctx context.Context, vehicle *models.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id int64) error

	ListUsers(ctx context.Context) ([]*models.User, error)
	AddUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type fleetService struct {
	store  RecordStore
	logger *logrus.Logger
}

func NewFleetService(store RecordStore, logger *logrus.Logger) FleetService {
	return &fleetService{
		store:  store,
		logger: logger,
	}
}

// ListVehicles возвращает объединённый список транспорта
func (s *fleetService) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	vehicles, err := s.store.ListVehicles(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list vehicles from store")
		return nil, fmt.Errorf("service: could not list vehicles: %w", err)
	}
	return vehicles, nil
}

// AddVehicle добавляет транспорт в overlay
func (s *fleetService) AddVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "fleet",
		"method":         "AddVehicle",
		"vehicle_number": vehicle.VehicleNumber,
	})

	if vehicle.Status == "" {
		vehicle.Status = models.VehicleActive
	}
	if err := s.store.AddVehicle(ctx, vehicle); err != nil {
		log.WithError(err).Error("Failed to add vehicle to store")
		return fmt.Errorf("service: could not add vehicle: %w", err)
	}
	log.WithField("vehicle_id", vehicle.ID).Info("Vehicle added successfully")
	return nil
}

// UpdateVehicle обновляет транспорт. Правка seed-записи пишется в overlay
// и затеняет её при чтении.
func (s *fleetService) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "fleet",
		"method":     "UpdateVehicle",
		"vehicle_id": vehicle.ID,
	})

	if _, err := s.store.GetVehicle(ctx, vehicle.ID); err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent vehicle")
		return fmt.Errorf("service: vehicle with id %d not found for update: %w", vehicle.ID, err)
	}

	if err := s.store.UpdateVehicle(ctx, vehicle); err != nil {
		log.WithError(err).Error("Failed to update vehicle in store")
		return fmt.Errorf("service: could not update vehicle: %w", err)
	}
	log.Info("Vehicle updated successfully")
	return nil
}

// DeleteVehicle удаляет overlay-запись; seed-транспорт удалить нельзя
func (s *fleetService) DeleteVehicle(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "fleet",
		"method":     "DeleteVehicle",
		"vehicle_id": id,
	})

	if err := s.store.DeleteVehicle(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete vehicle")
		return fmt.Errorf("service: vehicle with id %d not found for delete: %w", id, err)
	}
	log.Info("Vehicle deleted successfully")
	return nil
}

// ListUsers возвращает объединённый список пользователей
func (s *fleetService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list users from store")
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

// AddUser добавляет пользователя в overlay
func (s *fleetService) AddUser(ctx context.Context, user *models.User) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "AddUser",
		"email":   user.Email,
	})

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Status == "" {
		user.Status = "Active"
	}
	if err := s.store.AddUser(ctx, user); err != nil {
		log.WithError(err).Error("Failed to add user to store")
		return fmt.Errorf("service: could not add user: %w", err)
	}
	log.WithField("user_id", user.ID).Info("User added successfully")
	return nil
}

// UpdateUser обновляет пользователя через overlay
func (s *fleetService) UpdateUser(ctx context.Context, user *models.User) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "UpdateUser",
		"user_id": user.ID,
	})

	if _, err := s.store.GetUser(ctx, user.ID); err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent user")
		return fmt.Errorf("service: user with id %d not found for update: %w", user.ID, err)
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update user in store")
		return fmt.Errorf("service: could not update user: %w", err)
	}
	log.Info("User updated successfully")
	return nil
}

// DeleteUser удаляет overlay-запись; seed-пользователя удалить нельзя
func (s *fleetService) DeleteUser(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "DeleteUser",
		"user_id": id,
	})

	if err := s.store.DeleteUser(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete user")
		return fmt.Errorf("service: user with id %d not found for delete: %w", id, err)
	}
	log.Info("User deleted successfully")
	return nil
}
