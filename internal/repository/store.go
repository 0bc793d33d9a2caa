package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/shenikar/fleet_incident_reporting/internal/seed"
)

// Ключи overlay-хранилища. Имитируют плоский строковый кэш исходного
// продукта: коллекция целиком сериализуется под одним ключом,
// последняя запись побеждает.
const (
	vehiclesKey  = "vehicles"
	usersKey     = "users"
	incidentsKey = "incidents"
)

func draftKey(userID int64) string {
	return fmt.Sprintf("incident-draft-%d", userID)
}

func notificationsKey(userID int64) string {
	return fmt.Sprintf("notifications-%d", userID)
}

func preferencesKey(userID int64) string {
	return fmt.Sprintf("notification-preferences-%d", userID)
}

func sessionKey(token string) string {
	return "session:" + token
}

// Store реализует service.RecordStore поверх двух слоёв: неизменяемый seed
// (пакет seed) и overlay в Redis. Чтение объединяет слои, запись трогает
// только overlay.
type Store struct {
	redisClient *redis.Client
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

// readOverlay десериализует коллекцию из overlay-ключа. Отсутствующий ключ
// даёт пустую коллекцию; повреждённый ключ сбрасывается, а не роняет чтение.
func (s *Store) readOverlay(ctx context.Context, key string, dest any) error {
	val, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("failed to read overlay key %s: %w", key, err)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		// Повреждённое содержимое отбрасываем вместе с ключом
		if delErr := s.redisClient.Del(ctx, key).Err(); delErr != nil {
			return fmt.Errorf("failed to drop corrupted overlay key %s: %w", key, delErr)
		}
		return nil
	}
	return nil
}

// writeOverlay сериализует коллекцию целиком под overlay-ключ
func (s *Store) writeOverlay(ctx context.Context, key string, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal overlay key %s: %w", key, err)
	}
	if err := s.redisClient.Set(ctx, key, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to write overlay key %s: %w", key, err)
	}
	return nil
}

// ListVehicles возвращает seed-транспорт с наложенными overlay-правками
// и overlay-записи, добавленные в рантайме
func (s *Store) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	var overlay []*models.Vehicle
	if err := s.readOverlay(ctx, vehiclesKey, &overlay); err != nil {
		return nil, err
	}

	shadow := make(map[int64]*models.Vehicle, len(overlay))
	for _, v := range overlay {
		shadow[v.ID] = v
	}

	merged := make([]*models.Vehicle, 0, len(overlay)+4)
	seedIDs := make(map[int64]bool)
	for _, v := range seed.Vehicles() {
		seedIDs[v.ID] = true
		if sh, ok := shadow[v.ID]; ok {
			merged = append(merged, sh)
			continue
		}
		merged = append(merged, v)
	}
	for _, v := range overlay {
		if !seedIDs[v.ID] {
			merged = append(merged, v)
		}
	}
	return merged, nil
}

// GetVehicle возвращает транспорт по id из объединённого списка
func (s *Store) GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error) {
	vehicles, err := s.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, fmt.Errorf("vehicle with id %d not found: %w", id, models.ErrNotFound)
}

// AddVehicle добавляет запись в overlay. ID присваивается как текущее
// время в миллисекундах.
func (s *Store) AddVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	var overlay []*models.Vehicle
	if err := s.readOverlay(ctx, vehiclesKey, &overlay); err != nil {
		return err
	}
	if vehicle.ID == 0 {
		vehicle.ID = time.Now().UnixMilli()
	}
	overlay = append(overlay, vehicle)
	return s.writeOverlay(ctx, vehiclesKey, overlay)
}

// UpdateVehicle пишет правку в overlay. Правка seed-записи создаёт
// затеняющую overlay-копию с тем же id.
func (s *Store) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	var overlay []*models.Vehicle
	if err := s.readOverlay(ctx, vehiclesKey, &overlay); err != nil {
		return err
	}

	for i, v := range overlay {
		if v.ID == vehicle.ID {
			overlay[i] = vehicle
			return s.writeOverlay(ctx, vehiclesKey, overlay)
		}
	}
	if isSeedVehicle(vehicle.ID) {
		overlay = append(overlay, vehicle)
		return s.writeOverlay(ctx, vehiclesKey, overlay)
	}
	return fmt.Errorf("vehicle with id %d not found for update: %w", vehicle.ID, models.ErrNotFound)
}

// DeleteVehicle удаляет overlay-запись. Seed-транспорт не удаляется никогда.
func (s *Store) DeleteVehicle(ctx context.Context, id int64) error {
	if isSeedVehicle(id) {
		return fmt.Errorf("vehicle with id %d is a seed record: %w", id, models.ErrNotFound)
	}

	var overlay []*models.Vehicle
	if err := s.readOverlay(ctx, vehiclesKey, &overlay); err != nil {
		return err
	}
	for i, v := range overlay {
		if v.ID == id {
			overlay = append(overlay[:i], overlay[i+1:]...)
			return s.writeOverlay(ctx, vehiclesKey, overlay)
		}
	}
	return fmt.Errorf("vehicle with id %d not found for delete: %w", id, models.ErrNotFound)
}

// ListUsers возвращает seed-пользователей с наложенными overlay-правками
// и overlay-записи, добавленные в рантайме
func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	var overlay []*models.User
	if err := s.readOverlay(ctx, usersKey, &overlay); err != nil {
		return nil, err
	}

	shadow := make(map[int64]*models.User, len(overlay))
	for _, u := range overlay {
		shadow[u.ID] = u
	}

	merged := make([]*models.User, 0, len(overlay)+5)
	seedIDs := make(map[int64]bool)
	for _, u := range seed.Users() {
		seedIDs[u.ID] = true
		if sh, ok := shadow[u.ID]; ok {
			merged = append(merged, sh)
			continue
		}
		merged = append(merged, u)
	}
	for _, u := range overlay {
		if !seedIDs[u.ID] {
			merged = append(merged, u)
		}
	}
	return merged, nil
}

// GetUser возвращает пользователя по id из объединённого списка
func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user with id %d not found: %w", id, models.ErrNotFound)
}

// AddUser добавляет запись в overlay
func (s *Store) AddUser(ctx context.Context, user *models.User) error {
	var overlay []*models.User
	if err := s.readOverlay(ctx, usersKey, &overlay); err != nil {
		return err
	}
	if user.ID == 0 {
		user.ID = time.Now().UnixMilli()
	}
	overlay = append(overlay, user)
	return s.writeOverlay(ctx, usersKey, overlay)
}

// UpdateUser пишет правку в overlay, затеняя seed-версию при необходимости
func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	var overlay []*models.User
	if err := s.readOverlay(ctx, usersKey, &overlay); err != nil {
		return err
	}

	for i, u := range overlay {
		if u.ID == user.ID {
			overlay[i] = user
			return s.writeOverlay(ctx, usersKey, overlay)
		}
	}
	if isSeedUser(user.ID) {
		overlay = append(overlay, user)
		return s.writeOverlay(ctx, usersKey, overlay)
	}
	return fmt.Errorf("user with id %d not found for update: %w", user.ID, models.ErrNotFound)
}

// DeleteUser удаляет overlay-запись. Seed-пользователи не удаляются никогда.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	if isSeedUser(id) {
		return fmt.Errorf("user with id %d is a seed record: %w", id, models.ErrNotFound)
	}

	var overlay []*models.User
	if err := s.readOverlay(ctx, usersKey, &overlay); err != nil {
		return err
	}
	for i, u := range overlay {
		if u.ID == id {
			overlay = append(overlay[:i], overlay[i+1:]...)
			return s.writeOverlay(ctx, usersKey, overlay)
		}
	}
	return fmt.Errorf("user with id %d not found for delete: %w", id, models.ErrNotFound)
}

func isSeedVehicle(id int64) bool {
	for _, v := range seed.Vehicles() {
		if v.ID == id {
			return true
		}
	}
	return false
}

func isSeedUser(id int64) bool {
	for _, u := range seed.Users() {
		if u.ID == id {
			return true
		}
	}
	return false
}
