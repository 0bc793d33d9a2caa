package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	eventQueueKey = "incident_events"
)

// Типы событий инцидентов
const (
	EventIncidentCreated       = "incident.created"
	EventIncidentStatusChanged = "incident.status_changed"
)

// Event - событие жизненного цикла инцидента, уходит в очередь для
// воркера уведомлений и (опционально) во внешний вебхук
type Event struct {
	Type         string    `json:"type"`
	IncidentID   int64     `json:"incident_id"`
	UserID       int64     `json:"user_id"`
	UserName     string    `json:"user_name"`
	IncidentType string    `json:"incident_type"`
	Status       string    `json:"status"`
	ApprovedBy   string    `json:"approved_by,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий инцидентов
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие инцидента в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}
