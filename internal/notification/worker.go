package notification

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fleet_incident_reporting/internal/config"
	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/sirupsen/logrus"
)

// Store - минимальный срез хранилища, нужный воркеру для записи
// уведомлений получателю
type Store interface {
	ListNotifications(ctx context.Context, userID int64) ([]*models.Notification, error)
	SaveNotifications(ctx context.Context, userID int64, notifications []*models.Notification) error
	GetPreferences(ctx context.Context, userID int64) (*models.NotificationPreferences, error)
}

// Worker читает очередь событий инцидентов, материализует уведомления для
// автора отчёта и доставляет события во внешний вебхук, если он настроен
type Worker struct {
	redisClient *redis.Client
	store       Store
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, store Store, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		store:       store,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди событий
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, eventQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop incident event from Redis")
					time.Sleep(w.cfg.WebhookTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal incident event from Redis")
					continue
				}

				w.storeNotification(ctx, event)
				w.deliverWebhook(ctx, event, payload)
			}
		}
	}()
}

// storeNotification добавляет уведомление в список автора отчёта,
// если его настройки это разрешают
func (w *Worker) storeNotification(ctx context.Context, event Event) {
	log := w.logger.WithField("event_type", event.Type).WithField("user_id", event.UserID)

	prefs, err := w.store.GetPreferences(ctx, event.UserID)
	if err != nil {
		log.WithError(err).Warn("Failed to load notification preferences, using defaults")
		prefs = models.DefaultNotificationPreferences()
	}
	if !prefs.IncidentUpdates {
		log.Debug("Incident update notifications disabled for user, skipping")
		return
	}

	notification := buildNotification(event)
	if notification == nil {
		log.Warn("Unknown event type, no notification built")
		return
	}

	existing, err := w.store.ListNotifications(ctx, event.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load notifications for user")
		return
	}

	// Новые уведомления встают в начало списка
	updated := append([]*models.Notification{notification}, existing...)
	if err := w.store.SaveNotifications(ctx, event.UserID, updated); err != nil {
		log.WithError(err).Error("Failed to save notification for user")
		return
	}
	log.Debug("Notification stored for user")
}

// buildNotification превращает событие в запись уведомления
func buildNotification(event Event) *models.Notification {
	switch event.Type {
	case EventIncidentCreated:
		return &models.Notification{
			ID:        uuid.NewString(),
			Type:      models.NotificationIncidentCreated,
			Title:     "Incident Report Submitted",
			Message:   fmt.Sprintf("Your incident report #%d has been submitted and is now pending review.", event.IncidentID),
			Timestamp: event.Timestamp,
			Read:      false,
			Priority:  "low",
		}
	case EventIncidentStatusChanged:
		return &models.Notification{
			ID:        uuid.NewString(),
			Type:      models.NotificationIncidentUpdate,
			Title:     "Incident Status Updated",
			Message:   fmt.Sprintf("Your incident report #%d has been moved to %q by %s.", event.IncidentID, event.Status, event.ApprovedBy),
			Timestamp: event.Timestamp,
			Read:      false,
			Priority:  "medium",
		}
	}
	return nil
}

// deliverWebhook отправляет событие во внешний вебхук с HMAC подписью
// и экспоненциальными повторами
func (w *Worker) deliverWebhook(ctx context.Context, event Event, rawPayload string) {
	log := w.logger.WithField("event_type", event.Type).WithField("incident_id", event.IncidentID)

	if w.cfg.WebhookURL == "" {
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	baseDelay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create webhook request for event. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
		if w.cfg.WebhookSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.WebhookSecret)
			req.Header.Set("X-Webhook-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook for event. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Webhook delivered successfully.")
			return
		}
		log.Warnf("Webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver webhook for event after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
