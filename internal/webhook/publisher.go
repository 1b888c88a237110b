package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_analysis_system/internal/models"
)

const (
	notificationQueueKey = "alert_notifications"
)

// NotificationEvent - событие о созданном уведомлении подписки
type NotificationEvent struct {
	NotificationID     int64     `json:"notification_id"`
	AlertID            int64     `json:"alert_id"`
	UserID             int64     `json:"user_id"`
	AlertName          string    `json:"alert_name"`
	NotificationMethod string    `json:"notification_method"`
	Contact            string    `json:"notification_contact,omitempty"`
	CrimeIDs           []int64   `json:"crime_ids"`
	WindowStart        time.Time `json:"window_start"`
	WindowEnd          time.Time `json:"window_end"`
	Timestamp          time.Time `json:"timestamp"`
}

// NewNotificationEvent собирает событие из подписки и созданного уведомления
func NewNotificationEvent(alert *models.Alert, n *models.AlertNotification) NotificationEvent {
	return NotificationEvent{
		NotificationID:     n.ID,
		AlertID:            alert.ID,
		UserID:             alert.UserID,
		AlertName:          alert.Name,
		NotificationMethod: n.NotificationMethod,
		Contact:            alert.NotificationContact,
		CrimeIDs:           n.CrimeIDs,
		WindowStart:        n.WindowStart,
		WindowEnd:          n.WindowEnd,
		Timestamp:          n.SentAt,
	}
}

// NotificationPublisher - интерфейс для публикации событий об уведомлениях
type NotificationPublisher interface {
	Publish(ctx context.Context, event NotificationEvent) error
}

// RedisNotificationPublisher - реализация NotificationPublisher поверх списка Redis
type RedisNotificationPublisher struct {
	redisClient *redis.Client
}

// NewRedisNotificationPublisher создает новый RedisNotificationPublisher
func NewRedisNotificationPublisher(client *redis.Client) *RedisNotificationPublisher {
	return &RedisNotificationPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisNotificationPublisher) Publish(ctx context.Context, event NotificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event to Redis: %w", err)
	}
	return nil
}
