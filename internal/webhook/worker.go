package webhook

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

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_analysis_system/internal/config"
	"github.com/shenikar/crime_analysis_system/internal/metrics"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/sirupsen/logrus"
)

// NotificationStatusUpdater обновляет статус уведомления после попытки доставки
type NotificationStatusUpdater interface {
	UpdateNotificationStatus(ctx context.Context, id int64, status models.NotificationStatus, message string) error
}

// NotificationWorker - забирает события из очереди и отправляет их на вебхук интеграции
type NotificationWorker struct {
	redisClient *redis.Client
	statuses    NotificationStatusUpdater
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewNotificationWorker создает новый NotificationWorker
func NewNotificationWorker(redisClient *redis.Client, statuses NotificationStatusUpdater, logger *logrus.Logger, cfg *config.Config) *NotificationWorker {
	return &NotificationWorker{
		redisClient: redisClient,
		statuses:    statuses,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди. done закрывается после остановки.
func (w *NotificationWorker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.Info("Starting notification worker...")
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
				// 0 - ждать бесконечно, выход по отмене контекста
				result, err := w.redisClient.BRPop(ctx, 0, notificationQueueKey).Result()
				if err != nil {
					if ctx.Err() != nil {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop notification event from Redis")
					sleepCtx(ctx, w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event NotificationEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal notification event from Redis")
					continue
				}

				w.processEvent(ctx, event, payload)
			}
		}
	}()
	return done
}

func (w *NotificationWorker) processEvent(ctx context.Context, event NotificationEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"notification_id": event.NotificationID,
		"alert_id":        event.AlertID,
	})
	log.Debug("Processing notification event...")

	if w.cfg.WebhookURL == "" {
		// уведомление остается pending и читается через API
		log.Debug("Webhook URL is not configured. Notification left pending.")
		metrics.ObserveWebhookDelivery("skipped")
		return
	}

	lastErr := w.deliver(ctx, log, rawPayload)
	if lastErr == nil {
		log.Info("Webhook delivered successfully.")
		metrics.ObserveWebhookDelivery("delivered")
		w.setStatus(ctx, log, event.NotificationID, models.NotificationSent, "")
		return
	}

	log.WithError(lastErr).Errorf("Failed to deliver webhook after %d retries.", w.cfg.WebhookMaxRetries)
	metrics.ObserveWebhookDelivery("failed")
	w.setStatus(ctx, log, event.NotificationID, models.NotificationFailed, lastErr.Error())
}

// deliver отправляет payload с экспоненциальной задержкой между попытками
func (w *NotificationWorker) deliver(ctx context.Context, log *logrus.Entry, rawPayload string) error {
	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			log.Warnf("Retrying webhook in %v. Retries left: %d", delay, maxRetries-i)
			if !sleepCtx(ctx, delay) {
				return ctx.Err()
			}
			delay *= 2
		}

		lastErr = w.send(ctx, rawPayload)
		if lastErr == nil {
			return nil
		}
		log.WithError(lastErr).Warn("Webhook attempt failed")
	}
	return lastErr
}

func (w *NotificationWorker) send(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если задан WEBHOOK_SECRET
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status code %d", resp.StatusCode)
	}
	return nil
}

func (w *NotificationWorker) setStatus(ctx context.Context, log *logrus.Entry, id int64, status models.NotificationStatus, message string) {
	if err := w.statuses.UpdateNotificationStatus(ctx, id, status, message); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.WithError(err).WithField("status", status).Error("Failed to update notification status")
	}
}

// sleepCtx ждет d или отмену контекста. Возвращает false, если контекст отменен.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
