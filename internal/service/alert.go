package service

//go:generate mockgen -source=alert.go -destination=mocks/alert_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/crime_analysis_system/internal/config"
	"github.com/shenikar/crime_analysis_system/internal/metrics"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

const (
	defaultSearchDistance     = 1000
	defaultNotificationMethod = "email"
)

var notificationMethods = map[string]bool{"email": true, "sms": true, "push": true, "in_app": true}

// AlertRepository определяет контракт хранилища подписок и уведомлений
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id int64) (*models.Alert, error)
	ListByUser(ctx context.Context, userID int64, activeOnly bool) ([]*models.Alert, error)
	ListActive(ctx context.Context) ([]*models.Alert, error)
	Update(ctx context.Context, alert *models.Alert) error
	Delete(ctx context.Context, id int64) error
	MarkChecked(ctx context.Context, id int64, at time.Time) error
	FindMatches(ctx context.Context, q models.MatchQuery) ([]*models.CrimeMatch, int, error)
	// CreateNotification возвращает false, если уведомление с таким ключом уже есть
	CreateNotification(ctx context.Context, n *models.AlertNotification) (bool, error)
	ListNotifications(ctx context.Context, userID int64) ([]*models.AlertNotification, error)
	GetNotificationForUser(ctx context.Context, id, userID int64) (*models.AlertNotification, error)
	UpdateNotificationStatus(ctx context.Context, id int64, status models.NotificationStatus, message string) error
}

// AlertLocker - распределенная блокировка оценки подписки
type AlertLocker interface {
	Acquire(ctx context.Context, alertID int64, ttl time.Duration) (token string, ok bool, err error)
	Release(ctx context.Context, alertID int64, token string) error
}

// AlertService определяет контракт работы с подписками
type AlertService interface {
	CreateAlert(ctx context.Context, alert *models.Alert) error
	GetAlert(ctx context.Context, userID, id int64) (*models.Alert, error)
	ListAlerts(ctx context.Context, userID int64, activeOnly bool) ([]*models.Alert, error)
	UpdateAlert(ctx context.Context, userID int64, alert *models.Alert) error
	DeleteAlert(ctx context.Context, userID, id int64) error
	RecentMatches(ctx context.Context, userID, id int64) (*models.MatchResult, error)
	FindMatches(ctx context.Context, alert *models.Alert, limit int) (*models.MatchResult, error)
	ListDueAlerts(ctx context.Context, now time.Time) ([]*models.Alert, error)
	EvaluateAlert(ctx context.Context, alert *models.Alert, now time.Time) (*models.AlertNotification, error)
	EvaluateForUser(ctx context.Context, userID, id int64) (*models.AlertNotification, error)
	ListNotifications(ctx context.Context, userID int64) ([]*models.AlertNotification, error)
	GetNotification(ctx context.Context, userID, id int64) (*models.AlertNotification, error)
	UpdateNotificationStatus(ctx context.Context, userID, id int64, status models.NotificationStatus, message string) (*models.AlertNotification, error)
}

type alertService struct {
	repo      AlertRepository
	locker    AlertLocker
	publisher webhook.NotificationPublisher
	logger    *logrus.Logger
	pageSize  int
	realtime  time.Duration
	lockTTL   time.Duration
	now       func() time.Time
}

func NewAlertService(repo AlertRepository, locker AlertLocker, publisher webhook.NotificationPublisher, logger *logrus.Logger, cfg *config.Config) AlertService {
	return &alertService{
		repo:      repo,
		locker:    locker,
		publisher: publisher,
		logger:    logger,
		pageSize:  cfg.MatchPageSize,
		realtime:  cfg.EvaluatorRealtimeInterval,
		lockTTL:   cfg.EvaluatorLockTTL,
		now:       time.Now,
	}
}

// CreateAlert проверяет и сохраняет подписку
func (s *alertService) CreateAlert(ctx context.Context, alert *models.Alert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "CreateAlert",
		"user_id": alert.UserID,
	})

	applyAlertDefaults(alert)
	if err := validateAlert(alert); err != nil {
		log.WithError(err).Warn("Alert rejected")
		return err
	}

	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}
	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return nil
}

// GetAlert возвращает подписку владельца. Чужая подписка неотличима от отсутствующей.
func (s *alertService) GetAlert(ctx context.Context, userID, id int64) (*models.Alert, error) {
	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	if alert.UserID != userID {
		return nil, fmt.Errorf("service: could not get alert: %w", ErrNotFound)
	}
	return alert, nil
}

func (s *alertService) ListAlerts(ctx context.Context, userID int64, activeOnly bool) ([]*models.Alert, error) {
	alerts, err := s.repo.ListByUser(ctx, userID, activeOnly)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListAlerts").Error("Failed to list alerts")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

func (s *alertService) UpdateAlert(ctx context.Context, userID int64, alert *models.Alert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateAlert",
		"alert_id": alert.ID,
	})

	existing, err := s.GetAlert(ctx, userID, alert.ID)
	if err != nil {
		return err
	}
	alert.UserID = existing.UserID
	alert.LastCheckedAt = existing.LastCheckedAt
	alert.CreatedAt = existing.CreatedAt

	applyAlertDefaults(alert)
	if err := validateAlert(alert); err != nil {
		log.WithError(err).Warn("Alert update rejected")
		return err
	}

	if err := s.repo.Update(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to update alert in repository")
		return fmt.Errorf("service: could not update alert: %w", err)
	}
	return nil
}

func (s *alertService) DeleteAlert(ctx context.Context, userID, id int64) error {
	if _, err := s.GetAlert(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("alert_id", id).Error("Failed to delete alert")
		return fmt.Errorf("service: could not delete alert: %w", err)
	}
	return nil
}

// RecentMatches возвращает ближайшие инциденты подписки, не больше размера страницы
func (s *alertService) RecentMatches(ctx context.Context, userID, id int64) (*models.MatchResult, error) {
	alert, err := s.GetAlert(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.FindMatches(ctx, alert, s.pageSize)
}

// FindMatches ищет активные инциденты нужных типов в радиусе подписки, ближайшие первыми.
// Пустой набор типов дает пустой результат без обращения к БД.
func (s *alertService) FindMatches(ctx context.Context, alert *models.Alert, limit int) (*models.MatchResult, error) {
	result := &models.MatchResult{AlertID: alert.ID, Matches: []*models.CrimeMatch{}}
	if len(alert.CrimeTypeIDs) == 0 {
		return result, nil
	}

	q := NewMatchQuery(alert, limit)
	matches, total, err := s.repo.FindMatches(ctx, q)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"method":   "FindMatches",
			"alert_id": alert.ID,
		}).Error("Failed to query matches")
		return nil, fmt.Errorf("service: could not find matches: %w", err)
	}

	ranked, kept := rankMatches(matches, q.RadiusMeters, limit)
	if dropped := len(matches) - kept; dropped > 0 {
		total -= dropped
	}
	result.TotalMatches = total
	result.Matches = ranked
	return result, nil
}

// ListDueAlerts возвращает активные подписки, которые пора проверить
func (s *alertService) ListDueAlerts(ctx context.Context, now time.Time) ([]*models.Alert, error) {
	alerts, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active alerts: %w", err)
	}
	due := make([]*models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if IsDue(a, now, s.realtime) {
			due = append(due, a)
		}
	}
	return due, nil
}

// EvaluateAlert ищет новые инциденты в окне (last_checked_at, now] и пишет одно уведомление на окно.
// Возвращает nil без ошибки, если новых инцидентов нет или уведомление за это окно уже создано.
func (s *alertService) EvaluateAlert(ctx context.Context, alert *models.Alert, now time.Time) (*models.AlertNotification, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "EvaluateAlert",
		"alert_id": alert.ID,
	})

	token, ok, err := s.locker.Acquire(ctx, alert.ID, s.lockTTL)
	if err != nil {
		metrics.ObserveEvaluation(metrics.EvaluationError)
		log.WithError(err).Error("Failed to acquire alert lock")
		return nil, fmt.Errorf("service: could not lock alert: %w", err)
	}
	if !ok {
		metrics.ObserveEvaluation(metrics.EvaluationLocked)
		log.Debug("Alert is being evaluated elsewhere")
		return nil, ErrAlertLocked
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), alert.ID, token); err != nil {
			log.WithError(err).Warn("Failed to release alert lock")
		}
	}()

	windowStart := alert.CreatedAt.UTC()
	if alert.LastCheckedAt != nil {
		windowStart = alert.LastCheckedAt.UTC()
	}
	windowEnd := now.UTC()

	var matches []*models.CrimeMatch
	if len(alert.CrimeTypeIDs) > 0 {
		q := NewMatchQuery(alert, 0).InWindow(windowStart, windowEnd)
		q.ExcludeNotified = true
		found, _, err := s.repo.FindMatches(ctx, q)
		if err != nil {
			metrics.ObserveEvaluation(metrics.EvaluationError)
			log.WithError(err).Error("Failed to query matches")
			return nil, fmt.Errorf("service: could not find matches: %w", err)
		}
		matches, _ = rankMatches(found, q.RadiusMeters, 0)
	}

	if len(matches) == 0 {
		if err := s.repo.MarkChecked(ctx, alert.ID, windowEnd); err != nil {
			metrics.ObserveEvaluation(metrics.EvaluationError)
			return nil, fmt.Errorf("service: could not mark alert checked: %w", err)
		}
		metrics.ObserveEvaluation(metrics.EvaluationEmpty)
		return nil, nil
	}

	crimeIDs := make([]int64, len(matches))
	for i, m := range matches {
		crimeIDs[i] = m.CrimeID
	}
	n := &models.AlertNotification{
		AlertID:            alert.ID,
		CrimeIDs:           crimeIDs,
		SentAt:             windowEnd,
		NotificationMethod: alert.NotificationMethod,
		Status:             models.NotificationPending,
		IdempotencyKey:     IdempotencyKey(alert.ID, windowEnd, CheckInterval(alert.CheckFrequency, s.realtime)),
		WindowStart:        windowStart,
		WindowEnd:          windowEnd,
	}

	created, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		metrics.ObserveEvaluation(metrics.EvaluationError)
		log.WithError(err).Error("Failed to create notification")
		return nil, fmt.Errorf("service: could not create notification: %w", err)
	}
	if !created {
		// окно уже закрыто другим оценщиком; last_checked_at не двигаем,
		// чтобы эти инциденты попали в следующее окно
		metrics.ObserveEvaluation(metrics.EvaluationDuplicate)
		log.WithField("idempotency_key", n.IdempotencyKey).Info("Notification for this window already exists")
		return nil, nil
	}

	if err := s.repo.MarkChecked(ctx, alert.ID, windowEnd); err != nil {
		metrics.ObserveEvaluation(metrics.EvaluationError)
		return nil, fmt.Errorf("service: could not mark alert checked: %w", err)
	}
	alert.LastCheckedAt = &windowEnd
	metrics.ObserveEvaluation(metrics.EvaluationMatched)
	metrics.NotificationCreated()

	if err := s.publisher.Publish(ctx, webhook.NewNotificationEvent(alert, n)); err != nil {
		// уведомление уже сохранено и доступно через API
		log.WithError(err).Error("Failed to publish notification event")
	}

	log.WithFields(logrus.Fields{
		"notification_id": n.ID,
		"matches":         len(crimeIDs),
	}).Info("Alert notification created")
	return n, nil
}

// EvaluateForUser выполняет оценку по запросу владельца
func (s *alertService) EvaluateForUser(ctx context.Context, userID, id int64) (*models.AlertNotification, error) {
	alert, err := s.GetAlert(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.EvaluateAlert(ctx, alert, s.now())
}

func (s *alertService) ListNotifications(ctx context.Context, userID int64) ([]*models.AlertNotification, error) {
	list, err := s.repo.ListNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}
	return list, nil
}

func (s *alertService) GetNotification(ctx context.Context, userID, id int64) (*models.AlertNotification, error) {
	n, err := s.repo.GetNotificationForUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get notification: %w", err)
	}
	return n, nil
}

// UpdateNotificationStatus меняет статус уведомления владельца
func (s *alertService) UpdateNotificationStatus(ctx context.Context, userID, id int64, status models.NotificationStatus, message string) (*models.AlertNotification, error) {
	switch status {
	case models.NotificationPending, models.NotificationSent, models.NotificationFailed,
		models.NotificationReceived, models.NotificationRead:
	default:
		return nil, NewValidationError("status", fmt.Sprintf("%q is not a valid choice.", status))
	}

	n, err := s.repo.GetNotificationForUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get notification: %w", err)
	}
	if err := s.repo.UpdateNotificationStatus(ctx, id, status, message); err != nil {
		return nil, fmt.Errorf("service: could not update notification: %w", err)
	}
	n.Status = status
	n.StatusMessage = message
	return n, nil
}

func applyAlertDefaults(alert *models.Alert) {
	if alert.SearchDistanceMeters == 0 {
		alert.SearchDistanceMeters = defaultSearchDistance
	}
	if alert.NotificationMethod == "" {
		alert.NotificationMethod = defaultNotificationMethod
	}
	if alert.CheckFrequency == "" {
		alert.CheckFrequency = models.FrequencyDaily
	}
}

func validateAlert(alert *models.Alert) error {
	fields := map[string]string{}
	if strings.TrimSpace(alert.Name) == "" {
		fields["name"] = "This field is required."
	}
	if alert.SearchDistanceMeters <= 0 {
		fields["search_distance_meters"] = "Ensure this value is greater than 0."
	}
	if !notificationMethods[alert.NotificationMethod] {
		fields["notification_method"] = fmt.Sprintf("%q is not a valid choice.", alert.NotificationMethod)
	}
	switch alert.CheckFrequency {
	case models.FrequencyRealtime, models.FrequencyHourly, models.FrequencyDaily, models.FrequencyWeekly:
	default:
		fields["check_frequency"] = fmt.Sprintf("%q is not a valid choice.", alert.CheckFrequency)
	}
	if err := models.ValidatePoint(alert.Location); err != nil {
		fields["location"] = err.Error()
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

