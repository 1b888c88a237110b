package alerting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Evaluator - часть AlertService, нужная планировщику
type Evaluator interface {
	ListDueAlerts(ctx context.Context, now time.Time) ([]*models.Alert, error)
	EvaluateAlert(ctx context.Context, alert *models.Alert, now time.Time) (*models.AlertNotification, error)
}

// Scheduler периодически проверяет подписки, которым подошел срок
type Scheduler struct {
	evaluator Evaluator
	logger    *logrus.Logger
	tick      time.Duration
	now       func() time.Time
}

func NewScheduler(evaluator Evaluator, logger *logrus.Logger, tick time.Duration) *Scheduler {
	return &Scheduler{
		evaluator: evaluator,
		logger:    logger,
		tick:      tick,
		now:       time.Now,
	}
}

// Start запускает проверку по расписанию "@every tick". Пересекающиеся запуски пропускаются.
// done закрывается, когда последний запуск завершен.
func (s *Scheduler) Start(ctx context.Context) (<-chan struct{}, error) {
	cronLogger := cron.PrintfLogger(s.logger)
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger),
		cron.SkipIfStillRunning(cronLogger),
	))

	_, err := c.AddFunc(fmt.Sprintf("@every %s", s.tick), func() {
		if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
			s.logger.WithError(err).Error("Alert evaluation pass failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule alert evaluation: %w", err)
	}

	done := make(chan struct{})
	s.logger.WithField("tick", s.tick.String()).Info("Starting alert scheduler...")
	c.Start()
	go func() {
		defer close(done)
		<-ctx.Done()
		<-c.Stop().Done()
		s.logger.Info("Stopping alert scheduler.")
	}()
	return done, nil
}

// RunOnce проверяет все подписки, которым подошел срок, и возвращает число созданных уведомлений.
// Ошибка одной подписки не прерывает проход.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	now := s.now()
	due, err := s.evaluator.ListDueAlerts(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("could not list due alerts: %w", err)
	}

	created := 0
	for _, alert := range due {
		if ctx.Err() != nil {
			return created, ctx.Err()
		}
		n, err := s.evaluator.EvaluateAlert(ctx, alert, now)
		switch {
		case errors.Is(err, service.ErrAlertLocked):
			s.logger.WithField("alert_id", alert.ID).Debug("Alert is locked, skipping")
		case err != nil:
			s.logger.WithError(err).WithField("alert_id", alert.ID).Error("Failed to evaluate alert")
		case n != nil:
			created++
		}
	}

	s.logger.WithFields(logrus.Fields{
		"due":           len(due),
		"notifications": created,
	}).Debug("Alert evaluation pass finished")
	return created, nil
}
