package alerting

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
	"github.com/shenikar/crime_analysis_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScheduler(t *testing.T) (*Scheduler, *mocks.MockAlertService, time.Time) {
	ctrl := gomock.NewController(t)
	evaluator := mocks.NewMockAlertService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewScheduler(evaluator, logger, time.Minute)
	s.now = func() time.Time { return now }
	return s, evaluator, now
}

func TestRunOnce_EvaluatesEveryDueAlert(t *testing.T) {
	s, evaluator, now := newTestScheduler(t)
	ctx := context.Background()

	locked := &models.Alert{ID: 1}
	matched := &models.Alert{ID: 2}
	failing := &models.Alert{ID: 3}
	empty := &models.Alert{ID: 4}

	evaluator.EXPECT().ListDueAlerts(ctx, now).Return([]*models.Alert{locked, matched, failing, empty}, nil)
	evaluator.EXPECT().EvaluateAlert(ctx, locked, now).Return(nil, service.ErrAlertLocked)
	evaluator.EXPECT().EvaluateAlert(ctx, matched, now).Return(&models.AlertNotification{ID: 10}, nil)
	evaluator.EXPECT().EvaluateAlert(ctx, failing, now).Return(nil, errors.New("db is down"))
	evaluator.EXPECT().EvaluateAlert(ctx, empty, now).Return(nil, nil)

	created, err := s.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestRunOnce_ListError(t *testing.T) {
	s, evaluator, now := newTestScheduler(t)
	ctx := context.Background()

	evaluator.EXPECT().ListDueAlerts(ctx, now).Return(nil, errors.New("timeout"))

	created, err := s.RunOnce(ctx)

	require.Error(t, err)
	assert.Zero(t, created)
	assert.ErrorContains(t, err, "could not list due alerts")
}

func TestRunOnce_StopsOnCanceledContext(t *testing.T) {
	s, evaluator, now := newTestScheduler(t)
	ctx, cancel := context.WithCancel(context.Background())

	first := &models.Alert{ID: 1}
	second := &models.Alert{ID: 2}

	evaluator.EXPECT().ListDueAlerts(ctx, now).Return([]*models.Alert{first, second}, nil)
	evaluator.EXPECT().EvaluateAlert(ctx, first, now).DoAndReturn(
		func(ctx context.Context, a *models.Alert, now time.Time) (*models.AlertNotification, error) {
			cancel()
			return &models.AlertNotification{ID: 1}, nil
		})

	created, err := s.RunOnce(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, created)
}

func TestStart_StopsOnCancel(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	s.tick = time.Hour
	ctx, cancel := context.WithCancel(context.Background())

	done, err := s.Start(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
