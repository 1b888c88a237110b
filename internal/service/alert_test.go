package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/crime_analysis_system/internal/config"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service/mocks"
	"github.com/shenikar/crime_analysis_system/internal/webhook"
	webhookmocks "github.com/shenikar/crime_analysis_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type alertMocks struct {
	repo      *mocks.MockAlertRepository
	locker    *mocks.MockAlertLocker
	publisher *webhookmocks.MockNotificationPublisher
}

func newTestAlertService(t *testing.T) (*alertService, alertMocks) {
	ctrl := gomock.NewController(t)
	m := alertMocks{
		repo:      mocks.NewMockAlertRepository(ctrl),
		locker:    mocks.NewMockAlertLocker(ctrl),
		publisher: webhookmocks.NewMockNotificationPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		MatchPageSize:             10,
		EvaluatorRealtimeInterval: time.Minute,
		EvaluatorLockTTL:          2 * time.Minute,
	}
	svc := NewAlertService(m.repo, m.locker, m.publisher, logger, cfg).(*alertService)
	svc.now = func() time.Time { return testNow }
	return svc, m
}

func nairobiAlert() *models.Alert {
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return &models.Alert{
		ID:                   5,
		Name:                 "Home",
		UserID:               8,
		CrimeTypeIDs:         []int64{1},
		Location:             models.NewPoint(-1.2864, 36.8172),
		SearchDistanceMeters: 500,
		IsActive:             true,
		NotificationMethod:   "email",
		CheckFrequency:       models.FrequencyHourly,
		CreatedAt:            created,
	}
}

func TestCreateAlert_Defaults(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{Name: "Office", UserID: 8, Location: models.NewPoint(-1.28, 36.82)}

	m.repo.EXPECT().Create(ctx, alert).Return(nil)

	require.NoError(t, svc.CreateAlert(ctx, alert))
	assert.Equal(t, 1000, alert.SearchDistanceMeters)
	assert.Equal(t, "email", alert.NotificationMethod)
	assert.Equal(t, models.FrequencyDaily, alert.CheckFrequency)
}

func TestCreateAlert_Invalid(t *testing.T) {
	svc, _ := newTestAlertService(t)
	alert := &models.Alert{
		Name:                 "",
		SearchDistanceMeters: -5,
		NotificationMethod:   "pigeon",
		CheckFrequency:       "monthly",
		Location:             models.NewPoint(95, 36.82),
	}

	err := svc.CreateAlert(context.Background(), alert)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	for _, field := range []string{"name", "search_distance_meters", "notification_method", "check_frequency", "location"} {
		assert.Contains(t, vErr.Fields, field)
	}
}

func TestGetAlert_OtherOwnerIsNotFound(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()

	m.repo.EXPECT().GetByID(ctx, int64(5)).Return(nairobiAlert(), nil)

	_, err := svc.GetAlert(ctx, 99, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindMatches_EmptyTypeSetSkipsQuery(t *testing.T) {
	svc, _ := newTestAlertService(t)
	alert := nairobiAlert()
	alert.CrimeTypeIDs = nil

	// Ожидания: хранилище не вызывается
	result, err := svc.FindMatches(context.Background(), alert, 10)

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalMatches)
	assert.Empty(t, result.Matches)
}

func TestRecentMatches(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	alert := nairobiAlert()

	m.repo.EXPECT().GetByID(ctx, alert.ID).Return(alert, nil)
	m.repo.EXPECT().
		FindMatches(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, q models.MatchQuery) ([]*models.CrimeMatch, int, error) {
			assert.Equal(t, 10, q.Limit)
			assert.Equal(t, 500.0, q.RadiusMeters)
			assert.Nil(t, q.CreatedAfter)
			return []*models.CrimeMatch{
				{CrimeID: 11, DistanceMeters: 400},
				{CrimeID: 12, DistanceMeters: 500.4},
			}, 2, nil
		})

	result, err := svc.RecentMatches(ctx, alert.UserID, alert.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalMatches)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, int64(11), result.Matches[0].CrimeID)
}

func TestListDueAlerts(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	fresh := nairobiAlert()
	checked := testNow.Add(-10 * time.Minute)
	stale := nairobiAlert()
	stale.ID = 6
	stale.LastCheckedAt = &checked

	m.repo.EXPECT().ListActive(ctx).Return([]*models.Alert{fresh, stale}, nil)

	due, err := svc.ListDueAlerts(ctx, testNow)

	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, fresh.ID, due[0].ID)
}

func TestEvaluateAlert_Locked(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	alert := nairobiAlert()

	m.locker.EXPECT().Acquire(ctx, alert.ID, 2*time.Minute).Return("", false, nil)

	n, err := svc.EvaluateAlert(ctx, alert, testNow)

	assert.ErrorIs(t, err, ErrAlertLocked)
	assert.Nil(t, n)
}

func TestEvaluateAlert_NoMatchesMarksChecked(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	alert := nairobiAlert()

	m.locker.EXPECT().Acquire(ctx, alert.ID, gomock.Any()).Return("tok", true, nil)
	m.repo.EXPECT().FindMatches(ctx, gomock.Any()).Return(nil, 0, nil)
	m.repo.EXPECT().MarkChecked(ctx, alert.ID, testNow).Return(nil)
	m.locker.EXPECT().Release(gomock.Any(), alert.ID, "tok").Return(nil)

	n, err := svc.EvaluateAlert(ctx, alert, testNow)

	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestEvaluateAlert_CreatesNotification(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	alert := nairobiAlert()

	m.locker.EXPECT().Acquire(ctx, alert.ID, gomock.Any()).Return("tok", true, nil)
	m.repo.EXPECT().
		FindMatches(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, q models.MatchQuery) ([]*models.CrimeMatch, int, error) {
			assert.True(t, q.ExcludeNotified)
			assert.Equal(t, 0, q.Limit)
			assert.Equal(t, alert.CreatedAt, *q.CreatedAfter)
			assert.Equal(t, testNow, *q.CreatedUntil)
			return []*models.CrimeMatch{
				{CrimeID: 31, DistanceMeters: 300},
				{CrimeID: 30, DistanceMeters: 100},
			}, 2, nil
		})
	m.repo.EXPECT().
		CreateNotification(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, n *models.AlertNotification) (bool, error) {
			assert.Equal(t, []int64{30, 31}, n.CrimeIDs)
			assert.Equal(t, models.NotificationPending, n.Status)
			assert.Equal(t, "5:2024-06-01T10:00:00Z", n.IdempotencyKey)
			n.ID = 77
			return true, nil
		})
	m.repo.EXPECT().MarkChecked(ctx, alert.ID, testNow).Return(nil)
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, e webhook.NotificationEvent) error {
			assert.Equal(t, int64(77), e.NotificationID)
			assert.Equal(t, alert.UserID, e.UserID)
			return nil
		})
	m.locker.EXPECT().Release(gomock.Any(), alert.ID, "tok").Return(nil)

	n, err := svc.EvaluateAlert(ctx, alert, testNow)

	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, int64(77), n.ID)
	assert.Equal(t, testNow, *alert.LastCheckedAt)
}

func TestEvaluateAlert_LateIngestedCrimeIsNotified(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	alert := nairobiAlert()
	lastChecked := testNow.Add(-time.Hour)
	alert.LastCheckedAt = &lastChecked

	// источник сообщил о преступлении до прошлой проверки, а ETL загрузил его после
	reportedBeforeCheck := lastChecked.Add(-30 * time.Minute)

	m.locker.EXPECT().Acquire(ctx, alert.ID, gomock.Any()).Return("tok", true, nil)
	m.repo.EXPECT().
		FindMatches(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, q models.MatchQuery) ([]*models.CrimeMatch, int, error) {
			require.NotNil(t, q.CreatedAfter)
			require.NotNil(t, q.CreatedUntil)
			assert.Equal(t, lastChecked, *q.CreatedAfter)
			assert.Equal(t, testNow, *q.CreatedUntil)
			assert.True(t, q.ExcludeNotified)
			return []*models.CrimeMatch{
				{CrimeID: 42, ReportedAt: reportedBeforeCheck, DistanceMeters: 250},
			}, 1, nil
		})
	m.repo.EXPECT().
		CreateNotification(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, n *models.AlertNotification) (bool, error) {
			assert.Equal(t, []int64{42}, n.CrimeIDs)
			n.ID = 78
			return true, nil
		})
	m.repo.EXPECT().MarkChecked(ctx, alert.ID, testNow).Return(nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	m.locker.EXPECT().Release(gomock.Any(), alert.ID, "tok").Return(nil)

	n, err := svc.EvaluateAlert(ctx, alert, testNow)

	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, []int64{42}, n.CrimeIDs)
}

func TestEvaluateAlert_DuplicateWindowDoesNotMarkChecked(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	alert := nairobiAlert()

	m.locker.EXPECT().Acquire(ctx, alert.ID, gomock.Any()).Return("tok", true, nil)
	m.repo.EXPECT().FindMatches(ctx, gomock.Any()).Return([]*models.CrimeMatch{{CrimeID: 30, DistanceMeters: 100}}, 1, nil)
	m.repo.EXPECT().CreateNotification(ctx, gomock.Any()).Return(false, nil)
	m.locker.EXPECT().Release(gomock.Any(), alert.ID, "tok").Return(nil)

	n, err := svc.EvaluateAlert(ctx, alert, testNow)

	require.NoError(t, err)
	assert.Nil(t, n)
	assert.Nil(t, alert.LastCheckedAt)
}

func TestEvaluateAlert_PublishFailureStillSucceeds(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	alert := nairobiAlert()

	m.locker.EXPECT().Acquire(ctx, alert.ID, gomock.Any()).Return("tok", true, nil)
	m.repo.EXPECT().FindMatches(ctx, gomock.Any()).Return([]*models.CrimeMatch{{CrimeID: 30, DistanceMeters: 100}}, 1, nil)
	m.repo.EXPECT().CreateNotification(ctx, gomock.Any()).Return(true, nil)
	m.repo.EXPECT().MarkChecked(ctx, alert.ID, testNow).Return(nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))
	m.locker.EXPECT().Release(gomock.Any(), alert.ID, "tok").Return(nil)

	n, err := svc.EvaluateAlert(ctx, alert, testNow)

	require.NoError(t, err)
	assert.NotNil(t, n)
}

func TestEvaluateAlert_RepositoryErrorReleasesLock(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()
	alert := nairobiAlert()
	dbErr := errors.New("connection reset")

	m.locker.EXPECT().Acquire(ctx, alert.ID, gomock.Any()).Return("tok", true, nil)
	m.repo.EXPECT().FindMatches(ctx, gomock.Any()).Return(nil, 0, dbErr)
	m.locker.EXPECT().Release(gomock.Any(), alert.ID, "tok").Return(nil)

	_, err := svc.EvaluateAlert(ctx, alert, testNow)

	assert.ErrorIs(t, err, dbErr)
}

func TestGetNotification_ScopedToOwner(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()

	m.repo.EXPECT().GetNotificationForUser(ctx, int64(77), int64(99)).Return(nil, ErrNotFound)
	_, err := svc.GetNotification(ctx, 99, 77)
	assert.ErrorIs(t, err, ErrNotFound)

	m.repo.EXPECT().GetNotificationForUser(ctx, int64(77), int64(8)).Return(&models.AlertNotification{ID: 77, AlertID: 5}, nil)
	n, err := svc.GetNotification(ctx, 8, 77)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n.AlertID)
}

func TestUpdateNotificationStatus(t *testing.T) {
	svc, m := newTestAlertService(t)
	ctx := context.Background()

	_, err := svc.UpdateNotificationStatus(ctx, 8, 77, "archived", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	m.repo.EXPECT().GetNotificationForUser(ctx, int64(77), int64(99)).Return(nil, ErrNotFound)
	_, err = svc.UpdateNotificationStatus(ctx, 99, 77, models.NotificationRead, "")
	assert.ErrorIs(t, err, ErrNotFound)

	m.repo.EXPECT().GetNotificationForUser(ctx, int64(77), int64(8)).Return(&models.AlertNotification{ID: 77, Status: models.NotificationSent}, nil)
	m.repo.EXPECT().UpdateNotificationStatus(ctx, int64(77), models.NotificationRead, "seen").Return(nil)
	n, err := svc.UpdateNotificationStatus(ctx, 8, 77, models.NotificationRead, "seen")
	require.NoError(t, err)
	assert.Equal(t, models.NotificationRead, n.Status)
}
