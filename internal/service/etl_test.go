package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestETLService(t *testing.T) (*etlService, *mocks.MockETLRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockETLRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewETLService(repoMock, logger).(*etlService)
	svc.now = func() time.Time { return testNow }
	return svc, repoMock
}

func TestTransitionJob_StateMachine(t *testing.T) {
	testCases := []struct {
		from models.JobStatus
		to   models.JobStatus
		ok   bool
	}{
		{models.JobScheduled, models.JobRunning, true},
		{models.JobScheduled, models.JobCanceled, true},
		{models.JobScheduled, models.JobCompleted, false},
		{models.JobRunning, models.JobCompleted, true},
		{models.JobRunning, models.JobFailed, true},
		{models.JobRunning, models.JobCanceled, true},
		{models.JobRunning, models.JobScheduled, false},
		{models.JobCompleted, models.JobRunning, false},
		{models.JobFailed, models.JobRunning, false},
		{models.JobCanceled, models.JobScheduled, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			svc, repoMock := newTestETLService(t)
			ctx := context.Background()

			repoMock.EXPECT().GetJob(ctx, int64(1)).Return(&models.ETLJob{ID: 1, Status: tc.from}, nil)
			if tc.ok {
				repoMock.EXPECT().TransitionJob(ctx, gomock.Any(), tc.from).Return(nil)
			}

			job, err := svc.TransitionJob(ctx, 1, models.JobTransition{Status: tc.to})

			if !tc.ok {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, job.Status)
			assert.Equal(t, tc.to.IsTerminal(), job.EndTime != nil)
		})
	}
}

func TestTransitionJob_FailedKeepsErrorDetails(t *testing.T) {
	svc, repoMock := newTestETLService(t)
	ctx := context.Background()
	started := testNow.Add(-time.Minute)
	details := json.RawMessage(`{"row":17}`)

	repoMock.EXPECT().GetJob(ctx, int64(3)).Return(&models.ETLJob{ID: 3, Status: models.JobRunning, StartTime: &started}, nil)
	repoMock.EXPECT().
		TransitionJob(ctx, gomock.Any(), models.JobRunning).
		DoAndReturn(func(ctx context.Context, job *models.ETLJob, from models.JobStatus) error {
			assert.Equal(t, "bad row", job.ErrorMessage)
			assert.JSONEq(t, `{"row":17}`, string(job.ErrorDetails))
			assert.Equal(t, started, *job.StartTime)
			assert.Equal(t, testNow, *job.EndTime)
			return nil
		})

	job, err := svc.TransitionJob(ctx, 3, models.JobTransition{
		Status:       models.JobFailed,
		ErrorMessage: "bad row",
		ErrorDetails: details,
	})

	require.NoError(t, err)
	assert.Equal(t, models.JobFailed, job.Status)
}

func TestTransitionJob_ConcurrentChangeIsConflict(t *testing.T) {
	svc, repoMock := newTestETLService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetJob(ctx, int64(4)).Return(&models.ETLJob{ID: 4, Status: models.JobScheduled}, nil)
	repoMock.EXPECT().TransitionJob(ctx, gomock.Any(), models.JobScheduled).Return(ErrConflict)

	_, err := svc.TransitionJob(ctx, 4, models.JobTransition{Status: models.JobRunning})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateJobCounters(t *testing.T) {
	svc, repoMock := newTestETLService(t)
	ctx := context.Background()
	current := models.JobCounters{Processed: 10, Created: 4}

	repoMock.EXPECT().GetJob(ctx, int64(2)).Return(&models.ETLJob{ID: 2, Status: models.JobRunning, Counters: current}, nil).Times(2)

	_, err := svc.UpdateJobCounters(ctx, 2, models.JobCounters{Processed: 9, Created: 5})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "records_processed")

	next := models.JobCounters{Processed: 12, Created: 4, Failed: 1}
	repoMock.EXPECT().UpdateJobCounters(ctx, int64(2), next).Return(nil)
	job, err := svc.UpdateJobCounters(ctx, 2, next)
	require.NoError(t, err)
	assert.Equal(t, next, job.Counters)
}

func TestCreateJob_MustStartScheduledOrRunning(t *testing.T) {
	svc, repoMock := newTestETLService(t)
	ctx := context.Background()

	err := svc.CreateJob(ctx, &models.ETLJob{JobID: "nightly", Status: models.JobCompleted})
	assert.ErrorIs(t, err, ErrInvalidInput)

	job := &models.ETLJob{JobID: "nightly", DataSourceID: 1, Status: models.JobRunning}
	repoMock.EXPECT().CreateJob(ctx, job).Return(nil)
	require.NoError(t, svc.CreateJob(ctx, job))
	assert.Equal(t, testNow, *job.StartTime)
	assert.JSONEq(t, `{}`, string(job.Parameters))
}

func TestTriggerSync(t *testing.T) {
	svc, repoMock := newTestETLService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetDataSource(ctx, int64(6)).Return(&models.DataSource{ID: 6}, nil)
	repoMock.EXPECT().
		CreateJob(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, job *models.ETLJob) error {
			assert.Equal(t, models.JobRunning, job.Status)
			assert.Contains(t, job.JobID, "manual_sync_6_")
			job.ID = 40
			return nil
		})

	job, err := svc.TriggerSync(ctx, 6)

	require.NoError(t, err)
	assert.Equal(t, int64(40), job.ID)
	assert.Equal(t, testNow, *job.StartTime)
}

func TestTriggerSync_UnknownSource(t *testing.T) {
	svc, repoMock := newTestETLService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetDataSource(ctx, int64(6)).Return(nil, ErrNotFound)

	_, err := svc.TriggerSync(ctx, 6)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDataSource_Validation(t *testing.T) {
	svc, repoMock := newTestETLService(t)
	ctx := context.Background()

	err := svc.CreateDataSource(ctx, &models.DataSource{Name: "Feed", AgencyID: 1, SourceType: "carrier_pigeon", CronExpression: "every day"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "source_type")
	assert.Contains(t, vErr.Fields, "cron_expression")

	ds := &models.DataSource{Name: "Feed", AgencyID: 1, SourceType: "api", CronExpression: "0 2 * * *"}
	repoMock.EXPECT().CreateDataSource(ctx, ds).Return(nil)
	require.NoError(t, svc.CreateDataSource(ctx, ds))
	assert.Equal(t, "daily", ds.SyncFrequency)
}

func TestCreateRuleAndLog_Defaults(t *testing.T) {
	svc, repoMock := newTestETLService(t)
	ctx := context.Background()

	rule := &models.DataValidationRule{DataSourceID: 1, Name: "lat range", FieldName: "latitude", RuleType: "range"}
	repoMock.EXPECT().CreateRule(ctx, rule).Return(nil)
	require.NoError(t, svc.CreateRule(ctx, rule))
	assert.Equal(t, "warn", rule.ErrorAction)
	assert.Equal(t, 1, rule.Priority)

	err := svc.CreateLog(ctx, &models.ETLJobLog{JobID: 1, Level: "debug", Message: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	entry := &models.ETLJobLog{JobID: 1, Message: "row skipped"}
	repoMock.EXPECT().CreateLog(ctx, entry).Return(nil)
	require.NoError(t, svc.CreateLog(ctx, entry))
	assert.Equal(t, "info", entry.Level)
}
