package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAnalyticsService(t *testing.T) (*analyticsService, *mocks.MockAnalyticsRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAnalyticsRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewAnalyticsService(repoMock, logger).(*analyticsService)
	svc.now = func() time.Time { return testNow }
	return svc, repoMock
}

func TestTrainThenDeployModel(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()
	stored := &models.PredictiveModel{ID: 2, Name: "Hotspots", ModelType: "hotspot", ModelVersion: "1.0", Status: models.ModelStatusDraft}

	repoMock.EXPECT().GetModel(ctx, int64(2)).Return(stored, nil).Times(2)
	repoMock.EXPECT().UpdateModel(ctx, stored).Return(nil).Times(2)

	trained, err := svc.TrainModel(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.ModelStatusTraining, trained.Status)
	assert.Equal(t, testNow, *trained.LastTrained)

	deployed, err := svc.DeployModel(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.ModelStatusActive, deployed.Status)
}

func TestDeployModel_RequiresTraining(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetModel(ctx, int64(2)).Return(&models.PredictiveModel{ID: 2, Status: models.ModelStatusDraft}, nil)

	_, err := svc.DeployModel(ctx, 2)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Model must complete training before deployment", vErr.Fields["status"])
}

func TestCreateModel_Validation(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()

	err := svc.CreateModel(ctx, &models.PredictiveModel{Name: "X", ModelType: "neural", ModelVersion: "1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	m := &models.PredictiveModel{Name: "X", ModelType: "clustering", ModelVersion: "1"}
	repoMock.EXPECT().CreateModel(ctx, m).Return(nil)
	require.NoError(t, svc.CreateModel(ctx, m))
	assert.Equal(t, models.ModelStatusDraft, m.Status)
	assert.JSONEq(t, `{}`, string(m.Parameters))
}

func TestVerifyPrediction(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()
	p := &models.Prediction{ID: 9, ModelID: 2}

	repoMock.EXPECT().GetPrediction(ctx, int64(9)).Return(p, nil)
	repoMock.EXPECT().UpdatePrediction(ctx, p).Return(nil)

	verified, err := svc.VerifyPrediction(ctx, 9)

	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.Equal(t, testNow, *verified.VerifiedAt)
}

func TestCreatePrediction_Validation(t *testing.T) {
	svc, _ := newTestAnalyticsService(t)
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	openRing := orb.Polygon{orb.Ring{{36.8, -1.3}, {36.9, -1.3}, {36.9, -1.2}}}

	err := svc.CreatePrediction(context.Background(), &models.Prediction{
		ModelID:             2,
		PredictionStartDate: start,
		PredictionEndDate:   start.Add(-time.Hour),
		ConfidenceLevel:     1.5,
		Area:                openRing,
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "prediction_end_date")
	assert.Contains(t, vErr.Fields, "confidence_level")
	assert.Contains(t, vErr.Fields, "area")
}

func TestProcessRequest(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()
	pending := &models.AnalysisRequest{ID: 4, Status: models.AnalysisPending}

	repoMock.EXPECT().GetRequest(ctx, int64(4)).Return(pending, nil)
	repoMock.EXPECT().UpdateRequest(ctx, pending).Return(nil)

	r, err := svc.ProcessRequest(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, models.AnalysisProcessing, r.Status)

	repoMock.EXPECT().GetRequest(ctx, int64(5)).Return(&models.AnalysisRequest{ID: 5, Status: models.AnalysisCompleted}, nil)
	_, err = svc.ProcessRequest(ctx, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateRequest_CompletedSetsTimestamp(t *testing.T) {
	svc, repoMock := newTestAnalyticsService(t)
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &models.AnalysisRequest{ID: 4, UserID: 8, Title: "Q1", StartDate: start, EndDate: start.AddDate(0, 3, 0), Status: models.AnalysisProcessing}
	update := &models.AnalysisRequest{ID: 4, UserID: 99, Title: "Q1", StartDate: start, EndDate: start.AddDate(0, 3, 0), Status: models.AnalysisCompleted}

	repoMock.EXPECT().GetRequest(ctx, int64(4)).Return(existing, nil)
	repoMock.EXPECT().UpdateRequest(ctx, update).Return(nil)

	require.NoError(t, svc.UpdateRequest(ctx, update))
	assert.Equal(t, int64(8), update.UserID)
	assert.Equal(t, testNow, *update.CompletedAt)
}
