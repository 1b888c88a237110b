package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReportService(t *testing.T) (*reportService, *mocks.MockReportRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewReportService(repoMock, logger).(*reportService), repoMock
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateReport_DefaultsAndValidation(t *testing.T) {
	svc, repoMock := newTestReportService(t)
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	err := svc.CreateReport(ctx, &models.Report{Title: "Q1", UserID: 8, StartDate: start, EndDate: start.Add(-time.Hour), Format: "docx"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "end_date")
	assert.Contains(t, vErr.Fields, "format")

	r := &models.Report{Title: "Q1", UserID: 8, StartDate: start, EndDate: start.AddDate(0, 3, 0), Format: "pdf"}
	repoMock.EXPECT().CreateReport(ctx, r).Return(nil)
	require.NoError(t, svc.CreateReport(ctx, r))
	assert.Equal(t, "pending", r.Status)
}

func TestGetReport_OtherOwnerIsNotFound(t *testing.T) {
	svc, repoMock := newTestReportService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetReport(ctx, int64(3)).Return(&models.Report{ID: 3, UserID: 8}, nil)

	_, err := svc.GetReport(ctx, 99, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegenerateReport(t *testing.T) {
	svc, repoMock := newTestReportService(t)
	ctx := context.Background()
	stored := &models.Report{ID: 3, UserID: 8, Status: "failed", StatusMessage: "renderer crashed"}

	repoMock.EXPECT().GetReport(ctx, int64(3)).Return(stored, nil)
	repoMock.EXPECT().UpdateReport(ctx, stored).Return(nil)

	r, err := svc.RegenerateReport(ctx, 8, 3)

	require.NoError(t, err)
	assert.Equal(t, "pending", r.Status)
	assert.Empty(t, r.StatusMessage)
}

func TestTemplateVisibility(t *testing.T) {
	svc, repoMock := newTestReportService(t)
	ctx := context.Background()
	public := &models.ReportTemplate{ID: 1, Name: "Monthly", IsPublic: true, OwnerID: int64Ptr(8), TemplateType: "standard", Format: "pdf"}
	private := &models.ReportTemplate{ID: 2, Name: "Mine", OwnerID: int64Ptr(8)}

	repoMock.EXPECT().GetTemplate(ctx, int64(1)).Return(public, nil).AnyTimes()
	repoMock.EXPECT().GetTemplate(ctx, int64(2)).Return(private, nil).AnyTimes()

	got, err := svc.GetTemplate(ctx, 99, 1)
	require.NoError(t, err)
	assert.Equal(t, "Monthly", got.Name)

	_, err = svc.GetTemplate(ctx, 99, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	// чужой публичный шаблон виден, но не изменяется
	err = svc.UpdateTemplate(ctx, 99, &models.ReportTemplate{ID: 1, Name: "Hijacked"})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.DeleteTemplate(ctx, 99, 1)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateTemplate_Defaults(t *testing.T) {
	svc, repoMock := newTestReportService(t)
	ctx := context.Background()
	tpl := &models.ReportTemplate{Name: "Executive", OwnerID: int64Ptr(8)}

	repoMock.EXPECT().CreateTemplate(ctx, tpl).Return(nil)

	require.NoError(t, svc.CreateTemplate(ctx, tpl))
	assert.Equal(t, "standard", tpl.TemplateType)
	assert.Equal(t, "pdf", tpl.Format)
	assert.JSONEq(t, `[]`, string(tpl.Sections))

	err := svc.CreateTemplate(ctx, &models.ReportTemplate{Name: "Bad", Sections: []byte(`{"a":1}`)})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "sections")
}

func TestCreateScheduled_UnknownTemplate(t *testing.T) {
	svc, repoMock := newTestReportService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetTemplate(ctx, int64(42)).Return(nil, ErrNotFound)

	err := svc.CreateScheduled(ctx, &models.ScheduledReport{
		Name:          "Weekly digest",
		UserID:        8,
		TemplateID:    42,
		Frequency:     "weekly",
		Hour:          9,
		DeliveryEmail: "w@example.com",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "template")
}

func TestCreateScheduled_Validation(t *testing.T) {
	svc, _ := newTestReportService(t)
	dow := 7

	err := svc.CreateScheduled(context.Background(), &models.ScheduledReport{
		Name:       "Digest",
		TemplateID: 1,
		Frequency:  "hourly",
		DayOfWeek:  &dow,
		Hour:       24,
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	for _, field := range []string{"frequency", "day_of_week", "hour", "delivery_email"} {
		assert.Contains(t, vErr.Fields, field)
	}
}

func TestToggleScheduled(t *testing.T) {
	svc, repoMock := newTestReportService(t)
	ctx := context.Background()
	stored := &models.ScheduledReport{ID: 6, UserID: 8, IsActive: true}

	repoMock.EXPECT().GetScheduled(ctx, int64(6)).Return(stored, nil)
	repoMock.EXPECT().UpdateScheduled(ctx, stored).Return(nil)

	sr, err := svc.ToggleScheduled(ctx, 8, 6)

	require.NoError(t, err)
	assert.False(t, sr.IsActive)
}

func TestPendingAndUpcoming(t *testing.T) {
	svc, repoMock := newTestReportService(t)
	ctx := context.Background()

	repoMock.EXPECT().ListReports(ctx, int64(8), "pending").Return([]*models.Report{{ID: 1}}, nil)
	repoMock.EXPECT().ListScheduled(ctx, int64(8), true).Return([]*models.ScheduledReport{}, nil)

	reports, err := svc.PendingReports(ctx, 8)
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	upcoming, err := svc.UpcomingScheduled(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, upcoming)
}
