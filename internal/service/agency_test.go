package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAgencyService(t *testing.T) (*agencyService, *mocks.MockAgencyRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAgencyRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewAgencyService(repoMock, logger).(*agencyService), repoMock
}

func TestValidateCron(t *testing.T) {
	assert.NoError(t, ValidateCron("0 0 * * *"))
	assert.NoError(t, ValidateCron("*/15 2-4 1 * MON"))
	assert.Error(t, ValidateCron("0 0 * *"))
	assert.Error(t, ValidateCron("@every 1h30"))
	assert.Error(t, ValidateCron("61 * * * *"))
}

func TestCreateAgency(t *testing.T) {
	svc, repoMock := newTestAgencyService(t)
	ctx := context.Background()

	openRing := orb.MultiPolygon{{{{36.8, -1.3}, {36.9, -1.3}, {36.9, -1.2}}}}
	err := svc.CreateAgency(ctx, &models.Agency{Name: "Central", AgencyCode: "KE-01", AgencyType: "militia", JurisdictionArea: openRing})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "agency_type")
	assert.Contains(t, vErr.Fields, "jurisdiction_area")

	agency := &models.Agency{Name: "Central", AgencyCode: "KE-01", AgencyType: "police"}
	repoMock.EXPECT().Create(ctx, agency).Return(nil)
	require.NoError(t, svc.CreateAgency(ctx, agency))
	assert.Equal(t, "pending", agency.IntegrationStatus)
}

func TestSaveAPIConfig(t *testing.T) {
	svc, repoMock := newTestAgencyService(t)
	ctx := context.Background()
	cfg := &models.AgencyAPIConfig{AgencyID: 3, APIType: "rest", ConnectionURL: "https://api.example.com"}

	repoMock.EXPECT().GetByID(ctx, int64(3)).Return(&models.Agency{ID: 3}, nil)
	repoMock.EXPECT().UpsertAPIConfig(ctx, cfg).Return(nil)

	require.NoError(t, svc.SaveAPIConfig(ctx, cfg))
	assert.Equal(t, "0 0 * * *", cfg.SyncSchedule)
	assert.Equal(t, "none", cfg.AuthType)
	assert.JSONEq(t, `{}`, string(cfg.Configuration))
}

func TestSaveAPIConfig_InvalidSchedule(t *testing.T) {
	svc, _ := newTestAgencyService(t)

	err := svc.SaveAPIConfig(context.Background(), &models.AgencyAPIConfig{AgencyID: 3, APIType: "rest", SyncSchedule: "daily"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Invalid cron expression.", vErr.Fields["sync_schedule"])
}

func TestAuthorizedUsers(t *testing.T) {
	svc, repoMock := newTestAgencyService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, int64(3)).Return(nil, ErrNotFound)
	_, err := svc.AuthorizedUsers(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)

	repoMock.EXPECT().GetByID(ctx, int64(4)).Return(&models.Agency{ID: 4}, nil)
	repoMock.EXPECT().
		ListAgencyUsers(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, f models.AgencyUserFilter) ([]*models.AgencyUser, error) {
			require.NotNil(t, f.AgencyID)
			assert.Equal(t, int64(4), *f.AgencyID)
			return []*models.AgencyUser{{ID: 1, Role: "analyst"}}, nil
		})
	users, err := svc.AuthorizedUsers(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCreateAgencyUser_DefaultRole(t *testing.T) {
	svc, repoMock := newTestAgencyService(t)
	ctx := context.Background()

	err := svc.CreateAgencyUser(ctx, &models.AgencyUser{UserID: 1, AgencyID: 2, Role: "owner"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	au := &models.AgencyUser{UserID: 1, AgencyID: 2}
	repoMock.EXPECT().CreateAgencyUser(ctx, au).Return(nil)
	require.NoError(t, svc.CreateAgencyUser(ctx, au))
	assert.Equal(t, "viewer", au.Role)
}
