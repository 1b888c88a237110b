package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestCrimeService создает сервис с моками хранилищ
func newTestCrimeService(t *testing.T) (*crimeService, *mocks.MockCrimeCatalogRepository, *mocks.MockCrimeRepository) {
	ctrl := gomock.NewController(t)
	catalogMock := mocks.NewMockCrimeCatalogRepository(ctrl)
	repoMock := mocks.NewMockCrimeRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewCrimeService(catalogMock, repoMock, logger)
	return svc.(*crimeService), catalogMock, repoMock
}

func validCrime() *models.Crime {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	return &models.Crime{
		IncidentID:  "NRB-2024-0001",
		CrimeTypeID: 3,
		AgencyID:    1,
		OccurredAt:  now.Add(-time.Hour),
		ReportedAt:  now,
		Location:    models.NewPoint(-1.2864, 36.8172),
	}
}

func TestGetCrime_Success_FromCache(t *testing.T) {
	// Подготовка
	svc, _, repoMock := newTestCrimeService(t)
	ctx := context.Background()
	expected := &models.Crime{ID: 5, IncidentID: "из кэша"}

	// Ожидания
	repoMock.EXPECT().GetCrimeFromCache(ctx, int64(5)).Return(expected, nil).Times(1)

	// Действие
	crime, err := svc.GetCrime(ctx, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, crime)
}

func TestGetCrime_Success_FromDB(t *testing.T) {
	svc, _, repoMock := newTestCrimeService(t)
	ctx := context.Background()
	expected := &models.Crime{ID: 5, IncidentID: "из БД"}

	// 1. Промах кеша
	repoMock.EXPECT().GetCrimeFromCache(ctx, int64(5)).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().GetByID(ctx, int64(5)).Return(expected, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetCrimeCache(ctx, expected).Return(nil).Times(1)

	crime, err := svc.GetCrime(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, expected, crime)
}

func TestGetCrime_CacheErrorFallsBackToDB(t *testing.T) {
	svc, _, repoMock := newTestCrimeService(t)
	ctx := context.Background()
	expected := &models.Crime{ID: 5}

	repoMock.EXPECT().GetCrimeFromCache(ctx, int64(5)).Return(nil, errors.New("redis down"))
	repoMock.EXPECT().GetByID(ctx, int64(5)).Return(expected, nil)
	repoMock.EXPECT().SetCrimeCache(ctx, expected).Return(errors.New("redis down"))

	crime, err := svc.GetCrime(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, expected, crime)
}

func TestGetCrime_NotFound(t *testing.T) {
	svc, _, repoMock := newTestCrimeService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetCrimeFromCache(ctx, int64(9)).Return(nil, nil)
	repoMock.EXPECT().GetByID(ctx, int64(9)).Return(nil, fmt.Errorf("failed to get crime by id: %w", ErrNotFound))

	crime, err := svc.GetCrime(ctx, 9)

	require.Error(t, err)
	assert.Nil(t, crime)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "could not get crime")
}

func TestCreateCrime_Success_AppliesDefaults(t *testing.T) {
	svc, _, repoMock := newTestCrimeService(t)
	ctx := context.Background()
	crime := validCrime()

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *models.Crime) error {
			// Симулируем, что БД присвоила ID
			c.ID = 77
			return nil
		}).Times(1)

	err := svc.CreateCrime(ctx, crime)

	require.NoError(t, err)
	assert.Equal(t, int64(77), crime.ID)
	assert.Equal(t, "Kenya", crime.Country)
	assert.Equal(t, models.VerificationUnverified, crime.VerificationStatus)
	assert.True(t, crime.IsActive)
}

func TestCreateCrime_ValidationError(t *testing.T) {
	svc, _, _ := newTestCrimeService(t)
	ctx := context.Background()
	crime := validCrime()
	crime.IncidentID = ""
	crime.Location = models.NewPoint(95, 10)
	crime.Attributes = []*models.CrimeAttribute{{Name: "weapon"}, {Name: "weapon"}}

	// Ожидания: хранилище не вызывается
	err := svc.CreateCrime(ctx, crime)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "incident_id")
	assert.Contains(t, vErr.Fields, "location")
	assert.Contains(t, vErr.Fields, "attributes")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateCrime_InvalidatesCache(t *testing.T) {
	svc, _, repoMock := newTestCrimeService(t)
	ctx := context.Background()
	crime := validCrime()
	crime.ID = 12

	gomock.InOrder(
		repoMock.EXPECT().Update(ctx, crime).Return(nil),
		repoMock.EXPECT().InvalidateCrimeCache(ctx, int64(12)).Return(nil),
	)

	require.NoError(t, svc.UpdateCrime(ctx, crime))
}

func TestDeleteCrime_SoftDeletesAndInvalidatesCache(t *testing.T) {
	svc, _, repoMock := newTestCrimeService(t)
	ctx := context.Background()

	gomock.InOrder(
		repoMock.EXPECT().Deactivate(ctx, int64(12)).Return(nil),
		repoMock.EXPECT().InvalidateCrimeCache(ctx, int64(12)).Return(nil),
	)

	require.NoError(t, svc.DeleteCrime(ctx, 12))
}

func TestDeleteCrime_NotFound(t *testing.T) {
	svc, _, repoMock := newTestCrimeService(t)
	ctx := context.Background()

	repoMock.EXPECT().Deactivate(ctx, int64(12)).Return(ErrNotFound)

	err := svc.DeleteCrime(ctx, 12)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCrimes_NormalizesFilter(t *testing.T) {
	svc, _, repoMock := newTestCrimeService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		List(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, f models.CrimeFilter) ([]*models.Crime, int, error) {
			assert.Equal(t, 1, f.Page)
			assert.Equal(t, 100, f.PageSize)
			assert.Equal(t, "occurred_at", f.OrderBy)
			assert.True(t, f.Descending)
			assert.Equal(t, "muranga road", f.Search)
			return []*models.Crime{}, 0, nil
		})

	_, total, err := svc.ListCrimes(ctx, models.CrimeFilter{PageSize: 500, Search: "  Murangá   Road "})

	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestListCrimes_InvalidOrdering(t *testing.T) {
	svc, _, _ := newTestCrimeService(t)

	_, _, err := svc.ListCrimes(context.Background(), models.CrimeFilter{OrderBy: "severity"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "ordering")
}

func TestCreateType_DefaultSeverityAndConflict(t *testing.T) {
	svc, catalogMock, _ := newTestCrimeService(t)
	ctx := context.Background()
	crimeType := &models.CrimeType{CategoryID: 1, Name: "Burglary"}

	catalogMock.EXPECT().CreateType(ctx, crimeType).Return(fmt.Errorf("failed to create crime type: %w", ErrConflict))

	err := svc.CreateType(ctx, crimeType)

	assert.Equal(t, 2, crimeType.SeverityLevel)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateType_SeverityOutOfRange(t *testing.T) {
	svc, _, _ := newTestCrimeService(t)

	err := svc.CreateType(context.Background(), &models.CrimeType{CategoryID: 1, Name: "Arson", SeverityLevel: 5})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "severity_level")
}

func TestDeleteAttribute_InvalidatesOwningCrime(t *testing.T) {
	svc, _, repoMock := newTestCrimeService(t)
	ctx := context.Background()

	gomock.InOrder(
		repoMock.EXPECT().GetAttribute(ctx, int64(4)).Return(&models.CrimeAttribute{ID: 4, CrimeID: 12, Name: "weapon"}, nil),
		repoMock.EXPECT().DeleteAttribute(ctx, int64(4)).Return(nil),
		repoMock.EXPECT().InvalidateCrimeCache(ctx, int64(12)).Return(nil),
	)

	require.NoError(t, svc.DeleteAttribute(ctx, 4))
}
