//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paulmach/orb/geo"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "crime",
			"POSTGRES_PASSWORD": "crime",
			"POSTGRES_DB":       "crime_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(90 * time.Second),
	}
	tc, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, err := tc.Host(ctx)
	if err != nil {
		fmt.Println("cannot get container host:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}
	port, err := tc.MappedPort(ctx, "5432/tcp")
	if err != nil {
		fmt.Println("cannot get mapped port:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}
	dsn := fmt.Sprintf("postgres://crime:crime@%s:%s/crime_test?sslmode=disable", host, port.Port())

	mg, err := migrate.New("file://../../migrations", "pgx5://"+dsn[len("postgres://"):])
	if err != nil {
		fmt.Println("cannot create migrator:", err)
		os.Exit(1)
	}
	if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("cannot apply migrations:", err)
		os.Exit(1)
	}

	testDB, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("cannot connect:", err)
		os.Exit(1)
	}

	code := m.Run()

	testDB.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

type fixture struct {
	user   *models.User
	agency *models.Agency
	typeID int64
}

func seed(t *testing.T, ctx context.Context, suffix string) fixture {
	t.Helper()

	user := &models.User{
		Username:     "wanjiru_" + suffix,
		Email:        "w@example.com",
		PasswordHash: "x",
		UserType:     models.UserTypePublic,
		IsActive:     true,
	}
	require.NoError(t, NewUserRepository(testDB).CreateWithProfile(ctx, user, &models.UserProfile{Country: "Kenya", DefaultSearchRadius: 1000}))

	agency := &models.Agency{Name: "Central " + suffix, AgencyCode: "KE-" + suffix, AgencyType: "police", IntegrationStatus: "active", IsActive: true}
	require.NoError(t, NewAgencyRepository(testDB).Create(ctx, agency))

	catalog := NewCatalogRepository(testDB)
	category := &models.CrimeCategory{Name: "Property " + suffix}
	require.NoError(t, catalog.CreateCategory(ctx, category))
	crimeType := &models.CrimeType{CategoryID: category.ID, Name: "Burglary", SeverityLevel: 3}
	require.NoError(t, catalog.CreateType(ctx, crimeType))

	return fixture{user: user, agency: agency, typeID: crimeType.ID}
}

func createCrime(t *testing.T, ctx context.Context, repo service.CrimeRepository, f fixture, incidentID string, lat, lon float64, reportedAt time.Time) *models.Crime {
	t.Helper()
	crime := &models.Crime{
		IncidentID:         incidentID,
		CrimeTypeID:        f.typeID,
		OccurredAt:         reportedAt.Add(-time.Hour),
		ReportedAt:         reportedAt,
		AgencyID:           f.agency.ID,
		Location:           models.NewPoint(lat, lon),
		City:               "Nairobi",
		Country:            "Kenya",
		VerificationStatus: models.VerificationUnverified,
		IsActive:           true,
	}
	require.NoError(t, repo.Create(ctx, crime))
	return crime
}

func TestFindMatches_RadiusAndSoftDelete(t *testing.T) {
	ctx := context.Background()
	f := seed(t, ctx, "radius")
	crimes := NewCrimeRepository(testDB, nil, time.Minute)
	alerts := NewAlertRepository(testDB)

	const centerLat, centerLon = -1.2864, 36.8172
	reported := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	// ~400 м и ~600 м к северу от центра
	near := createCrime(t, ctx, crimes, f, "R-400", centerLat+0.003617, centerLon, reported)
	createCrime(t, ctx, crimes, f, "R-600", centerLat+0.005426, centerLon, reported)
	hidden := createCrime(t, ctx, crimes, f, "R-100", centerLat+0.0009, centerLon, reported)
	require.NoError(t, crimes.Deactivate(ctx, hidden.ID))

	alert := &models.Alert{
		Name:                 "Home",
		UserID:               f.user.ID,
		CrimeTypeIDs:         []int64{f.typeID},
		Location:             models.NewPoint(centerLat, centerLon),
		SearchDistanceMeters: 500,
		IsActive:             true,
		NotificationMethod:   "email",
		CheckFrequency:       models.FrequencyDaily,
	}
	require.NoError(t, alerts.Create(ctx, alert))

	matches, total, err := alerts.FindMatches(ctx, models.MatchQuery{
		AlertID:      alert.ID,
		Center:       alert.Location,
		RadiusMeters: 500,
		CrimeTypeIDs: alert.CrimeTypeIDs,
		Limit:        10,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, matches, 1)
	assert.Equal(t, near.ID, matches[0].CrimeID)
	assert.InDelta(t, 400, matches[0].DistanceMeters, 5)
	// сфероид PostGIS и haversine расходятся на доли процента
	assert.InDelta(t, geo.Distance(alert.Location, near.Location), matches[0].DistanceMeters, 5)
}

func TestNotifications_IdempotencyAndExclusion(t *testing.T) {
	ctx := context.Background()
	f := seed(t, ctx, "idem")
	crimes := NewCrimeRepository(testDB, nil, time.Minute)
	alerts := NewAlertRepository(testDB)

	reported := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	crime := createCrime(t, ctx, crimes, f, "I-1", -1.2864, 36.8172, reported)

	alert := &models.Alert{
		Name:                 "Office",
		UserID:               f.user.ID,
		CrimeTypeIDs:         []int64{f.typeID},
		Location:             models.NewPoint(-1.2864, 36.8172),
		SearchDistanceMeters: 1000,
		IsActive:             true,
		NotificationMethod:   "email",
		CheckFrequency:       models.FrequencyHourly,
	}
	require.NoError(t, alerts.Create(ctx, alert))

	windowEnd := reported.Add(time.Hour)
	n := &models.AlertNotification{
		AlertID:            alert.ID,
		CrimeIDs:           []int64{crime.ID},
		SentAt:             windowEnd,
		NotificationMethod: "email",
		Status:             models.NotificationPending,
		IdempotencyKey:     service.IdempotencyKey(alert.ID, windowEnd, time.Hour),
		WindowStart:        reported.Add(-time.Hour),
		WindowEnd:          windowEnd,
	}
	created, err := alerts.CreateNotification(ctx, n)
	require.NoError(t, err)
	assert.True(t, created)

	dup := *n
	dup.ID = 0
	created, err = alerts.CreateNotification(ctx, &dup)
	require.NoError(t, err)
	assert.False(t, created)

	q := service.NewMatchQuery(alert, 0).InWindow(crime.CreatedAt.Add(-time.Minute), crime.CreatedAt.Add(time.Minute))
	q.ExcludeNotified = true
	matches, _, err := alerts.FindMatches(ctx, q)
	require.NoError(t, err)
	assert.Empty(t, matches)

	list, err := alerts.ListNotifications(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = alerts.GetNotificationForUser(ctx, n.ID, f.user.ID+1000)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestFindMatches_WindowUsesIngestionTime(t *testing.T) {
	ctx := context.Background()
	f := seed(t, ctx, "ingest")
	crimes := NewCrimeRepository(testDB, nil, time.Minute)
	alerts := NewAlertRepository(testDB)

	const lat, lon = -1.2864, 36.8172
	reported := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	alert := &models.Alert{
		Name:                 "Depot",
		UserID:               f.user.ID,
		CrimeTypeIDs:         []int64{f.typeID},
		Location:             models.NewPoint(lat, lon),
		SearchDistanceMeters: 500,
		IsActive:             true,
		NotificationMethod:   "email",
		CheckFrequency:       models.FrequencyHourly,
	}
	require.NoError(t, alerts.Create(ctx, alert))

	// уже учтен прошлой проверкой
	early := createCrime(t, ctx, crimes, f, "W-early", lat, lon, reported)
	lastChecked := early.CreatedAt

	// загружен после проверки, хотя источник сообщил о нем раньше
	late := createCrime(t, ctx, crimes, f, "W-late", lat+0.001, lon, reported)
	require.True(t, late.CreatedAt.After(lastChecked))
	require.True(t, late.ReportedAt.Before(lastChecked))

	q := service.NewMatchQuery(alert, 0).InWindow(lastChecked, late.CreatedAt)
	q.ExcludeNotified = true
	matches, total, err := alerts.FindMatches(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, matches, 1)
	assert.Equal(t, late.ID, matches[0].CrimeID)
}

func TestETLJob_GuardedTransition(t *testing.T) {
	ctx := context.Background()
	f := seed(t, ctx, "etl")
	repo := NewETLRepository(testDB)

	ds := &models.DataSource{AgencyID: f.agency.ID, Name: "Feed", SourceType: "api", SyncFrequency: "daily", Configuration: []byte(`{}`), FieldMapping: []byte(`{}`), IsActive: true}
	require.NoError(t, repo.CreateDataSource(ctx, ds))

	job := &models.ETLJob{DataSourceID: ds.ID, JobID: "nightly-1", Status: models.JobScheduled, Parameters: []byte(`{}`)}
	require.NoError(t, repo.CreateJob(ctx, job))

	job.Status = models.JobRunning
	require.NoError(t, repo.TransitionJob(ctx, job, models.JobScheduled))

	// второй переход из устаревшего состояния
	job.Status = models.JobCanceled
	err := repo.TransitionJob(ctx, job, models.JobScheduled)
	assert.ErrorIs(t, err, service.ErrConflict)

	require.NoError(t, repo.UpdateJobCounters(ctx, job.ID, models.JobCounters{Processed: 10, Created: 8}))
	err = repo.UpdateJobCounters(ctx, job.ID, models.JobCounters{Processed: 5, Created: 8})
	assert.ErrorIs(t, err, service.ErrConflict)

	stored, err := repo.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobRunning, stored.Status)
	assert.Equal(t, 10, stored.Counters.Processed)
}
