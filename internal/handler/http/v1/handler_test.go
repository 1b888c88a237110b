package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/shenikar/crime_analysis_system/internal/config"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
	"github.com/shenikar/crime_analysis_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken  = "session-token"
	testUserID = int64(7)
)

type testServices struct {
	accounts  *mocks.MockAccountService
	agencies  *mocks.MockAgencyService
	crimes    *mocks.MockCrimeService
	alerts    *mocks.MockAlertService
	etl       *mocks.MockETLService
	reports   *mocks.MockReportService
	analytics *mocks.MockAnalyticsService
}

// newTestHandler создает Handler с мокированными сервисами и роутер gin
func newTestHandler(t *testing.T) (*testServices, *gin.Engine) {
	ctrl := gomock.NewController(t)
	svc := &testServices{
		accounts:  mocks.NewMockAccountService(ctrl),
		agencies:  mocks.NewMockAgencyService(ctrl),
		crimes:    mocks.NewMockCrimeService(ctrl),
		alerts:    mocks.NewMockAlertService(ctrl),
		etl:       mocks.NewMockETLService(ctrl),
		reports:   mocks.NewMockReportService(ctrl),
		analytics: mocks.NewMockAnalyticsService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		SessionTTL:          time.Hour,
		LoginRateLimitRPS:   1,
		LoginRateLimitBurst: 2,
	}

	handler := NewHandler(Services{
		Accounts:  svc.accounts,
		Agencies:  svc.agencies,
		Crimes:    svc.crimes,
		Alerts:    svc.alerts,
		ETL:       svc.etl,
		Reports:   svc.reports,
		Analytics: svc.analytics,
	}, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	require.NoError(t, router.SetTrustedProxies(nil))
	router.Use(RequestIDMiddleware())
	handler.RegisterRoutes(router.Group("/api/v1"))

	return svc, router
}

// expectSession настраивает успешную аутентификацию по cookie
func (s *testServices) expectSession() map[string]string {
	s.accounts.EXPECT().
		Authenticate(gomock.Any(), testToken).
		Return(&models.Session{Token: testToken, UserID: testUserID, UserType: models.UserTypePublic}, nil)
	return map[string]string{"Cookie": sessionCookieName + "=" + testToken}
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProtectedRoute_WithoutSession(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.accounts.EXPECT().Authenticate(gomock.Any(), "").Return(nil, service.ErrUnauthenticated)
	svc.alerts.EXPECT().ListAlerts(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/alerts", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, codeUnauthorized, decodeError(t, w).Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRegister_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.accounts.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.RegisterInput) (*models.User, error) {
			assert.Equal(t, "jdoe", in.Username)
			assert.Equal(t, "s3cure-pass", in.ConfirmPassword)
			assert.NotEmpty(t, in.ClientIP)
			return &models.User{ID: 1, Username: in.Username, Email: in.Email, UserType: models.UserTypePublic}, nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/accounts/auth/register", jsonBody(t, RegisterRequest{
		Username:        "jdoe",
		Email:           "jdoe@example.com",
		Password:        "s3cure-pass",
		ConfirmPassword: "s3cure-pass",
	}))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.accounts.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, service.NewValidationError("password", "Passwords do not match."))

	w := makeRequest(router, http.MethodPost, "/api/v1/accounts/auth/register", jsonBody(t, RegisterRequest{
		Username:        "jdoe",
		Email:           "jdoe@example.com",
		Password:        "s3cure-pass",
		ConfirmPassword: "other-pass",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, codeValidation, detail.Code)
	assert.Equal(t, "Passwords do not match.", detail.Details["password"])
}

func TestRegister_InvalidJSON(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.accounts.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/accounts/auth/register", bytes.NewBufferString(`{"username": "x"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, codeBadRequest, decodeError(t, w).Code)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.accounts.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/accounts/auth/register", jsonBody(t, map[string]string{
		"username": "jdoe",
		"email":    "not-an-email",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, "Enter a valid email address.", detail.Details["email"])
	assert.Equal(t, "This field is required.", detail.Details["password"])
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.accounts.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.LoginInput) (*models.User, *models.Session, error) {
			assert.Equal(t, "Mozilla/5.0 (iPhone; Mobile)", in.UserAgent)
			return &models.User{ID: testUserID, Username: in.Username},
				&models.Session{Token: testToken, UserID: testUserID}, nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/accounts/auth/login",
		jsonBody(t, LoginRequest{Username: "jdoe", Password: "s3cure-pass"}),
		map[string]string{"User-Agent": "Mozilla/5.0 (iPhone; Mobile)"})

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, testToken, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.accounts.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, nil, service.ErrInvalidCredentials)

	w := makeRequest(router, http.MethodPost, "/api/v1/accounts/auth/login",
		jsonBody(t, LoginRequest{Username: "jdoe", Password: "wrong"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeError(t, w).Message)
	assert.Empty(t, w.Result().Cookies())
}

func TestLogin_RateLimited(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.accounts.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, nil, service.ErrInvalidCredentials).Times(2)

	var codes []int
	for i := 0; i < 3; i++ {
		w := makeRequest(router, http.MethodPost, "/api/v1/accounts/auth/login",
			jsonBody(t, LoginRequest{Username: "jdoe", Password: "wrong"}))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func TestLogin_RateLimitIgnoresForwardedFor(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.accounts.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.LoginInput) (*models.User, *models.Session, error) {
			assert.Equal(t, "192.0.2.1", in.ClientIP)
			return nil, nil, service.ErrInvalidCredentials
		}).
		Times(2)

	throttled := 0
	for i := 0; i < 20; i++ {
		w := makeRequest(router, http.MethodPost, "/api/v1/accounts/auth/login",
			jsonBody(t, LoginRequest{Username: "jdoe", Password: "wrong"}),
			map[string]string{"X-Forwarded-For": fmt.Sprintf("10.0.0.%d", i)})
		if w.Code == http.StatusTooManyRequests {
			throttled++
		}
	}

	assert.Equal(t, 18, throttled)
}

func TestLogout_ClearsCookie(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.accounts.EXPECT().Logout(gomock.Any(), testToken).Return(nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/accounts/auth/logout", nil, headers)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestListCrimes_FiltersAndPagination(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	crime := &models.Crime{ID: 30, IncidentID: "NBI-30", Location: models.NewPoint(-1.286, 36.817)}
	svc.crimes.EXPECT().
		ListCrimes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.CrimeFilter) ([]*models.Crime, int, error) {
			require.NotNil(t, f.CrimeTypeID)
			assert.Equal(t, int64(3), *f.CrimeTypeID)
			assert.Nil(t, f.AgencyID)
			assert.Equal(t, "reported_at", f.OrderBy)
			assert.True(t, f.Descending)
			assert.Equal(t, 2, f.Page)
			assert.Equal(t, models.MaxPageSize, f.PageSize)
			assert.Equal(t, "moi avenue", f.Search)
			return []*models.Crime{crime}, 101, nil
		})

	w := makeRequest(router, http.MethodGet,
		"/api/v1/crimes/incidents?crime_type=3&ordering=-reported_at&page=2&page_size=500&search=moi+avenue", nil, headers)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count    int `json:"count"`
		Page     int `json:"page"`
		PageSize int `json:"page_size"`
		Results  []struct {
			ID        int64   `json:"id"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Location  struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"location"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 101, resp.Count)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 100, resp.PageSize)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, -1.286, resp.Results[0].Latitude)
	assert.Equal(t, 36.817, resp.Results[0].Longitude)
	assert.Equal(t, "Point", resp.Results[0].Location.Type)
	assert.Equal(t, []float64{36.817, -1.286}, resp.Results[0].Location.Coordinates)
}

func TestListCrimes_InvalidFilter(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.crimes.EXPECT().ListCrimes(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/crimes/incidents?agency=abc", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A valid integer is required.", decodeError(t, w).Details["agency"])
}

func TestSpatialCrimes_FeatureCollection(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.crimes.EXPECT().ListCrimes(gomock.Any(), gomock.Any()).Return([]*models.Crime{
		{ID: 1, IncidentID: "A", Location: models.NewPoint(-1.28, 36.81)},
		{ID: 2, IncidentID: "B", Location: models.NewPoint(-1.29, 36.82)},
	}, 2, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/crimes/incidents/spatial", nil, headers)

	require.Equal(t, http.StatusOK, w.Code)
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry   struct{ Type string } `json:"geometry"`
			Properties map[string]any        `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "Point", fc.Features[0].Geometry.Type)
	assert.Equal(t, "A", fc.Features[0].Properties["incident_id"])
}

func TestCreateCrime_LatitudeLongitude(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	occurred := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.crimes.EXPECT().
		CreateCrime(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, crime *models.Crime) error {
			assert.Equal(t, orb.Point{36.817, -1.286}, crime.Location)
			assert.True(t, crime.IsActive)
			assert.False(t, crime.ReportedAt.IsZero())
			require.Len(t, crime.Attributes, 1)
			assert.Equal(t, "weapon", crime.Attributes[0].Name)
			crime.ID = 99
			return nil
		})

	lat, lon := -1.286, 36.817
	w := makeRequest(router, http.MethodPost, "/api/v1/crimes/incidents", jsonBody(t, CrimeRequest{
		IncidentID:  "NBI-99",
		CrimeTypeID: 3,
		AgencyID:    1,
		OccurredAt:  occurred,
		Latitude:    &lat,
		Longitude:   &lon,
		Attributes:  []AttributeInput{{Name: "weapon", Value: json.RawMessage(`"knife"`)}},
	}), headers)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":99`)
}

func TestCreateCrime_WrongGeometryType(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.crimes.EXPECT().CreateCrime(gomock.Any(), gomock.Any()).Times(0)

	body := `{"incident_id":"X","crime_type":1,"agency":1,"occurred_at":"2024-05-01T12:00:00Z",
		"location":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}}`
	w := makeRequest(router, http.MethodPost, "/api/v1/crimes/incidents", bytes.NewBufferString(body), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, codeValidation, decodeError(t, w).Code)
}

func TestRecentMatches_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.alerts.EXPECT().RecentMatches(gomock.Any(), testUserID, int64(5)).Return(&models.MatchResult{
		AlertID:      5,
		TotalMatches: 1,
		Matches: []*models.CrimeMatch{
			{CrimeID: 30, IncidentID: "NBI-30", CrimeTypeName: "Burglary", DistanceMeters: 400.2},
		},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/alerts/5/recent_matches", nil, headers)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.MatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.AlertID)
	assert.Equal(t, 1, resp.TotalMatches)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "Burglary", resp.Matches[0].CrimeTypeName)
	assert.InDelta(t, 400.2, resp.Matches[0].DistanceMeters, 0.001)
}

func TestRecentMatches_OtherUsersAlert(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.alerts.EXPECT().RecentMatches(gomock.Any(), testUserID, int64(6)).Return(nil, service.ErrNotFound)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/alerts/6/recent_matches", nil, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, codeNotFound, decodeError(t, w).Code)
}

func TestRecentMatches_InvalidID(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/alerts/abc/recent_matches", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluateAlert_NothingNew(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.alerts.EXPECT().EvaluateForUser(gomock.Any(), testUserID, int64(5)).Return(nil, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/alerts/5/evaluate", nil, headers)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"created":false,"notification":null}`, w.Body.String())
}

func TestEvaluateAlert_Locked(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.alerts.EXPECT().EvaluateForUser(gomock.Any(), testUserID, int64(5)).Return(nil, service.ErrAlertLocked)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/alerts/5/evaluate", nil, headers)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateAlert_UsesSessionUser(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.alerts.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			assert.Equal(t, testUserID, a.UserID)
			assert.Equal(t, []int64{1, 2}, a.CrimeTypeIDs)
			assert.Equal(t, orb.Point{36.817, -1.286}, a.Location)
			a.ID = 5
			return nil
		})

	body := `{"name":"Home","crime_types":[1,2],"location":{"type":"Point","coordinates":[36.817,-1.286]},"search_distance_meters":500}`
	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/alerts", bytes.NewBufferString(body), headers)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"latitude":-1.286`)
}

func TestUpdateNotificationStatus_InvalidStatus(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.alerts.EXPECT().UpdateNotificationStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPatch, "/api/v1/alerts/alert-notifications/3",
		bytes.NewBufferString(`{"status":"archived"}`), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Details["status"], "Must be one of")
}

func TestGetNotification_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.alerts.EXPECT().
		GetNotification(gomock.Any(), testUserID, int64(3)).
		Return(&models.AlertNotification{ID: 3, AlertID: 5, CrimeIDs: []int64{42}, Status: models.NotificationSent}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/alert-notifications/3", nil, headers)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.AlertNotification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, []int64{42}, resp.CrimeIDs)
	assert.Equal(t, models.NotificationSent, resp.Status)
}

func TestGetNotification_OtherUsersNotification(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.alerts.EXPECT().GetNotification(gomock.Any(), testUserID, int64(9)).Return(nil, service.ErrNotFound)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/alert-notifications/9", nil, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, codeNotFound, decodeError(t, w).Code)
}

func TestGetAgencyAPIConfig_Missing(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.agencies.EXPECT().GetAPIConfig(gomock.Any(), int64(4)).Return(nil, service.ErrNotFound)

	w := makeRequest(router, http.MethodGet, "/api/v1/agencies/agencies/4/api_config", nil, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No API configuration found for this agency", decodeError(t, w).Message)
}

func TestCreateDataSource_InvalidCron(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.etl.EXPECT().CreateDataSource(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/etl/data-sources", jsonBody(t, DataSourceRequest{
		AgencyID:       1,
		Name:           "CAD feed",
		SourceType:     "api",
		CronExpression: "every day",
	}), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid cron expression.", decodeError(t, w).Details["cron_expression"])
}

func TestTransitionJob_NotAllowed(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.etl.EXPECT().
		TransitionJob(gomock.Any(), int64(11), models.JobTransition{Status: models.JobRunning}).
		Return(nil, service.NewValidationError("status", "Cannot transition job from completed to running."))

	w := makeRequest(router, http.MethodPost, "/api/v1/etl/etl-jobs/11/transition",
		bytes.NewBufferString(`{"status":"running"}`), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cannot transition job from completed to running.", decodeError(t, w).Details["status"])
}

func TestJobLogs_FiltersByJob(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.etl.EXPECT().GetJob(gomock.Any(), int64(11)).Return(&models.ETLJob{ID: 11, Status: models.JobRunning}, nil)
	svc.etl.EXPECT().
		ListLogs(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, jobID *int64, _ string) ([]*models.ETLJobLog, error) {
			require.NotNil(t, jobID)
			assert.Equal(t, int64(11), *jobID)
			return []*models.ETLJobLog{{ID: 1, JobID: 11, Level: "error", Message: "bad row"}}, nil
		})

	w := makeRequest(router, http.MethodGet, "/api/v1/etl/etl-jobs/11/job_logs", nil, headers)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []models.ETLJobLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "bad row", resp[0].Message)
}

func TestJobLogs_UnknownJob(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.etl.EXPECT().GetJob(gomock.Any(), int64(12)).Return(nil, service.ErrNotFound)
	svc.etl.EXPECT().ListLogs(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/etl/etl-jobs/12/job_logs", nil, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeployModel_RequiresTraining(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.analytics.EXPECT().
		DeployModel(gomock.Any(), int64(2)).
		Return(nil, service.NewValidationError("status", "Model must complete training before deployment"))

	w := makeRequest(router, http.MethodPost, "/api/v1/analytics/predictive-models/2/deploy_model", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPredictions_InvalidDate(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.analytics.EXPECT().ListPredictions(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/analytics/predictions?start_date=yesterday", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Enter a valid date.", decodeError(t, w).Details["start_date"])
}

func TestInternalError_IsGeneric(t *testing.T) {
	svc, router := newTestHandler(t)
	headers := svc.expectSession()
	svc.reports.EXPECT().ListReports(gomock.Any(), testUserID).Return(nil, io.ErrUnexpectedEOF)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/reports", nil, headers)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, codeInternalServer, detail.Code)
	assert.Equal(t, msgInternalServerError, detail.Message)
}
