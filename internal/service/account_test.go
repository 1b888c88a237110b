package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/crime_analysis_system/internal/config"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestAccountService(t *testing.T) (*accountService, *mocks.MockUserRepository, *mocks.MockSessionStore) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)
	sessionsMock := mocks.NewMockSessionStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewAccountService(usersMock, sessionsMock, logger, &config.Config{SessionTTL: time.Hour}).(*accountService)
	svc.bcryptCost = bcrypt.MinCost
	svc.now = func() time.Time { return testNow }
	return svc, usersMock, sessionsMock
}

func hashedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{ID: 8, Username: "wanjiru", PasswordHash: string(hash), UserType: models.UserTypeAnalyst, IsActive: true}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc, _, _ := newTestAccountService(t)

	// Ожидания: хранилище не вызывается
	user, err := svc.Register(context.Background(), models.RegisterInput{
		Username:        "wanjiru",
		Email:           "w@example.com",
		Password:        "correct-horse",
		ConfirmPassword: "battery-staple",
	})

	assert.Nil(t, user)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Passwords do not match.", vErr.Fields["password"])
}

func TestRegister_WeakPasswordAndAdminRole(t *testing.T) {
	svc, _, _ := newTestAccountService(t)

	_, err := svc.Register(context.Background(), models.RegisterInput{
		Username:        "wanjiru",
		Email:           "w@example.com",
		Password:        "12345678",
		ConfirmPassword: "12345678",
		UserType:        models.UserTypeAdmin,
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "This password is entirely numeric.", vErr.Fields["password"])
	assert.Contains(t, vErr.Fields, "user_type")
}

func TestRegister_Success(t *testing.T) {
	svc, usersMock, _ := newTestAccountService(t)
	ctx := context.Background()

	usersMock.EXPECT().
		CreateWithProfile(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User, p *models.UserProfile) error {
			assert.Equal(t, models.UserTypePublic, u.UserType)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct-horse")))
			assert.Equal(t, "United States", p.Country)
			assert.Equal(t, 1000, p.DefaultSearchRadius)
			require.NotNil(t, u.CreatedIP)
			assert.Equal(t, "10.0.0.1", *u.CreatedIP)
			u.ID = 21
			p.UserID = 21
			return nil
		})

	user, err := svc.Register(ctx, models.RegisterInput{
		Username:        "wanjiru",
		Email:           "w@example.com",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
		ClientIP:        "10.0.0.1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21), user.ID)
	require.NotNil(t, user.Profile)
	assert.NotEmpty(t, user.VerificationToken)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, usersMock, _ := newTestAccountService(t)
	ctx := context.Background()

	usersMock.EXPECT().
		CreateWithProfile(ctx, gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("failed to create user: users_username_key: %w", ErrConflict))

	_, err := svc.Register(ctx, models.RegisterInput{
		Username:        "wanjiru",
		Email:           "w@example.com",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "username")
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, usersMock, _ := newTestAccountService(t)
	ctx := context.Background()

	usersMock.EXPECT().GetByUsername(ctx, "ghost").Return(nil, ErrNotFound)

	// Ожидания: записи в историю нет, пользователя не к чему привязать
	user, session, err := svc.Login(ctx, models.LoginInput{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Nil(t, session)
}

func TestLogin_WrongPassword_WritesOneFailedAttempt(t *testing.T) {
	svc, usersMock, _ := newTestAccountService(t)
	ctx := context.Background()
	stored := hashedUser(t, "correct-horse")

	usersMock.EXPECT().GetByUsername(ctx, "wanjiru").Return(stored, nil)
	usersMock.EXPECT().
		CreateLoginHistory(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *models.LoginHistory) error {
			assert.Equal(t, stored.ID, e.UserID)
			assert.False(t, e.WasSuccessful)
			assert.Equal(t, "Invalid credentials", e.FailureReason)
			assert.Equal(t, "Mobile", e.DeviceType)
			return nil
		}).Times(1)

	user, session, err := svc.Login(ctx, models.LoginInput{
		Username:  "wanjiru",
		Password:  "wrong-password",
		ClientIP:  "10.0.0.2",
		UserAgent: "Mozilla/5.0 (iPhone) Mobile Safari",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Nil(t, session)
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, usersMock, _ := newTestAccountService(t)
	ctx := context.Background()
	stored := hashedUser(t, "correct-horse")
	stored.IsActive = false

	usersMock.EXPECT().GetByUsername(ctx, "wanjiru").Return(stored, nil)
	usersMock.EXPECT().CreateLoginHistory(ctx, gomock.Any()).Return(nil).Times(1)

	_, _, err := svc.Login(ctx, models.LoginInput{Username: "wanjiru", Password: "correct-horse"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	svc, usersMock, sessionsMock := newTestAccountService(t)
	ctx := context.Background()
	stored := hashedUser(t, "correct-horse")

	gomock.InOrder(
		usersMock.EXPECT().GetByUsername(ctx, "wanjiru").Return(stored, nil),
		usersMock.EXPECT().
			CreateLoginHistory(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *models.LoginHistory) error {
				assert.True(t, e.WasSuccessful)
				assert.Equal(t, "Desktop", e.DeviceType)
				return nil
			}),
		usersMock.EXPECT().UpdateLastLogin(ctx, stored.ID, gomock.Any(), testNow).Return(nil),
		sessionsMock.EXPECT().
			Create(ctx, gomock.Any(), time.Hour).
			DoAndReturn(func(ctx context.Context, s *models.Session, ttl time.Duration) error {
				assert.Equal(t, stored.ID, s.UserID)
				assert.Equal(t, models.UserTypeAnalyst, s.UserType)
				assert.Equal(t, testNow.Add(time.Hour), s.ExpiresAt)
				return nil
			}),
	)

	user, session, err := svc.Login(ctx, models.LoginInput{
		Username:  "wanjiru",
		Password:  "correct-horse",
		ClientIP:  "10.0.0.3",
		UserAgent: "curl/8.0",
	})

	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
	require.NotNil(t, user.LastLoginIP)
	assert.Equal(t, "10.0.0.3", *user.LastLoginIP)
	assert.NotEmpty(t, session.Token)
}

func TestAuthenticate(t *testing.T) {
	svc, _, sessionsMock := newTestAccountService(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	sessionsMock.EXPECT().Get(ctx, "expired").Return(nil, ErrNotFound)
	_, err = svc.Authenticate(ctx, "expired")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	sessionsMock.EXPECT().Get(ctx, "live").Return(&models.Session{UserID: 8}, nil)
	session, err := svc.Authenticate(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "live", session.Token)
}

func TestUpdateProfile_RejectsNonPositiveRadius(t *testing.T) {
	svc, _, _ := newTestAccountService(t)

	_, err := svc.UpdateProfile(context.Background(), 8, &models.UserProfile{DefaultSearchRadius: 0})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "default_search_radius")
}

func TestDeviceType(t *testing.T) {
	testCases := []struct {
		ua   string
		want string
	}{
		{"Mozilla/5.0 (Linux; Android 14) Mobile", "Mobile"},
		{"Mozilla/5.0 (Tablet; rv:109.0)", "Tablet"},
		{"Mozilla/5.0 (X11; Linux x86_64)", "Desktop"},
		{"", "Desktop"},
	}
	for _, tc := range testCases {
		t.Run(tc.want+"/"+tc.ua, func(t *testing.T) {
			assert.Equal(t, tc.want, DeviceType(tc.ua))
		})
	}
}
