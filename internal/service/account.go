package service

//go:generate mockgen -source=account.go -destination=mocks/account_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shenikar/crime_analysis_system/internal/config"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength        = 8
	invalidCredentialsReason = "Invalid credentials"
	defaultProfileCountry    = "United States"
	defaultSearchRadius      = 1000
)

// UserRepository определяет контракт хранилища пользователей
type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.UserProfile) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id int64, ip *string, at time.Time) error
	UpdateProfile(ctx context.Context, profile *models.UserProfile) error
	CreateLoginHistory(ctx context.Context, entry *models.LoginHistory) error
	ListLoginHistory(ctx context.Context, userID int64, limit int) ([]*models.LoginHistory, error)
}

// SessionStore определяет контракт хранилища сессий
type SessionStore interface {
	Create(ctx context.Context, session *models.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// AccountService определяет контракт регистрации, входа и профиля
type AccountService interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, input models.LoginInput) (*models.User, *models.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.Session, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, profile *models.UserProfile) (*models.UserProfile, error)
	ListLoginHistory(ctx context.Context, userID int64) ([]*models.LoginHistory, error)
}

type accountService struct {
	users      UserRepository
	sessions   SessionStore
	logger     *logrus.Logger
	sessionTTL time.Duration
	bcryptCost int
	now        func() time.Time
}

func NewAccountService(users UserRepository, sessions SessionStore, logger *logrus.Logger, cfg *config.Config) AccountService {
	return &accountService{
		users:      users,
		sessions:   sessions,
		logger:     logger,
		sessionTTL: cfg.SessionTTL,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// Register создает пользователя и его профиль в одной транзакции
func (s *accountService) Register(ctx context.Context, input models.RegisterInput) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "account",
		"method":   "Register",
		"username": input.Username,
	})

	if err := validateRegistration(input); err != nil {
		log.WithError(err).Warn("Registration rejected")
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	userType := input.UserType
	if userType == "" {
		userType = models.UserTypePublic
	}

	user := &models.User{
		Username:           strings.TrimSpace(input.Username),
		Email:              strings.TrimSpace(input.Email),
		PasswordHash:       string(hash),
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		PhoneNumber:        input.PhoneNumber,
		UserType:           userType,
		ThemePreference:    "system",
		EmailNotifications: true,
		PushNotifications:  true,
		VerificationToken:  strings.ReplaceAll(uuid.NewString(), "-", ""),
		IsActive:           true,
	}
	if input.ClientIP != "" {
		ip := input.ClientIP
		user.CreatedIP = &ip
	}
	profile := &models.UserProfile{
		Country:             defaultProfileCountry,
		DefaultSearchRadius: defaultSearchRadius,
	}

	if err := s.users.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, ErrConflict) {
			log.Warn("Username already taken")
			return nil, NewValidationError("username", "A user with that username already exists.")
		}
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}
	user.Profile = profile

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}

func validateRegistration(input models.RegisterInput) error {
	fields := map[string]string{}

	if strings.TrimSpace(input.Username) == "" {
		fields["username"] = "This field is required."
	}
	if strings.TrimSpace(input.Email) == "" {
		fields["email"] = "This field is required."
	}
	if input.Password == "" {
		fields["password"] = "This field is required."
	} else if input.Password != input.ConfirmPassword {
		fields["password"] = "Passwords do not match."
	} else if msg := checkPasswordStrength(input.Password); msg != "" {
		fields["password"] = msg
	}

	switch input.UserType {
	case "", models.UserTypePublic, models.UserTypeAgency, models.UserTypeAnalyst:
	default:
		fields["user_type"] = fmt.Sprintf("%q is not a valid choice.", input.UserType)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func checkPasswordStrength(password string) string {
	if len(password) < minPasswordLength {
		return fmt.Sprintf("This password is too short. It must contain at least %d characters.", minPasswordLength)
	}
	for _, r := range password {
		if !unicode.IsDigit(r) {
			return ""
		}
	}
	return "This password is entirely numeric."
}

// Login проверяет учетные данные, пишет историю входа и открывает сессию.
// Для существующего пользователя неудачная попытка оставляет ровно одну запись в истории.
func (s *accountService) Login(ctx context.Context, input models.LoginInput) (*models.User, *models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "account",
		"method":   "Login",
		"username": input.Username,
	})

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Login attempt for unknown username")
			return nil, nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to load user")
		return nil, nil, fmt.Errorf("service: could not load user: %w", err)
	}

	entry := &models.LoginHistory{
		UserID:     user.ID,
		LoginTime:  s.now().UTC(),
		IPAddress:  optionalString(input.ClientIP),
		UserAgent:  input.UserAgent,
		DeviceType: DeviceType(input.UserAgent),
	}

	if !user.IsActive || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		entry.WasSuccessful = false
		entry.FailureReason = invalidCredentialsReason
		if err := s.users.CreateLoginHistory(ctx, entry); err != nil {
			log.WithError(err).Error("Failed to record failed login")
			return nil, nil, fmt.Errorf("service: could not record login attempt: %w", err)
		}
		log.Warn("Invalid credentials")
		return nil, nil, ErrInvalidCredentials
	}

	entry.WasSuccessful = true
	if err := s.users.CreateLoginHistory(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to record login")
		return nil, nil, fmt.Errorf("service: could not record login: %w", err)
	}
	if err := s.users.UpdateLastLogin(ctx, user.ID, entry.IPAddress, entry.LoginTime); err != nil {
		log.WithError(err).Error("Failed to update last login")
		return nil, nil, fmt.Errorf("service: could not update last login: %w", err)
	}
	user.LastLogin = &entry.LoginTime
	user.LastLoginIP = entry.IPAddress

	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		UserType:  user.UserType,
		CreatedAt: entry.LoginTime,
		ExpiresAt: entry.LoginTime.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session, s.sessionTTL); err != nil {
		log.WithError(err).Error("Failed to create session")
		return nil, nil, fmt.Errorf("service: could not create session: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return user, session, nil
}

// Logout удаляет сессию
func (s *accountService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.WithError(err).WithField("method", "Logout").Error("Failed to delete session")
		return fmt.Errorf("service: could not delete session: %w", err)
	}
	return nil
}

// Authenticate находит сессию по токену cookie
func (s *accountService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("service: could not load session: %w", err)
	}
	session.Token = token
	return session, nil
}

func (s *accountService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// UpdateProfile обновляет профиль текущего пользователя
func (s *accountService) UpdateProfile(ctx context.Context, userID int64, profile *models.UserProfile) (*models.UserProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "account",
		"method":  "UpdateProfile",
		"user_id": userID,
	})

	if profile.DefaultSearchRadius <= 0 {
		return nil, NewValidationError("default_search_radius", "Ensure this value is greater than 0.")
	}
	if profile.Country == "" {
		profile.Country = defaultProfileCountry
	}
	profile.UserID = userID

	if err := s.users.UpdateProfile(ctx, profile); err != nil {
		log.WithError(err).Error("Failed to update profile")
		return nil, fmt.Errorf("service: could not update profile: %w", err)
	}
	return profile, nil
}

func (s *accountService) ListLoginHistory(ctx context.Context, userID int64) ([]*models.LoginHistory, error) {
	history, err := s.users.ListLoginHistory(ctx, userID, 100)
	if err != nil {
		return nil, fmt.Errorf("service: could not list login history: %w", err)
	}
	return history, nil
}

// DeviceType определяет тип устройства по User-Agent
func DeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mobile"):
		return "Mobile"
	case strings.Contains(ua, "tablet"):
		return "Tablet"
	default:
		return "Desktop"
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
