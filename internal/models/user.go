package models

import "time"

type UserType string

const (
	UserTypePublic  UserType = "public"
	UserTypeAgency  UserType = "agency"
	UserTypeAdmin   UserType = "admin"
	UserTypeAnalyst UserType = "analyst"
)

// User - учетная запись пользователя платформы
type User struct {
	ID                 int64      `json:"id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"-"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	PhoneNumber        string     `json:"phone_number"`
	UserType           UserType   `json:"user_type"`
	ThemePreference    string     `json:"theme_preference"`
	EmailNotifications bool       `json:"email_notifications"`
	SMSNotifications   bool       `json:"sms_notifications"`
	PushNotifications  bool       `json:"push_notifications"`
	IsEmailVerified    bool       `json:"is_email_verified"`
	VerificationToken  string     `json:"-"`
	CreatedIP          *string    `json:"-"`
	LastLoginIP        *string    `json:"-"`
	IsActive           bool       `json:"is_active"`
	DateJoined         time.Time  `json:"date_joined"`
	LastLogin          *time.Time `json:"last_login,omitempty"`

	Profile *UserProfile `json:"profile,omitempty"`
}

// UserProfile - расширенные данные профиля, создаются вместе с пользователем
type UserProfile struct {
	UserID              int64     `json:"-"`
	Bio                 string    `json:"bio"`
	Address             string    `json:"address"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	ZipCode             string    `json:"zip_code"`
	Country             string    `json:"country"`
	DefaultSearchRadius int       `json:"default_search_radius"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// LoginHistory - запись о попытке входа
type LoginHistory struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	LoginTime     time.Time `json:"login_time"`
	IPAddress     *string   `json:"ip_address"`
	UserAgent     string    `json:"user_agent"`
	DeviceType    string    `json:"device_type"`
	WasSuccessful bool      `json:"was_successful"`
	FailureReason string    `json:"failure_reason"`
}

// Session - серверная сессия, хранится в Redis
type Session struct {
	Token     string    `json:"-"`
	UserID    int64     `json:"user_id"`
	UserType  UserType  `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterInput - данные регистрации
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	PhoneNumber     string
	UserType        UserType
	ClientIP        string
}

// LoginInput - данные входа
type LoginInput struct {
	Username  string
	Password  string
	ClientIP  string
	UserAgent string
}
