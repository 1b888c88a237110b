package models

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb"
)

// Agency - правоохранительный орган, источник данных о преступлениях
type Agency struct {
	ID                int64            `json:"id"`
	Name              string           `json:"name"`
	AgencyCode        string           `json:"agency_code"`
	AgencyType        string           `json:"agency_type"`
	ContactEmail      string           `json:"contact_email"`
	ContactPhone      string           `json:"contact_phone"`
	JurisdictionArea  orb.MultiPolygon `json:"-"`
	Address           string           `json:"address"`
	City              string           `json:"city"`
	State             string           `json:"state"`
	ZipCode           string           `json:"zip_code"`
	IsActive          bool             `json:"is_active"`
	IntegrationStatus string           `json:"integration_status"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// AgencyAPIConfig - параметры интеграции с API органа
type AgencyAPIConfig struct {
	ID            int64           `json:"id"`
	AgencyID      int64           `json:"agency_id"`
	APIType       string          `json:"api_type"`
	ConnectionURL string          `json:"connection_url"`
	AuthType      string          `json:"auth_type"`
	Username      string          `json:"username"`
	Password      string          `json:"-"`
	APIKey        string          `json:"-"`
	Configuration json.RawMessage `json:"configuration"`
	SyncSchedule  string          `json:"sync_schedule"`
	LastSync      *time.Time      `json:"last_sync"`
}

// AgencyUser - связь пользователя с органом
type AgencyUser struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	AgencyID     int64     `json:"agency_id"`
	Role         string    `json:"role"`
	IsPrimary    bool      `json:"is_primary"`
	UserUsername string    `json:"user_username"`
	AgencyName   string    `json:"agency_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AgencyUserFilter - фильтр списка связей
type AgencyUserFilter struct {
	AgencyID *int64
	UserID   *int64
}
