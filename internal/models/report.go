package models

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb"
)

// Report - метаданные сформированного отчета. Сам файл рендерится внешним сервисом.
type Report struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	UserID         int64           `json:"user"`
	Parameters     json.RawMessage `json:"parameters"`
	AreaOfInterest orb.Polygon     `json:"-"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	Format         string          `json:"format"`
	FilePath       string          `json:"file"`
	Status         string          `json:"status"`
	StatusMessage  string          `json:"status_message"`
	IncludeCharts  bool            `json:"include_charts"`
	IncludeMaps    bool            `json:"include_maps"`
	IncludeTrends  bool            `json:"include_trends"`
	ExpiresAt      *time.Time      `json:"expires_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ReportTemplate - шаблон отчета
type ReportTemplate struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	TemplateType string          `json:"template_type"`
	Format       string          `json:"format"`
	TemplateHTML string          `json:"template_html"`
	Sections     json.RawMessage `json:"sections"`
	IsPublic     bool            `json:"is_public"`
	OwnerID      *int64          `json:"owner"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ScheduledReport - отчет, формируемый по расписанию
type ScheduledReport struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	UserID        int64           `json:"user"`
	TemplateID    int64           `json:"template"`
	Parameters    json.RawMessage `json:"parameters"`
	Frequency     string          `json:"frequency"`
	DayOfWeek     *int            `json:"day_of_week"`
	DayOfMonth    *int            `json:"day_of_month"`
	Hour          int             `json:"hour"`
	Minute        int             `json:"minute"`
	DeliveryEmail string          `json:"delivery_email"`
	IsActive      bool            `json:"is_active"`
	LastGenerated *time.Time      `json:"last_generated"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
