package models

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb"
)

type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationVerified   VerificationStatus = "verified"
	VerificationSuspicious VerificationStatus = "suspicious"
	VerificationCorrected  VerificationStatus = "corrected"
)

// CrimeCategory - категория преступлений
type CrimeCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CrimeType - конкретный тип преступления внутри категории.
// Пара (CategoryID, Name) уникальна.
type CrimeType struct {
	ID            int64  `json:"id"`
	CategoryID    int64  `json:"category"`
	CategoryName  string `json:"category_name"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	SeverityLevel int    `json:"severity_level"`
}

// Crime - отдельный инцидент
type Crime struct {
	ID                 int64              `json:"id"`
	IncidentID         string             `json:"incident_id"`
	CrimeTypeID        int64              `json:"crime_type"`
	CrimeTypeName      string             `json:"crime_type_name"`
	Description        string             `json:"description"`
	OccurredAt         time.Time          `json:"occurred_at"`
	ReportedAt         time.Time          `json:"reported_at"`
	AgencyID           int64              `json:"agency"`
	AgencyName         string             `json:"agency_name"`
	DataSource         string             `json:"data_source"`
	Location           orb.Point          `json:"-"`
	BlockAddress       string             `json:"block_address"`
	ZipCode            string             `json:"zip_code"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	Country            string             `json:"country"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	IsActive           bool               `json:"is_active"`
	Attributes         []*CrimeAttribute  `json:"attributes"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// CrimeAttribute - произвольный атрибут инцидента, имя уникально в пределах инцидента
type CrimeAttribute struct {
	ID      int64           `json:"id"`
	CrimeID int64           `json:"crime"`
	Name    string          `json:"name"`
	Value   json.RawMessage `json:"value"`
}

// CrimeFilter - параметры выборки списка инцидентов
type CrimeFilter struct {
	CrimeTypeID        *int64
	AgencyID           *int64
	City               string
	State              string
	VerificationStatus string
	Search             string
	OrderBy            string
	Descending         bool
	IncludeInactive    bool
	Page               int
	PageSize           int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePage приводит номер и размер страницы к допустимым значениям
func (f *CrimeFilter) NormalizePage() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

// CrimeTypeFilter - параметры выборки типов
type CrimeTypeFilter struct {
	CategoryID    *int64
	SeverityLevel *int
	Search        string
}
