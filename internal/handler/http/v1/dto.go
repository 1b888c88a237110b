package v1

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/crime_analysis_system/internal/models"
)

// RegisterRequest DTO для регистрации
// @Description DTO для регистрации
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	FirstName       string `json:"first_name,omitempty" validate:"max=150"`
	LastName        string `json:"last_name,omitempty" validate:"max=150"`
	PhoneNumber     string `json:"phone_number,omitempty" validate:"max=20"`
	UserType        string `json:"user_type,omitempty"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse DTO ответа регистрации и входа
type AuthResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// ProfileRequest DTO для изменения профиля
type ProfileRequest struct {
	Bio                 string `json:"bio"`
	Address             string `json:"address" validate:"max=255"`
	City                string `json:"city" validate:"max=100"`
	State               string `json:"state" validate:"max=100"`
	ZipCode             string `json:"zip_code" validate:"max=20"`
	Country             string `json:"country" validate:"max=100"`
	DefaultSearchRadius int    `json:"default_search_radius" validate:"required,gt=0"`
}

// AgencyRequest DTO для создания и изменения органа
// @Description DTO для создания и изменения органа
type AgencyRequest struct {
	Name              string          `json:"name" validate:"required,max=255"`
	AgencyCode        string          `json:"agency_code" validate:"required,max=50"`
	AgencyType        string          `json:"agency_type" validate:"required,oneof=police dci nps ipoa other"`
	ContactEmail      string          `json:"contact_email" validate:"omitempty,email"`
	ContactPhone      string          `json:"contact_phone" validate:"max=20"`
	JurisdictionArea  json.RawMessage `json:"jurisdiction_area,omitempty" swaggertype:"object"`
	Address           string          `json:"address"`
	City              string          `json:"city" validate:"max=100"`
	State             string          `json:"state" validate:"max=100"`
	ZipCode           string          `json:"zip_code" validate:"max=20"`
	IsActive          *bool           `json:"is_active,omitempty"`
	IntegrationStatus string          `json:"integration_status,omitempty" validate:"omitempty,oneof=pending active suspended inactive"`
}

// AgencyResponse DTO органа с границами юрисдикции в GeoJSON
type AgencyResponse struct {
	*models.Agency
	JurisdictionArea *geojson.Geometry `json:"jurisdiction_area" swaggertype:"object"`
}

// APIConfigRequest DTO конфигурации интеграции органа
type APIConfigRequest struct {
	AgencyID      int64           `json:"agency_id,omitempty"`
	APIType       string          `json:"api_type" validate:"required,oneof=rest soap ftp sftp database file other"`
	ConnectionURL string          `json:"connection_url" validate:"required,max=255"`
	AuthType      string          `json:"auth_type,omitempty" validate:"omitempty,oneof=none basic token oauth certificate other"`
	Username      string          `json:"username,omitempty"`
	Password      string          `json:"password,omitempty"`
	APIKey        string          `json:"api_key,omitempty"`
	Configuration json.RawMessage `json:"configuration,omitempty" swaggertype:"object"`
	SyncSchedule  string          `json:"sync_schedule,omitempty" validate:"omitempty,cron"`
}

// AgencyUserRequest DTO связи пользователя с органом
type AgencyUserRequest struct {
	UserID    int64  `json:"user_id" validate:"required,gt=0"`
	AgencyID  int64  `json:"agency_id" validate:"required,gt=0"`
	Role      string `json:"role,omitempty" validate:"omitempty,oneof=admin data_provider analyst viewer"`
	IsPrimary bool   `json:"is_primary"`
}

// CategoryRequest DTO категории преступлений
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

// CrimeTypeRequest DTO типа преступления
type CrimeTypeRequest struct {
	CategoryID    int64  `json:"category" validate:"required,gt=0"`
	Name          string `json:"name" validate:"required,max=100"`
	Description   string `json:"description"`
	SeverityLevel int    `json:"severity_level,omitempty" validate:"omitempty,gte=1,lte=5"`
}

// AttributeInput - атрибут, передаваемый вместе с инцидентом
type AttributeInput struct {
	Name  string          `json:"name" validate:"required,max=100"`
	Value json.RawMessage `json:"value" swaggertype:"object"`
}

// CrimeRequest DTO для создания и изменения инцидента.
// Точка передается как GeoJSON в location или парой latitude/longitude.
// @Description DTO инцидента
type CrimeRequest struct {
	IncidentID         string           `json:"incident_id" validate:"required,max=100"`
	CrimeTypeID        int64            `json:"crime_type" validate:"required,gt=0"`
	Description        string           `json:"description"`
	OccurredAt         time.Time        `json:"occurred_at"`
	ReportedAt         *time.Time       `json:"reported_at,omitempty"`
	AgencyID           int64            `json:"agency" validate:"required,gt=0"`
	DataSource         string           `json:"data_source" validate:"max=100"`
	Location           json.RawMessage  `json:"location,omitempty" swaggertype:"object"`
	Latitude           *float64         `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude          *float64         `json:"longitude,omitempty" validate:"omitempty,longitude"`
	BlockAddress       string           `json:"block_address" validate:"max=255"`
	ZipCode            string           `json:"zip_code" validate:"max=20"`
	City               string           `json:"city" validate:"max=100"`
	State              string           `json:"state" validate:"max=100"`
	Country            string           `json:"country" validate:"max=100"`
	VerificationStatus string           `json:"verification_status,omitempty" validate:"omitempty,oneof=unverified verified suspicious corrected"`
	IsActive           *bool            `json:"is_active,omitempty"`
	Attributes         []AttributeInput `json:"attributes,omitempty" validate:"dive"`
}

// CrimeResponse DTO инцидента с точкой в GeoJSON и в виде координат
type CrimeResponse struct {
	*models.Crime
	Location  *geojson.Geometry `json:"location" swaggertype:"object"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
}

// CrimeListResponse - страница инцидентов
type CrimeListResponse struct {
	Count    int              `json:"count"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Results  []*CrimeResponse `json:"results"`
}

// AttributeRequest DTO атрибута инцидента
type AttributeRequest struct {
	CrimeID int64           `json:"crime" validate:"required,gt=0"`
	Name    string          `json:"name" validate:"required,max=100"`
	Value   json.RawMessage `json:"value" swaggertype:"object"`
}

// AlertRequest DTO подписки
// @Description DTO подписки на инциденты в радиусе
type AlertRequest struct {
	Name                 string          `json:"name" validate:"required,max=100"`
	CrimeTypeIDs         []int64         `json:"crime_types"`
	Location             json.RawMessage `json:"location,omitempty" swaggertype:"object"`
	Latitude             *float64        `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude            *float64        `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Address              string          `json:"address" validate:"max=255"`
	SearchDistanceMeters int             `json:"search_distance_meters,omitempty" validate:"omitempty,gt=0"`
	IsActive             *bool           `json:"is_active,omitempty"`
	NotificationMethod   string          `json:"notification_method,omitempty" validate:"omitempty,oneof=email sms push in_app"`
	CheckFrequency       string          `json:"check_frequency,omitempty" validate:"omitempty,oneof=realtime hourly daily weekly"`
	NotificationContact  string          `json:"notification_contact" validate:"max=255"`
}

// AlertResponse DTO подписки
type AlertResponse struct {
	*models.Alert
	Location  *geojson.Geometry `json:"location" swaggertype:"object"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
}

// EvaluateResponse - результат ручной проверки подписки
type EvaluateResponse struct {
	Created      bool                      `json:"created"`
	Notification *models.AlertNotification `json:"notification"`
}

// NotificationStatusRequest DTO смены статуса уведомления
type NotificationStatusRequest struct {
	Status        string `json:"status" validate:"required,oneof=pending sent failed received read"`
	StatusMessage string `json:"status_message"`
}

// ReportRequest DTO отчета
type ReportRequest struct {
	Title          string          `json:"title" validate:"required,max=255"`
	Parameters     json.RawMessage `json:"parameters,omitempty" swaggertype:"object"`
	AreaOfInterest json.RawMessage `json:"area_of_interest,omitempty" swaggertype:"object"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	Format         string          `json:"format" validate:"required,oneof=pdf excel csv json"`
	Status         string          `json:"status,omitempty" validate:"omitempty,oneof=pending processing completed failed expired"`
	StatusMessage  string          `json:"status_message,omitempty"`
	FilePath       string          `json:"file,omitempty"`
	IncludeCharts  *bool           `json:"include_charts,omitempty"`
	IncludeMaps    *bool           `json:"include_maps,omitempty"`
	IncludeTrends  *bool           `json:"include_trends,omitempty"`
	ExpiresAt      *time.Time      `json:"expires_at,omitempty"`
}

// ReportResponse DTO отчета
type ReportResponse struct {
	*models.Report
	AreaOfInterest *geojson.Geometry `json:"area_of_interest" swaggertype:"object"`
}

// TemplateRequest DTO шаблона отчета
type TemplateRequest struct {
	Name         string          `json:"name" validate:"required,max=100"`
	Description  string          `json:"description"`
	TemplateType string          `json:"template_type,omitempty" validate:"omitempty,oneof=standard executive analytical statistical custom"`
	Format       string          `json:"format,omitempty" validate:"omitempty,oneof=pdf excel csv json"`
	TemplateHTML string          `json:"template_html"`
	Sections     json.RawMessage `json:"sections,omitempty" swaggertype:"array,object"`
	IsPublic     bool            `json:"is_public"`
}

// ScheduledReportRequest DTO отчета по расписанию
type ScheduledReportRequest struct {
	Name          string          `json:"name" validate:"required,max=100"`
	TemplateID    int64           `json:"template" validate:"required,gt=0"`
	Parameters    json.RawMessage `json:"parameters,omitempty" swaggertype:"object"`
	Frequency     string          `json:"frequency" validate:"required,oneof=daily weekly biweekly monthly quarterly"`
	DayOfWeek     *int            `json:"day_of_week,omitempty" validate:"omitempty,gte=0,lte=6"`
	DayOfMonth    *int            `json:"day_of_month,omitempty" validate:"omitempty,gte=1,lte=31"`
	Hour          int             `json:"hour" validate:"gte=0,lte=23"`
	Minute        int             `json:"minute" validate:"gte=0,lte=59"`
	DeliveryEmail string          `json:"delivery_email" validate:"required,email"`
	IsActive      *bool           `json:"is_active,omitempty"`
}

// PredictiveModelRequest DTO прогнозной модели
type PredictiveModelRequest struct {
	Name               string          `json:"name" validate:"required,max=100"`
	Description        string          `json:"description"`
	ModelType          string          `json:"model_type" validate:"required,oneof=hotspot time_series regression classification clustering"`
	ModelVersion       string          `json:"model_version" validate:"required,max=20"`
	Status             string          `json:"status,omitempty" validate:"omitempty,oneof=draft training active archived"`
	Parameters         json.RawMessage `json:"parameters,omitempty" swaggertype:"object"`
	TargetCrimeTypeIDs []int64         `json:"target_crime_types"`
}

// PredictionRequest DTO прогноза
type PredictionRequest struct {
	ModelID             int64           `json:"model" validate:"required,gt=0"`
	Area                json.RawMessage `json:"area,omitempty" swaggertype:"object"`
	PredictionStartDate time.Time       `json:"prediction_start_date"`
	PredictionEndDate   time.Time       `json:"prediction_end_date"`
	PredictedCount      int             `json:"predicted_count" validate:"gte=0"`
	ConfidenceLevel     float64         `json:"confidence_level" validate:"gte=0,lte=1"`
	Details             json.RawMessage `json:"details,omitempty" swaggertype:"object"`
}

// PredictionResponse DTO прогноза
type PredictionResponse struct {
	*models.Prediction
	Area *geojson.Geometry `json:"area" swaggertype:"object"`
}

// AnalysisRequestRequest DTO запроса на анализ
type AnalysisRequestRequest struct {
	Title              string          `json:"title" validate:"required,max=255"`
	Description        string          `json:"description"`
	Area               json.RawMessage `json:"area,omitempty" swaggertype:"object"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	CrimeTypeIDs       []int64         `json:"crime_types"`
	Status             string          `json:"status,omitempty" validate:"omitempty,oneof=pending processing completed failed"`
	ResultPredictionID *int64          `json:"result_prediction,omitempty"`
}

// AnalysisRequestResponse DTO запроса на анализ
type AnalysisRequestResponse struct {
	*models.AnalysisRequest
	Area *geojson.Geometry `json:"area" swaggertype:"object"`
}

// DataSourceRequest DTO источника данных
type DataSourceRequest struct {
	AgencyID       int64           `json:"agency" validate:"required,gt=0"`
	Name           string          `json:"name" validate:"required,max=100"`
	Description    string          `json:"description"`
	SourceType     string          `json:"source_type" validate:"required,oneof=api database file feed scraper manual"`
	Configuration  json.RawMessage `json:"configuration,omitempty" swaggertype:"object"`
	IsActive       *bool           `json:"is_active,omitempty"`
	FieldMapping   json.RawMessage `json:"field_mapping,omitempty" swaggertype:"object"`
	SyncFrequency  string          `json:"sync_frequency,omitempty" validate:"omitempty,oneof=realtime hourly daily weekly monthly on_demand"`
	CronExpression string          `json:"cron_expression,omitempty" validate:"omitempty,cron"`
}

// ETLJobRequest DTO регистрации задачи
type ETLJobRequest struct {
	DataSourceID int64           `json:"data_source" validate:"required,gt=0"`
	JobID        string          `json:"job_id" validate:"required,max=100"`
	Status       string          `json:"status,omitempty" validate:"omitempty,oneof=scheduled running"`
	Parameters   json.RawMessage `json:"parameters,omitempty" swaggertype:"object"`
}

// ETLJobParametersRequest DTO изменения параметров задачи
type ETLJobParametersRequest struct {
	Parameters json.RawMessage `json:"parameters" swaggertype:"object"`
}

// JobTransitionRequest DTO смены статуса задачи
type JobTransitionRequest struct {
	Status       string          `json:"status" validate:"required,oneof=running completed failed canceled"`
	ErrorMessage string          `json:"error_message"`
	ErrorDetails json.RawMessage `json:"error_details,omitempty" swaggertype:"object"`
}

// JobCountersRequest DTO счетчиков задачи
type JobCountersRequest struct {
	Processed int `json:"records_processed" validate:"gte=0"`
	Created   int `json:"records_created" validate:"gte=0"`
	Updated   int `json:"records_updated" validate:"gte=0"`
	Skipped   int `json:"records_skipped" validate:"gte=0"`
	Failed    int `json:"records_failed" validate:"gte=0"`
}

// ValidationRuleRequest DTO правила проверки
type ValidationRuleRequest struct {
	DataSourceID  int64           `json:"data_source" validate:"required,gt=0"`
	Name          string          `json:"name" validate:"required,max=100"`
	Description   string          `json:"description"`
	RuleType      string          `json:"rule_type" validate:"required,oneof=required format range enum unique reference custom"`
	FieldName     string          `json:"field_name" validate:"required,max=100"`
	Configuration json.RawMessage `json:"configuration,omitempty" swaggertype:"object"`
	ErrorAction   string          `json:"error_action,omitempty" validate:"omitempty,oneof=reject warn correct ignore"`
	Priority      int             `json:"priority,omitempty" validate:"omitempty,gte=1"`
	IsActive      *bool           `json:"is_active,omitempty"`
}

// JobLogRequest DTO записи журнала задачи
type JobLogRequest struct {
	JobID          int64           `json:"job" validate:"required,gt=0"`
	Level          string          `json:"level,omitempty" validate:"omitempty,oneof=info warning error critical"`
	Message        string          `json:"message" validate:"required"`
	Context        json.RawMessage `json:"context,omitempty" swaggertype:"object"`
	SourceRecordID string          `json:"source_record_id" validate:"max=100"`
}

// MessageResponse - ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}
