package service

//go:generate mockgen -source=report.go -destination=mocks/report_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	reportFormats       = map[string]bool{"pdf": true, "excel": true, "csv": true, "json": true}
	reportStatuses      = map[string]bool{"pending": true, "processing": true, "completed": true, "failed": true, "expired": true}
	templateTypes       = map[string]bool{"standard": true, "executive": true, "analytical": true, "statistical": true, "custom": true}
	scheduleFrequencies = map[string]bool{"daily": true, "weekly": true, "biweekly": true, "monthly": true, "quarterly": true}
)

// ReportRepository определяет контракт хранилища отчетов, шаблонов и расписаний
type ReportRepository interface {
	CreateReport(ctx context.Context, r *models.Report) error
	GetReport(ctx context.Context, id int64) (*models.Report, error)
	ListReports(ctx context.Context, userID int64, status string) ([]*models.Report, error)
	UpdateReport(ctx context.Context, r *models.Report) error
	DeleteReport(ctx context.Context, id int64) error

	CreateTemplate(ctx context.Context, t *models.ReportTemplate) error
	GetTemplate(ctx context.Context, id int64) (*models.ReportTemplate, error)
	// ListTemplates возвращает публичные шаблоны и шаблоны владельца; ownerID == nil - только публичные
	ListTemplates(ctx context.Context, ownerID *int64) ([]*models.ReportTemplate, error)
	UpdateTemplate(ctx context.Context, t *models.ReportTemplate) error
	DeleteTemplate(ctx context.Context, id int64) error

	CreateScheduled(ctx context.Context, sr *models.ScheduledReport) error
	GetScheduled(ctx context.Context, id int64) (*models.ScheduledReport, error)
	ListScheduled(ctx context.Context, userID int64, activeOnly bool) ([]*models.ScheduledReport, error)
	UpdateScheduled(ctx context.Context, sr *models.ScheduledReport) error
	DeleteScheduled(ctx context.Context, id int64) error
}

// ReportService определяет контракт работы с метаданными отчетов
type ReportService interface {
	CreateReport(ctx context.Context, r *models.Report) error
	GetReport(ctx context.Context, userID, id int64) (*models.Report, error)
	ListReports(ctx context.Context, userID int64) ([]*models.Report, error)
	PendingReports(ctx context.Context, userID int64) ([]*models.Report, error)
	UpdateReport(ctx context.Context, userID int64, r *models.Report) error
	DeleteReport(ctx context.Context, userID, id int64) error
	RegenerateReport(ctx context.Context, userID, id int64) (*models.Report, error)

	CreateTemplate(ctx context.Context, t *models.ReportTemplate) error
	GetTemplate(ctx context.Context, userID, id int64) (*models.ReportTemplate, error)
	ListTemplates(ctx context.Context, userID int64) ([]*models.ReportTemplate, error)
	PublicTemplates(ctx context.Context) ([]*models.ReportTemplate, error)
	UpdateTemplate(ctx context.Context, userID int64, t *models.ReportTemplate) error
	DeleteTemplate(ctx context.Context, userID, id int64) error

	CreateScheduled(ctx context.Context, sr *models.ScheduledReport) error
	GetScheduled(ctx context.Context, userID, id int64) (*models.ScheduledReport, error)
	ListScheduled(ctx context.Context, userID int64) ([]*models.ScheduledReport, error)
	UpcomingScheduled(ctx context.Context, userID int64) ([]*models.ScheduledReport, error)
	UpdateScheduled(ctx context.Context, userID int64, sr *models.ScheduledReport) error
	DeleteScheduled(ctx context.Context, userID, id int64) error
	ToggleScheduled(ctx context.Context, userID, id int64) (*models.ScheduledReport, error)
}

type reportService struct {
	repo   ReportRepository
	logger *logrus.Logger
}

func NewReportService(repo ReportRepository, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

func (s *reportService) CreateReport(ctx context.Context, r *models.Report) error {
	if r.Status == "" {
		r.Status = "pending"
	}
	if len(r.Parameters) == 0 {
		r.Parameters = json.RawMessage(`{}`)
	}
	if err := validateReport(r); err != nil {
		return err
	}
	if err := s.repo.CreateReport(ctx, r); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service": "report",
			"method":  "CreateReport",
		}).Error("Failed to create report")
		return fmt.Errorf("service: could not create report: %w", err)
	}
	return nil
}

// GetReport возвращает отчет владельца
func (s *reportService) GetReport(ctx context.Context, userID, id int64) (*models.Report, error) {
	r, err := s.repo.GetReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	if r.UserID != userID {
		return nil, fmt.Errorf("service: could not get report: %w", ErrNotFound)
	}
	return r, nil
}

func (s *reportService) ListReports(ctx context.Context, userID int64) ([]*models.Report, error) {
	list, err := s.repo.ListReports(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}
	return list, nil
}

func (s *reportService) PendingReports(ctx context.Context, userID int64) ([]*models.Report, error) {
	list, err := s.repo.ListReports(ctx, userID, "pending")
	if err != nil {
		return nil, fmt.Errorf("service: could not list pending reports: %w", err)
	}
	return list, nil
}

func (s *reportService) UpdateReport(ctx context.Context, userID int64, r *models.Report) error {
	existing, err := s.GetReport(ctx, userID, r.ID)
	if err != nil {
		return err
	}
	r.UserID = existing.UserID
	if r.Status == "" {
		r.Status = existing.Status
	}
	if len(r.Parameters) == 0 {
		r.Parameters = existing.Parameters
	}
	if err := validateReport(r); err != nil {
		return err
	}
	if err := s.repo.UpdateReport(ctx, r); err != nil {
		return fmt.Errorf("service: could not update report: %w", err)
	}
	return nil
}

func (s *reportService) DeleteReport(ctx context.Context, userID, id int64) error {
	if _, err := s.GetReport(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.DeleteReport(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete report: %w", err)
	}
	return nil
}

// RegenerateReport возвращает отчет в очередь на формирование
func (s *reportService) RegenerateReport(ctx context.Context, userID, id int64) (*models.Report, error) {
	r, err := s.GetReport(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	r.Status = "pending"
	r.StatusMessage = ""
	if err := s.repo.UpdateReport(ctx, r); err != nil {
		return nil, fmt.Errorf("service: could not regenerate report: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "RegenerateReport",
		"report_id": id,
	}).Info("Report queued for regeneration")
	return r, nil
}

func (s *reportService) CreateTemplate(ctx context.Context, t *models.ReportTemplate) error {
	applyTemplateDefaults(t)
	if err := validateTemplate(t); err != nil {
		return err
	}
	if err := s.repo.CreateTemplate(ctx, t); err != nil {
		return fmt.Errorf("service: could not create template: %w", err)
	}
	return nil
}

// GetTemplate возвращает шаблон, если он публичный или принадлежит пользователю
func (s *reportService) GetTemplate(ctx context.Context, userID, id int64) (*models.ReportTemplate, error) {
	t, err := s.repo.GetTemplate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get template: %w", err)
	}
	if !t.IsPublic && !ownedBy(t.OwnerID, userID) {
		return nil, fmt.Errorf("service: could not get template: %w", ErrNotFound)
	}
	return t, nil
}

func (s *reportService) ListTemplates(ctx context.Context, userID int64) ([]*models.ReportTemplate, error) {
	list, err := s.repo.ListTemplates(ctx, &userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list templates: %w", err)
	}
	return list, nil
}

func (s *reportService) PublicTemplates(ctx context.Context) ([]*models.ReportTemplate, error) {
	list, err := s.repo.ListTemplates(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("service: could not list public templates: %w", err)
	}
	return list, nil
}

// UpdateTemplate изменяет шаблон. Чужой публичный шаблон виден, но не редактируется.
func (s *reportService) UpdateTemplate(ctx context.Context, userID int64, t *models.ReportTemplate) error {
	existing, err := s.GetTemplate(ctx, userID, t.ID)
	if err != nil {
		return err
	}
	if !ownedBy(existing.OwnerID, userID) {
		return fmt.Errorf("service: could not update template: %w", ErrForbidden)
	}
	t.OwnerID = existing.OwnerID
	applyTemplateDefaults(t)
	if err := validateTemplate(t); err != nil {
		return err
	}
	if err := s.repo.UpdateTemplate(ctx, t); err != nil {
		return fmt.Errorf("service: could not update template: %w", err)
	}
	return nil
}

func (s *reportService) DeleteTemplate(ctx context.Context, userID, id int64) error {
	existing, err := s.GetTemplate(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ownedBy(existing.OwnerID, userID) {
		return fmt.Errorf("service: could not delete template: %w", ErrForbidden)
	}
	if err := s.repo.DeleteTemplate(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete template: %w", err)
	}
	return nil
}

func (s *reportService) CreateScheduled(ctx context.Context, sr *models.ScheduledReport) error {
	if len(sr.Parameters) == 0 {
		sr.Parameters = json.RawMessage(`{}`)
	}
	if err := validateScheduled(sr); err != nil {
		return err
	}
	if _, err := s.GetTemplate(ctx, sr.UserID, sr.TemplateID); err != nil {
		return NewValidationError("template", "Template not found.")
	}
	if err := s.repo.CreateScheduled(ctx, sr); err != nil {
		return fmt.Errorf("service: could not create scheduled report: %w", err)
	}
	return nil
}

func (s *reportService) GetScheduled(ctx context.Context, userID, id int64) (*models.ScheduledReport, error) {
	sr, err := s.repo.GetScheduled(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get scheduled report: %w", err)
	}
	if sr.UserID != userID {
		return nil, fmt.Errorf("service: could not get scheduled report: %w", ErrNotFound)
	}
	return sr, nil
}

func (s *reportService) ListScheduled(ctx context.Context, userID int64) ([]*models.ScheduledReport, error) {
	list, err := s.repo.ListScheduled(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("service: could not list scheduled reports: %w", err)
	}
	return list, nil
}

func (s *reportService) UpcomingScheduled(ctx context.Context, userID int64) ([]*models.ScheduledReport, error) {
	list, err := s.repo.ListScheduled(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("service: could not list upcoming reports: %w", err)
	}
	return list, nil
}

func (s *reportService) UpdateScheduled(ctx context.Context, userID int64, sr *models.ScheduledReport) error {
	existing, err := s.GetScheduled(ctx, userID, sr.ID)
	if err != nil {
		return err
	}
	sr.UserID = existing.UserID
	sr.LastGenerated = existing.LastGenerated
	if len(sr.Parameters) == 0 {
		sr.Parameters = existing.Parameters
	}
	if err := validateScheduled(sr); err != nil {
		return err
	}
	if err := s.repo.UpdateScheduled(ctx, sr); err != nil {
		return fmt.Errorf("service: could not update scheduled report: %w", err)
	}
	return nil
}

func (s *reportService) DeleteScheduled(ctx context.Context, userID, id int64) error {
	if _, err := s.GetScheduled(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.DeleteScheduled(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete scheduled report: %w", err)
	}
	return nil
}

// ToggleScheduled инвертирует флаг is_active
func (s *reportService) ToggleScheduled(ctx context.Context, userID, id int64) (*models.ScheduledReport, error) {
	sr, err := s.GetScheduled(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	sr.IsActive = !sr.IsActive
	if err := s.repo.UpdateScheduled(ctx, sr); err != nil {
		return nil, fmt.Errorf("service: could not toggle scheduled report: %w", err)
	}
	return sr, nil
}

func ownedBy(ownerID *int64, userID int64) bool {
	return ownerID != nil && *ownerID == userID
}

func validateReport(r *models.Report) error {
	fields := map[string]string{}
	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = "This field is required."
	}
	if r.StartDate.IsZero() {
		fields["start_date"] = "This field is required."
	}
	if r.EndDate.IsZero() {
		fields["end_date"] = "This field is required."
	} else if r.EndDate.Before(r.StartDate) {
		fields["end_date"] = "End date must not be before start date."
	}
	if !reportFormats[r.Format] {
		fields["format"] = fmt.Sprintf("%q is not a valid choice.", r.Format)
	}
	if !reportStatuses[r.Status] {
		fields["status"] = fmt.Sprintf("%q is not a valid choice.", r.Status)
	}
	if r.AreaOfInterest != nil {
		if err := models.ValidatePolygon(r.AreaOfInterest); err != nil {
			fields["area_of_interest"] = err.Error()
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func applyTemplateDefaults(t *models.ReportTemplate) {
	if t.TemplateType == "" {
		t.TemplateType = "standard"
	}
	if t.Format == "" {
		t.Format = "pdf"
	}
	if len(t.Sections) == 0 {
		t.Sections = json.RawMessage(`[]`)
	}
}

func validateTemplate(t *models.ReportTemplate) error {
	fields := map[string]string{}
	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = "This field is required."
	}
	if !templateTypes[t.TemplateType] {
		fields["template_type"] = fmt.Sprintf("%q is not a valid choice.", t.TemplateType)
	}
	if !reportFormats[t.Format] {
		fields["format"] = fmt.Sprintf("%q is not a valid choice.", t.Format)
	}
	var sections []json.RawMessage
	if err := json.Unmarshal(t.Sections, &sections); err != nil {
		fields["sections"] = "Must be a JSON array."
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateScheduled(sr *models.ScheduledReport) error {
	fields := map[string]string{}
	if strings.TrimSpace(sr.Name) == "" {
		fields["name"] = "This field is required."
	}
	if sr.TemplateID == 0 {
		fields["template"] = "This field is required."
	}
	if !scheduleFrequencies[sr.Frequency] {
		fields["frequency"] = fmt.Sprintf("%q is not a valid choice.", sr.Frequency)
	}
	if sr.DayOfWeek != nil && (*sr.DayOfWeek < 0 || *sr.DayOfWeek > 6) {
		fields["day_of_week"] = "Ensure this value is between 0 and 6."
	}
	if sr.DayOfMonth != nil && (*sr.DayOfMonth < 1 || *sr.DayOfMonth > 31) {
		fields["day_of_month"] = "Ensure this value is between 1 and 31."
	}
	if sr.Hour < 0 || sr.Hour > 23 {
		fields["hour"] = "Ensure this value is between 0 and 23."
	}
	if sr.Minute < 0 || sr.Minute > 59 {
		fields["minute"] = "Ensure this value is between 0 and 59."
	}
	if strings.TrimSpace(sr.DeliveryEmail) == "" {
		fields["delivery_email"] = "This field is required."
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
