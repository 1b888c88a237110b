package service

//go:generate mockgen -source=agency.go -destination=mocks/agency_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultSyncSchedule = "0 0 * * *"

var (
	agencyTypes        = map[string]bool{"police": true, "dci": true, "nps": true, "ipoa": true, "other": true}
	integrationStatus  = map[string]bool{"pending": true, "active": true, "suspended": true, "inactive": true}
	apiTypes           = map[string]bool{"rest": true, "soap": true, "ftp": true, "sftp": true, "database": true, "file": true, "other": true}
	authTypes          = map[string]bool{"none": true, "basic": true, "token": true, "oauth": true, "certificate": true, "other": true}
	agencyUserRoles    = map[string]bool{"admin": true, "data_provider": true, "analyst": true, "viewer": true}
	standardCronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
)

// ValidateCron проверяет стандартное cron-выражение из пяти полей
func ValidateCron(expr string) error {
	if _, err := standardCronParser.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}

// AgencyRepository определяет контракт хранилища органов и их интеграций
type AgencyRepository interface {
	Create(ctx context.Context, agency *models.Agency) error
	GetByID(ctx context.Context, id int64) (*models.Agency, error)
	List(ctx context.Context, search string) ([]*models.Agency, error)
	Update(ctx context.Context, agency *models.Agency) error
	Delete(ctx context.Context, id int64) error

	GetAPIConfig(ctx context.Context, agencyID int64) (*models.AgencyAPIConfig, error)
	GetAPIConfigByID(ctx context.Context, id int64) (*models.AgencyAPIConfig, error)
	ListAPIConfigs(ctx context.Context) ([]*models.AgencyAPIConfig, error)
	UpsertAPIConfig(ctx context.Context, cfg *models.AgencyAPIConfig) error
	DeleteAPIConfig(ctx context.Context, id int64) error

	CreateAgencyUser(ctx context.Context, au *models.AgencyUser) error
	GetAgencyUser(ctx context.Context, id int64) (*models.AgencyUser, error)
	ListAgencyUsers(ctx context.Context, filter models.AgencyUserFilter) ([]*models.AgencyUser, error)
	UpdateAgencyUser(ctx context.Context, au *models.AgencyUser) error
	DeleteAgencyUser(ctx context.Context, id int64) error
}

// AgencyService определяет контракт работы с органами
type AgencyService interface {
	CreateAgency(ctx context.Context, agency *models.Agency) error
	GetAgency(ctx context.Context, id int64) (*models.Agency, error)
	ListAgencies(ctx context.Context, search string) ([]*models.Agency, error)
	UpdateAgency(ctx context.Context, agency *models.Agency) error
	DeleteAgency(ctx context.Context, id int64) error

	GetAPIConfig(ctx context.Context, agencyID int64) (*models.AgencyAPIConfig, error)
	GetAPIConfigByID(ctx context.Context, id int64) (*models.AgencyAPIConfig, error)
	ListAPIConfigs(ctx context.Context) ([]*models.AgencyAPIConfig, error)
	SaveAPIConfig(ctx context.Context, cfg *models.AgencyAPIConfig) error
	DeleteAPIConfig(ctx context.Context, id int64) error

	AuthorizedUsers(ctx context.Context, agencyID int64) ([]*models.AgencyUser, error)
	CreateAgencyUser(ctx context.Context, au *models.AgencyUser) error
	GetAgencyUser(ctx context.Context, id int64) (*models.AgencyUser, error)
	ListAgencyUsers(ctx context.Context, filter models.AgencyUserFilter) ([]*models.AgencyUser, error)
	UpdateAgencyUser(ctx context.Context, au *models.AgencyUser) error
	DeleteAgencyUser(ctx context.Context, id int64) error
}

type agencyService struct {
	repo   AgencyRepository
	logger *logrus.Logger
}

func NewAgencyService(repo AgencyRepository, logger *logrus.Logger) AgencyService {
	return &agencyService{
		repo:   repo,
		logger: logger,
	}
}

func (s *agencyService) CreateAgency(ctx context.Context, agency *models.Agency) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "agency",
		"method":      "CreateAgency",
		"agency_code": agency.AgencyCode,
	})

	if agency.IntegrationStatus == "" {
		agency.IntegrationStatus = "pending"
	}
	if err := validateAgency(agency); err != nil {
		log.WithError(err).Warn("Agency rejected")
		return err
	}
	if err := s.repo.Create(ctx, agency); err != nil {
		log.WithError(err).Error("Failed to create agency in repository")
		return fmt.Errorf("service: could not create agency: %w", err)
	}
	log.WithField("agency_id", agency.ID).Info("Agency created successfully")
	return nil
}

func (s *agencyService) GetAgency(ctx context.Context, id int64) (*models.Agency, error) {
	agency, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get agency: %w", err)
	}
	return agency, nil
}

func (s *agencyService) ListAgencies(ctx context.Context, search string) ([]*models.Agency, error) {
	list, err := s.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("service: could not list agencies: %w", err)
	}
	return list, nil
}

func (s *agencyService) UpdateAgency(ctx context.Context, agency *models.Agency) error {
	if agency.IntegrationStatus == "" {
		agency.IntegrationStatus = "pending"
	}
	if err := validateAgency(agency); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, agency); err != nil {
		return fmt.Errorf("service: could not update agency: %w", err)
	}
	return nil
}

func (s *agencyService) DeleteAgency(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete agency: %w", err)
	}
	return nil
}

// GetAPIConfig возвращает конфигурацию интеграции органа
func (s *agencyService) GetAPIConfig(ctx context.Context, agencyID int64) (*models.AgencyAPIConfig, error) {
	cfg, err := s.repo.GetAPIConfig(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get api config: %w", err)
	}
	return cfg, nil
}

func (s *agencyService) GetAPIConfigByID(ctx context.Context, id int64) (*models.AgencyAPIConfig, error) {
	cfg, err := s.repo.GetAPIConfigByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get api config: %w", err)
	}
	return cfg, nil
}

func (s *agencyService) ListAPIConfigs(ctx context.Context) ([]*models.AgencyAPIConfig, error) {
	list, err := s.repo.ListAPIConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list api configs: %w", err)
	}
	return list, nil
}

// SaveAPIConfig создает или заменяет конфигурацию интеграции органа (одна на орган)
func (s *agencyService) SaveAPIConfig(ctx context.Context, cfg *models.AgencyAPIConfig) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "agency",
		"method":    "SaveAPIConfig",
		"agency_id": cfg.AgencyID,
	})

	if cfg.SyncSchedule == "" {
		cfg.SyncSchedule = defaultSyncSchedule
	}
	if cfg.AuthType == "" {
		cfg.AuthType = "none"
	}
	if len(cfg.Configuration) == 0 {
		cfg.Configuration = []byte("{}")
	}
	if err := validateAPIConfig(cfg); err != nil {
		log.WithError(err).Warn("API config rejected")
		return err
	}

	if _, err := s.repo.GetByID(ctx, cfg.AgencyID); err != nil {
		return fmt.Errorf("service: could not get agency: %w", err)
	}
	if err := s.repo.UpsertAPIConfig(ctx, cfg); err != nil {
		log.WithError(err).Error("Failed to save api config")
		return fmt.Errorf("service: could not save api config: %w", err)
	}
	return nil
}

func (s *agencyService) DeleteAPIConfig(ctx context.Context, id int64) error {
	if err := s.repo.DeleteAPIConfig(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete api config: %w", err)
	}
	return nil
}

// AuthorizedUsers возвращает пользователей, привязанных к органу
func (s *agencyService) AuthorizedUsers(ctx context.Context, agencyID int64) ([]*models.AgencyUser, error) {
	if _, err := s.repo.GetByID(ctx, agencyID); err != nil {
		return nil, fmt.Errorf("service: could not get agency: %w", err)
	}
	return s.ListAgencyUsers(ctx, models.AgencyUserFilter{AgencyID: &agencyID})
}

func (s *agencyService) CreateAgencyUser(ctx context.Context, au *models.AgencyUser) error {
	if au.Role == "" {
		au.Role = "viewer"
	}
	if !agencyUserRoles[au.Role] {
		return NewValidationError("role", fmt.Sprintf("%q is not a valid choice.", au.Role))
	}
	if err := s.repo.CreateAgencyUser(ctx, au); err != nil {
		return fmt.Errorf("service: could not create agency user: %w", err)
	}
	return nil
}

func (s *agencyService) GetAgencyUser(ctx context.Context, id int64) (*models.AgencyUser, error) {
	au, err := s.repo.GetAgencyUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get agency user: %w", err)
	}
	return au, nil
}

func (s *agencyService) ListAgencyUsers(ctx context.Context, filter models.AgencyUserFilter) ([]*models.AgencyUser, error) {
	list, err := s.repo.ListAgencyUsers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: could not list agency users: %w", err)
	}
	return list, nil
}

func (s *agencyService) UpdateAgencyUser(ctx context.Context, au *models.AgencyUser) error {
	if !agencyUserRoles[au.Role] {
		return NewValidationError("role", fmt.Sprintf("%q is not a valid choice.", au.Role))
	}
	if err := s.repo.UpdateAgencyUser(ctx, au); err != nil {
		return fmt.Errorf("service: could not update agency user: %w", err)
	}
	return nil
}

func (s *agencyService) DeleteAgencyUser(ctx context.Context, id int64) error {
	if err := s.repo.DeleteAgencyUser(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete agency user: %w", err)
	}
	return nil
}

func validateAgency(agency *models.Agency) error {
	fields := map[string]string{}
	if strings.TrimSpace(agency.Name) == "" {
		fields["name"] = "This field is required."
	}
	if strings.TrimSpace(agency.AgencyCode) == "" {
		fields["agency_code"] = "This field is required."
	}
	if !agencyTypes[agency.AgencyType] {
		fields["agency_type"] = fmt.Sprintf("%q is not a valid choice.", agency.AgencyType)
	}
	if !integrationStatus[agency.IntegrationStatus] {
		fields["integration_status"] = fmt.Sprintf("%q is not a valid choice.", agency.IntegrationStatus)
	}
	if agency.JurisdictionArea != nil {
		if err := models.ValidateMultiPolygon(agency.JurisdictionArea); err != nil {
			fields["jurisdiction_area"] = err.Error()
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateAPIConfig(cfg *models.AgencyAPIConfig) error {
	fields := map[string]string{}
	if !apiTypes[cfg.APIType] {
		fields["api_type"] = fmt.Sprintf("%q is not a valid choice.", cfg.APIType)
	}
	if !authTypes[cfg.AuthType] {
		fields["auth_type"] = fmt.Sprintf("%q is not a valid choice.", cfg.AuthType)
	}
	if err := ValidateCron(cfg.SyncSchedule); err != nil {
		fields["sync_schedule"] = "Invalid cron expression."
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
