package service

//go:generate mockgen -source=crime.go -destination=mocks/crime_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/pkg/textnorm"
	"github.com/sirupsen/logrus"
)

const defaultCrimeCountry = "Kenya"

var crimeOrderings = map[string]bool{"occurred_at": true, "reported_at": true, "created_at": true}

// CrimeCatalogRepository определяет контракт справочника категорий и типов
type CrimeCatalogRepository interface {
	CreateCategory(ctx context.Context, c *models.CrimeCategory) error
	GetCategory(ctx context.Context, id int64) (*models.CrimeCategory, error)
	ListCategories(ctx context.Context, search string) ([]*models.CrimeCategory, error)
	UpdateCategory(ctx context.Context, c *models.CrimeCategory) error
	DeleteCategory(ctx context.Context, id int64) error

	CreateType(ctx context.Context, t *models.CrimeType) error
	GetType(ctx context.Context, id int64) (*models.CrimeType, error)
	ListTypes(ctx context.Context, filter models.CrimeTypeFilter) ([]*models.CrimeType, error)
	UpdateType(ctx context.Context, t *models.CrimeType) error
	DeleteType(ctx context.Context, id int64) error
}

// CrimeRepository определяет контракт хранилища инцидентов, их атрибутов и кэша
type CrimeRepository interface {
	Create(ctx context.Context, crime *models.Crime) error
	GetByID(ctx context.Context, id int64) (*models.Crime, error)
	List(ctx context.Context, filter models.CrimeFilter) ([]*models.Crime, int, error)
	Update(ctx context.Context, crime *models.Crime) error
	Deactivate(ctx context.Context, id int64) error

	CreateAttribute(ctx context.Context, attr *models.CrimeAttribute) error
	GetAttribute(ctx context.Context, id int64) (*models.CrimeAttribute, error)
	ListAttributes(ctx context.Context, crimeID *int64) ([]*models.CrimeAttribute, error)
	UpdateAttribute(ctx context.Context, attr *models.CrimeAttribute) error
	DeleteAttribute(ctx context.Context, id int64) error

	GetCrimeFromCache(ctx context.Context, id int64) (*models.Crime, error)
	SetCrimeCache(ctx context.Context, crime *models.Crime) error
	InvalidateCrimeCache(ctx context.Context, id int64) error
}

// CrimeService определяет контракт работы с инцидентами и справочниками
type CrimeService interface {
	CreateCategory(ctx context.Context, c *models.CrimeCategory) error
	GetCategory(ctx context.Context, id int64) (*models.CrimeCategory, error)
	ListCategories(ctx context.Context, search string) ([]*models.CrimeCategory, error)
	UpdateCategory(ctx context.Context, c *models.CrimeCategory) error
	DeleteCategory(ctx context.Context, id int64) error

	CreateType(ctx context.Context, t *models.CrimeType) error
	GetType(ctx context.Context, id int64) (*models.CrimeType, error)
	ListTypes(ctx context.Context, filter models.CrimeTypeFilter) ([]*models.CrimeType, error)
	UpdateType(ctx context.Context, t *models.CrimeType) error
	DeleteType(ctx context.Context, id int64) error

	CreateCrime(ctx context.Context, crime *models.Crime) error
	GetCrime(ctx context.Context, id int64) (*models.Crime, error)
	ListCrimes(ctx context.Context, filter models.CrimeFilter) ([]*models.Crime, int, error)
	UpdateCrime(ctx context.Context, crime *models.Crime) error
	DeleteCrime(ctx context.Context, id int64) error

	CreateAttribute(ctx context.Context, attr *models.CrimeAttribute) error
	GetAttribute(ctx context.Context, id int64) (*models.CrimeAttribute, error)
	ListAttributes(ctx context.Context, crimeID *int64) ([]*models.CrimeAttribute, error)
	UpdateAttribute(ctx context.Context, attr *models.CrimeAttribute) error
	DeleteAttribute(ctx context.Context, id int64) error
}

type crimeService struct {
	catalog CrimeCatalogRepository
	repo    CrimeRepository
	logger  *logrus.Logger
}

func NewCrimeService(catalog CrimeCatalogRepository, repo CrimeRepository, logger *logrus.Logger) CrimeService {
	return &crimeService{
		catalog: catalog,
		repo:    repo,
		logger:  logger,
	}
}

func (s *crimeService) CreateCategory(ctx context.Context, c *models.CrimeCategory) error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "This field is required.")
	}
	if err := s.catalog.CreateCategory(ctx, c); err != nil {
		return fmt.Errorf("service: could not create category: %w", err)
	}
	return nil
}

func (s *crimeService) GetCategory(ctx context.Context, id int64) (*models.CrimeCategory, error) {
	c, err := s.catalog.GetCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get category: %w", err)
	}
	return c, nil
}

func (s *crimeService) ListCategories(ctx context.Context, search string) ([]*models.CrimeCategory, error) {
	list, err := s.catalog.ListCategories(ctx, textnorm.Fold(search))
	if err != nil {
		return nil, fmt.Errorf("service: could not list categories: %w", err)
	}
	return list, nil
}

func (s *crimeService) UpdateCategory(ctx context.Context, c *models.CrimeCategory) error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "This field is required.")
	}
	if err := s.catalog.UpdateCategory(ctx, c); err != nil {
		return fmt.Errorf("service: could not update category: %w", err)
	}
	return nil
}

func (s *crimeService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.catalog.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete category: %w", err)
	}
	return nil
}

// CreateType создает тип. Повтор имени в той же категории дает ErrConflict из хранилища.
func (s *crimeService) CreateType(ctx context.Context, t *models.CrimeType) error {
	if t.SeverityLevel == 0 {
		t.SeverityLevel = 2
	}
	if err := validateCrimeType(t); err != nil {
		return err
	}
	if err := s.catalog.CreateType(ctx, t); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service": "crime",
			"method":  "CreateType",
		}).Warn("Failed to create crime type")
		return fmt.Errorf("service: could not create crime type: %w", err)
	}
	return nil
}

func (s *crimeService) GetType(ctx context.Context, id int64) (*models.CrimeType, error) {
	t, err := s.catalog.GetType(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get crime type: %w", err)
	}
	return t, nil
}

func (s *crimeService) ListTypes(ctx context.Context, filter models.CrimeTypeFilter) ([]*models.CrimeType, error) {
	filter.Search = textnorm.Fold(filter.Search)
	list, err := s.catalog.ListTypes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: could not list crime types: %w", err)
	}
	return list, nil
}

func (s *crimeService) UpdateType(ctx context.Context, t *models.CrimeType) error {
	if err := validateCrimeType(t); err != nil {
		return err
	}
	if err := s.catalog.UpdateType(ctx, t); err != nil {
		return fmt.Errorf("service: could not update crime type: %w", err)
	}
	return nil
}

func (s *crimeService) DeleteType(ctx context.Context, id int64) error {
	if err := s.catalog.DeleteType(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete crime type: %w", err)
	}
	return nil
}

func validateCrimeType(t *models.CrimeType) error {
	fields := map[string]string{}
	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = "This field is required."
	}
	if t.CategoryID == 0 {
		fields["category"] = "This field is required."
	}
	if t.SeverityLevel < 1 || t.SeverityLevel > 4 {
		fields["severity_level"] = "Ensure this value is between 1 and 4."
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateCrime сохраняет инцидент вместе с атрибутами
func (s *crimeService) CreateCrime(ctx context.Context, crime *models.Crime) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "crime",
		"method":      "CreateCrime",
		"incident_id": crime.IncidentID,
	})

	applyCrimeDefaults(crime)
	if err := validateCrime(crime); err != nil {
		log.WithError(err).Warn("Crime rejected")
		return err
	}
	crime.IsActive = true

	if err := s.repo.Create(ctx, crime); err != nil {
		log.WithError(err).Error("Failed to create crime in repository")
		return fmt.Errorf("service: could not create crime: %w", err)
	}
	log.WithField("crime_id", crime.ID).Info("Crime created successfully")
	return nil
}

// GetCrime возвращает инцидент, сначала пытаясь взять его из кэша
func (s *crimeService) GetCrime(ctx context.Context, id int64) (*models.Crime, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "crime",
		"method":   "GetCrime",
		"crime_id": id,
	})

	cached, err := s.repo.GetCrimeFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get crime from cache")
	}
	if cached != nil {
		log.Debug("Crime found in cache")
		return cached, nil
	}

	crime, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get crime: %w", err)
	}

	if err := s.repo.SetCrimeCache(ctx, crime); err != nil {
		log.WithError(err).Warn("Failed to set crime cache")
	}
	return crime, nil
}

// ListCrimes возвращает страницу инцидентов и общее число строк под фильтром
func (s *crimeService) ListCrimes(ctx context.Context, filter models.CrimeFilter) ([]*models.Crime, int, error) {
	filter.NormalizePage()
	if filter.OrderBy == "" {
		filter.OrderBy = "occurred_at"
		filter.Descending = true
	}
	if !crimeOrderings[filter.OrderBy] {
		return nil, 0, NewValidationError("ordering", fmt.Sprintf("%q is not a valid ordering.", filter.OrderBy))
	}
	filter.Search = textnorm.Fold(filter.Search)

	crimes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListCrimes").Error("Failed to list crimes")
		return nil, 0, fmt.Errorf("service: could not list crimes: %w", err)
	}
	return crimes, total, nil
}

func (s *crimeService) UpdateCrime(ctx context.Context, crime *models.Crime) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "crime",
		"method":   "UpdateCrime",
		"crime_id": crime.ID,
	})

	applyCrimeDefaults(crime)
	if err := validateCrime(crime); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, crime); err != nil {
		log.WithError(err).Error("Failed to update crime in repository")
		return fmt.Errorf("service: could not update crime: %w", err)
	}

	if err := s.repo.InvalidateCrimeCache(ctx, crime.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate crime cache")
	}
	return nil
}

// DeleteCrime снимает флаг is_active, физически строка не удаляется
func (s *crimeService) DeleteCrime(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "crime",
		"method":   "DeleteCrime",
		"crime_id": id,
	})

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate crime")
		return fmt.Errorf("service: could not delete crime: %w", err)
	}
	if err := s.repo.InvalidateCrimeCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate crime cache")
	}
	log.Info("Crime deactivated")
	return nil
}

func (s *crimeService) CreateAttribute(ctx context.Context, attr *models.CrimeAttribute) error {
	if strings.TrimSpace(attr.Name) == "" {
		return NewValidationError("name", "This field is required.")
	}
	if err := s.repo.CreateAttribute(ctx, attr); err != nil {
		return fmt.Errorf("service: could not create attribute: %w", err)
	}
	s.invalidate(ctx, attr.CrimeID)
	return nil
}

func (s *crimeService) GetAttribute(ctx context.Context, id int64) (*models.CrimeAttribute, error) {
	attr, err := s.repo.GetAttribute(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get attribute: %w", err)
	}
	return attr, nil
}

func (s *crimeService) ListAttributes(ctx context.Context, crimeID *int64) ([]*models.CrimeAttribute, error) {
	list, err := s.repo.ListAttributes(ctx, crimeID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list attributes: %w", err)
	}
	return list, nil
}

func (s *crimeService) UpdateAttribute(ctx context.Context, attr *models.CrimeAttribute) error {
	if strings.TrimSpace(attr.Name) == "" {
		return NewValidationError("name", "This field is required.")
	}
	if err := s.repo.UpdateAttribute(ctx, attr); err != nil {
		return fmt.Errorf("service: could not update attribute: %w", err)
	}
	s.invalidate(ctx, attr.CrimeID)
	return nil
}

func (s *crimeService) DeleteAttribute(ctx context.Context, id int64) error {
	attr, err := s.repo.GetAttribute(ctx, id)
	if err != nil {
		return fmt.Errorf("service: could not get attribute: %w", err)
	}
	if err := s.repo.DeleteAttribute(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete attribute: %w", err)
	}
	s.invalidate(ctx, attr.CrimeID)
	return nil
}

// invalidate сбрасывает кэш инцидента, атрибуты входят в закэшированный объект
func (s *crimeService) invalidate(ctx context.Context, crimeID int64) {
	if err := s.repo.InvalidateCrimeCache(ctx, crimeID); err != nil {
		s.logger.WithError(err).WithField("crime_id", crimeID).Warn("Failed to invalidate crime cache")
	}
}

func applyCrimeDefaults(crime *models.Crime) {
	if crime.Country == "" {
		crime.Country = defaultCrimeCountry
	}
	if crime.VerificationStatus == "" {
		crime.VerificationStatus = models.VerificationUnverified
	}
}

func validateCrime(crime *models.Crime) error {
	fields := map[string]string{}
	if strings.TrimSpace(crime.IncidentID) == "" {
		fields["incident_id"] = "This field is required."
	}
	if crime.CrimeTypeID == 0 {
		fields["crime_type"] = "This field is required."
	}
	if crime.AgencyID == 0 {
		fields["agency"] = "This field is required."
	}
	if crime.OccurredAt.IsZero() {
		fields["occurred_at"] = "This field is required."
	}
	if crime.ReportedAt.IsZero() {
		fields["reported_at"] = "This field is required."
	}
	if err := models.ValidatePoint(crime.Location); err != nil {
		fields["location"] = err.Error()
	}
	switch crime.VerificationStatus {
	case models.VerificationUnverified, models.VerificationVerified, models.VerificationSuspicious, models.VerificationCorrected:
	default:
		fields["verification_status"] = fmt.Sprintf("%q is not a valid choice.", crime.VerificationStatus)
	}
	seen := map[string]bool{}
	for _, a := range crime.Attributes {
		if seen[a.Name] {
			fields["attributes"] = fmt.Sprintf("Duplicate attribute %q.", a.Name)
		}
		seen[a.Name] = true
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
