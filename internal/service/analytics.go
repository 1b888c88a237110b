package service

//go:generate mockgen -source=analytics.go -destination=mocks/analytics_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/sirupsen/logrus"
)

var modelTypes = map[string]bool{"hotspot": true, "time_series": true, "regression": true, "classification": true, "clustering": true}

// AnalyticsRepository определяет контракт хранилища моделей, прогнозов и запросов
type AnalyticsRepository interface {
	CreateModel(ctx context.Context, model *models.PredictiveModel) error
	GetModel(ctx context.Context, id int64) (*models.PredictiveModel, error)
	ListModels(ctx context.Context) ([]*models.PredictiveModel, error)
	UpdateModel(ctx context.Context, model *models.PredictiveModel) error
	DeleteModel(ctx context.Context, id int64) error

	CreatePrediction(ctx context.Context, p *models.Prediction) error
	GetPrediction(ctx context.Context, id int64) (*models.Prediction, error)
	ListPredictions(ctx context.Context, filter models.PredictionFilter) ([]*models.Prediction, error)
	UpdatePrediction(ctx context.Context, p *models.Prediction) error
	DeletePrediction(ctx context.Context, id int64) error

	CreateRequest(ctx context.Context, r *models.AnalysisRequest) error
	GetRequest(ctx context.Context, id int64) (*models.AnalysisRequest, error)
	ListRequests(ctx context.Context, status string) ([]*models.AnalysisRequest, error)
	UpdateRequest(ctx context.Context, r *models.AnalysisRequest) error
	DeleteRequest(ctx context.Context, id int64) error
}

// AnalyticsService определяет контракт работы с метаданными аналитики
type AnalyticsService interface {
	CreateModel(ctx context.Context, model *models.PredictiveModel) error
	GetModel(ctx context.Context, id int64) (*models.PredictiveModel, error)
	ListModels(ctx context.Context) ([]*models.PredictiveModel, error)
	UpdateModel(ctx context.Context, model *models.PredictiveModel) error
	DeleteModel(ctx context.Context, id int64) error
	TrainModel(ctx context.Context, id int64) (*models.PredictiveModel, error)
	DeployModel(ctx context.Context, id int64) (*models.PredictiveModel, error)

	CreatePrediction(ctx context.Context, p *models.Prediction) error
	GetPrediction(ctx context.Context, id int64) (*models.Prediction, error)
	ListPredictions(ctx context.Context, filter models.PredictionFilter) ([]*models.Prediction, error)
	UpdatePrediction(ctx context.Context, p *models.Prediction) error
	DeletePrediction(ctx context.Context, id int64) error
	VerifyPrediction(ctx context.Context, id int64) (*models.Prediction, error)

	CreateRequest(ctx context.Context, r *models.AnalysisRequest) error
	GetRequest(ctx context.Context, id int64) (*models.AnalysisRequest, error)
	ListRequests(ctx context.Context, status string) ([]*models.AnalysisRequest, error)
	UpdateRequest(ctx context.Context, r *models.AnalysisRequest) error
	DeleteRequest(ctx context.Context, id int64) error
	ProcessRequest(ctx context.Context, id int64) (*models.AnalysisRequest, error)
}

type analyticsService struct {
	repo   AnalyticsRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewAnalyticsService(repo AnalyticsRepository, logger *logrus.Logger) AnalyticsService {
	return &analyticsService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *analyticsService) CreateModel(ctx context.Context, m *models.PredictiveModel) error {
	if m.Status == "" {
		m.Status = models.ModelStatusDraft
	}
	if len(m.Parameters) == 0 {
		m.Parameters = json.RawMessage(`{}`)
	}
	if err := validateModel(m); err != nil {
		return err
	}
	if err := s.repo.CreateModel(ctx, m); err != nil {
		return fmt.Errorf("service: could not create model: %w", err)
	}
	return nil
}

func (s *analyticsService) GetModel(ctx context.Context, id int64) (*models.PredictiveModel, error) {
	m, err := s.repo.GetModel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get model: %w", err)
	}
	return m, nil
}

func (s *analyticsService) ListModels(ctx context.Context) ([]*models.PredictiveModel, error) {
	list, err := s.repo.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list models: %w", err)
	}
	return list, nil
}

func (s *analyticsService) UpdateModel(ctx context.Context, m *models.PredictiveModel) error {
	existing, err := s.GetModel(ctx, m.ID)
	if err != nil {
		return err
	}
	m.CreatedBy = existing.CreatedBy
	m.LastTrained = existing.LastTrained
	if m.Status == "" {
		m.Status = existing.Status
	}
	if len(m.Parameters) == 0 {
		m.Parameters = existing.Parameters
	}
	if err := validateModel(m); err != nil {
		return err
	}
	if err := s.repo.UpdateModel(ctx, m); err != nil {
		return fmt.Errorf("service: could not update model: %w", err)
	}
	return nil
}

func (s *analyticsService) DeleteModel(ctx context.Context, id int64) error {
	if err := s.repo.DeleteModel(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete model: %w", err)
	}
	return nil
}

// TrainModel переводит модель в training и отмечает время обучения
func (s *analyticsService) TrainModel(ctx context.Context, id int64) (*models.PredictiveModel, error) {
	m, err := s.GetModel(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	m.Status = models.ModelStatusTraining
	m.LastTrained = &now
	if err := s.repo.UpdateModel(ctx, m); err != nil {
		return nil, fmt.Errorf("service: could not start training: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":  "analytics",
		"method":   "TrainModel",
		"model_id": id,
	}).Info("Model training initiated")
	return m, nil
}

// DeployModel активирует модель. Допустимо только из training.
func (s *analyticsService) DeployModel(ctx context.Context, id int64) (*models.PredictiveModel, error) {
	m, err := s.GetModel(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != models.ModelStatusTraining {
		return nil, NewValidationError("status", "Model must complete training before deployment")
	}
	m.Status = models.ModelStatusActive
	if err := s.repo.UpdateModel(ctx, m); err != nil {
		return nil, fmt.Errorf("service: could not deploy model: %w", err)
	}
	return m, nil
}

func (s *analyticsService) CreatePrediction(ctx context.Context, p *models.Prediction) error {
	if len(p.Details) == 0 {
		p.Details = json.RawMessage(`{}`)
	}
	if err := validatePrediction(p); err != nil {
		return err
	}
	if err := s.repo.CreatePrediction(ctx, p); err != nil {
		return fmt.Errorf("service: could not create prediction: %w", err)
	}
	return nil
}

func (s *analyticsService) GetPrediction(ctx context.Context, id int64) (*models.Prediction, error) {
	p, err := s.repo.GetPrediction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get prediction: %w", err)
	}
	return p, nil
}

func (s *analyticsService) ListPredictions(ctx context.Context, filter models.PredictionFilter) ([]*models.Prediction, error) {
	list, err := s.repo.ListPredictions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: could not list predictions: %w", err)
	}
	return list, nil
}

func (s *analyticsService) UpdatePrediction(ctx context.Context, p *models.Prediction) error {
	existing, err := s.GetPrediction(ctx, p.ID)
	if err != nil {
		return err
	}
	p.GeneratedBy = existing.GeneratedBy
	p.IsVerified = existing.IsVerified
	p.VerifiedAt = existing.VerifiedAt
	if len(p.Details) == 0 {
		p.Details = existing.Details
	}
	if err := validatePrediction(p); err != nil {
		return err
	}
	if err := s.repo.UpdatePrediction(ctx, p); err != nil {
		return fmt.Errorf("service: could not update prediction: %w", err)
	}
	return nil
}

func (s *analyticsService) DeletePrediction(ctx context.Context, id int64) error {
	if err := s.repo.DeletePrediction(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete prediction: %w", err)
	}
	return nil
}

// VerifyPrediction отмечает прогноз как проверенный
func (s *analyticsService) VerifyPrediction(ctx context.Context, id int64) (*models.Prediction, error) {
	p, err := s.GetPrediction(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	p.IsVerified = true
	p.VerifiedAt = &now
	if err := s.repo.UpdatePrediction(ctx, p); err != nil {
		return nil, fmt.Errorf("service: could not verify prediction: %w", err)
	}
	return p, nil
}

func (s *analyticsService) CreateRequest(ctx context.Context, r *models.AnalysisRequest) error {
	if r.Status == "" {
		r.Status = models.AnalysisPending
	}
	if err := validateAnalysisRequest(r); err != nil {
		return err
	}
	if err := s.repo.CreateRequest(ctx, r); err != nil {
		return fmt.Errorf("service: could not create analysis request: %w", err)
	}
	return nil
}

func (s *analyticsService) GetRequest(ctx context.Context, id int64) (*models.AnalysisRequest, error) {
	r, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get analysis request: %w", err)
	}
	return r, nil
}

func (s *analyticsService) ListRequests(ctx context.Context, status string) ([]*models.AnalysisRequest, error) {
	list, err := s.repo.ListRequests(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("service: could not list analysis requests: %w", err)
	}
	return list, nil
}

func (s *analyticsService) UpdateRequest(ctx context.Context, r *models.AnalysisRequest) error {
	existing, err := s.GetRequest(ctx, r.ID)
	if err != nil {
		return err
	}
	r.UserID = existing.UserID
	if r.Status == "" {
		r.Status = existing.Status
	}
	if r.Status == models.AnalysisCompleted && r.CompletedAt == nil {
		now := s.now().UTC()
		r.CompletedAt = &now
	}
	if err := validateAnalysisRequest(r); err != nil {
		return err
	}
	if err := s.repo.UpdateRequest(ctx, r); err != nil {
		return fmt.Errorf("service: could not update analysis request: %w", err)
	}
	return nil
}

func (s *analyticsService) DeleteRequest(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRequest(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete analysis request: %w", err)
	}
	return nil
}

// ProcessRequest переводит запрос в processing. Допустимо только из pending.
func (s *analyticsService) ProcessRequest(ctx context.Context, id int64) (*models.AnalysisRequest, error) {
	r, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != models.AnalysisPending {
		return nil, NewValidationError("status", "Only pending requests can be processed")
	}
	r.Status = models.AnalysisProcessing
	if err := s.repo.UpdateRequest(ctx, r); err != nil {
		return nil, fmt.Errorf("service: could not process analysis request: %w", err)
	}
	return r, nil
}

func validateModel(m *models.PredictiveModel) error {
	fields := map[string]string{}
	if strings.TrimSpace(m.Name) == "" {
		fields["name"] = "This field is required."
	}
	if strings.TrimSpace(m.ModelVersion) == "" {
		fields["model_version"] = "This field is required."
	}
	if !modelTypes[m.ModelType] {
		fields["model_type"] = fmt.Sprintf("%q is not a valid choice.", m.ModelType)
	}
	switch m.Status {
	case models.ModelStatusDraft, models.ModelStatusTraining, models.ModelStatusActive, models.ModelStatusArchived:
	default:
		fields["status"] = fmt.Sprintf("%q is not a valid choice.", m.Status)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validatePrediction(p *models.Prediction) error {
	fields := map[string]string{}
	if p.ModelID == 0 {
		fields["model"] = "This field is required."
	}
	if p.PredictionStartDate.IsZero() || p.PredictionEndDate.IsZero() {
		fields["prediction_start_date"] = "Prediction period is required."
	} else if p.PredictionEndDate.Before(p.PredictionStartDate) {
		fields["prediction_end_date"] = "End date must not be before start date."
	}
	if p.PredictedCount < 0 {
		fields["predicted_count"] = "Ensure this value is greater than or equal to 0."
	}
	if p.ConfidenceLevel < 0 || p.ConfidenceLevel > 1 {
		fields["confidence_level"] = "Ensure this value is between 0 and 1."
	}
	if p.Area != nil {
		if err := models.ValidatePolygon(p.Area); err != nil {
			fields["area"] = err.Error()
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateAnalysisRequest(r *models.AnalysisRequest) error {
	fields := map[string]string{}
	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = "This field is required."
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		fields["start_date"] = "Date range is required."
	} else if r.EndDate.Before(r.StartDate) {
		fields["end_date"] = "End date must not be before start date."
	}
	switch r.Status {
	case models.AnalysisPending, models.AnalysisProcessing, models.AnalysisCompleted, models.AnalysisFailed:
	default:
		fields["status"] = fmt.Sprintf("%q is not a valid choice.", r.Status)
	}
	if r.Area != nil {
		if err := models.ValidatePolygon(r.Area); err != nil {
			fields["area"] = err.Error()
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
