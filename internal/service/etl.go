package service

//go:generate mockgen -source=etl.go -destination=mocks/etl_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	sourceTypes     = map[string]bool{"api": true, "database": true, "file": true, "feed": true, "scraper": true, "manual": true}
	syncFrequencies = map[string]bool{"realtime": true, "hourly": true, "daily": true, "weekly": true, "monthly": true, "on_demand": true}
	ruleTypes       = map[string]bool{"required": true, "format": true, "range": true, "enum": true, "unique": true, "reference": true, "custom": true}
	errorActions    = map[string]bool{"reject": true, "warn": true, "correct": true, "ignore": true}
	logLevels       = map[string]bool{"info": true, "warning": true, "error": true, "critical": true}
)

// ETLRepository определяет контракт хранилища источников, задач, правил и журнала
type ETLRepository interface {
	CreateDataSource(ctx context.Context, ds *models.DataSource) error
	GetDataSource(ctx context.Context, id int64) (*models.DataSource, error)
	ListDataSources(ctx context.Context, agencyID *int64) ([]*models.DataSource, error)
	UpdateDataSource(ctx context.Context, ds *models.DataSource) error
	DeleteDataSource(ctx context.Context, id int64) error

	CreateJob(ctx context.Context, job *models.ETLJob) error
	GetJob(ctx context.Context, id int64) (*models.ETLJob, error)
	ListJobs(ctx context.Context, dataSourceID *int64, status string) ([]*models.ETLJob, error)
	UpdateJobParameters(ctx context.Context, id int64, parameters json.RawMessage) error
	// TransitionJob меняет статус только если текущий статус равен from
	TransitionJob(ctx context.Context, job *models.ETLJob, from models.JobStatus) error
	// UpdateJobCounters пишет счетчики только если ни один не уменьшается
	UpdateJobCounters(ctx context.Context, id int64, counters models.JobCounters) error
	DeleteJob(ctx context.Context, id int64) error

	CreateRule(ctx context.Context, rule *models.DataValidationRule) error
	GetRule(ctx context.Context, id int64) (*models.DataValidationRule, error)
	ListRules(ctx context.Context, dataSourceID *int64) ([]*models.DataValidationRule, error)
	UpdateRule(ctx context.Context, rule *models.DataValidationRule) error
	DeleteRule(ctx context.Context, id int64) error

	CreateLog(ctx context.Context, entry *models.ETLJobLog) error
	GetLog(ctx context.Context, id int64) (*models.ETLJobLog, error)
	ListLogs(ctx context.Context, jobID *int64, level string) ([]*models.ETLJobLog, error)
}

// ETLService определяет контракт учета загрузок
type ETLService interface {
	CreateDataSource(ctx context.Context, ds *models.DataSource) error
	GetDataSource(ctx context.Context, id int64) (*models.DataSource, error)
	ListDataSources(ctx context.Context, agencyID *int64) ([]*models.DataSource, error)
	UpdateDataSource(ctx context.Context, ds *models.DataSource) error
	DeleteDataSource(ctx context.Context, id int64) error
	TriggerSync(ctx context.Context, dataSourceID int64) (*models.ETLJob, error)

	CreateJob(ctx context.Context, job *models.ETLJob) error
	GetJob(ctx context.Context, id int64) (*models.ETLJob, error)
	ListJobs(ctx context.Context, dataSourceID *int64, status string) ([]*models.ETLJob, error)
	UpdateJobParameters(ctx context.Context, id int64, parameters json.RawMessage) (*models.ETLJob, error)
	TransitionJob(ctx context.Context, id int64, t models.JobTransition) (*models.ETLJob, error)
	UpdateJobCounters(ctx context.Context, id int64, counters models.JobCounters) (*models.ETLJob, error)
	DeleteJob(ctx context.Context, id int64) error

	CreateRule(ctx context.Context, rule *models.DataValidationRule) error
	GetRule(ctx context.Context, id int64) (*models.DataValidationRule, error)
	ListRules(ctx context.Context, dataSourceID *int64) ([]*models.DataValidationRule, error)
	UpdateRule(ctx context.Context, rule *models.DataValidationRule) error
	DeleteRule(ctx context.Context, id int64) error

	CreateLog(ctx context.Context, entry *models.ETLJobLog) error
	GetLog(ctx context.Context, id int64) (*models.ETLJobLog, error)
	ListLogs(ctx context.Context, jobID *int64, level string) ([]*models.ETLJobLog, error)
}

type etlService struct {
	repo   ETLRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewETLService(repo ETLRepository, logger *logrus.Logger) ETLService {
	return &etlService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *etlService) CreateDataSource(ctx context.Context, ds *models.DataSource) error {
	applyDataSourceDefaults(ds)
	if err := validateDataSource(ds); err != nil {
		return err
	}
	if err := s.repo.CreateDataSource(ctx, ds); err != nil {
		return fmt.Errorf("service: could not create data source: %w", err)
	}
	return nil
}

func (s *etlService) GetDataSource(ctx context.Context, id int64) (*models.DataSource, error) {
	ds, err := s.repo.GetDataSource(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get data source: %w", err)
	}
	return ds, nil
}

func (s *etlService) ListDataSources(ctx context.Context, agencyID *int64) ([]*models.DataSource, error) {
	list, err := s.repo.ListDataSources(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list data sources: %w", err)
	}
	return list, nil
}

func (s *etlService) UpdateDataSource(ctx context.Context, ds *models.DataSource) error {
	applyDataSourceDefaults(ds)
	if err := validateDataSource(ds); err != nil {
		return err
	}
	if err := s.repo.UpdateDataSource(ctx, ds); err != nil {
		return fmt.Errorf("service: could not update data source: %w", err)
	}
	return nil
}

func (s *etlService) DeleteDataSource(ctx context.Context, id int64) error {
	if err := s.repo.DeleteDataSource(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete data source: %w", err)
	}
	return nil
}

// TriggerSync создает задачу ручной синхронизации в статусе running
func (s *etlService) TriggerSync(ctx context.Context, dataSourceID int64) (*models.ETLJob, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "etl",
		"method":         "TriggerSync",
		"data_source_id": dataSourceID,
	})

	if _, err := s.repo.GetDataSource(ctx, dataSourceID); err != nil {
		return nil, fmt.Errorf("service: could not get data source: %w", err)
	}

	now := s.now().UTC()
	job := &models.ETLJob{
		DataSourceID: dataSourceID,
		JobID:        fmt.Sprintf("manual_sync_%d_%d", dataSourceID, now.UnixNano()),
		Status:       models.JobRunning,
		StartTime:    &now,
		Parameters:   json.RawMessage(`{}`),
	}
	if err := s.repo.CreateJob(ctx, job); err != nil {
		log.WithError(err).Error("Failed to create sync job")
		return nil, fmt.Errorf("service: could not create sync job: %w", err)
	}
	log.WithField("job_id", job.JobID).Info("Manual sync triggered")
	return job, nil
}

// CreateJob регистрирует задачу. Задача всегда начинается в scheduled, если не указано running.
func (s *etlService) CreateJob(ctx context.Context, job *models.ETLJob) error {
	if job.Status == "" {
		job.Status = models.JobScheduled
	}
	if job.Status != models.JobScheduled && job.Status != models.JobRunning {
		return NewValidationError("status", "A new job must be scheduled or running.")
	}
	if strings.TrimSpace(job.JobID) == "" {
		return NewValidationError("job_id", "This field is required.")
	}
	if job.Status == models.JobRunning && job.StartTime == nil {
		now := s.now().UTC()
		job.StartTime = &now
	}
	if len(job.Parameters) == 0 {
		job.Parameters = json.RawMessage(`{}`)
	}
	if err := s.repo.CreateJob(ctx, job); err != nil {
		return fmt.Errorf("service: could not create job: %w", err)
	}
	return nil
}

func (s *etlService) GetJob(ctx context.Context, id int64) (*models.ETLJob, error) {
	job, err := s.repo.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get job: %w", err)
	}
	return job, nil
}

func (s *etlService) ListJobs(ctx context.Context, dataSourceID *int64, status string) ([]*models.ETLJob, error) {
	list, err := s.repo.ListJobs(ctx, dataSourceID, status)
	if err != nil {
		return nil, fmt.Errorf("service: could not list jobs: %w", err)
	}
	return list, nil
}

// UpdateJobParameters меняет только параметры, статус и счетчики меняются отдельными операциями
func (s *etlService) UpdateJobParameters(ctx context.Context, id int64, parameters json.RawMessage) (*models.ETLJob, error) {
	if len(parameters) == 0 {
		parameters = json.RawMessage(`{}`)
	}
	if err := s.repo.UpdateJobParameters(ctx, id, parameters); err != nil {
		return nil, fmt.Errorf("service: could not update job: %w", err)
	}
	return s.GetJob(ctx, id)
}

// TransitionJob переводит задачу по машине состояний.
// Недопустимый переход дает ошибку валидации, гонка с другим изменением - ErrConflict.
func (s *etlService) TransitionJob(ctx context.Context, id int64, t models.JobTransition) (*models.ETLJob, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "etl",
		"method":  "TransitionJob",
		"job_id":  id,
		"to":      t.Status,
	})

	job, err := s.repo.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get job: %w", err)
	}

	from := job.Status
	if !from.CanTransitionTo(t.Status) {
		log.WithField("from", from).Warn("Invalid job transition")
		return nil, NewValidationError("status", fmt.Sprintf("Cannot transition job from %s to %s.", from, t.Status))
	}

	now := s.now().UTC()
	job.Status = t.Status
	if t.Status == models.JobRunning {
		job.StartTime = &now
	}
	if t.Status.IsTerminal() {
		job.EndTime = &now
	}
	if t.Status == models.JobFailed {
		job.ErrorMessage = t.ErrorMessage
		job.ErrorDetails = t.ErrorDetails
	}

	if err := s.repo.TransitionJob(ctx, job, from); err != nil {
		log.WithError(err).Warn("Failed to transition job")
		return nil, fmt.Errorf("service: could not transition job: %w", err)
	}
	log.WithField("from", from).Info("Job transitioned")
	return job, nil
}

// UpdateJobCounters обновляет счетчики. Уменьшение любого счетчика отклоняется.
func (s *etlService) UpdateJobCounters(ctx context.Context, id int64, counters models.JobCounters) (*models.ETLJob, error) {
	job, err := s.repo.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get job: %w", err)
	}
	if field, decreased := counters.DecreasedFrom(job.Counters); decreased {
		return nil, NewValidationError(field, "Counters cannot decrease.")
	}
	if err := s.repo.UpdateJobCounters(ctx, id, counters); err != nil {
		return nil, fmt.Errorf("service: could not update counters: %w", err)
	}
	job.Counters = counters
	return job, nil
}

func (s *etlService) DeleteJob(ctx context.Context, id int64) error {
	if err := s.repo.DeleteJob(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete job: %w", err)
	}
	return nil
}

func (s *etlService) CreateRule(ctx context.Context, rule *models.DataValidationRule) error {
	applyRuleDefaults(rule)
	if err := validateRule(rule); err != nil {
		return err
	}
	if err := s.repo.CreateRule(ctx, rule); err != nil {
		return fmt.Errorf("service: could not create validation rule: %w", err)
	}
	return nil
}

func (s *etlService) GetRule(ctx context.Context, id int64) (*models.DataValidationRule, error) {
	rule, err := s.repo.GetRule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get validation rule: %w", err)
	}
	return rule, nil
}

func (s *etlService) ListRules(ctx context.Context, dataSourceID *int64) ([]*models.DataValidationRule, error) {
	list, err := s.repo.ListRules(ctx, dataSourceID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list validation rules: %w", err)
	}
	return list, nil
}

func (s *etlService) UpdateRule(ctx context.Context, rule *models.DataValidationRule) error {
	applyRuleDefaults(rule)
	if err := validateRule(rule); err != nil {
		return err
	}
	if err := s.repo.UpdateRule(ctx, rule); err != nil {
		return fmt.Errorf("service: could not update validation rule: %w", err)
	}
	return nil
}

func (s *etlService) DeleteRule(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRule(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete validation rule: %w", err)
	}
	return nil
}

func (s *etlService) CreateLog(ctx context.Context, entry *models.ETLJobLog) error {
	if entry.Level == "" {
		entry.Level = "info"
	}
	if !logLevels[entry.Level] {
		return NewValidationError("level", fmt.Sprintf("%q is not a valid choice.", entry.Level))
	}
	if strings.TrimSpace(entry.Message) == "" {
		return NewValidationError("message", "This field is required.")
	}
	if len(entry.Context) == 0 {
		entry.Context = json.RawMessage(`{}`)
	}
	if err := s.repo.CreateLog(ctx, entry); err != nil {
		return fmt.Errorf("service: could not create job log: %w", err)
	}
	return nil
}

func (s *etlService) GetLog(ctx context.Context, id int64) (*models.ETLJobLog, error) {
	entry, err := s.repo.GetLog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get job log: %w", err)
	}
	return entry, nil
}

func (s *etlService) ListLogs(ctx context.Context, jobID *int64, level string) ([]*models.ETLJobLog, error) {
	list, err := s.repo.ListLogs(ctx, jobID, level)
	if err != nil {
		return nil, fmt.Errorf("service: could not list job logs: %w", err)
	}
	return list, nil
}

func applyDataSourceDefaults(ds *models.DataSource) {
	if ds.SyncFrequency == "" {
		ds.SyncFrequency = "daily"
	}
	if len(ds.Configuration) == 0 {
		ds.Configuration = json.RawMessage(`{}`)
	}
	if len(ds.FieldMapping) == 0 {
		ds.FieldMapping = json.RawMessage(`{}`)
	}
}

func validateDataSource(ds *models.DataSource) error {
	fields := map[string]string{}
	if strings.TrimSpace(ds.Name) == "" {
		fields["name"] = "This field is required."
	}
	if ds.AgencyID == 0 {
		fields["agency"] = "This field is required."
	}
	if !sourceTypes[ds.SourceType] {
		fields["source_type"] = fmt.Sprintf("%q is not a valid choice.", ds.SourceType)
	}
	if !syncFrequencies[ds.SyncFrequency] {
		fields["sync_frequency"] = fmt.Sprintf("%q is not a valid choice.", ds.SyncFrequency)
	}
	if ds.CronExpression != "" {
		if err := ValidateCron(ds.CronExpression); err != nil {
			fields["cron_expression"] = "Invalid cron expression."
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func applyRuleDefaults(rule *models.DataValidationRule) {
	if rule.ErrorAction == "" {
		rule.ErrorAction = "warn"
	}
	if rule.Priority == 0 {
		rule.Priority = 1
	}
	if len(rule.Configuration) == 0 {
		rule.Configuration = json.RawMessage(`{}`)
	}
}

func validateRule(rule *models.DataValidationRule) error {
	fields := map[string]string{}
	if strings.TrimSpace(rule.Name) == "" {
		fields["name"] = "This field is required."
	}
	if strings.TrimSpace(rule.FieldName) == "" {
		fields["field_name"] = "This field is required."
	}
	if !ruleTypes[rule.RuleType] {
		fields["rule_type"] = fmt.Sprintf("%q is not a valid choice.", rule.RuleType)
	}
	if !errorActions[rule.ErrorAction] {
		fields["error_action"] = fmt.Sprintf("%q is not a valid choice.", rule.ErrorAction)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
