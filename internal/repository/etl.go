package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
)

type ETLRepository struct {
	db *pgxpool.Pool
}

func NewETLRepository(db *pgxpool.Pool) service.ETLRepository {
	return &ETLRepository{db: db}
}

const dataSourceColumns = `
	id, agency_id, name, description, source_type, configuration, is_active,
	field_mapping, sync_frequency, cron_expression, created_at, updated_at`

func (r *ETLRepository) CreateDataSource(ctx context.Context, ds *models.DataSource) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO data_sources (
			agency_id, name, description, source_type, configuration, is_active,
			field_mapping, sync_frequency, cron_expression
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at;
	`,
		ds.AgencyID, ds.Name, ds.Description, ds.SourceType, ds.Configuration, ds.IsActive,
		ds.FieldMapping, ds.SyncFrequency, ds.CronExpression,
	).Scan(&ds.ID, &ds.CreatedAt, &ds.UpdatedAt)
	return wrapErr("failed to create data source", err)
}

func (r *ETLRepository) GetDataSource(ctx context.Context, id int64) (*models.DataSource, error) {
	ds, err := scanDataSource(r.db.QueryRow(ctx, `SELECT `+dataSourceColumns+` FROM data_sources WHERE id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get data source", err)
	}
	return ds, nil
}

func (r *ETLRepository) ListDataSources(ctx context.Context, agencyID *int64) ([]*models.DataSource, error) {
	query := `SELECT ` + dataSourceColumns + ` FROM data_sources`
	args := []any{}
	if agencyID != nil {
		query += ` WHERE agency_id = $1`
		args = append(args, *agencyID)
	}
	rows, err := r.db.Query(ctx, query+` ORDER BY name, id;`, args...)
	if err != nil {
		return nil, wrapErr("failed to list data sources", err)
	}
	return collect(rows, scanDataSource, "data source")
}

func (r *ETLRepository) UpdateDataSource(ctx context.Context, ds *models.DataSource) error {
	err := r.db.QueryRow(ctx, `
		UPDATE data_sources SET
			agency_id = $1, name = $2, description = $3, source_type = $4, configuration = $5,
			is_active = $6, field_mapping = $7, sync_frequency = $8, cron_expression = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING created_at, updated_at;
	`,
		ds.AgencyID, ds.Name, ds.Description, ds.SourceType, ds.Configuration,
		ds.IsActive, ds.FieldMapping, ds.SyncFrequency, ds.CronExpression, ds.ID,
	).Scan(&ds.CreatedAt, &ds.UpdatedAt)
	return wrapErr("failed to update data source", err)
}

func (r *ETLRepository) DeleteDataSource(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM data_sources WHERE id = $1;`, id)
	return mustAffect("failed to delete data source", tag, err)
}

const jobColumns = `
	id, data_source_id, job_id, status, start_time, end_time,
	records_processed, records_created, records_updated, records_skipped, records_failed,
	parameters, error_message, error_details, created_at, updated_at`

func (r *ETLRepository) CreateJob(ctx context.Context, job *models.ETLJob) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO etl_jobs (data_source_id, job_id, status, start_time, end_time, parameters)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at;
	`,
		job.DataSourceID, job.JobID, job.Status, job.StartTime, job.EndTime, job.Parameters,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	return wrapErr("failed to create etl job", err)
}

func (r *ETLRepository) GetJob(ctx context.Context, id int64) (*models.ETLJob, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM etl_jobs WHERE id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get etl job", err)
	}
	return job, nil
}

// ListJobs возвращает задачи, новые первыми
func (r *ETLRepository) ListJobs(ctx context.Context, dataSourceID *int64, status string) ([]*models.ETLJob, error) {
	var (
		conds []string
		args  []any
	)
	if dataSourceID != nil {
		args = append(args, *dataSourceID)
		conds = append(conds, fmt.Sprintf("data_source_id = $%d", len(args)))
	}
	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + jobColumns + ` FROM etl_jobs`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}

	rows, err := r.db.Query(ctx, query+` ORDER BY created_at DESC, id DESC;`, args...)
	if err != nil {
		return nil, wrapErr("failed to list etl jobs", err)
	}
	return collect(rows, scanJob, "etl job")
}

func (r *ETLRepository) UpdateJobParameters(ctx context.Context, id int64, parameters json.RawMessage) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE etl_jobs SET parameters = $1, updated_at = NOW() WHERE id = $2;
	`, parameters, id)
	return mustAffect("failed to update etl job parameters", tag, err)
}

// TransitionJob меняет статус, только если задача все еще в статусе from.
// Если статус успели поменять, возвращает ErrConflict.
func (r *ETLRepository) TransitionJob(ctx context.Context, job *models.ETLJob, from models.JobStatus) error {
	err := r.db.QueryRow(ctx, `
		UPDATE etl_jobs SET
			status = $1, start_time = $2, end_time = $3, error_message = $4, error_details = $5, updated_at = NOW()
		WHERE id = $6 AND status = $7
		RETURNING updated_at;
	`,
		job.Status, job.StartTime, job.EndTime, job.ErrorMessage, job.ErrorDetails, job.ID, from,
	).Scan(&job.UpdatedAt)
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if _, getErr := r.GetJob(ctx, job.ID); getErr != nil {
			return getErr
		}
		return fmt.Errorf("failed to transition etl job: status changed concurrently: %w", service.ErrConflict)
	}
	return wrapErr("failed to transition etl job", err)
}

// UpdateJobCounters пишет счетчики условием, запрещающим уменьшение
func (r *ETLRepository) UpdateJobCounters(ctx context.Context, id int64, c models.JobCounters) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE etl_jobs SET
			records_processed = $1, records_created = $2, records_updated = $3,
			records_skipped = $4, records_failed = $5, updated_at = NOW()
		WHERE id = $6
			AND records_processed <= $1 AND records_created <= $2 AND records_updated <= $3
			AND records_skipped <= $4 AND records_failed <= $5;
	`, c.Processed, c.Created, c.Updated, c.Skipped, c.Failed, id)
	if err != nil {
		return wrapErr("failed to update etl job counters", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetJob(ctx, id); getErr != nil {
			return getErr
		}
		return fmt.Errorf("failed to update etl job counters: counters changed concurrently: %w", service.ErrConflict)
	}
	return nil
}

func (r *ETLRepository) DeleteJob(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM etl_jobs WHERE id = $1;`, id)
	return mustAffect("failed to delete etl job", tag, err)
}

const ruleColumns = `
	id, data_source_id, name, description, rule_type, field_name, configuration,
	error_action, priority, is_active, created_at, updated_at`

func (r *ETLRepository) CreateRule(ctx context.Context, rule *models.DataValidationRule) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO data_validation_rules (
			data_source_id, name, description, rule_type, field_name, configuration,
			error_action, priority, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at;
	`,
		rule.DataSourceID, rule.Name, rule.Description, rule.RuleType, rule.FieldName, rule.Configuration,
		rule.ErrorAction, rule.Priority, rule.IsActive,
	).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	return wrapErr("failed to create validation rule", err)
}

func (r *ETLRepository) GetRule(ctx context.Context, id int64) (*models.DataValidationRule, error) {
	rule, err := scanRule(r.db.QueryRow(ctx, `SELECT `+ruleColumns+` FROM data_validation_rules WHERE id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get validation rule", err)
	}
	return rule, nil
}

// ListRules возвращает правила в порядке приоритета
func (r *ETLRepository) ListRules(ctx context.Context, dataSourceID *int64) ([]*models.DataValidationRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM data_validation_rules`
	args := []any{}
	if dataSourceID != nil {
		query += ` WHERE data_source_id = $1`
		args = append(args, *dataSourceID)
	}
	rows, err := r.db.Query(ctx, query+` ORDER BY priority, name, id;`, args...)
	if err != nil {
		return nil, wrapErr("failed to list validation rules", err)
	}
	return collect(rows, scanRule, "validation rule")
}

func (r *ETLRepository) UpdateRule(ctx context.Context, rule *models.DataValidationRule) error {
	err := r.db.QueryRow(ctx, `
		UPDATE data_validation_rules SET
			data_source_id = $1, name = $2, description = $3, rule_type = $4, field_name = $5,
			configuration = $6, error_action = $7, priority = $8, is_active = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING created_at, updated_at;
	`,
		rule.DataSourceID, rule.Name, rule.Description, rule.RuleType, rule.FieldName,
		rule.Configuration, rule.ErrorAction, rule.Priority, rule.IsActive, rule.ID,
	).Scan(&rule.CreatedAt, &rule.UpdatedAt)
	return wrapErr("failed to update validation rule", err)
}

func (r *ETLRepository) DeleteRule(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM data_validation_rules WHERE id = $1;`, id)
	return mustAffect("failed to delete validation rule", tag, err)
}

const logColumns = `id, job_id, level, message, context, source_record_id, timestamp`

func (r *ETLRepository) CreateLog(ctx context.Context, entry *models.ETLJobLog) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO etl_job_logs (job_id, level, message, context, source_record_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, timestamp;
	`, entry.JobID, entry.Level, entry.Message, entry.Context, entry.SourceRecordID,
	).Scan(&entry.ID, &entry.Timestamp)
	return wrapErr("failed to create etl job log", err)
}

func (r *ETLRepository) GetLog(ctx context.Context, id int64) (*models.ETLJobLog, error) {
	entry, err := scanLog(r.db.QueryRow(ctx, `SELECT `+logColumns+` FROM etl_job_logs WHERE id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get etl job log", err)
	}
	return entry, nil
}

// ListLogs возвращает журнал, новые записи первыми
func (r *ETLRepository) ListLogs(ctx context.Context, jobID *int64, level string) ([]*models.ETLJobLog, error) {
	var (
		conds []string
		args  []any
	)
	if jobID != nil {
		args = append(args, *jobID)
		conds = append(conds, fmt.Sprintf("job_id = $%d", len(args)))
	}
	if level != "" {
		args = append(args, level)
		conds = append(conds, fmt.Sprintf("level = $%d", len(args)))
	}
	query := `SELECT ` + logColumns + ` FROM etl_job_logs`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}

	rows, err := r.db.Query(ctx, query+` ORDER BY timestamp DESC, id DESC;`, args...)
	if err != nil {
		return nil, wrapErr("failed to list etl job logs", err)
	}
	return collect(rows, scanLog, "etl job log")
}

// collect читает все строки через scan и закрывает rows
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error), what string) ([]*T, error) {
	defer rows.Close()

	list := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, wrapErr("failed to scan "+what+" row", err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("error "+what+" iteration", err)
	}
	return list, nil
}

func scanDataSource(row pgx.Row) (*models.DataSource, error) {
	ds := &models.DataSource{}
	err := row.Scan(
		&ds.ID, &ds.AgencyID, &ds.Name, &ds.Description, &ds.SourceType, &ds.Configuration, &ds.IsActive,
		&ds.FieldMapping, &ds.SyncFrequency, &ds.CronExpression, &ds.CreatedAt, &ds.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func scanJob(row pgx.Row) (*models.ETLJob, error) {
	j := &models.ETLJob{}
	err := row.Scan(
		&j.ID, &j.DataSourceID, &j.JobID, &j.Status, &j.StartTime, &j.EndTime,
		&j.Counters.Processed, &j.Counters.Created, &j.Counters.Updated, &j.Counters.Skipped, &j.Counters.Failed,
		&j.Parameters, &j.ErrorMessage, &j.ErrorDetails, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func scanRule(row pgx.Row) (*models.DataValidationRule, error) {
	rule := &models.DataValidationRule{}
	err := row.Scan(
		&rule.ID, &rule.DataSourceID, &rule.Name, &rule.Description, &rule.RuleType, &rule.FieldName,
		&rule.Configuration, &rule.ErrorAction, &rule.Priority, &rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func scanLog(row pgx.Row) (*models.ETLJobLog, error) {
	e := &models.ETLJobLog{}
	err := row.Scan(&e.ID, &e.JobID, &e.Level, &e.Message, &e.Context, &e.SourceRecordID, &e.Timestamp)
	if err != nil {
		return nil, err
	}
	return e, nil
}
