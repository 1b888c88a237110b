package models

import (
	"encoding/json"
	"time"
)

type JobStatus string

const (
	JobScheduled JobStatus = "scheduled"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
	JobCanceled  JobStatus = "canceled"
)

// jobTransitions - допустимые переходы задачи ETL. Терминальные состояния переходов не имеют.
var jobTransitions = map[JobStatus][]JobStatus{
	JobScheduled: {JobRunning, JobCanceled},
	JobRunning:   {JobCompleted, JobFailed, JobCanceled},
}

// CanTransitionTo сообщает, разрешен ли переход из s в next
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal сообщает, является ли состояние конечным
func (s JobStatus) IsTerminal() bool {
	return s == JobCompleted || s == JobFailed || s == JobCanceled
}

// DataSource - внешний источник данных органа
type DataSource struct {
	ID             int64           `json:"id"`
	AgencyID       int64           `json:"agency"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	SourceType     string          `json:"source_type"`
	Configuration  json.RawMessage `json:"configuration"`
	IsActive       bool            `json:"is_active"`
	FieldMapping   json.RawMessage `json:"field_mapping"`
	SyncFrequency  string          `json:"sync_frequency"`
	CronExpression string          `json:"cron_expression"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// JobCounters - монотонные счетчики обработанных записей
type JobCounters struct {
	Processed int `json:"records_processed"`
	Created   int `json:"records_created"`
	Updated   int `json:"records_updated"`
	Skipped   int `json:"records_skipped"`
	Failed    int `json:"records_failed"`
}

// DecreasedFrom возвращает имя первого счетчика, значение которого меньше, чем в prev
func (c JobCounters) DecreasedFrom(prev JobCounters) (string, bool) {
	switch {
	case c.Processed < prev.Processed:
		return "records_processed", true
	case c.Created < prev.Created:
		return "records_created", true
	case c.Updated < prev.Updated:
		return "records_updated", true
	case c.Skipped < prev.Skipped:
		return "records_skipped", true
	case c.Failed < prev.Failed:
		return "records_failed", true
	}
	return "", false
}

// ETLJob - отдельный запуск импорта
type ETLJob struct {
	ID           int64           `json:"id"`
	DataSourceID int64           `json:"data_source"`
	JobID        string          `json:"job_id"`
	Status       JobStatus       `json:"status"`
	StartTime    *time.Time      `json:"start_time"`
	EndTime      *time.Time      `json:"end_time"`
	Counters     JobCounters     `json:"counters"`
	Parameters   json.RawMessage `json:"parameters"`
	ErrorMessage string          `json:"error_message"`
	ErrorDetails json.RawMessage `json:"error_details"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// DataValidationRule - правило проверки записей источника
type DataValidationRule struct {
	ID            int64           `json:"id"`
	DataSourceID  int64           `json:"data_source"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	RuleType      string          `json:"rule_type"`
	FieldName     string          `json:"field_name"`
	Configuration json.RawMessage `json:"configuration"`
	ErrorAction   string          `json:"error_action"`
	Priority      int             `json:"priority"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ETLJobLog - запись журнала задачи
type ETLJobLog struct {
	ID             int64           `json:"id"`
	JobID          int64           `json:"job"`
	Level          string          `json:"level"`
	Message        string          `json:"message"`
	Context        json.RawMessage `json:"context"`
	SourceRecordID string          `json:"source_record_id"`
	Timestamp      time.Time       `json:"timestamp"`
}

// JobTransition - запрос на смену статуса задачи
type JobTransition struct {
	Status       JobStatus
	ErrorMessage string
	ErrorDetails json.RawMessage
}
