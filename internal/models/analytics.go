package models

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb"
)

const (
	ModelStatusDraft    = "draft"
	ModelStatusTraining = "training"
	ModelStatusActive   = "active"
	ModelStatusArchived = "archived"

	AnalysisPending    = "pending"
	AnalysisProcessing = "processing"
	AnalysisCompleted  = "completed"
	AnalysisFailed     = "failed"
)

// PredictiveModel - метаданные модели прогнозирования
type PredictiveModel struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	ModelType          string          `json:"model_type"`
	ModelVersion       string          `json:"model_version"`
	Status             string          `json:"status"`
	Parameters         json.RawMessage `json:"parameters"`
	TargetCrimeTypeIDs []int64         `json:"target_crime_types"`
	CreatedBy          *int64          `json:"created_by"`
	LastTrained        *time.Time      `json:"last_trained"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Prediction - результат прогноза модели
type Prediction struct {
	ID                  int64           `json:"id"`
	ModelID             int64           `json:"model_id"`
	ModelType           string          `json:"model_type"`
	Area                orb.Polygon     `json:"-"`
	PredictionStartDate time.Time       `json:"prediction_start_date"`
	PredictionEndDate   time.Time       `json:"prediction_end_date"`
	PredictedCount      int             `json:"predicted_count"`
	ConfidenceLevel     float64         `json:"confidence_level"`
	Details             json.RawMessage `json:"details"`
	GeneratedBy         *int64          `json:"generated_by"`
	GeneratedAt         time.Time       `json:"generated_at"`
	IsVerified          bool            `json:"is_verified"`
	VerifiedAt          *time.Time      `json:"verified_at"`
}

// PredictionFilter - фильтры списка прогнозов
type PredictionFilter struct {
	ModelType string
	StartDate *time.Time
	EndDate   *time.Time
}

// AnalysisRequest - запрос пользователя на анализ
type AnalysisRequest struct {
	ID                 int64       `json:"id"`
	UserID             int64       `json:"user"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Area               orb.Polygon `json:"-"`
	StartDate          time.Time   `json:"start_date"`
	EndDate            time.Time   `json:"end_date"`
	CrimeTypeIDs       []int64     `json:"crime_types"`
	Status             string      `json:"status"`
	ResultPredictionID *int64      `json:"result_prediction"`
	CompletedAt        *time.Time  `json:"completed_at"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}
