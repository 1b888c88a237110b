package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
)

type AnalyticsRepository struct {
	db *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) service.AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

const modelSelect = `
	SELECT m.id, m.name, m.description, m.model_type, m.model_version, m.status, m.parameters,
		m.created_by, m.last_trained, m.created_at, m.updated_at,
		COALESCE(ARRAY(SELECT t.crime_type_id FROM predictive_model_crime_types t WHERE t.model_id = m.id ORDER BY t.crime_type_id), '{}')
	FROM predictive_models m`

// replaceLinks заменяет набор типов инцидентов в связующей таблице
func replaceLinks(ctx context.Context, tx pgx.Tx, table, column string, id int64, typeIDs []int64) error {
	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, table, column), id); err != nil {
		return err
	}
	if len(typeIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (%s, crime_type_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING;
	`, table, column), id, typeIDs)
	return err
}

func (r *AnalyticsRepository) CreateModel(ctx context.Context, m *models.PredictiveModel) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO predictive_models (name, description, model_type, model_version, status, parameters, created_by, last_trained)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at, updated_at;
		`,
			m.Name, m.Description, m.ModelType, m.ModelVersion, m.Status, m.Parameters, m.CreatedBy, m.LastTrained,
		).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return err
		}
		return replaceLinks(ctx, tx, "predictive_model_crime_types", "model_id", m.ID, m.TargetCrimeTypeIDs)
	})
	return wrapErr("failed to create predictive model", err)
}

func (r *AnalyticsRepository) GetModel(ctx context.Context, id int64) (*models.PredictiveModel, error) {
	m, err := scanModel(r.db.QueryRow(ctx, modelSelect+` WHERE m.id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get predictive model", err)
	}
	return m, nil
}

func (r *AnalyticsRepository) ListModels(ctx context.Context) ([]*models.PredictiveModel, error) {
	rows, err := r.db.Query(ctx, modelSelect+` ORDER BY m.created_at DESC, m.id DESC;`)
	if err != nil {
		return nil, wrapErr("failed to list predictive models", err)
	}
	return collect(rows, scanModel, "predictive model")
}

func (r *AnalyticsRepository) UpdateModel(ctx context.Context, m *models.PredictiveModel) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			UPDATE predictive_models SET
				name = $1, description = $2, model_type = $3, model_version = $4, status = $5,
				parameters = $6, last_trained = $7, updated_at = NOW()
			WHERE id = $8
			RETURNING created_by, created_at, updated_at;
		`,
			m.Name, m.Description, m.ModelType, m.ModelVersion, m.Status,
			m.Parameters, m.LastTrained, m.ID,
		).Scan(&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return err
		}
		return replaceLinks(ctx, tx, "predictive_model_crime_types", "model_id", m.ID, m.TargetCrimeTypeIDs)
	})
	return wrapErr("failed to update predictive model", err)
}

func (r *AnalyticsRepository) DeleteModel(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM predictive_models WHERE id = $1;`, id)
	return mustAffect("failed to delete predictive model", tag, err)
}

const predictionSelect = `
	SELECT p.id, p.model_id, m.model_type, ST_AsGeoJSON(p.area), p.prediction_start_date, p.prediction_end_date,
		p.predicted_count, p.confidence_level, p.details, p.generated_by, p.generated_at,
		p.is_verified, p.verified_at
	FROM predictions p
	JOIN predictive_models m ON m.id = p.model_id`

func (r *AnalyticsRepository) CreatePrediction(ctx context.Context, p *models.Prediction) error {
	area, err := polygonParam(p.Area)
	if err != nil {
		return err
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO predictions (
			model_id, area, prediction_start_date, prediction_end_date, predicted_count,
			confidence_level, details, generated_by, is_verified, verified_at
		) VALUES ($1, ST_GeomFromGeoJSON($2::text)::geography, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, generated_at, (SELECT model_type FROM predictive_models WHERE id = $1);
	`,
		p.ModelID, area, p.PredictionStartDate, p.PredictionEndDate, p.PredictedCount,
		p.ConfidenceLevel, p.Details, p.GeneratedBy, p.IsVerified, p.VerifiedAt,
	).Scan(&p.ID, &p.GeneratedAt, &p.ModelType)
	return wrapErr("failed to create prediction", err)
}

func (r *AnalyticsRepository) GetPrediction(ctx context.Context, id int64) (*models.Prediction, error) {
	p, err := scanPrediction(r.db.QueryRow(ctx, predictionSelect+` WHERE p.id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get prediction", err)
	}
	return p, nil
}

// ListPredictions фильтрует по типу модели; период прогноза должен лежать внутри [StartDate, EndDate]
func (r *AnalyticsRepository) ListPredictions(ctx context.Context, filter models.PredictionFilter) ([]*models.Prediction, error) {
	var (
		conds []string
		args  []any
	)
	if filter.ModelType != "" {
		args = append(args, filter.ModelType)
		conds = append(conds, fmt.Sprintf("m.model_type = $%d", len(args)))
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		args = append(args, *filter.StartDate, *filter.EndDate)
		conds = append(conds, fmt.Sprintf("p.prediction_start_date >= $%d AND p.prediction_end_date <= $%d", len(args)-1, len(args)))
	}
	query := predictionSelect
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}

	rows, err := r.db.Query(ctx, query+` ORDER BY p.generated_at DESC, p.id DESC;`, args...)
	if err != nil {
		return nil, wrapErr("failed to list predictions", err)
	}
	return collect(rows, scanPrediction, "prediction")
}

func (r *AnalyticsRepository) UpdatePrediction(ctx context.Context, p *models.Prediction) error {
	area, err := polygonParam(p.Area)
	if err != nil {
		return err
	}
	err = r.db.QueryRow(ctx, `
		UPDATE predictions SET
			model_id = $1, area = ST_GeomFromGeoJSON($2::text)::geography, prediction_start_date = $3,
			prediction_end_date = $4, predicted_count = $5, confidence_level = $6, details = $7,
			is_verified = $8, verified_at = $9
		WHERE id = $10
		RETURNING generated_by, generated_at, (SELECT model_type FROM predictive_models WHERE id = $1);
	`,
		p.ModelID, area, p.PredictionStartDate,
		p.PredictionEndDate, p.PredictedCount, p.ConfidenceLevel, p.Details,
		p.IsVerified, p.VerifiedAt, p.ID,
	).Scan(&p.GeneratedBy, &p.GeneratedAt, &p.ModelType)
	return wrapErr("failed to update prediction", err)
}

func (r *AnalyticsRepository) DeletePrediction(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM predictions WHERE id = $1;`, id)
	return mustAffect("failed to delete prediction", tag, err)
}

const requestSelect = `
	SELECT q.id, q.user_id, q.title, q.description, ST_AsGeoJSON(q.area), q.start_date, q.end_date,
		q.status, q.result_prediction_id, q.completed_at, q.created_at, q.updated_at,
		COALESCE(ARRAY(SELECT t.crime_type_id FROM analysis_request_crime_types t WHERE t.request_id = q.id ORDER BY t.crime_type_id), '{}')
	FROM analysis_requests q`

func (r *AnalyticsRepository) CreateRequest(ctx context.Context, req *models.AnalysisRequest) error {
	area, err := polygonParam(req.Area)
	if err != nil {
		return err
	}
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO analysis_requests (
				user_id, title, description, area, start_date, end_date, status, result_prediction_id, completed_at
			) VALUES ($1, $2, $3, ST_GeomFromGeoJSON($4::text)::geography, $5, $6, $7, $8, $9)
			RETURNING id, created_at, updated_at;
		`,
			req.UserID, req.Title, req.Description, area, req.StartDate, req.EndDate, req.Status,
			req.ResultPredictionID, req.CompletedAt,
		).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
		if err != nil {
			return err
		}
		return replaceLinks(ctx, tx, "analysis_request_crime_types", "request_id", req.ID, req.CrimeTypeIDs)
	})
	return wrapErr("failed to create analysis request", err)
}

func (r *AnalyticsRepository) GetRequest(ctx context.Context, id int64) (*models.AnalysisRequest, error) {
	req, err := scanRequest(r.db.QueryRow(ctx, requestSelect+` WHERE q.id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get analysis request", err)
	}
	return req, nil
}

func (r *AnalyticsRepository) ListRequests(ctx context.Context, status string) ([]*models.AnalysisRequest, error) {
	query := requestSelect
	args := []any{}
	if status != "" {
		query += ` WHERE q.status = $1`
		args = append(args, status)
	}
	rows, err := r.db.Query(ctx, query+` ORDER BY q.created_at DESC, q.id DESC;`, args...)
	if err != nil {
		return nil, wrapErr("failed to list analysis requests", err)
	}
	return collect(rows, scanRequest, "analysis request")
}

func (r *AnalyticsRepository) UpdateRequest(ctx context.Context, req *models.AnalysisRequest) error {
	area, err := polygonParam(req.Area)
	if err != nil {
		return err
	}
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			UPDATE analysis_requests SET
				title = $1, description = $2, area = ST_GeomFromGeoJSON($3::text)::geography,
				start_date = $4, end_date = $5, status = $6, result_prediction_id = $7,
				completed_at = $8, updated_at = NOW()
			WHERE id = $9
			RETURNING user_id, created_at, updated_at;
		`,
			req.Title, req.Description, area,
			req.StartDate, req.EndDate, req.Status, req.ResultPredictionID,
			req.CompletedAt, req.ID,
		).Scan(&req.UserID, &req.CreatedAt, &req.UpdatedAt)
		if err != nil {
			return err
		}
		return replaceLinks(ctx, tx, "analysis_request_crime_types", "request_id", req.ID, req.CrimeTypeIDs)
	})
	return wrapErr("failed to update analysis request", err)
}

func (r *AnalyticsRepository) DeleteRequest(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM analysis_requests WHERE id = $1;`, id)
	return mustAffect("failed to delete analysis request", tag, err)
}

func scanModel(row pgx.Row) (*models.PredictiveModel, error) {
	m := &models.PredictiveModel{}
	err := row.Scan(
		&m.ID, &m.Name, &m.Description, &m.ModelType, &m.ModelVersion, &m.Status, &m.Parameters,
		&m.CreatedBy, &m.LastTrained, &m.CreatedAt, &m.UpdatedAt, &m.TargetCrimeTypeIDs,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func scanPrediction(row pgx.Row) (*models.Prediction, error) {
	p := &models.Prediction{}
	var area []byte
	err := row.Scan(
		&p.ID, &p.ModelID, &p.ModelType, &area, &p.PredictionStartDate, &p.PredictionEndDate,
		&p.PredictedCount, &p.ConfidenceLevel, &p.Details, &p.GeneratedBy, &p.GeneratedAt,
		&p.IsVerified, &p.VerifiedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Area, err = scanPolygon(area); err != nil {
		return nil, err
	}
	return p, nil
}

func scanRequest(row pgx.Row) (*models.AnalysisRequest, error) {
	req := &models.AnalysisRequest{}
	var area []byte
	err := row.Scan(
		&req.ID, &req.UserID, &req.Title, &req.Description, &area, &req.StartDate, &req.EndDate,
		&req.Status, &req.ResultPredictionID, &req.CompletedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.CrimeTypeIDs,
	)
	if err != nil {
		return nil, err
	}
	if req.Area, err = scanPolygon(area); err != nil {
		return nil, err
	}
	return req, nil
}
