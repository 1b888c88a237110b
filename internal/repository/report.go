package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

const reportColumns = `
	id, title, user_id, parameters, ST_AsGeoJSON(area_of_interest), start_date, end_date, format,
	file_path, status, status_message, include_charts, include_maps, include_trends,
	expires_at, created_at, updated_at`

func (r *ReportRepository) CreateReport(ctx context.Context, rep *models.Report) error {
	area, err := polygonParam(rep.AreaOfInterest)
	if err != nil {
		return err
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO reports (
			title, user_id, parameters, area_of_interest, start_date, end_date, format, file_path,
			status, status_message, include_charts, include_maps, include_trends, expires_at
		) VALUES (
			$1, $2, $3, ST_GeomFromGeoJSON($4::text)::geography, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14
		)
		RETURNING id, created_at, updated_at;
	`,
		rep.Title, rep.UserID, rep.Parameters, area, rep.StartDate, rep.EndDate, rep.Format, rep.FilePath,
		rep.Status, rep.StatusMessage, rep.IncludeCharts, rep.IncludeMaps, rep.IncludeTrends, rep.ExpiresAt,
	).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
	return wrapErr("failed to create report", err)
}

func (r *ReportRepository) GetReport(ctx context.Context, id int64) (*models.Report, error) {
	rep, err := scanReport(r.db.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get report", err)
	}
	return rep, nil
}

// ListReports возвращает отчеты пользователя, новые первыми; status фильтрует, если задан
func (r *ReportRepository) ListReports(ctx context.Context, userID int64, status string) ([]*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE user_id = $1`
	args := []any{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	rows, err := r.db.Query(ctx, query+` ORDER BY created_at DESC, id DESC;`, args...)
	if err != nil {
		return nil, wrapErr("failed to list reports", err)
	}
	return collect(rows, scanReport, "report")
}

func (r *ReportRepository) UpdateReport(ctx context.Context, rep *models.Report) error {
	area, err := polygonParam(rep.AreaOfInterest)
	if err != nil {
		return err
	}
	err = r.db.QueryRow(ctx, `
		UPDATE reports SET
			title = $1, parameters = $2, area_of_interest = ST_GeomFromGeoJSON($3::text)::geography,
			start_date = $4, end_date = $5, format = $6, file_path = $7, status = $8, status_message = $9,
			include_charts = $10, include_maps = $11, include_trends = $12, expires_at = $13, updated_at = NOW()
		WHERE id = $14
		RETURNING created_at, updated_at;
	`,
		rep.Title, rep.Parameters, area,
		rep.StartDate, rep.EndDate, rep.Format, rep.FilePath, rep.Status, rep.StatusMessage,
		rep.IncludeCharts, rep.IncludeMaps, rep.IncludeTrends, rep.ExpiresAt, rep.ID,
	).Scan(&rep.CreatedAt, &rep.UpdatedAt)
	return wrapErr("failed to update report", err)
}

func (r *ReportRepository) DeleteReport(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1;`, id)
	return mustAffect("failed to delete report", tag, err)
}

const templateColumns = `
	id, name, description, template_type, format, template_html, sections, is_public, owner_id,
	created_at, updated_at`

func (r *ReportRepository) CreateTemplate(ctx context.Context, t *models.ReportTemplate) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO report_templates (name, description, template_type, format, template_html, sections, is_public, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at;
	`,
		t.Name, t.Description, t.TemplateType, t.Format, t.TemplateHTML, t.Sections, t.IsPublic, t.OwnerID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return wrapErr("failed to create report template", err)
}

func (r *ReportRepository) GetTemplate(ctx context.Context, id int64) (*models.ReportTemplate, error) {
	t, err := scanTemplate(r.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM report_templates WHERE id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get report template", err)
	}
	return t, nil
}

func (r *ReportRepository) ListTemplates(ctx context.Context, ownerID *int64) ([]*models.ReportTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM report_templates WHERE is_public`
	args := []any{}
	if ownerID != nil {
		query += ` OR owner_id = $1`
		args = append(args, *ownerID)
	}
	rows, err := r.db.Query(ctx, query+` ORDER BY name, id;`, args...)
	if err != nil {
		return nil, wrapErr("failed to list report templates", err)
	}
	return collect(rows, scanTemplate, "report template")
}

func (r *ReportRepository) UpdateTemplate(ctx context.Context, t *models.ReportTemplate) error {
	err := r.db.QueryRow(ctx, `
		UPDATE report_templates SET
			name = $1, description = $2, template_type = $3, format = $4, template_html = $5,
			sections = $6, is_public = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING owner_id, created_at, updated_at;
	`,
		t.Name, t.Description, t.TemplateType, t.Format, t.TemplateHTML, t.Sections, t.IsPublic, t.ID,
	).Scan(&t.OwnerID, &t.CreatedAt, &t.UpdatedAt)
	return wrapErr("failed to update report template", err)
}

func (r *ReportRepository) DeleteTemplate(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM report_templates WHERE id = $1;`, id)
	return mustAffect("failed to delete report template", tag, err)
}

const scheduledColumns = `
	id, name, user_id, template_id, parameters, frequency, day_of_week, day_of_month, hour, minute,
	delivery_email, is_active, last_generated, created_at, updated_at`

func (r *ReportRepository) CreateScheduled(ctx context.Context, sr *models.ScheduledReport) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO scheduled_reports (
			name, user_id, template_id, parameters, frequency, day_of_week, day_of_month,
			hour, minute, delivery_email, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;
	`,
		sr.Name, sr.UserID, sr.TemplateID, sr.Parameters, sr.Frequency, sr.DayOfWeek, sr.DayOfMonth,
		sr.Hour, sr.Minute, sr.DeliveryEmail, sr.IsActive,
	).Scan(&sr.ID, &sr.CreatedAt, &sr.UpdatedAt)
	return wrapErr("failed to create scheduled report", err)
}

func (r *ReportRepository) GetScheduled(ctx context.Context, id int64) (*models.ScheduledReport, error) {
	sr, err := scanScheduled(r.db.QueryRow(ctx, `SELECT `+scheduledColumns+` FROM scheduled_reports WHERE id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get scheduled report", err)
	}
	return sr, nil
}

func (r *ReportRepository) ListScheduled(ctx context.Context, userID int64, activeOnly bool) ([]*models.ScheduledReport, error) {
	query := `SELECT ` + scheduledColumns + ` FROM scheduled_reports WHERE user_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	rows, err := r.db.Query(ctx, query+` ORDER BY name, id;`, userID)
	if err != nil {
		return nil, wrapErr("failed to list scheduled reports", err)
	}
	return collect(rows, scanScheduled, "scheduled report")
}

func (r *ReportRepository) UpdateScheduled(ctx context.Context, sr *models.ScheduledReport) error {
	err := r.db.QueryRow(ctx, `
		UPDATE scheduled_reports SET
			name = $1, template_id = $2, parameters = $3, frequency = $4, day_of_week = $5,
			day_of_month = $6, hour = $7, minute = $8, delivery_email = $9, is_active = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING last_generated, created_at, updated_at;
	`,
		sr.Name, sr.TemplateID, sr.Parameters, sr.Frequency, sr.DayOfWeek,
		sr.DayOfMonth, sr.Hour, sr.Minute, sr.DeliveryEmail, sr.IsActive, sr.ID,
	).Scan(&sr.LastGenerated, &sr.CreatedAt, &sr.UpdatedAt)
	return wrapErr("failed to update scheduled report", err)
}

func (r *ReportRepository) DeleteScheduled(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM scheduled_reports WHERE id = $1;`, id)
	return mustAffect("failed to delete scheduled report", tag, err)
}

func scanReport(row pgx.Row) (*models.Report, error) {
	rep := &models.Report{}
	var area []byte
	err := row.Scan(
		&rep.ID, &rep.Title, &rep.UserID, &rep.Parameters, &area, &rep.StartDate, &rep.EndDate, &rep.Format,
		&rep.FilePath, &rep.Status, &rep.StatusMessage, &rep.IncludeCharts, &rep.IncludeMaps, &rep.IncludeTrends,
		&rep.ExpiresAt, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rep.AreaOfInterest, err = scanPolygon(area); err != nil {
		return nil, err
	}
	return rep, nil
}

func scanTemplate(row pgx.Row) (*models.ReportTemplate, error) {
	t := &models.ReportTemplate{}
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.TemplateType, &t.Format, &t.TemplateHTML, &t.Sections,
		&t.IsPublic, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func scanScheduled(row pgx.Row) (*models.ScheduledReport, error) {
	sr := &models.ScheduledReport{}
	err := row.Scan(
		&sr.ID, &sr.Name, &sr.UserID, &sr.TemplateID, &sr.Parameters, &sr.Frequency, &sr.DayOfWeek,
		&sr.DayOfMonth, &sr.Hour, &sr.Minute, &sr.DeliveryEmail, &sr.IsActive, &sr.LastGenerated,
		&sr.CreatedAt, &sr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sr, nil
}
