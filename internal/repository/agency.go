package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
	"github.com/shenikar/crime_analysis_system/pkg/textnorm"
)

type AgencyRepository struct {
	db *pgxpool.Pool
}

func NewAgencyRepository(db *pgxpool.Pool) service.AgencyRepository {
	return &AgencyRepository{db: db}
}

const agencyColumns = `
	id, name, agency_code, agency_type, contact_email, contact_phone, ST_AsGeoJSON(jurisdiction_area),
	address, city, state, zip_code, is_active, integration_status, created_at, updated_at`

func (r *AgencyRepository) Create(ctx context.Context, a *models.Agency) error {
	area, err := multiPolygonParam(a.JurisdictionArea)
	if err != nil {
		return err
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO agencies (
			name, agency_code, agency_type, contact_email, contact_phone, jurisdiction_area,
			address, city, state, zip_code, is_active, integration_status
		) VALUES ($1, $2, $3, $4, $5, ST_GeomFromGeoJSON($6::text)::geography, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at;
	`,
		a.Name, a.AgencyCode, a.AgencyType, a.ContactEmail, a.ContactPhone, area,
		a.Address, a.City, a.State, a.ZipCode, a.IsActive, a.IntegrationStatus,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return wrapErr("failed to create agency", err)
}

func (r *AgencyRepository) GetByID(ctx context.Context, id int64) (*models.Agency, error) {
	a, err := scanAgency(r.db.QueryRow(ctx, `SELECT `+agencyColumns+` FROM agencies WHERE id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get agency by id", err)
	}
	return a, nil
}

// List возвращает органы по имени, search ищет по имени и коду без учета регистра и акцентов
func (r *AgencyRepository) List(ctx context.Context, search string) ([]*models.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies`
	args := []any{}
	if search != "" {
		query += ` WHERE unaccent(lower(name)) LIKE $1 OR lower(agency_code) LIKE $1`
		args = append(args, textnorm.LikePattern(textnorm.Fold(search)))
	}
	query += ` ORDER BY name, id;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("failed to list agencies", err)
	}
	defer rows.Close()

	agencies := make([]*models.Agency, 0)
	for rows.Next() {
		a, err := scanAgency(rows)
		if err != nil {
			return nil, wrapErr("failed to scan agency row", err)
		}
		agencies = append(agencies, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("error agency iteration", err)
	}
	return agencies, nil
}

func (r *AgencyRepository) Update(ctx context.Context, a *models.Agency) error {
	area, err := multiPolygonParam(a.JurisdictionArea)
	if err != nil {
		return err
	}
	err = r.db.QueryRow(ctx, `
		UPDATE agencies SET
			name = $1, agency_code = $2, agency_type = $3, contact_email = $4, contact_phone = $5,
			jurisdiction_area = ST_GeomFromGeoJSON($6::text)::geography, address = $7, city = $8, state = $9,
			zip_code = $10, is_active = $11, integration_status = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING created_at, updated_at;
	`,
		a.Name, a.AgencyCode, a.AgencyType, a.ContactEmail, a.ContactPhone, area,
		a.Address, a.City, a.State, a.ZipCode, a.IsActive, a.IntegrationStatus, a.ID,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return wrapErr("failed to update agency", err)
}

func (r *AgencyRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM agencies WHERE id = $1;`, id)
	return mustAffect("failed to delete agency", tag, err)
}

const apiConfigColumns = `
	id, agency_id, api_type, connection_url, auth_type, username, password, api_key,
	configuration, sync_schedule, last_sync`

func (r *AgencyRepository) GetAPIConfig(ctx context.Context, agencyID int64) (*models.AgencyAPIConfig, error) {
	cfg, err := scanAPIConfig(r.db.QueryRow(ctx, `SELECT `+apiConfigColumns+` FROM agency_api_configs WHERE agency_id = $1;`, agencyID))
	if err != nil {
		return nil, wrapErr("failed to get api config", err)
	}
	return cfg, nil
}

func (r *AgencyRepository) GetAPIConfigByID(ctx context.Context, id int64) (*models.AgencyAPIConfig, error) {
	cfg, err := scanAPIConfig(r.db.QueryRow(ctx, `SELECT `+apiConfigColumns+` FROM agency_api_configs WHERE id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get api config by id", err)
	}
	return cfg, nil
}

func (r *AgencyRepository) ListAPIConfigs(ctx context.Context) ([]*models.AgencyAPIConfig, error) {
	rows, err := r.db.Query(ctx, `SELECT `+apiConfigColumns+` FROM agency_api_configs ORDER BY agency_id;`)
	if err != nil {
		return nil, wrapErr("failed to list api configs", err)
	}
	defer rows.Close()

	configs := make([]*models.AgencyAPIConfig, 0)
	for rows.Next() {
		cfg, err := scanAPIConfig(rows)
		if err != nil {
			return nil, wrapErr("failed to scan api config row", err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("error api config iteration", err)
	}
	return configs, nil
}

// UpsertAPIConfig создает конфигурацию или заменяет существующую для органа.
// Пустые пароль и ключ не затирают сохраненные значения.
func (r *AgencyRepository) UpsertAPIConfig(ctx context.Context, cfg *models.AgencyAPIConfig) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO agency_api_configs (
			agency_id, api_type, connection_url, auth_type, username, password, api_key, configuration, sync_schedule
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (agency_id) DO UPDATE SET
			api_type = EXCLUDED.api_type,
			connection_url = EXCLUDED.connection_url,
			auth_type = EXCLUDED.auth_type,
			username = EXCLUDED.username,
			password = COALESCE(NULLIF(EXCLUDED.password, ''), agency_api_configs.password),
			api_key = COALESCE(NULLIF(EXCLUDED.api_key, ''), agency_api_configs.api_key),
			configuration = EXCLUDED.configuration,
			sync_schedule = EXCLUDED.sync_schedule
		RETURNING id, last_sync;
	`,
		cfg.AgencyID, cfg.APIType, cfg.ConnectionURL, cfg.AuthType, cfg.Username,
		cfg.Password, cfg.APIKey, cfg.Configuration, cfg.SyncSchedule,
	).Scan(&cfg.ID, &cfg.LastSync)
	return wrapErr("failed to upsert api config", err)
}

func (r *AgencyRepository) DeleteAPIConfig(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM agency_api_configs WHERE id = $1;`, id)
	return mustAffect("failed to delete api config", tag, err)
}

const agencyUserSelect = `
	SELECT au.id, au.user_id, au.agency_id, au.role, au.is_primary, u.username, a.name, au.created_at, au.updated_at
	FROM agency_users au
	JOIN users u ON u.id = au.user_id
	JOIN agencies a ON a.id = au.agency_id`

func (r *AgencyRepository) CreateAgencyUser(ctx context.Context, au *models.AgencyUser) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO agency_users (user_id, agency_id, role, is_primary)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at;
	`, au.UserID, au.AgencyID, au.Role, au.IsPrimary).Scan(&au.ID, &au.CreatedAt, &au.UpdatedAt)
	return wrapErr("failed to create agency user", err)
}

func (r *AgencyRepository) GetAgencyUser(ctx context.Context, id int64) (*models.AgencyUser, error) {
	au, err := scanAgencyUser(r.db.QueryRow(ctx, agencyUserSelect+` WHERE au.id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get agency user", err)
	}
	return au, nil
}

func (r *AgencyRepository) ListAgencyUsers(ctx context.Context, filter models.AgencyUserFilter) ([]*models.AgencyUser, error) {
	var (
		conds []string
		args  []any
	)
	if filter.AgencyID != nil {
		args = append(args, *filter.AgencyID)
		conds = append(conds, fmt.Sprintf("au.agency_id = $%d", len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("au.user_id = $%d", len(args)))
	}
	query := agencyUserSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY au.id;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("failed to list agency users", err)
	}
	defer rows.Close()

	list := make([]*models.AgencyUser, 0)
	for rows.Next() {
		au, err := scanAgencyUser(rows)
		if err != nil {
			return nil, wrapErr("failed to scan agency user row", err)
		}
		list = append(list, au)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("error agency user iteration", err)
	}
	return list, nil
}

func (r *AgencyRepository) UpdateAgencyUser(ctx context.Context, au *models.AgencyUser) error {
	err := r.db.QueryRow(ctx, `
		UPDATE agency_users SET user_id = $1, agency_id = $2, role = $3, is_primary = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at;
	`, au.UserID, au.AgencyID, au.Role, au.IsPrimary, au.ID).Scan(&au.CreatedAt, &au.UpdatedAt)
	return wrapErr("failed to update agency user", err)
}

func (r *AgencyRepository) DeleteAgencyUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM agency_users WHERE id = $1;`, id)
	return mustAffect("failed to delete agency user", tag, err)
}

func scanAgency(row pgx.Row) (*models.Agency, error) {
	a := &models.Agency{}
	var area []byte
	if err := row.Scan(
		&a.ID, &a.Name, &a.AgencyCode, &a.AgencyType, &a.ContactEmail, &a.ContactPhone, &area,
		&a.Address, &a.City, &a.State, &a.ZipCode, &a.IsActive, &a.IntegrationStatus, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	mp, err := scanMultiPolygon(area)
	if err != nil {
		return nil, err
	}
	a.JurisdictionArea = mp
	return a, nil
}

func scanAPIConfig(row pgx.Row) (*models.AgencyAPIConfig, error) {
	cfg := &models.AgencyAPIConfig{}
	err := row.Scan(
		&cfg.ID, &cfg.AgencyID, &cfg.APIType, &cfg.ConnectionURL, &cfg.AuthType, &cfg.Username,
		&cfg.Password, &cfg.APIKey, &cfg.Configuration, &cfg.SyncSchedule, &cfg.LastSync,
	)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func scanAgencyUser(row pgx.Row) (*models.AgencyUser, error) {
	au := &models.AgencyUser{}
	err := row.Scan(&au.ID, &au.UserID, &au.AgencyID, &au.Role, &au.IsPrimary,
		&au.UserUsername, &au.AgencyName, &au.CreatedAt, &au.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return au, nil
}
