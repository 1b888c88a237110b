package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
	"github.com/shenikar/crime_analysis_system/pkg/textnorm"
)

type CrimeRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewCrimeRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.CrimeRepository {
	return &CrimeRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

var crimeOrderColumns = map[string]string{
	"occurred_at": "c.occurred_at",
	"reported_at": "c.reported_at",
	"created_at":  "c.created_at",
}

const crimeSelect = `
	SELECT
		c.id, c.incident_id, c.crime_type_id, ct.name, c.description, c.occurred_at, c.reported_at,
		c.agency_id, a.name, c.data_source,
		ST_Y(c.location::geometry) AS latitude,
		ST_X(c.location::geometry) AS longitude,
		c.block_address, c.zip_code, c.city, c.state, c.country, c.verification_status,
		c.is_active, c.created_at, c.updated_at`

const crimeFrom = `
	FROM crimes c
	JOIN crime_types ct ON ct.id = c.crime_type_id
	JOIN agencies a ON a.id = c.agency_id`

// Create сохраняет инцидент и его атрибуты в одной транзакции
func (r *CrimeRepository) Create(ctx context.Context, crime *models.Crime) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO crimes (
				incident_id, crime_type_id, description, occurred_at, reported_at, agency_id, data_source,
				location, block_address, zip_code, city, state, country, verification_status, is_active
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7,
				ST_SetSRID(ST_MakePoint($8, $9), 4326)::geography,
				$10, $11, $12, $13, $14, $15, $16
			)
			RETURNING id, created_at, updated_at;
		`,
			crime.IncidentID, crime.CrimeTypeID, crime.Description, crime.OccurredAt, crime.ReportedAt,
			crime.AgencyID, crime.DataSource, crime.Location.Lon(), crime.Location.Lat(),
			crime.BlockAddress, crime.ZipCode, crime.City, crime.State, crime.Country,
			crime.VerificationStatus, crime.IsActive,
		).Scan(&crime.ID, &crime.CreatedAt, &crime.UpdatedAt)
		if err != nil {
			return err
		}
		return insertAttributes(ctx, tx, crime.ID, crime.Attributes)
	})
	return wrapErr("failed to create crime", err)
}

func (r *CrimeRepository) GetByID(ctx context.Context, id int64) (*models.Crime, error) {
	crime, err := scanCrime(r.db.QueryRow(ctx, crimeSelect+crimeFrom+` WHERE c.id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get crime by id", err)
	}
	if err := r.attachAttributes(ctx, []*models.Crime{crime}); err != nil {
		return nil, err
	}
	return crime, nil
}

// List возвращает страницу инцидентов под фильтром и общее количество строк
func (r *CrimeRepository) List(ctx context.Context, filter models.CrimeFilter) ([]*models.Crime, int, error) {
	where, args := crimeConditions(filter)

	order, ok := crimeOrderColumns[filter.OrderBy]
	if !ok {
		order = "c.occurred_at"
	}
	if filter.Descending {
		order += " DESC"
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := crimeSelect + `, COUNT(*) OVER() AS total` + crimeFrom + where +
		fmt.Sprintf(" ORDER BY %s, c.id LIMIT $%d OFFSET $%d;", order, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, wrapErr("failed to list crimes", err)
	}
	defer rows.Close()

	crimes := make([]*models.Crime, 0)
	total := 0
	for rows.Next() {
		crime, err := scanCrime(rows, &total)
		if err != nil {
			return nil, 0, wrapErr("failed to scan crime row", err)
		}
		crimes = append(crimes, crime)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapErr("error crime iteration", err)
	}

	if total == 0 && offset > 0 {
		// страница за пределами выборки, общее число берем отдельно
		where, countArgs := crimeConditions(filter)
		if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+crimeFrom+where, countArgs...).Scan(&total); err != nil {
			return nil, 0, wrapErr("failed to count crimes", err)
		}
	}

	if err := r.attachAttributes(ctx, crimes); err != nil {
		return nil, 0, err
	}
	return crimes, total, nil
}

func crimeConditions(filter models.CrimeFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if !filter.IncludeInactive {
		conds = append(conds, "c.is_active")
	}
	if filter.CrimeTypeID != nil {
		add("c.crime_type_id = $%d", *filter.CrimeTypeID)
	}
	if filter.AgencyID != nil {
		add("c.agency_id = $%d", *filter.AgencyID)
	}
	if filter.City != "" {
		add("c.city = $%d", filter.City)
	}
	if filter.State != "" {
		add("c.state = $%d", filter.State)
	}
	if filter.VerificationStatus != "" {
		add("c.verification_status = $%d", filter.VerificationStatus)
	}
	if filter.Search != "" {
		add("(unaccent(lower(c.description)) LIKE $%[1]d OR unaccent(lower(c.block_address)) LIKE $%[1]d OR c.zip_code LIKE $%[1]d)",
			textnorm.LikePattern(filter.Search))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Update изменяет инцидент. Если Attributes не nil, набор атрибутов заменяется целиком.
func (r *CrimeRepository) Update(ctx context.Context, crime *models.Crime) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			UPDATE crimes SET
				incident_id = $1, crime_type_id = $2, description = $3, occurred_at = $4, reported_at = $5,
				agency_id = $6, data_source = $7,
				location = ST_SetSRID(ST_MakePoint($8, $9), 4326)::geography,
				block_address = $10, zip_code = $11, city = $12, state = $13, country = $14,
				verification_status = $15, updated_at = NOW()
			WHERE id = $16
			RETURNING is_active, created_at, updated_at;
		`,
			crime.IncidentID, crime.CrimeTypeID, crime.Description, crime.OccurredAt, crime.ReportedAt,
			crime.AgencyID, crime.DataSource, crime.Location.Lon(), crime.Location.Lat(),
			crime.BlockAddress, crime.ZipCode, crime.City, crime.State, crime.Country,
			crime.VerificationStatus, crime.ID,
		).Scan(&crime.IsActive, &crime.CreatedAt, &crime.UpdatedAt)
		if err != nil {
			return err
		}
		if crime.Attributes == nil {
			return nil
		}
		if _, err := tx.Exec(ctx, `DELETE FROM crime_attributes WHERE crime_id = $1;`, crime.ID); err != nil {
			return err
		}
		return insertAttributes(ctx, tx, crime.ID, crime.Attributes)
	})
	return wrapErr("failed to update crime", err)
}

// Deactivate снимает флаг is_active
func (r *CrimeRepository) Deactivate(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE crimes SET is_active = FALSE, updated_at = NOW() WHERE id = $1;
	`, id)
	return mustAffect("failed to deactivate crime", tag, err)
}

func insertAttributes(ctx context.Context, tx pgx.Tx, crimeID int64, attrs []*models.CrimeAttribute) error {
	for _, a := range attrs {
		a.CrimeID = crimeID
		err := tx.QueryRow(ctx, `
			INSERT INTO crime_attributes (crime_id, name, value) VALUES ($1, $2, $3) RETURNING id;
		`, crimeID, a.Name, a.Value).Scan(&a.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *CrimeRepository) attachAttributes(ctx context.Context, crimes []*models.Crime) error {
	if len(crimes) == 0 {
		return nil
	}
	ids := make([]int64, len(crimes))
	byID := make(map[int64]*models.Crime, len(crimes))
	for i, c := range crimes {
		ids[i] = c.ID
		c.Attributes = make([]*models.CrimeAttribute, 0)
		byID[c.ID] = c
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, crime_id, name, value FROM crime_attributes WHERE crime_id = ANY($1) ORDER BY name;
	`, ids)
	if err != nil {
		return wrapErr("failed to load crime attributes", err)
	}
	defer rows.Close()

	for rows.Next() {
		a := &models.CrimeAttribute{}
		if err := rows.Scan(&a.ID, &a.CrimeID, &a.Name, &a.Value); err != nil {
			return wrapErr("failed to scan crime attribute", err)
		}
		if c, ok := byID[a.CrimeID]; ok {
			c.Attributes = append(c.Attributes, a)
		}
	}
	return wrapErr("error crime attribute iteration", rows.Err())
}

func (r *CrimeRepository) CreateAttribute(ctx context.Context, a *models.CrimeAttribute) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO crime_attributes (crime_id, name, value) VALUES ($1, $2, $3) RETURNING id;
	`, a.CrimeID, a.Name, a.Value).Scan(&a.ID)
	return wrapErr("failed to create crime attribute", err)
}

func (r *CrimeRepository) GetAttribute(ctx context.Context, id int64) (*models.CrimeAttribute, error) {
	a := &models.CrimeAttribute{}
	err := r.db.QueryRow(ctx, `SELECT id, crime_id, name, value FROM crime_attributes WHERE id = $1;`, id).
		Scan(&a.ID, &a.CrimeID, &a.Name, &a.Value)
	if err != nil {
		return nil, wrapErr("failed to get crime attribute", err)
	}
	return a, nil
}

func (r *CrimeRepository) ListAttributes(ctx context.Context, crimeID *int64) ([]*models.CrimeAttribute, error) {
	query := `SELECT id, crime_id, name, value FROM crime_attributes`
	args := []any{}
	if crimeID != nil {
		query += ` WHERE crime_id = $1`
		args = append(args, *crimeID)
	}
	query += ` ORDER BY crime_id, name;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("failed to list crime attributes", err)
	}
	defer rows.Close()

	list := make([]*models.CrimeAttribute, 0)
	for rows.Next() {
		a := &models.CrimeAttribute{}
		if err := rows.Scan(&a.ID, &a.CrimeID, &a.Name, &a.Value); err != nil {
			return nil, wrapErr("failed to scan crime attribute", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("error crime attribute iteration", err)
	}
	return list, nil
}

func (r *CrimeRepository) UpdateAttribute(ctx context.Context, a *models.CrimeAttribute) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE crime_attributes SET crime_id = $1, name = $2, value = $3 WHERE id = $4;
	`, a.CrimeID, a.Name, a.Value, a.ID)
	return mustAffect("failed to update crime attribute", tag, err)
}

func (r *CrimeRepository) DeleteAttribute(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM crime_attributes WHERE id = $1;`, id)
	return mustAffect("failed to delete crime attribute", tag, err)
}

// cachedCrime добавляет координаты, которые Crime не сериализует
type cachedCrime struct {
	*models.Crime
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func crimeCacheKey(id int64) string {
	return fmt.Sprintf("crime:%d", id)
}

// GetCrimeFromCache пытается получить инцидент из Redis. Промах кэша - (nil, nil).
func (r *CrimeRepository) GetCrimeFromCache(ctx context.Context, id int64) (*models.Crime, error) {
	val, err := r.redisClient.Get(ctx, crimeCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get crime from cache: %w", err)
	}

	cached := cachedCrime{Crime: &models.Crime{}}
	if err := json.Unmarshal(val, &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal crime from cache: %w", err)
	}
	cached.Crime.Location = models.NewPoint(cached.Latitude, cached.Longitude)
	return cached.Crime, nil
}

// SetCrimeCache сохраняет инцидент в Redis
func (r *CrimeRepository) SetCrimeCache(ctx context.Context, crime *models.Crime) error {
	val, err := json.Marshal(cachedCrime{
		Crime:     crime,
		Latitude:  crime.Location.Lat(),
		Longitude: crime.Location.Lon(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal crime for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, crimeCacheKey(crime.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set crime in cache: %w", err)
	}
	return nil
}

// InvalidateCrimeCache удаляет инцидент из кэша
func (r *CrimeRepository) InvalidateCrimeCache(ctx context.Context, id int64) error {
	if err := r.redisClient.Del(ctx, crimeCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate crime cache: %w", err)
	}
	return nil
}

// scanCrime читает строку crimeSelect; extra - дополнительные колонки после основных
func scanCrime(row pgx.Row, extra ...any) (*models.Crime, error) {
	c := &models.Crime{}
	var lat, lon float64
	dest := []any{
		&c.ID, &c.IncidentID, &c.CrimeTypeID, &c.CrimeTypeName, &c.Description, &c.OccurredAt, &c.ReportedAt,
		&c.AgencyID, &c.AgencyName, &c.DataSource, &lat, &lon,
		&c.BlockAddress, &c.ZipCode, &c.City, &c.State, &c.Country, &c.VerificationStatus,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	c.Location = models.NewPoint(lat, lon)
	return c, nil
}
