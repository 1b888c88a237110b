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

// CatalogRepository - справочник категорий и типов преступлений
type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) service.CrimeCatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, c *models.CrimeCategory) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO crime_categories (name, description) VALUES ($1, $2) RETURNING id;
	`, c.Name, c.Description).Scan(&c.ID)
	return wrapErr("failed to create category", err)
}

func (r *CatalogRepository) GetCategory(ctx context.Context, id int64) (*models.CrimeCategory, error) {
	c := &models.CrimeCategory{}
	err := r.db.QueryRow(ctx, `SELECT id, name, description FROM crime_categories WHERE id = $1;`, id).
		Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return nil, wrapErr("failed to get category", err)
	}
	return c, nil
}

// ListCategories ищет по нормализованному имени и описанию
func (r *CatalogRepository) ListCategories(ctx context.Context, search string) ([]*models.CrimeCategory, error) {
	query := `SELECT id, name, description FROM crime_categories`
	args := []any{}
	if search != "" {
		query += ` WHERE unaccent(lower(name)) LIKE $1 OR unaccent(lower(description)) LIKE $1`
		args = append(args, textnorm.LikePattern(search))
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("failed to list categories", err)
	}
	defer rows.Close()

	list := make([]*models.CrimeCategory, 0)
	for rows.Next() {
		c := &models.CrimeCategory{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, wrapErr("failed to scan category row", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("error category iteration", err)
	}
	return list, nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, c *models.CrimeCategory) error {
	tag, err := r.db.Exec(ctx, `UPDATE crime_categories SET name = $1, description = $2 WHERE id = $3;`,
		c.Name, c.Description, c.ID)
	return mustAffect("failed to update category", tag, err)
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM crime_categories WHERE id = $1;`, id)
	return mustAffect("failed to delete category", tag, err)
}

const crimeTypeSelect = `
	SELECT t.id, t.category_id, c.name, t.name, t.description, t.severity_level
	FROM crime_types t
	JOIN crime_categories c ON c.id = t.category_id`

func (r *CatalogRepository) CreateType(ctx context.Context, t *models.CrimeType) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO crime_types (category_id, name, description, severity_level)
		VALUES ($1, $2, $3, $4)
		RETURNING id, (SELECT name FROM crime_categories WHERE id = $1);
	`, t.CategoryID, t.Name, t.Description, t.SeverityLevel).Scan(&t.ID, &t.CategoryName)
	return wrapErr("failed to create crime type", err)
}

func (r *CatalogRepository) GetType(ctx context.Context, id int64) (*models.CrimeType, error) {
	t, err := scanCrimeType(r.db.QueryRow(ctx, crimeTypeSelect+` WHERE t.id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get crime type", err)
	}
	return t, nil
}

func (r *CatalogRepository) ListTypes(ctx context.Context, filter models.CrimeTypeFilter) ([]*models.CrimeType, error) {
	var (
		conds []string
		args  []any
	)
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conds = append(conds, fmt.Sprintf("t.category_id = $%d", len(args)))
	}
	if filter.SeverityLevel != nil {
		args = append(args, *filter.SeverityLevel)
		conds = append(conds, fmt.Sprintf("t.severity_level = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, textnorm.LikePattern(filter.Search))
		conds = append(conds, fmt.Sprintf("(unaccent(lower(t.name)) LIKE $%d OR unaccent(lower(t.description)) LIKE $%[1]d)", len(args)))
	}
	query := crimeTypeSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY c.name, t.name;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("failed to list crime types", err)
	}
	defer rows.Close()

	list := make([]*models.CrimeType, 0)
	for rows.Next() {
		t, err := scanCrimeType(rows)
		if err != nil {
			return nil, wrapErr("failed to scan crime type row", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("error crime type iteration", err)
	}
	return list, nil
}

func (r *CatalogRepository) UpdateType(ctx context.Context, t *models.CrimeType) error {
	err := r.db.QueryRow(ctx, `
		UPDATE crime_types SET category_id = $1, name = $2, description = $3, severity_level = $4
		WHERE id = $5
		RETURNING (SELECT name FROM crime_categories WHERE id = $1);
	`, t.CategoryID, t.Name, t.Description, t.SeverityLevel, t.ID).Scan(&t.CategoryName)
	return wrapErr("failed to update crime type", err)
}

func (r *CatalogRepository) DeleteType(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM crime_types WHERE id = $1;`, id)
	return mustAffect("failed to delete crime type", tag, err)
}

func scanCrimeType(row pgx.Row) (*models.CrimeType, error) {
	t := &models.CrimeType{}
	if err := row.Scan(&t.ID, &t.CategoryID, &t.CategoryName, &t.Name, &t.Description, &t.SeverityLevel); err != nil {
		return nil, err
	}
	return t, nil
}
