package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

// NewAlertRepository возвращает хранилище подписок. Тип также реализует
// webhook.NotificationStatusUpdater для воркера доставки.
func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{db: db}
}

var _ service.AlertRepository = (*AlertRepository)(nil)

const alertSelect = `
	SELECT
		a.id, a.name, a.user_id,
		ST_Y(a.location::geometry) AS latitude,
		ST_X(a.location::geometry) AS longitude,
		a.address, a.search_distance_meters, a.is_active, a.notification_method, a.check_frequency,
		a.notification_contact, a.last_checked_at, a.created_at, a.updated_at,
		COALESCE(ARRAY(SELECT t.crime_type_id FROM alert_crime_types t WHERE t.alert_id = a.id ORDER BY t.crime_type_id), '{}') AS crime_type_ids
	FROM alerts a`

// Create сохраняет подписку и ее типы инцидентов в одной транзакции
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO alerts (
				name, user_id, location, address, search_distance_meters, is_active,
				notification_method, check_frequency, notification_contact
			) VALUES (
				$1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6, $7, $8, $9, $10
			)
			RETURNING id, created_at, updated_at;
		`,
			alert.Name, alert.UserID, alert.Location.Lon(), alert.Location.Lat(), alert.Address,
			alert.SearchDistanceMeters, alert.IsActive, alert.NotificationMethod, alert.CheckFrequency,
			alert.NotificationContact,
		).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
		if err != nil {
			return err
		}
		return replaceLinks(ctx, tx, "alert_crime_types", "alert_id", alert.ID, alert.CrimeTypeIDs)
	})
	return wrapErr("failed to create alert", err)
}

func (r *AlertRepository) GetByID(ctx context.Context, id int64) (*models.Alert, error) {
	alert, err := scanAlert(r.db.QueryRow(ctx, alertSelect+` WHERE a.id = $1;`, id))
	if err != nil {
		return nil, wrapErr("failed to get alert by id", err)
	}
	return alert, nil
}

func (r *AlertRepository) ListByUser(ctx context.Context, userID int64, activeOnly bool) ([]*models.Alert, error) {
	query := alertSelect + ` WHERE a.user_id = $1`
	if activeOnly {
		query += ` AND a.is_active`
	}
	return r.queryAlerts(ctx, "failed to list alerts", query+` ORDER BY a.created_at DESC, a.id;`, userID)
}

// ListActive возвращает все активные подписки, давно не проверенные первыми
func (r *AlertRepository) ListActive(ctx context.Context) ([]*models.Alert, error) {
	return r.queryAlerts(ctx, "failed to list active alerts",
		alertSelect+` WHERE a.is_active ORDER BY a.last_checked_at ASC NULLS FIRST, a.id;`)
}

func (r *AlertRepository) queryAlerts(ctx context.Context, op, query string, args ...any) ([]*models.Alert, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, wrapErr("failed to scan alert row", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("error alert iteration", err)
	}
	return alerts, nil
}

func (r *AlertRepository) Update(ctx context.Context, alert *models.Alert) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			UPDATE alerts SET
				name = $1, location = ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, address = $4,
				search_distance_meters = $5, is_active = $6, notification_method = $7,
				check_frequency = $8, notification_contact = $9, updated_at = NOW()
			WHERE id = $10
			RETURNING updated_at;
		`,
			alert.Name, alert.Location.Lon(), alert.Location.Lat(), alert.Address,
			alert.SearchDistanceMeters, alert.IsActive, alert.NotificationMethod,
			alert.CheckFrequency, alert.NotificationContact, alert.ID,
		).Scan(&alert.UpdatedAt)
		if err != nil {
			return err
		}
		return replaceLinks(ctx, tx, "alert_crime_types", "alert_id", alert.ID, alert.CrimeTypeIDs)
	})
	return wrapErr("failed to update alert", err)
}

func (r *AlertRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM alerts WHERE id = $1;`, id)
	return mustAffect("failed to delete alert", tag, err)
}

// MarkChecked сдвигает last_checked_at. Значение никогда не уменьшается.
func (r *AlertRepository) MarkChecked(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE alerts
		SET last_checked_at = GREATEST(COALESCE(last_checked_at, $2), $2)
		WHERE id = $1;
	`, id, at)
	return mustAffect("failed to mark alert checked", tag, err)
}

// FindMatches выполняет пространственный поиск на geography: расстояние в метрах по сфероиду.
// Второе значение - общее число совпадений без учета Limit.
func (r *AlertRepository) FindMatches(ctx context.Context, q models.MatchQuery) ([]*models.CrimeMatch, int, error) {
	args := []any{q.Center.Lon(), q.Center.Lat(), q.RadiusMeters, q.CrimeTypeIDs}
	conds := []string{
		"c.is_active",
		"c.crime_type_id = ANY($4)",
		"ST_DWithin(c.location, center.geog, $3)",
	}
	if q.CreatedAfter != nil {
		args = append(args, *q.CreatedAfter)
		conds = append(conds, fmt.Sprintf("c.created_at > $%d", len(args)))
	}
	if q.CreatedUntil != nil {
		args = append(args, *q.CreatedUntil)
		conds = append(conds, fmt.Sprintf("c.created_at <= $%d", len(args)))
	}
	if q.ExcludeNotified {
		args = append(args, q.AlertID)
		conds = append(conds, fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM alert_notifications n WHERE n.alert_id = $%d AND c.id = ANY(n.crime_ids))", len(args)))
	}

	query := `
		WITH center AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geog
		)
		SELECT c.id, c.incident_id, ct.name, c.occurred_at, c.reported_at,
			ST_Distance(c.location, center.geog) AS distance,
			COUNT(*) OVER() AS total
		FROM crimes c
		JOIN crime_types ct ON ct.id = c.crime_type_id
		CROSS JOIN center
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY distance, c.id`
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, wrapErr("failed to find matches", err)
	}
	defer rows.Close()

	matches := make([]*models.CrimeMatch, 0)
	total := 0
	for rows.Next() {
		m := &models.CrimeMatch{}
		if err := rows.Scan(&m.CrimeID, &m.IncidentID, &m.CrimeTypeName, &m.OccurredAt, &m.ReportedAt,
			&m.DistanceMeters, &total); err != nil {
			return nil, 0, wrapErr("failed to scan match row", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapErr("error match iteration", err)
	}
	return matches, total, nil
}

// CreateNotification вставляет уведомление, если ключ идемпотентности свободен
func (r *AlertRepository) CreateNotification(ctx context.Context, n *models.AlertNotification) (bool, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO alert_notifications (
			alert_id, crime_ids, sent_at, notification_method, status, status_message,
			idempotency_key, window_start, window_end
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (idempotency_key) DO NOTHING
		RETURNING id;
	`,
		n.AlertID, n.CrimeIDs, n.SentAt, n.NotificationMethod, n.Status, n.StatusMessage,
		n.IdempotencyKey, n.WindowStart, n.WindowEnd,
	).Scan(&n.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, wrapErr("failed to create notification", err)
	}
	return true, nil
}

const notificationSelect = `
	SELECT n.id, n.alert_id, n.crime_ids, n.sent_at, n.notification_method, n.status,
		n.status_message, n.idempotency_key, n.window_start, n.window_end
	FROM alert_notifications n
	JOIN alerts a ON a.id = n.alert_id`

// ListNotifications возвращает уведомления по подпискам пользователя, новые первыми
func (r *AlertRepository) ListNotifications(ctx context.Context, userID int64) ([]*models.AlertNotification, error) {
	rows, err := r.db.Query(ctx, notificationSelect+` WHERE a.user_id = $1 ORDER BY n.sent_at DESC, n.id DESC;`, userID)
	if err != nil {
		return nil, wrapErr("failed to list notifications", err)
	}
	defer rows.Close()

	list := make([]*models.AlertNotification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, wrapErr("failed to scan notification row", err)
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("error notification iteration", err)
	}
	return list, nil
}

func (r *AlertRepository) GetNotificationForUser(ctx context.Context, id, userID int64) (*models.AlertNotification, error) {
	n, err := scanNotification(r.db.QueryRow(ctx, notificationSelect+` WHERE n.id = $1 AND a.user_id = $2;`, id, userID))
	if err != nil {
		return nil, wrapErr("failed to get notification", err)
	}
	return n, nil
}

// UpdateNotificationStatus меняет только статус и сообщение
func (r *AlertRepository) UpdateNotificationStatus(ctx context.Context, id int64, status models.NotificationStatus, message string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE alert_notifications SET status = $1, status_message = $2 WHERE id = $3;
	`, status, message, id)
	return mustAffect("failed to update notification status", tag, err)
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	a := &models.Alert{}
	var lat, lon float64
	err := row.Scan(
		&a.ID, &a.Name, &a.UserID, &lat, &lon,
		&a.Address, &a.SearchDistanceMeters, &a.IsActive, &a.NotificationMethod, &a.CheckFrequency,
		&a.NotificationContact, &a.LastCheckedAt, &a.CreatedAt, &a.UpdatedAt, &a.CrimeTypeIDs,
	)
	if err != nil {
		return nil, err
	}
	a.Location = models.NewPoint(lat, lon)
	return a, nil
}

func scanNotification(row pgx.Row) (*models.AlertNotification, error) {
	n := &models.AlertNotification{}
	err := row.Scan(
		&n.ID, &n.AlertID, &n.CrimeIDs, &n.SentAt, &n.NotificationMethod, &n.Status,
		&n.StatusMessage, &n.IdempotencyKey, &n.WindowStart, &n.WindowEnd,
	)
	if err != nil {
		return nil, err
	}
	return n, nil
}
