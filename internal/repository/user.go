package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_analysis_system/internal/models"
	"github.com/shenikar/crime_analysis_system/internal/service"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	u.id, u.username, u.email, u.password_hash, u.first_name, u.last_name, u.phone_number,
	u.user_type, u.theme_preference, u.email_notifications, u.sms_notifications, u.push_notifications,
	u.is_email_verified, u.verification_token, host(u.created_ip), host(u.last_login_ip),
	u.is_active, u.date_joined, u.last_login,
	p.bio, p.address, p.city, p.state, p.zip_code, p.country, p.default_search_radius, p.updated_at`

// CreateWithProfile создает пользователя и его профиль в одной транзакции
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User, profile *models.UserProfile) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (
				username, email, password_hash, first_name, last_name, phone_number, user_type,
				theme_preference, email_notifications, sms_notifications, push_notifications,
				verification_token, created_ip, is_active
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::inet, $14)
			RETURNING id, date_joined;
		`,
			user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.PhoneNumber,
			user.UserType, user.ThemePreference, user.EmailNotifications, user.SMSNotifications,
			user.PushNotifications, user.VerificationToken, user.CreatedIP, user.IsActive,
		).Scan(&user.ID, &user.DateJoined)
		if err != nil {
			return err
		}

		profile.UserID = user.ID
		return tx.QueryRow(ctx, `
			INSERT INTO user_profiles (user_id, bio, address, city, state, zip_code, country, default_search_radius)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING updated_at;
		`,
			profile.UserID, profile.Bio, profile.Address, profile.City, profile.State,
			profile.ZipCode, profile.Country, profile.DefaultSearchRadius,
		).Scan(&profile.UpdatedAt)
	})
	return wrapErr("failed to create user", err)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		WHERE u.id = $1;
	`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, wrapErr("failed to get user by id", err)
	}
	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		WHERE u.username = $1;
	`, username)
	user, err := scanUser(row)
	if err != nil {
		return nil, wrapErr("failed to get user by username", err)
	}
	return user, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, ip *string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET last_login = $1, last_login_ip = $2::inet WHERE id = $3;
	`, at, ip, id)
	return mustAffect("failed to update last login", tag, err)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	err := r.db.QueryRow(ctx, `
		UPDATE user_profiles SET
			bio = $1, address = $2, city = $3, state = $4, zip_code = $5, country = $6,
			default_search_radius = $7, updated_at = NOW()
		WHERE user_id = $8
		RETURNING updated_at;
	`,
		profile.Bio, profile.Address, profile.City, profile.State, profile.ZipCode,
		profile.Country, profile.DefaultSearchRadius, profile.UserID,
	).Scan(&profile.UpdatedAt)
	return wrapErr("failed to update profile", err)
}

func (r *UserRepository) CreateLoginHistory(ctx context.Context, entry *models.LoginHistory) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO login_history (user_id, login_time, ip_address, user_agent, device_type, was_successful, failure_reason)
		VALUES ($1, $2, $3::inet, $4, $5, $6, $7)
		RETURNING id;
	`,
		entry.UserID, entry.LoginTime, entry.IPAddress, entry.UserAgent,
		entry.DeviceType, entry.WasSuccessful, entry.FailureReason,
	).Scan(&entry.ID)
	return wrapErr("failed to create login history", err)
}

// ListLoginHistory возвращает последние попытки входа, новые первыми
func (r *UserRepository) ListLoginHistory(ctx context.Context, userID int64, limit int) ([]*models.LoginHistory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, login_time, host(ip_address), user_agent, device_type, was_successful, failure_reason
		FROM login_history
		WHERE user_id = $1
		ORDER BY login_time DESC, id DESC
		LIMIT $2;
	`, userID, limit)
	if err != nil {
		return nil, wrapErr("failed to list login history", err)
	}
	defer rows.Close()

	history := make([]*models.LoginHistory, 0)
	for rows.Next() {
		h := &models.LoginHistory{}
		if err := rows.Scan(&h.ID, &h.UserID, &h.LoginTime, &h.IPAddress, &h.UserAgent,
			&h.DeviceType, &h.WasSuccessful, &h.FailureReason); err != nil {
			return nil, wrapErr("failed to scan login history row", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("error login history iteration", err)
	}
	return history, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	var (
		bio, address, city, state, zip, country *string
		radius                                  *int
		updatedAt                               *time.Time
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.PhoneNumber,
		&u.UserType, &u.ThemePreference, &u.EmailNotifications, &u.SMSNotifications, &u.PushNotifications,
		&u.IsEmailVerified, &u.VerificationToken, &u.CreatedIP, &u.LastLoginIP,
		&u.IsActive, &u.DateJoined, &u.LastLogin,
		&bio, &address, &city, &state, &zip, &country, &radius, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if radius != nil {
		u.Profile = &models.UserProfile{
			UserID:              u.ID,
			Bio:                 deref(bio),
			Address:             deref(address),
			City:                deref(city),
			State:               deref(state),
			ZipCode:             deref(zip),
			Country:             deref(country),
			DefaultSearchRadius: *radius,
		}
		if updatedAt != nil {
			u.Profile.UpdatedAt = *updatedAt
		}
	}
	return u, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
