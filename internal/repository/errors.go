package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/crime_analysis_system/internal/service"
)

// wrapErr переводит ошибки pgx в доменные ошибки сервиса
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, service.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, service.ErrConflict)
		case "23503", "23514", "22P02":
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, service.ErrInvalidInput)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// mustAffect возвращает ErrNotFound, если команда не затронула ни одной строки
func mustAffect(op string, tag pgconn.CommandTag, err error) error {
	if err != nil {
		return wrapErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, service.ErrNotFound)
	}
	return nil
}
