package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/crime_analysis_system/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestWrapErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, service.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "crime_types_category_id_name_key"}, service.ErrConflict},
		{"foreign key", &pgconn.PgError{Code: "23503"}, service.ErrInvalidInput},
		{"check", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23514"}), service.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapErr("op", tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}

	assert.NoError(t, wrapErr("op", nil))

	other := errors.New("connection reset")
	got := wrapErr("op", other)
	assert.ErrorIs(t, got, other)
	assert.NotErrorIs(t, got, service.ErrNotFound)
}

func TestMustAffect(t *testing.T) {
	assert.ErrorIs(t, mustAffect("op", pgconn.NewCommandTag("UPDATE 0"), nil), service.ErrNotFound)
	assert.NoError(t, mustAffect("op", pgconn.NewCommandTag("UPDATE 1"), nil))
	assert.ErrorIs(t, mustAffect("op", pgconn.CommandTag{}, pgx.ErrNoRows), service.ErrNotFound)
}
