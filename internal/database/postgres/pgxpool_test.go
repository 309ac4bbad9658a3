package postgres

import (
	"errors"
	"fmt"
	"testing"

	"breneo/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(pgx.ErrNoRows), database.ErrNoRows)
	assert.ErrorIs(t, translate(fmt.Errorf("scan: %w", pgx.ErrNoRows)), database.ErrNoRows)

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	err := translate(dup)
	assert.ErrorIs(t, err, database.ErrConflict)
	assert.Contains(t, err.Error(), "users_email_key")

	other := &pgconn.PgError{Code: "42P01"}
	assert.Same(t, other, translate(other))

	plain := errors.New("conn reset")
	assert.Equal(t, plain, translate(plain))
}

func TestNilPool(t *testing.T) {
	var p *Pool
	assert.Error(t, p.Ping(t.Context()))
	assert.NoError(t, p.Close())
	assert.Equal(t, database.PoolStats{}, p.Stats())
	_, err := p.Exec(t.Context(), "SELECT 1")
	assert.Error(t, err)
	assert.Error(t, p.QueryRow(t.Context(), "SELECT 1").Scan())
}
