package repository

import (
	"context"
	"encoding/json"
	"errors"

	"breneo/internal/database"

	"github.com/google/uuid"
)

var ErrAcademyNotFound = errors.New("academy not found")

type AcademyRepository interface {
	FindRawByID(ctx context.Context, id uuid.UUID) (map[string]any, error)
}

type PostgresAcademyRepository struct {
	db database.DB
}

func NewPostgresAcademyRepository(db database.DB) *PostgresAcademyRepository {
	return &PostgresAcademyRepository{db: db}
}

// FindRawByID returns the stored wire record untouched; adapting it is the
// caller's job.
func (r *PostgresAcademyRepository) FindRawByID(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	var raw []byte
	row := r.db.QueryRow(ctx, `SELECT payload FROM academies WHERE id = $1`, id)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return nil, ErrAcademyNotFound
		}
		return nil, err
	}

	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if _, ok := out["id"]; !ok {
		out["id"] = id.String()
	}
	return out, nil
}
